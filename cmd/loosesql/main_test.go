// Package main provides tests for the loosesql CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/loosesql/internal/cli"
	"github.com/leapstack-labs/loosesql/internal/cli/config"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, err := runCLI(t, "", "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "loosesql") {
		t.Errorf("version output should contain 'loosesql', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, err := runCLI(t, "", "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}
	for _, expected := range []string{"split", "tokens", "dialects", "repl", "version"} {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestSplitCommandStdin(t *testing.T) {
	output, err := runCLI(t, "SELECT 1; SELECT 2;", "split", "-o", "json")
	if err != nil {
		t.Errorf("split command error = %v", err)
	}
	if !strings.Contains(output, `"statements"`) {
		t.Errorf("split output should contain statements, got: %s", output)
	}
	if !strings.Contains(output, "SELECT 1") {
		t.Errorf("split output should contain first statement, got: %s", output)
	}
}

func TestSplitCommandDialectFlag(t *testing.T) {
	// The GO line splits under sqlserver, not under the default dialect.
	input := "SELECT 1\nGO\nSELECT 2\nGO\n"

	output, err := runCLI(t, input, "split", "-d", "sqlserver", "-o", "json", "--skip-empty")
	if err != nil {
		t.Errorf("split command error = %v", err)
	}
	if !strings.Contains(output, `"kind": "batch"`) {
		t.Errorf("expected batch terminators, got: %s", output)
	}
}

func TestSplitCommandUnknownDialect(t *testing.T) {
	_, err := runCLI(t, "SELECT 1", "split", "-d", "nope")
	if err == nil {
		t.Error("expected error for unknown dialect")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should name the dialect, got: %v", err)
	}
}

func TestTokensCommand(t *testing.T) {
	output, err := runCLI(t, "SELECT 'x' FROM t", "tokens", "-o", "json")
	if err != nil {
		t.Errorf("tokens command error = %v", err)
	}
	for _, expected := range []string{`"keyword"`, `"string"`, `"identifier"`} {
		if !strings.Contains(output, expected) {
			t.Errorf("tokens output should contain %s, got: %s", expected, output)
		}
	}
}

func TestTokensCommandGroupsByStatement(t *testing.T) {
	output, err := runCLI(t, "SELECT 1; SELECT 'x'", "tokens", "-o", "json")
	if err != nil {
		t.Errorf("tokens command error = %v", err)
	}
	if !strings.Contains(output, `"statements"`) {
		t.Errorf("tokens output should be grouped by statement, got: %s", output)
	}
	if got := strings.Count(output, `"tokens"`); got != 2 {
		t.Errorf("expected token lists for 2 statements, got %d: %s", got, output)
	}
}

func TestDialectsCommand(t *testing.T) {
	output, err := runCLI(t, "", "dialects", "-o", "json")
	if err != nil {
		t.Errorf("dialects command error = %v", err)
	}
	for _, name := range []string{"ansi", "mysql", "postgres", "sqlite", "sqlserver"} {
		if !strings.Contains(output, name) {
			t.Errorf("dialects output should contain %s, got: %s", name, output)
		}
	}
}
