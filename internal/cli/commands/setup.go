// Package commands implements the loosesql subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/loosesql/internal/cli/config"
	"github.com/leapstack-labs/loosesql/internal/cli/output"
	"github.com/leapstack-labs/loosesql/pkg/dialect"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Profile  *dialect.Profile
	Renderer *output.Renderer
}

// NewCommandContext resolves the configured dialect and builds the renderer
// for a command invocation.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	profile, ok := dialect.Get(cfg.Dialect)
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %s)",
			dialect.ErrUnknownDialect, cfg.Dialect, strings.Join(dialect.List(), ", "))
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Profile:  profile,
		Renderer: r,
	}, nil
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		Dialect:      getEnvOrDefault("LOOSESQL_DIALECT", config.DefaultDialect),
		SkipEmpty:    os.Getenv("LOOSESQL_SKIP_EMPTY") == "true",
		Classify:     os.Getenv("LOOSESQL_CLASSIFY") == "true",
		OutputFormat: getEnvOrDefault("LOOSESQL_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("LOOSESQL_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// readInput returns the SQL text to scan: the concatenation of the named
// files, or stdin when no files are given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	var sb strings.Builder
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", name, err)
		}
		sb.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
