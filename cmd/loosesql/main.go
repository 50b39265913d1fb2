// Package main provides the loosesql CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/loosesql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
