// Package main is the shapelint command.
package main

import (
	"os"

	"github.com/leapstack-labs/shapelint/internal/cli"
	"github.com/leapstack-labs/shapelint/internal/cli/commands"
)

func main() {
	os.Exit(commands.ExitCode(cli.Execute()))
}
