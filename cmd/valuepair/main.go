// Package main is the entry point for the valuepair CLI tool.
package main

import (
	"os"

	"github.com/samestrin/valuepair-fixture/internal/valuepair/commands"
	"github.com/samestrin/valuepair-fixture/pkg/output"
)

func main() {
	if err := commands.Execute(); err != nil {
		f := output.New(commands.GlobalJSONOutput, commands.GlobalMinOutput, os.Stdout)
		os.Exit(f.PrintError(err))
	}
}
