// Package cmd implements the rex CLI's command tree with cobra, following
// the same root-command-plus-registered-subcommands layout the regret
// CLI uses.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "rex",
	Short: "A backtracking regex engine with capture groups and back-references",
	Long: `rex compiles a pattern with a recursive-descent parser, builds a
Thompson-construction NFA, and matches input against it with a
depth-first backtracking engine.

It supports literals, character classes, alternation, the * and +
quantifiers, capture groups, and back-references. It does not support
bounded repetition ({m,n}), lookaround, or anchor enforcement at match
time.`,
	Version: "0.1.0",
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func exitWithError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "rex: "+format+"\n", args...)
	os.Exit(1)
}

func highlight(s string) string {
	if noColor {
		return s
	}
	return color.New(color.FgGreen, color.Bold).Sprint(s)
}

func failureText(s string) string {
	if noColor {
		return s
	}
	return color.New(color.FgRed).Sprint(s)
}
