package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"attest/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "attest",
	Short: "Runtime type-specification checker",
	Long:  `Attest validates JSON documents against type specifications and explains exactly which nested part of a value violates which nested part of the specification`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the output terminal.
func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on", "always":
		return true
	case "off", "never":
		return false
	default:
		return isTerminal(f)
	}
}
