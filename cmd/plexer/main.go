package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"plexer/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "plexer",
	Short: "Pattern-matching lexer toolkit",
	Long:  `Plexer tokenizes text against TOML-declared pattern rule sets`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-errors", 100, "maximum number of lexical errors to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor решает, включать ли цвет для данного потока по флагу --color.
func useColor(colorFlag string, f *os.File) bool {
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
