package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"plexer/internal/diagfmt"
	"plexer/internal/driver"
	"plexer/internal/rulefile"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|dir|->",
	Short: "Tokenize input against a rule file",
	Long: `Tokenize scans a file (or every matching file in a directory, or stdin
when the argument is "-") against the pattern rules declared in a TOML
rule file and prints the recognized tokens`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().StringP("rules", "r", "", "path to the TOML rule file (required)")
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().String("ext", "", "file extension filter in directory mode, e.g. .calc")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers in directory mode (0 = GOMAXPROCS)")
	_ = tokenizeCmd.MarkFlagRequired("rules")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	rulesPath, err := cmd.Flags().GetString("rules")
	if err != nil {
		return fmt.Errorf("failed to get rules flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	maxErrors, err := cmd.Root().PersistentFlags().GetInt("max-errors")
	if err != nil {
		return fmt.Errorf("failed to get max-errors flag: %w", err)
	}
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")

	rules, err := rulefile.Load(rulesPath)
	if err != nil {
		return err
	}

	// "-" — читаем stdin как виртуальный файл
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		result := driver.TokenizeVirtual("<stdin>", content, rules, maxErrors)
		return emitFileResult(cmd, result, format, colorFlag)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runTokenizeDir(cmd, path, rules, format, colorFlag, maxErrors)
	}

	result, err := driver.Tokenize(path, rules, maxErrors)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return emitFileResult(cmd, result, format, colorFlag)
}

func emitFileResult(cmd *cobra.Command, result *driver.TokenizeResult, format, colorFlag string) error {
	// Ошибки — в stderr, токены — в stdout
	if result.Bag.HasErrors() {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{
			Color:   useColor(colorFlag, os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(out, result.Tokens, result.FileSet)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(out, result.Tokens, result.FileSet)
	default:
		return diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
}

func runTokenizeDir(cmd *cobra.Command, dir string, rules *rulefile.Set, format, colorFlag string, maxErrors int) error {
	ext, err := cmd.Flags().GetString("ext")
	if err != nil {
		return fmt.Errorf("failed to get ext flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	fileSet, results, err := driver.TokenizeDir(cmd.Context(), dir, ext, rules, maxErrors, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	opts := diagfmt.PrettyOpts{
		Color:   useColor(colorFlag, os.Stderr),
		Context: 2,
	}
	for _, res := range results {
		if res.LoadErr != nil {
			fmt.Fprintf(os.Stderr, "%s: failed to load file: %v\n", res.Path, res.LoadErr)
			continue
		}
		if res.Bag.HasErrors() {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, opts)
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.FormatDirTokensJSON(out, results, fileSet)
	case "msgpack":
		return diagfmt.FormatDirTokensMsgpack(out, results, fileSet)
	default:
		return diagfmt.FormatDirTokensPretty(out, results, fileSet)
	}
}
