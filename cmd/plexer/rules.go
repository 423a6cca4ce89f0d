package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"plexer/internal/rulefile"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect TOML rule files",
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check <rules.toml>",
	Short: "Validate a rule file",
	Long:  `Check parses and compiles a rule file, reporting the first problem found`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesCheck,
}

func init() {
	rulesCmd.AddCommand(rulesCheckCmd)
}

func runRulesCheck(cmd *cobra.Command, args []string) error {
	set, err := rulefile.Load(args[0])
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d rules\n", set.Ruleset.Len())
	}
	return nil
}
