package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DevSymphony/biome2eslint/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// verbose is a global flag for verbose output
	verbose   bool
	logFormat string

	// logger is built from the global flags before any command runs
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "biome2eslint",
	Short: "biome2eslint - Convert a Biome configuration to an ESLint flat config",
	Long: `biome2eslint reads biome.json (or biome.jsonc) and writes an equivalent
ESLint flat config (eslint.config.mjs).

Every enabled Biome lint rule that has an ESLint equivalent is emitted with
its effective level. Plugins are imported only for the rule families that
are actually used.

Running biome2eslint without a subcommand is the same as "biome2eslint convert".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	RunE:              runConvert,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text or json)")

	addConvertFlags(rootCmd)

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
	// Note: mcpCmd is registered in mcp.go's init()
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level := "error"
	if verbose {
		level = "debug"
	}

	l, err := logging.New(cmd.ErrOrStderr(), logFormat, level)
	if err != nil {
		return err
	}
	logger = l
	slog.SetDefault(l)
	return nil
}
