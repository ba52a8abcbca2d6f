package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/DevSymphony/biome2eslint/internal/analyzer"
	"github.com/DevSymphony/biome2eslint/internal/biome"
	"github.com/DevSymphony/biome2eslint/internal/converter"
	"github.com/DevSymphony/biome2eslint/internal/emitter"
	"github.com/DevSymphony/biome2eslint/internal/ui"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	convertDir      string
	convertConfig   string
	convertOutput   string
	convertRegistry string
	convertStdout   bool
	convertYes      bool
)

// confirmOverwrite asks whether an existing output file may be replaced.
var confirmOverwrite = func(path string) bool {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s already exists. Overwrite", path),
		IsConfirm: true,
	}

	result, err := prompt.Run()
	return err == nil && strings.ToLower(result) == "y"
}

// isInteractive reports whether r is a terminal the user can answer prompts on.
var isInteractive = func(r io.Reader) bool {
	return ui.IsTerminal(r)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert biome.json into eslint.config.mjs",
	Long: `Convert the Biome configuration of a project into an ESLint flat config.

biome.json is looked up first, then biome.jsonc. The generated file always
replaces the previous one; nothing is merged.`,
	Example: `  # Convert the project in the current directory
  biome2eslint convert

  # Convert another project and print the result instead of writing it
  biome2eslint convert --dir ./web --stdout

  # Use a custom rule registry
  biome2eslint convert --registry ./rules.yaml --output eslint.config.js`,
	RunE: runConvert,
}

func init() {
	addConvertFlags(convertCmd)
}

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&convertDir, "dir", "d", ".", "project directory containing biome.json and receiving the output")
	cmd.Flags().StringVarP(&convertConfig, "config", "c", "", "explicit Biome configuration file (default: biome.json, then biome.jsonc in --dir)")
	cmd.Flags().StringVarP(&convertOutput, "output", "o", converter.DefaultFilename, "name of the generated file")
	cmd.Flags().StringVar(&convertRegistry, "registry", "", "YAML rule registry to use instead of the built-in one")
	cmd.Flags().BoolVar(&convertStdout, "stdout", false, "print the generated config instead of writing it")
	cmd.Flags().BoolVarP(&convertYes, "yes", "y", false, "overwrite an existing output file without asking")
}

func runConvert(cmd *cobra.Command, args []string) error {
	// Status lines go to stderr when stdout carries the config itself
	status := cmd.OutOrStdout()
	if convertStdout {
		status = cmd.ErrOrStderr()
	}
	printer := ui.New(status)

	reg, err := loadRegistry(convertRegistry)
	if err != nil {
		return err
	}

	cfg, configPath, err := loadBiomeConfig()
	if err != nil {
		return err
	}
	logger.Debug("loaded biome configuration", "path", configPath)
	printer.PrintTitle("Convert", configPath)

	out, err := converter.NewConverter(reg, logger).WithFilename(convertOutput).Convert(cfg)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if out.LinterDisabled {
		printer.PrintInfo("The Biome linter is disabled; nothing to convert")
		return nil
	}

	for _, kind := range out.Unwired {
		printer.PrintWarn(fmt.Sprintf("No plugin import is known for %s; register it in %s manually", kind, out.Filename))
	}

	if convertStdout {
		return emitter.Emit(emitter.WriterSink{W: cmd.OutOrStdout()}, out)
	}

	sink := emitter.FileSink{Dir: convertDir}
	path := sink.Path(out.Filename)

	if !convertYes && fileExists(path) && isInteractive(cmd.InOrStdin()) {
		if !confirmOverwrite(path) {
			printer.PrintInfo("Conversion cancelled, existing file kept")
			return nil
		}
	}

	if err := emitter.Emit(sink, out); err != nil {
		return err
	}

	printer.PrintOK(fmt.Sprintf("Wrote %s (%d rules)", path, len(out.Resolved.Rules)))
	if n := len(out.Resolved.Unmapped); n > 0 {
		printer.PrintIndent(fmt.Sprintf("%d enabled rule(s) have no ESLint equivalent", n))
	}
	printer.PrintInfo("Install the required packages:")
	printer.PrintIndent("npm install -D " + strings.Join(out.Packages, " "))

	return nil
}

func loadRegistry(path string) (*analyzer.Registry, error) {
	if path == "" {
		return analyzer.Builtin()
	}
	reg, err := analyzer.LoadRegistryFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule registry: %w", err)
	}
	logger.Debug("loaded rule registry", "path", path, "rules", reg.Len())
	return reg, nil
}

func loadBiomeConfig() (*biome.Configuration, string, error) {
	if convertConfig != "" {
		cfg, err := biome.LoadFile(convertConfig)
		if err != nil {
			return nil, convertConfig, err
		}
		return cfg, convertConfig, nil
	}
	return biome.Load(convertDir)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
