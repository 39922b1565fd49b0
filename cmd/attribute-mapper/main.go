// Package main provides the CLI entrypoint for attribute-mapper.
//
// attribute-mapper replays attribute fixtures through the mapping
// framework:
//   - replay records every application of a fixture and reports the result
//   - check builds the fixture mapper and reports configuration errors
//   - patterns lists the pattern expression language
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"attribute-mapper/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "attribute-mapper",
	Short: "Replay attribute fixtures through argument mappers",
	Long:  `attribute-mapper evaluates attribute applications described in YAML fixtures and shows what each recorder captured`,
}

func main() {
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(patternsCmd)

	rootCmd.PersistentFlags().String("config", "", "configuration file (YAML)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log recorder diagnostics at debug level")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup applies the persistent flags: it loads the configuration, selects
// the color mode and builds the diagnostics logger.
func setup(cmd *cobra.Command, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, nil, err
	}

	cfg := config.Default()
	if path != "" {
		cfg, err = config.LoadFile(path)
		if err != nil {
			return nil, nil, err
		}
	}

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, nil, err
	}

	if verbose {
		cfg.Log.Level = "debug"
	}

	mode, err := flags.GetString("color")
	if err != nil {
		return nil, nil, err
	}

	switch mode {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return nil, nil, fmt.Errorf("--color: unknown mode %q (expected auto, on or off)", mode)
	}

	logger, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
