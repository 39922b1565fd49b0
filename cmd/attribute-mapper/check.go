package main

import (
	"errors"

	"github.com/spf13/cobra"

	"attribute-mapper/internal/replay"
)

var errFixtureErrors = errors.New("fixture has errors")

var checkCmd = &cobra.Command{
	Use:   "check [flags] <fixture>",
	Short: "Build the mapper of a fixture and lint its applications without replaying them",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, logger, err := setup(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	f, err := replay.LoadFile(args[0])
	if err != nil {
		return err
	}

	r, err := replay.Load(f, replay.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	ds := r.Lint()
	renderSummary(cmd.OutOrStdout(), r.Summary(), !ds.HasErrors())
	renderDiagnostics(cmd.OutOrStdout(), ds.All())

	if ds.HasErrors() {
		return errFixtureErrors
	}

	return nil
}
