package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"attribute-mapper/internal/replay"
)

var errFailedApplications = errors.New("some applications were not recorded")

var replayCmd = &cobra.Command{
	Use:   "replay [flags] <fixture>",
	Short: "Record every application of a fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().Bool("semantic", false, "replay through the semantic recorder, without syntax")
	replayCmd.Flags().String("output", "text", "output format (text|yaml)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	semantic, err := cmd.Flags().GetBool("semantic")
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	if output != "text" && output != "yaml" {
		return fmt.Errorf("replay: unknown output format %q", output)
	}

	cfg, logger, err := setup(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	f, err := replay.LoadFile(args[0])
	if err != nil {
		return err
	}

	r, err := replay.Load(f, replay.Options{
		Semantic: semantic,
		Config:   cfg,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	results := r.Run()

	switch output {
	case "yaml":
		data, err := replay.MarshalResults(results)
		if err != nil {
			return err
		}

		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	default:
		renderResults(cmd.OutOrStdout(), results)
	}

	for _, res := range results {
		if !res.OK() {
			return errFailedApplications
		}
	}

	return nil
}
