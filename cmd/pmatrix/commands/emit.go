package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dyluth/pmatrix/pkg/emitter"
	"github.com/dyluth/pmatrix/pkg/record"
)

var (
	emitBaseline    float64
	emitNorm        float64
	emitStability   float64
	emitMetaControl float64
	emitTimestamp   uint64
)

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Emit a demonstration runtime state record",
	Long: `Emit a demonstration runtime state record from four evaluation
function values.

Each value must be finite and within [0.0, 1.0]. The record's scores are
computed with demonstration aggregation (arithmetic mean and its complement),
the mode and risk level are derived from the partition mapping, and the
result is printed as pretty JSON.

Examples:
  # Emit with the current wall-clock timestamp
  pmatrix emit --baseline 0.25 --norm 0.70 --stability 0.30 --meta-control 0.20

  # Emit with an explicit timestamp
  pmatrix emit --baseline 0.25 --norm 0.70 --stability 0.30 --meta-control 0.20 \
      --timestamp 1707500000`,
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().Float64Var(&emitBaseline, "baseline", 0, "Baseline function value in [0.0, 1.0] (required)")
	emitCmd.Flags().Float64Var(&emitNorm, "norm", 0, "Norm function value in [0.0, 1.0] (required)")
	emitCmd.Flags().Float64Var(&emitStability, "stability", 0, "Stability function value in [0.0, 1.0] (required)")
	emitCmd.Flags().Float64Var(&emitMetaControl, "meta-control", 0, "Meta-control function value in [0.0, 1.0] (required)")
	emitCmd.Flags().Uint64Var(&emitTimestamp, "timestamp", 0, "Unix timestamp in seconds (defaults to current time)")
	emitCmd.MarkFlagRequired("baseline")
	emitCmd.MarkFlagRequired("norm")
	emitCmd.MarkFlagRequired("stability")
	emitCmd.MarkFlagRequired("meta-control")
	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) error {
	rec, err := emitter.Emit(emitter.Inputs{
		Baseline:    emitBaseline,
		Norm:        emitNorm,
		Stability:   emitStability,
		MetaControl: emitMetaControl,
		Timestamp:   emitTimestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to emit record: %w", err)
	}

	data, err := record.EncodeIndent(rec)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
