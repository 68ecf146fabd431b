package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dyluth/pmatrix/internal/config"
	"github.com/dyluth/pmatrix/internal/printer"
	"github.com/dyluth/pmatrix/internal/streamstore"
	"github.com/dyluth/pmatrix/pkg/record"
)

var (
	pushFile    string
	pushConfig  string
	pushEmitter string
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Append a conforming record to the stream store",
	Long: `Append a runtime state record to the Redis-backed stream store.

The record is read from stdin (or --file) through the strict decode boundary
and must satisfy all twelve invariants; non-conforming records are rejected
and nothing is written. Records are appended in arrival order, which the
audit command's temporal check depends on.

Examples:
  pmatrix emit --baseline 0.9 --norm 0.9 --stability 0.9 --meta-control 0.9 | pmatrix push
  pmatrix push --file record.json --emitter 550e8400-e29b-41d4-a716-446655440000`,
	RunE: runPush,
}

func init() {
	pushCmd.Flags().StringVarP(&pushFile, "file", "f", "", "Read the record from a file instead of stdin")
	pushCmd.Flags().StringVarP(&pushConfig, "config", "c", config.DefaultPath, "Path to pmatrix.yml")
	pushCmd.Flags().StringVarP(&pushEmitter, "emitter", "e", "", "Emitter ID (defaults to emitter.id from config)")
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(pushConfig)
	if err != nil {
		return printer.Error(
			"failed to load configuration",
			err.Error(),
			[]string{"Run 'pmatrix init' to scaffold a pmatrix.yml first."},
		)
	}

	emitterID := pushEmitter
	if emitterID == "" {
		emitterID = cfg.Emitter.ID
	}

	data, err := readInput(pushFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	rec, err := record.Decode(data)
	if err != nil {
		return printer.Error(
			"record could not be decoded",
			err.Error(),
			[]string{"The input must be a valid P-MATRIX runtime state record with exactly the eight canonical fields."},
		)
	}

	store, err := streamstore.NewStore(cfg.RedisOptions(), cfg.Instance)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Append(ctx, emitterID, rec); err != nil {
		return printer.Error("failed to push record", err.Error(), nil)
	}

	n, err := store.Len(ctx, emitterID)
	if err != nil {
		return err
	}

	printer.Success("record appended to stream %s (%d record(s) stored)\n", emitterID, n)
	return nil
}
