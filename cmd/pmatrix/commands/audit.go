package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dyluth/pmatrix/internal/config"
	"github.com/dyluth/pmatrix/internal/printer"
	"github.com/dyluth/pmatrix/internal/streamstore"
	"github.com/dyluth/pmatrix/pkg/invariant"
)

var (
	auditConfig  string
	auditEmitter string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit a stored record stream",
	Long: `Audit a stream held in the Redis-backed stream store.

The stream is fetched in append order; every record is validated against the
twelve invariants, then timestamps are checked for non-decreasing order
across the sequence. The command exits non-zero on any violation.

Examples:
  pmatrix audit
  pmatrix audit --emitter 550e8400-e29b-41d4-a716-446655440000`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVarP(&auditConfig, "config", "c", config.DefaultPath, "Path to pmatrix.yml")
	auditCmd.Flags().StringVarP(&auditEmitter, "emitter", "e", "", "Emitter ID (defaults to emitter.id from config)")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(auditConfig)
	if err != nil {
		return printer.Error(
			"failed to load configuration",
			err.Error(),
			[]string{"Run 'pmatrix init' to scaffold a pmatrix.yml first."},
		)
	}

	emitterID := auditEmitter
	if emitterID == "" {
		emitterID = cfg.Emitter.ID
	}

	store, err := streamstore.NewStore(cfg.RedisOptions(), cfg.Instance)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Fetch(ctx, emitterID)
	if err != nil {
		return printer.Error("failed to fetch stream", err.Error(), nil)
	}
	if len(records) == 0 {
		return printer.Error(
			"stream contains no records",
			fmt.Sprintf("No records stored for emitter %s.", emitterID),
			[]string{"Append records first:\n  pmatrix emit ... | pmatrix push"},
		)
	}

	printer.Info("auditing %d record(s) for emitter %s\n\n", len(records), emitterID)

	conforming := true
	for i, rec := range records {
		if err := invariant.Failures(invariant.ValidateAll(rec)); err != nil {
			conforming = false
			for _, line := range strings.Split(err.Error(), "; ") {
				printer.Check(fmt.Sprintf("record[%d]", i), false, line)
			}
		}
	}
	if conforming {
		printer.Info("%d record(s) individually conforming\n", len(records))
	}

	if idx, violated := invariant.ValidateStreamT1(records); violated {
		printer.Check("INV-T1", false, fmt.Sprintf(
			"record[%d] timestamp=%d is earlier than record[%d] timestamp=%d",
			idx, records[idx].Timestamp, idx-1, records[idx-1].Timestamp))
		conforming = false
	} else {
		printer.Check("INV-T1", true, "timestamps are non-decreasing across the stream")
	}

	printer.Verdict(conforming)
	if !conforming {
		return fmt.Errorf("stream is not conforming")
	}
	return nil
}
