package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dyluth/pmatrix/internal/printer"
	"github.com/dyluth/pmatrix/pkg/invariant"
	"github.com/dyluth/pmatrix/pkg/record"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a runtime state record against all twelve invariants",
	Long: `Validate a runtime state record against all twelve conformance
invariants.

The record is read as JSON from stdin (or from --file) through the strict
decode boundary: unknown fields, missing fields, or wrong field types fail
before any invariant is evaluated. A decoded record always produces one
diagnostic line per invariant followed by an overall verdict; the command
exits successfully only if every invariant passes.

Examples:
  # Validate a record from a file
  pmatrix validate --file record.json

  # Validate a freshly emitted record
  pmatrix emit --baseline 0.9 --norm 0.9 --stability 0.9 --meta-control 0.9 | pmatrix validate`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Read the record from a file instead of stdin")
	rootCmd.AddCommand(validateCmd)
}

// readInput returns the raw bytes for a command that accepts --file or stdin.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return data, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readInput(validateFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	// Decode rejection is a distinct failure class: validation is never
	// attempted on input that does not satisfy the wire contract.
	rec, err := record.Decode(data)
	if err != nil {
		return printer.Error(
			"record could not be decoded",
			err.Error(),
			[]string{"The input must be a valid P-MATRIX runtime state record with exactly the eight canonical fields."},
		)
	}

	results := invariant.ValidateAll(rec)
	allPassed := true
	for _, res := range results {
		if !res.Passed {
			allPassed = false
		}
		printer.Check(res.ID, res.Passed, res.Detail)
	}
	printer.Verdict(allPassed)

	if !allPassed {
		return fmt.Errorf("record is not conforming")
	}
	return nil
}
