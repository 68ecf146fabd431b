package commands

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dyluth/pmatrix/internal/printer"
	"github.com/dyluth/pmatrix/pkg/invariant"
	"github.com/dyluth/pmatrix/pkg/record"
)

var streamFile string

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Validate an ordered stream of records (JSONL)",
	Long: `Validate an ordered stream of runtime state records.

Input is JSONL - one record per line, in true emission order - from stdin or
--file. Every record is validated individually against the twelve invariants,
then timestamps are checked for non-decreasing order across the sequence
(equal consecutive timestamps are allowed).

Examples:
  pmatrix stream --file records.jsonl
  cat records.jsonl | pmatrix stream`,
	RunE: runStream,
}

func init() {
	streamCmd.Flags().StringVarP(&streamFile, "file", "f", "", "Read the stream from a file instead of stdin")
	rootCmd.AddCommand(streamCmd)
}

// decodeStream parses JSONL input into records through the strict decode
// boundary. Blank lines are skipped; the first undecodable line aborts the
// whole stream with its line number.
func decodeStream(r io.Reader) ([]*record.Record, error) {
	var records []*record.Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		rec, err := record.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}
	return records, nil
}

func runStream(cmd *cobra.Command, args []string) error {
	var input io.Reader = cmd.InOrStdin()
	if streamFile != "" {
		data, err := readInput(streamFile, nil)
		if err != nil {
			return err
		}
		input = bytes.NewReader(data)
	}

	records, err := decodeStream(input)
	if err != nil {
		return printer.Error(
			"stream could not be decoded",
			err.Error(),
			[]string{"Input must be JSONL: one valid P-MATRIX runtime state record per line."},
		)
	}
	if len(records) == 0 {
		return printer.Error("stream contains no records", "", nil)
	}

	conforming := true
	for i, rec := range records {
		results := invariant.ValidateAll(rec)
		if err := invariant.Failures(results); err != nil {
			conforming = false
			for _, line := range strings.Split(err.Error(), "; ") {
				printer.Check(fmt.Sprintf("record[%d]", i), false, line)
			}
		}
	}
	if conforming {
		printer.Info("%d record(s) individually conforming\n", len(records))
	}
	if len(records) == 1 {
		printer.Warning("single-record stream: temporal ordering is trivially satisfied\n")
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
