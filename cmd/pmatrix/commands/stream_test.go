package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/pmatrix/pkg/emitter"
	"github.com/dyluth/pmatrix/pkg/record"
)

func recordLine(t *testing.T, timestamp uint64) string {
	t.Helper()
	rec, err := emitter.Emit(emitter.Inputs{
		Baseline:    0.25,
		Norm:        0.70,
		Stability:   0.30,
		MetaControl: 0.20,
		Timestamp:   timestamp,
	})
	require.NoError(t, err)
	data, err := record.Encode(rec)
	require.NoError(t, err)
	return string(data)
}

// TestDecodeStream verifies JSONL parsing: blank lines skipped, order
// preserved, bad lines reported with their line number.
func TestDecodeStream(t *testing.T) {
	input := strings.Join([]string{
		recordLine(t, 1000),
		"",
		recordLine(t, 1000),
		recordLine(t, 1001),
	}, "\n")

	records, err := decodeStream(bytes.NewReader([]byte(input)))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, uint64(1000), records[0].Timestamp)
	assert.Equal(t, uint64(1001), records[2].Timestamp)
}

// TestDecodeStream_BadLine verifies the first undecodable line aborts the
// stream with its line number.
func TestDecodeStream_BadLine(t *testing.T) {
	input := recordLine(t, 1000) + "\nnot json\n"

	_, err := decodeStream(bytes.NewReader([]byte(input)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

// TestDecodeStream_Empty verifies an empty input yields no records and no
// error; the command layer decides how to treat that.
func TestDecodeStream_Empty(t *testing.T) {
	records, err := decodeStream(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, records)
}
