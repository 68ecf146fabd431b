package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire codec for runtime state records.
//
// Decode is deliberately strict: unknown fields, missing fields, wrong field
// types, and enumeration values outside the closed tables are all decode
// failures, reported before any invariant validation is attempted. Encoding
// then decoding a valid record reproduces it exactly, field for field.

// functionsWire mirrors Functions with pointer fields so that absent keys are
// distinguishable from zero values.
type functionsWire struct {
	Baseline    *float64 `json:"baseline"`
	Norm        *float64 `json:"norm"`
	Stability   *float64 `json:"stability"`
	MetaControl *float64 `json:"meta_control"`
}

// recordWire mirrors Record with pointer fields, for the same reason.
type recordWire struct {
	SpecVersion    *string        `json:"spec_version"`
	SchemaVersion  *string        `json:"schema_version"`
	Timestamp      *uint64        `json:"timestamp"`
	Functions      *functionsWire `json:"functions"`
	StabilityScore *float64       `json:"stability_score"`
	RiskScore      *float64       `json:"risk_score"`
	Mode           *string        `json:"mode"`
	RiskLevel      *string        `json:"risk_level"`
}

// Encode serializes a record to compact JSON.
func Encode(r *Record) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return data, nil
}

// EncodeIndent serializes a record to indented JSON for human-facing output.
func EncodeIndent(r *Record) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return data, nil
}

// Decode parses a single runtime state record from externally supplied bytes.
// Any deviation from the canonical eight-field shape is a decode failure:
// malformed JSON, unknown or missing fields (at the top level or inside
// functions), wrong field types, negative or fractional timestamps, and
// mode/risk_level strings outside the closed enumerations.
func Decode(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var wire recordWire
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to decode record: trailing data after JSON object")
	}

	// Every canonical field must be present.
	missing := ""
	switch {
	case wire.SpecVersion == nil:
		missing = "spec_version"
	case wire.SchemaVersion == nil:
		missing = "schema_version"
	case wire.Timestamp == nil:
		missing = "timestamp"
	case wire.Functions == nil:
		missing = "functions"
	case wire.StabilityScore == nil:
		missing = "stability_score"
	case wire.RiskScore == nil:
		missing = "risk_score"
	case wire.Mode == nil:
		missing = "mode"
	case wire.RiskLevel == nil:
		missing = "risk_level"
	}
	if missing != "" {
		return nil, fmt.Errorf("failed to decode record: missing required field %q", missing)
	}

	fn := wire.Functions
	switch {
	case fn.Baseline == nil:
		missing = "functions.baseline"
	case fn.Norm == nil:
		missing = "functions.norm"
	case fn.Stability == nil:
		missing = "functions.stability"
	case fn.MetaControl == nil:
		missing = "functions.meta_control"
	}
	if missing != "" {
		return nil, fmt.Errorf("failed to decode record: missing required field %q", missing)
	}

	// Convert the open wire strings into the closed enumeration types.
	mode, err := ParseMode(*wire.Mode)
	if err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	riskLevel, err := ParseRiskLevel(*wire.RiskLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	return &Record{
		SpecVersion:   *wire.SpecVersion,
		SchemaVersion: *wire.SchemaVersion,
		Timestamp:     *wire.Timestamp,
		Functions: Functions{
			Baseline:    *fn.Baseline,
			Norm:        *fn.Norm,
			Stability:   *fn.Stability,
			MetaControl: *fn.MetaControl,
		},
		StabilityScore: *wire.StabilityScore,
		RiskScore:      *wire.RiskScore,
		Mode:           mode,
		RiskLevel:      riskLevel,
	}, nil
}
