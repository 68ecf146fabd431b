// Package emitter builds demonstration runtime state records from four raw
// evaluation inputs.
//
// WARNING: the score aggregation here is demonstration logic only. It exists
// solely to populate required fields for schema conformance and does not
// reflect any production P-MATRIX evaluation pipeline; those use proprietary
// aggregation that is fundamentally different from this arithmetic.
package emitter

import (
	"fmt"
	"math"
	"time"

	"github.com/dyluth/pmatrix/pkg/record"
)

// Inputs holds the four raw evaluation function values for one record.
// Each must be finite and within [0.0, 1.0].
type Inputs struct {
	Baseline    float64
	Norm        float64
	Stability   float64
	MetaControl float64

	// Timestamp is the record's Unix timestamp in whole seconds.
	// Zero means use the current wall-clock time.
	Timestamp uint64
}

// StabilityScore computes a demonstration stability_score as the arithmetic
// mean of the four evaluation function values. Placeholder logic only.
func StabilityScore(f record.Functions) float64 {
	return (f.Baseline + f.Norm + f.Stability + f.MetaControl) / 4.0
}

// RiskScore computes a demonstration risk_score as the complement of
// stability_score. Placeholder logic only.
func RiskScore(stabilityScore float64) float64 {
	return 1.0 - stabilityScore
}

// Emit builds a fully formed runtime state record from the given inputs.
//
// Each input is screened before any record is built: a value that is NaN,
// infinite, or outside [0.0, 1.0] fails immediately with an error naming the
// offending field and its value, and no partial record is ever returned. The
// emitted record stamps the current version constants and the resolved
// timestamp, and satisfies all structural and range invariants by
// construction.
func Emit(in Inputs) (*record.Record, error) {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"baseline", in.Baseline},
		{"norm", in.Norm},
		{"stability", in.Stability},
		{"meta_control", in.MetaControl},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return nil, fmt.Errorf("%s is NaN or infinite", f.name)
		}
		if f.value < 0.0 || f.value > 1.0 {
			return nil, fmt.Errorf("%s = %v is outside [0.0, 1.0]", f.name, f.value)
		}
	}

	functions := record.Functions{
		Baseline:    in.Baseline,
		Norm:        in.Norm,
		Stability:   in.Stability,
		MetaControl: in.MetaControl,
	}

	stabilityScore := StabilityScore(functions)
	riskScore := RiskScore(stabilityScore)

	// riskScore is computed in-range, so failure here indicates an internal
	// inconsistency rather than bad input.
	mode, ok := record.MapRiskToMode(riskScore)
	if !ok {
		return nil, fmt.Errorf("risk_score %v out of range", riskScore)
	}
	riskLevel, ok := record.ModeToRiskLevel(mode)
	if !ok {
		return nil, fmt.Errorf("unknown mode %s", mode)
	}

	ts := in.Timestamp
	if ts == 0 {
		ts = uint64(time.Now().Unix())
	}

	return &record.Record{
		SpecVersion:    record.SpecVersion,
		SchemaVersion:  record.SchemaVersion,
		Timestamp:      ts,
		Functions:      functions,
		StabilityScore: stabilityScore,
		RiskScore:      riskScore,
		Mode:           mode,
		RiskLevel:      riskLevel,
	}, nil
}
