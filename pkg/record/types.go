package record

import "fmt"

// SpecVersion is the current P-MATRIX specification version. Records must
// carry this exact string; there is no cross-version compatibility logic.
const SpecVersion = "pmatrix-3.5"

// SchemaVersion is the current record schema version (MAJOR.MINOR.PATCH).
const SchemaVersion = "1.0.0"

// Functions holds the four evaluation function values that characterize an
// agent's runtime posture. Each is a normalized scalar in [0.0, 1.0]; no
// ordering or relationship is required among the four.
type Functions struct {
	Baseline    float64 `json:"baseline"`
	Norm        float64 `json:"norm"`
	Stability   float64 `json:"stability"`
	MetaControl float64 `json:"meta_control"`
}

// Record is a single P-MATRIX runtime state record: the operational posture
// of an autonomous agent at one instant in time. Exactly these eight fields
// form the wire format - no more, no fewer.
type Record struct {
	SpecVersion    string    `json:"spec_version"`
	SchemaVersion  string    `json:"schema_version"`
	Timestamp      uint64    `json:"timestamp"` // Unix seconds, must be > 0
	Functions      Functions `json:"functions"`
	StabilityScore float64   `json:"stability_score"`
	RiskScore      float64   `json:"risk_score"`
	Mode           Mode      `json:"mode"`
	RiskLevel      RiskLevel `json:"risk_level"`
}

// Mode is one of five discrete operating states derived from risk_score.
type Mode string

const (
	ModeOptimal Mode = "Optimal"
	ModeNormal  Mode = "Normal"
	ModeCaution Mode = "Caution"
	ModeAlert   Mode = "Alert"
	ModeHalt    Mode = "Halt"
)

// RiskLevel is one of five discrete risk classification labels, in fixed
// bijection with Mode.
type RiskLevel string

const (
	RiskLevelL1 RiskLevel = "L1"
	RiskLevelL2 RiskLevel = "L2"
	RiskLevelL3 RiskLevel = "L3"
	RiskLevelL4 RiskLevel = "L4"
	RiskLevelL5 RiskLevel = "L5"
)

// Modes is the canonical ordered table of operating modes, from lowest to
// highest risk band.
var Modes = [5]Mode{ModeOptimal, ModeNormal, ModeCaution, ModeAlert, ModeHalt}

// RiskLevels is the canonical ordered table of risk levels, positionally
// aligned with Modes.
var RiskLevels = [5]RiskLevel{RiskLevelL1, RiskLevelL2, RiskLevelL3, RiskLevelL4, RiskLevelL5}

// IsValid reports whether m is one of the five canonical modes.
func (m Mode) IsValid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

// IsValid reports whether l is one of the five canonical risk levels.
func (l RiskLevel) IsValid() bool {
	for _, known := range RiskLevels {
		if l == known {
			return true
		}
	}
	return false
}

// ParseMode converts a raw wire string into a Mode.
// Returns an error for any string outside the five canonical modes.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown mode %q (expected one of %v)", s, Modes)
	}
	return m, nil
}

// ParseRiskLevel converts a raw wire string into a RiskLevel.
// Returns an error for any string outside the five canonical levels.
func ParseRiskLevel(s string) (RiskLevel, error) {
	l := RiskLevel(s)
	if !l.IsValid() {
		return "", fmt.Errorf("unknown risk_level %q (expected one of %v)", s, RiskLevels)
	}
	return l, nil
}
