package record

import "math"

// 5-mode partition mapping: risk_score → mode → risk_level.
//
// Boundary convention: lower-inclusive, upper-exclusive for the first four
// bands. The top band is closed at both ends, [0.8, 1.0], which is safe
// because the validity screen has already excluded values above 1.0.

// MapRiskToMode maps a risk_score to its operating mode.
// Returns false if risk_score is NaN or outside [0.0, 1.0].
// Pure and deterministic: every in-range score maps to exactly one mode.
func MapRiskToMode(riskScore float64) (Mode, bool) {
	if math.IsNaN(riskScore) || riskScore < 0.0 || riskScore > 1.0 {
		return "", false
	}
	switch {
	case riskScore < 0.2:
		return ModeOptimal, true
	case riskScore < 0.4:
		return ModeNormal, true
	case riskScore < 0.6:
		return ModeCaution, true
	case riskScore < 0.8:
		return ModeAlert, true
	default:
		return ModeHalt, true
	}
}

// modeToLevel is the fixed bijection between the two closed enumerations.
var modeToLevel = map[Mode]RiskLevel{
	ModeOptimal: RiskLevelL1,
	ModeNormal:  RiskLevelL2,
	ModeCaution: RiskLevelL3,
	ModeAlert:   RiskLevelL4,
	ModeHalt:    RiskLevelL5,
}

// ModeToRiskLevel maps a mode to its risk level.
// Returns false for any value outside the five canonical modes.
func ModeToRiskLevel(mode Mode) (RiskLevel, bool) {
	level, ok := modeToLevel[mode]
	return level, ok
}
