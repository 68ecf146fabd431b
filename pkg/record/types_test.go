package record

import "testing"

// TestParseMode_Valid tests that all five canonical mode strings parse.
func TestParseMode_Valid(t *testing.T) {
	for _, want := range Modes {
		got, err := ParseMode(string(want))
		if err != nil {
			t.Errorf("ParseMode(%q) failed: %v", want, err)
			continue
		}
		if got != want {
			t.Errorf("ParseMode(%q) = %q", want, got)
		}
	}
}

// TestParseMode_Invalid tests that strings outside the closed enumeration are
// rejected.
func TestParseMode_Invalid(t *testing.T) {
	for _, s := range []string{"", "Turbo", "optimal", "L1"} {
		if got, err := ParseMode(s); err == nil {
			t.Errorf("ParseMode(%q) = %q, expected error", s, got)
		}
	}
}

// TestParseRiskLevel_Valid tests that all five canonical level strings parse.
func TestParseRiskLevel_Valid(t *testing.T) {
	for _, want := range RiskLevels {
		got, err := ParseRiskLevel(string(want))
		if err != nil {
			t.Errorf("ParseRiskLevel(%q) failed: %v", want, err)
			continue
		}
		if got != want {
			t.Errorf("ParseRiskLevel(%q) = %q", want, got)
		}
	}
}

// TestParseRiskLevel_Invalid tests that strings outside the closed
// enumeration are rejected.
func TestParseRiskLevel_Invalid(t *testing.T) {
	for _, s := range []string{"", "L0", "L6", "l1", "Optimal"} {
		if got, err := ParseRiskLevel(s); err == nil {
			t.Errorf("ParseRiskLevel(%q) = %q, expected error", s, got)
		}
	}
}

// TestCanonicalTables verifies the ordered tables stay positionally aligned.
func TestCanonicalTables(t *testing.T) {
	if len(Modes) != 5 || len(RiskLevels) != 5 {
		t.Fatalf("expected 5 modes and 5 risk levels, got %d and %d", len(Modes), len(RiskLevels))
	}
	for i, mode := range Modes {
		level, ok := ModeToRiskLevel(mode)
		if !ok {
			t.Fatalf("canonical mode %s is unmappable", mode)
		}
		if level != RiskLevels[i] {
			t.Errorf("Modes[%d]=%s maps to %s, but RiskLevels[%d]=%s", i, mode, level, i, RiskLevels[i])
		}
	}
}

// TestVersionConstants pins the current version constants.
func TestVersionConstants(t *testing.T) {
	if SpecVersion != "pmatrix-3.5" {
		t.Errorf("SpecVersion = %q", SpecVersion)
	}
	if SchemaVersion != "1.0.0" {
		t.Errorf("SchemaVersion = %q", SchemaVersion)
	}
}
