package record

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validRecord() *Record {
	return &Record{
		SpecVersion:   SpecVersion,
		SchemaVersion: SchemaVersion,
		Timestamp:     1707500000,
		Functions: Functions{
			Baseline:    0.25,
			Norm:        0.70,
			Stability:   0.30,
			MetaControl: 0.20,
		},
		StabilityScore: 0.3625,
		RiskScore:      0.6375,
		Mode:           ModeAlert,
		RiskLevel:      RiskLevelL4,
	}
}

func validPayload() string {
	return `{
		"spec_version": "pmatrix-3.5",
		"schema_version": "1.0.0",
		"timestamp": 1707500000,
		"functions": {
			"baseline": 0.25,
			"norm": 0.70,
			"stability": 0.30,
			"meta_control": 0.20
		},
		"stability_score": 0.3625,
		"risk_score": 0.6375,
		"mode": "Alert",
		"risk_level": "L4"
	}`
}

// TestRoundTrip verifies that encoding then decoding reproduces a record
// exactly, field for field.
func TestRoundTrip(t *testing.T) {
	original := validRecord()

	data, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("round trip mismatch (-original +decoded):\n%s", diff)
	}
}

// TestRoundTripIndent verifies the pretty-printed encoding decodes to the
// same record.
func TestRoundTripIndent(t *testing.T) {
	original := validRecord()

	data, err := EncodeIndent(original)
	if err != nil {
		t.Fatalf("EncodeIndent failed: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("round trip mismatch (-original +decoded):\n%s", diff)
	}
}

// TestDecode_ValidPayload verifies a hand-written canonical payload decodes.
func TestDecode_ValidPayload(t *testing.T) {
	decoded, err := Decode([]byte(validPayload()))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if diff := cmp.Diff(validRecord(), decoded); diff != "" {
		t.Errorf("decoded record mismatch (-want +got):\n%s", diff)
	}
}

// TestDecode_RejectExtraField verifies a ninth top-level field always fails.
func TestDecode_RejectExtraField(t *testing.T) {
	payload := strings.Replace(validPayload(),
		`"risk_level": "L4"`,
		`"risk_level": "L4", "extra_field": "should_fail"`, 1)

	if _, err := Decode([]byte(payload)); err == nil {
		t.Error("expected decode to reject unknown top-level field")
	}
}

// TestDecode_RejectExtraFunctionField verifies unknown keys inside functions
// also fail.
func TestDecode_RejectExtraFunctionField(t *testing.T) {
	payload := strings.Replace(validPayload(),
		`"meta_control": 0.20`,
		`"meta_control": 0.20, "extra": 1.0`, 1)

	if _, err := Decode([]byte(payload)); err == nil {
		t.Error("expected decode to reject unknown field inside functions")
	}
}

// TestDecode_MissingFields verifies every absent canonical field is an
// explicit decode failure naming the field.
func TestDecode_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		remove string
	}{
		{"spec_version", `"spec_version": "pmatrix-3.5",`},
		{"schema_version", `"schema_version": "1.0.0",`},
		{"timestamp", `"timestamp": 1707500000,`},
		{"stability_score", `"stability_score": 0.3625,`},
		{"risk_score", `"risk_score": 0.6375,`},
		{"mode", `"mode": "Alert",`},
		{"functions.norm", `"norm": 0.70,`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := strings.Replace(validPayload(), tt.remove, "", 1)
			_, err := Decode([]byte(payload))
			if err == nil {
				t.Fatalf("expected decode to fail with %s removed", tt.name)
			}
			if !strings.Contains(err.Error(), tt.name) {
				t.Errorf("error %q does not name missing field %q", err, tt.name)
			}
		})
	}
}

// TestDecode_RejectWrongTypes verifies type mismatches are decode failures.
func TestDecode_RejectWrongTypes(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		replace string
	}{
		{"string timestamp", `"timestamp": 1707500000`, `"timestamp": "1707500000"`},
		{"negative timestamp", `"timestamp": 1707500000`, `"timestamp": -5`},
		{"fractional timestamp", `"timestamp": 1707500000`, `"timestamp": 1707500000.5`},
		{"numeric mode", `"mode": "Alert"`, `"mode": 4`},
		{"string score", `"risk_score": 0.6375`, `"risk_score": "high"`},
		{"scalar functions", `"functions": {
			"baseline": 0.25,
			"norm": 0.70,
			"stability": 0.30,
			"meta_control": 0.20
		}`, `"functions": 0.5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := strings.Replace(validPayload(), tt.old, tt.replace, 1)
			if _, err := Decode([]byte(payload)); err == nil {
				t.Error("expected decode failure")
			}
		})
	}
}

// TestDecode_RejectUnknownEnumValues verifies non-canonical mode and
// risk_level strings are decode failures, not invariant failures.
func TestDecode_RejectUnknownEnumValues(t *testing.T) {
	badMode := strings.Replace(validPayload(), `"mode": "Alert"`, `"mode": "Turbo"`, 1)
	if _, err := Decode([]byte(badMode)); err == nil {
		t.Error("expected decode to reject unknown mode")
	}

	badLevel := strings.Replace(validPayload(), `"risk_level": "L4"`, `"risk_level": "L9"`, 1)
	if _, err := Decode([]byte(badLevel)); err == nil {
		t.Error("expected decode to reject unknown risk_level")
	}
}

// TestDecode_RejectMalformed verifies garbage input and trailing data fail.
func TestDecode_RejectMalformed(t *testing.T) {
	for _, payload := range []string{
		"",
		"not json",
		"[]",
		`{"spec_version"`,
		validPayload() + `{"second": true}`,
	} {
		if _, err := Decode([]byte(payload)); err == nil {
			t.Errorf("expected decode failure for payload %q", payload)
		}
	}
}
