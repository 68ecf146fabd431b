package printer

import (
	"strings"
	"testing"
)

// TestError_ReturnsSimpleError verifies Error returns a plain error carrying
// the title, suitable for Cobra's silent error path.
func TestError_ReturnsSimpleError(t *testing.T) {
	err := Error("something went wrong", "details here", []string{"try again"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "something went wrong" {
		t.Errorf("error = %q, want the title only", err.Error())
	}
}

// TestError_MultipleSuggestions verifies the multi-suggestion path also
// returns the title error.
func TestError_MultipleSuggestions(t *testing.T) {
	err := Error("title", "", []string{"option one", "option two"})
	if err == nil || !strings.Contains(err.Error(), "title") {
		t.Errorf("unexpected error: %v", err)
	}
}
