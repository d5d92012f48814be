package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestSessionErrorWithCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := ErrQueryFailed.WithCause(cause)

	if !errors.Is(err, ErrQueryFailed) {
		t.Error("WithCause copy should match its sentinel")
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
	if errors.Is(err, ErrNotEditable) {
		t.Error("distinct codes should not match")
	}

	// Sentinel stays pristine.
	if ErrQueryFailed.Cause != nil {
		t.Error("WithCause must not mutate the sentinel")
	}
}

func TestSessionErrorMessage(t *testing.T) {
	if got := ErrNotEditable.Error(); got != "element is not editable" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := ErrQueryFailed.WithCause(fmt.Errorf("boom"))
	if got := wrapped.Error(); got != "element query failed: boom" {
		t.Errorf("Error() = %q", got)
	}
}
