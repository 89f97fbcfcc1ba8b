package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("subscriber %s not found", "x"), KindNotFound},
		{"conflict", Conflict("duplicate"), KindConflict},
		{"invalid transition", InvalidTransition("no edge"), KindInvalidTransition},
		{"invalid state", InvalidState("renew requires active"), KindInvalidState},
		{"validation", Validation("bad field"), KindValidation},
		{"unavailable wraps", Unavailable(errors.New("dial tcp"), "loading subscriber"), KindUnavailable},
		{"wrapped deeper", fmt.Errorf("handler: %w", NotFound("gone")), KindNotFound},
		{"foreign error is internal", errors.New("something"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Unavailable(cause, "loading subscriber")
	if !errors.Is(err, cause) {
		t.Error("errors.Is() = false, want wrapped cause visible")
	}
}
