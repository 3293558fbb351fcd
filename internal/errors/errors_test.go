// Package apperrors provides tests for the engine's error types.
package apperrors

import (
	"errors"
	"strings"
	"testing"
)

func TestContractError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      ContractError
		contains []string
		is       error
	}{
		{
			name:     "division by zero without message",
			err:      ContractError{Op: "natural.Mod", Cause: ErrDivisionByZero},
			contains: []string{"natural.Mod", "division by zero"},
			is:       ErrDivisionByZero,
		},
		{
			name:     "length mismatch with formatted message",
			err:      Contract("limb.SubToOut", ErrLength, "len(xs)=%d < len(ys)=%d", 1, 2),
			contains: []string{"limb.SubToOut", "invalid slice lengths", "len(xs)=1 < len(ys)=2"},
			is:       ErrLength,
		},
		{
			name:     "message without arguments is kept verbatim",
			err:      Contract("digits.FromAsc", ErrDomain, "digit 100% too large"),
			contains: []string{"digit 100% too large"},
			is:       ErrDomain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, should contain %q", msg, want)
				}
			}
			if !errors.Is(tt.err, tt.is) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.is)
			}
		})
	}
}

func TestPanicHelpers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fn    func()
		cause error
	}{
		{"PanicDivisionByZero", func() { PanicDivisionByZero("prim.Mod") }, ErrDivisionByZero},
		{"PanicInexact", func() { PanicInexact("prim.ShrRound") }, ErrInexact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if !IsContractError(r, tt.cause) {
					t.Errorf("recovered %v, want ContractError caused by %v", r, tt.cause)
				}
				if IsContractError(r, ErrLength) {
					t.Errorf("recovered %v should not match ErrLength", r)
				}
			}()
			tt.fn()
		})
	}
}

func TestIsContractError(t *testing.T) {
	t.Parallel()
	if IsContractError("boom", nil) {
		t.Error("a string panic value is not a ContractError")
	}
	if IsContractError(errors.New("plain"), nil) {
		t.Error("a plain error is not a ContractError")
	}
	if !IsContractError(ContractError{Op: "x", Cause: ErrDomain}, nil) {
		t.Error("nil target should match any ContractError")
	}
	wrapped := WrapError(ContractError{Op: "x", Cause: ErrDomain}, "context")
	if !IsContractError(wrapped, ErrDomain) {
		t.Error("wrapped ContractError should still be detected")
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	err := ParseError{Input: "Sideways", Reason: "unknown rounding mode"}
	want := `cannot parse "Sideways": unknown rounding mode`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	var pe ParseError
	if !errors.As(WrapError(err, "loading"), &pe) {
		t.Error("errors.As should find ParseError through WrapError")
	}
}

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("threshold %s must be >= %d", "karatsuba", 4)
	if err.Error() != "threshold karatsuba must be >= 4" {
		t.Errorf("unexpected message %q", err.Error())
	}
	var ce ConfigError
	if !errors.As(err, &ce) {
		t.Error("expected ConfigError type")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "ignored") != nil {
		t.Error("WrapError(nil) should be nil")
	}
	base := errors.New("root")
	wrapped := WrapError(base, "reading %s", "profile.json")
	if wrapped.Error() != "reading profile.json: root" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is should see through WrapError")
	}
}
