package testutil

import (
	"testing"

	mcerrors "github.com/lgbarn/manachess-go/internal/errors"
)

// Failures cannot be observed without a fake *testing.T, so these cover the
// passing paths and the message formatting.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "Charge", "Charge")
	AssertEqual(t, []string{"2. Black e5", "1. White e4"}, []string{"2. Black e5", "1. White e4"})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 3, 3, "mana after %d turns", 2)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "click should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	err := &mcerrors.ActionError{Err: mcerrors.ErrRooted, Turn: 2, Square: "b4"}
	AssertErrorIs(t, err, mcerrors.ErrRooted)
	AssertErrorIs(t, mcerrors.Wrap(err, "cast"), mcerrors.ErrRooted)
	AssertErrorIs(t, nil, nil, "nil matches nil")
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "Turn 2  Black to move", "Black to move")
	AssertContains(t, "test", "")
	AssertNotContains(t, "Log: Game start.", "rooted")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"click"}, "click"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"click %s", "e4"}, "click e4"},
		{"format multiple", []interface{}{"%s on turn %d", "Bulwark", 3}, "Bulwark on turn 3"},
		{"non-string first", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
