// Package errors provides sentinel errors and error types for manachess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidSquare indicates square coordinates off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrGameOver indicates input arrived after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNoSelection indicates an ability was cast with no piece selected.
	ErrNoSelection = errors.New("no piece selected")

	// ErrNoAbility indicates the selected piece has no ability.
	ErrNoAbility = errors.New("piece has no ability")

	// ErrRooted indicates the piece is rooted and cannot act.
	ErrRooted = errors.New("piece is rooted")

	// ErrInsufficientMana indicates the side cannot pay the ability cost.
	ErrInsufficientMana = errors.New("insufficient mana")

	// ErrOnCooldown indicates the ability is not yet available for this piece.
	ErrOnCooldown = errors.New("ability on cooldown")

	// ErrAlreadyCasting indicates a cast was requested while another is resolving.
	ErrAlreadyCasting = errors.New("another ability is resolving")

	// ErrCaptureBlocked indicates a capture absorbed by a shield.
	ErrCaptureBlocked = errors.New("capture blocked")
)

// ActionError wraps errors with game context: the turn on which the action
// was attempted, the square involved and the ability, if any. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type ActionError struct {
	Err     error  // The underlying error
	Turn    int    // Turn number when the action was attempted
	Square  string // Square involved (empty if not applicable)
	Ability string // Ability name (empty if not applicable)

	// AvailableOn is the first turn the ability can be used again, for ErrOnCooldown.
	AvailableOn int
}

// Error returns a formatted error message including all available context.
func (e *ActionError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Ability != "" {
		parts = append(parts, e.Ability)
	}
	if e.Square != "" {
		parts = append(parts, e.Square)
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "action rejected"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ActionError wrapper.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// Reason returns a short player-facing explanation of why an action was
// refused, or an empty string when the error carries no known reason.
func Reason(err error) string {
	var ae *ActionError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRooted):
		return "Rooted"
	case errors.Is(err, ErrInsufficientMana):
		return "Not enough mana"
	case errors.Is(err, ErrOnCooldown):
		if errors.As(err, &ae) && ae.AvailableOn > 0 {
			return fmt.Sprintf("On cooldown until turn %d", ae.AvailableOn)
		}
		return "On cooldown"
	case errors.Is(err, ErrGameOver):
		return "Game over"
	case errors.Is(err, ErrAlreadyCasting):
		return "Another ability is resolving"
	default:
		return ""
	}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
