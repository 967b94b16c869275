// Package scoring implements the incremental score-entry engine: a pure,
// synchronous state machine that turns single input tokens (digits, shift,
// joiner, backspace, outcome keys) into a structured match score plus its
// canonical textual projection. Each call is a value-in/value-out transition;
// the engine holds no state between calls and never touches a store.
package scoring

import "github.com/aidosk/courtscore/models"

// Recognized non-digit keys. Digits are the single characters "0".."9".
const (
	KeyBackspace = "backspace"
	KeySpace     = " "
	KeyJoiner    = "-"
	KeyRetire    = "r"
	KeyDefault   = "d"
	KeyWalkover  = "w"
	KeyAbandon   = "a"
	KeySuspend   = "s"
	KeyInterrupt = "i"
)

// Token is the atomic unit of input. Raw holds one of the recognized keys;
// Shifted attributes the token to the opposite side of the unshifted stream.
type Token struct {
	Raw     string `json:"token"`
	Shifted bool   `json:"shifted,omitempty"`
}

func (t Token) IsDigit() bool {
	return len(t.Raw) == 1 && t.Raw[0] >= '0' && t.Raw[0] <= '9'
}

// Digit returns the numeric value of a digit token.
func (t Token) Digit() int { return int(t.Raw[0] - '0') }

func (t Token) IsOutcome() bool {
	switch t.Raw {
	case KeyRetire, KeyDefault, KeyWalkover, KeyAbandon, KeySuspend, KeyInterrupt:
		return true
	}
	return false
}

// IsCloser reports whether the token advances past the current entry.
func (t Token) IsCloser() bool { return t.Raw == KeySpace }

func (t Token) recognized() bool {
	return t.IsDigit() || t.IsOutcome() || t.IsCloser() ||
		t.Raw == KeyBackspace || t.Raw == KeyJoiner
}

// Config carries the per-call entry options. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// LowSide is the side the unshifted key stream currently represents.
	LowSide models.Side
	// ShiftFirst inverts which side the shift modifier targets.
	ShiftFirst bool
	// Auto enables automatic computation of the non-entered tiebreak value.
	Auto bool
	// CheckFormat rejects values inconsistent with the match format instead
	// of tolerating them.
	CheckFormat bool
}

func DefaultConfig() Config {
	return Config{LowSide: models.Side1, Auto: true, CheckFormat: true}
}

// entrySide resolves which physical side a token addresses.
func (c Config) entrySide(t Token) models.Side {
	if t.Shifted != c.ShiftFirst {
		return c.LowSide.Other()
	}
	return c.LowSide
}

// Result is the outcome of applying one token. On rejection Updated is false,
// Message explains why, and Score is the unchanged input state.
type Result struct {
	Updated bool              `json:"updated"`
	Message string            `json:"message,omitempty"`
	Score   models.MatchScore `json:"score"`
}
