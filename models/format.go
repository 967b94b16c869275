package models

// TiebreakFormat describes a tiebreak played to a fixed point target.
type TiebreakFormat struct {
	TiebreakTo int  `json:"tiebreak_to"`
	NoAD       bool `json:"no_ad,omitempty"`
}

// WinBy is the required winning margin at the tiebreak target.
func (t TiebreakFormat) WinBy() int {
	if t.NoAD {
		return 1
	}
	return 2
}

// SetFormat describes how a single set is scored. Exactly one of the three
// shapes is populated: a standard games set, a tiebreak-only set, or a timed
// set.
type SetFormat struct {
	SetTo          int             `json:"set_to,omitempty"`
	NoAD           bool            `json:"no_ad,omitempty"`
	TiebreakAt     int             `json:"tiebreak_at,omitempty"`
	TiebreakFormat *TiebreakFormat `json:"tiebreak_format,omitempty"`

	TiebreakSet *TiebreakFormat `json:"tiebreak_set,omitempty"`

	Timed       bool   `json:"timed,omitempty"`
	Minutes     int    `json:"minutes,omitempty"`
	PointsBased bool   `json:"points_based,omitempty"`
	Modifier    string `json:"modifier,omitempty"`
}

// HasTiebreak reports whether a standard set goes to a tiebreak when tied at
// the tiebreak threshold.
func (f SetFormat) HasTiebreak() bool {
	return f.TiebreakFormat != nil && f.TiebreakAt > 0
}

// IsTiebreakSet reports whether the set is played entirely as a tiebreak.
func (f SetFormat) IsTiebreakSet() bool { return f.TiebreakSet != nil }

// MatchFormat is the parsed descriptor of a matchUp's scoring rules. It is
// supplied by the formats package and treated as immutable by the engine.
type MatchFormat struct {
	BestOf         int        `json:"best_of"`
	SetFormat      SetFormat  `json:"set_format"`
	FinalSetFormat *SetFormat `json:"final_set_format,omitempty"`
}

// SetsToWin is the number of set wins that clinches the match.
func (m MatchFormat) SetsToWin() int { return m.BestOf/2 + 1 }

// SetFormatFor returns the format applicable to the given set number, taking
// the deciding-set override into account.
func (m MatchFormat) SetFormatFor(setNumber int) SetFormat {
	if m.FinalSetFormat != nil && setNumber == m.BestOf {
		return *m.FinalSetFormat
	}
	return m.SetFormat
}
