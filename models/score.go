package models

// Side identifies one side of a matchUp. Zero means "no side".
type Side int

const (
	SideNone Side = 0
	Side1    Side = 1
	Side2    Side = 2
)

// Other returns the opposing side, or SideNone for SideNone.
func (s Side) Other() Side {
	switch s {
	case Side1:
		return Side2
	case Side2:
		return Side1
	default:
		return SideNone
	}
}

type MatchUpStatus string

const (
	StatusToBePlayed  MatchUpStatus = "TO_BE_PLAYED"
	StatusInProgress  MatchUpStatus = "IN_PROGRESS"
	StatusCompleted   MatchUpStatus = "COMPLETED"
	StatusRetired     MatchUpStatus = "RETIRED"
	StatusDefaulted   MatchUpStatus = "DEFAULTED"
	StatusWalkover    MatchUpStatus = "WALKOVER"
	StatusSuspended   MatchUpStatus = "SUSPENDED"
	StatusAbandoned   MatchUpStatus = "ABANDONED"
	StatusInterrupted MatchUpStatus = "INTERRUPTED"
)

// IsOutcome reports whether the status was produced by an outcome key rather
// than by normal play.
func (s MatchUpStatus) IsOutcome() bool {
	switch s {
	case StatusRetired, StatusDefaulted, StatusWalkover, StatusSuspended, StatusAbandoned, StatusInterrupted:
		return true
	}
	return false
}

// Set holds the score of a single set. Pointer fields are nil while the
// corresponding value has not been entered yet; the last element of a set
// list may therefore be partially populated (the open set).
type Set struct {
	SetNumber          int  `json:"set_number"`
	Side1Score         *int `json:"side1_score,omitempty"`
	Side2Score         *int `json:"side2_score,omitempty"`
	Side1TiebreakScore *int `json:"side1_tiebreak_score,omitempty"`
	Side2TiebreakScore *int `json:"side2_tiebreak_score,omitempty"`
	WinningSide        Side `json:"winning_side,omitempty"`
	IsMatchTiebreak    bool `json:"is_match_tiebreak,omitempty"`
}

// Clone returns a deep copy; the engine never mutates a caller's set.
func (s Set) Clone() Set {
	out := s
	out.Side1Score = cloneInt(s.Side1Score)
	out.Side2Score = cloneInt(s.Side2Score)
	out.Side1TiebreakScore = cloneInt(s.Side1TiebreakScore)
	out.Side2TiebreakScore = cloneInt(s.Side2TiebreakScore)
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Score reports the game score (or tiebreak score for a match tiebreak) of
// the given side, and whether it has been entered.
func (s Set) Score(side Side) (int, bool) {
	var v *int
	if s.IsMatchTiebreak {
		if side == Side1 {
			v = s.Side1TiebreakScore
		} else {
			v = s.Side2TiebreakScore
		}
	} else {
		if side == Side1 {
			v = s.Side1Score
		} else {
			v = s.Side2Score
		}
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// MatchScore is the full value produced by the score-entry engine: the set
// list plus its textual projection. It is replaced, never mutated, on every
// accepted token.
type MatchScore struct {
	ScoreString string        `json:"score"`
	Sets        []Set         `json:"sets"`
	WinningSide Side          `json:"winning_side,omitempty"`
	Status      MatchUpStatus `json:"status,omitempty"`
}

// Clone deep-copies the score so handlers can edit a candidate freely.
func (m MatchScore) Clone() MatchScore {
	out := m
	out.Sets = make([]Set, len(m.Sets))
	for i, set := range m.Sets {
		out.Sets[i] = set.Clone()
	}
	return out
}

// IntPtr is a small helper used across packages and tests.
func IntPtr(v int) *int { return &v }
