package models

import "time"

// MatchUp is the persisted match record. The scoring engine itself never
// touches the store; the service layer copies engine output onto this record.
type MatchUp struct {
	ID           int           `json:"id"`
	TournamentID int           `json:"tournament_id"`
	Side1Name    string        `json:"side1_name"`
	Side2Name    string        `json:"side2_name"`
	FormatCode   string        `json:"format_code"`
	Score        string        `json:"score"`
	Sets         []Set         `json:"sets"`
	WinningSide  Side          `json:"winning_side,omitempty"`
	Status       MatchUpStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

// MatchScore extracts the engine-facing value from the record.
func (m *MatchUp) MatchScore() MatchScore {
	return MatchScore{
		ScoreString: m.Score,
		Sets:        m.Sets,
		WinningSide: m.WinningSide,
		Status:      m.Status,
	}
}

// ApplyScore copies an engine result back onto the record.
func (m *MatchUp) ApplyScore(score MatchScore) {
	m.Score = score.ScoreString
	m.Sets = score.Sets
	m.WinningSide = score.WinningSide
	m.Status = score.Status
}
