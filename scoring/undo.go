package scoring

import "github.com/aidosk/courtscore/models"

// handleUndo removes exactly one layer of the most recent entry: an outcome
// marker, a match-tiebreak digit or computed pair, a set-tiebreak digit, a
// game digit, or the open set itself once no numeric content remains.
// Auto-computed values are recomputed rather than restored, so undo is
// state-equivalent, not byte-identical, to the forward history.
func handleUndo(w *working, ctx entryContext) (bool, string) {
	score := &w.score
	w.joiner = false

	if score.Status.IsOutcome() {
		// Stripping a walkover cannot restore the sets it discarded.
		score.Status = models.StatusToBePlayed
		score.WinningSide = models.SideNone
		return true, ""
	}

	if ctx.joiner {
		// The trailing joiner is its own layer; clearing the flag is enough.
		return true, ""
	}

	if len(score.Sets) == 0 {
		return false, msgNothingToUndo
	}

	// Winner/status on the match are refreshed by finalize after the layer
	// below is peeled off.
	score.WinningSide = models.SideNone
	set := &score.Sets[len(score.Sets)-1]

	switch {
	case set.IsMatchTiebreak:
		undoMatchTiebreak(score, set)
	case set.Side1TiebreakScore != nil || set.Side2TiebreakScore != nil:
		undoSetTiebreak(set, w.format.SetFormatFor(set.SetNumber))
	case ctx.tiebreakOpen:
		// Open bracket with no digits: drop back to the second game value.
		set.WinningSide = models.SideNone
		trimGameDigit(score, set)
	default:
		set.WinningSide = models.SideNone
		trimGameDigit(score, set)
	}
	return true, ""
}

func undoMatchTiebreak(score *models.MatchScore, set *models.Set) {
	if set.WinningSide != models.SideNone {
		// Reopen: drop the winner's (possibly computed) value.
		clearTB(set, set.WinningSide)
		set.WinningSide = models.SideNone
		if set.Side1TiebreakScore == nil && set.Side2TiebreakScore == nil {
			dropLastSet(score)
		}
		return
	}
	// Trim the most recently defined digit, side2 first in side order.
	for _, side := range []models.Side{models.Side2, models.Side1} {
		if v, ok := tbValue(set, side); ok {
			if v >= 10 {
				setTB(set, side, v/10)
			} else {
				clearTB(set, side)
			}
			break
		}
	}
	if set.Side1TiebreakScore == nil && set.Side2TiebreakScore == nil {
		dropLastSet(score)
	}
}

func undoSetTiebreak(set *models.Set, sf models.SetFormat) {
	if set.WinningSide != models.SideNone {
		// Closed bracket: drop the winner's tiebreak value and revert the
		// game bump so the bracket reopens at the tied threshold.
		winner := set.WinningSide
		clearTB(set, winner)
		set.WinningSide = models.SideNone
		if sf.HasTiebreak() {
			tied := sf.TiebreakAt
			setGame(set, models.Side1, tied)
			setGame(set, models.Side2, tied)
		}
		return
	}
	for _, side := range []models.Side{models.Side2, models.Side1} {
		if v, ok := tbValue(set, side); ok {
			if v >= 10 {
				setTB(set, side, v/10)
			} else {
				clearTB(set, side)
			}
			break
		}
	}
}

// trimGameDigit removes the most recent game digit of the open set in side
// order (the continuation side first) and discards the set once both values
// are gone.
func trimGameDigit(score *models.MatchScore, set *models.Set) {
	for _, side := range []models.Side{models.Side2, models.Side1} {
		var v *int
		if side == models.Side2 {
			v = set.Side2Score
		} else {
			v = set.Side1Score
		}
		if v == nil {
			continue
		}
		if *v >= 10 {
			setGame(set, side, *v/10)
		} else {
			clearGame(set, side)
		}
		break
	}
	if set.Side1Score == nil && set.Side2Score == nil {
		dropLastSet(score)
	}
}

func dropLastSet(score *models.MatchScore) {
	score.Sets = score.Sets[:len(score.Sets)-1]
}

func clearTB(set *models.Set, side models.Side) {
	if side == models.Side1 {
		set.Side1TiebreakScore = nil
	} else {
		set.Side2TiebreakScore = nil
	}
}

func clearGame(set *models.Set, side models.Side) {
	if side == models.Side1 {
		set.Side1Score = nil
	} else {
		set.Side2Score = nil
	}
}
