package scoring

import "github.com/aidosk/courtscore/models"

// handleSetEntry starts a new standard set from its first digit. A digit
// that cannot belong to the winning side is auto-completed: the other side
// receives the computed high value (tiebreak threshold, setTo, or the
// one-over score). An ambiguous digit leaves the set open for continuation.
func handleSetEntry(w *working, ctx entryContext, tok Token) (bool, string) {
	d := tok.Digit()
	sf := ctx.setFormat
	entry := w.cfg.entrySide(tok)

	if w.cfg.CheckFormat && d > maxFirstValue(sf) {
		return false, msgInvalidSetScore
	}

	set := models.Set{SetNumber: ctx.setNumber}
	setGame(&set, entry, d)

	if !ambiguousFirstValue(sf, d) {
		setGame(&set, entry.Other(), autoHighValue(sf, d))
	}

	w.score.Sets = append(w.score.Sets, set)
	w.joiner = false
	return true, ""
}

// handleSetContinuation feeds a digit into the open set: either extending a
// still-ambiguous first value or entering the second side's score, validated
// against the tiebreak-at, NoAD and one-over-setTo boundaries.
func handleSetContinuation(w *working, ctx entryContext, tok Token) (bool, string) {
	d := tok.Digit()
	sf := ctx.setFormat
	set := w.lastSet()

	first, firstSide := singleGameValue(set)
	if firstSide != models.SideNone {
		if !ctx.joiner && canExtendFirstValue(sf, first, d) {
			setGame(set, firstSide, first*10+d)
			return true, ""
		}
		pair := pairWith(set, firstSide.Other(), d)
		if w.cfg.CheckFormat && classifyGamePair(sf, pair[0], pair[1]) == pairInvalid {
			return false, msgInvalidSetScore
		}
		setGame(set, firstSide.Other(), d)
		w.joiner = false
		return true, ""
	}

	// Both values already present: the digit extends the in-progress score,
	// preferring whichever side keeps the pair legal.
	for _, side := range []models.Side{models.Side2, models.Side1} {
		v, _ := set.Score(side)
		if v >= 100 {
			continue
		}
		pair := pairWith(set, side, v*10+d)
		if classifyGamePair(sf, pair[0], pair[1]) != pairInvalid {
			setGame(set, side, v*10+d)
			return true, ""
		}
	}
	return false, msgInvalidSetScore
}

// handleJoiner marks the first value of the open entry as finished, awaiting
// the second side. classify already established the location is legal in
// outline; the bracket cases still require a first value.
func handleJoiner(w *working, ctx entryContext) (bool, string) {
	set := w.lastSet()
	if ctx.matchTBOpen || ctx.tiebreakOpen {
		entered := (set.Side1TiebreakScore != nil) != (set.Side2TiebreakScore != nil)
		if !entered {
			return false, msgInvalidJoiner
		}
	}
	w.joiner = true
	return true, ""
}

// maxFirstValue is the highest legal first value for a set: one over the set
// target when a tiebreak can stretch the set, unbounded (two digits) for
// advantage sets.
func maxFirstValue(sf models.SetFormat) int {
	if sf.HasTiebreak() {
		return sf.SetTo + 1
	}
	return 99
}

// ambiguousFirstValue reports whether the digit could still belong to the
// winning side (or grow by another digit) and therefore cannot be
// auto-completed.
func ambiguousFirstValue(sf models.SetFormat, d int) bool {
	if d >= sf.SetTo {
		return true
	}
	return canExtendFirstValue(sf, d, 0)
}

func canExtendFirstValue(sf models.SetFormat, v, d int) bool {
	return v > 0 && v*10+d <= maxFirstValue(sf)
}

// autoHighValue computes the winning side's score for an unambiguous low
// value: the tiebreak threshold forces threshold+1, one under setTo forces
// the margin score, anything lower loses to setTo.
func autoHighValue(sf models.SetFormat, d int) int {
	switch {
	case sf.HasTiebreak() && d == sf.TiebreakAt:
		return d + 1
	case d+1 == sf.SetTo:
		if sf.NoAD {
			return d + 1
		}
		return d + 2
	default:
		return sf.SetTo
	}
}

func setGame(set *models.Set, side models.Side, v int) {
	if side == models.Side1 {
		set.Side1Score = &v
	} else {
		set.Side2Score = &v
	}
}

// singleGameValue returns the lone entered game value and its side, or
// SideNone when zero or both values are present.
func singleGameValue(set *models.Set) (int, models.Side) {
	if set.Side1Score != nil && set.Side2Score == nil {
		return *set.Side1Score, models.Side1
	}
	if set.Side2Score != nil && set.Side1Score == nil {
		return *set.Side2Score, models.Side2
	}
	return 0, models.SideNone
}

// pairWith returns the (side1, side2) game pair that results from giving the
// candidate value to the given side.
func pairWith(set *models.Set, side models.Side, v int) [2]int {
	pair := [2]int{deref(set.Side1Score), deref(set.Side2Score)}
	if side == models.Side1 {
		pair[0] = v
	} else {
		pair[1] = v
	}
	return pair
}

// bumpTiedGames lifts the winner one game clear when a tiebreak decided a
// set that closed tied at the threshold (6-6 becomes 7-6).
func bumpTiedGames(set *models.Set) {
	if set.IsMatchTiebreak || set.WinningSide == models.SideNone {
		return
	}
	if set.Side1TiebreakScore == nil || set.Side2TiebreakScore == nil {
		return
	}
	if set.Side1Score == nil || set.Side2Score == nil || *set.Side1Score != *set.Side2Score {
		return
	}
	if set.WinningSide == models.Side1 {
		*set.Side1Score++
	} else {
		*set.Side2Score++
	}
}
