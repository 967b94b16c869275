package scoring

import "github.com/aidosk/courtscore/models"

// handleSetTiebreak builds the bracketed tiebreak appended to a set that
// reached its threshold. Typed digits are the trailing side's points; the
// closer computes the winner's value from the margin rule and finalizes the
// set honoring the games leader.
func handleSetTiebreak(w *working, ctx entryContext, tok Token) (bool, string) {
	set := w.lastSet()
	tbf := ctx.setFormat.TiebreakFormat
	loser := tiebreakLoser(set, w.cfg.entrySide(tok))

	if tok.IsDigit() {
		d := tok.Digit()
		target := loser
		if _, winnerStarted := tbValue(set, loser.Other()); ctx.joiner || winnerStarted {
			target = loser.Other()
		}

		v, ok := tbValue(set, target)
		switch {
		case !ok:
			if d == 0 && target == loser {
				return false, msgTiebreakZero
			}
			v = d
		case v >= 10:
			return false, msgTiebreakDigits
		default:
			v = v*10 + d
		}
		if w.cfg.CheckFormat && tbf.NoAD && target == loser && v > tbf.TiebreakTo-1 {
			return false, msgInvalidTiebreak
		}
		setTB(set, target, v)
		w.joiner = false
		return true, ""
	}

	// Closer: compute or validate the high side and close the bracket.
	low, lowOK := tbValue(set, loser)
	high, highOK := tbValue(set, loser.Other())
	switch {
	case !lowOK && !highOK:
		return false, msgInvalidTiebreak
	case lowOK && highOK:
		if done, _ := tiebreakComplete(low, high, *tbf); !done || high <= low {
			return false, msgInvalidTiebreak
		}
	case !w.cfg.Auto:
		return false, msgInvalidTiebreak
	default:
		setTB(set, loser.Other(), computedHigh(low, *tbf))
	}
	w.bracketOpen = false
	w.joiner = false
	return true, ""
}

// handleMatchTiebreak builds a deciding set played entirely as a tiebreak.
// The first digit creates the set and opens the square bracket; digits then
// accumulate per side up to two digits. Unlike the set tiebreak there is no
// leading-zero check here: both sides are entered explicitly, so a zero that
// cannot win is caught by the margin check on close.
func handleMatchTiebreak(w *working, ctx entryContext, tok Token) (bool, string) {
	tbf := ctx.setFormat.TiebreakSet
	if tbf == nil {
		return false, msgUnhandledInput
	}
	entry := w.cfg.entrySide(tok)

	if !ctx.matchTBOpen {
		if !tok.IsDigit() {
			return false, msgNothingToClose
		}
		// Typed digits describe the eventual trailing side.
		set := models.Set{SetNumber: ctx.setNumber, IsMatchTiebreak: true}
		setTB(&set, entry.Other(), tok.Digit())
		w.score.Sets = append(w.score.Sets, set)
		w.bracketOpen = true
		w.joiner = false
		return true, ""
	}

	set := w.lastSet()
	if tok.IsDigit() {
		d := tok.Digit()
		target, started := matchTBTarget(set, ctx.joiner, entry)
		if started {
			v, _ := tbValue(set, target)
			if v >= 10 {
				return false, msgTiebreakDigits
			}
			d = v*10 + d
		}
		setTB(set, target, d)
		w.joiner = false
		return true, ""
	}

	// Closer.
	v1, ok1 := tbValue(set, models.Side1)
	v2, ok2 := tbValue(set, models.Side2)
	switch {
	case !ok1 && !ok2:
		return false, msgInvalidTiebreak
	case ok1 && ok2:
		if done, _ := tiebreakComplete(v1, v2, *tbf); !done {
			return false, msgInvalidTiebreak
		}
	case !w.cfg.Auto:
		return false, msgInvalidTiebreak
	default:
		low, side := v1, models.Side2
		if !ok1 {
			low, side = v2, models.Side1
		}
		setTB(set, side, computedHigh(low, *tbf))
	}
	w.bracketOpen = false
	w.joiner = false
	return true, ""
}

// matchTBTarget picks which side an open match-tiebreak digit lands on and
// whether that side already has digits to extend.
func matchTBTarget(set *models.Set, joiner bool, entry models.Side) (models.Side, bool) {
	v1 := set.Side1TiebreakScore != nil
	v2 := set.Side2TiebreakScore != nil
	switch {
	case v1 != v2:
		started := models.Side1
		if v2 {
			started = models.Side2
		}
		if joiner {
			return started.Other(), false
		}
		return started, true
	case v1 && v2:
		// Both sides entered: keep accumulating on the side entry switched
		// to, which by convention is the entry side itself.
		return entry, true
	default:
		return entry.Other(), false
	}
}

// tiebreakLoser is the side the typed tiebreak digits describe: the side
// trailing by games, or the opposite of the entry side when games are tied.
func tiebreakLoser(set *models.Set, entry models.Side) models.Side {
	if leader := gamesLeader(deref(set.Side1Score), deref(set.Side2Score)); leader != models.SideNone {
		return leader.Other()
	}
	return entry.Other()
}

// computedHigh derives the winner's tiebreak value from the loser's using
// the margin rule, floored at the tiebreak target.
func computedHigh(low int, tbf models.TiebreakFormat) int {
	if high := low + tbf.WinBy(); high > tbf.TiebreakTo {
		return high
	}
	return tbf.TiebreakTo
}

func tbValue(set *models.Set, side models.Side) (int, bool) {
	v := set.Side1TiebreakScore
	if side == models.Side2 {
		v = set.Side2TiebreakScore
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

func setTB(set *models.Set, side models.Side, v int) {
	if side == models.Side1 {
		set.Side1TiebreakScore = &v
	} else {
		set.Side2TiebreakScore = &v
	}
}
