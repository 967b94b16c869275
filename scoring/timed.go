package scoring

import "github.com/aidosk/courtscore/models"

// handleTimedEntry is the self-contained branch for clock-limited formats.
// Both sides are entered explicitly: unshifted digits accumulate on the low
// side until the joiner (or a shifted digit) switches entry over, and the
// advance key promotes the higher-scoring side. There is no tiebreak concept
// and no automatic high-side computation; a two-digit cap truncates the
// older digit instead of rejecting.
func handleTimedEntry(w *working, ctx entryContext, tok Token) (bool, string) {
	switch {
	case tok.IsDigit():
		return timedDigit(w, ctx, tok)
	case tok.Raw == KeyJoiner:
		return timedJoiner(w, ctx)
	case tok.IsCloser():
		return timedAdvance(w, ctx)
	default:
		return false, msgInvalidKey
	}
}

func timedDigit(w *working, ctx entryContext, tok Token) (bool, string) {
	d := tok.Digit()

	if !ctx.lastOpen {
		set := models.Set{SetNumber: ctx.setNumber}
		setGame(&set, w.cfg.entrySide(tok), d)
		w.score.Sets = append(w.score.Sets, set)
		w.joiner = false
		return true, ""
	}

	set := w.lastSet()
	target := timedTarget(set, ctx.joiner, w.cfg.entrySide(tok), tok.Shifted != w.cfg.ShiftFirst)
	v, ok := set.Score(target)
	if ok {
		v = (v*10 + d) % 100 // keep the two most recent digits
	} else {
		v = d
	}
	setGame(set, target, v)
	w.joiner = false
	return true, ""
}

// timedTarget: shifted digits always address the shift side; otherwise entry
// stays on the low side until the second side has been opened by a joiner or
// by earlier digits.
func timedTarget(set *models.Set, joiner bool, entry models.Side, shifted bool) models.Side {
	if shifted {
		return entry
	}
	low := entry
	if _, ok := set.Score(low.Other()); ok || joiner {
		return low.Other()
	}
	return low
}

func timedJoiner(w *working, ctx entryContext) (bool, string) {
	if !ctx.lastOpen || ctx.joiner {
		return false, msgInvalidJoiner
	}
	set := w.lastSet()
	_, lowOK := set.Score(w.cfg.LowSide)
	_, otherOK := set.Score(w.cfg.LowSide.Other())
	if !lowOK || otherOK {
		return false, msgInvalidJoiner
	}
	w.joiner = true
	return true, ""
}

// timedAdvance closes the open timed set, promoting the higher-scoring side.
func timedAdvance(w *working, ctx entryContext) (bool, string) {
	if !ctx.lastOpen {
		return false, msgNothingToClose
	}
	set := w.lastSet()
	v1, ok1 := set.Score(models.Side1)
	v2, ok2 := set.Score(models.Side2)
	if !ok1 || !ok2 {
		return false, msgInvalidSetScore
	}
	winner := gamesLeader(v1, v2)
	if winner == models.SideNone {
		return false, msgTiedTimedSet
	}
	set.WinningSide = winner
	w.joiner = false
	return true, ""
}
