package scoring

import "github.com/aidosk/courtscore/models"

// handleOutcome applies a non-score match outcome. The outcome is attributed
// to the token's side context; for retirements and defaults the opposite
// side wins. Walkover discards all sets and fixes the score string to its
// marker. Suspensions and interruptions require an existing score and clear
// the winner.
func handleOutcome(w *working, ctx entryContext, tok Token) (bool, string) {
	outcomeSide := w.cfg.entrySide(tok)
	hasScore := len(w.score.Sets) > 0

	switch tok.Raw {
	case KeyRetire:
		if hasScore {
			w.score.Status = models.StatusRetired
		} else {
			w.score.Status = models.StatusDefaulted
		}
		w.score.WinningSide = outcomeSide.Other()

	case KeyDefault:
		w.score.Status = models.StatusDefaulted
		w.score.WinningSide = outcomeSide.Other()

	case KeyWalkover:
		w.score.Sets = nil
		w.score.Status = models.StatusWalkover
		w.score.WinningSide = outcomeSide.Other()

	case KeySuspend:
		if !hasScore {
			return false, msgNoScoreToSuspend
		}
		w.score.Status = models.StatusSuspended
		w.score.WinningSide = models.SideNone

	case KeyInterrupt:
		if !hasScore {
			return false, msgNoScoreToSuspend
		}
		w.score.Status = models.StatusInterrupted
		w.score.WinningSide = models.SideNone

	case KeyAbandon:
		w.score.Status = models.StatusAbandoned
		w.score.WinningSide = models.SideNone

	default:
		return false, msgUnhandledInput
	}

	w.joiner = false
	return true, ""
}
