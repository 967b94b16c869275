package scoring

import "github.com/aidosk/courtscore/models"

// Rejection messages. Every rejected token reports one of these; none of them
// is ever surfaced as a Go error.
const (
	msgInvalidKey       = "invalid key"
	msgMatchComplete    = "matchUp is complete"
	msgOutcomeApplied   = "outcome already applied"
	msgOutcomeBlocked   = "cannot apply outcome with incomplete entry"
	msgInvalidJoiner    = "invalid location for joiner"
	msgInvalidSetScore  = "invalid set score"
	msgTiebreakZero     = "tiebreak cannot begin with zero"
	msgTiebreakDigits   = "tiebreak digit limit"
	msgInvalidTiebreak  = "invalid tiebreak value"
	msgNothingToUndo    = "nothing to undo"
	msgNothingToClose   = "nothing to close"
	msgNoScoreToSuspend = "no score to suspend"
	msgTiedTimedSet     = "tied timed set cannot be advanced"
	msgUnhandledInput   = "unhandled input"
)

// working is the mutable candidate a handler edits. The input score is cloned
// into it so a rejection can always return the caller's state untouched.
type working struct {
	score  models.MatchScore
	format models.MatchFormat
	cfg    Config
	joiner bool // trailing joiner present after this operation
	// bracketOpen marks the last set's tiebreak entry as still awaiting its
	// closer; finalize must not complete that set even when the entered
	// values already satisfy the evaluator.
	bracketOpen bool
}

func (w *working) lastSet() *models.Set {
	if len(w.score.Sets) == 0 {
		return nil
	}
	return &w.score.Sets[len(w.score.Sets)-1]
}

// ApplyToken applies one input token to a match score under the given format
// and entry configuration. It is a pure transition: the input score is never
// mutated, and a rejected token returns it unchanged alongside a message.
func ApplyToken(score models.MatchScore, format models.MatchFormat, tok Token, cfg Config) Result {
	if cfg.LowSide == models.SideNone {
		cfg.LowSide = models.Side1
	}

	ctx := analyze(score, format)
	w := &working{
		score:       score.Clone(),
		format:      format,
		cfg:         cfg,
		joiner:      ctx.joiner,
		bracketOpen: ctx.tiebreakOpen || ctx.matchTBOpen,
	}

	var (
		updated bool
		message string
	)

	switch classify(ctx, tok) {
	case classUnrecognized:
		message = msgInvalidKey
	case classUndo:
		updated, message = handleUndo(w, ctx)
	case classLocked:
		message = msgMatchComplete
	case classOutcomeLocked:
		message = msgOutcomeApplied
	case classOutcome:
		updated, message = handleOutcome(w, ctx, tok)
	case classOutcomeBlocked:
		message = msgOutcomeBlocked
	case classTimedEntry:
		updated, message = handleTimedEntry(w, ctx, tok)
	case classJoiner:
		updated, message = handleJoiner(w, ctx)
	case classJoinerInvalid:
		message = msgInvalidJoiner
	case classMatchTiebreak:
		updated, message = handleMatchTiebreak(w, ctx, tok)
	case classSetTiebreak:
		updated, message = handleSetTiebreak(w, ctx, tok)
	case classSetContinuation:
		updated, message = handleSetContinuation(w, ctx, tok)
	case classSetEntry:
		updated, message = handleSetEntry(w, ctx, tok)
	case classNoTarget:
		message = msgNothingToClose
	default:
		message = msgUnhandledInput
	}

	if !updated {
		return Result{Updated: false, Message: message, Score: score}
	}

	finalize(w)
	return Result{Updated: true, Message: message, Score: w.score}
}

// finalize re-runs the set-completion and match-winner evaluators over the
// full set list, refreshes the status, and re-renders the score string. An
// outcome handler's explicit status and winner are preserved. A set whose
// tiebreak bracket is still open is left open: only the closer finalizes a
// bracket, regardless of the values entered so far.
func finalize(w *working) {
	for i := range w.score.Sets {
		set := &w.score.Sets[i]
		if set.WinningSide != models.SideNone {
			continue
		}
		if w.bracketOpen && i == len(w.score.Sets)-1 {
			continue
		}
		sf := w.format.SetFormatFor(i + 1)
		if done, leader := isSetComplete(*set, sf); done {
			set.WinningSide = leader
			bumpTiedGames(set)
		}
	}

	if !w.score.Status.IsOutcome() {
		w.score.WinningSide = matchWinner(w.score.Sets, w.format)
		switch {
		case w.score.WinningSide != models.SideNone:
			w.score.Status = models.StatusCompleted
		case len(w.score.Sets) > 0:
			w.score.Status = models.StatusInProgress
		default:
			w.score.Status = models.StatusToBePlayed
		}
	}

	w.score.ScoreString = Render(w.score, w.format, w.joiner)
}
