package scoring

import (
	"strings"

	"github.com/aidosk/courtscore/models"
)

// entryContext is the immutable flag bundle describing where in the entry
// grammar the cursor currently sits. All fields are pure derivations of the
// score value, the match format, and the score string.
type entryContext struct {
	setNumber int              // set the next entry applies to
	setFormat models.SetFormat // format applicable to that set, final-set override included

	lastOpen     bool // the last set exists and has no winner yet
	tiebreakOpen bool // a set-tiebreak bracket is open on the last set
	matchTBOpen  bool // the last set is an open match tiebreak
	bothGames    bool // the open set has both game values entered
	joiner       bool // the score string ends with a joiner

	outcome  bool // an outcome status has been applied
	complete bool // the match winner is decided
	timed    bool // the applicable set format is timed
}

func analyze(score models.MatchScore, format models.MatchFormat) entryContext {
	ctx := entryContext{
		joiner:   strings.HasSuffix(score.ScoreString, KeyJoiner),
		outcome:  score.Status.IsOutcome(),
		complete: score.WinningSide != models.SideNone,
	}

	n := len(score.Sets)
	ctx.setNumber = n + 1
	if n > 0 && score.Sets[n-1].WinningSide == models.SideNone {
		ctx.setNumber = n
		ctx.lastOpen = true
		last := score.Sets[n-1]
		ctx.matchTBOpen = last.IsMatchTiebreak
		if !last.IsMatchTiebreak && last.Side1Score != nil && last.Side2Score != nil {
			ctx.bothGames = true
			sf := format.SetFormatFor(ctx.setNumber)
			ctx.tiebreakOpen = classifyGamePair(sf, *last.Side1Score, *last.Side2Score) == pairTiebreakPending
		}
	}

	ctx.setFormat = format.SetFormatFor(ctx.setNumber)
	ctx.timed = ctx.setFormat.Timed
	return ctx
}

// inputClass is the tagged classification of one token against the current
// context. The router consumes it exhaustively; precedence among overlapping
// conditions lives entirely in classify.
type inputClass int

const (
	classUnrecognized inputClass = iota
	classUndo
	classLocked         // match decided, token is not backspace
	classOutcomeLocked  // non-terminal outcome applied, token is not backspace
	classOutcome        // outcome token in a legal position
	classOutcomeBlocked // outcome token while entry is pending
	classTimedEntry
	classJoiner
	classJoinerInvalid
	classMatchTiebreak
	classSetTiebreak
	classSetContinuation
	classSetEntry
	classNoTarget // closer with nothing to close
)

func classify(ctx entryContext, tok Token) inputClass {
	switch {
	case !tok.recognized():
		return classUnrecognized
	case tok.Raw == KeyBackspace:
		return classUndo
	case ctx.complete:
		return classLocked
	case ctx.outcome:
		return classOutcomeLocked
	case tok.IsOutcome():
		if ctx.tiebreakOpen || ctx.matchTBOpen || (ctx.lastOpen && !ctx.timed && !ctx.bothGames) {
			return classOutcomeBlocked
		}
		return classOutcome
	case ctx.timed:
		return classTimedEntry
	case tok.Raw == KeyJoiner:
		if joinerLegal(ctx) {
			return classJoiner
		}
		return classJoinerInvalid
	case ctx.matchTBOpen:
		return classMatchTiebreak
	case ctx.tiebreakOpen:
		return classSetTiebreak
	case tok.IsDigit():
		if ctx.lastOpen {
			return classSetContinuation
		}
		if ctx.setFormat.IsTiebreakSet() {
			return classMatchTiebreak
		}
		return classSetEntry
	default: // closer with no open bracket or set
		return classNoTarget
	}
}

// joinerLegal: a joiner may close a first value awaiting its counterpart, or
// separate the two sides of an open tiebreak entry. Anywhere else it is an
// invalid location.
func joinerLegal(ctx entryContext) bool {
	if ctx.joiner || !ctx.lastOpen {
		return false
	}
	if ctx.matchTBOpen || ctx.tiebreakOpen {
		return true // handler checks that a first value exists
	}
	return !ctx.bothGames
}
