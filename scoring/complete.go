package scoring

import "github.com/aidosk/courtscore/models"

// pairKind classifies a pair of game scores against a set format.
type pairKind int

const (
	pairInvalid pairKind = iota
	pairInProgress
	pairTiebreakPending
	pairComplete
)

// classifyGamePair decides what a (side1, side2) game pair means under the
// given standard set format: a finished set, a set waiting on its tiebreak,
// a plausible mid-set score, or an illegal combination.
func classifyGamePair(sf models.SetFormat, s1, s2 int) pairKind {
	hi, lo := s1, s2
	if s2 > s1 {
		hi, lo = s2, s1
	}

	margin := 2
	if sf.NoAD {
		margin = 1
	}

	if sf.HasTiebreak() {
		tbAt := sf.TiebreakAt
		switch {
		case hi == tbAt && lo == tbAt:
			return pairTiebreakPending
		case hi == tbAt+1 && lo == tbAt:
			// Decided by the tiebreak; complete only once tiebreak scores
			// are recorded, which isSetComplete checks separately.
			return pairTiebreakPending
		case hi > sf.SetTo+1:
			return pairInvalid
		case hi == sf.SetTo+1:
			// Only the one-over score reached by winning at setTo-margin
			// (e.g. 7-5) is legal; the tiebreak pair was caught above.
			if hi-lo == margin {
				return pairComplete
			}
			return pairInvalid
		case hi == sf.SetTo:
			if hi-lo >= margin {
				return pairComplete
			}
			return pairInProgress
		default:
			return pairInProgress
		}
	}

	// Advantage set: play continues past setTo until the margin is reached.
	switch {
	case hi < sf.SetTo:
		return pairInProgress
	case hi == sf.SetTo:
		if hi-lo >= margin {
			return pairComplete
		}
		return pairInProgress
	default:
		if hi-lo == margin {
			return pairComplete
		}
		if hi-lo < margin {
			return pairInProgress
		}
		return pairInvalid
	}
}

// isSetComplete is the set-completion evaluator: it reports whether the set
// is finished under its format and, if so, which side leads. Timed sets are
// never completed here; they close only on an explicit advance.
func isSetComplete(set models.Set, sf models.SetFormat) (bool, models.Side) {
	if set.IsMatchTiebreak || sf.IsTiebreakSet() {
		tb := sf.TiebreakSet
		if tb == nil {
			// A match-tiebreak set recorded under a non-tiebreak format can
			// still be judged by its own fields.
			tb = sf.TiebreakFormat
		}
		if tb == nil || set.Side1TiebreakScore == nil || set.Side2TiebreakScore == nil {
			return false, models.SideNone
		}
		return tiebreakComplete(*set.Side1TiebreakScore, *set.Side2TiebreakScore, *tb)
	}

	if sf.Timed {
		return false, models.SideNone
	}

	if set.Side1Score == nil || set.Side2Score == nil {
		return false, models.SideNone
	}
	s1, s2 := *set.Side1Score, *set.Side2Score

	switch classifyGamePair(sf, s1, s2) {
	case pairComplete:
		return true, gamesLeader(s1, s2)
	case pairTiebreakPending:
		if set.Side1TiebreakScore == nil || set.Side2TiebreakScore == nil {
			return false, models.SideNone
		}
		done, tbLeader := tiebreakComplete(*set.Side1TiebreakScore, *set.Side2TiebreakScore, *sf.TiebreakFormat)
		if !done {
			return false, models.SideNone
		}
		// A decided tiebreak must agree with the game-score leader.
		if leader := gamesLeader(s1, s2); leader != models.SideNone && leader != tbLeader {
			return false, models.SideNone
		}
		return true, tbLeader
	default:
		return false, models.SideNone
	}
}

func tiebreakComplete(t1, t2 int, tb models.TiebreakFormat) (bool, models.Side) {
	hi, lo := t1, t2
	if t2 > t1 {
		hi, lo = t2, t1
	}
	if hi >= tb.TiebreakTo && hi-lo >= tb.WinBy() {
		return true, gamesLeader(t1, t2)
	}
	return false, models.SideNone
}

func gamesLeader(s1, s2 int) models.Side {
	switch {
	case s1 > s2:
		return models.Side1
	case s2 > s1:
		return models.Side2
	default:
		return models.SideNone
	}
}

// matchWinner is the match-winner evaluator: whichever side's completed-set
// count first reaches the clinch threshold wins.
func matchWinner(sets []models.Set, format models.MatchFormat) models.Side {
	need := format.SetsToWin()
	var won1, won2 int
	for _, set := range sets {
		switch set.WinningSide {
		case models.Side1:
			won1++
		case models.Side2:
			won2++
		}
	}
	switch {
	case won1 >= need:
		return models.Side1
	case won2 >= need:
		return models.Side2
	default:
		return models.SideNone
	}
}
