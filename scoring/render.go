package scoring

import (
	"strconv"
	"strings"

	"github.com/aidosk/courtscore/models"
)

// Outcome markers appended to the score string.
const (
	markerRetired     = "RET"
	markerDefaulted   = "DEF"
	markerWalkover    = "WO"
	markerSuspended   = "SUS"
	markerAbandoned   = "ABN"
	markerInterrupted = "INT"
)

func outcomeMarker(status models.MatchUpStatus) string {
	switch status {
	case models.StatusRetired:
		return markerRetired
	case models.StatusDefaulted:
		return markerDefaulted
	case models.StatusWalkover:
		return markerWalkover
	case models.StatusSuspended:
		return markerSuspended
	case models.StatusAbandoned:
		return markerAbandoned
	case models.StatusInterrupted:
		return markerInterrupted
	default:
		return ""
	}
}

// Render produces the canonical score string for a score value. The string
// is a pure projection of the set list, the status, and the joiner flag (a
// trailing joiner is the only entry state the sets themselves cannot carry).
// Completed sets carry a trailing separator; a decided match does not.
func Render(score models.MatchScore, format models.MatchFormat, joiner bool) string {
	if score.Status == models.StatusWalkover {
		return markerWalkover
	}

	var b strings.Builder
	for i, set := range score.Sets {
		sf := format.SetFormatFor(i + 1)
		last := i == len(score.Sets)-1
		if set.WinningSide != models.SideNone {
			b.WriteString(renderClosedSet(set, sf))
			if !(last && score.WinningSide != models.SideNone) {
				b.WriteString(" ")
			}
			continue
		}
		b.WriteString(renderOpenSet(set, sf, joiner && last))
	}

	out := b.String()
	if marker := outcomeMarker(score.Status); marker != "" {
		switch {
		case out == "":
			out = marker
		case strings.HasSuffix(out, " "):
			out += marker
		default:
			out += " " + marker
		}
	}
	return out
}

func renderClosedSet(set models.Set, sf models.SetFormat) string {
	if set.IsMatchTiebreak {
		return "[" + tbPair(set) + "]"
	}
	out := gamePair(set)
	if set.Side1TiebreakScore != nil && set.Side2TiebreakScore != nil {
		out += "(" + tbPair(set) + ")"
	}
	return out
}

func renderOpenSet(set models.Set, sf models.SetFormat, joiner bool) string {
	if set.IsMatchTiebreak {
		return "[" + openPair(set.Side1TiebreakScore, set.Side2TiebreakScore, joiner)
	}

	if set.Side1Score != nil && set.Side2Score != nil {
		out := gamePair(set)
		if classifyGamePair(sf, *set.Side1Score, *set.Side2Score) == pairTiebreakPending {
			out += "(" + openPair(set.Side1TiebreakScore, set.Side2TiebreakScore, joiner)
		}
		return out
	}
	return openPair(set.Side1Score, set.Side2Score, joiner)
}

// openPair renders a partially entered pair: both values when present, a
// single bare value otherwise, with the joiner dash when it has been keyed.
func openPair(v1, v2 *int, joiner bool) string {
	switch {
	case v1 != nil && v2 != nil:
		return strconv.Itoa(*v1) + "-" + strconv.Itoa(*v2)
	case v1 != nil:
		out := strconv.Itoa(*v1)
		if joiner {
			out += "-"
		}
		return out
	case v2 != nil:
		out := strconv.Itoa(*v2)
		if joiner {
			out += "-"
		}
		return out
	default:
		return ""
	}
}

func gamePair(set models.Set) string {
	return strconv.Itoa(deref(set.Side1Score)) + "-" + strconv.Itoa(deref(set.Side2Score))
}

func tbPair(set models.Set) string {
	return strconv.Itoa(deref(set.Side1TiebreakScore)) + "-" + strconv.Itoa(deref(set.Side2TiebreakScore))
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
