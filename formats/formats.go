// Package formats parses and serializes compact matchUp format codes such as
// "SET3-S:6/TB7" or "SET3-S:4/TB7@3-F:TB10" into the structures consumed by
// the scoring engine.
package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aidosk/courtscore/models"
)

var ErrInvalidFormat = errors.New("invalid matchUp format code")

const (
	bestOfPrefix   = "SET"
	setPrefix      = "S:"
	finalSetPrefix = "F:"
	tiebreakPrefix = "TB"
	timedPrefix    = "T"
	noAdSuffix     = "NOAD"
	pointsSuffix   = "P"
)

// Parse turns a format code into a MatchFormat. The grammar is
//
//	SET<bestOf>-S:<set>[-F:<set>]
//	<set> = <setTo>[NOAD][/TB<to>[NOAD][@<at>]] | TB<to>[NOAD] | T<minutes>[P]
//
// A "/TB" clause without "@" puts the tiebreak at the setTo threshold.
func Parse(code string) (models.MatchFormat, error) {
	var out models.MatchFormat

	parts := strings.Split(strings.TrimSpace(code), "-")
	if len(parts) < 2 || len(parts) > 3 {
		return out, fmt.Errorf("%w: %q", ErrInvalidFormat, code)
	}

	if !strings.HasPrefix(parts[0], bestOfPrefix) {
		return out, fmt.Errorf("%w: missing SET prefix in %q", ErrInvalidFormat, code)
	}
	bestOf, err := strconv.Atoi(strings.TrimPrefix(parts[0], bestOfPrefix))
	if err != nil || bestOf < 1 || bestOf%2 == 0 {
		return out, fmt.Errorf("%w: best-of must be an odd positive count in %q", ErrInvalidFormat, code)
	}
	out.BestOf = bestOf

	if !strings.HasPrefix(parts[1], setPrefix) {
		return out, fmt.Errorf("%w: missing S: clause in %q", ErrInvalidFormat, code)
	}
	setFormat, err := parseSetFormat(strings.TrimPrefix(parts[1], setPrefix))
	if err != nil {
		return out, err
	}
	out.SetFormat = setFormat

	if len(parts) == 3 {
		if !strings.HasPrefix(parts[2], finalSetPrefix) {
			return out, fmt.Errorf("%w: trailing clause must be F: in %q", ErrInvalidFormat, code)
		}
		finalFormat, err := parseSetFormat(strings.TrimPrefix(parts[2], finalSetPrefix))
		if err != nil {
			return out, err
		}
		out.FinalSetFormat = &finalFormat
	}

	return out, nil
}

func parseSetFormat(clause string) (models.SetFormat, error) {
	var out models.SetFormat
	if clause == "" {
		return out, fmt.Errorf("%w: empty set clause", ErrInvalidFormat)
	}

	switch {
	case strings.HasPrefix(clause, tiebreakPrefix):
		tb, rest, err := parseTiebreak(clause)
		if err != nil {
			return out, err
		}
		if rest != "" {
			return out, fmt.Errorf("%w: unexpected %q after tiebreak set", ErrInvalidFormat, rest)
		}
		out.TiebreakSet = &tb
		return out, nil

	case strings.HasPrefix(clause, timedPrefix):
		spec := strings.TrimPrefix(clause, timedPrefix)
		if strings.HasSuffix(spec, pointsSuffix) {
			out.PointsBased = true
			spec = strings.TrimSuffix(spec, pointsSuffix)
		}
		minutes, err := strconv.Atoi(spec)
		if err != nil || minutes <= 0 {
			return out, fmt.Errorf("%w: bad timed set clause %q", ErrInvalidFormat, clause)
		}
		out.Timed = true
		out.Minutes = minutes
		return out, nil
	}

	gamesSpec, tbSpec, hasTiebreak := strings.Cut(clause, "/")
	if strings.HasSuffix(gamesSpec, noAdSuffix) {
		out.NoAD = true
		gamesSpec = strings.TrimSuffix(gamesSpec, noAdSuffix)
	}
	setTo, err := strconv.Atoi(gamesSpec)
	if err != nil || setTo <= 0 {
		return out, fmt.Errorf("%w: bad set target %q", ErrInvalidFormat, clause)
	}
	out.SetTo = setTo

	if hasTiebreak {
		tb, at, err := parseTiebreak(tbSpec)
		if err != nil {
			return out, err
		}
		out.TiebreakFormat = &tb
		out.TiebreakAt = setTo
		if at != "" {
			tiebreakAt, err := strconv.Atoi(strings.TrimPrefix(at, "@"))
			if err != nil || tiebreakAt <= 0 || tiebreakAt > setTo {
				return out, fmt.Errorf("%w: bad tiebreak threshold %q", ErrInvalidFormat, tbSpec)
			}
			out.TiebreakAt = tiebreakAt
		}
	}

	return out, nil
}

// parseTiebreak reads a TB<to>[NOAD] prefix and returns whatever follows
// (the "@<at>" threshold, when present) unparsed.
func parseTiebreak(spec string) (models.TiebreakFormat, string, error) {
	var out models.TiebreakFormat
	if !strings.HasPrefix(spec, tiebreakPrefix) {
		return out, "", fmt.Errorf("%w: bad tiebreak clause %q", ErrInvalidFormat, spec)
	}
	spec = strings.TrimPrefix(spec, tiebreakPrefix)

	rest := ""
	if idx := strings.Index(spec, "@"); idx >= 0 {
		rest = spec[idx:]
		spec = spec[:idx]
	}
	if strings.HasSuffix(spec, noAdSuffix) {
		out.NoAD = true
		spec = strings.TrimSuffix(spec, noAdSuffix)
	}
	to, err := strconv.Atoi(spec)
	if err != nil || to <= 0 {
		return out, "", fmt.Errorf("%w: bad tiebreak target %q", ErrInvalidFormat, spec)
	}
	out.TiebreakTo = to
	return out, rest, nil
}

// Serialize renders a MatchFormat back into its code. Serialize(Parse(code))
// round-trips for every code Parse accepts.
func Serialize(format models.MatchFormat) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%d-%s%s", bestOfPrefix, format.BestOf, setPrefix, serializeSetFormat(format.SetFormat))
	if format.FinalSetFormat != nil {
		fmt.Fprintf(&b, "-%s%s", finalSetPrefix, serializeSetFormat(*format.FinalSetFormat))
	}
	return b.String()
}

func serializeSetFormat(f models.SetFormat) string {
	switch {
	case f.Timed:
		code := fmt.Sprintf("%s%d", timedPrefix, f.Minutes)
		if f.PointsBased {
			code += pointsSuffix
		}
		return code
	case f.TiebreakSet != nil:
		return serializeTiebreak(*f.TiebreakSet)
	}

	code := strconv.Itoa(f.SetTo)
	if f.NoAD {
		code += noAdSuffix
	}
	if f.TiebreakFormat != nil {
		code += "/" + serializeTiebreak(*f.TiebreakFormat)
		if f.TiebreakAt > 0 && f.TiebreakAt != f.SetTo {
			code += "@" + strconv.Itoa(f.TiebreakAt)
		}
	}
	return code
}

func serializeTiebreak(tb models.TiebreakFormat) string {
	code := fmt.Sprintf("%s%d", tiebreakPrefix, tb.TiebreakTo)
	if tb.NoAD {
		code += noAdSuffix
	}
	return code
}
