package formats

import (
	"errors"
	"testing"

	"github.com/aidosk/courtscore/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		code string
		want models.MatchFormat
	}{
		{
			code: "SET3-S:6/TB7",
			want: models.MatchFormat{
				BestOf: 3,
				SetFormat: models.SetFormat{
					SetTo:          6,
					TiebreakAt:     6,
					TiebreakFormat: &models.TiebreakFormat{TiebreakTo: 7},
				},
			},
		},
		{
			code: "SET3-S:6/TB7-F:TB10",
			want: models.MatchFormat{
				BestOf: 3,
				SetFormat: models.SetFormat{
					SetTo:          6,
					TiebreakAt:     6,
					TiebreakFormat: &models.TiebreakFormat{TiebreakTo: 7},
				},
				FinalSetFormat: &models.SetFormat{
					TiebreakSet: &models.TiebreakFormat{TiebreakTo: 10},
				},
			},
		},
		{
			code: "SET5-S:6/TB7-F:6",
			want: models.MatchFormat{
				BestOf: 5,
				SetFormat: models.SetFormat{
					SetTo:          6,
					TiebreakAt:     6,
					TiebreakFormat: &models.TiebreakFormat{TiebreakTo: 7},
				},
				FinalSetFormat: &models.SetFormat{SetTo: 6},
			},
		},
		{
			code: "SET3-S:4/TB5@3",
			want: models.MatchFormat{
				BestOf: 3,
				SetFormat: models.SetFormat{
					SetTo:          4,
					TiebreakAt:     3,
					TiebreakFormat: &models.TiebreakFormat{TiebreakTo: 5},
				},
			},
		},
		{
			code: "SET1-S:8NOAD/TB7NOAD",
			want: models.MatchFormat{
				BestOf: 1,
				SetFormat: models.SetFormat{
					SetTo:          8,
					NoAD:           true,
					TiebreakAt:     8,
					TiebreakFormat: &models.TiebreakFormat{TiebreakTo: 7, NoAD: true},
				},
			},
		},
		{
			code: "SET1-S:T20",
			want: models.MatchFormat{
				BestOf:    1,
				SetFormat: models.SetFormat{Timed: true, Minutes: 20},
			},
		},
		{
			code: "SET3-S:T10P",
			want: models.MatchFormat{
				BestOf:    3,
				SetFormat: models.SetFormat{Timed: true, Minutes: 10, PointsBased: true},
			},
		},
		{
			code: "SET1-S:TB21",
			want: models.MatchFormat{
				BestOf: 1,
				SetFormat: models.SetFormat{
					TiebreakSet: &models.TiebreakFormat{TiebreakTo: 21},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Parse(tt.code)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.code, err)
			}
			assertSetFormat(t, "set", got.SetFormat, tt.want.SetFormat)
			if got.BestOf != tt.want.BestOf {
				t.Errorf("BestOf = %d, want %d", got.BestOf, tt.want.BestOf)
			}
			if (got.FinalSetFormat == nil) != (tt.want.FinalSetFormat == nil) {
				t.Fatalf("FinalSetFormat presence = %v, want %v",
					got.FinalSetFormat != nil, tt.want.FinalSetFormat != nil)
			}
			if got.FinalSetFormat != nil {
				assertSetFormat(t, "final set", *got.FinalSetFormat, *tt.want.FinalSetFormat)
			}

			if round := Serialize(got); round != tt.code {
				t.Errorf("Serialize(Parse(%q)) = %q", tt.code, round)
			}
		})
	}
}

func assertSetFormat(t *testing.T, label string, got, want models.SetFormat) {
	t.Helper()
	if got.SetTo != want.SetTo || got.NoAD != want.NoAD ||
		got.TiebreakAt != want.TiebreakAt ||
		got.Timed != want.Timed || got.Minutes != want.Minutes ||
		got.PointsBased != want.PointsBased {
		t.Errorf("%s format = %+v, want %+v", label, got, want)
	}
	assertTiebreak(t, label+" tiebreak", got.TiebreakFormat, want.TiebreakFormat)
	assertTiebreak(t, label+" tiebreak set", got.TiebreakSet, want.TiebreakSet)
}

func assertTiebreak(t *testing.T, label string, got, want *models.TiebreakFormat) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Errorf("%s presence = %v, want %v", label, got != nil, want != nil)
		return
	}
	if got != nil && *got != *want {
		t.Errorf("%s = %+v, want %+v", label, *got, *want)
	}
}

func TestParseErrors(t *testing.T) {
	codes := []string{
		"",
		"SET3",
		"BO3-S:6/TB7",
		"SET2-S:6/TB7",  // even best-of
		"SET0-S:6/TB7",  // zero best-of
		"SETX-S:6/TB7",  // non-numeric best-of
		"SET3-6/TB7",    // missing S: prefix
		"SET3-S:",       // empty set clause
		"SET3-S:0/TB7",  // zero set target
		"SET3-S:6/XB7",  // bad tiebreak prefix
		"SET3-S:6/TB0",  // zero tiebreak target
		"SET3-S:6/TB7@0",   // threshold below range
		"SET3-S:6/TB7@9",   // threshold above the set target
		"SET3-S:T0",        // zero minutes
		"SET3-S:TX",        // non-numeric minutes
		"SET3-S:6/TB7-X:6", // trailing clause must be F:
		"SET3-S:6/TB7-F:6-F:6",
	}

	for _, code := range codes {
		if _, err := Parse(code); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", code, err)
		}
	}
}
