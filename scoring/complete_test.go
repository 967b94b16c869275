package scoring

import (
	"testing"

	"github.com/aidosk/courtscore/formats"
	"github.com/aidosk/courtscore/models"
)

func TestClassifyGamePair(t *testing.T) {
	tb7, err := formats.Parse("SET3-S:6/TB7")
	if err != nil {
		t.Fatal(err)
	}
	adv, err := formats.Parse("SET3-S:6")
	if err != nil {
		t.Fatal(err)
	}
	noAD, err := formats.Parse("SET3-S:4NOAD")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		sf     models.SetFormat
		s1, s2 int
		want   pairKind
	}{
		{"mid set", tb7.SetFormat, 3, 2, pairInProgress},
		{"straight win", tb7.SetFormat, 6, 1, pairComplete},
		{"margin win at boundary", tb7.SetFormat, 6, 4, pairComplete},
		{"one short of margin", tb7.SetFormat, 6, 5, pairInProgress},
		{"seven five", tb7.SetFormat, 7, 5, pairComplete},
		{"tied at threshold", tb7.SetFormat, 6, 6, pairTiebreakPending},
		{"tiebreak decided pair", tb7.SetFormat, 6, 7, pairTiebreakPending},
		{"unreachable seven four", tb7.SetFormat, 7, 4, pairInvalid},
		{"beyond one over", tb7.SetFormat, 8, 6, pairInvalid},

		{"advantage extends", adv.SetFormat, 7, 6, pairInProgress},
		{"advantage win", adv.SetFormat, 9, 7, pairComplete},
		{"advantage overshoot", adv.SetFormat, 9, 6, pairInvalid},

		{"noAD single margin", noAD.SetFormat, 4, 3, pairComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyGamePair(tt.sf, tt.s1, tt.s2); got != tt.want {
				t.Errorf("classifyGamePair(%d, %d) = %v, want %v", tt.s1, tt.s2, got, tt.want)
			}
		})
	}
}

func TestIsSetComplete(t *testing.T) {
	format, err := formats.Parse("SET3-S:6/TB7")
	if err != nil {
		t.Fatal(err)
	}
	sf := format.SetFormat

	tests := []struct {
		name   string
		set    models.Set
		done   bool
		leader models.Side
	}{
		{
			"straight set",
			models.Set{Side1Score: models.IntPtr(6), Side2Score: models.IntPtr(2)},
			true, models.Side1,
		},
		{
			"open set",
			models.Set{Side1Score: models.IntPtr(5), Side2Score: models.IntPtr(4)},
			false, models.SideNone,
		},
		{
			"single value",
			models.Set{Side1Score: models.IntPtr(6)},
			false, models.SideNone,
		},
		{
			"tiebreak pending without points",
			models.Set{Side1Score: models.IntPtr(6), Side2Score: models.IntPtr(6)},
			false, models.SideNone,
		},
		{
			"tiebreak decided",
			models.Set{
				Side1Score: models.IntPtr(6), Side2Score: models.IntPtr(6),
				Side1TiebreakScore: models.IntPtr(7), Side2TiebreakScore: models.IntPtr(3),
			},
			true, models.Side1,
		},
		{
			"tiebreak below target",
			models.Set{
				Side1Score: models.IntPtr(6), Side2Score: models.IntPtr(6),
				Side1TiebreakScore: models.IntPtr(5), Side2TiebreakScore: models.IntPtr(3),
			},
			false, models.SideNone,
		},
		{
			"tiebreak contradicts games leader",
			models.Set{
				Side1Score: models.IntPtr(7), Side2Score: models.IntPtr(6),
				Side1TiebreakScore: models.IntPtr(3), Side2TiebreakScore: models.IntPtr(7),
			},
			false, models.SideNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done, leader := isSetComplete(tt.set, sf)
			if done != tt.done || leader != tt.leader {
				t.Errorf("isSetComplete = (%v, %v), want (%v, %v)", done, leader, tt.done, tt.leader)
			}
		})
	}
}

func TestMatchWinner(t *testing.T) {
	format, err := formats.Parse("SET3-S:6/TB7")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		winners []models.Side
		want    models.Side
	}{
		{"no sets", nil, models.SideNone},
		{"one each", []models.Side{models.Side1, models.Side2}, models.SideNone},
		{"straight sets", []models.Side{models.Side2, models.Side2}, models.Side2},
		{"decided in three", []models.Side{models.Side1, models.Side2, models.Side1}, models.Side1},
		{"open last set", []models.Side{models.Side1, models.SideNone}, models.SideNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets := make([]models.Set, len(tt.winners))
			for i, winner := range tt.winners {
				sets[i] = models.Set{SetNumber: i + 1, WinningSide: winner}
			}
			if got := matchWinner(sets, format); got != tt.want {
				t.Errorf("matchWinner = %v, want %v", got, tt.want)
			}
		})
	}
}
