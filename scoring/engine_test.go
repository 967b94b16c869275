package scoring

import (
	"reflect"
	"testing"

	"github.com/aidosk/courtscore/formats"
	"github.com/aidosk/courtscore/models"
)

func mustFormat(t *testing.T, code string) models.MatchFormat {
	t.Helper()
	format, err := formats.Parse(code)
	if err != nil {
		t.Fatalf("Parse(%q): %v", code, err)
	}
	return format
}

func digit(d byte) Token { return Token{Raw: string(d)} }

func shifted(d byte) Token { return Token{Raw: string(d), Shifted: true} }

// applyAll feeds tokens through the engine, failing the test on any
// rejection.
func applyAll(t *testing.T, format models.MatchFormat, cfg Config, tokens ...Token) models.MatchScore {
	t.Helper()
	var score models.MatchScore
	for i, tok := range tokens {
		res := ApplyToken(score, format, tok, cfg)
		if !res.Updated {
			t.Fatalf("token %d (%q) rejected: %s (score %q)", i, tok.Raw, res.Message, score.ScoreString)
		}
		score = res.Score
	}
	return score
}

func TestStandardSetEntry(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")

	tests := []struct {
		name   string
		tokens []Token
		want   string
		sets   int
	}{
		{"auto low digit", []Token{digit('1')}, "1-6 ", 1},
		{"auto zero", []Token{digit('0')}, "0-6 ", 1},
		{"one under setTo", []Token{digit('5')}, "5-7 ", 1},
		{"ambiguous six stays open", []Token{digit('6')}, "6", 1},
		{"continuation completes", []Token{digit('6'), digit('1')}, "6-1 ", 1},
		{"continuation to tiebreak", []Token{digit('6'), digit('6')}, "6-6(", 1},
		{"seven six pending", []Token{digit('7'), digit('6')}, "7-6(", 1},
		{"seven five complete", []Token{digit('7'), digit('5')}, "7-5 ", 1},
		{"two sets", []Token{digit('2'), digit('3')}, "2-6 3-6", 2},
		{"shifted digit flips sides", []Token{shifted('1')}, "6-1 ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := applyAll(t, format, DefaultConfig(), tt.tokens...)
			if score.ScoreString != tt.want {
				t.Errorf("score string = %q, want %q", score.ScoreString, tt.want)
			}
			if len(score.Sets) != tt.sets {
				t.Errorf("len(sets) = %d, want %d", len(score.Sets), tt.sets)
			}
		})
	}
}

func TestScenarioStandardSet(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")
	score := applyAll(t, format, DefaultConfig(), digit('6'), digit('1'))

	set := score.Sets[0]
	if deref(set.Side1Score) != 6 || deref(set.Side2Score) != 1 {
		t.Errorf("set = %d-%d, want 6-1", deref(set.Side1Score), deref(set.Side2Score))
	}
	if set.WinningSide != models.Side1 {
		t.Errorf("set winner = %v, want side 1", set.WinningSide)
	}
	if score.ScoreString != "6-1 " {
		t.Errorf("score string = %q, want %q", score.ScoreString, "6-1 ")
	}
	if score.Status != models.StatusInProgress {
		t.Errorf("status = %q, want IN_PROGRESS", score.Status)
	}
}

func TestScenarioSetTiebreak(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")
	score := applyAll(t, format, DefaultConfig(),
		digit('6'), digit('6'), // 6-6(
		digit('6'),             // low tiebreak points
		Token{Raw: KeySpace},   // closer
	)

	set := score.Sets[0]
	if deref(set.Side1Score) != 7 || deref(set.Side2Score) != 6 {
		t.Errorf("games = %d-%d, want 7-6", deref(set.Side1Score), deref(set.Side2Score))
	}
	if deref(set.Side1TiebreakScore) != 8 || deref(set.Side2TiebreakScore) != 6 {
		t.Errorf("tiebreak = %d-%d, want 8-6",
			deref(set.Side1TiebreakScore), deref(set.Side2TiebreakScore))
	}
	if set.WinningSide != models.Side1 {
		t.Errorf("set winner = %v, want side 1", set.WinningSide)
	}
	if score.ScoreString != "7-6(8-6) " {
		t.Errorf("score string = %q, want %q", score.ScoreString, "7-6(8-6) ")
	}
}

func TestScenarioLockedMatch(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")
	score := applyAll(t, format, DefaultConfig(), digit('1'), digit('2'))

	if score.WinningSide != models.Side2 {
		t.Fatalf("match winner = %v, want side 2", score.WinningSide)
	}
	if score.Status != models.StatusCompleted {
		t.Fatalf("status = %q, want COMPLETED", score.Status)
	}

	for _, tok := range []Token{digit('3'), {Raw: KeyRetire}, {Raw: KeySpace}, {Raw: KeyJoiner}} {
		res := ApplyToken(score, format, tok, DefaultConfig())
		if res.Updated {
			t.Errorf("token %q accepted on a complete matchUp", tok.Raw)
		}
		if res.Message != msgMatchComplete {
			t.Errorf("token %q message = %q, want %q", tok.Raw, res.Message, msgMatchComplete)
		}
	}
}

func TestRejectionLeavesStateUntouched(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")
	score := applyAll(t, format, DefaultConfig(), digit('6'), digit('6'), digit('3'))

	// Unrecognized key, and an outcome while the tiebreak entry is pending.
	for _, tok := range []Token{{Raw: "x"}, {Raw: KeyRetire}} {
		res := ApplyToken(score, format, tok, DefaultConfig())
		if res.Updated {
			t.Fatalf("token %q unexpectedly accepted", tok.Raw)
		}
		if !reflect.DeepEqual(res.Score, score) {
			t.Errorf("rejected token %q altered state: %+v != %+v", tok.Raw, res.Score, score)
		}
	}
}

func TestInvalidKeyRejected(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")
	res := ApplyToken(models.MatchScore{}, format, Token{Raw: "q"}, DefaultConfig())
	if res.Updated || res.Message != msgInvalidKey {
		t.Errorf("got (%v, %q), want rejection with %q", res.Updated, res.Message, msgInvalidKey)
	}
}

func TestInvalidContinuationRejected(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")
	open := applyAll(t, format, DefaultConfig(), digit('7'))

	// 7-0 through 7-4 are unreachable scores under a tiebreak format.
	for _, d := range []byte{'0', '4'} {
		res := ApplyToken(open, format, digit(d), DefaultConfig())
		if res.Updated {
			t.Errorf("7-%c accepted, want rejection", d)
		}
		if res.Message != msgInvalidSetScore {
			t.Errorf("message = %q, want %q", res.Message, msgInvalidSetScore)
		}
	}
}

func TestFirstValueBoundary(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")
	res := ApplyToken(models.MatchScore{}, format, digit('8'), DefaultConfig())
	if res.Updated || res.Message != msgInvalidSetScore {
		t.Errorf("got (%v, %q), want rejection with %q", res.Updated, res.Message, msgInvalidSetScore)
	}

	// Without format checking the digit is tolerated as an open first value.
	cfg := DefaultConfig()
	cfg.CheckFormat = false
	res = ApplyToken(models.MatchScore{}, format, digit('8'), cfg)
	if !res.Updated {
		t.Fatalf("unchecked entry rejected: %s", res.Message)
	}
	if res.Score.ScoreString != "8" {
		t.Errorf("score string = %q, want %q", res.Score.ScoreString, "8")
	}
}

func TestJoinerPlacement(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")

	// Legal: after an ambiguous first value.
	score := applyAll(t, format, DefaultConfig(), digit('6'), Token{Raw: KeyJoiner})
	if score.ScoreString != "6-" {
		t.Errorf("score string = %q, want %q", score.ScoreString, "6-")
	}

	// Illegal: empty score, doubled joiner, completed set.
	for _, setup := range [][]Token{
		nil,
		{digit('6'), {Raw: KeyJoiner}},
		{digit('1')},
	} {
		base := applyAll(t, format, DefaultConfig(), setup...)
		res := ApplyToken(base, format, Token{Raw: KeyJoiner}, DefaultConfig())
		if res.Updated {
			t.Errorf("joiner accepted after %q", base.ScoreString)
		}
		if res.Message != msgInvalidJoiner {
			t.Errorf("message = %q, want %q", res.Message, msgInvalidJoiner)
		}
	}
}

func TestDecidingSetUsesFinalFormat(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7-F:TB10")
	score := applyAll(t, format, DefaultConfig(),
		digit('1'),           // 1-6
		shifted('1'),         // 6-1: one set each
		digit('8'),           // opens the match tiebreak
		Token{Raw: KeySpace}, // closes it: 10-8 to side 1
	)

	if score.ScoreString != "1-6 6-1 [10-8]" {
		t.Errorf("score string = %q, want %q", score.ScoreString, "1-6 6-1 [10-8]")
	}
	last := score.Sets[2]
	if !last.IsMatchTiebreak {
		t.Fatal("deciding set should be a match tiebreak")
	}
	if deref(last.Side1TiebreakScore) != 10 || deref(last.Side2TiebreakScore) != 8 {
		t.Errorf("tiebreak = %d-%d, want 10-8",
			deref(last.Side1TiebreakScore), deref(last.Side2TiebreakScore))
	}
	if score.WinningSide != models.Side1 || score.Status != models.StatusCompleted {
		t.Errorf("winner/status = %v/%q, want side 1 / COMPLETED", score.WinningSide, score.Status)
	}
}

func TestWinnerInvariant(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")
	cfg := DefaultConfig()

	var score models.MatchScore
	for _, tok := range []Token{digit('1'), shifted('2'), digit('3')} {
		res := ApplyToken(score, format, tok, cfg)
		if !res.Updated {
			t.Fatalf("token %q rejected: %s", tok.Raw, res.Message)
		}
		score = res.Score

		var won1, won2 int
		for _, set := range score.Sets {
			switch set.WinningSide {
			case models.Side1:
				won1++
			case models.Side2:
				won2++
			}
		}
		decided := won1 >= 2 || won2 >= 2
		if decided != (score.WinningSide != models.SideNone) {
			t.Errorf("after %q: winner %v inconsistent with set counts %d-%d",
				score.ScoreString, score.WinningSide, won1, won2)
		}
	}
	if score.WinningSide != models.Side2 {
		t.Errorf("final winner = %v, want side 2", score.WinningSide)
	}
}

func TestNoInputReachesUnhandledBranch(t *testing.T) {
	// Every recognized key against every representative entry state must be
	// either accepted or rejected with a specific message; nothing may fall
	// through to the catch-all.
	format := mustFormat(t, "SET3-S:6/TB7-F:TB10")
	timed := mustFormat(t, "SET1-S:T20")

	states := []struct {
		format models.MatchFormat
		setup  []Token
	}{
		{format, nil},
		{format, []Token{digit('6')}},
		{format, []Token{digit('6'), Token{Raw: KeyJoiner}}},
		{format, []Token{digit('6'), digit('6')}},
		{format, []Token{digit('6'), digit('6'), digit('3')}},
		{format, []Token{digit('1')}},
		{format, []Token{digit('1'), shifted('1')}},
		{format, []Token{digit('1'), shifted('1'), digit('8')}},
		{format, []Token{digit('6'), digit('1'), Token{Raw: KeyRetire}}},
		{timed, []Token{digit('5')}},
		{timed, []Token{digit('5'), Token{Raw: KeyJoiner}, digit('5')}},
	}

	keys := []Token{
		digit('0'), digit('5'), digit('9'), shifted('3'),
		{Raw: KeyJoiner}, {Raw: KeySpace}, {Raw: KeyBackspace},
		{Raw: KeyRetire}, {Raw: KeyDefault}, {Raw: KeyWalkover},
		{Raw: KeyAbandon}, {Raw: KeySuspend}, {Raw: KeyInterrupt},
	}

	for _, state := range states {
		score := applyAll(t, state.format, DefaultConfig(), state.setup...)
		for _, tok := range keys {
			res := ApplyToken(score, state.format, tok, DefaultConfig())
			if res.Message == msgUnhandledInput {
				t.Errorf("token %q at %q reached the unhandled branch", tok.Raw, score.ScoreString)
			}
			if !res.Updated && res.Message == "" {
				t.Errorf("token %q at %q rejected without a message", tok.Raw, score.ScoreString)
			}
		}
	}
}

func TestCompletionInvariant(t *testing.T) {
	// Every set with a winner must satisfy the completion evaluator.
	format := mustFormat(t, "SET3-S:6/TB7-F:TB10")
	score := applyAll(t, format, DefaultConfig(),
		digit('6'), digit('6'), digit('3'), Token{Raw: KeySpace}, // 7-6(7-3)
		digit('4'),                       // 4-6
		digit('5'), Token{Raw: KeySpace}, // match tiebreak 10-5
	)

	for i, set := range score.Sets {
		if set.WinningSide == models.SideNone {
			continue
		}
		sf := format.SetFormatFor(i + 1)
		done, leader := isSetComplete(set, sf)
		if !done || leader != set.WinningSide {
			t.Errorf("set %d (%+v): evaluator (%v, %v) disagrees with recorded winner %v",
				i+1, set, done, leader, set.WinningSide)
		}
	}
}
