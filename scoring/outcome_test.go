package scoring

import (
	"testing"

	"github.com/aidosk/courtscore/models"
)

func TestRetirement(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")
	score := applyAll(t, format, DefaultConfig(),
		digit('6'), digit('1'),
		Token{Raw: KeyRetire, Shifted: true}) // side 2 retires

	if score.Status != models.StatusRetired {
		t.Errorf("status = %q, want RETIRED", score.Status)
	}
	if score.WinningSide != models.Side1 {
		t.Errorf("match winner = %v, want side 1", score.WinningSide)
	}
	if score.ScoreString != "6-1 RET" {
		t.Errorf("score string = %q, want %q", score.ScoreString, "6-1 RET")
	}
	if len(score.Sets) != 1 || score.Sets[0].WinningSide != models.Side1 {
		t.Errorf("completed sets must survive the retirement: %+v", score.Sets)
	}
}

func TestRetirementWithoutScoreIsDefault(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")
	res := ApplyToken(models.MatchScore{}, format, Token{Raw: KeyRetire}, DefaultConfig())
	if !res.Updated {
		t.Fatalf("retire rejected: %s", res.Message)
	}
	if res.Score.Status != models.StatusDefaulted {
		t.Errorf("status = %q, want DEFAULTED", res.Score.Status)
	}
	if res.Score.WinningSide != models.Side2 {
		t.Errorf("match winner = %v, want side 2", res.Score.WinningSide)
	}
	if res.Score.ScoreString != "DEF" {
		t.Errorf("score string = %q, want %q", res.Score.ScoreString, "DEF")
	}
}

func TestWalkoverDiscardsSets(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")
	score := applyAll(t, format, DefaultConfig(),
		digit('6'), digit('1'),
		Token{Raw: KeyWalkover})

	if score.Status != models.StatusWalkover {
		t.Errorf("status = %q, want WALKOVER", score.Status)
	}
	if len(score.Sets) != 0 {
		t.Errorf("sets = %+v, want none", score.Sets)
	}
	if score.ScoreString != "WO" {
		t.Errorf("score string = %q, want %q", score.ScoreString, "WO")
	}
	if score.WinningSide != models.Side2 {
		t.Errorf("match winner = %v, want side 2", score.WinningSide)
	}
}

func TestSuspension(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")

	// Suspending an empty score is rejected.
	res := ApplyToken(models.MatchScore{}, format, Token{Raw: KeySuspend}, DefaultConfig())
	if res.Updated || res.Message != msgNoScoreToSuspend {
		t.Errorf("got (%v, %q), want rejection with %q", res.Updated, res.Message, msgNoScoreToSuspend)
	}

	score := applyAll(t, format, DefaultConfig(),
		digit('6'), digit('1'),
		Token{Raw: KeySuspend})
	if score.Status != models.StatusSuspended {
		t.Errorf("status = %q, want SUSPENDED", score.Status)
	}
	if score.WinningSide != models.SideNone {
		t.Errorf("suspension must not assign a winner, got %v", score.WinningSide)
	}
	if score.ScoreString != "6-1 SUS" {
		t.Errorf("score string = %q, want %q", score.ScoreString, "6-1 SUS")
	}

	// Entry stays locked until the marker is removed.
	res = ApplyToken(score, format, digit('3'), DefaultConfig())
	if res.Updated || res.Message != msgOutcomeApplied {
		t.Errorf("got (%v, %q), want rejection with %q", res.Updated, res.Message, msgOutcomeApplied)
	}

	// Backspace strips the marker and resumes play.
	res = ApplyToken(score, format, Token{Raw: KeyBackspace}, DefaultConfig())
	if !res.Updated {
		t.Fatalf("backspace rejected: %s", res.Message)
	}
	if res.Score.Status != models.StatusInProgress || res.Score.ScoreString != "6-1 " {
		t.Errorf("after undo: status %q, string %q; want IN_PROGRESS, %q",
			res.Score.Status, res.Score.ScoreString, "6-1 ")
	}
}

func TestAbandonment(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")

	// Abandonment applies even to an empty score.
	res := ApplyToken(models.MatchScore{}, format, Token{Raw: KeyAbandon}, DefaultConfig())
	if !res.Updated {
		t.Fatalf("abandon rejected: %s", res.Message)
	}
	if res.Score.Status != models.StatusAbandoned || res.Score.WinningSide != models.SideNone {
		t.Errorf("status/winner = %q/%v, want ABANDONED/none", res.Score.Status, res.Score.WinningSide)
	}
	if res.Score.ScoreString != "ABN" {
		t.Errorf("score string = %q, want %q", res.Score.ScoreString, "ABN")
	}
}

func TestOutcomeBlockedMidEntry(t *testing.T) {
	format := mustFormat(t, "SET3-S:6/TB7")

	setups := [][]Token{
		{digit('6')},                         // open first value
		{digit('6'), digit('6')},             // pending tiebreak bracket
		{digit('6'), digit('6'), digit('3')}, // tiebreak digits entered
	}
	for _, setup := range setups {
		score := applyAll(t, format, DefaultConfig(), setup...)
		res := ApplyToken(score, format, Token{Raw: KeyRetire}, DefaultConfig())
		if res.Updated {
			t.Errorf("retire accepted mid-entry at %q", score.ScoreString)
		}
		if res.Message != msgOutcomeBlocked {
			t.Errorf("at %q: message = %q, want %q", score.ScoreString, res.Message, msgOutcomeBlocked)
		}
	}
}
