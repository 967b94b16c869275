package scoring

import (
	"testing"

	"github.com/aidosk/courtscore/models"
)

func TestTimedSetEntry(t *testing.T) {
	format := mustFormat(t, "SET1-S:T20")

	t.Run("explicit both sides", func(t *testing.T) {
		score := applyAll(t, format, DefaultConfig(),
			digit('1'), digit('2'),
			Token{Raw: KeyJoiner},
			digit('9'),
			Token{Raw: KeySpace})
		if score.ScoreString != "12-9" {
			t.Errorf("score string = %q, want %q", score.ScoreString, "12-9")
		}
		if score.WinningSide != models.Side1 || score.Status != models.StatusCompleted {
			t.Errorf("winner/status = %v/%q, want side 1 / COMPLETED", score.WinningSide, score.Status)
		}
	})

	t.Run("third digit truncates the oldest", func(t *testing.T) {
		score := applyAll(t, format, DefaultConfig(), digit('1'), digit('2'), digit('3'))
		if got := deref(score.Sets[0].Side1Score); got != 23 {
			t.Errorf("side 1 score = %d, want 23", got)
		}
	})

	t.Run("shifted digits address the other side", func(t *testing.T) {
		score := applyAll(t, format, DefaultConfig(), digit('7'), shifted('4'))
		if score.ScoreString != "7-4" {
			t.Errorf("score string = %q, want %q", score.ScoreString, "7-4")
		}
	})

	t.Run("advance requires both values", func(t *testing.T) {
		score := applyAll(t, format, DefaultConfig(), digit('5'))
		res := ApplyToken(score, format, Token{Raw: KeySpace}, DefaultConfig())
		if res.Updated || res.Message != msgInvalidSetScore {
			t.Errorf("got (%v, %q), want rejection with %q", res.Updated, res.Message, msgInvalidSetScore)
		}
	})

	t.Run("tied set cannot be advanced", func(t *testing.T) {
		score := applyAll(t, format, DefaultConfig(),
			digit('5'), Token{Raw: KeyJoiner}, digit('5'))
		res := ApplyToken(score, format, Token{Raw: KeySpace}, DefaultConfig())
		if res.Updated || res.Message != msgTiedTimedSet {
			t.Errorf("got (%v, %q), want rejection with %q", res.Updated, res.Message, msgTiedTimedSet)
		}
	})

	t.Run("no automatic completion", func(t *testing.T) {
		// Values that would finish a standard set leave a timed set open.
		score := applyAll(t, format, DefaultConfig(),
			digit('6'), Token{Raw: KeyJoiner}, digit('1'))
		if score.Sets[0].WinningSide != models.SideNone {
			t.Errorf("timed set closed without an advance: %+v", score.Sets[0])
		}
		if score.Status != models.StatusInProgress {
			t.Errorf("status = %q, want IN_PROGRESS", score.Status)
		}
	})
}

func TestTimedMultiSet(t *testing.T) {
	format := mustFormat(t, "SET3-S:T10P")
	score := applyAll(t, format, DefaultConfig(),
		digit('8'), Token{Raw: KeyJoiner}, digit('6'), Token{Raw: KeySpace},
		digit('4'), Token{Raw: KeyJoiner}, digit('9'), Token{Raw: KeySpace},
		digit('7'), Token{Raw: KeyJoiner}, digit('5'), Token{Raw: KeySpace})

	if score.ScoreString != "8-6 4-9 7-5" {
		t.Errorf("score string = %q, want %q", score.ScoreString, "8-6 4-9 7-5")
	}
	if score.WinningSide != models.Side1 {
		t.Errorf("match winner = %v, want side 1", score.WinningSide)
	}
}
