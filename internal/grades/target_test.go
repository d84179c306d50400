package grades_test

import (
	"testing"

	"github.com/gradetrack/gradetrack/internal/grades"
)

func TestScoreNeeded_WorkedExample(t *testing.T) {
	// 80% average on 90% of the weight has earned 72 points; holding an 80
	// overall requires exactly 80 on the remaining 10%.
	got := grades.ScoreNeeded(72, 90, 10, 80)
	if got == nil || *got != 80 {
		t.Fatalf("expected 80, got %v", got)
	}
}

func TestScoreNeeded_NothingRemaining(t *testing.T) {
	if got := grades.ScoreNeeded(72, 100, 0, 80); got != nil {
		t.Fatalf("expected nil with zero remaining weight, got %v", *got)
	}
	if got := grades.ScoreNeeded(72, 100, -5, 80); got != nil {
		t.Fatalf("expected nil with negative remaining weight, got %v", *got)
	}
}

func TestScoreNeeded_UnclampedAboveHundred(t *testing.T) {
	// 50 points earned on 75% weight, target 90: needs 160 on the last 25%.
	got := grades.ScoreNeeded(50, 75, 25, 90)
	if got == nil || *got != 160 {
		t.Fatalf("expected raw 160 (no clamping), got %v", got)
	}
}

func TestScoreNeeded_NegativeWhenSecured(t *testing.T) {
	got := grades.ScoreNeeded(75, 80, 20, 70)
	if got == nil || *got >= 0 {
		t.Fatalf("expected negative raw value when target already secured, got %v", got)
	}
}

func TestTargets_Table(t *testing.T) {
	rows := grades.Targets(72, 90, 10)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (A/B/C), got %d", len(rows))
	}

	byLetter := map[string]grades.Target{}
	for _, r := range rows {
		byLetter[r.Letter] = r
	}

	a := byLetter["A"]
	if a.Needed == nil || *a.Needed != 180 {
		t.Fatalf("A: expected raw 180, got %v", a.Needed)
	}
	if a.Achievable {
		t.Fatalf("A: 180 needed must be not achievable")
	}
	if a.Display == nil || *a.Display != 100 {
		t.Fatalf("A: display must clamp to 100, got %v", a.Display)
	}

	b := byLetter["B"]
	if b.Needed == nil || *b.Needed != 80 || !b.Achievable || b.Secured {
		t.Fatalf("B: expected achievable 80, got %+v", b)
	}

	c := byLetter["C"]
	if c.Needed == nil || *c.Needed != -20 {
		t.Fatalf("C: expected raw -20, got %v", c.Needed)
	}
	if !c.Secured {
		t.Fatalf("C: negative needed means secured")
	}
	if c.Display == nil || *c.Display != 0 {
		t.Fatalf("C: display must clamp to 0, got %v", c.Display)
	}
}

func TestTargets_GradeAlreadyFixed(t *testing.T) {
	rows := grades.Targets(85, 100, 0)
	for _, r := range rows {
		if r.Needed != nil {
			t.Fatalf("%s: expected nil needed with nothing remaining, got %v", r.Letter, *r.Needed)
		}
	}
	byLetter := map[string]grades.Target{}
	for _, r := range rows {
		byLetter[r.Letter] = r
	}
	if byLetter["A"].Secured {
		t.Fatalf("A not secured at 85 earned")
	}
	if !byLetter["B"].Secured || !byLetter["C"].Secured {
		t.Fatalf("B and C secured at 85 earned")
	}
}
