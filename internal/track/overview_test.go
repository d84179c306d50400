package track_test

import (
	"testing"

	"github.com/gradetrack/gradetrack/internal/grades"
	"github.com/gradetrack/gradetrack/internal/track"
)

func fp(v float64) *float64 { return &v }

func TestBuildOverview_CategorizedClass(t *testing.T) {
	c := track.Class{ID: "cls-1", Name: "Calculus", Credits: 4, Threshold: "B"}
	cats := []track.Category{
		{ID: "cat-ex", ClassID: "cls-1", Name: "Exams", Weight: 60},
		{ID: "cat-hw", ClassID: "cls-1", Name: "Homework", Weight: 40},
	}
	items := []track.GradedItem{
		{ID: "i1", ClassID: "cls-1", CategoryID: "cat-ex", Name: "Midterm", Weight: 100, Score: fp(85)},
		{ID: "i2", ClassID: "cls-1", CategoryID: "cat-hw", Name: "HW1", Weight: 25, Score: fp(100)},
		{ID: "i3", ClassID: "cls-1", CategoryID: "cat-hw", Name: "HW2", Weight: 75, Score: nil},
	}

	ov := track.BuildOverview(c, cats, items)

	if ov.Grade == nil || *ov.Grade != 91.0 {
		t.Fatalf("expected grade 91.0, got %v", ov.Grade)
	}
	if ov.Projected == nil || *ov.Projected != *ov.Grade {
		t.Fatalf("projected must equal current grade, got %v", ov.Projected)
	}
	if ov.Status != grades.StatusGreen {
		t.Fatalf("expected green at 91.0 against B, got %s", ov.Status)
	}
	if !ov.Weights.Valid || ov.Weights.Total != 100 {
		t.Fatalf("expected valid weights totalling 100, got %+v", ov.Weights)
	}
	if len(ov.Categories) != 2 {
		t.Fatalf("expected 2 category overviews, got %d", len(ov.Categories))
	}
	if ov.Categories[0].Average == nil || *ov.Categories[0].Average != 85 {
		t.Fatalf("exams average: expected 85, got %v", ov.Categories[0].Average)
	}
	if ov.Categories[1].Average == nil || *ov.Categories[1].Average != 100 {
		t.Fatalf("homework average: expected 100, got %v", ov.Categories[1].Average)
	}
}

func TestBuildOverview_TargetsUseEarnedPoints(t *testing.T) {
	// One category, 100% of the class; a single graded item at 80 covering
	// 90% of the category. Earned 72 points on 90 completed weight.
	c := track.Class{ID: "cls-1", Name: "Physics", Credits: 3, Threshold: "C"}
	cats := []track.Category{{ID: "cat-1", ClassID: "cls-1", Name: "All", Weight: 100}}
	items := []track.GradedItem{
		{ID: "i1", ClassID: "cls-1", CategoryID: "cat-1", Name: "Bulk", Weight: 90, Score: fp(80)},
		{ID: "i2", ClassID: "cls-1", CategoryID: "cat-1", Name: "Final", Weight: 10, Score: nil},
	}

	ov := track.BuildOverview(c, cats, items)

	var bRow *grades.Target
	for i := range ov.Targets {
		if ov.Targets[i].Letter == "B" {
			bRow = &ov.Targets[i]
		}
	}
	if bRow == nil || bRow.Needed == nil {
		t.Fatalf("expected a B target row with a needed score")
	}
	if *bRow.Needed != 80 {
		t.Fatalf("expected 80 needed for B, got %v", *bRow.Needed)
	}
}

func TestBuildOverview_FlatClass(t *testing.T) {
	c := track.Class{ID: "cls-2", Name: "Seminar", Credits: 2, Threshold: "C"}
	items := []track.GradedItem{
		{ID: "i1", ClassID: "cls-2", Name: "Essay", Weight: 50, Score: fp(70)},
		{ID: "i2", ClassID: "cls-2", Name: "Talk", Weight: 50, Score: nil},
	}

	ov := track.BuildOverview(c, nil, items)

	if ov.Grade == nil || *ov.Grade != 70 {
		t.Fatalf("expected 70, got %v", ov.Grade)
	}
	if len(ov.Categories) != 0 {
		t.Fatalf("flat class must not report categories")
	}
	if !ov.Weights.Valid {
		t.Fatalf("item weights sum to 100, check must be valid: %+v", ov.Weights)
	}
}

func TestBuildOverview_EmptyClass(t *testing.T) {
	c := track.Class{ID: "cls-3", Name: "New", Credits: 3, Threshold: "A"}
	ov := track.BuildOverview(c, nil, nil)

	if ov.Grade != nil {
		t.Fatalf("expected nil grade for empty class, got %v", *ov.Grade)
	}
	if ov.Status != grades.StatusYellow {
		t.Fatalf("unknown grade must be yellow, got %s", ov.Status)
	}
	if ov.Weights.Valid {
		t.Fatalf("no weights cannot be a valid 100, got %+v", ov.Weights)
	}
	// everything still to play for: 100 needed for an A on remaining 100%
	for _, row := range ov.Targets {
		if row.Needed == nil {
			t.Fatalf("%s: expected needed score with full weight remaining", row.Letter)
		}
		if *row.Needed != row.Percent {
			t.Fatalf("%s: expected %v, got %v", row.Letter, row.Percent, *row.Needed)
		}
	}
}

func TestBuildOverview_InvalidWeightsStillComputes(t *testing.T) {
	// Categories sum to 80, not 100: the grade is still computed over what
	// exists, and the check reports the misconfiguration.
	c := track.Class{ID: "cls-4", Name: "Chem", Credits: 3, Threshold: "C"}
	cats := []track.Category{
		{ID: "cat-1", ClassID: "cls-4", Name: "Labs", Weight: 50},
		{ID: "cat-2", ClassID: "cls-4", Name: "Exams", Weight: 30},
	}
	items := []track.GradedItem{
		{ID: "i1", ClassID: "cls-4", CategoryID: "cat-1", Name: "Lab1", Weight: 100, Score: fp(90)},
	}

	ov := track.BuildOverview(c, cats, items)

	if ov.Weights.Valid || ov.Weights.Total != 80 {
		t.Fatalf("expected invalid total 80, got %+v", ov.Weights)
	}
	if ov.Grade == nil || *ov.Grade != 90 {
		t.Fatalf("grade must still compute from present data, got %v", ov.Grade)
	}
}
