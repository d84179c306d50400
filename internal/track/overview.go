package track

import (
	"context"

	"github.com/gradetrack/gradetrack/internal/grades"
)

// CategoryOverview is one category with its computed average.
type CategoryOverview struct {
	Category
	Average *float64 `json:"average"`
}

// ClassOverview is everything a class card or report row needs: the
// best-effort grade, the weight check shown alongside it, per-category
// averages, the A/B/C target table, and the status color.
type ClassOverview struct {
	Class      Class              `json:"class"`
	Grade      *float64           `json:"grade"`
	Projected  *float64           `json:"projected"`
	Status     grades.Status      `json:"status"`
	Weights    grades.WeightCheck `json:"weights"`
	Categories []CategoryOverview `json:"categories,omitempty"`
	Targets    []grades.Target    `json:"targets"`
}

// BuildOverview assembles one class's snapshot and runs the grade engine
// over it. Pure: callers must pass categories and items fetched together so
// the numbers come from one consistent snapshot.
func BuildOverview(c Class, cats []Category, items []GradedItem) ClassOverview {
	ov := ClassOverview{Class: c}

	if len(cats) > 0 {
		byCat := map[string][]grades.GradedItem{}
		for _, it := range items {
			byCat[it.CategoryID] = append(byCat[it.CategoryID], engineItem(it))
		}
		weights := make([]float64, 0, len(cats))
		catGrades := make([]grades.CategoryGrade, 0, len(cats))
		for _, cat := range cats {
			avg := grades.CategoryAverage(byCat[cat.ID])
			weights = append(weights, cat.Weight)
			catGrades = append(catGrades, grades.CategoryGrade{Weight: cat.Weight, Grade: avg})
			ov.Categories = append(ov.Categories, CategoryOverview{Category: cat, Average: grades.Round1p(avg)})
		}
		ov.Weights = grades.ValidateCategoryWeights(weights)
		ov.Grade = grades.ClassGrade(catGrades)
	} else {
		eng := make([]grades.GradedItem, 0, len(items))
		weights := make([]float64, 0, len(items))
		for _, it := range items {
			eng = append(eng, engineItem(it))
			weights = append(weights, it.Weight)
		}
		ov.Weights = grades.ValidateCategoryWeights(weights)
		ov.Grade = grades.FlatGrade(eng)
	}

	earned, completed := earnedPoints(cats, items)
	ov.Targets = grades.Targets(earned, completed, 100-completed)
	ov.Status = grades.Classify(ov.Grade, c.Threshold)
	ov.Grade = grades.Round1p(ov.Grade)
	// grade if nothing else changes; not a forecast
	ov.Projected = ov.Grade
	return ov
}

// LoadOverview fetches a class's records in one place and builds its
// overview, so every caller (API, report) sees the same snapshot logic.
func LoadOverview(ctx context.Context, store Store, classID string) (ClassOverview, error) {
	c, err := store.GetClass(ctx, classID)
	if err != nil {
		return ClassOverview{}, err
	}
	cats, err := store.ListCategories(ctx, classID)
	if err != nil {
		return ClassOverview{}, err
	}
	items, err := store.ListItems(ctx, classID)
	if err != nil {
		return ClassOverview{}, err
	}
	return BuildOverview(c, cats, items), nil
}

func engineItem(it GradedItem) grades.GradedItem {
	return grades.GradedItem{ID: it.ID, CategoryID: it.CategoryID, Weight: it.Weight, Score: it.Score}
}

// earnedPoints flattens the class to percentage points toward 100: each
// graded item contributes score * effectiveWeight/100 where effectiveWeight
// is its share of the whole class. Feeds the target solver.
func earnedPoints(cats []Category, items []GradedItem) (earned, completedWeight float64) {
	catWeight := map[string]float64{}
	for _, c := range cats {
		catWeight[c.ID] = c.Weight
	}
	for _, it := range items {
		eff := it.Weight
		if len(cats) > 0 {
			eff = it.Weight * catWeight[it.CategoryID] / 100
		}
		if it.Score == nil {
			continue
		}
		earned += *it.Score * eff / 100
		completedWeight += eff
	}
	return earned, completedWeight
}
