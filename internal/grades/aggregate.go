package grades

// GradedItem is the engine's view of one gradable unit (exam, assignment).
// Weight is a percent of the item's container (its category, or the whole
// class on the flat path). Score is nil while ungraded; ungraded items are
// excluded from averages and counted toward remaining weight instead.
type GradedItem struct {
	ID         string   `json:"id"`
	CategoryID string   `json:"category_id,omitempty"`
	Weight     float64  `json:"weight"`
	Score      *float64 `json:"score"`
}

// CategoryGrade pairs a category's class-level weight with its computed
// average. Grade is nil when the category has no graded items yet.
type CategoryGrade struct {
	Weight float64
	Grade  *float64
}

// WeightedValue is the shape both grade and GPA aggregation reduce over.
type WeightedValue struct {
	Value  float64
	Weight float64
}

// WeightedMean renormalizes over the entries actually present: the divisor
// is the sum of contributing weights, not a nominal 100. Returns nil on no
// entries or all-zero weights (never NaN).
func WeightedMean(vals []WeightedValue) *float64 {
	var sum, wsum float64
	for _, v := range vals {
		sum += v.Value * v.Weight
		wsum += v.Weight
	}
	if wsum == 0 {
		return nil
	}
	m := sum / wsum
	return &m
}

// CategoryAverage computes the weighted average of graded items within one
// category. Only graded items count; a category with one of three
// assignments graded reports that assignment's score, not a third of it.
// Nil means the category contributes nothing yet (not zero).
func CategoryAverage(items []GradedItem) *float64 {
	var vals []WeightedValue
	for _, it := range items {
		if it.Score == nil {
			continue
		}
		vals = append(vals, WeightedValue{Value: *it.Score, Weight: it.Weight})
	}
	return WeightedMean(vals)
}

// ClassGrade computes the class percentage across categories. Categories
// without a grade are skipped and the rest renormalized, same policy as
// CategoryAverage. Nil until at least one category has a grade.
func ClassGrade(cats []CategoryGrade) *float64 {
	var vals []WeightedValue
	for _, c := range cats {
		if c.Grade == nil {
			continue
		}
		vals = append(vals, WeightedValue{Value: *c.Grade, Weight: c.Weight})
	}
	return WeightedMean(vals)
}

// FlatGrade is the no-categories path: item weights are percents of the
// whole class and the same formula applies directly.
func FlatGrade(items []GradedItem) *float64 {
	return CategoryAverage(items)
}
