package grades

// ClassGPA is the engine's view of one class for GPA purposes. Points is nil
// until the class completes and receives a 0.0–4.0 value.
type ClassGPA struct {
	Credits int      `json:"credits"`
	Points  *float64 `json:"points"`
}

// LetterPoints maps letter grades to GPA points for what-if simulation.
var LetterPoints = map[string]float64{
	"A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "D-": 0.7,
	"F": 0.0,
}

// GPA computes the credit-weighted average over classes that have points.
// No completed class yields 0, not nil: GPA is always rendered as a number.
func GPA(classes []ClassGPA) float64 {
	var vals []WeightedValue
	for _, c := range classes {
		if c.Points == nil {
			continue
		}
		vals = append(vals, WeightedValue{Value: *c.Points, Weight: float64(c.Credits)})
	}
	m := WeightedMean(vals)
	if m == nil {
		return 0
	}
	return *m
}

// SimulatedClass assigns a hypothetical letter grade to an in-progress
// class. Entries whose Letter is not in LetterPoints are excluded entirely,
// not assumed to be F.
type SimulatedClass struct {
	Credits int    `json:"credits"`
	Letter  string `json:"letter"`
}

// WhatIfGPA folds simulated grades for in-progress classes into an existing
// (GPA, completed credits) base.
func WhatIfGPA(currentGPA float64, completedCredits int, sims []SimulatedClass) float64 {
	points := currentGPA * float64(completedCredits)
	credits := float64(completedCredits)
	for _, s := range sims {
		p, ok := LetterPoints[s.Letter]
		if !ok {
			continue
		}
		points += p * float64(s.Credits)
		credits += float64(s.Credits)
	}
	if credits == 0 {
		return 0
	}
	return points / credits
}
