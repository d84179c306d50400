package grades

import "math"

// Every surface that renders engine output uses these, so a percentage on a
// class screen and the same percentage in a report can never disagree.

// Round1 rounds to one decimal place (percentages).
func Round1(v float64) float64 { return math.Round(v*10) / 10 }

// Round2 rounds to two decimal places (GPA).
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// Round1p rounds a nullable percentage, passing nil through.
func Round1p(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := Round1(*v)
	return &r
}
