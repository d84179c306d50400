package grades

import "math"

// WeightCheck is the result of validating a weight configuration.
type WeightCheck struct {
	Total float64 `json:"total"`
	Valid bool    `json:"valid"`
}

// ValidateWeights sums weights and checks the sum against expected within
// tolerance. Callers surface the result next to any grade they display; an
// invalid configuration never blocks computation (the aggregators work with
// whatever is present).
func ValidateWeights(weights []float64, expected, tolerance float64) WeightCheck {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	return WeightCheck{
		Total: total,
		Valid: math.Abs(total-expected) <= tolerance,
	}
}

// ValidateCategoryWeights is the common case: category weights must sum to
// exactly 100.
func ValidateCategoryWeights(weights []float64) WeightCheck {
	return ValidateWeights(weights, 100, 0)
}
