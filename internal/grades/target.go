package grades

// ScoreNeeded inverts the weighted-average formula: given the percentage
// points already earned (contribution-to-100), the weight completed, the
// weight remaining, and a target overall percentage, it returns the average
// score required on the remaining weight.
//
//	target = earned + s * remaining/100  =>  s = (target - earned) / (remaining/100)
//
// Returns nil when remaining <= 0: the grade is already fixed and no score
// can influence it. The result is NOT clamped; values above 100 mean the
// target is out of reach and negative values mean it is already secured.
// Callers classify and clamp at display time only.
func ScoreNeeded(earned, completedWeight, remainingWeight, target float64) *float64 {
	if remainingWeight <= 0 {
		return nil
	}
	s := (target - earned) / (remainingWeight / 100)
	return &s
}

// Target is one row of the side-by-side "what you need for an A / B / C"
// table. Needed carries the raw solver output; Display is the 0..100 clamp
// for rendering. Achievable and Secured come from the raw value.
type Target struct {
	Letter     string   `json:"letter"`
	Percent    float64  `json:"percent"`
	Needed     *float64 `json:"needed"`
	Display    *float64 `json:"display"`
	Achievable bool     `json:"achievable"`
	Secured    bool     `json:"secured"`
}

// letterTargets are the thresholds shown side by side on class screens.
var letterTargets = []struct {
	letter  string
	percent float64
}{
	{"A", 90},
	{"B", 80},
	{"C", 70},
}

// Targets solves ScoreNeeded once per letter threshold. With nothing left to
// grade every row reports nil Needed; Secured then reflects whether the
// earned points already meet the threshold.
func Targets(earned, completedWeight, remainingWeight float64) []Target {
	out := make([]Target, 0, len(letterTargets))
	for _, lt := range letterTargets {
		t := Target{Letter: lt.letter, Percent: lt.percent}
		t.Needed = ScoreNeeded(earned, completedWeight, remainingWeight, lt.percent)
		if t.Needed != nil {
			raw := *t.Needed
			t.Achievable = raw <= 100
			t.Secured = raw <= 0
			d := raw
			if d < 0 {
				d = 0
			} else if d > 100 {
				d = 100
			}
			t.Display = &d
		} else {
			t.Secured = earned >= lt.percent
		}
		out = append(out, t)
	}
	return out
}
