package grades

// Status is the three-tier standing shown on class cards and in reports.
type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
)

// ThresholdFloor maps a passing-threshold letter to its percentage floor.
// Unrecognized input falls back to C/70.
func ThresholdFloor(threshold string) float64 {
	switch threshold {
	case "A":
		return 90
	case "B":
		return 80
	case "C":
		return 70
	default:
		return 70
	}
}

// Classify maps a grade (nil while unknown) and a threshold letter to a
// status. Unknown is caution, not failure; within 10 points below the floor
// is caution; further below is red.
func Classify(grade *float64, threshold string) Status {
	if grade == nil {
		return StatusYellow
	}
	floor := ThresholdFloor(threshold)
	switch {
	case *grade >= floor:
		return StatusGreen
	case *grade >= floor-10:
		return StatusYellow
	default:
		return StatusRed
	}
}
