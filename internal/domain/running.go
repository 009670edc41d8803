package domain

// Calorie coefficients for running.
const (
	runningSpeedMultiplier = 18
	runningSpeedShift      = 20
)

// Running is a running workout. Distance and mean speed come from the base
// step formulas.
type Running struct {
	BaseTraining
}

// NewRunning builds a running workout from raw sensor readings.
func NewRunning(action int, durationHours, weightKg float64) Running {
	return Running{BaseTraining{
		Action:        action,
		DurationHours: durationHours,
		WeightKg:      weightKg,
	}}
}

func (t Running) Kind() string { return "Running" }

// SpentCalories returns the calories burned while running.
func (t Running) SpentCalories() float64 {
	speedTerm := (runningSpeedMultiplier*t.MeanSpeed() - runningSpeedShift) * t.WeightKg
	return speedTerm / MInKm * (t.DurationHours * MinInH)
}
