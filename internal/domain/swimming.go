package domain

// Swimming-specific constants. A stroke covers more ground than a step, so
// swimming shadows the base step length.
const (
	swimmingLenStep          = 1.38 // average stroke length in meters
	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2.0
)

// Swimming is a pool swimming workout. Action counts strokes; speed is
// derived from pool geometry instead of the stroke count.
type Swimming struct {
	BaseTraining
	PoolLengthM float64
	PoolLaps    int
}

// NewSwimming builds a swimming workout from raw sensor readings.
func NewSwimming(action int, durationHours, weightKg, poolLengthM float64, poolLaps int) Swimming {
	return Swimming{
		BaseTraining: BaseTraining{
			Action:        action,
			DurationHours: durationHours,
			WeightKg:      weightKg,
		},
		PoolLengthM: poolLengthM,
		PoolLaps:    poolLaps,
	}
}

func (t Swimming) Kind() string { return "Swimming" }

// Distance returns the stroke-count distance using the swimming stroke length.
func (t Swimming) Distance() float64 {
	return float64(t.Action) * swimmingLenStep / MInKm
}

// MeanSpeed returns the average speed computed from the pool length and the
// number of laps, not from the stroke count.
func (t Swimming) MeanSpeed() float64 {
	return t.PoolLengthM * float64(t.PoolLaps) / MInKm / t.DurationHours
}

// SpentCalories returns the calories burned while swimming.
func (t Swimming) SpentCalories() float64 {
	return (t.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMultiplier * t.WeightKg
}
