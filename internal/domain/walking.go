package domain

import "math"

// Calorie coefficients for sports walking.
const (
	walkingWeightMultiplier = 0.035
	walkingSpeedMultiplier  = 0.029
)

// Walking is a sports-walking workout. It needs the athlete's height for the
// calorie formula.
type Walking struct {
	BaseTraining
	HeightCm float64
}

// NewWalking builds a walking workout from raw sensor readings.
func NewWalking(action int, durationHours, weightKg, heightCm float64) Walking {
	return Walking{
		BaseTraining: BaseTraining{
			Action:        action,
			DurationHours: durationHours,
			WeightKg:      weightKg,
		},
		HeightCm: heightCm,
	}
}

func (t Walking) Kind() string { return "Walking" }

// SpentCalories returns the calories burned while walking. The squared speed
// is floor-divided by the height; the truncation is part of the numeric
// contract and must not be replaced with plain division.
func (t Walking) SpentCalories() float64 {
	speed := t.MeanSpeed()
	speedTerm := math.Floor(speed * speed / t.HeightCm)
	return (walkingWeightMultiplier*t.WeightKg + speedTerm*walkingSpeedMultiplier*t.WeightKg) *
		(t.DurationHours * MinInH)
}
