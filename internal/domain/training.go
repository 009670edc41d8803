package domain

import "fmt"

// Conversion constants shared by every training kind.
const (
	MInKm  = 1000 // meters in a kilometer
	MinInH = 60   // minutes in an hour

	lenStep = 0.65 // average step length in meters
)

// Training is implemented by every supported workout kind. Values are pure:
// all methods are deterministic functions of the constructed fields.
type Training interface {
	Kind() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// BaseTraining carries the sensor readings shared by every workout kind and
// the default distance/speed formulas. It intentionally does not implement
// SpentCalories: each kind has its own calorie formula, so only the complete
// variants satisfy Training.
type BaseTraining struct {
	Action        int     // steps or strokes counted by the sensor
	DurationHours float64 // caller precondition: > 0 (used as a divisor)
	WeightKg      float64
}

// Duration returns the training duration in hours.
func (t BaseTraining) Duration() float64 {
	return t.DurationHours
}

// Distance returns the covered distance in kilometers.
func (t BaseTraining) Distance() float64 {
	return float64(t.Action) * lenStep / MInKm
}

// MeanSpeed returns the average speed in km/h. A zero duration is not
// rejected and surfaces as +Inf.
func (t BaseTraining) MeanSpeed() float64 {
	return t.Distance() / t.DurationHours
}

// messageTemplate is the single hardcoded summary line. Floats are rendered
// with three decimal places.
const messageTemplate = "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f."

// InfoMessage is the immutable computed result for one training.
type InfoMessage struct {
	Kind          string
	DurationHours float64
	DistanceKm    float64
	MeanSpeedKmh  float64
	Calories      float64
}

// Summarize computes the full summary for a finished training.
func Summarize(t Training) InfoMessage {
	return InfoMessage{
		Kind:          t.Kind(),
		DurationHours: t.Duration(),
		DistanceKm:    t.Distance(),
		MeanSpeedKmh:  t.MeanSpeed(),
		Calories:      t.SpentCalories(),
	}
}

// Render formats the summary into the single human-readable line.
func (m InfoMessage) Render() string {
	return fmt.Sprintf(messageTemplate, m.Kind, m.DurationHours, m.DistanceKm, m.MeanSpeedKmh, m.Calories)
}
