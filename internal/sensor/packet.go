// Package sensor decodes raw sensor packets into domain trainings.
//
// A packet is a three-letter workout code plus an ordered sequence of raw
// numeric readings whose meaning is positional and depends on the code.
package sensor

import (
	"errors"
	"fmt"

	"alcyxob/fitness-tracker/internal/domain"
)

// Packet codes for the supported workout kinds.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

var (
	// ErrUnknownWorkoutType is returned for a code outside the fixed mapping.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrInvalidArgumentCount is returned when the reading count does not
	// match the arity of the requested workout kind.
	ErrInvalidArgumentCount = errors.New("invalid argument count")
)

type parseFunc func(data []float64) (domain.Training, error)

var parsers = map[string]parseFunc{
	CodeSwimming: parseSwimming,
	CodeRunning:  parseRunning,
	CodeWalking:  parseWalking,
}

// Decode builds the training matching the packet code. The arity of data is
// validated before any training is constructed; nothing is built on error.
func Decode(workoutType string, data []float64) (domain.Training, error) {
	parse, ok := parsers[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, workoutType)
	}
	return parse(data)
}

func checkArity(code string, data []float64, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: %s expects %d readings, got %d",
			ErrInvalidArgumentCount, code, want, len(data))
	}
	return nil
}

// parseRunning expects (steps, durationHours, weightKg).
func parseRunning(data []float64) (domain.Training, error) {
	if err := checkArity(CodeRunning, data, 3); err != nil {
		return nil, err
	}
	return domain.NewRunning(int(data[0]), data[1], data[2]), nil
}

// parseWalking expects (steps, durationHours, weightKg, heightCm).
func parseWalking(data []float64) (domain.Training, error) {
	if err := checkArity(CodeWalking, data, 4); err != nil {
		return nil, err
	}
	return domain.NewWalking(int(data[0]), data[1], data[2], data[3]), nil
}

// parseSwimming expects (strokes, durationHours, weightKg, poolLengthM, poolLaps).
func parseSwimming(data []float64) (domain.Training, error) {
	if err := checkArity(CodeSwimming, data, 5); err != nil {
		return nil, err
	}
	return domain.NewSwimming(int(data[0]), data[1], data[2], data[3], int(data[4])), nil
}
