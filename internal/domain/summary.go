package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutSummary is the stored result of one processed sensor packet.
// It is written once and never mutated.
type WorkoutSummary struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	WorkoutType   string             `bson:"workoutType" json:"workoutType"` // sensor code: RUN, WLK or SWM
	Kind          string             `bson:"kind" json:"kind"`               // e.g. "Running"
	DurationHours float64            `bson:"durationHours" json:"durationHours"`
	DistanceKm    float64            `bson:"distanceKm" json:"distanceKm"`
	MeanSpeedKmh  float64            `bson:"meanSpeedKmh" json:"meanSpeedKmh"`
	Calories      float64            `bson:"calories" json:"calories"`
	Message       string             `bson:"message" json:"message"` // rendered summary line
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
