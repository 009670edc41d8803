package api

import (
	"errors"
	"net/http"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// SubmitWorkoutRequest is one raw sensor packet. Data is positional and its
// arity depends on the workout type.
type SubmitWorkoutRequest struct {
	WorkoutType string    `json:"workoutType" binding:"required"`
	Data        []float64 `json:"data" binding:"required"`
}

// SummaryResponse is the DTO for a stored workout summary.
type SummaryResponse struct {
	ID            string    `json:"id"`
	WorkoutType   string    `json:"workoutType"`
	Kind          string    `json:"kind"`
	DurationHours float64   `json:"durationHours"`
	DistanceKm    float64   `json:"distanceKm"`
	MeanSpeedKmh  float64   `json:"meanSpeedKmh"`
	Calories      float64   `json:"calories"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ExportResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

// MapSummaryToResponse converts a domain.WorkoutSummary to its DTO.
func MapSummaryToResponse(s *domain.WorkoutSummary) SummaryResponse {
	if s == nil {
		return SummaryResponse{}
	}
	return SummaryResponse{
		ID:            s.ID.Hex(),
		WorkoutType:   s.WorkoutType,
		Kind:          s.Kind,
		DurationHours: s.DurationHours,
		DistanceKm:    s.DistanceKm,
		MeanSpeedKmh:  s.MeanSpeedKmh,
		Calories:      s.Calories,
		Message:       s.Message,
		CreatedAt:     s.CreatedAt,
	}
}

// MapSummariesToResponse converts a slice of summaries to DTOs.
func MapSummariesToResponse(summaries []domain.WorkoutSummary) []SummaryResponse {
	responses := make([]SummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = MapSummaryToResponse(&s)
	}
	return responses
}

// SubmitWorkout accepts one sensor packet, computes and stores its summary.
func (h *WorkoutHandler) SubmitWorkout(c *gin.Context) {
	var req SubmitWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	summary, err := h.workoutService.Process(c.Request.Context(), userID, req.WorkoutType, req.Data)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPacket) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to record workout.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapSummaryToResponse(summary))
}

// GetWorkouts lists the caller's stored summaries, newest first.
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	summaries, err := h.workoutService.History(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}
	if summaries == nil {
		c.JSON(http.StatusOK, []SummaryResponse{})
		return
	}

	c.JSON(http.StatusOK, MapSummariesToResponse(summaries))
}

// ExportWorkouts uploads a text report of the caller's history and returns a
// temporary download URL.
func (h *WorkoutHandler) ExportWorkouts(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	downloadURL, err := h.workoutService.Export(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyHistory) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to export workout history.")
		}
		return
	}

	c.JSON(http.StatusOK, ExportResponse{DownloadURL: downloadURL})
}

// authenticatedUserID pulls the caller's ObjectID out of the gin context,
// aborting the request on failure.
func authenticatedUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return primitive.NilObjectID, false
	}
	return userID, true
}
