package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubWorkoutService implements service.WorkoutService with canned results.
type stubWorkoutService struct {
	summary *domain.WorkoutSummary
	history []domain.WorkoutSummary
	url     string
	err     error
}

func (s *stubWorkoutService) Process(_ context.Context, _ primitive.ObjectID, _ string, _ []float64) (*domain.WorkoutSummary, error) {
	return s.summary, s.err
}

func (s *stubWorkoutService) History(_ context.Context, _ primitive.ObjectID) ([]domain.WorkoutSummary, error) {
	return s.history, s.err
}

func (s *stubWorkoutService) Export(_ context.Context, _ primitive.ObjectID) (string, error) {
	return s.url, s.err
}

// newTestRouter wires the workout handler behind a fake auth middleware that
// injects the given user ID.
func newTestRouter(userID primitive.ObjectID, svc service.WorkoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewWorkoutHandler(svc)

	group := router.Group("/api/v1/workouts", func(c *gin.Context) {
		c.Set(ContextUserIDKey, userID.Hex())
	})
	group.POST("", handler.SubmitWorkout)
	group.GET("", handler.GetWorkouts)
	group.GET("/export", handler.ExportWorkouts)
	return router
}

func TestSubmitWorkoutCreated(t *testing.T) {
	summary := &domain.WorkoutSummary{
		ID:          primitive.NewObjectID(),
		WorkoutType: "RUN",
		Kind:        "Running",
		Calories:    699.75,
		Message:     "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
	}
	router := newTestRouter(primitive.NewObjectID(), &stubWorkoutService{summary: summary})

	body := `{"workoutType":"RUN","data":[15000,1,75]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workouts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"Running"`)
	assert.Contains(t, rec.Body.String(), "699.75")
}

func TestSubmitWorkoutInvalidPacket(t *testing.T) {
	svc := &stubWorkoutService{err: fmt.Errorf("%w: unknown workout type %q", service.ErrInvalidPacket, "XYZ")}
	router := newTestRouter(primitive.NewObjectID(), svc)

	body := `{"workoutType":"XYZ","data":[1,2,3]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workouts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown workout type")
}

func TestSubmitWorkoutMissingBodyFields(t *testing.T) {
	router := newTestRouter(primitive.NewObjectID(), &stubWorkoutService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workouts", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetWorkoutsEmptyList(t *testing.T) {
	router := newTestRouter(primitive.NewObjectID(), &stubWorkoutService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workouts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestExportWorkoutsReturnsURL(t *testing.T) {
	svc := &stubWorkoutService{url: "https://storage.example.com/reports/demo.txt"}
	router := newTestRouter(primitive.NewObjectID(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workouts/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"downloadUrl":"https://storage.example.com/reports/demo.txt"}`, rec.Body.String())
}

func TestExportWorkoutsEmptyHistory(t *testing.T) {
	router := newTestRouter(primitive.NewObjectID(), &stubWorkoutService{err: service.ErrEmptyHistory})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workouts/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
