package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/sensor"
	"alcyxob/fitness-tracker/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidPacket = errors.New("invalid sensor packet")
	ErrExportFailed  = errors.New("failed to export workout history")
	ErrEmptyHistory  = errors.New("no workouts recorded yet")
)

// WorkoutService turns raw sensor packets into stored workout summaries.
type WorkoutService interface {
	Process(ctx context.Context, userID primitive.ObjectID, workoutType string, data []float64) (*domain.WorkoutSummary, error)
	History(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSummary, error)
	Export(ctx context.Context, userID primitive.ObjectID) (downloadURL string, err error)
}

type workoutService struct {
	summaryRepo repository.SummaryRepository
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(summaryRepo repository.SummaryRepository, userRepo repository.UserRepository, fileStorage storage.FileStorage) WorkoutService {
	return &workoutService{
		summaryRepo: summaryRepo,
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

// Process decodes one sensor packet, computes the summary and persists it.
// Dispatch and arity failures are wrapped in ErrInvalidPacket; nothing is
// stored in that case.
func (s *workoutService) Process(ctx context.Context, userID primitive.ObjectID, workoutType string, data []float64) (*domain.WorkoutSummary, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required to record a workout")
	}

	training, err := sensor.Decode(workoutType, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPacket, err)
	}

	info := domain.Summarize(training)
	summary := &domain.WorkoutSummary{
		UserID:        userID,
		WorkoutType:   workoutType,
		Kind:          info.Kind,
		DurationHours: info.DurationHours,
		DistanceKm:    info.DistanceKm,
		MeanSpeedKmh:  info.MeanSpeedKmh,
		Calories:      info.Calories,
		Message:       info.Render(),
	}

	summaryID, err := s.summaryRepo.Create(ctx, summary)
	if err != nil {
		return nil, err
	}
	summary.ID = summaryID
	return summary, nil
}

// History returns the user's stored summaries, newest first.
func (s *workoutService) History(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSummary, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}
	return s.summaryRepo.GetByUserID(ctx, userID)
}

// Export renders the user's history into a plain text report, uploads it to
// object storage and returns a presigned download URL. Each export supersedes
// the user's previous report, which is deleted.
func (s *workoutService) Export(ctx context.Context, userID primitive.ObjectID) (string, error) {
	summaries, err := s.History(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(summaries) == 0 {
		return "", ErrEmptyHistory
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	var report strings.Builder
	for _, summary := range summaries {
		report.WriteString(summary.Message)
		report.WriteByte('\n')
	}

	objectKey := path.Join("reports", userID.Hex(),
		fmt.Sprintf("%s-%s.txt", time.Now().UTC().Format("20060102"), uuid.NewString()))

	if err := s.fileStorage.Upload(ctx, objectKey, "text/plain; charset=utf-8", strings.NewReader(report.String())); err != nil {
		return "", ErrExportFailed
	}

	// Best effort: a stale report that outlives its short-lived URL is only
	// bucket clutter, so a failed delete does not fail the export.
	if user.LastExportKey != "" {
		_ = s.fileStorage.DeleteObject(ctx, user.LastExportKey)
	}
	if err := s.userRepo.SetLastExportKey(ctx, userID, objectKey); err != nil {
		return "", err
	}

	downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrExportFailed
	}
	return downloadURL, nil
}
