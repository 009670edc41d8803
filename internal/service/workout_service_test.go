package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"alcyxob/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubSummaryRepo implements repository.SummaryRepository in memory.
type stubSummaryRepo struct {
	created   []*domain.WorkoutSummary
	summaries []domain.WorkoutSummary
	err       error
}

func (r *stubSummaryRepo) Create(_ context.Context, summary *domain.WorkoutSummary) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	summary.CreatedAt = time.Now().UTC()
	r.created = append(r.created, summary)
	return primitive.NewObjectID(), nil
}

func (r *stubSummaryRepo) GetByUserID(_ context.Context, _ primitive.ObjectID) ([]domain.WorkoutSummary, error) {
	return r.summaries, r.err
}

// stubStorage implements storage.FileStorage and records uploads and deletes.
type stubStorage struct {
	uploadedKey  string
	uploadedBody string
	deletedKeys  []string
	uploadErr    error
}

func (s *stubStorage) Upload(_ context.Context, objectKey, _ string, body io.Reader) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	content, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.uploadedKey = objectKey
	s.uploadedBody = string(content)
	return nil
}

func (s *stubStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.example.com/" + objectKey, nil
}

func (s *stubStorage) DeleteObject(_ context.Context, objectKey string) error {
	s.deletedKeys = append(s.deletedKeys, objectKey)
	return nil
}

// addStubUser registers a user in the stub repo so export can look it up.
func addStubUser(repo *stubUserRepo, userID primitive.ObjectID, lastExportKey string) {
	repo.users["athlete@example.com"] = domain.User{
		ID:            userID,
		Email:         "athlete@example.com",
		LastExportKey: lastExportKey,
	}
}

func TestProcessStoresRenderedSummary(t *testing.T) {
	repo := &stubSummaryRepo{}
	svc := NewWorkoutService(repo, newStubUserRepo(), &stubStorage{})
	userID := primitive.NewObjectID()

	summary, err := svc.Process(context.Background(), userID, "SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, userID, summary.UserID)
	assert.Equal(t, "SWM", summary.WorkoutType)
	assert.Equal(t, "Swimming", summary.Kind)
	assert.InDelta(t, 336.0, summary.Calories, 1e-3)
	assert.Equal(t,
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		summary.Message)
	assert.NotEqual(t, primitive.NilObjectID, summary.ID)
}

func TestProcessRejectsUnknownWorkoutType(t *testing.T) {
	repo := &stubSummaryRepo{}
	svc := NewWorkoutService(repo, newStubUserRepo(), &stubStorage{})

	summary, err := svc.Process(context.Background(), primitive.NewObjectID(), "XYZ", []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidPacket)
	assert.Nil(t, summary)
	assert.Empty(t, repo.created)
}

func TestProcessRejectsWrongArity(t *testing.T) {
	repo := &stubSummaryRepo{}
	svc := NewWorkoutService(repo, newStubUserRepo(), &stubStorage{})

	summary, err := svc.Process(context.Background(), primitive.NewObjectID(), "RUN", []float64{15000, 1})
	require.ErrorIs(t, err, ErrInvalidPacket)
	assert.Nil(t, summary)
	assert.Empty(t, repo.created)
}

func TestExportUploadsReportAndReturnsURL(t *testing.T) {
	userID := primitive.NewObjectID()
	repo := &stubSummaryRepo{summaries: []domain.WorkoutSummary{
		{UserID: userID, Message: "Тип тренировки: Running; ..."},
		{UserID: userID, Message: "Тип тренировки: Swimming; ..."},
	}}
	users := newStubUserRepo()
	addStubUser(users, userID, "")
	store := &stubStorage{}
	svc := NewWorkoutService(repo, users, store)

	url, err := svc.Export(context.Background(), userID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://storage.example.com/reports/"+userID.Hex()))
	assert.Contains(t, store.uploadedBody, "Running")
	assert.Contains(t, store.uploadedBody, "Swimming")
	assert.Equal(t, 2, strings.Count(store.uploadedBody, "\n"))

	// First export: nothing to replace, but the key must be remembered.
	assert.Empty(t, store.deletedKeys)
	assert.Equal(t, store.uploadedKey, users.users["athlete@example.com"].LastExportKey)
}

func TestExportReplacesPreviousReport(t *testing.T) {
	userID := primitive.NewObjectID()
	repo := &stubSummaryRepo{summaries: []domain.WorkoutSummary{
		{UserID: userID, Message: "Тип тренировки: Running; ..."},
	}}
	users := newStubUserRepo()
	previousKey := "reports/" + userID.Hex() + "/20260101-stale.txt"
	addStubUser(users, userID, previousKey)
	store := &stubStorage{}
	svc := NewWorkoutService(repo, users, store)

	_, err := svc.Export(context.Background(), userID)
	require.NoError(t, err)

	require.Equal(t, []string{previousKey}, store.deletedKeys)
	assert.NotEqual(t, previousKey, store.uploadedKey)
	assert.Equal(t, store.uploadedKey, users.users["athlete@example.com"].LastExportKey)
}

func TestExportEmptyHistory(t *testing.T) {
	svc := NewWorkoutService(&stubSummaryRepo{}, newStubUserRepo(), &stubStorage{})

	url, err := svc.Export(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrEmptyHistory)
	assert.Empty(t, url)
}

func TestExportUploadFailure(t *testing.T) {
	userID := primitive.NewObjectID()
	repo := &stubSummaryRepo{summaries: []domain.WorkoutSummary{{UserID: userID, Message: "x"}}}
	users := newStubUserRepo()
	addStubUser(users, userID, "")
	store := &stubStorage{uploadErr: errors.New("bucket unavailable")}
	svc := NewWorkoutService(repo, users, store)

	_, err := svc.Export(context.Background(), userID)
	require.ErrorIs(t, err, ErrExportFailed)
	assert.Empty(t, store.deletedKeys, "a failed upload must not delete the previous report")
}
