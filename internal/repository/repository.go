package repository

import (
	"context"

	"alcyxob/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("already exists")
)

// RepositoryError distinguishes repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	SetLastExportKey(ctx context.Context, userID primitive.ObjectID, objectKey string) error
}

// SummaryRepository defines the interface for interacting with stored
// workout summaries.
type SummaryRepository interface {
	Create(ctx context.Context, summary *domain.WorkoutSummary) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSummary, error)
}
