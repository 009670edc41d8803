package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const summaryCollectionName = "summaries"

// mongoSummaryRepository implements repository.SummaryRepository.
type mongoSummaryRepository struct {
	collection *mongo.Collection
}

// NewMongoSummaryRepository creates a new workout summary repository.
func NewMongoSummaryRepository(db *mongo.Database) repository.SummaryRepository {
	return &mongoSummaryRepository{
		collection: db.Collection(summaryCollectionName),
	}
}

// Create inserts a computed workout summary.
func (r *mongoSummaryRepository) Create(ctx context.Context, summary *domain.WorkoutSummary) (primitive.ObjectID, error) {
	if summary.UserID == primitive.NilObjectID || summary.WorkoutType == "" {
		return primitive.NilObjectID, errors.New("summary requires userId and workoutType")
	}

	summary.ID = primitive.NewObjectID()
	summary.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, summary)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted summary ID")
	}
	return insertedID, nil
}

// GetByUserID retrieves all summaries recorded by a user, newest first.
func (r *mongoSummaryRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSummary, error) {
	var summaries []domain.WorkoutSummary
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// EnsureSummaryIndexes creates the indexes for the summaries collection.
// Call once during application startup.
func EnsureSummaryIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// History listing: per-user, newest first.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "workoutType", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
