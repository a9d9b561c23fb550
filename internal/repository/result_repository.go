package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"testseries-service/internal/models"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

// CreateIndexes enforces one result per attempt.
func (r *ResultRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "attempt_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ResultRepository) FindByID(ctx context.Context, id string) (*models.Result, error) {
	var result models.Result
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultRepository) FindByAttempt(ctx context.Context, attemptID string) (*models.Result, error) {
	var result models.Result
	err := r.Col.FindOne(ctx, bson.M{"attempt_id": attemptID}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultRepository) FindByUser(ctx context.Context, userID string) ([]models.Result, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{"user_id": userID}, opts)
}

// FindByTestRanked returns all of a test's results ordered by total score
// descending, ties broken by less time spent. Both ranker contracts read
// through this.
func (r *ResultRepository) FindByTestRanked(ctx context.Context, testID string) ([]models.Result, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "total_score", Value: -1},
		{Key: "total_time_spent_seconds", Value: 1},
	})
	return r.find(ctx, bson.M{"test_id": testID}, opts)
}

func (r *ResultRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Result, error) {
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.Result
	for cur.Next(ctx) {
		var res models.Result
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	if result.ID == "" {
		result.ID = primitive.NewObjectID().Hex()
	}
	result.CreatedAt = time.Now()
	result.UpdatedAt = result.CreatedAt
	_, err := r.Col.InsertOne(ctx, result)
	return err
}

// SaveRank updates the three ranker-owned fields and nothing else.
func (r *ResultRepository) SaveRank(ctx context.Context, id string, rank int, percentile float64, totalAttempts int) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"rank":           rank,
		"percentile":     percentile,
		"total_attempts": totalAttempts,
		"updated_at":     time.Now(),
	}})
	return err
}
