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

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("answers")}
}

// CreateIndexes enforces one answer row per (attempt, question) pair.
func (r *AnswerRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "attempt_id", Value: 1}, {Key: "question_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *AnswerRepository) FindByAttempt(ctx context.Context, attemptID string) ([]models.Answer, error) {
	cur, err := r.Col.Find(ctx, bson.M{"attempt_id": attemptID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var answers []models.Answer
	for cur.Next(ctx) {
		var a models.Answer
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func (r *AnswerRepository) FindOne(ctx context.Context, attemptID, questionID string) (*models.Answer, error) {
	var answer models.Answer
	err := r.Col.FindOne(ctx, bson.M{
		"attempt_id":  attemptID,
		"question_id": questionID,
	}).Decode(&answer)
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// CreateMany inserts the empty answer rows created at attempt start.
func (r *AnswerRepository) CreateMany(ctx context.Context, answers []models.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(answers))
	for i := range answers {
		if answers[i].ID == "" {
			answers[i].ID = primitive.NewObjectID().Hex()
		}
		docs = append(docs, answers[i])
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

// SaveResponse records the student's response on one answer row.
func (r *AnswerRepository) SaveResponse(ctx context.Context, attemptID, questionID string, value models.AnswerValue, markedForReview bool, timeSpentSeconds int) error {
	update := bson.M{
		"value":                value,
		"is_attempted":         value.IsSet(),
		"is_marked_for_review": markedForReview,
		"time_spent_seconds":   timeSpentSeconds,
		"answered_at":          time.Now(),
	}
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"attempt_id": attemptID, "question_id": questionID},
		bson.M{"$set": update},
	)
	return err
}

// SaveGrades writes evaluation outcomes onto answer rows in one batch.
// Idempotent per (attempt, question): re-grading overwrites the same fields.
func (r *AnswerRepository) SaveGrades(ctx context.Context, grades []models.AnswerGrade) error {
	if len(grades) == 0 {
		return nil
	}
	writes := make([]mongo.WriteModel, 0, len(grades))
	for _, grade := range grades {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": grade.AnswerID}).
			SetUpdate(bson.M{"$set": bson.M{
				"is_correct":    grade.IsCorrect,
				"marks_awarded": grade.MarksAwarded,
			}}))
	}
	_, err := r.Col.BulkWrite(ctx, writes)
	return err
}
