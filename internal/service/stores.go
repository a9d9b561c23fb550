package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"testseries-service/internal/models"
)

// Store interfaces cover just what the attempt/evaluation/ranking services
// consume, so tests can stand in fakes. The repository package implements
// them over Mongo collections.

type AttemptStore interface {
	FindByID(ctx context.Context, id string) (*models.Attempt, error)
	FindInProgress(ctx context.Context, userID, testID string) (*models.Attempt, error)
	FindByUser(ctx context.Context, userID, testID, status string) ([]models.Attempt, error)
	Create(ctx context.Context, attempt *models.Attempt) error
	Update(ctx context.Context, id string, update bson.M) error
}

type TestStore interface {
	FindByID(ctx context.Context, id string) (*models.Test, error)
}

type SectionStore interface {
	FindByTest(ctx context.Context, testID string) ([]models.Section, error)
}

type QuestionStore interface {
	FindByID(ctx context.Context, id string) (*models.Question, error)
	FindBySections(ctx context.Context, sectionIDs []string) ([]models.Question, error)
}

type AnswerStore interface {
	FindByAttempt(ctx context.Context, attemptID string) ([]models.Answer, error)
	FindOne(ctx context.Context, attemptID, questionID string) (*models.Answer, error)
	CreateMany(ctx context.Context, answers []models.Answer) error
	SaveResponse(ctx context.Context, attemptID, questionID string, value models.AnswerValue, markedForReview bool, timeSpentSeconds int) error
	SaveGrades(ctx context.Context, grades []models.AnswerGrade) error
}

type ResultStore interface {
	FindByID(ctx context.Context, id string) (*models.Result, error)
	FindByAttempt(ctx context.Context, attemptID string) (*models.Result, error)
	FindByUser(ctx context.Context, userID string) ([]models.Result, error)
	FindByTestRanked(ctx context.Context, testID string) ([]models.Result, error)
	Create(ctx context.Context, result *models.Result) error
	SaveRank(ctx context.Context, id string, rank int, percentile float64, totalAttempts int) error
}
