package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"testseries-service/internal/event"
	"testseries-service/internal/models"
)

// AttemptService owns the attempt lifecycle: start, record answers, submit.
// Submission is the one-way transition that triggers evaluation and ranking.
type AttemptService struct {
	Attempts  AttemptStore
	Tests     TestStore
	Sections  SectionStore
	Questions QuestionStore
	Answers   AnswerStore
	Results   ResultStore
	Evaluator *EvaluationService
	Ranker    *RankingService
	Publisher *event.EventPublisher
}

func NewAttemptService(
	attempts AttemptStore,
	tests TestStore,
	sections SectionStore,
	questions QuestionStore,
	answers AnswerStore,
	results ResultStore,
	evaluator *EvaluationService,
	ranker *RankingService,
	publisher *event.EventPublisher,
) *AttemptService {
	return &AttemptService{
		Attempts:  attempts,
		Tests:     tests,
		Sections:  sections,
		Questions: questions,
		Answers:   answers,
		Results:   results,
		Evaluator: evaluator,
		Ranker:    ranker,
		Publisher: publisher,
	}
}

// StartedAttempt is what a student gets back when an attempt begins:
// the attempt, the questions with answer keys stripped, and whether an
// existing attempt was resumed instead of a new one created.
type StartedAttempt struct {
	Attempt   *models.Attempt   `json:"attempt"`
	Questions []models.Question `json:"questions"`
	Resumed   bool              `json:"resumed"`
}

func (s *AttemptService) StartAttempt(ctx context.Context, userID, testID string) (*StartedAttempt, error) {
	test, err := s.Tests.FindByID(ctx, testID)
	if err != nil {
		return nil, notFound(err, ErrTestNotFound)
	}
	if !test.IsPublished {
		return nil, ErrTestNotPublished
	}

	sections, err := s.Sections.FindByTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	sectionIDs := make([]string, 0, len(sections))
	for _, section := range sections {
		sectionIDs = append(sectionIDs, section.ID)
	}
	questions, err := s.Questions.FindBySections(ctx, sectionIDs)
	if err != nil {
		return nil, err
	}

	existing, err := s.Attempts.FindInProgress(ctx, userID, testID)
	if err == nil {
		if !test.Config.AllowResume {
			return nil, ErrAttemptInProgress
		}
		return &StartedAttempt{Attempt: existing, Questions: stripKeys(questions), Resumed: true}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	order := make([]string, 0, len(questions))
	for _, q := range questions {
		order = append(order, q.ID)
	}
	if test.Config.ShuffleQuestions {
		rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	attempt := &models.Attempt{
		UserID:        userID,
		TestID:        testID,
		StartTime:     time.Now(),
		Status:        models.AttemptInProgress,
		QuestionOrder: order,
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}

	// One empty answer row per question, so evaluation sees the full
	// question universe even for rows the student never touches.
	answers := make([]models.Answer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, models.Answer{
			AttemptID:  attempt.ID,
			QuestionID: q.ID,
			Value:      models.AnswerValue{Kind: models.AnswerValueNone},
		})
	}
	if err := s.Answers.CreateMany(ctx, answers); err != nil {
		return nil, err
	}

	s.Publisher.Publish("attempt.started", map[string]interface{}{
		"attempt_id": attempt.ID,
		"user_id":    userID,
		"test_id":    testID,
	})

	return &StartedAttempt{Attempt: attempt, Questions: stripKeys(questions)}, nil
}

type RecordAnswerInput struct {
	QuestionID        string             `json:"question_id" binding:"required"`
	Value             models.AnswerValue `json:"value"`
	IsMarkedForReview bool               `json:"is_marked_for_review"`
	TimeSpentSeconds  int                `json:"time_spent_seconds" binding:"gte=0"`
}

func (s *AttemptService) RecordAnswer(ctx context.Context, userID, attemptID string, in RecordAnswerInput) (*models.Answer, error) {
	attempt, err := s.Attempts.FindByID(ctx, attemptID)
	if err != nil {
		return nil, notFound(err, ErrAttemptNotFound)
	}
	if attempt.UserID != userID {
		return nil, ErrNotAttemptOwner
	}
	if attempt.Status != models.AttemptInProgress {
		return nil, ErrAttemptNotInProgress
	}

	question, err := s.Questions.FindByID(ctx, in.QuestionID)
	if err != nil {
		return nil, notFound(err, ErrQuestionNotFound)
	}
	if !in.Value.ValidFor(question.Type) {
		return nil, ErrInvalidAnswer
	}

	if err := s.Answers.SaveResponse(ctx, attemptID, in.QuestionID, in.Value, in.IsMarkedForReview, in.TimeSpentSeconds); err != nil {
		return nil, err
	}
	return s.Answers.FindOne(ctx, attemptID, in.QuestionID)
}

// GetAttempt returns an attempt with its answer rows, owner-only.
func (s *AttemptService) GetAttempt(ctx context.Context, userID, attemptID string) (*models.Attempt, []models.Answer, error) {
	attempt, err := s.Attempts.FindByID(ctx, attemptID)
	if err != nil {
		return nil, nil, notFound(err, ErrAttemptNotFound)
	}
	if attempt.UserID != userID {
		return nil, nil, ErrNotAttemptOwner
	}
	answers, err := s.Answers.FindByAttempt(ctx, attemptID)
	if err != nil {
		return nil, nil, err
	}
	return attempt, answers, nil
}

func (s *AttemptService) ListAttempts(ctx context.Context, userID, testID, status string) ([]models.Attempt, error) {
	return s.Attempts.FindByUser(ctx, userID, testID, status)
}

// SubmitAttempt closes the attempt, evaluates it, creates the result, and
// ranks it against the test's other results. auto marks timer-forced
// submissions.
func (s *AttemptService) SubmitAttempt(ctx context.Context, userID, attemptID string, auto bool) (*models.Result, error) {
	attempt, err := s.Attempts.FindByID(ctx, attemptID)
	if err != nil {
		return nil, notFound(err, ErrAttemptNotFound)
	}
	if attempt.UserID != userID {
		return nil, ErrNotAttemptOwner
	}
	if attempt.Status != models.AttemptInProgress {
		return nil, ErrAttemptNotInProgress
	}

	status := models.AttemptSubmitted
	if auto {
		status = models.AttemptAutoSubmitted
	}
	now := time.Now()
	timeSpent := int(now.Sub(attempt.StartTime).Seconds())
	if err := s.Attempts.Update(ctx, attemptID, bson.M{
		"status":             status,
		"end_time":           now,
		"submitted_at":       now,
		"time_spent_seconds": timeSpent,
	}); err != nil {
		return nil, err
	}
	attempt.Status = status
	attempt.EndTime = now
	attempt.SubmittedAt = now
	attempt.TimeSpentSeconds = timeSpent

	summary, err := s.Evaluator.Evaluate(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	result := BuildResult(attempt, summary)
	if err := s.Results.Create(ctx, result); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrResultExists
		}
		return nil, err
	}

	if err := s.Ranker.RankSingle(ctx, result.ID); err != nil {
		return nil, err
	}

	s.Publisher.Publish("attempt.submitted", map[string]interface{}{
		"attempt_id": attempt.ID,
		"user_id":    userID,
		"test_id":    attempt.TestID,
		"result_id":  result.ID,
		"auto":       auto,
	})

	return s.Results.FindByID(ctx, result.ID)
}

func stripKeys(questions []models.Question) []models.Question {
	out := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.WithoutKey())
	}
	return out
}
