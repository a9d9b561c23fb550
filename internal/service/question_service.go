package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"testseries-service/internal/models"
	"testseries-service/internal/repository"
)

type QuestionService struct {
	Questions *repository.QuestionRepository
	Sections  *repository.SectionRepository
}

func NewQuestionService(questions *repository.QuestionRepository, sections *repository.SectionRepository) *QuestionService {
	return &QuestionService{Questions: questions, Sections: sections}
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	question, err := s.Questions.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrQuestionNotFound)
	}
	return question, nil
}

func (s *QuestionService) ListBySection(ctx context.Context, sectionID string) ([]models.Question, error) {
	return s.Questions.FindBySection(ctx, sectionID)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if err := validateQuestion(question); err != nil {
		return err
	}
	if _, err := s.Sections.FindByID(ctx, question.SectionID); err != nil {
		return notFound(err, ErrSectionNotFound)
	}
	return s.Questions.Create(ctx, question)
}

func (s *QuestionService) CreateQuestions(ctx context.Context, questions []models.Question) error {
	for i := range questions {
		if err := validateQuestion(&questions[i]); err != nil {
			return err
		}
	}
	return s.Questions.CreateMany(ctx, questions)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update bson.M) error {
	return s.Questions.Update(ctx, id, update)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Questions.Delete(ctx, id)
}

// validateQuestion rejects malformed questions at the data-entry boundary:
// unknown types, negative mark values, and answer keys that don't fit the
// question type never reach the evaluator.
func validateQuestion(q *models.Question) error {
	switch q.Type {
	case models.QuestionTypeMCQ, models.QuestionTypeInteger, models.QuestionTypeParagraph:
	default:
		return ErrInvalidQuestion
	}
	if q.Marks < 0 || q.NegativeMarks < 0 {
		return ErrInvalidQuestion
	}
	if q.Type != models.QuestionTypeParagraph {
		if !q.CorrectAnswer.IsSet() || !q.CorrectAnswer.ValidFor(q.Type) {
			return ErrInvalidQuestion
		}
	}
	return nil
}
