package service

import (
	"context"

	"testseries-service/internal/models"
	"testseries-service/internal/scoring"
)

// EvaluationService loads everything a submitted attempt touched, scores it
// with the pure evaluator, and writes the per-answer grades back in one
// batch. It does not create the Result; the submission flow owns that.
type EvaluationService struct {
	Attempts  AttemptStore
	Tests     TestStore
	Sections  SectionStore
	Questions QuestionStore
	Answers   AnswerStore
}

func NewEvaluationService(
	attempts AttemptStore,
	tests TestStore,
	sections SectionStore,
	questions QuestionStore,
	answers AnswerStore,
) *EvaluationService {
	return &EvaluationService{
		Attempts:  attempts,
		Tests:     tests,
		Sections:  sections,
		Questions: questions,
		Answers:   answers,
	}
}

func (s *EvaluationService) Evaluate(ctx context.Context, attemptID string) (*scoring.EvaluationSummary, error) {
	attempt, err := s.Attempts.FindByID(ctx, attemptID)
	if err != nil {
		return nil, notFound(err, ErrAttemptNotFound)
	}
	test, err := s.Tests.FindByID(ctx, attempt.TestID)
	if err != nil {
		return nil, notFound(err, ErrTestNotFound)
	}

	sections, err := s.Sections.FindByTest(ctx, test.ID)
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
	answers, err := s.Answers.FindByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	summary := scoring.Evaluate(scoring.EvaluationInput{
		Attempt:   attempt,
		Sections:  sections,
		Questions: questions,
		Answers:   answers,
	})

	if err := s.Answers.SaveGrades(ctx, summary.Grades); err != nil {
		return nil, err
	}
	return &summary, nil
}

// BuildResult shapes an evaluation summary into the Result document for one
// attempt. Rank fields stay zero until the ranker fills them in.
func BuildResult(attempt *models.Attempt, summary *scoring.EvaluationSummary) *models.Result {
	return &models.Result{
		AttemptID:              attempt.ID,
		UserID:                 attempt.UserID,
		TestID:                 attempt.TestID,
		TotalScore:             summary.TotalScore,
		TotalMarks:             summary.TotalMarks,
		Percentage:             summary.Percentage,
		TotalQuestions:         summary.TotalQuestions,
		Attempted:              summary.Attempted,
		Correct:                summary.Correct,
		Incorrect:              summary.Incorrect,
		Unattempted:            summary.Unattempted,
		MarkedForReview:        summary.MarkedForReview,
		SectionWise:            summary.SectionWise,
		SubjectWise:            summary.SubjectWise,
		TopicWise:              summary.TopicWise,
		AverageTimePerQuestion: summary.AverageTimePerQuestion,
		TotalTimeSpentSeconds:  summary.TotalTimeSpentSeconds,
		Strengths:              summary.Strengths,
		Weaknesses:             summary.Weaknesses,
	}
}
