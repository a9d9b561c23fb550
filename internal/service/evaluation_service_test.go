package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"testseries-service/internal/models"
)

func evaluationFixture() (*EvaluationService, *fakeAttemptStore, *fakeAnswerStore) {
	attempts := newFakeAttemptStore()
	tests := &fakeTestStore{tests: map[string]*models.Test{
		"t1": {ID: "t1", Title: "Algebra Mock", TotalMarks: 8, IsPublished: true},
	}}
	sections := &fakeSectionStore{sections: []models.Section{
		{ID: "s1", TestID: "t1", Name: "Algebra", Order: 1},
	}}
	questions := &fakeQuestionStore{questions: []models.Question{
		{
			ID: "q1", SectionID: "s1", Type: models.QuestionTypeMCQ,
			CorrectAnswer: models.TextAnswer("B"), Marks: 4, NegativeMarks: 1,
			Subject: "Maths", Topic: "Linear Equations",
		},
		{
			ID: "q2", SectionID: "s1", Type: models.QuestionTypeInteger,
			CorrectAnswer: models.NumberAnswer(42), Marks: 4,
			Subject: "Maths", Topic: "Arithmetic",
		},
	}}
	answers := &fakeAnswerStore{}
	svc := NewEvaluationService(attempts, tests, sections, questions, answers)
	return svc, attempts, answers
}

func TestEvaluateUnknownAttempt(t *testing.T) {
	svc, _, _ := evaluationFixture()

	_, err := svc.Evaluate(context.Background(), "nope")
	if !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("Evaluate error = %v, want ErrAttemptNotFound", err)
	}
}

func TestEvaluateUnknownTest(t *testing.T) {
	svc, attempts, _ := evaluationFixture()
	attempts.attempts["a1"] = &models.Attempt{
		ID: "a1", UserID: "u1", TestID: "deleted", Status: models.AttemptSubmitted,
	}

	_, err := svc.Evaluate(context.Background(), "a1")
	if !errors.Is(err, ErrTestNotFound) {
		t.Fatalf("Evaluate error = %v, want ErrTestNotFound", err)
	}
}

func TestEvaluatePersistsGrades(t *testing.T) {
	svc, attempts, answers := evaluationFixture()
	attempts.attempts["a1"] = &models.Attempt{
		ID: "a1", UserID: "u1", TestID: "t1",
		Status: models.AttemptSubmitted, TimeSpentSeconds: 120,
	}
	answers.answers = []models.Answer{
		{
			ID: "ans1", AttemptID: "a1", QuestionID: "q1",
			Value: models.TextAnswer("b"), IsAttempted: true,
		},
		{ID: "ans2", AttemptID: "a1", QuestionID: "q2"},
	}

	summary, err := svc.Evaluate(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if summary.TotalScore != 4 {
		t.Errorf("TotalScore = %v, want 4", summary.TotalScore)
	}
	if summary.Attempted != 1 || summary.Correct != 1 || summary.Unattempted != 1 {
		t.Errorf("counts = %d/%d/%d, want attempted 1, correct 1, unattempted 1",
			summary.Attempted, summary.Correct, summary.Unattempted)
	}

	if answers.gradeCalls != 1 {
		t.Fatalf("SaveGrades called %d times, want 1", answers.gradeCalls)
	}
	// Only attempted answers are graded; untouched rows keep nil grade fields.
	if len(summary.Grades) != 1 || summary.Grades[0].AnswerID != "ans1" {
		t.Fatalf("grades = %+v, want only ans1", summary.Grades)
	}
	graded, _ := answers.FindOne(context.Background(), "a1", "q1")
	if graded.IsCorrect == nil || !*graded.IsCorrect {
		t.Error("q1 answer not graded correct")
	}
	if graded.MarksAwarded == nil || *graded.MarksAwarded != 4 {
		t.Errorf("q1 marks awarded = %v, want 4", graded.MarksAwarded)
	}
	blank, _ := answers.FindOne(context.Background(), "a1", "q2")
	if blank.IsCorrect != nil {
		t.Errorf("unattempted q2 graded correct=%v, want no grade", *blank.IsCorrect)
	}
	if blank.MarksAwarded != nil {
		t.Errorf("unattempted q2 marks awarded = %v, want no grade", *blank.MarksAwarded)
	}
}

func TestBuildResultCarriesSummary(t *testing.T) {
	svc, attempts, answers := evaluationFixture()
	attempts.attempts["a1"] = &models.Attempt{
		ID: "a1", UserID: "u1", TestID: "t1",
		Status: models.AttemptSubmitted, TimeSpentSeconds: 300,
		SubmittedAt: time.Now(),
	}
	answers.answers = []models.Answer{
		{ID: "ans1", AttemptID: "a1", QuestionID: "q1", Value: models.TextAnswer("B"), IsAttempted: true},
		{ID: "ans2", AttemptID: "a1", QuestionID: "q2", Value: models.NumberAnswer(42), IsAttempted: true},
	}

	summary, err := svc.Evaluate(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	attempt, _ := attempts.FindByID(context.Background(), "a1")
	result := BuildResult(attempt, summary)

	if result.AttemptID != "a1" || result.UserID != "u1" || result.TestID != "t1" {
		t.Errorf("result identity = %s/%s/%s", result.AttemptID, result.UserID, result.TestID)
	}
	if result.TotalScore != 8 || result.Percentage != 100 {
		t.Errorf("score = %v (%v%%), want 8 (100%%)", result.TotalScore, result.Percentage)
	}
	if result.Rank != 0 || result.Percentile != 0 {
		t.Error("rank fields must stay zero until the ranker runs")
	}
	if len(result.SectionWise) != 1 || result.SectionWise[0].SectionName != "Algebra" {
		t.Errorf("section breakdown = %+v", result.SectionWise)
	}
}
