package service

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"testseries-service/internal/models"
)

// In-memory stand-ins for the Mongo repositories. Missing documents surface
// as mongo.ErrNoDocuments, matching what the driver returns.

type fakeAttemptStore struct {
	attempts map[string]*models.Attempt
	seq      int
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{attempts: make(map[string]*models.Attempt)}
}

func (s *fakeAttemptStore) FindByID(_ context.Context, id string) (*models.Attempt, error) {
	a, ok := s.attempts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *a
	return &copied, nil
}

func (s *fakeAttemptStore) FindInProgress(_ context.Context, userID, testID string) (*models.Attempt, error) {
	for _, a := range s.attempts {
		if a.UserID == userID && a.TestID == testID && a.Status == models.AttemptInProgress {
			copied := *a
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakeAttemptStore) FindByUser(_ context.Context, userID, testID, status string) ([]models.Attempt, error) {
	var out []models.Attempt
	for _, a := range s.attempts {
		if a.UserID != userID {
			continue
		}
		if testID != "" && a.TestID != testID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (s *fakeAttemptStore) Create(_ context.Context, attempt *models.Attempt) error {
	if attempt.ID == "" {
		s.seq++
		attempt.ID = fmt.Sprintf("attempt-%d", s.seq)
	}
	copied := *attempt
	s.attempts[attempt.ID] = &copied
	return nil
}

func (s *fakeAttemptStore) Update(_ context.Context, id string, update bson.M) error {
	a, ok := s.attempts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if v, ok := update["status"]; ok {
		a.Status = v.(string)
	}
	if v, ok := update["time_spent_seconds"]; ok {
		a.TimeSpentSeconds = v.(int)
	}
	return nil
}

type fakeTestStore struct {
	tests map[string]*models.Test
}

func (s *fakeTestStore) FindByID(_ context.Context, id string) (*models.Test, error) {
	t, ok := s.tests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *t
	return &copied, nil
}

type fakeSectionStore struct {
	sections []models.Section
}

func (s *fakeSectionStore) FindByTest(_ context.Context, testID string) ([]models.Section, error) {
	var out []models.Section
	for _, sec := range s.sections {
		if sec.TestID == testID {
			out = append(out, sec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

type fakeQuestionStore struct {
	questions []models.Question
}

func (s *fakeQuestionStore) FindByID(_ context.Context, id string) (*models.Question, error) {
	for _, q := range s.questions {
		if q.ID == id {
			copied := q
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakeQuestionStore) FindBySections(_ context.Context, sectionIDs []string) ([]models.Question, error) {
	wanted := make(map[string]bool, len(sectionIDs))
	for _, id := range sectionIDs {
		wanted[id] = true
	}
	var out []models.Question
	for _, q := range s.questions {
		if wanted[q.SectionID] {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakeAnswerStore struct {
	answers    []models.Answer
	seq        int
	gradeCalls int
}

func (s *fakeAnswerStore) FindByAttempt(_ context.Context, attemptID string) ([]models.Answer, error) {
	var out []models.Answer
	for _, a := range s.answers {
		if a.AttemptID == attemptID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeAnswerStore) FindOne(_ context.Context, attemptID, questionID string) (*models.Answer, error) {
	for _, a := range s.answers {
		if a.AttemptID == attemptID && a.QuestionID == questionID {
			copied := a
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakeAnswerStore) CreateMany(_ context.Context, answers []models.Answer) error {
	for _, a := range answers {
		if a.ID == "" {
			s.seq++
			a.ID = fmt.Sprintf("answer-%d", s.seq)
		}
		s.answers = append(s.answers, a)
	}
	return nil
}

func (s *fakeAnswerStore) SaveResponse(_ context.Context, attemptID, questionID string, value models.AnswerValue, markedForReview bool, timeSpentSeconds int) error {
	for i := range s.answers {
		if s.answers[i].AttemptID == attemptID && s.answers[i].QuestionID == questionID {
			s.answers[i].Value = value
			s.answers[i].IsAttempted = value.IsSet()
			s.answers[i].IsMarkedForReview = markedForReview
			s.answers[i].TimeSpentSeconds = timeSpentSeconds
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (s *fakeAnswerStore) SaveGrades(_ context.Context, grades []models.AnswerGrade) error {
	s.gradeCalls++
	for _, g := range grades {
		for i := range s.answers {
			if s.answers[i].ID == g.AnswerID {
				correct := g.IsCorrect
				awarded := g.MarksAwarded
				s.answers[i].IsCorrect = &correct
				s.answers[i].MarksAwarded = &awarded
			}
		}
	}
	return nil
}

type fakeResultStore struct {
	results map[string]*models.Result
	seq     int
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{results: make(map[string]*models.Result)}
}

func (s *fakeResultStore) FindByID(_ context.Context, id string) (*models.Result, error) {
	r, ok := s.results[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *r
	return &copied, nil
}

func (s *fakeResultStore) FindByAttempt(_ context.Context, attemptID string) (*models.Result, error) {
	for _, r := range s.results {
		if r.AttemptID == attemptID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakeResultStore) FindByUser(_ context.Context, userID string) ([]models.Result, error) {
	var out []models.Result
	for _, r := range s.results {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeResultStore) FindByTestRanked(_ context.Context, testID string) ([]models.Result, error) {
	var out []models.Result
	for _, r := range s.results {
		if r.TestID == testID {
			out = append(out, *r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalScore != out[j].TotalScore {
			return out[i].TotalScore > out[j].TotalScore
		}
		return out[i].TotalTimeSpentSeconds < out[j].TotalTimeSpentSeconds
	})
	return out, nil
}

func (s *fakeResultStore) Create(_ context.Context, result *models.Result) error {
	for _, r := range s.results {
		if r.AttemptID == result.AttemptID {
			// Same shape the driver reports for a unique index violation.
			return mongo.WriteException{WriteErrors: mongo.WriteErrors{
				{Code: 11000, Message: "duplicate key"},
			}}
		}
	}
	if result.ID == "" {
		s.seq++
		result.ID = fmt.Sprintf("result-%d", s.seq)
	}
	copied := *result
	s.results[result.ID] = &copied
	return nil
}

func (s *fakeResultStore) SaveRank(_ context.Context, id string, rank int, percentile float64, totalAttempts int) error {
	r, ok := s.results[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	r.Rank = rank
	r.Percentile = percentile
	r.TotalAttempts = totalAttempts
	return nil
}
