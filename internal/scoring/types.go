package scoring

import "testseries-service/internal/models"

// Policy constants for strength/weakness classification. A topic needs at
// least minTopicSample attempted questions before it is classified at all.
const (
	minTopicSample   = 3
	strengthAccuracy = 75.0
	weaknessAccuracy = 50.0
)

// EvaluationInput is everything the evaluator needs, already loaded:
// the attempt, its test's sections in declaration order, the full question
// universe of those sections, and every answer row of the attempt.
type EvaluationInput struct {
	Attempt   *models.Attempt
	Sections  []models.Section
	Questions []models.Question
	Answers   []models.Answer
}

// EvaluationSummary is the scored outcome of one attempt, plus the per-answer
// grades that must be written back onto the Answer records.
type EvaluationSummary struct {
	TotalScore             float64
	TotalMarks             float64
	Percentage             float64
	TotalQuestions         int
	Attempted              int
	Correct                int
	Incorrect              int
	Unattempted            int
	MarkedForReview        int
	SectionWise            []models.SectionBreakdown
	SubjectWise            []models.GroupBreakdown
	TopicWise              []models.GroupBreakdown
	AverageTimePerQuestion float64
	TotalTimeSpentSeconds  int
	Strengths              []string
	Weaknesses             []string
	Grades                 []models.AnswerGrade
}

// Placement is one result's position after ranking a test's result set.
type Placement struct {
	ResultID      string
	Rank          int
	Percentile    float64
	TotalAttempts int
}

// tally accumulates stats for one grouping key (section, subject or topic).
type tally struct {
	totalMarks float64
	score      float64
	attempted  int
	correct    int
	incorrect  int
}

// tallyMap is an insertion-order-preserving map of grouping key to tally,
// so breakdown output order is deterministic (first-seen order).
type tallyMap struct {
	order []string
	byKey map[string]*tally
}

func newTallyMap() *tallyMap {
	return &tallyMap{byKey: make(map[string]*tally)}
}

func (m *tallyMap) add(key string, marks, awarded float64, correct bool) {
	t, ok := m.byKey[key]
	if !ok {
		t = &tally{}
		m.byKey[key] = t
		m.order = append(m.order, key)
	}
	t.totalMarks += marks
	t.score += awarded
	t.attempted++
	if correct {
		t.correct++
	} else {
		t.incorrect++
	}
}

func (m *tallyMap) get(key string) (tally, bool) {
	t, ok := m.byKey[key]
	if !ok {
		return tally{}, false
	}
	return *t, true
}

func (t tally) accuracy() float64 {
	if t.attempted == 0 {
		return 0
	}
	return float64(t.correct) / float64(t.attempted) * 100
}
