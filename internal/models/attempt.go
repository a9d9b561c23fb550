package models

import "time"

const (
	AttemptInProgress    = "in_progress"
	AttemptSubmitted     = "submitted"
	AttemptAutoSubmitted = "auto_submitted"
	AttemptAbandoned     = "abandoned"
)

type Attempt struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	TestID           string    `bson:"test_id" json:"test_id"`
	StartTime        time.Time `bson:"start_time" json:"start_time"`
	EndTime          time.Time `bson:"end_time,omitempty" json:"end_time,omitempty"`
	SubmittedAt      time.Time `bson:"submitted_at,omitempty" json:"submitted_at,omitempty"`
	TimeSpentSeconds int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
	Status           string    `bson:"status" json:"status"`
	QuestionOrder    []string  `bson:"question_order" json:"question_order"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

type Answer struct {
	ID                string      `bson:"_id,omitempty" json:"id"`
	AttemptID         string      `bson:"attempt_id" json:"attempt_id"`
	QuestionID        string      `bson:"question_id" json:"question_id"`
	Value             AnswerValue `bson:"value" json:"value"`
	IsAttempted       bool        `bson:"is_attempted" json:"is_attempted"`
	IsMarkedForReview bool        `bson:"is_marked_for_review" json:"is_marked_for_review"`
	IsCorrect         *bool       `bson:"is_correct,omitempty" json:"is_correct,omitempty"`
	MarksAwarded      *float64    `bson:"marks_awarded,omitempty" json:"marks_awarded,omitempty"`
	TimeSpentSeconds  int         `bson:"time_spent_seconds" json:"time_spent_seconds"`
	AnsweredAt        time.Time   `bson:"answered_at,omitempty" json:"answered_at,omitempty"`
}

// AnswerGrade is the evaluation outcome for one attempted answer, written
// back onto the Answer record after scoring.
type AnswerGrade struct {
	AnswerID     string  `bson:"answer_id" json:"answer_id"`
	QuestionID   string  `bson:"question_id" json:"question_id"`
	IsCorrect    bool    `bson:"is_correct" json:"is_correct"`
	MarksAwarded float64 `bson:"marks_awarded" json:"marks_awarded"`
}
