package models

import "time"

type SectionBreakdown struct {
	SectionID   string  `bson:"section_id" json:"section_id"`
	SectionName string  `bson:"section_name" json:"section_name"`
	Score       float64 `bson:"score" json:"score"`
	TotalMarks  float64 `bson:"total_marks" json:"total_marks"`
	Accuracy    float64 `bson:"accuracy" json:"accuracy"`
	Attempted   int     `bson:"attempted" json:"attempted"`
	Correct     int     `bson:"correct" json:"correct"`
	Incorrect   int     `bson:"incorrect" json:"incorrect"`
}

// GroupBreakdown aggregates performance over one subject or topic label.
type GroupBreakdown struct {
	Name       string  `bson:"name" json:"name"`
	Score      float64 `bson:"score" json:"score"`
	TotalMarks float64 `bson:"total_marks" json:"total_marks"`
	Accuracy   float64 `bson:"accuracy" json:"accuracy"`
	Attempted  int     `bson:"attempted" json:"attempted"`
	Correct    int     `bson:"correct" json:"correct"`
	Incorrect  int     `bson:"incorrect" json:"incorrect"`
}

type Result struct {
	ID                     string             `bson:"_id,omitempty" json:"id"`
	AttemptID              string             `bson:"attempt_id" json:"attempt_id"`
	UserID                 string             `bson:"user_id" json:"user_id"`
	TestID                 string             `bson:"test_id" json:"test_id"`
	TotalScore             float64            `bson:"total_score" json:"total_score"`
	TotalMarks             float64            `bson:"total_marks" json:"total_marks"`
	Percentage             float64            `bson:"percentage" json:"percentage"`
	TotalQuestions         int                `bson:"total_questions" json:"total_questions"`
	Attempted              int                `bson:"attempted" json:"attempted"`
	Correct                int                `bson:"correct" json:"correct"`
	Incorrect              int                `bson:"incorrect" json:"incorrect"`
	Unattempted            int                `bson:"unattempted" json:"unattempted"`
	MarkedForReview        int                `bson:"marked_for_review" json:"marked_for_review"`
	Rank                   int                `bson:"rank,omitempty" json:"rank,omitempty"`
	Percentile             float64            `bson:"percentile,omitempty" json:"percentile,omitempty"`
	TotalAttempts          int                `bson:"total_attempts,omitempty" json:"total_attempts,omitempty"`
	SectionWise            []SectionBreakdown `bson:"section_wise" json:"section_wise"`
	SubjectWise            []GroupBreakdown   `bson:"subject_wise" json:"subject_wise"`
	TopicWise              []GroupBreakdown   `bson:"topic_wise" json:"topic_wise"`
	AverageTimePerQuestion float64            `bson:"average_time_per_question" json:"average_time_per_question"`
	TotalTimeSpentSeconds  int                `bson:"total_time_spent_seconds" json:"total_time_spent_seconds"`
	Strengths              []string           `bson:"strengths" json:"strengths"`
	Weaknesses             []string           `bson:"weaknesses" json:"weaknesses"`
	CreatedAt              time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt              time.Time          `bson:"updated_at" json:"updated_at"`
}
