package models

import "time"

type TestConfig struct {
	ShuffleQuestions bool `bson:"shuffle_questions" json:"shuffle_questions"`
	AllowResume      bool `bson:"allow_resume" json:"allow_resume"`
}

type Test struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	Title           string     `bson:"title" json:"title"`
	Description     string     `bson:"description" json:"description"`
	DurationMinutes int        `bson:"duration_minutes" json:"duration_minutes"`
	TotalMarks      float64    `bson:"total_marks" json:"total_marks"`
	IsPublished     bool       `bson:"is_published" json:"is_published"`
	Config          TestConfig `bson:"config" json:"config"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updated_at"`
}

type Section struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	TestID    string    `bson:"test_id" json:"test_id"`
	Name      string    `bson:"name" json:"name"`
	Order     int       `bson:"order" json:"order"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
