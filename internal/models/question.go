package models

import "time"

const (
	QuestionTypeMCQ       = "mcq"
	QuestionTypeInteger   = "integer"
	QuestionTypeParagraph = "paragraph"
)

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

type Question struct {
	ID            string      `bson:"_id,omitempty" json:"id"`
	SectionID     string      `bson:"section_id" json:"section_id"`
	Type          string      `bson:"type" json:"type"`
	Text          string      `bson:"text" json:"text"`
	Paragraph     string      `bson:"paragraph,omitempty" json:"paragraph,omitempty"`
	Options       []Option    `bson:"options,omitempty" json:"options,omitempty"`
	CorrectAnswer AnswerValue `bson:"correct_answer" json:"correct_answer"`
	Explanation   string      `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Marks         float64     `bson:"marks" json:"marks"`
	NegativeMarks float64     `bson:"negative_marks" json:"negative_marks"`
	Difficulty    string      `bson:"difficulty" json:"difficulty"`
	Subject       string      `bson:"subject" json:"subject"`
	Topic         string      `bson:"topic" json:"topic"`
	CreatedAt     time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `bson:"updated_at" json:"updated_at"`
}

// WithoutKey returns a copy safe to hand to a student mid-attempt: the answer
// key and explanation are stripped.
func (q Question) WithoutKey() Question {
	q.CorrectAnswer = AnswerValue{Kind: AnswerValueNone}
	q.Explanation = ""
	return q
}
