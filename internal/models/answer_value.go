package models

import (
	"strconv"
	"strings"
)

type AnswerValueKind string

const (
	AnswerValueNone   AnswerValueKind = "none"
	AnswerValueText   AnswerValueKind = "text"
	AnswerValueNumber AnswerValueKind = "number"
)

// AnswerValue is the recorded value of an answer (or a question's answer key).
// It is a tagged union: exactly one of Text or Number is meaningful, selected
// by Kind. An empty/none kind means no value was recorded.
type AnswerValue struct {
	Kind   AnswerValueKind `bson:"kind" json:"kind"`
	Text   string          `bson:"text,omitempty" json:"text,omitempty"`
	Number float64         `bson:"number,omitempty" json:"number,omitempty"`
}

func TextAnswer(s string) AnswerValue {
	return AnswerValue{Kind: AnswerValueText, Text: s}
}

func NumberAnswer(n float64) AnswerValue {
	return AnswerValue{Kind: AnswerValueNumber, Number: n}
}

func (v AnswerValue) IsSet() bool {
	return v.Kind == AnswerValueText || v.Kind == AnswerValueNumber
}

func (v AnswerValue) asText() string {
	if v.Kind == AnswerValueNumber {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

func (v AnswerValue) asNumber() (float64, bool) {
	switch v.Kind {
	case AnswerValueNumber:
		return v.Number, true
	case AnswerValueText:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		return n, err == nil
	}
	return 0, false
}

// Matches reports whether v is a correct response to a question of the given
// type with the given answer key. MCQ answers compare as case-insensitive
// strings, integer answers compare numerically (string digits coerce), and
// paragraph questions are never auto-marked correct.
func (v AnswerValue) Matches(questionType string, key AnswerValue) bool {
	if !v.IsSet() {
		return false
	}
	switch questionType {
	case QuestionTypeMCQ:
		return strings.EqualFold(v.asText(), key.asText())
	case QuestionTypeInteger:
		given, ok := v.asNumber()
		if !ok {
			return false
		}
		want, ok := key.asNumber()
		if !ok {
			return false
		}
		return given == want
	}
	return false
}

// ValidFor reports whether v is an acceptable input for a question of the
// given type. Ambiguous values are rejected here, at the data-entry boundary,
// so the evaluator never sees them.
func (v AnswerValue) ValidFor(questionType string) bool {
	if !v.IsSet() {
		return questionType == QuestionTypeMCQ || questionType == QuestionTypeInteger || questionType == QuestionTypeParagraph
	}
	switch questionType {
	case QuestionTypeMCQ, QuestionTypeParagraph:
		return v.Kind == AnswerValueText && v.Text != ""
	case QuestionTypeInteger:
		_, ok := v.asNumber()
		return ok
	}
	return false
}
