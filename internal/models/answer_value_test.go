package models

import (
	"testing"
)

func TestAnswerValueMatches(t *testing.T) {
	testCases := []struct {
		name         string
		questionType string
		given        AnswerValue
		key          AnswerValue
		want         bool
	}{
		{"mcq exact", QuestionTypeMCQ, TextAnswer("A"), TextAnswer("A"), true},
		{"mcq case insensitive", QuestionTypeMCQ, TextAnswer("a"), TextAnswer("A"), true},
		{"mcq mismatch", QuestionTypeMCQ, TextAnswer("B"), TextAnswer("A"), false},
		{"integer numeric equality", QuestionTypeInteger, NumberAnswer(42), NumberAnswer(42), true},
		{"integer string coerces", QuestionTypeInteger, TextAnswer("42"), NumberAnswer(42), true},
		{"integer padded string coerces", QuestionTypeInteger, TextAnswer(" 42 "), NumberAnswer(42), true},
		{"integer non-numeric string", QuestionTypeInteger, TextAnswer("forty-two"), NumberAnswer(42), false},
		{"integer wrong value", QuestionTypeInteger, NumberAnswer(41), NumberAnswer(42), false},
		{"integer key stored as text", QuestionTypeInteger, NumberAnswer(7), TextAnswer("7"), true},
		{"paragraph never matches", QuestionTypeParagraph, TextAnswer("essay"), TextAnswer("essay"), false},
		{"unset value never matches", QuestionTypeMCQ, AnswerValue{Kind: AnswerValueNone}, TextAnswer("A"), false},
		{"mcq numeric option compares as text", QuestionTypeMCQ, NumberAnswer(2), TextAnswer("2"), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.given.Matches(tc.questionType, tc.key); got != tc.want {
				t.Errorf("Matches(%s) = %v, want %v", tc.questionType, got, tc.want)
			}
		})
	}
}

func TestAnswerValueValidFor(t *testing.T) {
	testCases := []struct {
		name         string
		questionType string
		value        AnswerValue
		want         bool
	}{
		{"mcq text ok", QuestionTypeMCQ, TextAnswer("B"), true},
		{"mcq empty text rejected", QuestionTypeMCQ, TextAnswer(""), false},
		{"mcq number rejected", QuestionTypeMCQ, NumberAnswer(2), false},
		{"integer number ok", QuestionTypeInteger, NumberAnswer(10), true},
		{"integer numeric string ok", QuestionTypeInteger, TextAnswer("10"), true},
		{"integer word rejected", QuestionTypeInteger, TextAnswer("ten"), false},
		{"paragraph text ok", QuestionTypeParagraph, TextAnswer("some prose"), true},
		{"unset value clears an answer", QuestionTypeMCQ, AnswerValue{Kind: AnswerValueNone}, true},
		{"unknown type rejected", "truefalse", TextAnswer("yes"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.ValidFor(tc.questionType); got != tc.want {
				t.Errorf("ValidFor(%s) = %v, want %v", tc.questionType, got, tc.want)
			}
		})
	}
}
