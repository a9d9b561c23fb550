package scoring

import "testseries-service/internal/models"

// Evaluate scores a submitted attempt against its question universe. It is a
// pure function: all I/O happens before (loading) and after (persisting the
// grades and the result) in the service layer.
func Evaluate(in EvaluationInput) EvaluationSummary {
	questionsByID := make(map[string]models.Question, len(in.Questions))
	for _, q := range in.Questions {
		questionsByID[q.ID] = q
	}

	sectionTallies := newTallyMap()
	subjectTallies := newTallyMap()
	topicTallies := newTallyMap()

	var summary EvaluationSummary
	summary.TotalQuestions = len(in.Questions)

	for _, answer := range in.Answers {
		question, ok := questionsByID[answer.QuestionID]
		if !ok {
			continue
		}

		summary.TotalMarks += question.Marks

		if answer.IsMarkedForReview {
			summary.MarkedForReview++
		}

		if !answer.IsAttempted || !answer.Value.IsSet() {
			continue
		}
		summary.Attempted++

		correct := answer.Value.Matches(question.Type, question.CorrectAnswer)
		var awarded float64
		if correct {
			summary.Correct++
			awarded = question.Marks
		} else {
			summary.Incorrect++
			awarded = -question.NegativeMarks
		}
		summary.TotalScore += awarded

		summary.Grades = append(summary.Grades, models.AnswerGrade{
			AnswerID:     answer.ID,
			QuestionID:   question.ID,
			IsCorrect:    correct,
			MarksAwarded: awarded,
		})

		sectionTallies.add(question.SectionID, question.Marks, awarded, correct)
		subjectTallies.add(question.Subject, question.Marks, awarded, correct)
		topicTallies.add(question.Topic, question.Marks, awarded, correct)
	}

	summary.Unattempted = summary.TotalQuestions - summary.Attempted
	if summary.TotalMarks > 0 {
		summary.Percentage = summary.TotalScore / summary.TotalMarks * 100
	}

	summary.SectionWise = buildSectionBreakdowns(in.Sections, sectionTallies)
	summary.SubjectWise = buildGroupBreakdowns(subjectTallies)
	summary.TopicWise = buildGroupBreakdowns(topicTallies)
	summary.Strengths, summary.Weaknesses = classifyTopics(summary.TopicWise)

	summary.TotalTimeSpentSeconds = in.Attempt.TimeSpentSeconds
	if summary.Attempted > 0 {
		summary.AverageTimePerQuestion = float64(summary.TotalTimeSpentSeconds) / float64(summary.Attempted)
	}

	return summary
}

// buildSectionBreakdowns emits one entry per declared section, in section
// order. Sections the student never touched still appear with zero stats,
// which is why this walks the section list instead of the tally map.
func buildSectionBreakdowns(sections []models.Section, tallies *tallyMap) []models.SectionBreakdown {
	breakdowns := make([]models.SectionBreakdown, 0, len(sections))
	for _, section := range sections {
		t, _ := tallies.get(section.ID)
		breakdowns = append(breakdowns, models.SectionBreakdown{
			SectionID:   section.ID,
			SectionName: section.Name,
			Score:       t.score,
			TotalMarks:  t.totalMarks,
			Accuracy:    t.accuracy(),
			Attempted:   t.attempted,
			Correct:     t.correct,
			Incorrect:   t.incorrect,
		})
	}
	return breakdowns
}

func buildGroupBreakdowns(tallies *tallyMap) []models.GroupBreakdown {
	breakdowns := make([]models.GroupBreakdown, 0, len(tallies.order))
	for _, key := range tallies.order {
		t, _ := tallies.get(key)
		breakdowns = append(breakdowns, models.GroupBreakdown{
			Name:       key,
			Score:      t.score,
			TotalMarks: t.totalMarks,
			Accuracy:   t.accuracy(),
			Attempted:  t.attempted,
			Correct:    t.correct,
			Incorrect:  t.incorrect,
		})
	}
	return breakdowns
}

// classifyTopics splits topics into strengths and weaknesses. Topics with
// fewer than minTopicSample attempts, or accuracy between the two thresholds,
// land in neither list.
func classifyTopics(topics []models.GroupBreakdown) (strengths, weaknesses []string) {
	for _, topic := range topics {
		if topic.Attempted < minTopicSample {
			continue
		}
		if topic.Accuracy >= strengthAccuracy {
			strengths = append(strengths, topic.Name)
		} else if topic.Accuracy < weaknessAccuracy {
			weaknesses = append(weaknesses, topic.Name)
		}
	}
	return strengths, weaknesses
}
