package eval

import (
	"strings"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// evaluateKeywords is the local fallback for subjective questions.
//
// An answer longer than MaxLength is rejected outright, whatever it
// contains. Otherwise the answer is correct when at least MinKeywords
// of the question's keywords appear in it (case-insensitive substring
// match).
//
// The confidence divides the match count by twice the keyword total,
// so it stays below 0.5 unless more than half the keywords match.
// Inherited formula; do not change without revisiting the recorded
// grading history.
func evaluateKeywords(q quiz.Question, answer string) quiz.Evaluation {
	if q.MaxLength > 0 && len(answer) > q.MaxLength {
		return quiz.Evaluation{
			IsCorrect:       false,
			ConfidenceScore: 0,
			FullEvaluation:  "Answer exceeds the maximum length.",
		}
	}

	matched := matchKeywords(q.Keywords, answer)

	var confidence float64
	if len(q.Keywords) > 0 {
		confidence = float64(matched) / float64(2*len(q.Keywords))
	}

	return quiz.Evaluation{
		IsCorrect:       matched >= q.MinKeywords,
		ConfidenceScore: confidence,
	}
}

// matchKeywords counts how many keywords occur in the answer.
func matchKeywords(keywords []string, answer string) int {
	lower := strings.ToLower(answer)
	matched := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched++
		}
	}
	return matched
}
