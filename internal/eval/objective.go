package eval

import (
	"strings"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// evaluateObjective compares the answer against the expected answer
// after trimming surrounding whitespace, case-insensitively. The
// confidence is always 1: there is nothing probabilistic about an
// exact match.
func evaluateObjective(q quiz.Question, answer string) quiz.Evaluation {
	correct := strings.EqualFold(
		strings.TrimSpace(answer),
		strings.TrimSpace(q.ExpectedAnswer),
	)
	return quiz.Evaluation{
		IsCorrect:       correct,
		ConfidenceScore: 1,
	}
}
