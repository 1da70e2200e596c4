package quiz

import "math"

// Progress is a pure derivation over the question snapshot and answer
// map. Computing it twice with no intervening mutation yields identical
// results.
type Progress struct {
	Cursor           int
	TotalQuestions   int
	AnsweredCount    int
	CorrectCount     int
	TotalScore       float64
	MaxPossibleScore float64
	HintPenalty      float64
	OverallScore     int
}

// Progress derives the current score state. Each answered question
// contributes its latest grade/10 when a grade was recorded, otherwise
// a flat 1 or 0 by correctness. The hint penalty is 0.1 per hint, capped
// at 0.2 per correct answer.
func (s *Session) Progress() Progress {
	p := Progress{
		Cursor:           s.cursor,
		TotalQuestions:   len(s.questions),
		MaxPossibleScore: float64(len(s.questions)),
	}

	for _, q := range s.questions {
		history := s.answers[q.ID]
		if len(history) == 0 {
			continue
		}
		p.AnsweredCount++

		latest := history[len(history)-1]
		if latest.IsCorrect {
			p.CorrectCount++
		}
		if latest.Grade != nil {
			p.TotalScore += float64(*latest.Grade) / 10
		} else if latest.IsCorrect {
			p.TotalScore++
		}
	}

	p.HintPenalty = math.Min(float64(p.CorrectCount)*0.2, float64(s.hintCount)*0.1)

	if p.MaxPossibleScore > 0 {
		p.OverallScore = int(math.Round(100 * (p.TotalScore - p.HintPenalty) / p.MaxPossibleScore))
	}
	return p
}
