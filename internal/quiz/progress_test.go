package quiz

import (
	"testing"
)

func gradedAnswer(questionID, grade int, correct bool) UserAnswer {
	return UserAnswer{QuestionID: questionID, IsCorrect: correct, Grade: &grade}
}

func sessionWithHistory(t *testing.T, n int, records []UserAnswer, hintCount int) *Session {
	t.Helper()
	bank := newFakeBank(testQuestions(n)...)
	s := NewSession(bank, &fakeLog{records: records}, &fakeHints{n: hintCount}, matchGrader{}, nil)
	initSession(t, s)
	return s
}

func TestProgressEmpty(t *testing.T) {
	s := sessionWithHistory(t, 4, nil, 0)

	p := s.Progress()
	if p.TotalQuestions != 4 {
		t.Errorf("total = %d, want 4", p.TotalQuestions)
	}
	if p.AnsweredCount != 0 || p.CorrectCount != 0 || p.OverallScore != 0 {
		t.Errorf("expected zero progress, got %+v", p)
	}
}

func TestProgressFlatScoring(t *testing.T) {
	// No grades recorded: correct answers count 1, wrong count 0.
	s := sessionWithHistory(t, 4, []UserAnswer{
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 2, IsCorrect: false},
		{QuestionID: 3, IsCorrect: true},
	}, 0)

	p := s.Progress()
	if p.AnsweredCount != 3 {
		t.Errorf("answered = %d, want 3", p.AnsweredCount)
	}
	if p.CorrectCount != 2 {
		t.Errorf("correct = %d, want 2", p.CorrectCount)
	}
	if p.TotalScore != 2 {
		t.Errorf("total score = %v, want 2", p.TotalScore)
	}
	// 100 * 2/4 = 50
	if p.OverallScore != 50 {
		t.Errorf("overall = %d, want 50", p.OverallScore)
	}
}

func TestProgressGradedScoring(t *testing.T) {
	// Graded answers contribute grade/10 regardless of correctness flag.
	s := sessionWithHistory(t, 2, []UserAnswer{
		gradedAnswer(1, 8, true),
		gradedAnswer(2, 4, false),
	}, 0)

	p := s.Progress()
	if p.TotalScore != 1.2 {
		t.Errorf("total score = %v, want 1.2", p.TotalScore)
	}
	// 100 * 1.2/2 = 60
	if p.OverallScore != 60 {
		t.Errorf("overall = %d, want 60", p.OverallScore)
	}
}

func TestProgressUsesLatestAnswer(t *testing.T) {
	s := sessionWithHistory(t, 1, []UserAnswer{
		{QuestionID: 1, IsCorrect: false},
		{QuestionID: 1, IsCorrect: true},
	}, 0)

	p := s.Progress()
	if p.CorrectCount != 1 {
		t.Errorf("correct = %d, want 1 (latest wins)", p.CorrectCount)
	}
	if p.AnsweredCount != 1 {
		t.Errorf("answered = %d, want 1", p.AnsweredCount)
	}
}

func TestProgressHintPenalty(t *testing.T) {
	// 2 correct answers, 3 hints: penalty = min(2*0.2, 3*0.1) = 0.3.
	s := sessionWithHistory(t, 4, []UserAnswer{
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 2, IsCorrect: true},
	}, 3)

	p := s.Progress()
	if p.HintPenalty != 0.3 {
		t.Errorf("penalty = %v, want 0.3", p.HintPenalty)
	}
	// round(100 * (2 - 0.3)/4) = round(42.5) = 43
	if p.OverallScore != 43 {
		t.Errorf("overall = %d, want 43", p.OverallScore)
	}
}

func TestProgressHintPenaltyCap(t *testing.T) {
	// 1 correct answer, 10 hints: penalty caps at 1*0.2.
	s := sessionWithHistory(t, 2, []UserAnswer{
		{QuestionID: 1, IsCorrect: true},
	}, 10)

	p := s.Progress()
	if p.HintPenalty != 0.2 {
		t.Errorf("penalty = %v, want 0.2", p.HintPenalty)
	}
}

func TestProgressIdempotent(t *testing.T) {
	s := sessionWithHistory(t, 3, []UserAnswer{
		gradedAnswer(1, 7, true),
		{QuestionID: 2, IsCorrect: true},
	}, 1)

	first := s.Progress()
	second := s.Progress()
	if first != second {
		t.Errorf("progress not idempotent: %+v vs %+v", first, second)
	}
}

func TestProgressEmptyBankNoDivideByZero(t *testing.T) {
	bank := newFakeBank()
	s := NewSession(bank, &fakeLog{}, &fakeHints{}, matchGrader{}, nil)
	initSession(t, s)

	p := s.Progress()
	if p.OverallScore != 0 {
		t.Errorf("overall = %d, want 0 for empty bank", p.OverallScore)
	}
}
