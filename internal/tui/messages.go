package tui

import "github.com/abhisek/quizdeck/internal/quiz"

// sessionReadyMsg reports the outcome of session initialization.
type sessionReadyMsg struct {
	Err error
}

// answerEvaluatedMsg carries the evaluation of a submitted answer.
type answerEvaluatedMsg struct {
	Answer quiz.UserAnswer
	Err    error
}

// restartDoneMsg reports the outcome of a quiz restart.
type restartDoneMsg struct {
	Err error
}
