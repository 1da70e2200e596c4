// Package tui is the interactive quiz runner. It drives a quiz.Session
// through one Bubble Tea model: load, answer, feedback, summary. All
// grading and persistence happens inside the session; the model only
// sequences the keystrokes and renders state.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// viewState is the model's display mode. It tracks the session phase
// but adds transient states the session doesn't know about.
type viewState int

const (
	stateLoading viewState = iota
	stateQuestion
	stateEvaluating
	stateFeedback
	stateSummary
	stateError
)

// Model is the root Bubble Tea model for the play command.
type Model struct {
	session *quiz.Session

	state    viewState
	input    textinput.Model
	feedback quiz.UserAnswer
	hintIdx  map[int]int // question id -> hints revealed this run
	errMsg   string

	width  int
	height int
}

// NewModel creates the play model over an uninitialized session.
func NewModel(session *quiz.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.Focus()

	return Model{
		session: session,
		state:   stateLoading,
		input:   ti,
		hintIdx: make(map[int]int),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initSession(), m.input.Focus())
}

func (m Model) initSession() tea.Cmd {
	return func() tea.Msg {
		return sessionReadyMsg{Err: m.session.Init(context.Background())}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionReadyMsg:
		if msg.Err != nil {
			m.state = stateError
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		if len(m.session.Questions()) == 0 {
			m.state = stateError
			m.errMsg = "question bank is empty; run `quizdeck sync` first"
			return m, nil
		}
		if _, ok := m.session.CurrentQuestion(); !ok {
			// Everything already answered correctly on a previous run.
			m.session.CompleteQuiz()
			m.state = stateSummary
			return m, nil
		}
		m.state = stateQuestion
		return m, nil

	case answerEvaluatedMsg:
		if msg.Err != nil {
			m.state = stateError
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.feedback = msg.Answer
		m.state = stateFeedback
		return m, nil

	case restartDoneMsg:
		if msg.Err != nil {
			m.state = stateError
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.hintIdx = make(map[int]int)
		m.input.SetValue("")
		m.state = stateQuestion
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == stateQuestion {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateError:
		return m, tea.Quit

	case stateQuestion:
		switch key {
		case "esc":
			m.session.CompleteQuiz()
			m.state = stateSummary
			return m, nil
		case "enter":
			return m.submit()
		case "tab":
			return m.revealHint()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case stateFeedback:
		switch key {
		case "esc":
			m.session.CompleteQuiz()
			m.state = stateSummary
			return m, nil
		case "r":
			// Retry the same question.
			m.input.SetValue("")
			m.state = stateQuestion
			return m, nil
		default:
			if m.session.MoveToNextQuestion() {
				m.input.SetValue("")
				m.state = stateQuestion
				return m, nil
			}
			m.session.CompleteQuiz()
			m.state = stateSummary
			return m, nil
		}

	case stateSummary:
		switch key {
		case "r":
			m.state = stateLoading
			return m, func() tea.Msg {
				return restartDoneMsg{Err: m.session.Restart(context.Background())}
			}
		default:
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.state = stateEvaluating
	session := m.session
	return m, func() tea.Msg {
		ans, err := session.SubmitAnswer(context.Background(), text)
		return answerEvaluatedMsg{Answer: ans, Err: err}
	}
}

func (m Model) revealHint() (tea.Model, tea.Cmd) {
	q, ok := m.session.CurrentQuestion()
	if !ok || len(q.Hints) == 0 {
		return m, nil
	}
	if m.hintIdx[q.ID] >= len(q.Hints) {
		return m, nil
	}
	m.hintIdx[q.ID]++
	session := m.session
	return m, func() tea.Msg {
		if err := session.IncrementHintCount(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		return nil
	}
}

// Run starts the interactive quiz program.
func Run(session *quiz.Session) error {
	p := tea.NewProgram(NewModel(session))
	_, err := p.Run()
	return err
}
