package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch m.state {
	case stateLoading:
		content = styleDim.Render("Loading questions...")
	case stateError:
		content = styleIncorrect.Render("Error: ") + m.errMsg + "\n\n" +
			styleFooter.Render("press any key to exit")
	case stateQuestion, stateEvaluating:
		content = m.questionView()
	case stateFeedback:
		content = m.feedbackView()
	case stateSummary:
		content = m.summaryView()
	}

	v.SetContent(lipgloss.NewStyle().Padding(1, 2).Render(content))
	return v
}

func (m Model) questionView() string {
	q, ok := m.session.CurrentQuestion()
	if !ok {
		return styleDim.Render("No question.")
	}

	var b strings.Builder

	progress := m.session.Progress()
	b.WriteString(styleTitle.Render(fmt.Sprintf("Question %d of %d", m.session.Cursor()+1, progress.TotalQuestions)))
	b.WriteString("  ")
	b.WriteString(styleDim.Render(fmt.Sprintf("[%s]", q.Type)))
	b.WriteString("\n\n")

	width := m.width - 8
	if width < 20 {
		width = 20
	}
	b.WriteString(styleQuestion.Width(width).Render(q.Text))
	b.WriteString("\n\n")

	if len(q.Options) > 0 {
		for i, opt := range q.Options {
			b.WriteString(styleDim.Render(fmt.Sprintf("  %d. ", i+1)))
			b.WriteString(opt)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for i := 0; i < m.hintIdx[q.ID] && i < len(q.Hints); i++ {
		b.WriteString(styleHint.Render("Hint: " + q.Hints[i]))
		b.WriteString("\n")
	}
	if m.hintIdx[q.ID] > 0 {
		b.WriteString("\n")
	}

	if m.state == stateEvaluating {
		b.WriteString(styleDim.Render("Evaluating..."))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n\n")

	hints := "Enter submit · Esc finish"
	if len(q.Hints) > m.hintIdx[q.ID] {
		hints = "Enter submit · Tab hint · Esc finish"
	}
	b.WriteString(styleFooter.Render(hints))

	return b.String()
}

func (m Model) feedbackView() string {
	var b strings.Builder

	if m.feedback.IsCorrect {
		b.WriteString(styleCorrect.Render("✓ Correct"))
	} else {
		b.WriteString(styleIncorrect.Render("✗ Incorrect"))
	}
	if m.feedback.Grade != nil {
		b.WriteString(styleDim.Render(fmt.Sprintf("  (grade %d/10)", *m.feedback.Grade)))
	}
	b.WriteString("\n\n")

	if m.feedback.FullEvaluation != "" {
		width := m.width - 8
		if width < 20 {
			width = 20
		}
		b.WriteString(lipgloss.NewStyle().Width(width).Foreground(colorText).Render(m.feedback.FullEvaluation))
		b.WriteString("\n\n")
	}

	if m.feedback.NextHint != "" && !m.feedback.IsCorrect {
		b.WriteString(styleHint.Render("Hint: " + m.feedback.NextHint))
		b.WriteString("\n\n")
	}

	if !m.feedback.IsCorrect {
		b.WriteString(styleFooter.Render("r retry · any key next · Esc finish"))
	} else {
		b.WriteString(styleFooter.Render("any key next · Esc finish"))
	}

	return b.String()
}

func (m Model) summaryView() string {
	var b strings.Builder

	progress := m.session.Progress()

	b.WriteString(styleTitle.Render("Quiz complete"))
	b.WriteString("\n\n")
	b.WriteString(styleScore.Render(fmt.Sprintf("Score: %d%%", progress.OverallScore)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Answered:  %d of %d\n", progress.AnsweredCount, progress.TotalQuestions))
	b.WriteString(fmt.Sprintf("Correct:   %d\n", progress.CorrectCount))
	b.WriteString(fmt.Sprintf("Hints:     %d\n", m.session.HintCount()))
	b.WriteString("\n")

	for _, aq := range m.session.AnsweredQuestions() {
		mark := styleIncorrect.Render("✗")
		if aq.Latest.IsCorrect {
			mark = styleCorrect.Render("✓")
		}
		line := fmt.Sprintf(" %s %d. %s", mark, aq.Question.ID, truncate(aq.Question.Text, m.width-20))
		if aq.Attempts > 1 {
			line += styleDim.Render(fmt.Sprintf(" (%d attempts)", aq.Attempts))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleFooter.Render("r restart · any key exit"))

	return b.String()
}

func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
