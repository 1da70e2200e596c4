// Package eval grades answers. Objective questions are matched locally
// and deterministically; subjective questions are sent to the remote
// grading service first, falling back to a keyword heuristic whenever
// the remote call fails for any reason.
package eval

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// RemoteGrader is the remote half of the subjective grading chain.
// Client implements it over HTTP; tests inject failing fakes to cover
// the fallback path.
type RemoteGrader interface {
	Evaluate(ctx context.Context, q quiz.Question, answer string) (quiz.Evaluation, error)
}

// Engine implements quiz.Evaluator. The zero value grades everything
// locally; attach a RemoteGrader to enable remote subjective grading.
type Engine struct {
	Remote RemoteGrader
}

// New creates an Engine. remote may be nil for offline-only grading.
func New(remote RemoteGrader) *Engine {
	return &Engine{Remote: remote}
}

// Evaluate grades a raw answer. It never fails over to an error for
// remote trouble: any remote failure (transport, bad status, malformed
// body) silently degrades to the local heuristic and is only logged.
func (e *Engine) Evaluate(ctx context.Context, q quiz.Question, answer string) (quiz.Evaluation, error) {
	switch q.Type {
	case quiz.TypeObjective:
		return evaluateObjective(q, answer), nil
	case quiz.TypeSubjective:
		if e.Remote != nil {
			ev, err := e.Remote.Evaluate(ctx, q, answer)
			if err == nil {
				return ev, nil
			}
			fmt.Fprintf(os.Stderr, "warning: remote evaluation failed, using local heuristic: %v\n", err)
		}
		return evaluateKeywords(q, answer), nil
	default:
		return quiz.Evaluation{}, fmt.Errorf("question %d: unknown type %q", q.ID, q.Type)
	}
}
