package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/eval"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/source"
	"github.com/abhisek/quizdeck/internal/store"
)

// runPlay opens the store, builds the session, and launches the TUI.
// It lives here so the bare `quizdeck` invocation and `quizdeck play`
// share one code path.
func runPlay(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return launchPlay(st)
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildSession wires a session over the store. The remote fetcher and
// grader are both optional: without QUIZDECK_BANK_URL the session runs
// against the last-synced bank, and without QUIZDECK_GRADER_URL all
// grading is local.
func buildSession(st *store.Store, withFetcher bool) *quiz.Session {
	var fetcher quiz.QuestionFetcher
	if withFetcher {
		if url := os.Getenv("QUIZDECK_BANK_URL"); url != "" {
			fetcher = source.NewClient(url, nil)
		}
	}

	var remote eval.RemoteGrader
	if url := os.Getenv("QUIZDECK_GRADER_URL"); url != "" {
		remote = eval.NewClient(url, nil)
	}

	return quiz.NewSession(
		st.QuestionRepo(),
		st.AnswerRepo(),
		st.HintCounter(),
		eval.New(remote),
		fetcher,
	)
}
