package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/source"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the local question bank from the remote source",
	Long: `Fetches the question list from the remote source and merges it into
the local bank. A remote question replaces the local copy only when its
version is strictly newer, so local state survives upstream republishes.

With --force the local bank is discarded and rebuilt from the remote
payload. Answer history is never touched either way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("source")
		if url == "" {
			url = os.Getenv("QUIZDECK_BANK_URL")
		}
		if url == "" {
			return fmt.Errorf("no question source: pass --source or set QUIZDECK_BANK_URL")
		}
		force, _ := cmd.Flags().GetBool("force")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		questions, err := source.NewClient(url, nil).Fetch(ctx)
		if err != nil {
			return err
		}

		repo := st.QuestionRepo()
		if force {
			replaced, err := repo.ForceRefresh(ctx, questions)
			if err != nil {
				return fmt.Errorf("force refresh: %w", err)
			}
			fmt.Printf("Replaced local bank with %d questions.\n", len(replaced))
			return nil
		}

		merged, err := repo.Sync(ctx, questions)
		if err != nil {
			return fmt.Errorf("sync: %w", err)
		}
		fmt.Printf("Synced %d questions, local bank now has %d.\n", len(questions), len(merged))
		return nil
	},
}

func init() {
	syncCmd.Flags().String("source", "", "Question source URL (overrides QUIZDECK_BANK_URL)")
	syncCmd.Flags().Bool("force", false, "Discard the local bank and rebuild it from the remote payload")
}
