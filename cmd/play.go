package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume a quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return launchPlay(st)
	},
}

func launchPlay(st *store.Store) error {
	session := buildSession(st, true)
	return tui.Run(session)
}
