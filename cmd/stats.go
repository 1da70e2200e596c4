package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var (
	statsHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	statsLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Width(18)
	statsGood    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	statsBad     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz progress and score",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// Local bank only; stats should never hit the network.
		session := buildSession(st, false)
		if err := session.Init(cmd.Context()); err != nil {
			return err
		}

		p := session.Progress()

		fmt.Println(statsHeading.Render("Quizdeck progress"))
		fmt.Println()
		fmt.Printf("%s%d\n", statsLabel.Render("Questions"), p.TotalQuestions)
		fmt.Printf("%s%d\n", statsLabel.Render("Answered"), p.AnsweredCount)
		fmt.Printf("%s%d\n", statsLabel.Render("Correct"), p.CorrectCount)
		fmt.Printf("%s%d\n", statsLabel.Render("Hints used"), session.HintCount())
		fmt.Printf("%s%d%%\n", statsLabel.Render("Overall score"), p.OverallScore)
		fmt.Println()

		for _, aq := range session.AnsweredQuestions() {
			mark := statsBad.Render("✗")
			if aq.Latest.IsCorrect {
				mark = statsGood.Render("✓")
			}
			line := fmt.Sprintf(" %s %3d  %s", mark, aq.Question.ID, aq.Question.Text)
			if aq.Latest.Grade != nil {
				line += statsLabel.Render(fmt.Sprintf("  %d/10", *aq.Latest.Grade))
			}
			fmt.Println(line)
		}
		return nil
	},
}
