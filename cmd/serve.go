package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/grader"
	"github.com/abhisek/quizdeck/internal/llm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the AI grading service",
	Long: `Starts the HTTP grading service backed by the configured LLM
provider. Quiz clients point QUIZDECK_GRADER_URL at it; when it is down
they silently fall back to local keyword grading.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := grader.Load(configPath)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Server.Port = port
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			return err
		}

		return grader.New(cfg, provider, logger).Run()
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Listen port (overrides QUIZDECK_GRADER_SERVER_PORT)")
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
}
