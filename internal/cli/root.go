// Package cli provides the investwise command line: the HTTP server and an
// offline recommendation report.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"investwise-api/internal/config"
	"investwise-api/internal/handlers"
	"investwise-api/internal/logging"
)

// NewRootCmd creates the investwise root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "investwise",
		Short: "InvestWise - behavioral financial advisory engine",
		Long: `InvestWise turns an investor profile into a behavioral assessment and a
mutual fund portfolio recommendation for the Indian market.

Run 'investwise serve' to start the HTTP API or
'investwise recommend --profile profile.json' for a one-off report.`,
		Version:       handlers.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRecommendCmd())
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func newLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	level := cfg.LogLevel
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}
	return logging.New(logging.Options{
		Level:    level,
		Console:  true,
		JSON:     !cfg.IsDevelopment(),
		FilePath: cfg.LogFile,
	})
}
