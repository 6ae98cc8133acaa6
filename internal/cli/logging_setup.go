package cli

import (
	"github.com/spf13/cobra"

	"github.com/greenbock/adplan/internal/config"
	"github.com/greenbock/adplan/internal/logging"
)

// setupLogging configures logging from the config file and CLI flags, and
// stores the configured logger in the command context so every component
// retrieves it with logging.FromContext.
func setupLogging(cmd *cobra.Command, cfg *config.Config) error {
	level := cfg.Logging.Level

	if flagLevel, _ := cmd.Flags().GetString("log-level"); flagLevel != "" {
		level = flagLevel
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}

	if err := config.InitLogger(level, cfg.Logging.File); err != nil {
		return err
	}

	logger = logging.ComponentLogger(config.GetLogger(), "cli")
	cmd.SetContext(logging.WithContext(cmd.Context(), config.GetLogger()))

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return nil
}
