package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/greengauge/internal/config"
	"github.com/verdant-labs/greengauge/internal/logging"
)

// setupLogging configures logging from the config file and the --debug flag,
// and attaches the logger to the command context for the engines to pick up.
func setupLogging(cmd *cobra.Command, cfg *config.Config) {
	loggingCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: logging.Format(cfg.Logging.Format),
		Output: cmd.ErrOrStderr(),
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}

	if cfg.Logging.File != "" && !debug {
		if w, err := openLogFile(cfg.Logging.File); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open log file: %v\n", err)
		} else {
			loggingCfg.Output = w
		}
	}

	logger = logging.ComponentLogger(logging.New(loggingCfg), "cli")

	ctx := logging.WithContext(cmd.Context(), logger)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
}

func openLogFile(path string) (io.Writer, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
}
