package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/userdir/internal/config"
	"github.com/rshade/userdir/internal/logging"
)

// setupLogging configures logging from the config file, environment and CLI
// flags. When the interactive TUI is about to run and no log file is
// configured, logs are discarded so they never draw over the screen.
func setupLogging(cmd *cobra.Command, interactive bool) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		if !interactive {
			loggingCfg.File = ""
		}
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	logCfg := loggingCfg.ToLoggingConfig()
	if interactive && logCfg.Output != logging.OutputFile {
		logCfg.Output = logging.OutputDiscard
	}

	result := logging.NewLoggerWithPath(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	switch {
	case result.FallbackUsed && interactive:
		result.Logger = zerolog.Nop()
		logger = result.Logger
	case result.FallbackUsed:
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	case result.UsingFile && debug:
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
