package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tetreum/tviso/internal/config"
	"github.com/tetreum/tviso/pkg/tviso"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	logLevel      string
	userTokenFlag string
)

// requestTimeout bounds every command that talks to the API.
const requestTimeout = 30 * time.Second

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tviso",
	Short: "Command line client for the Tviso API",
	Long: `tviso is a command line client for the Tviso media API.

It authenticates with your application credentials, logs users in, and
prints media information and pending lists as JSON or through a Go
template.

Credentials are read from ~/.config/tviso/config.yaml or from the
TVISO_APP, TVISO_SECRET and TVISO_USER_TOKEN environment variables.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&userTokenFlag, "user-token", "", "User token (overrides TVISO_USER_TOKEN and config)")
}

// setupLogger creates a console logger on stderr at the given level
func setupLogger(level string) zerolog.Logger {
	lvl := zerolog.WarnLevel
	switch level {
	case "debug":
		lvl = zerolog.DebugLevel
	case "info":
		lvl = zerolog.InfoLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// clientLogger adapts a zerolog.Logger to tviso.Logger
type clientLogger struct {
	logger zerolog.Logger
}

func (l clientLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// newClient loads configuration and builds an API client from it
func newClient() (*tviso.Client, *config.Config, zerolog.Logger, error) {
	logger := setupLogger(logLevel)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, logger, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, logger, err
	}

	userToken := cfg.Tviso.UserToken
	if userTokenFlag != "" {
		userToken = userTokenFlag
	}

	client, err := tviso.NewClient(tviso.Config{
		App:       cfg.Tviso.App,
		Secret:    cfg.Tviso.Secret,
		UserToken: userToken,
		BaseURL:   cfg.Tviso.BaseURL,
		Logger:    clientLogger{logger: logger},
	})
	if err != nil {
		return nil, nil, logger, fmt.Errorf("failed to create client: %w", err)
	}

	logger.Debug().
		Str("base_url", cfg.Tviso.BaseURL).
		Bool("user_token", userToken != "").
		Msg("Client configured")

	return client, cfg, logger, nil
}
