// Package cli implements the heptuple command-line client.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/heptuple/internal/config"
	"github.com/me/heptuple/internal/logging"
	"github.com/me/heptuple/pkg/heptuple"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger  *slog.Logger
	session *heptuple.Session
	client  *heptuple.Client
)

// NewRootCmd creates the root cobra command for the heptuple CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "heptuple",
		Short: "heptuple — client for the Vision Heptuple analysis platform",
		Long: "heptuple authenticates against the Vision Heptuple backend and exposes\n" +
			"its text analysis, chapter catalogue, and federated corpus search.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if flagServer != "" {
				cfg.BaseURL = flagServer
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}
			if flagLogFormat != "" {
				cfg.LogFormat = flagLogFormat
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}

			logger = logging.New(cfg.LogLevel, cfg.LogFormat)

			store, err := newCredentialStore()
			if err != nil {
				return err
			}

			sdkCfg := heptuple.DefaultConfig().
				WithBaseURL(cfg.BaseURL).
				WithTimeout(cfg.Timeout)
			session = heptuple.NewSession(sdkCfg, store, logger)
			client = heptuple.NewClient(sdkCfg, session, logger)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", "", "API base URL (or HEPTUPLE_API_BASE env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newSouratesCmd(),
		newAnalyzeCmd(),
		newSearchCmd(),
		newCompareCmd(),
		newFeedbackCmd(),
		newStatusCmd(),
	)

	return root
}

// newCredentialStore returns the credential store for this invocation.
// HEPTUPLE_CREDENTIALS overrides the default ~/.heptuple/credentials.json
// location.
func newCredentialStore() (heptuple.CredentialStore, error) {
	if path := os.Getenv("HEPTUPLE_CREDENTIALS"); path != "" {
		return heptuple.NewFileStoreAt(path), nil
	}
	return heptuple.NewFileStore()
}
