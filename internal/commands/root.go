package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ytget/inspiration/internal/config"
	"github.com/ytget/inspiration/internal/fetch"
	"github.com/ytget/inspiration/internal/logging"
)

// session is shared by the subcommands once flags are parsed
type session struct {
	configPath string
	logLevel   string
	version    string

	cfg    *config.Config
	log    *slog.Logger
	client *fetch.Client
}

// Execute runs the CLI
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd(version string) *cobra.Command {
	rt := &session{version: version}

	root := &cobra.Command{
		Use:           "inspiration",
		Short:         "Random photo, typed-out quote, translation and weather",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rt.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = rt.logLevel
			}
			rt.cfg = cfg
			rt.log = logging.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
			rt.client = fetch.NewClient(cfg.HTTP.Timeout, rt.log)
			rt.log.Debug("configuration loaded", slog.String("version", version))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context(), rt)
		},
	}

	root.PersistentFlags().StringVar(&rt.configPath, "config", "", fmt.Sprintf("config file (default %s, or $%s)", config.DefaultConfigPath, config.ConfigPathEnv))
	root.PersistentFlags().StringVar(&rt.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(quoteCmd(rt), photoCmd(rt), weatherCmd(rt))
	return root
}
