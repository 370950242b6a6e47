package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ib-77/ropkit/internal/config"
	"github.com/ib-77/ropkit/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	debug   bool
	envFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "ordercheck",
		Short:        "Validate orders against a user registry",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log every rejected order to stderr")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "env file to load before reading ORDERCHECK_* variables")

	cmd.AddCommand(validateCmd(opts), listCmd())
	return cmd
}

// settings loads the configuration and builds the logger for a command run.
func (o *rootOptions) settings(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	var files []string
	if o.envFile != "" {
		files = append(files, o.envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return config.Config{}, nil, err
	}

	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return config.Config{}, nil, err
	}

	level := cfg.Level()
	if o.debug {
		level = slog.LevelDebug
	}

	l := logger.New(
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(slog.String("service", "ordercheck")),
	)
	return cfg, l, nil
}
