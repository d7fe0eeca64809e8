package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/filefn/filefn/cmd/filefn/commands"
	"github.com/filefn/filefn/pkg/config"
	"github.com/filefn/filefn/pkg/log"
	"github.com/filefn/filefn/pkg/vfsclient"
)

var (
	// Flags
	configFile string
	debug      bool
	timeout    time.Duration
)

// newOpts creates command options with initialized dependencies
func newOpts(ctx context.Context) (*commands.Opts, error) {
	// Load config when a file is given, otherwise run on defaults
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(ctx, configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// The flag wins over the config file
	waitTimeout := cfg.Timeout()
	if timeout > 0 {
		waitTimeout = timeout
	}

	// Resolve the transfer connector for the configured scheme
	factory := vfsclient.Get(cfg.Scheme)
	if factory == nil {
		return nil, errors.Errorf("no connector registered for scheme %q", cfg.Scheme)
	}
	connector, err := factory(ctx)
	if err != nil {
		return nil, errors.Errorf("creating connector: %w", err)
	}

	level := cfg.Level()
	if debug {
		level = zerolog.DebugLevel
	}

	return &commands.Opts{
		Config:      cfg,
		Connector:   connector,
		WaitTimeout: waitTimeout,
		Logger:      log.New(os.Stdout, level),
		UserLogger:  commands.NewUserLogger(ctx),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (.yaml, .json or .hcl)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 0, "max wait for the connector callback (overrides config)")
}
