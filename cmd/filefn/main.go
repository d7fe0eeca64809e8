package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/filefn/filefn/cmd/filefn/commands"
)

func main() {
	ctx := context.Background()

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "filefn",
		Short: "Stream file functions: copy, move and delete through a VFS connector",
		Long: `filefn runs the stream-pipeline file functions standalone: it copies,
moves or deletes files by handing each request to an asynchronous VFS
connector and waiting on its completion callback with a bounded timeout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Wire logging once flags are parsed
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger := setupLogging()
		cmd.SetContext(logger.WithContext(cmd.Context()))
		return nil
	}

	// Add commands
	rootCmd.AddCommand(
		commands.NewCopyCmd(newOpts),
		commands.NewMoveCmd(newOpts),
		commands.NewDeleteCmd(newOpts),
		commands.NewVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger := commands.NewUserLogger(ctx)
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}

// setupLogging configures zerolog based on flags
func setupLogging() zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)
}
