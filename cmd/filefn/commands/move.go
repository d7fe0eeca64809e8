package commands

import (
	"context"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/filefn/filefn/pkg/operation"
)

// 🚚 NewMoveCmd creates the move command
func NewMoveCmd(factory OptsFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "move <source> <destination-dir>",
		Short: "Move a file (or glob of files) into a destination directory",
		Long: `Move copies each source into the destination directory and removes the
source once the connector confirms the write. Path derivation and failure
modes match copy.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, err := factory(ctx)
			if err != nil {
				return err
			}

			fn, err := operation.NewMoveFunction(operation.Options{
				Connector:   o.Connector,
				WaitTimeout: o.WaitTimeout,
				Params: []operation.Param{
					{Name: "file.path", Type: operation.TypeString},
					{Name: "destination.dir", Type: operation.TypeString},
				},
			})
			if err != nil {
				return errors.Errorf("creating move function: %w", err)
			}

			return runBatch(ctx, o, "move", args[0], func(ctx context.Context, source string) error {
				_, err := fn.Execute(ctx, source, args[1])
				return err
			})
		},
	}
}
