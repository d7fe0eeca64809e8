package commands

import (
	"context"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/filefn/filefn/pkg/operation"
)

// 🗑️ NewDeleteCmd creates the delete command
func NewDeleteCmd(factory OptsFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <source>",
		Short: "Delete a file (or glob of files) through the transfer connector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, err := factory(ctx)
			if err != nil {
				return err
			}

			fn, err := operation.NewDeleteFunction(operation.Options{
				Connector:   o.Connector,
				WaitTimeout: o.WaitTimeout,
				Params: []operation.Param{
					{Name: "file.path", Type: operation.TypeString},
				},
			})
			if err != nil {
				return errors.Errorf("creating delete function: %w", err)
			}

			return runBatch(ctx, o, "delete", args[0], func(ctx context.Context, source string) error {
				_, err := fn.Execute(ctx, source)
				return err
			})
		},
	}
}
