package commands

import (
	"context"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/filefn/filefn/pkg/operation"
)

// 📦 NewCopyCmd creates the copy command
func NewCopyCmd(factory OptsFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <source> <destination-dir>",
		Short: "Copy a file (or glob of files) into a destination directory",
		Long: `Copy hands each source file to the transfer connector and waits for its
completion callback. The destination file name is the base name of the
source. Sources may be single paths, file:// URIs, or doublestar globs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, err := factory(ctx)
			if err != nil {
				return err
			}

			fn, err := operation.NewCopyFunction(operation.Options{
				Connector:   o.Connector,
				WaitTimeout: o.WaitTimeout,
				Params: []operation.Param{
					{Name: "file.path", Type: operation.TypeString},
					{Name: "destination.dir", Type: operation.TypeString},
				},
			})
			if err != nil {
				return errors.Errorf("creating copy function: %w", err)
			}

			return runBatch(ctx, o, "copy", args[0], func(ctx context.Context, source string) error {
				_, err := fn.Execute(ctx, source, args[1])
				return err
			})
		},
	}
}
