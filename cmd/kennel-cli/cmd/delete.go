package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kennel/internal/app"
	"kennel/internal/application/commands"
)

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <kind> <id>...",
		Short: "Delete records",
		Long: `Delete one or more pets, owners or bookings by id.

Warning: This operation cannot be undone.

Examples:
  kennel-cli delete pets 3f2c9a1e-...
  kennel-cli delete bookings b1 b2 b3`,
		Args: cobra.MinimumNArgs(2),
		RunE: opts.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			kind, err := kindArg(args)
			if err != nil {
				return err
			}
			res, err := commands.NewDeleteCommand(svc.Repo, kind, args[1:]...).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		}),
	}
}
