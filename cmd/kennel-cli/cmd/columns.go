package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kennel/internal/app"
	"kennel/internal/application/commands"
)

func newColumnsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "columns <kind> [show | toggle <column> | move <column|index> <index> | reset]",
		Short: "Show or change the column layout of a list",
		Long: `Show or change which columns a list shows and in which order. Changes are
saved and apply to the TUI and the MCP server too.

Examples:
  kennel-cli columns pets
  kennel-cli columns pets toggle breed
  kennel-cli columns pets move status 0
  kennel-cli columns owners reset`,
		Args: cobra.RangeArgs(1, 4),
		RunE: opts.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			kind, err := kindArg(args)
			if err != nil {
				return err
			}
			verb := "show"
			if len(args) > 1 {
				verb = args[1]
			}
			ctx := cmd.Context()

			var res *commands.ColumnsResult
			switch {
			case verb == "show" && len(args) <= 2:
				res, err = commands.NewShowColumnsCommand(svc.Prefs, kind).Execute(ctx)
			case verb == "toggle" && len(args) == 3:
				res, err = commands.NewToggleColumnCommand(svc.Prefs, kind, args[2]).Execute(ctx)
			case verb == "move" && len(args) == 4:
				to, convErr := strconv.Atoi(args[3])
				if convErr != nil {
					return fmt.Errorf("invalid target position %q", args[3])
				}
				res, err = commands.NewMoveColumnCommand(svc.Prefs, kind, args[2], to).Execute(ctx)
			case verb == "reset" && len(args) == 2:
				res, err = commands.NewResetColumnsCommand(svc.Prefs, kind).Execute(ctx)
			default:
				return fmt.Errorf("usage: %s", cmd.Use)
			}
			if err != nil {
				return err
			}
			return commands.WriteColumns(cmd.OutOrStdout(), res)
		}),
	}
}
