package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"kennel/internal/app"
	"kennel/internal/application/commands"
)

func newListCmd(opts *options) *cobra.Command {
	var (
		lo      commands.ListOptions
		filters map[string]string
	)

	cmd := &cobra.Command{
		Use:   "list <pets|owners|bookings>",
		Short: "List one page of records",
		Long: `List one page of pets, owners or bookings. Columns follow the saved layout
(see "kennel-cli columns").

Examples:
  kennel-cli list pets
  kennel-cli list pets --search bisc --view active
  kennel-cli list pets --filter species=dog --sort created --desc
  kennel-cli list bookings --view upcoming --page 2 --page-size 10`,
		Args: cobra.ExactArgs(1),
		RunE: opts.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			kind, err := kindArg(args)
			if err != nil {
				return err
			}
			if len(filters) > 0 {
				lo.Filters = make(map[string]any, len(filters))
				for k, v := range filters {
					lo.Filters[k] = v
				}
			}

			res, err := commands.NewListCommand(svc.Repo, svc.Prefs, svc.ListDefaults(), kind, lo).Execute(cmd.Context())
			if err != nil {
				return err
			}
			return commands.WriteList(cmd.OutOrStdout(), res, time.Now())
		}),
	}

	f := cmd.Flags()
	f.StringVarP(&lo.SearchTerm, "search", "s", "", "fuzzy search term")
	f.StringVar(&lo.View, "view", "", "named view (all, active, inactive, upcoming, checked-in, past)")
	f.StringToStringVar(&filters, "filter", nil, "column equality filter, repeatable (column=value)")
	f.StringVar(&lo.SortKey, "sort", "", "column to sort by (default from config)")
	f.BoolVar(&lo.Descending, "desc", false, "sort descending")
	f.IntVarP(&lo.Page, "page", "p", 0, "page number, starting at 1")
	f.IntVar(&lo.PageSize, "page-size", 0, "rows per page (default from config)")
	return cmd
}
