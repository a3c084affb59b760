package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kennel/internal/adapters/fixtures"
	"kennel/internal/app"
	"kennel/internal/application/commands"
)

func newSeedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Insert records from a YAML fixture",
		Long: `Insert the owners, pets and bookings of a YAML fixture file. Records
without an id get a new one; records with a known id are updated.

Pets may name their owner and bookings their pet instead of giving an id:

  owners:
    - name: Ada Lovelace
      email: ada@example.com
  pets:
    - name: Biscuit
      species: dog
      owner: Ada Lovelace
  bookings:
    - pet: Biscuit
      kennel: A1
      check_in: "2025-07-01"
      check_out: "2025-07-04"`,
		Args: cobra.ExactArgs(1),
		RunE: opts.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			fixture, err := fixtures.Load(args[0], time.Now())
			if err != nil {
				return err
			}
			res, err := commands.NewSeedCommand(svc.Repo, fixture).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		}),
	}
}
