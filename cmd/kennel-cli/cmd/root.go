package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kennel/internal/app"
	"kennel/internal/config"
	"kennel/internal/domain"
)

// options holds the persistent flags and the configuration they resolve to
type options struct {
	dataDir  string
	prefs    string
	logLevel string

	cfg *config.Config
}

// NewRootCmd builds the kennel-cli command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "kennel-cli",
		Short: "CLI for kennel pets, owners and bookings",
		Long: `kennel-cli lists, seeds and deletes the records kept by kennel, and
manages the column layout each list is shown with.

Column layouts are shared with the kennel TUI and the MCP server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip initialization for help commands
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return opts.load()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data-dir", "", "directory holding kennel.db (overrides KENNEL_DATA_DIR)")
	flags.StringVar(&opts.prefs, "prefs", "", "column preference backend: sqlite, redis or memory")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newListCmd(opts),
		newColumnsCmd(opts),
		newSeedCmd(opts),
		newDeleteCmd(opts),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *options) load() error {
	overrides := make(map[string]any)
	if o.dataDir != "" {
		overrides["data_dir"] = o.dataDir
	}
	if o.prefs != "" {
		overrides["prefs.backend"] = o.prefs
	}
	if o.logLevel != "" {
		overrides["log.level"] = o.logLevel
	}
	cfg, err := config.Load(overrides)
	if err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// withServices opens the stores for the duration of fn
func (o *options) withServices(fn func(cmd *cobra.Command, args []string, svc *app.Services) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := app.Open(cmd.Context(), o.cfg)
		if err != nil {
			return err
		}
		defer svc.Close()
		return fn(cmd, args, svc)
	}
}

func kindArg(args []string) (domain.EntityKind, error) {
	return domain.ParseEntityKind(args[0])
}
