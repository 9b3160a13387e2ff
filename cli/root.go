// Package cli is the storefront command line: the catalog server, its
// admin helpers and the terminal shop client.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Deepika-251004/shampoo-website/config"
	"github.com/Deepika-251004/shampoo-website/logging"
)

// RootOptions holds global flags and what PersistentPreRunE builds from them.
type RootOptions struct {
	EnvFile   string
	LogLevel  string
	LogFormat string
	APIURL    string
	StatePath string

	Config config.Config
	Log    *zap.Logger
}

// NewRootCommand creates the storefront root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Shampoo storefront",
		Long: `Shampoo storefront: a catalog server with a contact form, and a
terminal shop with a persistent cart and a timed checkout summary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Log != nil {
				_ = opts.Log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error), overrides LOG_LEVEL")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (json|console), overrides LOG_FORMAT")
	cmd.PersistentFlags().StringVar(&opts.APIURL, "api", "", "catalog API base URL, overrides STOREFRONT_API")
	cmd.PersistentFlags().StringVar(&opts.StatePath, "state", "", "cart storage file, overrides STOREFRONT_STATE")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewProductsCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewCheckoutCommand(opts))
	cmd.AddCommand(NewContactCommand(opts))
	cmd.AddCommand(NewShopCommand(opts))

	return cmd
}

// Execute runs the root command with ctx, which commands use for
// cancellation.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func (o *RootOptions) setup() error {
	cfg, err := config.Load(o.EnvFile)
	if err != nil {
		return err
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
	if o.APIURL != "" {
		cfg.Client.APIBaseURL = o.APIURL
	}
	if o.StatePath != "" {
		cfg.Client.StatePath = o.StatePath
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	o.Config = cfg
	o.Log = log
	return nil
}
