package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Deepika-251004/shampoo-website/database"
	"github.com/Deepika-251004/shampoo-website/server"
)

type ServeOptions struct {
	*RootOptions
	Host      string
	Port      string
	StaticDir string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog API and serve the storefront's static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Host, "host", "", "listen host, overrides HOST")
	cmd.Flags().StringVarP(&opts.Port, "port", "p", "", "listen port, overrides PORT")
	cmd.Flags().StringVar(&opts.StaticDir, "static-dir", "", "static files directory, overrides STATIC_DIR")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := opts.Config
	if opts.Host != "" {
		cfg.Host = opts.Host
	}
	if opts.Port != "" {
		cfg.Port = opts.Port
	}
	if opts.StaticDir != "" {
		cfg.StaticDir = opts.StaticDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := opts.Log
	log.Info("Starting application", zap.String("addr", cfg.Addr()), zap.String("db_driver", cfg.Database.Driver))

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	return server.New(cfg, db, log).Run(cmd.Context())
}
