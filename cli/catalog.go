package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Deepika-251004/shampoo-website/catalog"
	"github.com/Deepika-251004/shampoo-website/database"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load products from a YAML file into the catalog",
		Long: `Load products from a YAML file into the catalog.

Products with an id that already exists are replaced; the rest are added.

Example file:
  products:
    - id: 1
      name: Rosemary Shampoo
      description: Strengthens roots.
      ingredients: Rosemary oil, Biotin
      image_url: /img/rosemary.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return withCatalogDB(rootOpts, func(db *gorm.DB) error {
				res, err := catalog.Seed(cmd.Context(), db, f)
				if err != nil {
					return err
				}
				printResult(cmd, "Seeded", res)
				return nil
			})
		},
	}
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Load products from an .xlsx workbook laid out like export writes it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return err
			}

			return withCatalogDB(rootOpts, func(db *gorm.DB) error {
				res, err := catalog.Import(cmd.Context(), db, f, info.Size())
				if err != nil {
					return err
				}
				printResult(cmd, "Imported", res)
				return nil
			})
		},
	}
}

type ExportOptions struct {
	*RootOptions
	Out string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(opts.Out)
			if err != nil {
				return err
			}

			err = withCatalogDB(rootOpts, func(db *gorm.DB) error {
				n, err := catalog.Export(cmd.Context(), db, f)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d products to %s\n", n, opts.Out)
				return nil
			})
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "products.xlsx", "output file")

	return cmd
}

func withCatalogDB(opts *RootOptions, fn func(db *gorm.DB) error) error {
	db, err := database.Open(opts.Config.Database, opts.Log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	return fn(db)
}

func printResult(cmd *cobra.Command, verb string, res catalog.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d created, %d updated, %d skipped\n",
		verb, res.Created, res.Updated, res.Skipped)
}
