package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfwise/shelfwise/internal/cli/formatter"
	"github.com/shelfwise/shelfwise/internal/importer"
)

func newSeedCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import a historical catalog into the data store",
		Long: "Loads locations, category aggregates, competitor observations " +
			"and sales history, then recomputes category lifts. Without --file " +
			"the built-in demo catalog is used. Imports are idempotent.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var catalog *importer.Catalog
			var err error

			if file != "" {
				catalog, err = importer.LoadCatalog(file)
			} else {
				catalog, err = importer.DefaultCatalog()
			}
			if err != nil {
				return err
			}

			result, err := app.Importer.ImportCatalog(context.Background(), catalog)
			if err != nil {
				return err
			}

			fmt.Println(formatter.StyleGreen.Render("Catalog imported."))
			fmt.Printf("  %s %d\n", formatter.Dim("Locations:"), result.LocationCount)
			fmt.Printf("  %s %d\n", formatter.Dim("Categories:"), result.CategoryCount)
			fmt.Printf("  %s %d\n", formatter.Dim("Competitor observations:"), result.CompetitorCount)
			fmt.Printf("  %s %d\n", formatter.Dim("Sales rows:"), result.SalesRowCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to a catalog JSON file")

	return cmd
}
