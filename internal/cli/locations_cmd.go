package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfwise/shelfwise/internal/cli/formatter"
	"github.com/shelfwise/shelfwise/internal/domain"
)

func newLocationsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations [id]",
		Short: "Browse the placement location catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 1 {
				loc, err := app.Locations.GetByID(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatLocations([]domain.LocationProfile{*loc}))
				return nil
			}

			locations, err := app.Locations.List(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatLocations(locations))
			return nil
		},
	}

	return cmd
}
