package cli

import (
	"github.com/spf13/cobra"

	"github.com/shelfwise/shelfwise/internal/importer"
	"github.com/shelfwise/shelfwise/internal/intelligence"
	"github.com/shelfwise/shelfwise/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Analyze   service.AnalyzeService
	Locations service.LocationService
	Sessions  service.SessionService
	Defend    intelligence.DefendService
	Importer  *importer.Importer

	// IsInteractive reports whether stdin is a terminal. Interactive
	// surfaces (the analyze form, the defend chat) are gated on it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "shelfwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shelfwise",
		Short: "Product placement ROI recommender",
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newDefendCmd(app),
		newLocationsCmd(app),
		newSessionCmd(app),
		newSeedCmd(app),
	)

	return root
}
