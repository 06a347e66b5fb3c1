package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfwise/shelfwise/internal/cli/formatter"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session <session-id>",
		Short: "Inspect a stored analysis session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := app.Sessions.Inspect(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatSession(info.Session, info.Interactions))
			return nil
		},
	}

	return cmd
}
