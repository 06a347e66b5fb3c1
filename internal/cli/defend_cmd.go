package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfwise/shelfwise/internal/cli/formatter"
)

func newDefendCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defend <session-id> [question]",
		Short: "Ask why the analysis recommended what it did",
		Long: "Answers follow-up questions from the stored session data. " +
			"With a question argument it answers once; on a terminal without " +
			"one it opens a chat. Sessions live only for the current process, " +
			"so pair this with analyze --chat.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := args[0]

			if len(args) > 1 {
				question := strings.Join(args[1:], " ")
				resp, err := app.Defend.Answer(context.Background(), sessionID, question)
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatDefend(resp))
				return nil
			}

			if !app.interactive() {
				return fmt.Errorf("no question given and stdin is not a terminal")
			}
			return runDefendChat(app, sessionID)
		},
	}

	return cmd
}
