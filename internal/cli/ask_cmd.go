package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttly/internal/cli/formatter"
	"github.com/alexanderramin/ganttly/internal/planning"
	"github.com/alexanderramin/ganttly/internal/service"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	phrases := make([]string, 0, len(planning.QuickCommands))
	for _, q := range planning.QuickCommands {
		phrases = append(phrases, "'"+q.Phrase+"'")
	}

	return &cobra.Command{
		Use:   "ask PROJECT COMMAND...",
		Short: "Change a plan with a natural-language command",
		Long: "Change a plan with a natural-language command. " +
			strings.Join(phrases, " and ") + " are applied locally; anything else is sent to the plan generator.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			var res *service.CommandResult
			err := withSpinner(cmd, app, "Updating plan...", func(ctx context.Context) error {
				var err error
				res, err = app.Assistant.Command(ctx, args[0], text)
				return err
			})
			if err != nil {
				return err
			}
			tag := "generator"
			if res.Quick {
				tag = "local"
			}
			printf(cmd, "%s %s\n", formatter.StyleGreen.Render("✔"), res.Entry.AIResponse)
			printf(cmd, "%s\n", formatter.Dim(fmt.Sprintf("%s · %d tasks", tag, res.Entry.TasksModified)))
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history PROJECT",
		Short: "Show the assistant conversation log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			writeOut(cmd, formatter.FormatHistory(p.ConversationHistory, app.now()))
			return nil
		},
	}
}
