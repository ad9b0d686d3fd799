package cli

import (
	"fmt"

	"github.com/alexanderramin/ganttly/internal/cli/formatter"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/view"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Create projects from templates",
	}
	cmd.AddCommand(newTemplateListCmd(app), newTemplateUseCmd(app))
	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List built-in and user templates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Projects.Templates(cmd.Context())
			if err != nil {
				return err
			}
			writeOut(cmd, formatter.FormatTemplates(entries))
			return nil
		},
	}
}

func newTemplateUseCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "use TEMPLATE",
		Short: "Create a project from a template id, name or number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var startDate domain.Date
			if start != "" {
				d, err := domain.ParseDate(start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				startDate = d
			}
			p, err := app.Projects.FromTemplate(cmd.Context(), args[0], startDate)
			if err != nil {
				return err
			}
			printf(cmd, "Created project %s %s from template %s\n\n",
				formatter.Bold(p.Name), formatter.TruncID(p.ID), p.TemplateID)
			writeOut(cmd, formatter.RenderTree(view.FlattenWithLineNumbers(p.WBS, expandAll(p.WBS))))
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default today)")

	return cmd
}
