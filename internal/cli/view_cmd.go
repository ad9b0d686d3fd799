package cli

import (
	"github.com/alexanderramin/ganttly/internal/cli/formatter"
	"github.com/alexanderramin/ganttly/internal/view"
	"github.com/spf13/cobra"
)

func newTreeCmd(app *App) *cobra.Command {
	var (
		collapse bool
		expand   []string
	)

	cmd := &cobra.Command{
		Use:   "tree PROJECT",
		Short: "Show the work breakdown structure as a numbered tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			expanded := expandAll(p.WBS)
			switch {
			case cmd.Flags().Changed("expand"):
				expanded = expandSet(expand)
			case collapse:
				expanded = nil
			}
			rows := view.FlattenWithLineNumbers(p.WBS, expanded)
			if len(rows) == 0 {
				writeOut(cmd, formatter.Dim("No tasks yet. Add one with 'ganttly task add'."))
				return nil
			}
			writeOut(cmd, formatter.RenderTree(rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&collapse, "collapse", false, "Show phases only")
	cmd.Flags().StringSliceVar(&expand, "expand", nil, "Expand only these task ids")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var flags criteriaFlags

	cmd := &cobra.Command{
		Use:   "stats PROJECT",
		Short: "Summarize tasks by status, priority, cost and progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Plans.Stats(cmd.Context(), args[0], flags.Criteria)
			if err != nil {
				return err
			}
			writeOut(cmd, formatter.FormatStats(s))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
