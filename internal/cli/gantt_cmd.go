package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/ganttly/internal/cli/formatter"
	"github.com/alexanderramin/ganttly/internal/layout"
	"github.com/alexanderramin/ganttly/internal/timeline"
	"github.com/alexanderramin/ganttly/internal/view"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newGanttCmd(app *App) *cobra.Command {
	var (
		scale       string
		zoom        float64
		cols        int
		collapse    bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "gantt PROJECT",
		Short: "Draw the schedule as a Gantt chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.config()
			vp := layout.Viewport{Scale: cfg.Scale(), Factor: 1}
			if scale != "" {
				s, err := timeline.ParseScale(scale)
				if err != nil {
					return err
				}
				vp.Scale = s
			}
			if cmd.Flags().Changed("zoom") {
				if zoom < layout.MinZoom || zoom > layout.MaxZoom {
					return fmt.Errorf("zoom must be between %g and %g", layout.MinZoom, layout.MaxZoom)
				}
				vp.Factor = zoom
			}

			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			expanded := expandAll(p.WBS)
			if collapse {
				expanded = nil
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				m := newGanttModel(p.Name, p.WBS, expanded, vp, cfg.LayoutConfig())
				_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout())).Run()
				return err
			}

			rows := view.FlattenWithLineNumbers(p.WBS, expanded)
			lrows := make([]layout.Row, len(rows))
			numbers := make([]int, len(rows))
			for i, r := range rows {
				lrows[i] = layout.Row{Task: r.Task, Depth: r.Depth}
				numbers[i] = r.LineNumber
			}
			chart, err := layout.ComputeRows(p.WBS, lrows, vp, cfg.LayoutConfig())
			if errors.Is(err, layout.ErrEmptyChart) {
				writeOut(cmd, formatter.Dim("Nothing to chart: no task has dates."))
				return nil
			}
			if err != nil {
				return err
			}
			writeOut(cmd, formatter.RenderGantt(chart, formatter.GanttOptions{
				ViewCols:    cols,
				LineNumbers: numbers,
				Cursor:      -1,
			}))
			return nil
		},
	}
	cmd.Flags().StringVar(&scale, "scale", "", "Time scale: day, week, month, quarter or year (default from config)")
	cmd.Flags().Float64Var(&zoom, "zoom", 1, "Zoom factor applied to the scale")
	cmd.Flags().IntVar(&cols, "cols", 0, "Limit the chart to this many columns")
	cmd.Flags().BoolVar(&collapse, "collapse", false, "Show phases only")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the zoomable chart viewer")

	return cmd
}
