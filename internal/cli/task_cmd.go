package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ganttly/internal/cli/formatter"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/view"
	"github.com/alexanderramin/ganttly/internal/wbs"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"t"},
		Short:   "Inspect and edit tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskAddCmd(app),
		newTaskSetCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

// criteriaFlags binds the task filter shared by list and stats.
type criteriaFlags struct {
	view.Criteria
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Text, "search", "s", "", "Match name, id, resources or notes")
	cmd.Flags().StringVar(&f.Status, "status", view.All, "Filter by status")
	cmd.Flags().StringVar(&f.Priority, "priority", view.All, "Filter by priority (High, Medium, Low)")
}

func newTaskListCmd(app *App) *cobra.Command {
	var flags criteriaFlags

	cmd := &cobra.Command{
		Use:     "list PROJECT",
		Aliases: []string{"ls"},
		Short:   "List tasks, optionally filtered",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			tasks := view.Filter(wbs.Flatten(p.WBS), flags.Criteria)
			writeOut(cmd, formatter.FormatTaskTable(tasks))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT TASK",
		Short: "Show every field of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			t, err := wbs.FindByID(p.WBS, args[1])
			if err != nil {
				return err
			}
			writeOut(cmd, formatter.FormatTaskDetail(t))
			return nil
		},
	}
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		parent, resources, priority, status, risk, notes string
		duration                                         int
		cost                                             float64
		interactive                                      bool
	)

	cmd := &cobra.Command{
		Use:   "add PROJECT [NAME...]",
		Short: "Add a phase, or a task under --parent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := wbs.NewDraft(strings.Join(args[1:], " "))
			d.Duration = duration
			d.Cost = cost
			d.Resources = resources
			d.Notes = notes
			if priority != "" {
				d.Priority = domain.Priority(priority)
				if !d.Priority.Valid() {
					return fmt.Errorf("invalid priority %q", priority)
				}
			}
			if status != "" {
				d.Status = domain.TaskStatus(status)
				if !d.Status.Valid() {
					return fmt.Errorf("invalid status %q", status)
				}
			}
			if risk != "" {
				d.RiskLevel = domain.RiskLevel(risk)
				if !d.RiskLevel.Valid() {
					return fmt.Errorf("invalid risk level %q", risk)
				}
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				durText, costText := strconv.Itoa(d.Duration), ""
				if d.Cost > 0 {
					costText = strconv.FormatFloat(d.Cost, 'f', -1, 64)
				}
				if err := draftForm(&d, &durText, &costText).Run(); err != nil {
					return err
				}
				if err := applyFormNumbers(&d, durText, costText); err != nil {
					return err
				}
			}

			t, err := app.Plans.AddTask(cmd.Context(), args[0], parent, d)
			if err != nil {
				return err
			}
			printf(cmd, "Added %s %s (%s → %s)\n", t.ID, formatter.Bold(t.Name), t.StartDate, t.EndDate)
			return nil
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "Parent task id (omit to add a phase)")
	cmd.Flags().IntVar(&duration, "duration", wbs.DefaultDraftDuration, "Duration in days")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Cost")
	cmd.Flags().StringVar(&resources, "resources", "", "Assigned resources")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (High, Medium, Low)")
	cmd.Flags().StringVar(&status, "status", "", "Status")
	cmd.Flags().StringVar(&risk, "risk", "", "Risk level (High, Medium, Low)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the task in a form")

	return cmd
}

func newTaskSetCmd(app *App) *cobra.Command {
	fieldNames := make([]string, 0, len(wbs.Fields))
	for _, f := range wbs.Fields {
		fieldNames = append(fieldNames, string(f))
	}

	return &cobra.Command{
		Use:   "set PROJECT TASK FIELD [VALUE...]",
		Short: "Set one field of a task",
		Long:  "Set one field of a task; an omitted value clears text fields. Fields: " + strings.Join(fieldNames, ", ") + ".",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := wbs.ParseField(args[2])
			if err != nil {
				return err
			}
			t, err := app.Plans.UpdateTask(cmd.Context(), args[0], args[1], field, strings.Join(args[3:], " "))
			if err != nil {
				return err
			}
			printf(cmd, "Updated %s %s: %s\n", t.ID, formatter.Bold(t.Name), field)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm PROJECT TASK",
		Aliases: []string{"remove"},
		Short:   "Delete a task and its subtree",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.DeleteTask(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			printf(cmd, "Deleted task %s\n", args[1])
			return nil
		},
	}
}
