package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/ganttly/internal/cli/formatter"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/service"
	"github.com/alexanderramin/ganttly/internal/view"
	"github.com/alexanderramin/ganttly/internal/wbs"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"p"},
		Short:   "Manage projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectNewCmd(app),
		newProjectSetCmd(app),
		newProjectGenerateCmd(app),
		newProjectImportCmd(app),
		newProjectExportCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			writeOut(cmd, formatter.FormatProjectList(projects, app.now()))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT",
		Short: "Show project details and statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Get(ctx, args[0])
			if err != nil {
				return err
			}
			stats, err := app.Plans.Stats(ctx, p.ID, view.Criteria{})
			if err != nil {
				return err
			}
			writeOut(cmd, formatter.FormatProjectShow(p, stats))
			return nil
		},
	}
}

// detailFlags binds the editable project fields shared by new and set.
type detailFlags struct {
	name, description, start, manager string
	budget                            float64
}

func (f *detailFlags) register(cmd *cobra.Command, withName bool) {
	if withName {
		cmd.Flags().StringVar(&f.name, "name", "", "Project name")
	}
	cmd.Flags().StringVar(&f.description, "description", "", "Project description")
	cmd.Flags().StringVar(&f.start, "start", "", "Project start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.manager, "manager", "", "Project manager")
	cmd.Flags().Float64Var(&f.budget, "budget", 0, "Project budget")
}

// details collects only the flags the user set.
func (f *detailFlags) details(cmd *cobra.Command) (service.ProjectDetails, bool, error) {
	var d service.ProjectDetails
	changed := false
	if cmd.Flags().Changed("name") {
		d.Name = &f.name
		changed = true
	}
	if cmd.Flags().Changed("description") {
		d.Description = &f.description
		changed = true
	}
	if cmd.Flags().Changed("start") {
		start, err := domain.ParseDate(f.start)
		if err != nil {
			return d, false, fmt.Errorf("invalid start date %q: %w", f.start, err)
		}
		d.ProjectStart = &start
		changed = true
	}
	if cmd.Flags().Changed("manager") {
		d.ProjectManager = &f.manager
		changed = true
	}
	if cmd.Flags().Changed("budget") {
		d.ProjectBudget = &f.budget
		changed = true
	}
	return d, changed, nil
}

func newProjectNewCmd(app *App) *cobra.Command {
	var flags detailFlags

	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "Create an empty project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, changed, err := flags.details(cmd)
			if err != nil {
				return err
			}
			p, err := app.Projects.Create(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if changed {
				if p, err = app.Projects.UpdateDetails(ctx, p.ID, d); err != nil {
					return err
				}
			}
			printf(cmd, "Created project %s %s\n", formatter.Bold(p.Name), formatter.TruncID(p.ID))
			return nil
		},
	}
	flags.register(cmd, false)

	return cmd
}

func newProjectSetCmd(app *App) *cobra.Command {
	var flags detailFlags

	cmd := &cobra.Command{
		Use:   "set PROJECT",
		Short: "Update project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, changed, err := flags.details(cmd)
			if err != nil {
				return err
			}
			if !changed {
				return fmt.Errorf("nothing to update: pass at least one of --name, --description, --start, --manager, --budget")
			}
			p, err := app.Projects.UpdateDetails(cmd.Context(), args[0], d)
			if err != nil {
				return err
			}
			printf(cmd, "Updated project %s\n", formatter.Bold(p.Name))
			return nil
		},
	}
	flags.register(cmd, true)

	return cmd
}

func newProjectGenerateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate DESCRIPTION...",
		Short: "Generate a project plan from a description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p *domain.Project
			err := withSpinner(cmd, app, "Generating plan...", func(ctx context.Context) error {
				var err error
				p, err = app.Assistant.Generate(ctx, strings.Join(args, " "))
				return err
			})
			if err != nil {
				return err
			}
			printf(cmd, "Generated project %s %s\n\n", formatter.Bold(p.Name), formatter.TruncID(p.ID))
			writeOut(cmd, formatter.RenderTree(view.FlattenWithLineNumbers(p.WBS, nil)))
			return nil
		},
	}
}

func newProjectImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a project from a JSON document (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			p, err := app.Projects.Import(cmd.Context(), filepath.Base(args[0]), data)
			if err != nil {
				return err
			}
			printf(cmd, "Imported project %s %s (%d tasks)\n\n", formatter.Bold(p.Name), formatter.TruncID(p.ID), wbs.Count(p.WBS))
			writeOut(cmd, formatter.RenderTree(view.FlattenWithLineNumbers(p.WBS, nil)))
			return nil
		},
	}
}

func newProjectExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export PROJECT",
		Short: "Write a project as a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Projects.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				writeOut(cmd, string(data))
				return nil
			}
			if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			printf(cmd, "Exported to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm PROJECT",
		Aliases: []string{"remove"},
		Short:   "Delete a project",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to delete %q without --yes", p.Name)
				}
				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete project %q?", p.Name)).
						Affirmative("Yes").
						Negative("No").
						Value(&confirmed),
				)).WithTheme(ganttlyHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					writeOut(cmd, "Cancelled.")
					return nil
				}
			}
			if err := app.Projects.Delete(ctx, p.ID); err != nil {
				return err
			}
			printf(cmd, "Deleted project %s\n", p.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

// withSpinner runs fn with a spinner on stderr when attached to a terminal.
func withSpinner(cmd *cobra.Command, app *App, message string, fn func(ctx context.Context) error) error {
	if app.interactive() {
		stop := formatter.StartSpinner(cmd.ErrOrStderr(), message)
		defer stop()
	}
	return fn(cmd.Context())
}
