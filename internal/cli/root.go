package cli

import (
	"time"

	"github.com/alexanderramin/ganttly/internal/config"
	"github.com/alexanderramin/ganttly/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Plans     service.PlanService
	Assistant service.AssistantService
	Config    *config.Config

	// IsInteractive reports whether stdin is a terminal. nil means it is not.
	IsInteractive func() bool
	// Now is the clock used for relative timestamps. nil uses time.Now.
	Now func() time.Time

	// Init runs before any command with the --config value and fills in the
	// fields above. Tests wire the App directly and leave it nil.
	Init func(configPath string) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) config() *config.Config {
	if a.Config != nil {
		return a.Config
	}
	return config.Default()
}

// NewRootCmd creates the top-level "ganttly" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ganttly",
		Short:         "Hierarchical project schedules in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var configPath string
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.ganttly/config.yaml)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if app.Init == nil {
			return nil
		}
		return app.Init(configPath)
	}

	root.AddCommand(
		newProjectCmd(app),
		newTemplateCmd(app),
		newTaskCmd(app),
		newTreeCmd(app),
		newGanttCmd(app),
		newStatsCmd(app),
		newAskCmd(app),
		newHistoryCmd(app),
		newResourceCmd(app),
	)

	return root
}
