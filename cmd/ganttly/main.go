package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/ganttly/internal/cli"
	"github.com/alexanderramin/ganttly/internal/config"
	"github.com/alexanderramin/ganttly/internal/db"
	"github.com/alexanderramin/ganttly/internal/llm"
	"github.com/alexanderramin/ganttly/internal/service"
	tmpl "github.com/alexanderramin/ganttly/internal/template"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.Init = func(configPath string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		database, err = db.OpenDB(cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		uow := db.NewSQLiteUnitOfWork(database)

		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		observer := service.NewLogUseCaseObserver(os.Stderr, level)

		var client llm.Client = llm.DisabledClient{}
		if llmCfg := cfg.LLMClientConfig(); llmCfg.Enabled {
			var callObserver llm.Observer = llm.NoopObserver{}
			if llmCfg.LogCalls {
				callObserver = llm.NewLogObserver(slog.New(slog.NewTextHandler(os.Stderr, nil)))
			}
			client = llm.NewClient(llmCfg, callObserver)
		}

		app.Config = cfg
		app.Projects = service.NewProjectService(uow, tmpl.Catalog{Dir: cfg.Templates.Dir}, observer)
		app.Plans = service.NewPlanService(uow, observer)
		app.Assistant = service.NewAssistantService(uow, client, observer)
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}
