package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/keptapp/kept/internal/cli"
	"github.com/keptapp/kept/internal/db"
	"github.com/keptapp/kept/internal/repository"
	"github.com/keptapp/kept/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.kept/kept.db
	dbPath := os.Getenv("KEPT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".kept", "kept.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sprintRepo := repository.NewSQLiteSprintRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	promiseRepo := repository.NewSQLitePromiseRepo(database)
	promiseLogRepo := repository.NewSQLitePromiseLogRepo(database)
	dailyLogRepo := repository.NewSQLiteDailyLogRepo(database)
	priorityRepo := repository.NewSQLitePriorityRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case telemetry goes to stderr only when debugging is requested.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("KEPT_DEBUG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Sprints:    service.NewSprintService(sprintRepo),
		Goals:      service.NewGoalService(goalRepo, sprintRepo),
		Promises:   service.NewPromiseService(promiseRepo, goalRepo, promiseLogRepo, dailyLogRepo),
		DailyLogs:  service.NewDailyLogService(dailyLogRepo, priorityRepo, uow),
		Priorities: service.NewPriorityService(priorityRepo),
		Reviews: service.NewReviewService(sprintRepo, goalRepo, promiseRepo,
			promiseLogRepo, dailyLogRepo, priorityRepo, observer),
		Import: service.NewImportService(uow, observer),
	}

	// Detect interactive terminal for the daily log form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
