package cli

import (
	"github.com/keptapp/kept/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sprints    service.SprintService
	Goals      service.GoalService
	Promises   service.PromiseService
	DailyLogs  service.DailyLogService
	Priorities service.PriorityService
	Reviews    service.ReviewService
	Import     service.ImportService

	// IsInteractive reports whether stdin is attached to a terminal. It gates
	// the huh form behind `kept log`.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "kept" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "kept",
		Short: "Personal accountability tracker",
	}

	root.AddCommand(
		newSprintCmd(app),
		newGoalCmd(app),
		newPromiseCmd(app),
		newLogCmd(app),
		newReviewCmd(app),
		newPriorityCmd(app),
	)

	return root
}
