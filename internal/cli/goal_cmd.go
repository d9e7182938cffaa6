package cli

import (
	"context"
	"fmt"

	"github.com/keptapp/kept/internal/cli/formatter"
	"github.com/keptapp/kept/internal/domain"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage sprint goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var objective, sprintFlag string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal to a sprint (defaults to the active one)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var sprintID string
			if sprintFlag != "" {
				id, err := resolveSprintID(ctx, app, sprintFlag)
				if err != nil {
					return err
				}
				sprintID = id
			} else {
				active, err := app.Sprints.GetActive(ctx)
				if err != nil {
					return fmt.Errorf("no active sprint; pass --sprint: %w", err)
				}
				sprintID = active.ID
			}

			g := &domain.Goal{SprintID: sprintID, Objective: objective}
			if err := app.Goals.Create(ctx, g); err != nil {
				return err
			}

			fmt.Printf("Added goal %q (%s)\n", g.Objective, g.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&objective, "objective", "", "Goal objective")
	cmd.Flags().StringVar(&sprintFlag, "sprint", "", "Sprint ID (defaults to the active sprint)")
	_ = cmd.MarkFlagRequired("objective")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var sprintFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var goals []*domain.Goal
			var err error
			if sprintFlag != "" {
				sprintID, resolveErr := resolveSprintID(ctx, app, sprintFlag)
				if resolveErr != nil {
					return resolveErr
				}
				goals, err = app.Goals.ListBySprint(ctx, sprintID)
			} else {
				goals, err = app.Goals.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(goals) == 0 {
				fmt.Println("No goals found.")
				return nil
			}

			headers := []string{"ID", "OBJECTIVE", "SPRINT"}
			rows := make([][]string, 0, len(goals))
			for _, g := range goals {
				rows = append(rows, []string{
					formatter.TruncID(g.ID),
					g.Objective,
					formatter.TruncID(g.SprintID),
				})
			}

			fmt.Print(formatter.RenderBox("Goals", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&sprintFlag, "sprint", "", "Filter by sprint ID")

	return cmd
}
