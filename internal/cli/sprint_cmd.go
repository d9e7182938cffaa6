package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/keptapp/kept/internal/cli/formatter"
	"github.com/keptapp/kept/internal/domain"
	"github.com/spf13/cobra"
)

func newSprintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Manage sprints",
	}

	cmd.AddCommand(
		newSprintNewCmd(app),
		newSprintStartCmd(app),
		newSprintCloseCmd(app),
		newSprintListCmd(app),
		newSprintImportCmd(app),
	)

	return cmd
}

func newSprintNewCmd(app *App) *cobra.Command {
	var name, start, end string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new sprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			s := &domain.Sprint{
				ID:        uuid.New().String(),
				Name:      name,
				StartDate: startDate,
				EndDate:   endDate,
				Status:    domain.SprintPlanned,
			}

			if err := app.Sprints.Create(context.Background(), s); err != nil {
				return err
			}

			fmt.Printf("Created sprint %s (%s)\n", s.Name, s.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Sprint name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD), inclusive")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newSprintStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start ID",
		Short: "Activate a sprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sprintID, err := resolveSprintID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Sprints.Start(ctx, sprintID); err != nil {
				return err
			}
			fmt.Printf("Started sprint %s\n", sprintID[:8])
			return nil
		},
	}
}

func newSprintCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close [ID]",
		Short: "Close a sprint (defaults to the active one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var sprintID string
			if len(args) == 1 {
				id, err := resolveSprintID(ctx, app, args[0])
				if err != nil {
					return err
				}
				sprintID = id
			} else {
				active, err := app.Sprints.GetActive(ctx)
				if err != nil {
					return fmt.Errorf("no active sprint: %w", err)
				}
				sprintID = active.ID
			}

			if err := app.Sprints.Close(ctx, sprintID); err != nil {
				return err
			}
			fmt.Printf("Closed sprint %s\n", sprintID[:8])
			return nil
		},
	}
}

func newSprintListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sprints",
		RunE: func(cmd *cobra.Command, args []string) error {
			sprints, err := app.Sprints.List(context.Background())
			if err != nil {
				return err
			}

			if len(sprints) == 0 {
				fmt.Println("No sprints found.")
				return nil
			}

			headers := []string{"ID", "NAME", "WINDOW", "STATUS"}
			rows := make([][]string, 0, len(sprints))
			for _, s := range sprints {
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					s.Name,
					formatter.DateRange(s.StartDate, s.EndDate),
					formatter.SprintStatusPill(s.Status),
				})
			}

			fmt.Print(formatter.RenderBox("Sprints", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newSprintImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a sprint plan from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportPlan(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported sprint %s (%s) with %d goals, %d promises, %d priorities\n",
				result.Sprint.Name, result.Sprint.ID[:8],
				result.GoalCount, result.PromiseCount, result.PriorityCount)
			return nil
		},
	}
}
