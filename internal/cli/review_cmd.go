package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/keptapp/kept/internal/cli/formatter"
	"github.com/keptapp/kept/internal/contract"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review progress and integrity",
	}

	cmd.AddCommand(
		newReviewWeekCmd(app),
		newReviewMonthCmd(app),
		newReviewSprintCmd(app),
	)

	return cmd
}

func newReviewWeekCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Review the calendar week containing a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			summary, err := app.Reviews.WeeklyReview(context.Background(), contract.NewWeeklyReviewRequest(day))
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatWeeklySummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the week (YYYY-MM-DD, defaults to today)")

	return cmd
}

func newReviewMonthCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Review a calendar month",
		RunE: func(cmd *cobra.Command, args []string) error {
			var year int
			var m time.Month
			if month == "" {
				now := time.Now().UTC()
				year, m = now.Year(), now.Month()
			} else {
				parsed, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", month, err)
				}
				year, m = parsed.Year(), parsed.Month()
			}

			summary, err := app.Reviews.MonthlyReview(context.Background(), contract.NewMonthlyReviewRequest(year, m))
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatMonthlySummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to review (YYYY-MM, defaults to the current month)")

	return cmd
}

func newReviewSprintCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sprint [ID]",
		Short: "Review a sprint (defaults to the active one)",
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
			}

			summary, err := app.Reviews.SprintReview(ctx, contract.NewSprintReviewRequest(sprintID))
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatSprintSummary(summary))
			return nil
		},
	}
}
