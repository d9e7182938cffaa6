package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/keptapp/kept/internal/cli/formatter"
	"github.com/keptapp/kept/internal/domain"
	"github.com/spf13/cobra"
)

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

func parseWeekdays(values []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(values))
	for _, v := range values {
		d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(v))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", v)
		}
		days = append(days, d)
	}
	return days, nil
}

func newPromiseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promise",
		Short: "Manage promises",
	}

	cmd.AddCommand(
		newPromiseAddCmd(app),
		newPromiseListCmd(app),
		newPromiseArchiveCmd(app),
		newPromiseRemoveCmd(app),
		newPromiseDoneCmd(app),
	)

	return cmd
}

func newPromiseAddCmd(app *App) *cobra.Command {
	var goalFlag, text, kind string
	var days []string
	var target int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a promise under a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, goalFlag)
			if err != nil {
				return err
			}

			p := &domain.Promise{
				GoalID: goalID,
				Text:   text,
				Kind:   domain.PromiseKind(kind),
			}

			switch p.Kind {
			case domain.KindDaily:
				schedule, err := parseWeekdays(days)
				if err != nil {
					return err
				}
				p.ScheduleDays = schedule
			case domain.KindWeekly:
				p.WeeklyTarget = target
			}

			if err := app.Promises.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Added promise %q (%s)\n", p.Text, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&goalFlag, "goal", "", "Goal ID")
	cmd.Flags().StringVar(&text, "text", "", "Promise text")
	cmd.Flags().StringVar(&kind, "kind", "daily", "Promise kind (daily|weekly)")
	cmd.Flags().StringSliceVar(&days, "days", nil, "Scheduled weekdays for daily promises (e.g. mon,wed,fri)")
	cmd.Flags().IntVar(&target, "target", 0, "Weekly completion target for weekly promises")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newPromiseListCmd(app *App) *cobra.Command {
	var all bool
	var sprintFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List promises",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var promises []*domain.Promise
			var err error
			if sprintFlag != "" {
				sprintID, resolveErr := resolveSprintID(ctx, app, sprintFlag)
				if resolveErr != nil {
					return resolveErr
				}
				promises, err = app.Promises.ListBySprint(ctx, sprintID)
			} else {
				promises, err = app.Promises.List(ctx, all)
			}
			if err != nil {
				return err
			}

			if len(promises) == 0 {
				fmt.Println("No promises found.")
				return nil
			}

			headers := []string{"ID", "TEXT", "CADENCE", "GOAL"}
			rows := make([][]string, 0, len(promises))
			for _, p := range promises {
				text := p.Text
				if p.ArchivedAt != nil {
					text = formatter.Dim(text + " (archived)")
				}
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					text,
					formatter.KindBadge(p),
					formatter.TruncID(p.GoalID),
				})
			}

			fmt.Print(formatter.RenderBox("Promises", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived promises")
	cmd.Flags().StringVar(&sprintFlag, "sprint", "", "Filter by sprint ID")

	return cmd
}

func newPromiseArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a promise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			promiseID, err := resolvePromiseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Promises.Archive(ctx, promiseID); err != nil {
				return err
			}
			fmt.Printf("Archived promise %s\n", promiseID[:8])
			return nil
		},
	}
}

func newPromiseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a promise and its logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			promiseID, err := resolvePromiseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Promises.Delete(ctx, promiseID); err != nil {
				return err
			}
			fmt.Printf("Removed promise %s\n", promiseID[:8])
			return nil
		},
	}
}

func newPromiseDoneCmd(app *App) *cobra.Command {
	var date string
	var missed bool

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Log a promise completion for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			promiseID, err := resolvePromiseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			if err := app.Promises.LogCompletion(ctx, promiseID, day, !missed); err != nil {
				return err
			}

			verb := "kept"
			if missed {
				verb = "missed"
			}
			fmt.Printf("Logged promise %s as %s on %s\n", promiseID[:8], verb, day.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to log (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&missed, "missed", false, "Record an explicit miss instead of a completion")

	return cmd
}
