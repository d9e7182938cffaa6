package cli

import (
	"context"
	"fmt"

	"github.com/keptapp/kept/internal/cli/formatter"
	"github.com/keptapp/kept/internal/domain"
	"github.com/spf13/cobra"
)

func newPriorityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority",
		Short: "Manage tracked priorities",
	}

	cmd.AddCommand(
		newPriorityAddCmd(app),
		newPriorityListCmd(app),
	)

	return cmd
}

func newPriorityAddCmd(app *App) *cobra.Command {
	var key, name string
	var target int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Define or update a tracked priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Priority{
				Key:               key,
				Name:              domain.CoalesceStr(name, key),
				WeeklyTargetUnits: target,
			}

			if err := app.Priorities.Define(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Defined priority %q (%d units/week)\n", p.Key, p.WeeklyTargetUnits)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Stable priority key (e.g. writing)")
	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the key)")
	cmd.Flags().IntVar(&target, "target", 0, "Weekly unit target")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newPriorityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked priorities",
		RunE: func(cmd *cobra.Command, args []string) error {
			priorities, err := app.Priorities.List(context.Background())
			if err != nil {
				return err
			}

			if len(priorities) == 0 {
				fmt.Println("No priorities defined.")
				return nil
			}

			headers := []string{"KEY", "NAME", "WEEKLY TARGET"}
			rows := make([][]string, 0, len(priorities))
			for _, p := range priorities {
				rows = append(rows, []string{
					p.Key,
					p.Name,
					fmt.Sprintf("%d units", p.WeeklyTargetUnits),
				})
			}

			fmt.Print(formatter.RenderBox("Priorities", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}
