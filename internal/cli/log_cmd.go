package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/keptapp/kept/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var date, notes string
	var energy int
	var units, proofs []string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record or amend the daily audit log",
		Long: "Record the day's energy, notes, priority units and proof of work.\n" +
			"Writes for the same date replace the earlier entry. Without flags on a\n" +
			"terminal, an interactive form is shown instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			flagged := cmd.Flags().Changed("energy") || cmd.Flags().Changed("notes") ||
				cmd.Flags().Changed("unit") || cmd.Flags().Changed("proof")

			if !flagged && app.IsInteractive != nil && app.IsInteractive() {
				return runLogForm(ctx, app, day)
			}

			d := &domain.DailyLog{
				Date:   day,
				Energy: energy,
				Notes:  notes,
			}

			for _, u := range units {
				pl, err := parseUnitFlag(u)
				if err != nil {
					return err
				}
				d.PriorityLogs = append(d.PriorityLogs, pl)
			}
			for _, p := range proofs {
				d.ProofEntries = append(d.ProofEntries, domain.ProofEntry{Text: p})
			}

			if err := app.DailyLogs.Upsert(ctx, d); err != nil {
				return err
			}

			fmt.Printf("Logged %s (energy %d, %d priority entries)\n",
				day.Format("2006-01-02"), d.Energy, len(d.PriorityLogs))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to log (YYYY-MM-DD, defaults to today)")
	cmd.Flags().IntVar(&energy, "energy", 3, "Energy level 1-5")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes for the day")
	cmd.Flags().StringArrayVar(&units, "unit", nil, "Priority units as key=units:effort (e.g. writing=3:4)")
	cmd.Flags().StringArrayVar(&proofs, "proof", nil, "Proof-of-work note (repeatable)")

	return cmd
}

// parseUnitFlag parses "key=units" or "key=units:effort". Effort defaults to
// the action threshold when omitted.
func parseUnitFlag(value string) (domain.PriorityLog, error) {
	var pl domain.PriorityLog

	key, rest, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return pl, fmt.Errorf("invalid --unit %q, expected key=units:effort", value)
	}

	unitStr, effortStr, hasEffort := strings.Cut(rest, ":")
	unitCount, err := strconv.Atoi(unitStr)
	if err != nil {
		return pl, fmt.Errorf("invalid unit count in --unit %q: %w", value, err)
	}

	effort := domain.EffortActionMin
	if hasEffort {
		effort, err = strconv.Atoi(effortStr)
		if err != nil {
			return pl, fmt.Errorf("invalid effort in --unit %q: %w", value, err)
		}
	}

	pl.Key = key
	pl.Units = unitCount
	pl.Effort = effort
	return pl, nil
}
