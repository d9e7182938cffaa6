package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/keptapp/kept/internal/domain"
)

// runLogForm collects the daily log interactively: energy, notes, one units
// group per defined priority, and a closing proof-of-work text.
func runLogForm(ctx context.Context, app *App, day time.Time) error {
	priorities, err := app.Priorities.List(ctx)
	if err != nil {
		return err
	}

	energy := "3"
	var notes, proof string
	unitValues := make([]string, len(priorities))
	effortValues := make([]string, len(priorities))
	for i := range effortValues {
		effortValues[i] = strconv.Itoa(domain.EffortActionMin)
	}

	energyOptions := make([]huh.Option[string], 0, 5)
	for i := 1; i <= 5; i++ {
		energyOptions = append(energyOptions, huh.NewOption(strconv.Itoa(i), strconv.Itoa(i)))
	}

	effortOptions := []huh.Option[string]{
		huh.NewOption("1 — motion (busywork)", "1"),
		huh.NewOption("2 — in between", "2"),
		huh.NewOption("3 — action", "3"),
		huh.NewOption("4 — focused action", "4"),
		huh.NewOption("5 — deep action", "5"),
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Energy on %s", day.Format("Mon Jan 2"))).
				Options(energyOptions...).
				Value(&energy),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&notes),
		),
	}

	for i, p := range priorities {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s — units done", p.Name)).
				Placeholder("0").
				Value(&unitValues[i]).
				Validate(validateNonNegativeInt),
			huh.NewSelect[string]().
				Title(fmt.Sprintf("%s — effort", p.Name)).
				Options(effortOptions...).
				Value(&effortValues[i]),
		))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewText().
			Title("Proof of work (required when units were done)").
			Value(&proof),
	))

	form := huh.NewForm(groups...).WithTheme(keptHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	d := &domain.DailyLog{
		Date:   day,
		Energy: parseIntOr(energy, 3),
		Notes:  notes,
	}
	for i, p := range priorities {
		units := parseIntOr(unitValues[i], 0)
		if units == 0 {
			continue
		}
		d.PriorityLogs = append(d.PriorityLogs, domain.PriorityLog{
			Key:    p.Key,
			Units:  units,
			Effort: parseIntOr(effortValues[i], domain.EffortActionMin),
		})
	}
	if proof != "" {
		d.ProofEntries = append(d.ProofEntries, domain.ProofEntry{Text: proof})
	}

	if err := app.DailyLogs.Upsert(ctx, d); err != nil {
		return err
	}

	fmt.Printf("Logged %s (energy %d, %d priority entries)\n",
		day.Format("2006-01-02"), d.Energy, len(d.PriorityLogs))
	return nil
}
