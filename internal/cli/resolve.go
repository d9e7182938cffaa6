package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// resolveSprintID resolves user input to a full sprint ID. Accepts an exact
// UUID or a unique UUID prefix.
func resolveSprintID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("sprint ID is required")
	}

	sprints, err := app.Sprints.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range sprints {
		if s.ID == input {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range sprints {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("sprint not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("sprint ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolvePromiseID resolves user input to a full promise ID, matching exact
// IDs and unique prefixes across all promises, archived included.
func resolvePromiseID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("promise ID is required")
	}

	promises, err := app.Promises.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range promises {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range promises {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("promise not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("promise ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveGoalID resolves user input to a full goal ID by exact match or
// unique prefix.
func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("goal ID is required")
	}

	goals, err := app.Goals.List(ctx)
	if err != nil {
		return "", err
	}

	for _, g := range goals {
		if g.ID == input {
			return g.ID, nil
		}
	}

	var matches []string
	for _, g := range goals {
		if strings.HasPrefix(g.ID, input) {
			matches = append(matches, g.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("goal not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("goal ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseDateFlag parses a --date style YYYY-MM-DD value; empty means today.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return d, nil
}
