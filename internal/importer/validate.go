package importer

import (
	"fmt"
	"time"
)

var validPromiseKinds = map[string]bool{"daily": true, "weekly": true}

var dayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateSprint(&schema.Sprint)...)

	keys := make(map[string]bool)
	errs = append(errs, validatePriorities(schema.Priorities, keys)...)

	if len(schema.Goals) == 0 {
		errs = append(errs, fmt.Errorf("goals: at least one goal is required"))
	}
	errs = append(errs, validateGoals(schema.Goals)...)

	return errs
}

func validateSprint(s *SprintImport) []error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, fmt.Errorf("sprint.name is required"))
	}
	if s.StartDate == "" {
		errs = append(errs, fmt.Errorf("sprint.start_date is required"))
	} else if _, err := time.Parse("2006-01-02", s.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("sprint.start_date: invalid date format %q (expected YYYY-MM-DD)", s.StartDate))
	}
	if s.EndDate == "" {
		errs = append(errs, fmt.Errorf("sprint.end_date is required"))
	} else if _, err := time.Parse("2006-01-02", s.EndDate); err != nil {
		errs = append(errs, fmt.Errorf("sprint.end_date: invalid date format %q (expected YYYY-MM-DD)", s.EndDate))
	}
	if s.StartDate != "" && s.EndDate != "" {
		start, startErr := time.Parse("2006-01-02", s.StartDate)
		end, endErr := time.Parse("2006-01-02", s.EndDate)
		if startErr == nil && endErr == nil && end.Before(start) {
			errs = append(errs, fmt.Errorf("sprint.end_date %q must not be before start_date %q", s.EndDate, s.StartDate))
		}
	}

	return errs
}

func validatePriorities(priorities []PriorityImport, keys map[string]bool) []error {
	var errs []error

	for i, p := range priorities {
		prefix := fmt.Sprintf("priorities[%d]", i)

		if p.Key == "" {
			errs = append(errs, fmt.Errorf("%s.key is required", prefix))
		} else if keys[p.Key] {
			errs = append(errs, fmt.Errorf("%s.key: duplicate key %q", prefix, p.Key))
		} else {
			keys[p.Key] = true
		}

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.WeeklyTargetUnits <= 0 {
			errs = append(errs, fmt.Errorf("%s.weekly_target_units must be positive", prefix))
		}
	}

	return errs
}

func validateGoals(goals []GoalImport) []error {
	var errs []error

	refs := make(map[string]bool)
	for i, g := range goals {
		prefix := fmt.Sprintf("goals[%d]", i)

		if g.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[g.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, g.Ref))
		} else {
			refs[g.Ref] = true
		}

		if g.Objective == "" {
			errs = append(errs, fmt.Errorf("%s.objective is required", prefix))
		}

		for j, p := range g.Promises {
			errs = append(errs, validatePromise(fmt.Sprintf("%s.promises[%d]", prefix, j), &p)...)
		}
	}

	return errs
}

func validatePromise(prefix string, p *PromiseImport) []error {
	var errs []error

	if p.Text == "" {
		errs = append(errs, fmt.Errorf("%s.text is required", prefix))
	}
	if p.Kind == "" {
		errs = append(errs, fmt.Errorf("%s.kind is required", prefix))
		return errs
	}
	if !validPromiseKinds[p.Kind] {
		errs = append(errs, fmt.Errorf("%s.kind: invalid value %q", prefix, p.Kind))
		return errs
	}

	switch p.Kind {
	case "daily":
		if p.WeeklyTarget != 0 {
			errs = append(errs, fmt.Errorf("%s.weekly_target is only valid for weekly promises", prefix))
		}
		seen := make(map[string]bool)
		for _, day := range p.Days {
			if _, ok := dayNames[day]; !ok {
				errs = append(errs, fmt.Errorf("%s.days: unknown day %q", prefix, day))
				continue
			}
			if seen[day] {
				errs = append(errs, fmt.Errorf("%s.days: duplicate day %q", prefix, day))
			}
			seen[day] = true
		}
	case "weekly":
		if len(p.Days) > 0 {
			errs = append(errs, fmt.Errorf("%s.days is only valid for daily promises", prefix))
		}
		if p.WeeklyTarget <= 0 {
			errs = append(errs, fmt.Errorf("%s.weekly_target must be positive", prefix))
		}
	}

	return errs
}
