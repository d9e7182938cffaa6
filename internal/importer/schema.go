package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level YAML structure for sprint plan import.
type ImportSchema struct {
	Sprint     SprintImport     `yaml:"sprint"`
	Priorities []PriorityImport `yaml:"priorities,omitempty"`
	Goals      []GoalImport     `yaml:"goals"`
}

// SprintImport defines the sprint-level fields in the import file.
type SprintImport struct {
	Name      string `yaml:"name"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

// PriorityImport defines a tracked priority in the import file.
type PriorityImport struct {
	Key               string `yaml:"key"`
	Name              string `yaml:"name"`
	WeeklyTargetUnits int    `yaml:"weekly_target_units"`
}

// GoalImport defines a sprint goal and its promises.
type GoalImport struct {
	Ref       string          `yaml:"ref"`
	Objective string          `yaml:"objective"`
	Promises  []PromiseImport `yaml:"promises"`
}

// PromiseImport defines a promise in the import file. Daily promises list
// schedule days by name; weekly promises carry a weekly_target instead.
type PromiseImport struct {
	Text         string   `yaml:"text"`
	Kind         string   `yaml:"kind"`
	Days         []string `yaml:"days,omitempty"`
	WeeklyTarget int      `yaml:"weekly_target,omitempty"`
}

// LoadImportSchema reads and parses a sprint plan YAML file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
