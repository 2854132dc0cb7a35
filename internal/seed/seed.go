package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type UserRecord struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Avatar string `yaml:"avatar"`
	Role   string `yaml:"role"`
}

type EventRecord struct {
	Event   string `yaml:"event"`
	User    string `yaml:"user"`
	DaysAgo int    `yaml:"days_ago"`
}

type TaskRecord struct {
	ID          string        `yaml:"id"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Status      string        `yaml:"status"`
	Priority    string        `yaml:"priority"`
	Assignee    string        `yaml:"assignee"`
	DueInDays   int           `yaml:"due_in_days"`
	History     []EventRecord `yaml:"history"`
}

// Data is the raw seed set. Conversion into domain values happens in the
// users and tasks packages, which own the validation of roles and statuses.
type Data struct {
	Users []UserRecord `yaml:"users"`
	Tasks []TaskRecord `yaml:"tasks"`
}

// Default returns the seed set compiled into the binary.
func Default() Data {
	d, err := Parse(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded seed.yaml is invalid: %v", err))
	}
	return d
}

func Parse(raw []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("seed: parse: %w", err)
	}
	seen := map[string]bool{}
	for _, t := range d.Tasks {
		if t.ID == "" {
			return Data{}, fmt.Errorf("seed: task %q has no id", t.Title)
		}
		if seen[t.ID] {
			return Data{}, fmt.Errorf("seed: duplicate task id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return d, nil
}
