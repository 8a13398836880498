package loaders

import (
	"fmt"
	"os"

	"maintenance-tracker/internal/schedule"

	"gopkg.in/yaml.v3"
)

// Default due-soon margins applied when the config omits thresholds.
const (
	DefaultMilesThreshold = 500
	DefaultDaysThreshold  = 30
)

// Thresholds are the margins inside which an upcoming rule counts as
// actionable for the due command and the email digest.
type Thresholds struct {
	Miles int `yaml:"miles"`
	Days  int `yaml:"days"`
}

// Schedule is the complete rule-set configuration loaded from YAML.
type Schedule struct {
	VehicleName string          `yaml:"vehicle_name"`
	Thresholds  Thresholds      `yaml:"thresholds"`
	Rules       []schedule.Rule `yaml:"rules"`
}

// LoadSchedule reads a maintenance schedule from a YAML file. A missing or
// unreadable file is fatal for the caller: the engine must never run
// without its rule set.
func LoadSchedule(filename string) (*Schedule, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var sched Schedule
	if err := yaml.Unmarshal(data, &sched); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schedule: %w", err)
	}

	if sched.VehicleName == "" {
		sched.VehicleName = "Unknown Vehicle"
	}
	if sched.Thresholds.Miles <= 0 {
		sched.Thresholds.Miles = DefaultMilesThreshold
	}
	if sched.Thresholds.Days <= 0 {
		sched.Thresholds.Days = DefaultDaysThreshold
	}

	return &sched, nil
}
