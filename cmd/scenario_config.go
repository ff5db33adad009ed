package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/ed-sim/ed-sim/sim"
)

// Scenario is the YAML shape of a simulation scenario file. Fields are
// pointers so an explicit zero (beds: 0, queue_size: 0) is distinguishable
// from an absent key; only absent keys fall back to the stock configuration.
type Scenario struct {
	Executions          *int `yaml:"executions"`
	MeanArrivalsPerHour *int `yaml:"arrivals_per_hour"`
	SimHours            *int `yaml:"hours"`
	Beds                *int `yaml:"beds"`
	QueueCapacity       *int `yaml:"queue_size"`
	Doctors             *int `yaml:"doctors"`
	Nurses              *int `yaml:"nurses"`
	Wardies             *int `yaml:"wardies"`
	Labs                *int `yaml:"labs"`
	XRayStaff           *int `yaml:"xray_staff"`
	AlgorithmIndex      *int `yaml:"algo"`
}

// LoadScenario parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// Config converts the scenario into a simulation Config, keeping the stock
// defaults for keys the file does not set.
func (s *Scenario) Config() sim.Config {
	cfg := sim.DefaultConfig()

	override(&cfg.MeanArrivalsPerHour, s.MeanArrivalsPerHour)
	override(&cfg.SimHours, s.SimHours)
	override(&cfg.Beds, s.Beds)
	override(&cfg.QueueCapacity, s.QueueCapacity)
	override(&cfg.Doctors, s.Doctors)
	override(&cfg.Nurses, s.Nurses)
	override(&cfg.Wardies, s.Wardies)
	override(&cfg.Labs, s.Labs)
	override(&cfg.XRayStaff, s.XRayStaff)
	override(&cfg.AlgorithmIndex, s.AlgorithmIndex)

	return cfg
}

func override(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
