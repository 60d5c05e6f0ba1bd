// SPDX-FileCopyrightText: © 2024 Tiny Tapeout
// SPDX-License-Identifier: Apache-2.0

// Package scenario loads YAML stimulus scenarios for the demo binary.
// A scenario is a named list of steps; each step holds the input lines
// at a given value for a number of clock cycles.
package scenario

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Step holds the input lines steady for Cycles clock edges. Reset
// drives rst_n low for the duration of the step.
type Step struct {
	Name   string `yaml:"name,omitempty"`
	Word   uint8  `yaml:"ui_in"`
	Cycles int    `yaml:"cycles"`
	Reset  bool   `yaml:"reset,omitempty"`
}

// A Scenario is a complete stimulus program for the core.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario")
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parse scenario")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if len(s.Steps) == 0 {
		return errors.New("scenario has no steps")
	}
	for i, st := range s.Steps {
		if st.Cycles <= 0 {
			return errors.Errorf("step %d: cycles must be positive, got %d", i, st.Cycles)
		}
	}
	return nil
}

// TotalCycles returns the clock-cycle length of the scenario.
func (s *Scenario) TotalCycles() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Cycles
	}
	return n
}

// Default returns the built-in demo scenario: a reset, a Fibonacci run at
// medium speed, a sequence reset and a fast perfect-square run.
func Default() *Scenario {
	return &Scenario{
		Name: "fibo-blink demo",
		Steps: []Step{
			{Name: "reset", Word: 0x00, Cycles: 10, Reset: true},
			{Name: "fibonacci medium", Word: 0x4C, Cycles: 2000},
			{Name: "sequence reset", Word: 0x6C, Cycles: 5},
			{Name: "squares fastest", Word: 0x7E, Cycles: 500},
		},
	}
}
