// SPDX-FileCopyrightText: © 2024 Tiny Tapeout
// SPDX-License-Identifier: Apache-2.0

// Package fbtest provides utilities for driving and checking a FiboBlink
// core in tests: a clock-cycle bench, pulse waiting, toggle counting and
// a random-stimulus model comparator.
package fbtest

import (
	"github.com/pkg/errors"

	fb "github.com/pathanrehman/tt-um-fibo-blink"
)

// A Bench drives a core one clock cycle at a time, holding the input
// lines between cycles the way the verification harness does.
type Bench struct {
	Core *fb.Core
	In   fb.Inputs

	cycles int
	out    fb.Outputs
}

// New returns a bench around a fresh core, with ena high and reset
// asserted. Call PowerOn to release the reset.
func New() *Bench {
	return &Bench{
		Core: fb.New(),
		In:   fb.Inputs{Ena: true},
	}
}

// PowerOn holds the reset line low for n cycles, then releases it.
func (b *Bench) PowerOn(n int) {
	b.In.RstN = false
	b.Run(n)
	b.In.RstN = true
}

// Configure sets the input configuration word.
func (b *Bench) Configure(c fb.Config) {
	b.In.UI = fb.EncodeConfig(c)
}

// Cycle advances the core by one clock edge.
func (b *Bench) Cycle() fb.Outputs {
	b.out = b.Core.Step(b.In)
	b.cycles++
	return b.out
}

// Run advances the core by n clock edges and returns the last outputs.
func (b *Bench) Run(n int) fb.Outputs {
	for i := 0; i < n; i++ {
		b.Cycle()
	}
	return b.out
}

// WaitNewNumber runs the clock until the new-number pulse fires and
// returns the committed value. It gives up after max cycles.
func (b *Bench) WaitNewNumber(max int) (uint16, error) {
	for i := 0; i < max; i++ {
		if out := b.Cycle(); out.NewNumber() {
			return out.Value(), nil
		}
	}
	return 0, errors.Errorf("no new-number pulse within %d cycles", max)
}

// CountToggles samples sel once per cycle over n cycles and counts level
// changes, starting from the level currently on the outputs.
func (b *Bench) CountToggles(n int, sel func(fb.Outputs) bool) int {
	toggles := 0
	prev := sel(b.out)
	for i := 0; i < n; i++ {
		cur := sel(b.Cycle())
		if cur != prev {
			toggles++
		}
		prev = cur
	}
	return toggles
}

// Cycles returns the number of clock edges driven since the bench was
// created.
func (b *Bench) Cycles() int { return b.cycles }

// Outputs returns the outputs sampled on the last edge.
func (b *Bench) Outputs() fb.Outputs { return b.out }
