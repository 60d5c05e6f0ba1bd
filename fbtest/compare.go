// SPDX-FileCopyrightText: © 2024 Tiny Tapeout
// SPDX-License-Identifier: Apache-2.0

package fbtest

import (
	"math/rand"
	"testing"
	"time"

	fb "github.com/pathanrehman/tt-um-fibo-blink"
)

// A Stepper is anything that advances by one clock edge per call; both
// the core and reference models in tests implement it.
type Stepper interface {
	Step(fb.Inputs) fb.Outputs
}

// CompareSteppers drives two models with the same pseudo-random stimulus
// for the given number of cycles and fails the test on the first cycle
// where their output words differ. The stimulus holds each configuration
// word for a stretch of cycles, like a harness would, and sprinkles in
// resets and enable drops.
func CompareSteppers(t *testing.T, cycles int, a, b Stepper) {
	t.Helper()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	in := fb.Inputs{Ena: true}

	// settle both models in reset first
	for i := 0; i < 4; i++ {
		a.Step(in)
		b.Step(in)
	}
	in.RstN = true

	start := time.Now()
	hold := 0
	for i := 0; i < cycles; i++ {
		if hold == 0 {
			in.UI = uint8(rng.Intn(256))
			in.RstN = rng.Intn(50) != 0
			in.Ena = rng.Intn(50) != 0
			hold = 1 + rng.Intn(100)
		}
		hold--

		oa := a.Step(in)
		ob := b.Step(in)
		if oa != ob {
			t.Fatalf("cycle %d: ui_in=%#02x ena=%v rst_n=%v\nExpected uo_out=%#02x uio_out=%#02x\nGot      uo_out=%#02x uio_out=%#02x",
				i, in.UI, in.Ena, in.RstN, oa.UO, oa.UIO, ob.UO, ob.UIO)
		}
		if !in.RstN || !in.Ena {
			in.RstN, in.Ena = true, true
		}
	}

	elapsed := time.Since(start)
	t.Logf("%d cycles in %v => %.2f MHz", cycles, elapsed, float64(cycles)/elapsed.Seconds()/1e6)
}
