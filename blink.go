// SPDX-FileCopyrightText: © 2024 Tiny Tapeout
// SPDX-License-Identifier: Apache-2.0

package fiboblink

// blinker drives the LED level and the new-number pulse.
//
// The LED is a registered level, not the raw tick: it toggles on every
// divider tick and holds in between, so the visible blink runs at half
// the tick rate.
type blinker struct {
	led   bool
	pulse bool
}

func (b *blinker) reset() { *b = blinker{} }

// step toggles the LED on tick edges and raises pulse for the single
// cycle on which a new term was committed.
func (b *blinker) step(tick, committed bool) {
	if tick {
		b.led = !b.led
	}
	b.pulse = committed
}
