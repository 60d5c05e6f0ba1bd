// SPDX-FileCopyrightText: © 2024 Tiny Tapeout
// SPDX-License-Identifier: Apache-2.0

package fiboblink

// dividerPeriods maps a speed code to its tick period in clock cycles.
// Periods are strictly decreasing and span 40x from slowest to fastest,
// so the fastest setting shows materially more tick activity than the
// slowest within any fixed observation window.
var dividerPeriods = [8]uint16{640, 320, 160, 96, 64, 48, 32, 16}

// Period returns the tick period, in clock cycles, for the given 3-bit
// speed code.
func Period(speed uint8) int {
	return int(dividerPeriods[speed&cfgSpeedMask])
}

// divider is the speed-scaled timing divider. tick is high for exactly
// one cycle each time the counter completes a period.
type divider struct {
	counter uint16
	tick    bool
}

func (d *divider) reset() { *d = divider{} }

// step advances the counter by one clock edge. While the output is
// disabled the counter holds and tick stays low. The comparison allows
// for a speed change that leaves the counter beyond the new, shorter
// period: the next edge still ticks and wraps.
func (d *divider) step(enabled bool, speed uint8) {
	d.tick = false
	if !enabled {
		return
	}
	d.counter++
	if d.counter >= dividerPeriods[speed&cfgSpeedMask] {
		d.counter = 0
		d.tick = true
	}
}
