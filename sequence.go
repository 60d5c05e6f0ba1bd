// SPDX-FileCopyrightText: © 2024 Tiny Tapeout
// SPDX-License-Identifier: Apache-2.0

package fiboblink

// The current term lives in a 12-bit register split across the two output
// words: the low nibble in word A, the upper byte in word B.
const (
	valueBits = 12
	valueMask = 1<<valueBits - 1
)

// engine holds the sequence-generation registers: the current term, the
// trailing Fibonacci term and the committed-term counter.
type engine struct {
	cur   uint16
	prev  uint16
	index uint16
}

// reset parks the engine one advance before the first term, so that the
// first tick after release commits term 1 for every variant.
func (e *engine) reset() { *e = engine{prev: 1} }

// advance commits the next term of the selected sequence. The term
// counter increments on every advance regardless of variant: switching
// variants mid-run applies the new formula to whatever state has
// accumulated and may jump discontinuously. There is no per-variant
// shadow state, as in the silicon.
//
// All results are truncated to the value field width. Overflow wraps
// silently, matching a fixed-width hardware register; it is never an
// error.
func (e *engine) advance(sel Sequence) {
	e.index++
	switch sel {
	case Fibonacci:
		next := (e.cur + e.prev) & valueMask
		e.prev, e.cur = e.cur, next
	case Prime:
		e.cur = nextPrime(e.cur)
	case PerfectSquare:
		e.cur = (e.index * e.index) & valueMask
	case Triangular:
		e.cur = (e.index * (e.index + 1) / 2) & valueMask
	}
}

// nextPrime returns the smallest prime greater than v, found by trial
// search from the successor of v. When the search would leave the value
// field it wraps back to the first prime.
func nextPrime(v uint16) uint16 {
	for n := v + 1; n <= valueMask; n++ {
		if isPrime(n) {
			return n
		}
	}
	return 2
}

func isPrime(n uint16) bool {
	if n < 2 {
		return false
	}
	for d := uint16(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
