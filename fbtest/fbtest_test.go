package fbtest_test

import (
	"testing"

	fb "github.com/pathanrehman/tt-um-fibo-blink"
	"github.com/pathanrehman/tt-um-fibo-blink/fbtest"
)

// refCore is a deliberately plain re-implementation of the core used as
// a comparison model: one flat state struct and straight-line
// conditionals instead of sub-units.
type refCore struct {
	counter int
	tick    bool
	cur     uint16
	prev    uint16
	index   uint16
	led     bool
	pulse   bool
}

func (r *refCore) Step(in fb.Inputs) fb.Outputs {
	if !in.RstN {
		*r = refCore{prev: 1}
		return r.encode(false)
	}
	if !in.Ena {
		return r.encode(false)
	}

	enabled := in.UI&0x40 != 0
	r.tick = false
	r.pulse = false
	if enabled {
		r.counter++
		if r.counter >= fb.Period(in.UI>>2&0x07) {
			r.counter = 0
			r.tick = true
			r.led = !r.led
		}
	}

	if in.UI&0x20 != 0 {
		r.cur, r.prev, r.index = 0, 1, 0
	} else if r.tick {
		r.index++
		switch in.UI & 0x03 {
		case 0:
			r.cur, r.prev = (r.cur+r.prev)&0xFFF, r.cur
		case 1:
			next := r.cur + 1
			for next <= 0xFFF && !refPrime(next) {
				next++
			}
			if next > 0xFFF {
				next = 2
			}
			r.cur = next
		case 2:
			r.cur = (r.index * r.index) & 0xFFF
		case 3:
			r.cur = (r.index * (r.index + 1) / 2) & 0xFFF
		}
		r.pulse = true
	}
	return r.encode(enabled)
}

func refPrime(n uint16) bool {
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

func (r *refCore) encode(enabled bool) fb.Outputs {
	var uo uint8
	if enabled {
		uo |= 0x04
		if r.led {
			uo |= 0x01
		}
		if r.tick {
			uo |= 0x02
		}
		if r.pulse {
			uo |= 0x08
		}
	}
	uo |= uint8(r.cur&0x0F) << 4
	return fb.Outputs{UO: uo, UIO: uint8(r.cur >> 4)}
}

func TestCoreMatchesReference(t *testing.T) {
	fbtest.CompareSteppers(t, 50000, fb.New(), &refCore{})
}

func TestBenchPowerOn(t *testing.T) {
	b := fbtest.New()
	b.PowerOn(5)
	if b.Cycles() != 5 {
		t.Fatalf("expected 5 cycles after power-on, got %d", b.Cycles())
	}
	if v := b.Outputs().Value(); v != 0 {
		t.Fatalf("expected cleared value field, got %d", v)
	}
	if !b.In.RstN {
		t.Fatal("reset line still asserted after power-on")
	}
}

func TestWaitNewNumberTimeout(t *testing.T) {
	b := fbtest.New()
	b.PowerOn(5)
	b.Configure(fb.Config{Speed: 7}) // output disabled: no pulses
	if _, err := b.WaitNewNumber(50); err == nil {
		t.Fatal("expected a timeout error with the output disabled")
	}
}
