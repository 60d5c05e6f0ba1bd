// SPDX-FileCopyrightText: © 2024 Tiny Tapeout
// SPDX-License-Identifier: Apache-2.0

package fiboblink

// Inputs is the input view of the core for one clock edge. The clock
// itself is implicit: each call to Core.Step is one rising edge.
type Inputs struct {
	UI   uint8 // configuration word, layout in DecodeConfig
	Ena  bool  // top-level enable
	RstN bool  // active-low reset
}

// A Core models the FiboBlink synchronous logic core. It owns all
// registered state; Step is the only mutator. The zero value is a core
// held in reset.
type Core struct {
	div divider
	eng engine
	bl  blinker
	out Outputs
}

// New returns a core in its reset state.
func New() *Core {
	c := &Core{}
	c.reset()
	return c
}

func (c *Core) reset() {
	c.div.reset()
	c.eng.reset()
	c.bl.reset()
	c.out = pack(false, false, false, false, c.eng.cur)
}

// Step advances the core by one rising clock edge and returns the output
// words as sampled after that edge.
//
// rst_n low overrides everything and restores the initial register state
// for that cycle. ena low freezes all registers and presents the disabled
// output pattern, identical to being held in reset except that the
// sequence and divider state are retained.
//
// Within a cycle the order is: decode the configuration, advance the
// divider, advance the sequence engine on tick (or apply the sequence
// reset override), then recompute the outputs from the just-updated
// registers. Every next-state value is computed from registers committed
// on the previous edge.
func (c *Core) Step(in Inputs) Outputs {
	if !in.RstN {
		c.reset()
		return c.out
	}
	if !in.Ena {
		c.out = pack(false, false, false, false, c.eng.cur)
		return c.out
	}

	cfg := DecodeConfig(in.UI)
	c.div.step(cfg.OutputEnabled, cfg.Speed)

	committed := false
	switch {
	case cfg.SequenceReset:
		// overrides tick while asserted
		c.eng.reset()
	case c.div.tick && cfg.OutputEnabled:
		c.eng.advance(cfg.Select)
		committed = true
	}
	c.bl.step(c.div.tick, committed)

	c.out = pack(cfg.OutputEnabled, c.bl.led, c.div.tick, c.bl.pulse, c.eng.cur)
	return c.out
}

// Outputs returns the output words committed on the last edge.
func (c *Core) Outputs() Outputs { return c.out }
