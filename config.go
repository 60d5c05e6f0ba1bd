// SPDX-FileCopyrightText: © 2024 Tiny Tapeout
// SPDX-License-Identifier: Apache-2.0

package fiboblink

// A Sequence selects one of the four integer sequences the core can
// generate.
type Sequence uint8

const (
	Fibonacci Sequence = iota
	Prime
	PerfectSquare
	Triangular
)

func (s Sequence) String() string {
	switch s {
	case Fibonacci:
		return "Fibonacci"
	case Prime:
		return "Prime"
	case PerfectSquare:
		return "PerfectSquare"
	case Triangular:
		return "Triangular"
	}
	return "Unknown"
}

// FirstTerm returns the first term of the sequence.
func (s Sequence) FirstTerm() uint16 {
	if s == Prime {
		return 2
	}
	return 1
}

// ui_in bit layout.
const (
	cfgSelectMask = 0x03   // bits 1:0 - sequence select
	cfgSpeedShift = 2      // bits 4:2 - speed code
	cfgSpeedMask  = 0x07
	cfgSeqReset   = 1 << 5 // bit 5 - sequence reset
	cfgEnable     = 1 << 6 // bit 6 - output enable
)

// A Config is the control word decoded from the 8-bit input configuration
// word ui_in.
type Config struct {
	OutputEnabled bool
	SequenceReset bool
	Speed         uint8 // 3-bit speed code, 0 slowest, 7 fastest
	Select        Sequence
}

// DecodeConfig decodes an input configuration word. It is a pure function
// of the word: all 256 combinations are valid and reserved bits (bit 7)
// are ignored.
func DecodeConfig(word uint8) Config {
	return Config{
		OutputEnabled: word&cfgEnable != 0,
		SequenceReset: word&cfgSeqReset != 0,
		Speed:         word >> cfgSpeedShift & cfgSpeedMask,
		Select:        Sequence(word & cfgSelectMask),
	}
}

// EncodeConfig builds the input configuration word for c. Decoding the
// result yields c again.
func EncodeConfig(c Config) uint8 {
	w := uint8(c.Select)&cfgSelectMask | (c.Speed&cfgSpeedMask)<<cfgSpeedShift
	if c.SequenceReset {
		w |= cfgSeqReset
	}
	if c.OutputEnabled {
		w |= cfgEnable
	}
	return w
}
