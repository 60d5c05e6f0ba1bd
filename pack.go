// SPDX-FileCopyrightText: © 2024 Tiny Tapeout
// SPDX-License-Identifier: Apache-2.0

package fiboblink

// Output word A bit assignments. Bits 7:4 carry the low nibble of the
// current value.
const (
	OutLED    = 1 << 0 // LED level
	OutTick   = 1 << 1 // divider phase, exposed for timing observability
	OutActive = 1 << 2 // sequence engine running
	OutPulse  = 1 << 3 // new term committed this cycle
)

// Outputs is the output view sampled after a clock edge: word A (uo_out)
// carries the status flags and the low value nibble, word B (uio_out)
// the upper value byte.
type Outputs struct {
	UO  uint8
	UIO uint8
}

func (o Outputs) LED() bool            { return o.UO&OutLED != 0 }
func (o Outputs) Tick() bool           { return o.UO&OutTick != 0 }
func (o Outputs) SequenceActive() bool { return o.UO&OutActive != 0 }
func (o Outputs) NewNumber() bool      { return o.UO&OutPulse != 0 }

// Value reassembles the 12-bit value field from the two words.
func (o Outputs) Value() uint16 {
	return uint16(o.UIO)<<4 | uint16(o.UO>>4)
}

// pack encodes register state into the two output words. With the output
// disabled all status flags are forced low; the value bits still show the
// held register.
func pack(enabled, led, tick, pulse bool, value uint16) Outputs {
	var o Outputs
	if enabled {
		o.UO |= OutActive
		if led {
			o.UO |= OutLED
		}
		if tick {
			o.UO |= OutTick
		}
		if pulse {
			o.UO |= OutPulse
		}
	}
	o.UO |= uint8(value&0x0F) << 4
	o.UIO = uint8(value >> 4)
	return o
}
