package fiboblink_test

import (
	"testing"

	fb "github.com/pathanrehman/tt-um-fibo-blink"
)

func TestOutputsValue(t *testing.T) {
	o := fb.Outputs{UO: 0xC0, UIO: 0xAB}
	if got := o.Value(); got != 0xABC {
		t.Fatalf("Value() = %#03x, expected 0xabc", got)
	}
	if o.LED() || o.Tick() || o.SequenceActive() || o.NewNumber() {
		t.Fatal("status flags leaked into the value nibble")
	}
}

func TestOutputsFlags(t *testing.T) {
	o := fb.Outputs{UO: fb.OutLED | fb.OutActive}
	if !o.LED() || !o.SequenceActive() {
		t.Fatal("expected led and sequence_active set")
	}
	if o.Tick() || o.NewNumber() {
		t.Fatal("expected tick and new_number_pulse clear")
	}
	if o.Value() != 0 {
		t.Fatalf("flags must not reach the value field, got %d", o.Value())
	}
}
