// SPDX-FileCopyrightText: © 2024 Tiny Tapeout
// SPDX-License-Identifier: Apache-2.0

// Command fiboblink steps the FiboBlink core model through a stimulus
// scenario and logs LED transitions and committed sequence terms.
package main

import (
	"flag"
	"log"

	fb "github.com/pathanrehman/tt-um-fibo-blink"
	"github.com/pathanrehman/tt-um-fibo-blink/internal/scenario"
)

func main() {
	file := flag.String("scenario", "", "YAML stimulus scenario (default: built-in demo)")
	quiet := flag.Bool("quiet", false, "log committed terms only")
	flag.Parse()

	sc := scenario.Default()
	if *file != "" {
		var err error
		if sc, err = scenario.Load(*file); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("scenario %q: %d steps, %d cycles", sc.Name, len(sc.Steps), sc.TotalCycles())
	run(sc, *quiet)
}

func run(sc *scenario.Scenario, quiet bool) {
	core := fb.New()
	in := fb.Inputs{Ena: true}
	cycle := 0
	var prev fb.Outputs

	for _, st := range sc.Steps {
		if st.Name != "" {
			cfg := fb.DecodeConfig(st.Word)
			log.Printf("step %q: ui_in=%#02x (%s, speed %d, period %d)",
				st.Name, st.Word, cfg.Select, cfg.Speed, fb.Period(cfg.Speed))
		}
		in.UI = st.Word
		in.RstN = !st.Reset
		for i := 0; i < st.Cycles; i++ {
			out := core.Step(in)
			cycle++
			if out.NewNumber() {
				log.Printf("cycle %6d: term %d", cycle, out.Value())
			}
			if !quiet && out.LED() != prev.LED() {
				log.Printf("cycle %6d: led %v", cycle, out.LED())
			}
			prev = out
		}
	}
}
