// The console runner drives the emulator without a window. It is mostly
// useful for trying out catalog ROMs and for tracing instruction execution;
// the framebuffer is printed as ASCII when the run ends.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"

	"github.com/wdudokvanheel/gochip8/pkg/chip8"
	"github.com/wdudokvanheel/gochip8/pkg/emulator"
	"github.com/wdudokvanheel/gochip8/pkg/rom"
)

const frameInterval = time.Second / 60

func main() {
	list := flag.Bool("list", false, "list the rom catalog and exit")
	romID := flag.Int("rom", 0, "catalog id of the rom to run")
	seconds := flag.Float64("seconds", 3, "how long to run, 0 runs until interrupted")
	clockHz := flag.Float64("hz", emulator.DefaultConfig().ClockHz, "instruction clock rate")
	trace := flag.Bool("trace", false, "log every executed instruction")
	flag.Parse()

	cfg := log.DefaultConfig()
	if *trace {
		cfg.Level = log.DebugLevel
	}
	logger := log.NewWithConfig(cfg)

	catalog := rom.Catalog()
	if *list {
		for i, entry := range catalog {
			fmt.Printf("%2d  %s\n", i, entry.Name)
		}
		return
	}

	emu := emulator.New(logger, catalog, emulator.Config{ClockHz: *clockHz, Trace: *trace})
	emu.Start()
	if err := emu.LoadROM(*romID); err != nil {
		logger.Fatal(err.Error())
	}

	ctx := app.Context()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	deadline := time.Time{}
	if *seconds > 0 {
		deadline = time.Now().Add(time.Duration(*seconds * float64(time.Second)))
	}

	last := time.Now()
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case now := <-ticker.C:
			emu.Advance(now.Sub(last))
			last = now
			if emu.State() == chip8.StateHalted {
				break loop
			}
			if !deadline.IsZero() && now.After(deadline) {
				break loop
			}
		}
	}

	fmt.Print(renderLanes(emu.Lanes()))
	if err := emu.LastFault(); err != nil {
		logger.Error("machine halted", log.Err(err))
		os.Exit(1)
	}
}

// renderLanes draws the framebuffer as ASCII, two characters per pixel so
// the aspect ratio roughly survives a terminal font.
func renderLanes(lanes [chip8.DisplayCells]uint32) string {
	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", chip8.DisplayWidth*2) + "+\n")
	for y := 0; y < chip8.DisplayHeight; y++ {
		b.WriteString("|")
		for x := 0; x < chip8.DisplayWidth; x++ {
			if lanes[y*chip8.DisplayWidth+x] != 0 {
				b.WriteString("##")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("+" + strings.Repeat("-", chip8.DisplayWidth*2) + "+\n")
	return b.String()
}
