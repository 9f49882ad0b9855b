package main

import (
	"flag"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"

	"github.com/wdudokvanheel/gochip8/pkg/chip8"
	"github.com/wdudokvanheel/gochip8/pkg/emulator"
	"github.com/wdudokvanheel/gochip8/pkg/rom"
)

const (
	pixelScale   = 10
	screenWidth  = chip8.DisplayWidth * pixelScale
	screenHeight = chip8.DisplayHeight * pixelScale

	// maxFrameDelta caps the wall-clock delta fed to the scheduler, so a
	// stalled window does not burst thousands of cycles on resume.
	maxFrameDelta = 250 * time.Millisecond
)

// keyMap maps the left-hand block of a modern keyboard onto the 4x4 hex pad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keyMap = map[ebiten.Key]uint8{
	ebiten.KeyDigit1: 0x1, ebiten.KeyDigit2: 0x2, ebiten.KeyDigit3: 0x3, ebiten.KeyDigit4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

type Game struct {
	emu   *emulator.Emulator
	names []string

	frame  *ebiten.Image // reused 64x32 canvas
	pixels []byte

	lastTick time.Time
	menu     bool
	selected int
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.menu = !g.menu
	}

	if g.menu {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && g.selected > 0 {
			g.selected--
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.selected < len(g.names)-1 {
			g.selected++
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := g.emu.LoadROM(g.selected); err == nil {
				g.menu = false
			}
		}
	} else {
		for hostKey, pad := range keyMap {
			if inpututil.IsKeyJustPressed(hostKey) {
				g.emu.Press(pad)
			}
			if inpututil.IsKeyJustReleased(hostKey) {
				g.emu.Release(pad)
			}
		}
	}

	now := time.Now()
	if g.lastTick.IsZero() {
		g.lastTick = now
	}
	elapsed := now.Sub(g.lastTick)
	g.lastTick = now
	if elapsed > maxFrameDelta {
		elapsed = maxFrameDelta
	}
	g.emu.Advance(elapsed)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
		g.pixels = make([]byte, chip8.DisplayCells*4)
	}

	lanes := g.emu.Lanes()
	for i, lane := range lanes {
		var v byte
		if lane != 0 {
			v = 0xFF
		}
		g.pixels[i*4+0] = v
		g.pixels[i*4+1] = v
		g.pixels[i*4+2] = v
		g.pixels[i*4+3] = 0xFF
	}
	g.frame.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pixelScale, pixelScale)
	screen.DrawImage(g.frame, op)

	if g.menu {
		g.drawMenu(screen)
	}
	g.drawStatus(screen)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	face := basicfont.Face7x13
	text.Draw(screen, "Select ROM (Enter to load, Tab to close)", face, 16, 24, color.White)
	for i, name := range g.names {
		line := "  " + name
		if i == g.selected {
			line = "> " + name
		}
		text.Draw(screen, line, face, 16, 48+i*16, color.White)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := g.emu.State().String()
	if err := g.emu.LastFault(); err != nil {
		status = fmt.Sprintf("%s: %v", status, err)
	}
	if g.emu.SoundActive() {
		status += "  [sound]"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, screenHeight-16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	clockHz := flag.Float64("hz", emulator.DefaultConfig().ClockHz, "instruction clock rate")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg := log.DefaultConfig()
	if *debug {
		cfg.Level = log.DebugLevel
	}
	logger := log.NewWithConfig(cfg)

	emu := emulator.New(logger, rom.Catalog(), emulator.Config{ClockHz: *clockHz})
	emu.Start()
	if err := emu.LoadROM(0); err != nil {
		logger.Fatal(err.Error())
	}

	game := &Game{
		emu:   emu,
		names: emu.ListROMs(),
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("CHIP-8")
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop failed", log.Err(err))
	}
}
