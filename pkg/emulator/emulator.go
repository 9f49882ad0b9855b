// Package emulator owns the real-time layer around the CHIP-8 machine: the
// instruction and timer clocks, and the command channel through which an
// external surface loads ROMs and delivers key events.
//
// The Emulator must be driven from a single context (one goroutine calling
// Advance once per frame). That driver is the sole mutator of machine state;
// everything arriving from other goroutines crosses over as a message on the
// command channel and is applied between instruction steps.
package emulator

import (
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"

	"github.com/wdudokvanheel/gochip8/pkg/chip8"
	"github.com/wdudokvanheel/gochip8/pkg/rom"
)

// timerInterval is the fixed cadence of the delay and sound timers.
const timerInterval = time.Second / 60

// commandBuffer bounds the pending command queue. Input events beyond it in
// a single frame are dropped with a warning rather than blocking the sender.
const commandBuffer = 64

// Config holds the tunable parameters of the emulator.
type Config struct {
	// ClockHz is the instruction rate. The timers always run at 60Hz
	// independent of it.
	ClockHz float64

	// Trace logs every executed instruction at debug level. Only useful
	// with the headless runner.
	Trace bool
}

// DefaultConfig returns the default configuration: a 700Hz instruction
// clock, which makes most games feel right.
func DefaultConfig() Config {
	return Config{ClockHz: 700}
}

type commandKind uint8

const (
	cmdLoadROM commandKind = iota
	cmdPress
	cmdRelease
)

type command struct {
	kind commandKind
	key  uint8
	rom  int
}

// Emulator drives a single chip8.VM against wall-clock time.
type Emulator struct {
	cfg     Config
	logger  *log.Logger
	catalog []rom.Entry

	vm       *chip8.VM
	commands chan command

	started    bool
	loaded     bool
	currentROM int

	// fractional cycle and timer remainders carried across Advance calls,
	// so long-run rates stay exact even when frame deltas are irregular
	cycleAcc float64
	timerAcc time.Duration
}

// New returns a stopped emulator over the given catalog. No ROM is loaded;
// the machine stays idle until LoadROM and Start.
func New(logger *log.Logger, catalog []rom.Entry, cfg Config) *Emulator {
	if cfg.ClockHz <= 0 {
		cfg.ClockHz = DefaultConfig().ClockHz
	}
	return &Emulator{
		cfg:      cfg,
		logger:   logger,
		catalog:  catalog,
		vm:       chip8.New(chip8.Quirks{}),
		commands: make(chan command, commandBuffer),
	}
}

// Start begins the drive loop: after it, Advance calls execute instructions.
// Calling it again is a no-op.
func (e *Emulator) Start() {
	if e.started {
		return
	}
	e.started = true
	e.logger.Info("emulator started",
		log.String("clock", time.Duration(float64(time.Second)/e.cfg.ClockHz).String()))
}

// ListROMs returns the display names of the catalog in id order.
func (e *Emulator) ListROMs() []string {
	names := make([]string, len(e.catalog))
	for i, entry := range e.catalog {
		names[i] = entry.Name
	}
	return names
}

// LoadROM requests a full reset and load of the catalog entry id. The
// request is validated synchronously; the reset itself is applied by the
// driver between steps, discarding any halted or suspended state.
func (e *Emulator) LoadROM(id int) error {
	if id < 0 || id >= len(e.catalog) {
		return &chip8.LoadError{Reason: "no such rom id"}
	}
	if len(e.catalog[id].Program) > chip8.MaxProgramSize {
		return &chip8.LoadError{Reason: "rom is larger than program space"}
	}
	e.send(command{kind: cmdLoadROM, rom: id})
	return nil
}

// Press delivers a key press event. Keys outside 0x0-0xF are ignored.
func (e *Emulator) Press(key uint8) {
	if key >= chip8.NumKeys {
		return
	}
	e.send(command{kind: cmdPress, key: key})
}

// Release delivers a key release event. Keys outside 0x0-0xF are ignored.
func (e *Emulator) Release(key uint8) {
	if key >= chip8.NumKeys {
		return
	}
	e.send(command{kind: cmdRelease, key: key})
}

func (e *Emulator) send(cmd command) {
	select {
	case e.commands <- cmd:
	default:
		e.logger.Warn("command queue full, dropping command")
	}
}

// Advance runs the machine for one frame worth of wall-clock time. Pending
// commands are applied first, then the elapsed time is converted into timer
// ticks and instruction cycles, with fractional remainders carried to the
// next call. It must only be called from the drive context.
func (e *Emulator) Advance(elapsed time.Duration) {
	if !e.started {
		return
	}

	e.drainCommands()

	e.timerAcc += elapsed
	for e.timerAcc >= timerInterval {
		e.timerAcc -= timerInterval
		e.vm.TickTimers()
	}

	if !e.loaded {
		return
	}

	e.cycleAcc += elapsed.Seconds() * e.cfg.ClockHz
	cycles := int(e.cycleAcc)
	e.cycleAcc -= float64(cycles)

	for i := 0; i < cycles; i++ {
		if e.vm.State() == chip8.StateHalted {
			break
		}
		if e.cfg.Trace && e.vm.State() == chip8.StateRunning && int(e.vm.PC)+1 < chip8.MemorySize {
			pc := e.vm.PC
			word := uint16(e.vm.Memory[pc])<<8 | uint16(e.vm.Memory[pc+1])
			e.logger.Debug("step",
				log.String("pc", fmt.Sprintf("0x%03X", pc)),
				log.String("op", chip8.Disassemble(word)))
		}
		if err := e.vm.Step(); err != nil {
			e.logger.Error("machine halted", log.Err(err))
			break
		}
	}
}

func (e *Emulator) drainCommands() {
	for {
		select {
		case cmd := <-e.commands:
			e.apply(cmd)
		default:
			return
		}
	}
}

func (e *Emulator) apply(cmd command) {
	switch cmd.kind {
	case cmdLoadROM:
		entry := e.catalog[cmd.rom]
		e.vm.Quirks = entry.Quirks
		if err := e.vm.LoadROM(entry.Program); err != nil {
			// validated in LoadROM; a failure here means the catalog changed
			e.logger.Error("rom load failed", log.Err(err))
			return
		}
		e.currentROM = cmd.rom
		e.loaded = true
		e.cycleAcc = 0
		e.logger.Info("rom loaded",
			log.String("name", entry.Name),
			log.Int("size", len(entry.Program)))
	case cmdPress:
		e.vm.Keys.Press(cmd.key)
	case cmdRelease:
		e.vm.Keys.Release(cmd.key)
	}
}

// Lanes returns the framebuffer as 2048 integer lanes, nonzero meaning lit.
// The snapshot is a copy taken between completed steps; it must be requested
// from the drive context.
func (e *Emulator) Lanes() [chip8.DisplayCells]uint32 {
	return e.vm.Display.Lanes()
}

// SoundActive reports whether the buzzer should sound this frame.
func (e *Emulator) SoundActive() bool {
	return e.vm.SoundActive()
}

// State returns the machine's execution state.
func (e *Emulator) State() chip8.State {
	return e.vm.State()
}

// LastFault returns the fault that halted the machine, or nil. It is
// cleared by the next successful ROM load.
func (e *Emulator) LastFault() error {
	return e.vm.Fault()
}

// CurrentROM returns the catalog id of the loaded ROM and whether one has
// been loaded at all.
func (e *Emulator) CurrentROM() (int, bool) {
	return e.currentROM, e.loaded
}

