// Package chip8 implements the CHIP-8 virtual machine: memory, registers,
// the opcode engine, the keypad and the framebuffer. It contains no timing
// or I/O; the emulator package drives it step by step and owns the clock.
package chip8

import "math/rand"

// State is the execution state of the opcode engine.
type State uint8

const (
	// StateRunning means the next Step fetches and executes an instruction.
	StateRunning State = iota

	// StateAwaitingKey means a key-wait instruction suspended instruction
	// progression. Timer ticks and command intake are unaffected.
	StateAwaitingKey

	// StateHalted means a fault stopped the machine. Only a reset through
	// LoadROM clears it.
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateAwaitingKey:
		return "awaiting key"
	case StateHalted:
		return "halted"
	}
	return "unknown"
}

// VM is the complete machine state. It must have a single owner; the
// emulator package mutates it exclusively from its drive loop.
type VM struct {
	Memory [MemorySize]byte

	// V0-VF. VF doubles as the carry, borrow and collision flag: the
	// flag-producing instructions write it after reading their operands, so
	// an operation that targets VF sees the pre-operation value.
	V [NumRegisters]uint8

	// I is the address register.
	I uint16

	// PC is the program counter.
	PC uint16

	Stack [StackDepth]uint16
	SP    uint8

	// Delay and Sound count down at a fixed 60Hz, clamped at zero. Only
	// TickTimers decrements them, never instruction execution.
	Delay uint8
	Sound uint8

	Keys    Keypad
	Display Display
	Quirks  Quirks

	state   State
	waitReg uint8
	fault   error

	// randByte supplies the random instruction. Tests swap it out.
	randByte func() uint8
}

// New returns a machine that has been reset but holds no program. Stepping
// it executes the zeroed memory at 0x200 and faults; load a ROM first.
func New(quirks Quirks) *VM {
	vm := &VM{
		Quirks:   quirks,
		randByte: func() uint8 { return uint8(rand.Intn(256)) },
	}
	vm.Reset()
	return vm
}

// Reset zeroes all registers, timers, the stack, the framebuffer and the
// keypad, writes the font table into low memory and sets PC to the program
// start. Quirks survive a reset; they belong to the loaded ROM.
func (vm *VM) Reset() {
	vm.Memory = [MemorySize]byte{}
	copy(vm.Memory[fontStart:], fontTable[:])
	vm.V = [NumRegisters]uint8{}
	vm.I = 0
	vm.PC = ProgramStart
	vm.Stack = [StackDepth]uint16{}
	vm.SP = 0
	vm.Delay = 0
	vm.Sound = 0
	vm.Keys.reset()
	vm.Display.Clear()
	vm.state = StateRunning
	vm.waitReg = 0
	vm.fault = nil
}

// LoadROM performs a full reset and copies rom into memory at the program
// start. A rom larger than the program space is rejected with a *LoadError
// and the machine keeps its previous state unchanged.
func (vm *VM) LoadROM(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return &LoadError{Reason: "rom is larger than program space"}
	}
	vm.Reset()
	copy(vm.Memory[ProgramStart:], rom)
	return nil
}

// State returns the current execution state.
func (vm *VM) State() State {
	return vm.state
}

// Fault returns the error that halted the machine, or nil.
func (vm *VM) Fault() error {
	return vm.fault
}

// halt stops the machine with the given fault and returns it.
func (vm *VM) halt(err error) error {
	vm.state = StateHalted
	vm.fault = err
	return err
}

// Step executes at most one instruction. While halted it does nothing and
// while awaiting a key it only checks the keypad latch. A fault transitions
// the machine to StateHalted and is returned; the process is never aborted.
func (vm *VM) Step() error {
	switch vm.state {
	case StateHalted:
		return nil
	case StateAwaitingKey:
		if key, ok := vm.Keys.takeLatched(); ok {
			vm.V[vm.waitReg] = key
			vm.PC += 2
			vm.state = StateRunning
		}
		return nil
	}

	if int(vm.PC)+1 >= MemorySize {
		return vm.halt(&MemoryError{Addr: uint32(vm.PC)})
	}
	word := uint16(vm.Memory[vm.PC])<<8 | uint16(vm.Memory[vm.PC+1])
	op := decode(word)

	// PC already points past the instruction during execution. Jumps and
	// calls overwrite it, skips add another 2, and the key-wait rolls it
	// back so the resume lands after the instruction.
	vm.PC += 2

	switch op.family() {
	case 0x0:
		switch op.word {
		case 0x00E0:
			vm.Display.Clear()
		case 0x00EE:
			return vm.execReturn(op)
		default:
			return vm.haltDecode(op)
		}
	case 0x1:
		vm.PC = op.nnn
	case 0x2:
		return vm.execCall(op)
	case 0x3:
		vm.skipIf(vm.V[op.x] == op.nn)
	case 0x4:
		vm.skipIf(vm.V[op.x] != op.nn)
	case 0x5:
		if op.n != 0 {
			return vm.haltDecode(op)
		}
		vm.skipIf(vm.V[op.x] == vm.V[op.y])
	case 0x6:
		vm.V[op.x] = op.nn
	case 0x7:
		vm.V[op.x] += op.nn // 8-bit wraparound, no flag
	case 0x8:
		return vm.execALU(op)
	case 0x9:
		if op.n != 0 {
			return vm.haltDecode(op)
		}
		vm.skipIf(vm.V[op.x] != vm.V[op.y])
	case 0xA:
		vm.I = op.nnn
	case 0xB:
		vm.PC = op.nnn + uint16(vm.V[0])
	case 0xC:
		vm.V[op.x] = vm.randByte() & op.nn
	case 0xD:
		return vm.execDraw(op)
	case 0xE:
		switch op.nn {
		case 0x9E:
			vm.skipIf(vm.Keys.Pressed(vm.V[op.x] & 0xF))
		case 0xA1:
			vm.skipIf(!vm.Keys.Pressed(vm.V[op.x] & 0xF))
		default:
			return vm.haltDecode(op)
		}
	case 0xF:
		return vm.execMisc(op)
	}

	return nil
}

func (vm *VM) haltDecode(op opcode) error {
	return vm.halt(&DecodeError{Addr: vm.PC - 2, Word: op.word})
}

// skipIf advances PC past the next instruction when cond holds.
func (vm *VM) skipIf(cond bool) {
	if cond {
		vm.PC += 2
	}
}

// execCall pushes the address of the following instruction and jumps.
func (vm *VM) execCall(op opcode) error {
	if vm.SP >= StackDepth {
		return vm.halt(&StackError{Op: "call", Addr: vm.PC - 2})
	}
	vm.Stack[vm.SP] = vm.PC
	vm.SP++
	vm.PC = op.nnn
	return nil
}

func (vm *VM) execReturn(op opcode) error {
	if vm.SP == 0 {
		return vm.halt(&StackError{Op: "return", Addr: vm.PC - 2})
	}
	vm.SP--
	vm.PC = vm.Stack[vm.SP]
	return nil
}

// execALU handles the 8XYN register-to-register family. Every flag write to
// VF happens after both operands have been read.
func (vm *VM) execALU(op opcode) error {
	vx, vy := vm.V[op.x], vm.V[op.y]

	switch op.n {
	case 0x0:
		vm.V[op.x] = vy
	case 0x1:
		vm.V[op.x] = vx | vy
	case 0x2:
		vm.V[op.x] = vx & vy
	case 0x3:
		vm.V[op.x] = vx ^ vy
	case 0x4:
		sum := uint16(vx) + uint16(vy)
		vm.V[op.x] = uint8(sum)
		vm.V[0xF] = uint8(sum >> 8) // carry
	case 0x5:
		vm.V[op.x] = vx - vy
		vm.V[0xF] = boolFlag(vx >= vy) // no borrow
	case 0x6:
		if vm.Quirks.Shift {
			vx = vy
		}
		vm.V[op.x] = vx >> 1
		vm.V[0xF] = vx & 0x01 // shifted-out bit
	case 0x7:
		vm.V[op.x] = vy - vx
		vm.V[0xF] = boolFlag(vy >= vx) // no borrow
	case 0xE:
		if vm.Quirks.Shift {
			vx = vy
		}
		vm.V[op.x] = vx << 1
		vm.V[0xF] = vx >> 7 // shifted-out bit
	default:
		return vm.haltDecode(op)
	}
	return nil
}

// execDraw renders an n-byte-tall, 8-pixel-wide sprite stored at I into the
// framebuffer at (VX mod 64, VY mod 32), XOR-combining pixels. Columns and
// rows that fall off the grid wrap around; nothing is clipped. VF is set to
// 1 when any lit pixel is switched off.
func (vm *VM) execDraw(op opcode) error {
	if int(vm.I)+int(op.n) > MemorySize {
		return vm.halt(&MemoryError{Addr: uint32(vm.I) + uint32(op.n) - 1})
	}

	px := int(vm.V[op.x]) % DisplayWidth
	py := int(vm.V[op.y]) % DisplayHeight

	collision := false
	for row := 0; row < int(op.n); row++ {
		sprite := vm.Memory[int(vm.I)+row]
		for bit := 0; bit < 8; bit++ {
			if sprite&(0x80>>bit) == 0 {
				continue
			}
			cx := (px + bit) % DisplayWidth
			cy := (py + row) % DisplayHeight
			if vm.Display.flip(cx, cy) {
				collision = true
			}
		}
	}
	vm.V[0xF] = boolFlag(collision)
	return nil
}

// execMisc handles the FXNN timer, input, addressing and memory family.
func (vm *VM) execMisc(op opcode) error {
	switch op.nn {
	case 0x07:
		vm.V[op.x] = vm.Delay
	case 0x0A:
		// Suspend instruction progression until a fresh key press. Roll PC
		// back so the resume in Step advances past this instruction.
		vm.PC -= 2
		vm.waitReg = op.x
		vm.state = StateAwaitingKey
		vm.Keys.clearLatch()
	case 0x15:
		vm.Delay = vm.V[op.x]
	case 0x18:
		vm.Sound = vm.V[op.x]
	case 0x1E:
		vm.I += uint16(vm.V[op.x]) // no overflow flag
	case 0x29:
		vm.I = fontStart + uint16(vm.V[op.x]&0xF)*fontGlyphSize
	case 0x33:
		if int(vm.I)+2 >= MemorySize {
			return vm.halt(&MemoryError{Addr: uint32(vm.I) + 2})
		}
		value := vm.V[op.x]
		vm.Memory[vm.I] = value / 100
		vm.Memory[vm.I+1] = value / 10 % 10
		vm.Memory[vm.I+2] = value % 10
	case 0x55:
		if int(vm.I)+int(op.x) >= MemorySize {
			return vm.halt(&MemoryError{Addr: uint32(vm.I) + uint32(op.x)})
		}
		for i := uint16(0); i <= uint16(op.x); i++ {
			vm.Memory[vm.I+i] = vm.V[i]
		}
		if vm.Quirks.LoadStore {
			vm.I += uint16(op.x) + 1
		}
	case 0x65:
		if int(vm.I)+int(op.x) >= MemorySize {
			return vm.halt(&MemoryError{Addr: uint32(vm.I) + uint32(op.x)})
		}
		for i := uint16(0); i <= uint16(op.x); i++ {
			vm.V[i] = vm.Memory[vm.I+i]
		}
		if vm.Quirks.LoadStore {
			vm.I += uint16(op.x) + 1
		}
	default:
		return vm.haltDecode(op)
	}
	return nil
}

// TickTimers applies one 60Hz timer tick, decrementing the delay and sound
// timers and clamping them at zero. Ticks apply in every state; timer
// suspension and instruction suspension are independent.
func (vm *VM) TickTimers() {
	if vm.Delay > 0 {
		vm.Delay--
	}
	if vm.Sound > 0 {
		vm.Sound--
	}
}

// SoundActive reports whether the buzzer should currently sound.
func (vm *VM) SoundActive() bool {
	return vm.Sound > 0
}

func boolFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
