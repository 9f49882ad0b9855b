package chip8

const (
	// MemorySize is the total addressable memory of the machine.
	MemorySize = 4096

	// ProgramStart is the address programs are loaded at and where execution
	// begins after a reset. The region below it belongs to the interpreter
	// and holds the font table.
	ProgramStart = 0x200

	// MaxProgramSize is the largest ROM that fits between ProgramStart and
	// the top of memory.
	MaxProgramSize = MemorySize - ProgramStart

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16
)

const (
	// DisplayWidth and DisplayHeight are the dimensions of the monochrome
	// display in pixels.
	DisplayWidth  = 64
	DisplayHeight = 32

	// DisplayCells is the total number of pixels in the display.
	DisplayCells = DisplayWidth * DisplayHeight
)

const (
	// NumKeys is the number of keys on the hex keypad, 0x0 through 0xF.
	NumKeys = 16

	// NumRegisters is the number of general purpose V registers.
	NumRegisters = 16
)

const (
	// fontStart is the address the font table is written to on reset.
	fontStart = 0x000

	// fontGlyphSize is the height in bytes of one font glyph.
	fontGlyphSize = 5
)

// fontTable holds the built-in 4x5 sprites for the hex digits 0-F, one glyph
// per digit, five bytes each. It lives in the interpreter area of memory.
//
// Example, the digit "0":
//
//	+------------------------+
//	| **** | 11110000 | 0xF0 |
//	| *  * | 10010000 | 0x90 |
//	| *  * | 10010000 | 0x90 |
//	| *  * | 10010000 | 0x90 |
//	| **** | 11110000 | 0xF0 |
//	+------------------------+
var fontTable = [NumKeys * fontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
