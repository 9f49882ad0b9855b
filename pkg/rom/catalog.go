// Package rom holds the compiled-in catalog of loadable CHIP-8 programs.
// The catalog is read-only at runtime; entries are addressed by their index.
package rom

import "github.com/wdudokvanheel/gochip8/pkg/chip8"

// Entry is one loadable program. Program bytes are shared and must not be
// mutated by callers.
type Entry struct {
	Name    string
	Program []byte
	Quirks  chip8.Quirks
}

// Catalog returns the ordered list of built-in programs. Indices into the
// returned slice are the ids the control channel accepts, and they are
// stable across calls.
func Catalog() []Entry {
	return catalog
}

var catalog = []Entry{
	{Name: "Font Gallery", Program: fontGallery},
	{Name: "Maze", Program: maze},
	{Name: "Comet", Program: comet},
	{Name: "Keypad Echo", Program: keypadEcho},
}

// fontGallery draws the 16 built-in font glyphs in two rows of eight, then
// idles.
var fontGallery = []byte{
	0x00, 0xE0, // 0x200  CLS
	0x66, 0x00, // 0x202  LD V6, 0     ; digit
	0x6A, 0x00, // 0x204  LD VA, 0     ; x
	0x6B, 0x01, // 0x206  LD VB, 1     ; y
	0xF6, 0x29, // 0x208  LD F, V6
	0xDA, 0xB5, // 0x20A  DRW VA, VB, 5
	0x7A, 0x08, // 0x20C  ADD VA, 8
	0x76, 0x01, // 0x20E  ADD V6, 1
	0x3A, 0x40, // 0x210  SE VA, 64    ; end of row?
	0x12, 0x18, // 0x212  JP 0x218
	0x6A, 0x00, // 0x214  LD VA, 0
	0x7B, 0x08, // 0x216  ADD VB, 8
	0x36, 0x10, // 0x218  SE V6, 16    ; all glyphs drawn?
	0x12, 0x08, // 0x21A  JP 0x208
	0x12, 0x1C, // 0x21C  JP 0x21C     ; idle
}

// maze tiles the screen with randomly chosen diagonal sprites, the classic
// maze pattern demo.
var maze = []byte{
	0x60, 0x00, // 0x200  LD V0, 0     ; x
	0x61, 0x00, // 0x202  LD V1, 0     ; y
	0xA2, 0x22, // 0x204  LD I, 0x222  ; left diagonal
	0xC2, 0x01, // 0x206  RND V2, 1
	0x32, 0x01, // 0x208  SE V2, 1
	0xA2, 0x1E, // 0x20A  LD I, 0x21E  ; right diagonal
	0xD0, 0x14, // 0x20C  DRW V0, V1, 4
	0x70, 0x04, // 0x20E  ADD V0, 4
	0x30, 0x40, // 0x210  SE V0, 64
	0x12, 0x04, // 0x212  JP 0x204
	0x60, 0x00, // 0x214  LD V0, 0
	0x71, 0x04, // 0x216  ADD V1, 4
	0x31, 0x20, // 0x218  SE V1, 32
	0x12, 0x04, // 0x21A  JP 0x204
	0x12, 0x1C, // 0x21C  JP 0x21C     ; idle
	0x80, 0x40, 0x20, 0x10, // 0x21E  right diagonal sprite
	0x20, 0x40, 0x80, 0x10, // 0x222  left diagonal sprite
}

// comet flies a small sprite across the screen, paced by the delay timer
// and wrapping at the right edge.
var comet = []byte{
	0x00, 0xE0, // 0x200  CLS
	0xA2, 0x1A, // 0x202  LD I, 0x21A  ; sprite
	0x6A, 0x00, // 0x204  LD VA, 0     ; x
	0x6B, 0x0E, // 0x206  LD VB, 14    ; y
	0xDA, 0xB3, // 0x208  DRW VA, VB, 3
	0x6E, 0x03, // 0x20A  LD VE, 3
	0xFE, 0x15, // 0x20C  LD DT, VE
	0xFE, 0x07, // 0x20E  LD VE, DT    ; spin until the timer runs out
	0x3E, 0x00, // 0x210  SE VE, 0
	0x12, 0x0E, // 0x212  JP 0x20E
	0xDA, 0xB3, // 0x214  DRW VA, VB, 3 ; erase
	0x7A, 0x01, // 0x216  ADD VA, 1
	0x12, 0x08, // 0x218  JP 0x208
	0x20, 0x70, 0xF8, // 0x21A  sprite rows
}

// keypadEcho waits for a key press and draws its glyph in the middle of the
// screen, forever.
var keypadEcho = []byte{
	0x00, 0xE0, // 0x200  CLS
	0xF1, 0x0A, // 0x202  LD V1, K
	0xF1, 0x29, // 0x204  LD F, V1
	0x6A, 0x1E, // 0x206  LD VA, 30
	0x6B, 0x0D, // 0x208  LD VB, 13
	0xDA, 0xB5, // 0x20A  DRW VA, VB, 5
	0x12, 0x00, // 0x20C  JP 0x200
}
