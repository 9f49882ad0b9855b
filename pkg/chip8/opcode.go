package chip8

// opcode is one decoded 16-bit instruction word. The sub-fields overlap; an
// instruction family uses whichever combination it needs.
type opcode struct {
	word uint16 // the full instruction word
	x    uint8  // second nibble, a V register index
	y    uint8  // third nibble, a V register index
	n    uint8  // lowest nibble
	nn   uint8  // lowest byte
	nnn  uint16 // lowest 12 bits, an address
}

// family returns the top nibble, which selects the opcode family.
func (op opcode) family() uint8 {
	return uint8(op.word >> 12)
}

func decode(word uint16) opcode {
	return opcode{
		word: word,
		x:    uint8(word >> 8 & 0xF),
		y:    uint8(word >> 4 & 0xF),
		n:    uint8(word & 0xF),
		nn:   uint8(word & 0xFF),
		nnn:  word & 0xFFF,
	}
}
