package chip8

import "fmt"

var aluMnemonics = map[uint8]string{
	0x0: "LD", 0x1: "OR", 0x2: "AND", 0x3: "XOR",
	0x4: "ADD", 0x5: "SUB", 0x6: "SHR", 0x7: "SUBN", 0xE: "SHL",
}

// Disassemble renders one instruction word as assembly. Words that match no
// opcode pattern come back as a raw data directive.
func Disassemble(word uint16) string {
	op := decode(word)

	switch op.family() {
	case 0x0:
		switch op.word {
		case 0x00E0:
			return "CLS"
		case 0x00EE:
			return "RET"
		}
	case 0x1:
		return fmt.Sprintf("JP 0x%03X", op.nnn)
	case 0x2:
		return fmt.Sprintf("CALL 0x%03X", op.nnn)
	case 0x3:
		return fmt.Sprintf("SE V%X, 0x%02X", op.x, op.nn)
	case 0x4:
		return fmt.Sprintf("SNE V%X, 0x%02X", op.x, op.nn)
	case 0x5:
		if op.n == 0 {
			return fmt.Sprintf("SE V%X, V%X", op.x, op.y)
		}
	case 0x6:
		return fmt.Sprintf("LD V%X, 0x%02X", op.x, op.nn)
	case 0x7:
		return fmt.Sprintf("ADD V%X, 0x%02X", op.x, op.nn)
	case 0x8:
		if m, ok := aluMnemonics[op.n]; ok {
			return fmt.Sprintf("%s V%X, V%X", m, op.x, op.y)
		}
	case 0x9:
		if op.n == 0 {
			return fmt.Sprintf("SNE V%X, V%X", op.x, op.y)
		}
	case 0xA:
		return fmt.Sprintf("LD I, 0x%03X", op.nnn)
	case 0xB:
		return fmt.Sprintf("JP V0, 0x%03X", op.nnn)
	case 0xC:
		return fmt.Sprintf("RND V%X, 0x%02X", op.x, op.nn)
	case 0xD:
		return fmt.Sprintf("DRW V%X, V%X, %d", op.x, op.y, op.n)
	case 0xE:
		switch op.nn {
		case 0x9E:
			return fmt.Sprintf("SKP V%X", op.x)
		case 0xA1:
			return fmt.Sprintf("SKNP V%X", op.x)
		}
	case 0xF:
		switch op.nn {
		case 0x07:
			return fmt.Sprintf("LD V%X, DT", op.x)
		case 0x0A:
			return fmt.Sprintf("LD V%X, K", op.x)
		case 0x15:
			return fmt.Sprintf("LD DT, V%X", op.x)
		case 0x18:
			return fmt.Sprintf("LD ST, V%X", op.x)
		case 0x1E:
			return fmt.Sprintf("ADD I, V%X", op.x)
		case 0x29:
			return fmt.Sprintf("LD F, V%X", op.x)
		case 0x33:
			return fmt.Sprintf("LD B, V%X", op.x)
		case 0x55:
			return fmt.Sprintf("LD [I], V%X", op.x)
		case 0x65:
			return fmt.Sprintf("LD V%X, [I]", op.x)
		}
	}

	return fmt.Sprintf(".word 0x%04X", word)
}
