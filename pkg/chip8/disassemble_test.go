package chip8

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1300, "JP 0x300"},
		{0x2204, "CALL 0x204"},
		{0x3A07, "SE VA, 0x07"},
		{0x4A07, "SNE VA, 0x07"},
		{0x5AB0, "SE VA, VB"},
		{0x6A07, "LD VA, 0x07"},
		{0x7A02, "ADD VA, 0x02"},
		{0x8AB0, "LD VA, VB"},
		{0x8AB4, "ADD VA, VB"},
		{0x8AB6, "SHR VA, VB"},
		{0x8ABE, "SHL VA, VB"},
		{0x9AB0, "SNE VA, VB"},
		{0xA2F0, "LD I, 0x2F0"},
		{0xB300, "JP V0, 0x300"},
		{0xCA0F, "RND VA, 0x0F"},
		{0xD125, "DRW V1, V2, 5"},
		{0xEA9E, "SKP VA"},
		{0xEAA1, "SKNP VA"},
		{0xFA07, "LD VA, DT"},
		{0xFA0A, "LD VA, K"},
		{0xFA15, "LD DT, VA"},
		{0xFA18, "LD ST, VA"},
		{0xFA1E, "ADD I, VA"},
		{0xFA29, "LD F, VA"},
		{0xFA33, "LD B, VA"},
		{0xFA55, "LD [I], VA"},
		{0xFA65, "LD VA, [I]"},
		{0x0123, ".word 0x0123"},
		{0x5AB1, ".word 0x5AB1"},
		{0x8AB8, ".word 0x8AB8"},
		{0xFA99, ".word 0xFA99"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Disassemble(tt.word), fmt.Sprintf("word 0x%04X", tt.word))
	}
}
