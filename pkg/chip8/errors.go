package chip8

import "fmt"

// A LoadError is returned when a ROM cannot be loaded, either because the
// requested catalog id does not exist or because the image does not fit in
// program memory. The machine keeps its previous state when one is returned.
type LoadError struct {
	Reason string
}

func (e *LoadError) Error() string {
	return "load rom: " + e.Reason
}

// A DecodeError halts the machine when an instruction word matches no known
// opcode pattern.
type DecodeError struct {
	Addr uint16
	Word uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%04X at 0x%03X", e.Word, e.Addr)
}

// A StackError halts the machine on a call with a full stack or a return
// with an empty one.
type StackError struct {
	Op   string // "call" or "return"
	Addr uint16
}

func (e *StackError) Error() string {
	if e.Op == "return" {
		return fmt.Sprintf("stack underflow on return at 0x%03X", e.Addr)
	}
	return fmt.Sprintf("stack overflow on call at 0x%03X", e.Addr)
}

// A MemoryError halts the machine when an instruction computes an address
// outside the 4K address space.
type MemoryError struct {
	Addr uint32
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("memory access out of bounds at 0x%X", e.Addr)
}
