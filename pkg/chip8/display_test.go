package chip8

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// drawSprite loads a machine whose single instruction draws the given sprite
// at (x, y) from memory address 0x400.
func drawSprite(t *testing.T, x, y uint8, sprite ...byte) *VM {
	t.Helper()
	vm := newVM(t, 0xDAB0|uint16(len(sprite)))
	vm.V[0xA] = x
	vm.V[0xB] = y
	vm.I = 0x400
	copy(vm.Memory[0x400:], sprite)
	return vm
}

func TestClearScreen(t *testing.T) {
	vm := newVM(t, 0x00E0)
	vm.Display.flip(10, 10)
	vm.Display.flip(63, 31)
	step(t, vm)

	var blank [DisplayCells]uint32
	if diff := cmp.Diff(blank, vm.Display.Lanes()); diff != "" {
		t.Errorf("framebuffer mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawSprite(t *testing.T) {
	vm := drawSprite(t, 4, 2, 0b10100000)
	step(t, vm)

	if !vm.Display.Lit(4, 2) || !vm.Display.Lit(6, 2) {
		t.Error("expected pixels (4,2) and (6,2) lit")
	}
	if vm.Display.Lit(5, 2) {
		t.Error("expected pixel (5,2) unlit")
	}
	if vm.V[0xF] != 0 {
		t.Errorf("VF: expected 0 on a clean draw, got %d", vm.V[0xF])
	}
}

// Drawing the same sprite twice erases it and reports the collision.
func TestDrawXORInvolution(t *testing.T) {
	vm := drawSprite(t, 10, 5, 0xFF, 0x81, 0xFF)
	step(t, vm)
	before := vm.Display.Lanes()

	vm.PC = ProgramStart
	step(t, vm)

	if vm.V[0xF] != 1 {
		t.Errorf("VF: expected collision flag 1, got %d", vm.V[0xF])
	}
	var blank [DisplayCells]uint32
	if diff := cmp.Diff(blank, vm.Display.Lanes()); diff != "" {
		t.Errorf("framebuffer not erased (-want +got):\n%s", diff)
	}
	if before == blank {
		t.Error("expected first draw to light pixels")
	}
}

func TestDrawWrapsHorizontally(t *testing.T) {
	vm := drawSprite(t, 60, 3, 0xFF)
	step(t, vm)

	for _, x := range []int{60, 61, 62, 63, 0, 1, 2, 3} {
		if !vm.Display.Lit(x, 3) {
			t.Errorf("expected pixel (%d,3) lit", x)
		}
	}
	if vm.Display.Lit(4, 3) {
		t.Error("expected pixel (4,3) unlit")
	}
}

func TestDrawWrapsVertically(t *testing.T) {
	vm := drawSprite(t, 0, 30, 0x80, 0x80, 0x80, 0x80)
	step(t, vm)

	for _, y := range []int{30, 31, 0, 1} {
		if !vm.Display.Lit(0, y) {
			t.Errorf("expected pixel (0,%d) lit", y)
		}
	}
}

// Coordinates are taken mod 64x32 before the sprite is placed.
func TestDrawOriginWraps(t *testing.T) {
	vm := drawSprite(t, 64+4, 32+2, 0x80)
	step(t, vm)
	if !vm.Display.Lit(4, 2) {
		t.Error("expected pixel (4,2) lit")
	}
}

func TestDrawPastTopOfMemory(t *testing.T) {
	vm := newVM(t, 0xDAB4)
	vm.I = 0xFFD // 4 sprite rows run past the top
	if err := vm.Step(); err == nil {
		t.Fatal("expected memory fault")
	}
	if vm.State() != StateHalted {
		t.Errorf("expected halted state, got %v", vm.State())
	}
}

func TestLanesLayout(t *testing.T) {
	var d Display
	d.flip(2, 1)

	lanes := d.Lanes()
	if lanes[1*DisplayWidth+2] != 1 {
		t.Error("expected lane 66 set for pixel (2,1)")
	}
	for i, lane := range lanes {
		if i != 1*DisplayWidth+2 && lane != 0 {
			t.Errorf("lane %d: expected 0, got %d", i, lane)
		}
	}
}

func TestFlipReportsCollision(t *testing.T) {
	var d Display
	if d.flip(7, 7) {
		t.Error("first flip must not report a collision")
	}
	if !d.flip(7, 7) {
		t.Error("second flip must report a collision")
	}
	if d.Lit(7, 7) {
		t.Error("expected pixel off after two flips")
	}
}
