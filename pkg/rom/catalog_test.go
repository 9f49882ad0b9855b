package rom

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/wdudokvanheel/gochip8/pkg/chip8"
)

func TestCatalogStableOrder(t *testing.T) {
	expected := []string{"Font Gallery", "Maze", "Comet", "Keypad Echo"}

	entries := Catalog()
	assert.Equal(t, len(expected), len(entries))
	for i, name := range expected {
		assert.Equal(t, name, entries[i].Name)
	}
}

func TestCatalogEntriesLoad(t *testing.T) {
	for _, entry := range Catalog() {
		assert.True(t, len(entry.Program) > 0, entry.Name)
		assert.True(t, len(entry.Program) <= chip8.MaxProgramSize, entry.Name)

		vm := chip8.New(entry.Quirks)
		assert.NoError(t, vm.LoadROM(entry.Program), entry.Name)
	}
}

// Every built-in program has to survive a long run without faulting; the
// expected end states are an idle loop, a timer spin or a key wait.
func TestCatalogEntriesRunWithoutFault(t *testing.T) {
	for _, entry := range Catalog() {
		t.Run(entry.Name, func(t *testing.T) {
			vm := chip8.New(entry.Quirks)
			assert.NoError(t, vm.LoadROM(entry.Program))

			for i := 0; i < 5000; i++ {
				assert.NoError(t, vm.Step())
				if i%8 == 0 {
					vm.TickTimers()
				}
			}
			assert.True(t, vm.State() != chip8.StateHalted)
		})
	}
}

func TestFontGalleryDrawsAllGlyphs(t *testing.T) {
	vm := chip8.New(chip8.Quirks{})
	assert.NoError(t, vm.LoadROM(Catalog()[0].Program))

	for i := 0; i < 1000; i++ {
		assert.NoError(t, vm.Step())
	}

	// both rows carry pixels once all sixteen glyphs are drawn
	top, bottom := false, false
	for x := 0; x < chip8.DisplayWidth; x++ {
		for y := 0; y < 8; y++ {
			if vm.Display.Lit(x, y) {
				top = true
			}
			if vm.Display.Lit(x, y+8) {
				bottom = true
			}
		}
	}
	assert.True(t, top)
	assert.True(t, bottom)
}
