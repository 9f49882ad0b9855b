package chip8

// Display is the 64x32 monochrome framebuffer. Cells are stored row-major,
// index y*64+x. Only the draw and clear instructions mutate it; the renderer
// reads it through Lanes snapshots taken between instruction steps.
type Display struct {
	cells [DisplayCells]bool
}

// Clear switches every pixel off.
func (d *Display) Clear() {
	d.cells = [DisplayCells]bool{}
}

// Lit reports whether the pixel at (x, y) is on. Coordinates outside the
// grid report false.
func (d *Display) Lit(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return d.cells[y*DisplayWidth+x]
}

// flip XORs the pixel at (x, y) and reports whether a previously lit pixel
// was switched off, which the draw instruction records as a collision.
// Callers pass coordinates already wrapped into the grid.
func (d *Display) flip(x, y int) bool {
	idx := y*DisplayWidth + x
	collision := d.cells[idx]
	d.cells[idx] = !d.cells[idx]
	return collision
}

// Lanes returns the framebuffer as 2048 integer lanes, nonzero meaning lit,
// in the row-major order a GPU-style uniform buffer expects. The returned
// array is a copy.
func (d *Display) Lanes() [DisplayCells]uint32 {
	var lanes [DisplayCells]uint32
	for i, lit := range d.cells {
		if lit {
			lanes[i] = 1
		}
	}
	return lanes
}
