package chip8

// Quirks selects between the two common behavior variants for the handful of
// instructions that diverged between the original COSMAC VIP interpreter and
// later implementations. Games from different eras expect different
// combinations, so the ROM catalog carries a Quirks value per entry.
type Quirks struct {
	// Shift makes 8XY6 and 8XYE copy VY into VX before shifting, the
	// original interpreter's behavior. When false the shift operates on VX
	// alone.
	Shift bool

	// LoadStore makes FX55 and FX65 leave I incremented past the last
	// register slot written, the original interpreter's behavior. When false
	// I is unchanged.
	LoadStore bool
}
