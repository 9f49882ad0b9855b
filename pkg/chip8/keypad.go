package chip8

// Keypad tracks the 16 keys of the hex pad. Key state is written only by
// external press and release events delivered through the control channel;
// the opcode engine reads it.
//
// Presses additionally set a one-shot latch so that the key-wait instruction
// resumes only on a key that went down after it started waiting, not on a
// key that was already held.
type Keypad struct {
	down    [NumKeys]bool
	latched uint8
	pending bool
}

// Press marks key as held. A transition from released to held arms the
// key-wait latch. Keys outside 0x0-0xF are ignored.
func (k *Keypad) Press(key uint8) {
	if key >= NumKeys {
		return
	}
	if !k.down[key] {
		k.down[key] = true
		k.latched = key
		k.pending = true
	}
}

// Release marks key as no longer held. Keys outside 0x0-0xF are ignored.
func (k *Keypad) Release(key uint8) {
	if key >= NumKeys {
		return
	}
	k.down[key] = false
}

// Pressed reports whether key is currently held.
func (k *Keypad) Pressed(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	return k.down[key]
}

// takeLatched consumes the newly-pressed latch, returning the key that
// armed it.
func (k *Keypad) takeLatched() (uint8, bool) {
	if !k.pending {
		return 0, false
	}
	k.pending = false
	return k.latched, true
}

// clearLatch disarms the newly-pressed latch. The key-wait instruction
// calls this when it starts waiting, so keys pressed before it are not
// mistaken for the awaited one.
func (k *Keypad) clearLatch() {
	k.pending = false
}

func (k *Keypad) reset() {
	*k = Keypad{}
}
