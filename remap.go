package lkm1638

// The board wires digits, LEDs and keys in the reverse order of their
// logical numbering. Callers bound-check indices before remapping.

// swapPos maps a logical digit position (0 = rightmost) to its hardware column.
func swapPos(pos byte) byte {
	return NumDigits - 1 - pos
}

// swapLED maps a logical LED index (0 = rightmost) to its hardware LED pair.
func swapLED(led byte) byte {
	return NumLEDs - 1 - led
}

// swapBits reverses the bit order of b.
func swapBits(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		r = r<<1 | b&1
		b >>= 1
	}
	return r
}
