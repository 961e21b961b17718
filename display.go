package lkm1638

import "periph.io/x/devices/v3/lkm1638/sevenseg"

// writeDigit pushes digit pos, combined with its decimal point, to the chip.
func (d *Dev) writeDigit(pos byte) error {
	if pos >= NumDigits {
		return nil
	}
	s := d.digits[pos]
	if d.dots&(1<<pos) != 0 {
		s |= sevenseg.DP
	}
	return d.c.WriteRegister(swapPos(pos)<<1, byte(s))
}

// SetSegmentsDigit shows the raw segment pattern s on digit pos. The decimal
// point bit of s is ignored; use DotOn and DotOff for it. Out of range
// positions are ignored.
func (d *Dev) SetSegmentsDigit(pos byte, s sevenseg.Segments) error {
	if pos >= NumDigits {
		return nil
	}
	d.digits[pos] = s &^ sevenseg.DP
	return d.writeDigit(pos)
}

// SetDigit shows the hexadecimal digit v on digit pos. Values of 16 and above
// blank the digit.
func (d *Dev) SetDigit(pos, v byte) error {
	return d.SetSegmentsDigit(pos, sevenseg.Digit(v))
}

// Digit returns the segments last written to digit pos, without the decimal
// point.
func (d *Dev) Digit(pos byte) sevenseg.Segments {
	if pos >= NumDigits {
		return sevenseg.Off
	}
	return d.digits[pos]
}

// Refresh rewrites all digits from the driver state.
func (d *Dev) Refresh() error {
	for pos := byte(0); pos < NumDigits; pos++ {
		if err := d.writeDigit(pos); err != nil {
			return err
		}
	}
	return nil
}

// DotOn lights the decimal point of digit pos.
func (d *Dev) DotOn(pos byte) error {
	if pos >= NumDigits {
		return nil
	}
	d.dots |= 1 << pos
	return d.writeDigit(pos)
}

// DotOff turns off the decimal point of digit pos.
func (d *Dev) DotOff(pos byte) error {
	if pos >= NumDigits {
		return nil
	}
	d.dots &^= 1 << pos
	return d.writeDigit(pos)
}

// SetDots replaces all decimal points, bit n for digit n, and rewrites every
// digit.
func (d *Dev) SetDots(mask byte) error {
	d.dots = mask
	return d.Refresh()
}

// Dots returns the decimal point mask.
func (d *Dev) Dots() byte {
	return d.dots
}

// SetPrintPos moves the print cursor to digit pos. Out of range positions are
// ignored.
func (d *Dev) SetPrintPos(pos byte) {
	if pos < NumDigits {
		d.pos = pos
	}
}

// PrintPos returns the print cursor.
func (d *Dev) PrintPos() byte {
	return d.pos
}

// Clear blanks all digits, decimal points and LEDs. The print cursor is kept.
func (d *Dev) Clear() error {
	d.digits = [NumDigits]sevenseg.Segments{}
	d.dots = 0
	return d.c.Clear()
}
