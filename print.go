package lkm1638

import "periph.io/x/devices/v3/lkm1638/sevenseg"

// Common radixes for the print functions.
const (
	Bin byte = 2
	Dec byte = 10
	Hex byte = 16
)

// The print functions write a number right aligned into a field of maxDigits
// digits that starts at the print cursor and grows to the left. A value that
// does not fit the field, or would run past the leftmost digit, is shown as
// a field of minus signs instead.

// PrintUint8 prints v in decimal in a 3 digit field.
func (d *Dev) PrintUint8(v uint8) error {
	return d.PrintUint(uint32(v), Dec, 3, 1)
}

// PrintUint16 prints v in decimal in a 5 digit field.
func (d *Dev) PrintUint16(v uint16) error {
	return d.PrintUint(uint32(v), Dec, 5, 1)
}

// PrintUint32 prints v in decimal in an 8 digit field.
func (d *Dev) PrintUint32(v uint32) error {
	return d.PrintUint(v, Dec, 8, 1)
}

// PrintInt8 prints v in decimal in a 4 digit field, sign included.
func (d *Dev) PrintInt8(v int8) error {
	return d.PrintInt(int32(v), Dec, 4)
}

// PrintInt16 prints v in decimal in a 6 digit field, sign included.
func (d *Dev) PrintInt16(v int16) error {
	return d.PrintInt(int32(v), Dec, 6)
}

// PrintInt32 prints v in decimal in an 8 digit field, sign included.
func (d *Dev) PrintInt32(v int32) error {
	return d.PrintInt(v, Dec, 8)
}

// PrintUint prints v in base radix in a field of maxDigits digits.
//
// At least pad digits are shown, with leading zeros if needed. The remaining
// leading digits of the field are blanked.
func (d *Dev) PrintUint(v uint32, radix, maxDigits, pad byte) error {
	if radix < 2 {
		return d.overflow(maxDigits)
	}
	n := numDigits(v, radix)
	if !d.fits(n, maxDigits) {
		return d.overflow(maxDigits)
	}
	return d.writeValue(v, radix, maxDigits, pad)
}

// PrintInt prints v in base radix in a field of maxDigits digits. One digit
// of the field holds the sign, directly left of the most significant digit.
func (d *Dev) PrintInt(v int32, radix, maxDigits byte) error {
	if radix < 2 {
		return d.overflow(maxDigits)
	}
	// Widen before negating so that math.MinInt32 keeps its magnitude.
	mag := int64(v)
	negative := mag < 0
	if negative {
		mag = -mag
	}
	n := numDigits(uint32(mag), radix) + 1
	if !d.fits(n, maxDigits) {
		return d.overflow(maxDigits)
	}
	if err := d.writeValue(uint32(mag), radix, maxDigits, 1); err != nil {
		return err
	}
	sign := sevenseg.Off
	if negative {
		sign = sevenseg.Minus
	}
	return d.SetSegmentsDigit(d.pos+n-1, sign)
}

// fits reports whether a value of n digits fits a field of maxDigits at the
// cursor.
func (d *Dev) fits(n, maxDigits byte) bool {
	return n <= maxDigits && int(d.pos)+int(n) <= NumDigits
}

// writeValue writes maxDigits digits of v from the cursor leftwards, stopping
// at the leftmost digit.
func (d *Dev) writeValue(v uint32, radix, maxDigits, pad byte) error {
	r := uint32(radix)
	pos := d.pos
	for i := byte(0); i < maxDigits && pos < NumDigits; i++ {
		var err error
		if v == 0 && i >= pad {
			err = d.SetSegmentsDigit(pos, sevenseg.Off)
		} else {
			err = d.SetDigit(pos, byte(v%r))
		}
		if err != nil {
			return err
		}
		pos++
		v /= r
	}
	return nil
}

// overflow fills a field of n digits at the cursor with minus signs.
func (d *Dev) overflow(n byte) error {
	for pos := int(d.pos); pos < int(d.pos)+int(n) && pos < NumDigits; pos++ {
		if err := d.SetSegmentsDigit(byte(pos), sevenseg.Minus); err != nil {
			return err
		}
	}
	return nil
}

// numDigits returns the number of base radix digits of v, at least 1. The
// count stops at NumDigits+1, which is enough to tell that v does not fit
// the display.
func numDigits(v uint32, radix byte) byte {
	r := uint32(radix)
	n := byte(1)
	for ; n <= NumDigits; n++ {
		v /= r
		if v == 0 {
			break
		}
	}
	return n
}
