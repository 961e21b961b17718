package sevenseg

import "strings"

// Segments is the segment pattern of one 7-segment digit.
// Bit order: DP.G.F.E.D.C.B.A (MSB to LSB).
type Segments byte

// Individual segments.
const (
	SegA Segments = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	DP
)

// Glyphs outside the 0-F digit range.
const (
	Off     Segments = 0b00000000
	Minus   Segments = 0b01000000
	Degree  Segments = 0b01100011
	Celsius Segments = 0b00111001
)

var digits = [16]Segments{
	0b00111111, // 0
	0b00000110, // 1
	0b01011011, // 2
	0b01001111, // 3
	0b01100110, // 4
	0b01101101, // 5
	0b01111101, // 6
	0b00000111, // 7
	0b01111111, // 8
	0b01101111, // 9
	0b01110111, // A
	0b01111100, // b
	0b00111001, // C
	0b01011110, // d
	0b01111001, // E
	0b01110001, // F
}

// Digit returns the segment pattern of the hexadecimal digit v.
// Values of 16 and above return Off.
func Digit(v byte) Segments {
	if int(v) >= len(digits) {
		return Off
	}
	return digits[v]
}

// Has reports whether all segments in mask are lit.
func (s Segments) Has(mask Segments) bool {
	return s&mask == mask
}

// String renders a single digit as three lines of text.
func (s Segments) String() string {
	return Render([]Segments{s})
}

// Render draws digits left to right as three lines of text, one 4-column
// cell per digit:
//
//	 _       _
//	|_|   | |_
//	|_|.  |  _|
func Render(digits []Segments) string {
	var rows [3]strings.Builder
	for _, s := range digits {
		rows[0].WriteByte(' ')
		rows[0].WriteByte(pick(s, SegA, '_'))
		rows[0].WriteString("  ")

		rows[1].WriteByte(pick(s, SegF, '|'))
		rows[1].WriteByte(pick(s, SegG, '_'))
		rows[1].WriteByte(pick(s, SegB, '|'))
		rows[1].WriteByte(' ')

		rows[2].WriteByte(pick(s, SegE, '|'))
		rows[2].WriteByte(pick(s, SegD, '_'))
		rows[2].WriteByte(pick(s, SegC, '|'))
		rows[2].WriteByte(pick(s, DP, '.'))
	}
	return rows[0].String() + "\n" + rows[1].String() + "\n" + rows[2].String() + "\n"
}

func pick(s, seg Segments, c byte) byte {
	if s.Has(seg) {
		return c
	}
	return ' '
}
