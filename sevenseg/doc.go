// Package sevenseg provides the segment byte format used by common-cathode
// 7-segment digits such as the ones on the LKM1638 board.
//
// Each digit is one byte. Bits 0-6 drive the segments a-g and bit 7 drives
// the decimal point:
//
//	  - a -
//	 |     |
//	 f     b
//	 |     |
//	  - g -
//	 |     |
//	 e     c
//	 |     |
//	  - d -   .dp
//
//	bit:  7  6  5  4  3  2  1  0
//	seg: dp  g  f  e  d  c  b  a
//
// This package provides:
//
// - Segments: the segment byte type with one constant per segment
// - Digit: a lookup table for the hexadecimal digits 0-F
// - Off, Minus, Degree and Celsius: glyphs outside the digit range
// - Render: a text rendering of a row of digits, for logs and simulators
//
// Example usage:
//
//	s := sevenseg.Digit(0x0A) // 'A'
//	s |= sevenseg.DP          // with decimal point
//	fmt.Print(sevenseg.Render([]sevenseg.Segments{s, sevenseg.Minus}))
package sevenseg
