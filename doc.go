// Package lkm1638 controls a JY-LKM1638 board.
//
// The JY-LKM1638 is a small panel built around a TM1638 LED driver and key
// scanner. It carries eight 7-segment digits with decimal points, eight push
// buttons and eight dual color (red/green) LEDs.
//
// # Board Characteristics
//
// - 8 common-cathode 7-segment digits, each with a decimal point
// - 8 red/green LEDs above the digits
// - 8 push buttons below the digits, all on the K3 key-scan line
// - Digits, LEDs and buttons are wired right to left: physical column 0 is
// the leftmost digit
//
// This package numbers everything from the right: digit 0, LED 0 and button 0
// are the rightmost ones, so that numbers grow to the left from digit 0.
//
// # Hardware Connection
//
// The TM1638 uses a 3-wire serial bus. It can be driven by an SPI port in
// half-duplex mode, see package tm1638:
//
//	Board Pin → System Pin
//	VCC       → 5V (3.3V works with a dimmer display)
//	GND       → GND
//	STB       → SPI Chip Select
//	CLK       → SPI Clock (SCLK)
//	DIO       → SPI Data (MOSI, and MISO through 1kΩ; half-duplex)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/lkm1638"
//		"periph.io/x/devices/v3/lkm1638/tm1638"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		p, _ := spireg.Open("")
//		defer p.Close()
//
//		chip, _ := tm1638.NewSPI(p)
//		defer chip.Halt()
//
//		dev, _ := lkm1638.New(chip, nil)
//
//		// "  -42" on the rightmost digits
//		dev.PrintInt16(-42)
//
//		// Light LED 0 green while button 0 is pressed
//		keys, _ := dev.Buttons()
//		if keys&1 != 0 {
//			dev.SetColorLED(0, lkm1638.LEDGreen)
//		}
//	}
//
// # Printing Numbers
//
// The print functions write a number into a field of digits that starts at
// the print cursor (SetPrintPos, digit 0 by default) and extends to the left.
// The number is right aligned in the field and leading zeros are blanked,
// except for the first pad digits:
//
//	dev.PrintUint(7, lkm1638.Dec, 4, 1)  // "   7"
//	dev.PrintUint(7, lkm1638.Dec, 4, 3)  // " 007"
//	dev.PrintUint(0xBEEF, lkm1638.Hex, 4, 1)  // "bEEF"
//
// Signed values keep one digit of the field for the sign, placed next to the
// most significant digit.
//
// Printing never fails because of its arguments. A value that does not fit
// the field, or would not fit between the cursor and the leftmost digit, is
// shown as a field of minus signs:
//
//	dev.PrintUint(1000, lkm1638.Dec, 3, 1)  // "---"
//
// Positions and LED indexes out of range are ignored, and digit values of 16
// or more are shown blank. Errors only come from the chip bus.
//
// # Display State
//
// The TM1638 display registers are write-only, so Dev keeps the digits and
// decimal points it has written. Changing a decimal point rewrites only its
// digit; Refresh rewrites all of them from that state.
//
// # Testing Without Hardware
//
// Package lkm1638test provides an in-memory Chip that records register
// writes and can simulate button presses.
package lkm1638
