package lkm1638

import (
	"errors"
	"fmt"

	"periph.io/x/devices/v3/lkm1638/sevenseg"
)

// Board geometry.
const (
	NumDigits = 8
	NumLEDs   = 8
)

// Chip is the register interface of the TM1638 controller the board is built
// around. tm1638.Dev implements it on real hardware and lkm1638test.Chip
// implements it in memory.
type Chip interface {
	// WriteRegister writes value to display register addr (0-15). Digits
	// live at even addresses and LED pairs at odd addresses.
	WriteRegister(addr, value byte) error
	// KeyScan returns the four key-scan bytes, first byte in the low bits.
	KeyScan() (uint32, error)
	// Clear blanks every display register, LEDs included.
	Clear() error
}

// Color is the color of one of the dual color LEDs.
type Color byte

// LED colors. Red and green together is not a valid setting.
const (
	LEDOff   Color = 0
	LEDRed   Color = 1
	LEDGreen Color = 2
)

func (c Color) String() string {
	switch c {
	case LEDOff:
		return "off"
	case LEDRed:
		return "red"
	case LEDGreen:
		return "green"
	default:
		return fmt.Sprintf("Color(%d)", byte(c))
	}
}

// Opts is the configuration for the board.
type Opts struct {
	// KeepContents skips clearing the board in New. The driver state starts
	// blank either way; without the clear the digits keep showing whatever
	// the chip held until they are written.
	KeepContents bool
}

// Dev is the device handle for the LKM1638 board.
//
// Dev keeps the only copy of what the digits should show, since the chip
// display registers cannot be read back. It is not safe for concurrent use.
type Dev struct {
	c Chip

	// Display state
	digits [NumDigits]sevenseg.Segments // Without DP
	dots   byte                         // Bit n = decimal point of digit n
	pos    byte                         // Print cursor
}

// New returns a board handle talking to c.
//
// opts can be nil to use defaults.
func New(c Chip, opts *Opts) (*Dev, error) {
	if c == nil {
		return nil, errors.New("lkm1638: chip is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	d := &Dev{c: c}
	if !opts.KeepContents {
		if err := d.c.Clear(); err != nil {
			return nil, fmt.Errorf("lkm1638: failed to clear board: %w", err)
		}
	}
	return d, nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("lkm1638.Dev{%T}", d.c)
}

// Buttons returns the button state, bit n set when button n is pressed.
// Button 0 is the rightmost one.
func (d *Dev) Buttons() (byte, error) {
	raw, err := d.c.KeyScan()
	if err != nil {
		return 0, err
	}
	return decodeKeys(raw), nil
}

// decodeKeys packs the key-scan bytes into one byte per button.
//
// The buttons are wired to K3 only, so each scan byte carries two of them:
//
//	BIT:  7   6   5   4   3   2   1   0
//	                  S5              S1   byte 1
//	                  S6              S2   byte 2
//	                  S7              S3   byte 3
//	                  S8              S4   byte 4
//
// Shifting byte i right by 7*i moves its bit 0 to bit i and its bit 4 to bit
// i+4. S1 is the leftmost button, hence the final bit reversal.
func decodeKeys(raw uint32) byte {
	var keys byte
	for i := 0; i < 4; i++ {
		keys |= byte(raw >> (i * 7))
	}
	return swapBits(keys)
}

// SetColorLED sets LED led to color c. LED 0 is the rightmost one.
// Out of range LEDs are ignored.
func (d *Dev) SetColorLED(led byte, c Color) error {
	if led >= NumLEDs {
		return nil
	}
	// LED pairs sit at the odd addresses 0x01, 0x03, ... 0x0F, left to right.
	// Value bit 0 drives red (SEG9), bit 1 green (SEG10).
	return d.c.WriteRegister(0x01+swapLED(led)<<1, byte(c)&0x03)
}

// ColorLEDsOn sets every LED selected in mask to color c.
func (d *Dev) ColorLEDsOn(mask byte, c Color) error {
	for i := byte(0); i < NumLEDs; i++ {
		if mask&(1<<i) == 0 {
			continue
		}
		if err := d.SetColorLED(i, c); err != nil {
			return err
		}
	}
	return nil
}

// ColorLEDsOff turns off every LED selected in mask.
func (d *Dev) ColorLEDsOff(mask byte) error {
	return d.ColorLEDsOn(mask, LEDOff)
}
