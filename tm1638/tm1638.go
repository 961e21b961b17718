// Package tm1638 talks to a TM1638 LED and key scan controller over SPI.
//
// The TM1638 uses a three wire serial interface: STB acts as chip select,
// CLK as the clock and DIO carries data in both directions, least significant
// bit first. Wire DIO to both MOSI and MISO (MISO through a 1kΩ resistor) and
// open the port in half duplex mode.
//
// Many SPI controllers, the Raspberry Pi's among them, only shift MSB first,
// so Dev reverses the bits of every byte it sends and receives.
//
// Dev exposes the register level operations used by package lkm1638: write
// one display register, read the key scan bytes, and clear the display
// memory.
package tm1638

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// NumRegisters is the size of the display memory.
const NumRegisters = 16

const (
	cmdWriteAuto  = 0x40 // Data command: write, auto increment address
	cmdReadKeys   = 0x42 // Data command: read key scan data
	cmdWriteFixed = 0x44 // Data command: write, fixed address
	cmdDisplayOff = 0x80 // Display control: off
	cmdDisplayOn  = 0x88 // Display control: on, ORed with the pulse width
	cmdAddress    = 0xC0 // Address command, ORed with the register address

	// pulseWidth is the fixed pulse width used when the display is turned
	// on, out of 0..7.
	pulseWidth = 0x03

	// busSpeed leaves half a clock period, 2µs, between the last rising edge
	// of the read keys command and the first falling edge of the key data.
	// The chip needs at least 1µs.
	busSpeed = 250 * physic.KiloHertz
)

// Dev is a TM1638 on an SPI connection.
type Dev struct {
	c      conn.Conn
	halted bool
}

// NewSPI opens a TM1638 on p, turns the display on and clears it.
//
// The port runs at 250kHz, SPI mode 3, half duplex, 8 bit words.
func NewSPI(p spi.Port) (*Dev, error) {
	c, err := p.Connect(busSpeed, spi.Mode3|spi.HalfDuplex, 8)
	if err != nil {
		return nil, fmt.Errorf("tm1638: %w", err)
	}
	d := &Dev{c: c}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) init() error {
	if err := d.tx([]byte{cmdDisplayOn | pulseWidth}, nil); err != nil {
		return fmt.Errorf("tm1638: failed to turn display on: %w", err)
	}
	return d.Clear()
}

// WriteRegister writes value to display register addr, 0..15.
//
// Even addresses hold the segments of a digit, odd addresses the LED bits.
func (d *Dev) WriteRegister(addr, value byte) error {
	if d.halted {
		return errors.New("tm1638: halted")
	}
	if addr >= NumRegisters {
		return fmt.Errorf("tm1638: register 0x%02X out of range", addr)
	}
	if err := d.tx([]byte{cmdWriteFixed}, nil); err != nil {
		return err
	}
	return d.tx([]byte{cmdAddress | addr, value}, nil)
}

// KeyScan reads the four key scan bytes. The first byte read is the least
// significant byte of the result.
func (d *Dev) KeyScan() (uint32, error) {
	if d.halted {
		return 0, errors.New("tm1638: halted")
	}
	var r [4]byte
	if err := d.tx([]byte{cmdReadKeys}, r[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r[:]), nil
}

// Clear zeroes the whole display memory in one burst.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("tm1638: halted")
	}
	if err := d.tx([]byte{cmdWriteAuto}, nil); err != nil {
		return err
	}
	w := make([]byte, 1+NumRegisters)
	w[0] = cmdAddress
	return d.tx(w, nil)
}

// Halt turns the display off. The device does not accept further commands.
func (d *Dev) Halt() error {
	d.halted = true
	return d.tx([]byte{cmdDisplayOff}, nil)
}

// tx sends w and reads r, with the chip's LSB first bit order converted to and
// from the bus' MSB first order. w is modified.
func (d *Dev) tx(w, r []byte) error {
	reverse(w)
	if err := d.c.Tx(w, r); err != nil {
		return err
	}
	reverse(r)
	return nil
}

func reverse(b []byte) {
	for i := range b {
		b[i] = bits.Reverse8(b[i])
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("tm1638.Dev{%s}", d.c)
}
