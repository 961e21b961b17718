// Package lkm1638test implements an in-memory LKM1638 board for tests and
// simulators.
//
// Chip stores the TM1638 display registers the way the board wires them, so
// Digit and LED report what a person would see on the panel.
package lkm1638test

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/devices/v3/lkm1638/sevenseg"
)

// NumRegisters is the number of TM1638 display registers.
const NumRegisters = 16

// Write is one register write.
type Write struct {
	Addr  byte
	Value byte
}

func (w Write) String() string {
	return fmt.Sprintf("[%02X]=%02X", w.Addr, w.Value)
}

// Chip is a fake TM1638 wired like an LKM1638 board.
//
// All fields may be set or inspected directly by tests; hold the lock when
// another goroutine uses the Chip.
type Chip struct {
	sync.Mutex
	Regs   [NumRegisters]byte
	Writes []Write // Every WriteRegister call, in order
	Clears int     // Number of Clear calls
	Scan   uint32  // Raw value returned by KeyScan
	Err    error   // When set, every operation fails with Err
}

// WriteRegister implements lkm1638.Chip.
func (c *Chip) WriteRegister(addr, value byte) error {
	c.Lock()
	defer c.Unlock()
	if c.Err != nil {
		return c.Err
	}
	if addr >= NumRegisters {
		return errors.New("lkm1638test: register address out of range")
	}
	c.Regs[addr] = value
	c.Writes = append(c.Writes, Write{Addr: addr, Value: value})
	return nil
}

// KeyScan implements lkm1638.Chip.
func (c *Chip) KeyScan() (uint32, error) {
	c.Lock()
	defer c.Unlock()
	if c.Err != nil {
		return 0, c.Err
	}
	return c.Scan, nil
}

// Clear implements lkm1638.Chip.
func (c *Chip) Clear() error {
	c.Lock()
	defer c.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.Regs = [NumRegisters]byte{}
	c.Clears++
	return nil
}

// Reset forgets the recorded writes and clears.
func (c *Chip) Reset() {
	c.Lock()
	defer c.Unlock()
	c.Writes = nil
	c.Clears = 0
}

// Digit returns the segments shown on digit pos, counted from the right,
// decimal point included.
func (c *Chip) Digit(pos int) sevenseg.Segments {
	c.Lock()
	defer c.Unlock()
	return c.digit(pos)
}

func (c *Chip) digit(pos int) sevenseg.Segments {
	if pos < 0 || pos > 7 {
		return sevenseg.Off
	}
	return sevenseg.Segments(c.Regs[(7-pos)*2])
}

// LED returns the raw color bits of LED led, counted from the right: 1 for
// red, 2 for green.
func (c *Chip) LED(led int) byte {
	c.Lock()
	defer c.Unlock()
	if led < 0 || led > 7 {
		return 0
	}
	return c.Regs[1+(7-led)*2] & 0x03
}

// Press sets the key scan to report the buttons in mask as pressed, bit n for
// button n counted from the right. Press(0) releases every button.
func (c *Chip) Press(mask byte) {
	c.Lock()
	defer c.Unlock()
	c.Scan = EncodeButtons(mask)
}

// EncodeButtons returns the raw key scan of an LKM1638 with the buttons in
// mask pressed.
//
// Buttons 7 to 4 (S1 to S4, left half) are bit 0 of scan bytes 1 to 4 and
// buttons 3 to 0 (S5 to S8) are bit 4 of the same bytes.
func EncodeButtons(mask byte) uint32 {
	var raw uint32
	for b := 0; b < 8; b++ {
		if mask&(1<<b) == 0 {
			continue
		}
		s := 7 - b // 0 for S1
		bit := 8*(s%4) + 4*(s/4)
		raw |= 1 << bit
	}
	return raw
}

// String draws the digits as text, leftmost digit first.
func (c *Chip) String() string {
	c.Lock()
	defer c.Unlock()
	var d [8]sevenseg.Segments
	for i := range d {
		d[i] = c.digit(7 - i)
	}
	return sevenseg.Render(d[:])
}
