package lkm1638

import (
	"errors"
	"reflect"
	"testing"

	"periph.io/x/devices/v3/lkm1638/lkm1638test"
	"periph.io/x/devices/v3/lkm1638/sevenseg"
)

func TestSetSegmentsDigit(t *testing.T) {
	tests := []struct {
		name     string
		pos      byte
		s        sevenseg.Segments
		wantAddr byte
		wantVal  byte
	}{
		{"rightmost", 0, sevenseg.Minus, 0x0E, 0x40},
		{"leftmost", 7, sevenseg.Degree, 0x00, 0x63},
		{"middle", 3, sevenseg.Celsius, 0x08, 0x39},
		{"DP bit dropped", 1, sevenseg.Digit(8) | sevenseg.DP, 0x0C, 0x7F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, c := newTestDev(t)
			if err := d.SetSegmentsDigit(tt.pos, tt.s); err != nil {
				t.Fatal(err)
			}
			want := []lkm1638test.Write{{Addr: tt.wantAddr, Value: tt.wantVal}}
			if !reflect.DeepEqual(c.Writes, want) {
				t.Errorf("Writes = %v, want %v", c.Writes, want)
			}
			if got := d.Digit(tt.pos); got != sevenseg.Segments(tt.wantVal) {
				t.Errorf("Digit(%d) = 0x%02X, want 0x%02X", tt.pos, byte(got), tt.wantVal)
			}
		})
	}
}

func TestSetSegmentsDigitOutOfRange(t *testing.T) {
	d, c := newTestDev(t)
	if err := d.SetSegmentsDigit(NumDigits, sevenseg.Minus); err != nil {
		t.Errorf("SetSegmentsDigit(8) = %v, want nil", err)
	}
	if err := d.SetDigit(200, 1); err != nil {
		t.Errorf("SetDigit(200) = %v, want nil", err)
	}
	if len(c.Writes) != 0 {
		t.Errorf("out of range digits were written: %v", c.Writes)
	}
	if got := d.Digit(NumDigits); got != sevenseg.Off {
		t.Errorf("Digit(8) = 0x%02X, want 0", byte(got))
	}
}

func TestSetDigitHex(t *testing.T) {
	d, c := newTestDev(t)
	for v := byte(0); v < 16; v++ {
		pos := v % NumDigits
		if err := d.SetDigit(pos, v); err != nil {
			t.Fatal(err)
		}
		if got := c.Digit(int(pos)); got != sevenseg.Digit(v) {
			t.Errorf("SetDigit(%d, 0x%X) shows 0x%02X, want 0x%02X", pos, v, byte(got), byte(sevenseg.Digit(v)))
		}
	}
	// Values beyond 0x0F blank the digit.
	if err := d.SetDigit(0, 16); err != nil {
		t.Fatal(err)
	}
	if got := c.Digit(0); got != sevenseg.Off {
		t.Errorf("SetDigit(0, 16) shows 0x%02X, want blank", byte(got))
	}
}

func TestDots(t *testing.T) {
	d, c := newTestDev(t)
	if err := d.SetDigit(2, 4); err != nil {
		t.Fatal(err)
	}
	c.Reset()

	if err := d.DotOn(2); err != nil {
		t.Fatal(err)
	}
	want := []lkm1638test.Write{{Addr: 0x0A, Value: byte(sevenseg.Digit(4) | sevenseg.DP)}}
	if !reflect.DeepEqual(c.Writes, want) {
		t.Errorf("DotOn(2) Writes = %v, want %v", c.Writes, want)
	}
	if d.Dots() != 0x04 {
		t.Errorf("Dots() = 0x%02X, want 0x04", d.Dots())
	}
	// The cached digit never carries the DP.
	if d.Digit(2).Has(sevenseg.DP) {
		t.Error("Digit(2) has DP set in the cache")
	}

	// A new digit keeps the dot.
	if err := d.SetDigit(2, 5); err != nil {
		t.Fatal(err)
	}
	if got := c.Digit(2); got != sevenseg.Digit(5)|sevenseg.DP {
		t.Errorf("digit 2 shows 0x%02X, want 5 with DP", byte(got))
	}

	c.Reset()
	if err := d.DotOff(2); err != nil {
		t.Fatal(err)
	}
	want = []lkm1638test.Write{{Addr: 0x0A, Value: byte(sevenseg.Digit(5))}}
	if !reflect.DeepEqual(c.Writes, want) {
		t.Errorf("DotOff(2) Writes = %v, want %v", c.Writes, want)
	}
	if d.Dots() != 0 {
		t.Errorf("Dots() = 0x%02X, want 0", d.Dots())
	}
}

func TestDotsOutOfRange(t *testing.T) {
	d, c := newTestDev(t)
	if err := d.DotOn(8); err != nil {
		t.Fatal(err)
	}
	if err := d.DotOff(8); err != nil {
		t.Fatal(err)
	}
	if len(c.Writes) != 0 || d.Dots() != 0 {
		t.Errorf("out of range dot changed state: writes=%v dots=0x%02X", c.Writes, d.Dots())
	}
}

func TestSetDots(t *testing.T) {
	d, c := newTestDev(t)
	if err := d.SetDots(0x81); err != nil {
		t.Fatal(err)
	}
	if len(c.Writes) != NumDigits {
		t.Fatalf("SetDots wrote %d registers, want %d", len(c.Writes), NumDigits)
	}
	for pos := 0; pos < NumDigits; pos++ {
		want := sevenseg.Off
		if pos == 0 || pos == 7 {
			want = sevenseg.DP
		}
		if got := c.Digit(pos); got != want {
			t.Errorf("digit %d shows 0x%02X, want 0x%02X", pos, byte(got), byte(want))
		}
	}
}

func TestRefreshIdempotent(t *testing.T) {
	d, c := newTestDev(t)
	for pos := byte(0); pos < NumDigits; pos++ {
		_ = d.SetDigit(pos, pos+1)
	}
	_ = d.DotOn(3)

	c.Reset()
	if err := d.Refresh(); err != nil {
		t.Fatal(err)
	}
	first := append([]lkm1638test.Write(nil), c.Writes...)
	c.Reset()
	if err := d.Refresh(); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, c.Writes) {
		t.Errorf("second Refresh wrote %v, first wrote %v", c.Writes, first)
	}
	if len(first) != NumDigits {
		t.Errorf("Refresh wrote %d registers, want %d", len(first), NumDigits)
	}
	for i, w := range first {
		if want := byte((7 - i) * 2); w.Addr != want {
			t.Errorf("write %d went to 0x%02X, want 0x%02X", i, w.Addr, want)
		}
	}
}

func TestPrintPos(t *testing.T) {
	d, _ := newTestDev(t)
	d.SetPrintPos(5)
	if d.PrintPos() != 5 {
		t.Errorf("PrintPos() = %d, want 5", d.PrintPos())
	}
	d.SetPrintPos(8)
	if d.PrintPos() != 5 {
		t.Errorf("SetPrintPos(8) moved the cursor to %d", d.PrintPos())
	}
}

func TestClear(t *testing.T) {
	d, c := newTestDev(t)
	_ = d.SetDigit(0, 1)
	_ = d.SetDots(0xFF)
	_ = d.SetColorLED(0, LEDRed)
	d.SetPrintPos(4)

	if err := d.Clear(); err != nil {
		t.Fatal(err)
	}
	if c.Clears != 1 {
		t.Errorf("Clears = %d, want 1", c.Clears)
	}
	if c.Regs != [lkm1638test.NumRegisters]byte{} {
		t.Errorf("registers after Clear = %v", c.Regs)
	}
	if d.Dots() != 0 || d.Digit(0) != sevenseg.Off {
		t.Errorf("state after Clear: dots=0x%02X digit0=0x%02X", d.Dots(), byte(d.Digit(0)))
	}
	if d.PrintPos() != 4 {
		t.Errorf("Clear moved the cursor to %d", d.PrintPos())
	}

	// Nothing comes back on refresh.
	c.Reset()
	_ = d.Refresh()
	for _, w := range c.Writes {
		if w.Value != 0 {
			t.Errorf("Refresh after Clear wrote %v", w)
		}
	}
}

func TestDisplayErrors(t *testing.T) {
	d, c := newTestDev(t)
	boom := errors.New("bus down")
	c.Err = boom

	ops := map[string]func() error{
		"SetSegmentsDigit": func() error { return d.SetSegmentsDigit(0, sevenseg.Minus) },
		"SetDigit":         func() error { return d.SetDigit(0, 1) },
		"DotOn":            func() error { return d.DotOn(0) },
		"DotOff":           func() error { return d.DotOff(0) },
		"SetDots":          func() error { return d.SetDots(0xFF) },
		"Refresh":          d.Refresh,
		"Clear":            d.Clear,
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, boom) {
			t.Errorf("%s() = %v, want %v", name, err, boom)
		}
	}
}
