package nes

import "testing"

func newTestConsole(t *testing.T, prg []byte) *Console {
	t.Helper()
	c, err := NewConsole(newTestROM(prg))
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}
	return c
}

func TestBusRAMMirroring(t *testing.T) {
	c := newTestConsole(t, nil)
	c.Bus.Write(0x0000, 0x42)
	for _, addr := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := c.Bus.Read(addr); got != 0x42 {
			t.Fatalf("Read(%#04x) = %#02x, want $42", addr, got)
		}
	}
}

func TestBusRead16Bug(t *testing.T) {
	c := newTestConsole(t, nil)
	c.Bus.Write(0x01FF, 0x34)
	c.Bus.Write(0x0100, 0x12) // wraps to start of the same page, not $0200
	c.Bus.Write(0x0200, 0xFF)

	if got := c.Bus.Read16Bug(0x01FF); got != 0x1234 {
		t.Fatalf("Read16Bug($01FF) = %#04x, want $1234", got)
	}
}

func TestBusRead16NoWrap(t *testing.T) {
	c := newTestConsole(t, nil)
	c.Bus.Write(0x0100, 0x34)
	c.Bus.Write(0x0101, 0x12)
	if got := c.Bus.Read16(0x0100); got != 0x1234 {
		t.Fatalf("Read16($0100) = %#04x, want $1234", got)
	}
}

func TestControllerStrobeAndShift(t *testing.T) {
	c := newTestConsole(t, nil)
	c.SetButton(1, ButtonA, true)
	c.SetButton(1, ButtonRight, true)

	c.Bus.Write(0x4016, 1) // strobe high
	c.Bus.Write(0x4016, 0) // strobe low, latch current state

	var bits [9]byte
	for i := range bits {
		bits[i] = c.Bus.Read(0x4016) & 1
	}

	want := [9]byte{1, 0, 0, 0, 0, 0, 0, 1, 1}
	if bits != want {
		t.Fatalf("shifted bits = %v, want %v", bits, want)
	}
}

func TestOAMDMAStallsCPU(t *testing.T) {
	c := newTestConsole(t, nil)
	startCycles := c.CPU.Cycles
	c.Bus.Write(0x4014, 0x02)

	if c.CPU.Stall != 513 && c.CPU.Stall != 514 {
		t.Fatalf("Stall = %d, want 513 or 514", c.CPU.Stall)
	}

	stalled := c.CPU.Stall
	for i := uint16(0); i < stalled; i++ {
		c.StepInstruction()
	}
	if c.CPU.Cycles-startCycles != uint64(stalled) {
		t.Fatalf("Cycles advanced by %d during DMA drain, want %d", c.CPU.Cycles-startCycles, stalled)
	}
}

func TestPPUPaletteAliasing(t *testing.T) {
	c := newTestConsole(t, nil)
	c.Bus.ppuWrite(0x3F00, 0x10)
	if got := c.Bus.ppuRead(0x3F10); got != 0x10 {
		t.Fatalf("ppuRead($3F10) = %#02x, want $10 (aliased to $3F00)", got)
	}

	c.Bus.ppuWrite(0x3F0D, 0x22)
	if got := c.Bus.ppuRead(0x3F2D); got != 0x22 {
		t.Fatalf("ppuRead($3F2D) = %#02x, want $22 (mirrors $3F0D)", got)
	}
}

func TestNametableMirroringVertical(t *testing.T) {
	rom := newTestROM(nil) // flags6 bit 0 clear -> vertical mirroring
	c, err := NewConsole(rom)
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}

	c.Bus.ppuWrite(0x2000, 0x11)
	if got := c.Bus.ppuRead(0x2800); got != 0x11 {
		t.Fatalf("vertical mirroring: ppuRead($2800) = %#02x, want $11", got)
	}
	if got := c.Bus.ppuRead(0x2400); got == 0x11 {
		t.Fatalf("vertical mirroring: $2400 should be the other bank, not mirrored with $2000")
	}
}
