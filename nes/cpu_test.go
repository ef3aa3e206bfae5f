package nes

import "testing"

func TestCPUResetState(t *testing.T) {
	c := newTestConsole(t, nil)
	if c.CPU.PC != 0x8000 {
		t.Fatalf("PC = %#04x, want $8000", c.CPU.PC)
	}
	if c.CPU.SP != 0xFD {
		t.Fatalf("SP = %#02x, want $FD", c.CPU.SP)
	}
	if c.CPU.P != 0x24 {
		t.Fatalf("P = %#02x, want $24", c.CPU.P)
	}
	if c.CPU.Cycles != 7 {
		t.Fatalf("Cycles = %d, want 7", c.CPU.Cycles)
	}
}

func TestCPULDAImmediateSetsFlags(t *testing.T) {
	c := newTestConsole(t, []byte{0xA9, 0x00, 0xA9, 0x80, 0xA9, 0x7F})
	c.StepInstruction()
	if !c.CPU.getFlag(FlagZ) || c.CPU.getFlag(FlagN) {
		t.Fatalf("LDA #$00: P = %#02x, want Z set, N clear", c.CPU.P)
	}
	c.StepInstruction()
	if c.CPU.getFlag(FlagZ) || !c.CPU.getFlag(FlagN) {
		t.Fatalf("LDA #$80: P = %#02x, want Z clear, N set", c.CPU.P)
	}
	c.StepInstruction()
	if c.CPU.getFlag(FlagZ) || c.CPU.getFlag(FlagN) {
		t.Fatalf("LDA #$7F: P = %#02x, want Z clear, N clear", c.CPU.P)
	}
}

func TestCPUADCOverflow(t *testing.T) {
	// LDA #$7F; ADC #$01 -> signed overflow (127+1 = -128), V set, N set, C clear.
	c := newTestConsole(t, []byte{0xA9, 0x7F, 0x69, 0x01})
	c.StepInstruction()
	c.StepInstruction()

	if c.CPU.A != 0x80 {
		t.Fatalf("A = %#02x, want $80", c.CPU.A)
	}
	if !c.CPU.getFlag(FlagV) {
		t.Fatal("V not set on signed overflow")
	}
	if !c.CPU.getFlag(FlagN) {
		t.Fatal("N not set")
	}
	if c.CPU.getFlag(FlagC) {
		t.Fatal("C unexpectedly set")
	}
}

func TestCPUSBCBorrow(t *testing.T) {
	// SEC; LDA #$00; SBC #$01 -> 0 - 1 - 0 = $FF, C clear (borrow), N set.
	c := newTestConsole(t, []byte{0x38, 0xA9, 0x00, 0xE9, 0x01})
	c.StepInstruction()
	c.StepInstruction()
	c.StepInstruction()

	if c.CPU.A != 0xFF {
		t.Fatalf("A = %#02x, want $FF", c.CPU.A)
	}
	if c.CPU.getFlag(FlagC) {
		t.Fatal("C should be clear (borrow occurred)")
	}
}

func TestCPUBranchCycles(t *testing.T) {
	// A taken BEQ that stays on the same page costs its base 2 cycles + 1.
	prg := []byte{
		0xA9, 0x00, // LDA #$00 -> Z set
		0xF0, 0x00, // BEQ +0 (taken, same page): +1 cycle
	}
	c := newTestConsole(t, prg)
	c.StepInstruction() // LDA
	before := c.CPU.Cycles
	cycles := c.StepInstruction()
	if cycles != 3 {
		t.Fatalf("BEQ taken same-page cycles = %d, want 3", cycles)
	}
	if c.CPU.Cycles-before != 3 {
		t.Fatalf("CPU.Cycles advanced by %d, want 3", c.CPU.Cycles-before)
	}
}

func TestCPUJSRRTSRoundTrip(t *testing.T) {
	prg := []byte{
		0x20, 0x06, 0x80, // JSR $8006
		0xA9, 0xFF, // LDA #$FF (skipped by the call, executed after return)
		0x00,       // BRK (padding)
		0xA9, 0x42, // $8006: LDA #$42
		0x60, // RTS
	}
	c := newTestConsole(t, prg)
	c.StepInstruction() // JSR
	if c.CPU.PC != 0x8006 {
		t.Fatalf("PC after JSR = %#04x, want $8006", c.CPU.PC)
	}
	c.StepInstruction() // LDA #$42
	if c.CPU.A != 0x42 {
		t.Fatalf("A = %#02x, want $42", c.CPU.A)
	}
	c.StepInstruction() // RTS
	if c.CPU.PC != 0x8003 {
		t.Fatalf("PC after RTS = %#04x, want $8003 (instruction after JSR)", c.CPU.PC)
	}
}

func TestCPUIndirectJMPPageWrapBug(t *testing.T) {
	prg := []byte{0x6C, 0xFF, 0x02} // JMP ($02FF)
	c := newTestConsole(t, prg)
	c.Bus.Write(0x02FF, 0x00)
	c.Bus.Write(0x0200, 0x90) // high byte read wraps to $0200, not $0300
	c.Bus.Write(0x0300, 0xFF)

	c.StepInstruction()
	if c.CPU.PC != 0x9000 {
		t.Fatalf("PC after buggy indirect JMP = %#04x, want $9000", c.CPU.PC)
	}
}

func TestCPUNMITriggersInterrupt(t *testing.T) {
	rom := newTestROM([]byte{0xEA}) // NOP
	rom[headerSize+0x3FFA] = 0x00
	rom[headerSize+0x3FFB] = 0x90
	c, err := NewConsole(rom)
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}

	c.CPU.TriggerNMI()
	cycles := c.CPU.Step(c.Bus)
	if cycles != 7 {
		t.Fatalf("NMI service cycles = %d, want 7", cycles)
	}
	if c.CPU.PC != 0x9000 {
		t.Fatalf("PC after NMI = %#04x, want $9000", c.CPU.PC)
	}
	if !c.CPU.getFlag(FlagI) {
		t.Fatal("I flag should be set after servicing NMI")
	}
}

func TestCPUUndocumentedLAX(t *testing.T) {
	// *LAX loads the same operand into both A and X; this exercises the
	// zero-page form ($A7).
	prg := []byte{0xA7, 0x10} // *LAX $10 (zero page)
	c := newTestConsole(t, prg)
	c.Bus.Write(0x0010, 0x37)
	c.StepInstruction()
	if c.CPU.A != 0x37 || c.CPU.X != 0x37 {
		t.Fatalf("A=%#02x X=%#02x, want both $37", c.CPU.A, c.CPU.X)
	}
}

func TestCPUUnknownOpcodeHalts(t *testing.T) {
	opcodeTableBackup := opcodeTable[0xEA]
	opcodeTable[0xEA] = opcode{}
	defer func() { opcodeTable[0xEA] = opcodeTableBackup }()

	c := newTestConsole(t, []byte{0xEA})
	c.StepInstruction()
	if !c.Halted() {
		t.Fatal("console should be halted after an unknown opcode")
	}
	if c.Err() != ErrUnknownOpcode {
		t.Fatalf("Err() = %v, want ErrUnknownOpcode", c.Err())
	}
}
