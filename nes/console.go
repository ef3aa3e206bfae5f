package nes

import "io"

// Console owns a whole emulated machine: CPU, PPU, APU stub, bus, the
// loaded cartridge and its mapper, and the two controller ports. It is the
// single entry point embedders drive — load a ROM, step it, read back the
// framebuffer and feed it input.
type Console struct {
	CPU  *CPU
	PPU  *PPU
	APU  *APU
	Bus  *Bus
	Cart *Cartridge

	mapper   Mapper
	pad1     *Controller
	pad2     *Controller
	lastErr  error
	halted   bool
	warnFunc func(error)
}

// NewConsole loads data as an iNES ROM and wires up a console ready to
// Reset and step. The ROM bytes are the caller's responsibility to read
// from disk or wherever else; this core does no file I/O itself.
func NewConsole(data []byte) (*Console, error) {
	cart, mapper, err := LoadCartridge(data)
	if err != nil {
		return nil, err
	}

	pad1 := &Controller{}
	pad2 := &Controller{}
	apu := newAPU()
	ppu := NewPPU()
	cpu := NewCPU()

	bus := NewBus(ppu, apu, pad1, pad2, mapper)
	bus.AttachCPU(cpu)
	ppu.AttachBus(bus)

	c := &Console{
		CPU:    cpu,
		PPU:    ppu,
		APU:    apu,
		Bus:    bus,
		Cart:   cart,
		mapper: mapper,
		pad1:   pad1,
		pad2:   pad2,
	}
	c.Reset()
	return c, nil
}

// Reset pulses the CPU and PPU reset lines, same as a hardware reset
// button.
func (c *Console) Reset() {
	c.CPU.Reset(c.Bus)
	c.PPU.Reset()
	c.lastErr = nil
	c.halted = false
}

// SetTraceWriter enables (or, given nil, disables) nestest-style
// instruction tracing.
func (c *Console) SetTraceWriter(w io.Writer) {
	c.CPU.Tracer = NewTracer(w)
}

// OnWarning registers a callback invoked when stepping downgrades a
// recoverable error (e.g. a write to write-protected cartridge space) to a
// logged-and-ignored event instead of halting.
func (c *Console) OnWarning(fn func(error)) {
	c.warnFunc = fn
	c.Bus.SetWarnFunc(fn)
}

// Halted reports whether stepping has stopped due to a fatal error (an
// unknown opcode reaching the dispatch table, in practice unreachable
// since every opcode byte has an entry). Halted consoles no longer advance
// on Step calls; call Err to see why.
func (c *Console) Halted() bool { return c.halted }

// Err returns the error that halted the console, if any.
func (c *Console) Err() error { return c.lastErr }

// SetButton updates one button latch on controller 1 or 2.
func (c *Console) SetButton(controller int, b Button, pressed bool) {
	switch controller {
	case 1:
		c.pad1.SetButton(b, pressed)
	case 2:
		c.pad2.SetButton(b, pressed)
	}
}

// StepInstruction executes exactly one CPU instruction (or interrupt
// service, or a slice of an in-progress DMA stall) and ticks the PPU three
// times per CPU cycle consumed, returning the CPU cycle count. It is a
// no-op returning 0 once the console is Halted.
func (c *Console) StepInstruction() uint64 {
	if c.halted {
		return 0
	}

	cycles := c.CPU.Step(c.Bus)
	for i := 0; i < cycles*3; i++ {
		c.PPU.Step()
		if c.PPU.ConsumeNMI() {
			c.CPU.TriggerNMI()
		}
	}

	if c.CPU.Halted {
		c.halted = true
		c.lastErr = c.CPU.Err
	}

	return uint64(cycles)
}

// StepFrame runs instructions until the PPU's frame counter advances (the
// pre-render line 261 has finished and scanline 0 begins), or the console
// halts.
func (c *Console) StepFrame() {
	frame := c.PPU.Frame
	for !c.halted && c.PPU.Frame == frame {
		c.StepInstruction()
	}
}

// cpuClockHz is the NTSC 2A03 clock rate: the CPU runs at one twelfth of
// the 21.477272 MHz master clock.
const cpuClockHz = 1789773

// StepSeconds runs instructions until the CPU has consumed at least seconds
// worth of cycles at the NTSC clock rate, or the console halts.
func (c *Console) StepSeconds(seconds float64) {
	start := c.CPU.Cycles
	target := uint64(seconds * cpuClockHz)
	for !c.halted && c.CPU.Cycles-start < target {
		c.StepInstruction()
	}
}
