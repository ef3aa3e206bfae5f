package nes

import (
	"fmt"
	"io"
)

// Tracer writes one line per instruction in the nestest log format, useful
// for diffing against known-good CPU traces. A nil Tracer (the CPU default)
// costs nothing.
type Tracer struct {
	w io.Writer
}

// NewTracer wraps w as an instruction tracer. Passing a nil Writer disables
// tracing, equivalent to never setting CPU.Tracer.
func NewTracer(w io.Writer) *Tracer {
	if w == nil {
		return nil
	}
	return &Tracer{w: w}
}

func (t *Tracer) trace(bus *Bus, c *CPU, pc uint16, entry *opcode) {
	var raw [3]byte
	for i := byte(0); i < entry.Bytes && i < 3; i++ {
		raw[i] = bus.Read(pc + uint16(i))
	}

	bytesCol := ""
	for i := byte(0); i < entry.Bytes && i < 3; i++ {
		bytesCol += fmt.Sprintf("%02X ", raw[i])
	}

	fmt.Fprintf(t.w, "%04X  %-9s%-4s                        A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
		pc, bytesCol, entry.Name, c.A, c.X, c.Y, c.P, c.SP, c.Cycles)
}
