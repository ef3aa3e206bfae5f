package nes

// AddressingMode names one of the 6502's thirteen operand-fetching schemes.
type AddressingMode byte

const (
	ModeImplied AddressingMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndexedIndirect // (zp,X)
	ModeIndirectIndexed // (zp),Y
	ModeRelative
)

// readZeroPage16 reads a little-endian pointer out of zero page, wrapping
// the high byte back to $00 instead of crossing into page 1. This is the
// same hardware wraparound that makes indirect-Y on pointer $00FF read its
// high byte from $0000.
func readZeroPage16(bus *Bus, ptr byte) uint16 {
	lo := uint16(bus.Read(uint16(ptr)))
	hi := uint16(bus.Read(uint16(ptr + 1)))
	return hi<<8 | lo
}

// resolveAddress consumes the operand bytes for mode, advancing PC past
// them, and returns the effective address together with whether indexing
// crossed a page boundary. For Implied and Accumulator the address is
// unused; for Relative it is already the signed branch target.
func (c *CPU) resolveAddress(bus *Bus, mode AddressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return 0, false

	case ModeImmediate:
		addr = c.PC
		c.PC++
		return addr, false

	case ModeZeroPage:
		addr = uint16(bus.Read(c.PC))
		c.PC++
		return addr, false

	case ModeZeroPageX:
		addr = uint16(bus.Read(c.PC) + c.X)
		c.PC++
		return addr, false

	case ModeZeroPageY:
		addr = uint16(bus.Read(c.PC) + c.Y)
		c.PC++
		return addr, false

	case ModeAbsolute:
		addr = bus.Read16(c.PC)
		c.PC += 2
		return addr, false

	case ModeAbsoluteX:
		base := bus.Read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.X)
		return addr, base&0xFF00 != addr&0xFF00

	case ModeAbsoluteY:
		base := bus.Read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00

	case ModeIndirect:
		ptr := bus.Read16(c.PC)
		c.PC += 2
		return bus.Read16Bug(ptr), false

	case ModeIndexedIndirect:
		zp := bus.Read(c.PC) + c.X
		c.PC++
		return readZeroPage16(bus, zp), false

	case ModeIndirectIndexed:
		zp := bus.Read(c.PC)
		c.PC++
		base := readZeroPage16(bus, zp)
		addr = base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00

	case ModeRelative:
		offset := int8(bus.Read(c.PC))
		c.PC++
		return uint16(int32(c.PC) + int32(offset)), false

	default:
		return 0, false
	}
}

// branch applies a taken conditional branch: +1 cycle always, +1 more if
// the branch crosses a page.
func (c *CPU) branch(target uint16) int {
	extra := 1
	if c.PC&0xFF00 != target&0xFF00 {
		extra++
	}
	c.PC = target
	return extra
}
