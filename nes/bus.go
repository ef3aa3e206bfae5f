package nes

// Bus is the CPU's view of the address space: 2KiB internal RAM mirrored
// four times, PPU registers mirrored every 8 bytes, the two controller
// ports, an OAM-DMA trigger, the APU stub, and the cartridge through its
// mapper from $4020 up.
type Bus struct {
	ram [0x0800]byte

	ppu  *PPU
	apu  *APU
	pad1 *Controller
	pad2 *Controller
	cart Mapper

	cpu *CPU

	warn func(error)
}

// NewBus wires the shared components together. cpu is attached after
// construction (via AttachCPU) since the CPU and Bus are constructed as a
// pair and each needs to reach the other for OAM DMA stalling.
func NewBus(ppu *PPU, apu *APU, pad1, pad2 *Controller, cart Mapper) *Bus {
	return &Bus{ppu: ppu, apu: apu, pad1: pad1, pad2: pad2, cart: cart}
}

// AttachCPU lets the bus stall the CPU for OAM DMA transfers.
func (b *Bus) AttachCPU(c *CPU) { b.cpu = c }

// SetWarnFunc registers a callback for downgraded (logged-and-ignored)
// errors encountered while decoding bus writes, such as a write to
// write-protected cartridge space.
func (b *Bus) SetWarnFunc(fn func(error)) { b.warn = fn }

// Read decodes a CPU-visible address.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < 0x2000:
		return b.ram[addr%0x0800]

	case addr < 0x4000:
		return b.ppu.ReadRegister(0x2000 + addr%8)

	case addr == 0x4016:
		return b.pad1.Read()

	case addr == 0x4017:
		return b.pad2.Read()

	case addr < 0x4020:
		return b.apu.Read(addr)

	default:
		return b.cart.Read(addr)
	}
}

// Write decodes a CPU-visible address for writes. A write the mapper
// refuses has no effect; its error is passed to the warn callback, if one
// is registered.
func (b *Bus) Write(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		b.ram[addr%0x0800] = value

	case addr < 0x4000:
		b.ppu.WriteRegister(0x2000+addr%8, value)

	case addr == 0x4014:
		b.oamDMA(value)

	case addr == 0x4016:
		b.pad1.Write(value)
		b.pad2.Write(value)

	case addr < 0x4020:
		b.apu.Write(addr, value)

	default:
		if err := b.cart.Write(addr, value); err != nil && b.warn != nil {
			b.warn(err)
		}
	}
}

// Read16 reads a little-endian word with normal address-space wraparound.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// Read16Bug reproduces the indirect-JMP hardware defect: if the pointer's
// low byte is $FF, the high byte is fetched from the start of the same
// page instead of the next page.
func (b *Bus) Read16Bug(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	var hiAddr uint16
	if addr&0x00FF == 0x00FF {
		hiAddr = addr & 0xFF00
	} else {
		hiAddr = addr + 1
	}
	hi := uint16(b.Read(hiAddr))
	return hi<<8 | lo
}

// oamDMA copies one 256-byte page into OAM and stalls the CPU for the
// transfer, 513 cycles normally or 514 when it begins on an odd CPU cycle.
func (b *Bus) oamDMA(page byte) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMByte(b.Read(base + uint16(i)))
	}

	stall := uint16(513)
	if b.cpu != nil && b.cpu.Cycles%2 == 1 {
		stall = 514
	}
	if b.cpu != nil {
		b.cpu.Stall += stall
	}
}

// ppuRead decodes a PPU-visible address ($0000-$3FFF): pattern tables
// through the mapper, nametables with mirroring applied, and palette RAM
// with the $3F10/$3F14/$3F18/$3F1C background-color aliases.
func (b *Bus) ppuRead(addr uint16) byte {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return b.cart.Read(addr)

	case addr < 0x3F00:
		return b.ppu.nametableRAM[b.nametableIndex(addr)]

	default:
		return b.ppu.readPalette(paletteAddr(addr))
	}
}

func (b *Bus) ppuWrite(addr uint16, value byte) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if err := b.cart.Write(addr, value); err != nil && b.warn != nil {
			b.warn(err)
		}

	case addr < 0x3F00:
		b.ppu.nametableRAM[b.nametableIndex(addr)] = value

	default:
		b.ppu.writePalette(paletteAddr(addr), value)
	}
}

// nametableIndex maps a $2000-$2FFF PPU-side nametable address (mirrored
// through $3EFF) onto one of the PPU's two physical 1KiB nametable banks,
// according to the cartridge's mirroring mode.
func (b *Bus) nametableIndex(addr uint16) uint16 {
	// $3000-$3EFF mirrors $2000-$2EFF before mirroring-mode mapping applies.
	table := ((addr - 0x2000) / 0x0400) % 4
	offset := addr % 0x0400

	var bank uint16
	switch b.cart.Mirroring() {
	case MirrorVertical:
		bank = table % 2
	case MirrorHorizontal:
		bank = table / 2
	case MirrorSingleScreen:
		bank = 0
	case MirrorFourScreen:
		// Four-screen needs 4 independent 1KiB banks (cartridge-supplied
		// nametable RAM on real hardware); that's out of scope here, so it
		// folds onto bank 0 like single-screen rather than indexing past
		// the PPU's physical 2KiB nametableRAM.
		bank = 0
	default:
		bank = table % 2
	}
	return bank*0x0400 + offset
}

// paletteAddr folds a $3F00-$3FFF address down to the 32-entry palette RAM
// index, aliasing $3F10/$3F14/$3F18/$3F1C onto $3F00/$3F04/$3F08/$3F0C.
func paletteAddr(addr uint16) uint16 {
	idx := addr % 0x20
	if idx >= 0x10 && idx%4 == 0 {
		idx -= 0x10
	}
	return idx
}
