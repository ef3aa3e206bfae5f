package nes

// nrom implements mapper 0: one or two fixed 16KiB PRG banks (mirrored when
// only one is present) and one fixed 8KiB CHR bank, ROM or RAM.
type nrom struct {
	cart *Cartridge
}

func newNROM(cart *Cartridge) *nrom {
	return &nrom{cart: cart}
}

func (m *nrom) Name() string { return "NROM" }

func (m *nrom) Mirroring() Mirroring { return m.cart.Mirroring() }

func (m *nrom) Read(addr uint16) byte {
	switch {
	case addr < 0x2000:
		if m.cart.HasCHRRAM() {
			return m.cart.CHRRAM[addr]
		}
		return m.cart.CHRROM[addr]

	case addr >= 0x6000 && addr < 0x8000:
		return m.cart.PRGRAM[addr-0x6000]

	case addr >= 0x8000:
		mapped := addr - 0x8000
		if len(m.cart.PRGROM) == prgBankSize {
			mapped %= prgBankSize
		}
		return m.cart.PRGROM[mapped]

	default:
		return 0
	}
}

func (m *nrom) Write(addr uint16, value byte) error {
	switch {
	case addr < 0x2000:
		if !m.cart.HasCHRRAM() {
			return ErrCartridgeWriteProtected
		}
		m.cart.CHRRAM[addr] = value
		return nil

	case addr >= 0x6000 && addr < 0x8000:
		m.cart.PRGRAM[addr-0x6000] = value
		return nil

	default:
		// NROM has no PRG-ROM banking registers; writes above $8000 are
		// simply ignored by real hardware.
		return nil
	}
}
