package nes

// Mapper is the cartridge capability set the bus and PPU talk to. New
// mapper chips plug in here without the bus needing to know about them.
type Mapper interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte) error
	Name() string
	Mirroring() Mirroring
}

// NewMapper constructs the Mapper implementation named by the cartridge's
// header. Only mapper 0 (NROM) is implemented; any other ID is rejected so
// callers get a clear, typed failure instead of silently misbehaving
// hardware emulation.
func NewMapper(cart *Cartridge) (Mapper, error) {
	switch cart.MapperID {
	case 0:
		return newNROM(cart), nil
	default:
		return nil, &UnsupportedMapperError{ID: cart.MapperID}
	}
}
