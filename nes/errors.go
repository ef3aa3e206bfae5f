package nes

import "fmt"

// Sentinel errors for the cartridge/stepping failure kinds named in the
// component design. UnsupportedMapper carries data and is a distinct type
// below rather than a sentinel.
var (
	// ErrInvalidHeader is returned when a ROM buffer's magic bytes are
	// missing or its declared bank sizes don't fit the supplied buffer.
	ErrInvalidHeader = fmt.Errorf("nes: invalid header")

	// ErrCartridgeWriteProtected is returned when the mapper refuses a
	// write to CHR-ROM that has no backing CHR-RAM.
	ErrCartridgeWriteProtected = fmt.Errorf("nes: cartridge is write protected")

	// ErrAddressOutOfRange indicates an address decode fell through every
	// table; 16-bit addressing makes this unreachable in practice.
	ErrAddressOutOfRange = fmt.Errorf("nes: address out of range")

	// ErrUnknownOpcode indicates the dispatch table had no entry for a
	// fetched opcode. The table is fully populated, so Step never produces
	// this in the current build; it exists so future opcode-table edits
	// fail loudly instead of panicking.
	ErrUnknownOpcode = fmt.Errorf("nes: unknown opcode")
)

// UnsupportedMapperError is returned by LoadCartridge when the header names
// a mapper ID this core does not implement. Only mapper 0 (NROM) is
// currently supported.
type UnsupportedMapperError struct {
	ID byte
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("nes: unsupported mapper %d", e.ID)
}
