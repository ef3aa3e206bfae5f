package nes

import (
	"bytes"
	"fmt"
)

// Mirroring selects how the bus maps the PPU's two physical 1KiB nametables
// onto the logical $2000-$2FFF range.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorSingleScreen
	MirrorFourScreen
)

const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 16 * 1024
	chrBankSize = 8 * 1024
	prgRAMSize  = 0x2000
	chrRAMSize  = 0x2000
)

var inesMagic = []byte{'N', 'E', 'S', 0x1A}

// Cartridge is the parsed, immutable contents of a ROM image plus its
// mutable RAM regions. It owns storage; a Mapper translates logical
// addresses into reads/writes against that storage.
type Cartridge struct {
	PRGBankCount byte
	CHRBankCount byte
	MapperID     byte
	mirroring    Mirroring
	hasPRGRAM    bool
	hasCHRRAM    bool

	PRGROM []byte
	CHRROM []byte
	PRGRAM []byte
	CHRRAM []byte
}

// Mirroring reports the cartridge's nametable mirroring mode.
func (c *Cartridge) Mirroring() Mirroring { return c.mirroring }

// HasPRGRAM reports whether the header requested battery-backed PRG-RAM.
// PRG-RAM storage itself is always allocated regardless of this flag.
func (c *Cartridge) HasPRGRAM() bool { return c.hasPRGRAM }

// HasCHRRAM reports whether this cartridge uses CHR-RAM (no CHR-ROM banks
// were present in the header) rather than fixed CHR-ROM.
func (c *Cartridge) HasCHRRAM() bool { return c.hasCHRRAM }

// LoadCartridge parses an iNES/NES 2.0 ROM image already read into memory
// and constructs the matching Mapper. The only mapper currently implemented
// is 0 (NROM); any other mapper ID fails with *UnsupportedMapperError.
func LoadCartridge(data []byte) (*Cartridge, Mapper, error) {
	if len(data) < headerSize || !bytes.Equal(data[0:4], inesMagic) {
		return nil, nil, fmt.Errorf("nes: %w", ErrInvalidHeader)
	}

	hdr := data[:headerSize]
	prgBanks := hdr[4]
	chrBanks := hdr[5]
	flags6 := hdr[6]
	flags7 := hdr[7]

	hasTrainer := flags6&0x04 != 0
	hasPRGRAM := flags6&0x02 != 0

	var mirroring Mirroring
	switch {
	case flags6&0x08 != 0:
		mirroring = MirrorFourScreen
	case flags6&0x01 != 0:
		mirroring = MirrorHorizontal
	default:
		mirroring = MirrorVertical
	}

	// mapper ID: low nibble from flags6's high nibble, high nibble from
	// flags7's high nibble. NES 2.0 (flags7 bits 2-3 == 0b10) is accepted
	// but its extended fields are ignored; NROM needs none of them.
	mapperID := (flags7 & 0xF0) | (flags6 >> 4)

	offset := headerSize
	if hasTrainer {
		offset += trainerSize
	}

	prgSize := int(prgBanks) * prgBankSize
	chrSize := int(chrBanks) * chrBankSize
	if len(data) < offset+prgSize+chrSize {
		return nil, nil, fmt.Errorf("nes: %w: buffer too small for declared banks", ErrInvalidHeader)
	}

	prgROM := make([]byte, prgSize)
	copy(prgROM, data[offset:offset+prgSize])
	offset += prgSize

	hasCHRRAM := chrBanks == 0
	var chrROM, chrRAM []byte
	if hasCHRRAM {
		chrRAM = make([]byte, chrRAMSize)
	} else {
		chrROM = make([]byte, chrSize)
		copy(chrROM, data[offset:offset+chrSize])
	}

	cart := &Cartridge{
		PRGBankCount: prgBanks,
		CHRBankCount: chrBanks,
		MapperID:     mapperID,
		mirroring:    mirroring,
		hasPRGRAM:    hasPRGRAM,
		hasCHRRAM:    hasCHRRAM,
		PRGROM:       prgROM,
		CHRROM:       chrROM,
		PRGRAM:       make([]byte, prgRAMSize),
		CHRRAM:       chrRAM,
	}

	mapper, err := NewMapper(cart)
	if err != nil {
		return nil, nil, err
	}

	return cart, mapper, nil
}
