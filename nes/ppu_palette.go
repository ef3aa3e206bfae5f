package nes

// paletteRGB is the standard 64-entry NTSC NES palette, indexed by the
// 6-bit color value a pixel resolves to after background/sprite priority
// and palette-RAM lookup.
var paletteRGB = [64][3]byte{
	{84, 84, 84}, {0, 30, 116}, {8, 16, 144}, {48, 0, 136},
	{68, 0, 100}, {92, 0, 48}, {84, 4, 0}, {60, 24, 0},
	{32, 42, 0}, {8, 58, 0}, {0, 64, 0}, {0, 60, 0},
	{0, 50, 60}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
	{152, 150, 152}, {8, 76, 196}, {48, 50, 236}, {92, 30, 228},
	{136, 20, 176}, {160, 20, 100}, {152, 34, 32}, {120, 60, 0},
	{84, 90, 0}, {40, 114, 0}, {8, 124, 0}, {0, 118, 40},
	{0, 102, 120}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
	{236, 238, 236}, {76, 154, 236}, {120, 124, 236}, {176, 98, 236},
	{228, 84, 236}, {236, 88, 180}, {236, 106, 100}, {212, 136, 32},
	{160, 170, 0}, {116, 196, 0}, {76, 208, 32}, {56, 204, 108},
	{56, 180, 204}, {60, 60, 60}, {0, 0, 0}, {0, 0, 0},
	{236, 238, 236}, {168, 204, 236}, {188, 188, 236}, {212, 178, 236},
	{236, 174, 236}, {236, 174, 212}, {236, 180, 176}, {228, 196, 144},
	{204, 210, 120}, {180, 222, 120}, {168, 226, 144}, {152, 226, 180},
	{160, 214, 228}, {160, 162, 160}, {0, 0, 0}, {0, 0, 0},
}

// paletteAddr folds a $3F00-$3FFF (or bare 0-$1F) value down to the 32-byte
// palette RAM index, aliasing $3F10/$3F14/$3F18/$3F1C (indices $10/$14/$18/
// $1C) onto $3F00/$3F04/$3F08/$3F0C. Defined once in bus.go and reused here so both
// bus-mapped access and direct rendering lookups apply the identical rule.

func (p *PPU) readPalette(addr uint16) byte {
	return p.paletteRAM[addr]
}

func (p *PPU) writePalette(addr uint16, value byte) {
	p.paletteRAM[addr] = value & 0x3F
}

// readPaletteEntry resolves a raw attribute|pixel color (0-$1F, not yet
// alias-folded) to its palette-RAM byte, for use while rendering.
func (p *PPU) readPaletteEntry(colorIdx byte) byte {
	return p.paletteRAM[paletteAddr(0x3F00+uint16(colorIdx))]
}
