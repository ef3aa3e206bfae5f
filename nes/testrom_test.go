package nes

// newTestROM builds a minimal one-bank NROM image with prg copied to the
// start of the PRG bank and the reset vector pointed at $8000, so tests can
// drop a short program in and step it.
func newTestROM(prg []byte) []byte {
	header := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	prgROM := make([]byte, prgBankSize)
	copy(prgROM, prg)
	prgROM[0x3FFC] = 0x00
	prgROM[0x3FFD] = 0x80

	chrROM := make([]byte, chrBankSize)

	data := make([]byte, 0, len(header)+len(prgROM)+len(chrROM))
	data = append(data, header...)
	data = append(data, prgROM...)
	data = append(data, chrROM...)
	return data
}
