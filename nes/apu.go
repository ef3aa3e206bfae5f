package nes

// APU is a bus stub: real audio synthesis is an external collaborator, out
// of scope for this core. It occupies $4000-$401F (minus the controller and
// OAM-DMA registers, which the bus routes elsewhere), reading as 0 and
// discarding every write.
type APU struct{}

func newAPU() *APU { return &APU{} }

func (a *APU) Read(addr uint16) byte { return 0 }

func (a *APU) Write(addr uint16, value byte) {}
