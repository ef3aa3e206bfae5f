package nes

// opcode describes one of the 256 possible opcode bytes: its mnemonic (for
// tracing), total instruction length, base cycle cost, whether indexed
// addressing adds a cycle on a page cross, its addressing mode, and the
// executor that performs it.
type opcode struct {
	Name             string
	Bytes            byte
	BaseCycles       byte
	ExtraOnPageCross byte
	Mode             AddressingMode
	Exec             func(c *CPU, bus *Bus, addr uint16, mode AddressingMode) int
}

// opcodeTable is the full 256-entry dispatch table, indexed by opcode byte.
// It is built as data, not a 256-way switch, so lookup is a single array
// index and the mnemonic/cycle metadata sits right next to the behavior.
// Slots not used by any documented or the twelve known undocumented opcode
// families are populated with a read-and-discard no-op, matching how real
// NMOS 6502 parts behave for most of the remaining illegal opcodes closely
// enough for this core's purposes; true bus-locking JAM opcodes are treated
// the same way rather than modeled as a hang.
var opcodeTable = [256]opcode{
	0x00: {"BRK", 1, 7, 0, ModeImplied, execBRK},
	0x01: {"ORA", 2, 6, 0, ModeIndexedIndirect, execORA},
	0x02: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0x03: {"*SLO", 2, 8, 0, ModeIndexedIndirect, execSLO},
	0x04: {"*NOP", 2, 3, 0, ModeZeroPage, execReadNOP},
	0x05: {"ORA", 2, 3, 0, ModeZeroPage, execORA},
	0x06: {"ASL", 2, 5, 0, ModeZeroPage, execASL},
	0x07: {"*SLO", 2, 5, 0, ModeZeroPage, execSLO},
	0x08: {"PHP", 1, 3, 0, ModeImplied, execPHP},
	0x09: {"ORA", 2, 2, 0, ModeImmediate, execORA},
	0x0A: {"ASL", 1, 2, 0, ModeAccumulator, execASL},
	0x0B: {"*NOP", 2, 2, 0, ModeImmediate, execReadNOP},
	0x0C: {"*NOP", 3, 4, 0, ModeAbsolute, execReadNOP},
	0x0D: {"ORA", 3, 4, 0, ModeAbsolute, execORA},
	0x0E: {"ASL", 3, 6, 0, ModeAbsolute, execASL},
	0x0F: {"*SLO", 3, 6, 0, ModeAbsolute, execSLO},

	0x10: {"BPL", 2, 2, 0, ModeRelative, execBPL},
	0x11: {"ORA", 2, 5, 1, ModeIndirectIndexed, execORA},
	0x12: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0x13: {"*SLO", 2, 8, 0, ModeIndirectIndexed, execSLO},
	0x14: {"*NOP", 2, 4, 0, ModeZeroPageX, execReadNOP},
	0x15: {"ORA", 2, 4, 0, ModeZeroPageX, execORA},
	0x16: {"ASL", 2, 6, 0, ModeZeroPageX, execASL},
	0x17: {"*SLO", 2, 6, 0, ModeZeroPageX, execSLO},
	0x18: {"CLC", 1, 2, 0, ModeImplied, execCLC},
	0x19: {"ORA", 3, 4, 1, ModeAbsoluteY, execORA},
	0x1A: {"*NOP", 1, 2, 0, ModeImplied, execNOP},
	0x1B: {"*SLO", 3, 7, 0, ModeAbsoluteY, execSLO},
	0x1C: {"*NOP", 3, 4, 1, ModeAbsoluteX, execReadNOP},
	0x1D: {"ORA", 3, 4, 1, ModeAbsoluteX, execORA},
	0x1E: {"ASL", 3, 7, 0, ModeAbsoluteX, execASL},
	0x1F: {"*SLO", 3, 7, 0, ModeAbsoluteX, execSLO},

	0x20: {"JSR", 3, 6, 0, ModeAbsolute, execJSR},
	0x21: {"AND", 2, 6, 0, ModeIndexedIndirect, execAND},
	0x22: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0x23: {"*RLA", 2, 8, 0, ModeIndexedIndirect, execRLA},
	0x24: {"BIT", 2, 3, 0, ModeZeroPage, execBIT},
	0x25: {"AND", 2, 3, 0, ModeZeroPage, execAND},
	0x26: {"ROL", 2, 5, 0, ModeZeroPage, execROL},
	0x27: {"*RLA", 2, 5, 0, ModeZeroPage, execRLA},
	0x28: {"PLP", 1, 4, 0, ModeImplied, execPLP},
	0x29: {"AND", 2, 2, 0, ModeImmediate, execAND},
	0x2A: {"ROL", 1, 2, 0, ModeAccumulator, execROL},
	0x2B: {"*NOP", 2, 2, 0, ModeImmediate, execReadNOP},
	0x2C: {"BIT", 3, 4, 0, ModeAbsolute, execBIT},
	0x2D: {"AND", 3, 4, 0, ModeAbsolute, execAND},
	0x2E: {"ROL", 3, 6, 0, ModeAbsolute, execROL},
	0x2F: {"*RLA", 3, 6, 0, ModeAbsolute, execRLA},

	0x30: {"BMI", 2, 2, 0, ModeRelative, execBMI},
	0x31: {"AND", 2, 5, 1, ModeIndirectIndexed, execAND},
	0x32: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0x33: {"*RLA", 2, 8, 0, ModeIndirectIndexed, execRLA},
	0x34: {"*NOP", 2, 4, 0, ModeZeroPageX, execReadNOP},
	0x35: {"AND", 2, 4, 0, ModeZeroPageX, execAND},
	0x36: {"ROL", 2, 6, 0, ModeZeroPageX, execROL},
	0x37: {"*RLA", 2, 6, 0, ModeZeroPageX, execRLA},
	0x38: {"SEC", 1, 2, 0, ModeImplied, execSEC},
	0x39: {"AND", 3, 4, 1, ModeAbsoluteY, execAND},
	0x3A: {"*NOP", 1, 2, 0, ModeImplied, execNOP},
	0x3B: {"*RLA", 3, 7, 0, ModeAbsoluteY, execRLA},
	0x3C: {"*NOP", 3, 4, 1, ModeAbsoluteX, execReadNOP},
	0x3D: {"AND", 3, 4, 1, ModeAbsoluteX, execAND},
	0x3E: {"ROL", 3, 7, 0, ModeAbsoluteX, execROL},
	0x3F: {"*RLA", 3, 7, 0, ModeAbsoluteX, execRLA},

	0x40: {"RTI", 1, 6, 0, ModeImplied, execRTI},
	0x41: {"EOR", 2, 6, 0, ModeIndexedIndirect, execEOR},
	0x42: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0x43: {"*SRE", 2, 8, 0, ModeIndexedIndirect, execSRE},
	0x44: {"*NOP", 2, 3, 0, ModeZeroPage, execReadNOP},
	0x45: {"EOR", 2, 3, 0, ModeZeroPage, execEOR},
	0x46: {"LSR", 2, 5, 0, ModeZeroPage, execLSR},
	0x47: {"*SRE", 2, 5, 0, ModeZeroPage, execSRE},
	0x48: {"PHA", 1, 3, 0, ModeImplied, execPHA},
	0x49: {"EOR", 2, 2, 0, ModeImmediate, execEOR},
	0x4A: {"LSR", 1, 2, 0, ModeAccumulator, execLSR},
	0x4B: {"*NOP", 2, 2, 0, ModeImmediate, execReadNOP},
	0x4C: {"JMP", 3, 3, 0, ModeAbsolute, execJMP},
	0x4D: {"EOR", 3, 4, 0, ModeAbsolute, execEOR},
	0x4E: {"LSR", 3, 6, 0, ModeAbsolute, execLSR},
	0x4F: {"*SRE", 3, 6, 0, ModeAbsolute, execSRE},

	0x50: {"BVC", 2, 2, 0, ModeRelative, execBVC},
	0x51: {"EOR", 2, 5, 1, ModeIndirectIndexed, execEOR},
	0x52: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0x53: {"*SRE", 2, 8, 0, ModeIndirectIndexed, execSRE},
	0x54: {"*NOP", 2, 4, 0, ModeZeroPageX, execReadNOP},
	0x55: {"EOR", 2, 4, 0, ModeZeroPageX, execEOR},
	0x56: {"LSR", 2, 6, 0, ModeZeroPageX, execLSR},
	0x57: {"*SRE", 2, 6, 0, ModeZeroPageX, execSRE},
	0x58: {"CLI", 1, 2, 0, ModeImplied, execCLI},
	0x59: {"EOR", 3, 4, 1, ModeAbsoluteY, execEOR},
	0x5A: {"*NOP", 1, 2, 0, ModeImplied, execNOP},
	0x5B: {"*SRE", 3, 7, 0, ModeAbsoluteY, execSRE},
	0x5C: {"*NOP", 3, 4, 1, ModeAbsoluteX, execReadNOP},
	0x5D: {"EOR", 3, 4, 1, ModeAbsoluteX, execEOR},
	0x5E: {"LSR", 3, 7, 0, ModeAbsoluteX, execLSR},
	0x5F: {"*SRE", 3, 7, 0, ModeAbsoluteX, execSRE},

	0x60: {"RTS", 1, 6, 0, ModeImplied, execRTS},
	0x61: {"ADC", 2, 6, 0, ModeIndexedIndirect, execADC},
	0x62: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0x63: {"*RRA", 2, 8, 0, ModeIndexedIndirect, execRRA},
	0x64: {"*NOP", 2, 3, 0, ModeZeroPage, execReadNOP},
	0x65: {"ADC", 2, 3, 0, ModeZeroPage, execADC},
	0x66: {"ROR", 2, 5, 0, ModeZeroPage, execROR},
	0x67: {"*RRA", 2, 5, 0, ModeZeroPage, execRRA},
	0x68: {"PLA", 1, 4, 0, ModeImplied, execPLA},
	0x69: {"ADC", 2, 2, 0, ModeImmediate, execADC},
	0x6A: {"ROR", 1, 2, 0, ModeAccumulator, execROR},
	0x6B: {"*NOP", 2, 2, 0, ModeImmediate, execReadNOP},
	0x6C: {"JMP", 3, 5, 0, ModeIndirect, execJMP},
	0x6D: {"ADC", 3, 4, 0, ModeAbsolute, execADC},
	0x6E: {"ROR", 3, 6, 0, ModeAbsolute, execROR},
	0x6F: {"*RRA", 3, 6, 0, ModeAbsolute, execRRA},

	0x70: {"BVS", 2, 2, 0, ModeRelative, execBVS},
	0x71: {"ADC", 2, 5, 1, ModeIndirectIndexed, execADC},
	0x72: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0x73: {"*RRA", 2, 8, 0, ModeIndirectIndexed, execRRA},
	0x74: {"*NOP", 2, 4, 0, ModeZeroPageX, execReadNOP},
	0x75: {"ADC", 2, 4, 0, ModeZeroPageX, execADC},
	0x76: {"ROR", 2, 6, 0, ModeZeroPageX, execROR},
	0x77: {"*RRA", 2, 6, 0, ModeZeroPageX, execRRA},
	0x78: {"SEI", 1, 2, 0, ModeImplied, execSEI},
	0x79: {"ADC", 3, 4, 1, ModeAbsoluteY, execADC},
	0x7A: {"*NOP", 1, 2, 0, ModeImplied, execNOP},
	0x7B: {"*RRA", 3, 7, 0, ModeAbsoluteY, execRRA},
	0x7C: {"*NOP", 3, 4, 1, ModeAbsoluteX, execReadNOP},
	0x7D: {"ADC", 3, 4, 1, ModeAbsoluteX, execADC},
	0x7E: {"ROR", 3, 7, 0, ModeAbsoluteX, execROR},
	0x7F: {"*RRA", 3, 7, 0, ModeAbsoluteX, execRRA},

	0x80: {"*NOP", 2, 2, 0, ModeImmediate, execReadNOP},
	0x81: {"STA", 2, 6, 0, ModeIndexedIndirect, execSTA},
	0x82: {"*NOP", 2, 2, 0, ModeImmediate, execReadNOP},
	0x83: {"*SAX", 2, 6, 0, ModeIndexedIndirect, execSAX},
	0x84: {"STY", 2, 3, 0, ModeZeroPage, execSTY},
	0x85: {"STA", 2, 3, 0, ModeZeroPage, execSTA},
	0x86: {"STX", 2, 3, 0, ModeZeroPage, execSTX},
	0x87: {"*SAX", 2, 3, 0, ModeZeroPage, execSAX},
	0x88: {"DEY", 1, 2, 0, ModeImplied, execDEY},
	0x89: {"*NOP", 2, 2, 0, ModeImmediate, execReadNOP},
	0x8A: {"TXA", 1, 2, 0, ModeImplied, execTXA},
	0x8B: {"*NOP", 2, 2, 0, ModeImmediate, execReadNOP},
	0x8C: {"STY", 3, 4, 0, ModeAbsolute, execSTY},
	0x8D: {"STA", 3, 4, 0, ModeAbsolute, execSTA},
	0x8E: {"STX", 3, 4, 0, ModeAbsolute, execSTX},
	0x8F: {"*SAX", 3, 4, 0, ModeAbsolute, execSAX},

	0x90: {"BCC", 2, 2, 0, ModeRelative, execBCC},
	0x91: {"STA", 2, 6, 0, ModeIndirectIndexed, execSTA},
	0x92: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0x93: {"*NOP", 1, 6, 0, ModeImplied, execReadNOP},
	0x94: {"STY", 2, 4, 0, ModeZeroPageX, execSTY},
	0x95: {"STA", 2, 4, 0, ModeZeroPageX, execSTA},
	0x96: {"STX", 2, 4, 0, ModeZeroPageY, execSTX},
	0x97: {"*SAX", 2, 4, 0, ModeZeroPageY, execSAX},
	0x98: {"TYA", 1, 2, 0, ModeImplied, execTYA},
	0x99: {"STA", 3, 5, 0, ModeAbsoluteY, execSTA},
	0x9A: {"TXS", 1, 2, 0, ModeImplied, execTXS},
	0x9B: {"*NOP", 1, 5, 0, ModeImplied, execReadNOP},
	0x9C: {"*NOP", 1, 5, 0, ModeImplied, execReadNOP},
	0x9D: {"STA", 3, 5, 0, ModeAbsoluteX, execSTA},
	0x9E: {"*NOP", 1, 5, 0, ModeImplied, execReadNOP},
	0x9F: {"*NOP", 1, 5, 0, ModeImplied, execReadNOP},

	0xA0: {"LDY", 2, 2, 0, ModeImmediate, execLDY},
	0xA1: {"LDA", 2, 6, 0, ModeIndexedIndirect, execLDA},
	0xA2: {"LDX", 2, 2, 0, ModeImmediate, execLDX},
	0xA3: {"*LAX", 2, 6, 0, ModeIndexedIndirect, execLAX},
	0xA4: {"LDY", 2, 3, 0, ModeZeroPage, execLDY},
	0xA5: {"LDA", 2, 3, 0, ModeZeroPage, execLDA},
	0xA6: {"LDX", 2, 3, 0, ModeZeroPage, execLDX},
	0xA7: {"*LAX", 2, 3, 0, ModeZeroPage, execLAX},
	0xA8: {"TAY", 1, 2, 0, ModeImplied, execTAY},
	0xA9: {"LDA", 2, 2, 0, ModeImmediate, execLDA},
	0xAA: {"TAX", 1, 2, 0, ModeImplied, execTAX},
	0xAB: {"*LAX", 2, 2, 0, ModeImmediate, execLAX},
	0xAC: {"LDY", 3, 4, 0, ModeAbsolute, execLDY},
	0xAD: {"LDA", 3, 4, 0, ModeAbsolute, execLDA},
	0xAE: {"LDX", 3, 4, 0, ModeAbsolute, execLDX},
	0xAF: {"*LAX", 3, 4, 0, ModeAbsolute, execLAX},

	0xB0: {"BCS", 2, 2, 0, ModeRelative, execBCS},
	0xB1: {"LDA", 2, 5, 1, ModeIndirectIndexed, execLDA},
	0xB2: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0xB3: {"*LAX", 2, 5, 1, ModeIndirectIndexed, execLAX},
	0xB4: {"LDY", 2, 4, 0, ModeZeroPageX, execLDY},
	0xB5: {"LDA", 2, 4, 0, ModeZeroPageX, execLDA},
	0xB6: {"LDX", 2, 4, 0, ModeZeroPageY, execLDX},
	0xB7: {"*LAX", 2, 4, 0, ModeZeroPageY, execLAX},
	0xB8: {"CLV", 1, 2, 0, ModeImplied, execCLV},
	0xB9: {"LDA", 3, 4, 1, ModeAbsoluteY, execLDA},
	0xBA: {"TSX", 1, 2, 0, ModeImplied, execTSX},
	0xBB: {"*NOP", 3, 4, 1, ModeAbsoluteY, execReadNOP},
	0xBC: {"LDY", 3, 4, 1, ModeAbsoluteX, execLDY},
	0xBD: {"LDA", 3, 4, 1, ModeAbsoluteX, execLDA},
	0xBE: {"LDX", 3, 4, 1, ModeAbsoluteY, execLDX},
	0xBF: {"*LAX", 3, 4, 1, ModeAbsoluteY, execLAX},

	0xC0: {"CPY", 2, 2, 0, ModeImmediate, execCPY},
	0xC1: {"CMP", 2, 6, 0, ModeIndexedIndirect, execCMP},
	0xC2: {"*NOP", 2, 2, 0, ModeImmediate, execReadNOP},
	0xC3: {"*DCP", 2, 8, 0, ModeIndexedIndirect, execDCP},
	0xC4: {"CPY", 2, 3, 0, ModeZeroPage, execCPY},
	0xC5: {"CMP", 2, 3, 0, ModeZeroPage, execCMP},
	0xC6: {"DEC", 2, 5, 0, ModeZeroPage, execDEC},
	0xC7: {"*DCP", 2, 5, 0, ModeZeroPage, execDCP},
	0xC8: {"INY", 1, 2, 0, ModeImplied, execINY},
	0xC9: {"CMP", 2, 2, 0, ModeImmediate, execCMP},
	0xCA: {"DEX", 1, 2, 0, ModeImplied, execDEX},
	0xCB: {"*NOP", 2, 2, 0, ModeImmediate, execReadNOP},
	0xCC: {"CPY", 3, 4, 0, ModeAbsolute, execCPY},
	0xCD: {"CMP", 3, 4, 0, ModeAbsolute, execCMP},
	0xCE: {"DEC", 3, 6, 0, ModeAbsolute, execDEC},
	0xCF: {"*DCP", 3, 6, 0, ModeAbsolute, execDCP},

	0xD0: {"BNE", 2, 2, 0, ModeRelative, execBNE},
	0xD1: {"CMP", 2, 5, 1, ModeIndirectIndexed, execCMP},
	0xD2: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0xD3: {"*DCP", 2, 8, 0, ModeIndirectIndexed, execDCP},
	0xD4: {"*NOP", 2, 4, 0, ModeZeroPageX, execReadNOP},
	0xD5: {"CMP", 2, 4, 0, ModeZeroPageX, execCMP},
	0xD6: {"DEC", 2, 6, 0, ModeZeroPageX, execDEC},
	0xD7: {"*DCP", 2, 6, 0, ModeZeroPageX, execDCP},
	0xD8: {"CLD", 1, 2, 0, ModeImplied, execCLD},
	0xD9: {"CMP", 3, 4, 1, ModeAbsoluteY, execCMP},
	0xDA: {"*NOP", 1, 2, 0, ModeImplied, execNOP},
	0xDB: {"*DCP", 3, 7, 0, ModeAbsoluteY, execDCP},
	0xDC: {"*NOP", 3, 4, 1, ModeAbsoluteX, execReadNOP},
	0xDD: {"CMP", 3, 4, 1, ModeAbsoluteX, execCMP},
	0xDE: {"DEC", 3, 7, 0, ModeAbsoluteX, execDEC},
	0xDF: {"*DCP", 3, 7, 0, ModeAbsoluteX, execDCP},

	0xE0: {"CPX", 2, 2, 0, ModeImmediate, execCPX},
	0xE1: {"SBC", 2, 6, 0, ModeIndexedIndirect, execSBC},
	0xE2: {"*NOP", 2, 2, 0, ModeImmediate, execReadNOP},
	0xE3: {"*ISB", 2, 8, 0, ModeIndexedIndirect, execISB},
	0xE4: {"CPX", 2, 3, 0, ModeZeroPage, execCPX},
	0xE5: {"SBC", 2, 3, 0, ModeZeroPage, execSBC},
	0xE6: {"INC", 2, 5, 0, ModeZeroPage, execINC},
	0xE7: {"*ISB", 2, 5, 0, ModeZeroPage, execISB},
	0xE8: {"INX", 1, 2, 0, ModeImplied, execINX},
	0xE9: {"SBC", 2, 2, 0, ModeImmediate, execSBC},
	0xEA: {"NOP", 1, 2, 0, ModeImplied, execNOP},
	0xEB: {"*SBC", 2, 2, 0, ModeImmediate, execSBC},
	0xEC: {"CPX", 3, 4, 0, ModeAbsolute, execCPX},
	0xED: {"SBC", 3, 4, 0, ModeAbsolute, execSBC},
	0xEE: {"INC", 3, 6, 0, ModeAbsolute, execINC},
	0xEF: {"*ISB", 3, 6, 0, ModeAbsolute, execISB},

	0xF0: {"BEQ", 2, 2, 0, ModeRelative, execBEQ},
	0xF1: {"SBC", 2, 5, 1, ModeIndirectIndexed, execSBC},
	0xF2: {"*JAM", 1, 2, 0, ModeImplied, execReadNOP},
	0xF3: {"*ISB", 2, 8, 0, ModeIndirectIndexed, execISB},
	0xF4: {"*NOP", 2, 4, 0, ModeZeroPageX, execReadNOP},
	0xF5: {"SBC", 2, 4, 0, ModeZeroPageX, execSBC},
	0xF6: {"INC", 2, 6, 0, ModeZeroPageX, execINC},
	0xF7: {"*ISB", 2, 6, 0, ModeZeroPageX, execISB},
	0xF8: {"SED", 1, 2, 0, ModeImplied, execSED},
	0xF9: {"SBC", 3, 4, 1, ModeAbsoluteY, execSBC},
	0xFA: {"*NOP", 1, 2, 0, ModeImplied, execNOP},
	0xFB: {"*ISB", 3, 7, 0, ModeAbsoluteY, execISB},
	0xFC: {"*NOP", 3, 4, 1, ModeAbsoluteX, execReadNOP},
	0xFD: {"SBC", 3, 4, 1, ModeAbsoluteX, execSBC},
	0xFE: {"INC", 3, 7, 0, ModeAbsoluteX, execINC},
	0xFF: {"*ISB", 3, 7, 0, ModeAbsoluteX, execISB},
}
