package nes

// AddressingMode identifies how an instruction's operand byte(s) are turned
// into an effective address (or, for Accumulator/Implied, into nothing at
// all). See http://www.thealmightyguru.com/Games/Hacking/Wiki/index.php/Addressing_Modes
// for the reference this table follows.
type AddressingMode byte

const (
	// Immediate: the operand IS the value; there is no effective address.
	Immediate AddressingMode = iota

	// ZeroPage: a 1-byte address into $0000-$00FF.
	ZeroPage

	// Absolute: a full 2-byte address.
	Absolute

	// Relative: a signed 1-byte displacement added to PC, used only by
	// branch instructions.
	Relative

	// Implied: the instruction has no operand.
	Implied

	// Accumulator: an Implied variant that operates on A.
	Accumulator

	// IndexedX: Absolute plus X. Read-type opcodes take an extra cycle
	// when adding X crosses a page boundary.
	IndexedX

	// IndexedY: Absolute plus Y, same page-cross rule as IndexedX.
	IndexedY

	// ZeroPageIndexedX: ZeroPage plus X, wrapping within the zero page.
	ZeroPageIndexedX

	// ZeroPageIndexedY: ZeroPage plus Y, wrapping within the zero page.
	ZeroPageIndexedY

	// Indirect: a 2-byte pointer to the effective address. Reproduces the
	// 6502's page-wrap bug: the pointer's high byte is fetched from the
	// same page as its low byte, so a pointer at a page boundary (e.g.
	// $xxFF) wraps to $xx00 instead of advancing to the next page.
	Indirect

	// PreIndexedIndirect ("(aa,X)"): a zero-page pointer, indexed by X
	// before dereferencing.
	PreIndexedIndirect

	// PostIndexedIndirect ("(aa),Y"): a zero-page pointer, dereferenced
	// then indexed by Y. Read-type opcodes take an extra cycle when
	// adding Y crosses a page boundary.
	PostIndexedIndirect
)

// Instruction is one row of the opcode matrix: everything the CPU needs to
// fetch, time, and dispatch one opcode byte, without needing per-opcode
// control flow to compute it.
type Instruction struct {
	OpCode       byte
	Name         string
	Mode         AddressingMode
	Size         byte // total instruction length in bytes, including opcode
	Cycles       byte // base cycle count
	ExtraOnCross bool // add one cycle if addressing crossed a page
}

// opcodes is the fixed table keyed by opcode byte. Unlisted bytes are the
// illegal/undocumented opcodes spec.md excludes; CPU.Step reports
// UnknownOpcode for them.
var opcodes = buildOpcodeTable()

func buildOpcodeTable() [256]*Instruction {
	var t [256]*Instruction
	add := func(op byte, name string, mode AddressingMode, size, cycles byte, extraOnCross bool) {
		t[op] = &Instruction{OpCode: op, Name: name, Mode: mode, Size: size, Cycles: cycles, ExtraOnCross: extraOnCross}
	}

	// Loads.
	add(0xA9, "LDA", Immediate, 2, 2, false)
	add(0xA5, "LDA", ZeroPage, 2, 3, false)
	add(0xB5, "LDA", ZeroPageIndexedX, 2, 4, false)
	add(0xAD, "LDA", Absolute, 3, 4, false)
	add(0xBD, "LDA", IndexedX, 3, 4, true)
	add(0xB9, "LDA", IndexedY, 3, 4, true)
	add(0xA1, "LDA", PreIndexedIndirect, 2, 6, false)
	add(0xB1, "LDA", PostIndexedIndirect, 2, 5, true)

	add(0xA2, "LDX", Immediate, 2, 2, false)
	add(0xA6, "LDX", ZeroPage, 2, 3, false)
	add(0xB6, "LDX", ZeroPageIndexedY, 2, 4, false)
	add(0xAE, "LDX", Absolute, 3, 4, false)
	add(0xBE, "LDX", IndexedY, 3, 4, true)

	add(0xA0, "LDY", Immediate, 2, 2, false)
	add(0xA4, "LDY", ZeroPage, 2, 3, false)
	add(0xB4, "LDY", ZeroPageIndexedX, 2, 4, false)
	add(0xAC, "LDY", Absolute, 3, 4, false)
	add(0xBC, "LDY", IndexedX, 3, 4, true)

	// Stores.
	add(0x85, "STA", ZeroPage, 2, 3, false)
	add(0x95, "STA", ZeroPageIndexedX, 2, 4, false)
	add(0x8D, "STA", Absolute, 3, 4, false)
	add(0x9D, "STA", IndexedX, 3, 5, false)
	add(0x99, "STA", IndexedY, 3, 5, false)
	add(0x81, "STA", PreIndexedIndirect, 2, 6, false)
	add(0x91, "STA", PostIndexedIndirect, 2, 6, false)

	add(0x86, "STX", ZeroPage, 2, 3, false)
	add(0x96, "STX", ZeroPageIndexedY, 2, 4, false)
	add(0x8E, "STX", Absolute, 3, 4, false)

	add(0x84, "STY", ZeroPage, 2, 3, false)
	add(0x94, "STY", ZeroPageIndexedX, 2, 4, false)
	add(0x8C, "STY", Absolute, 3, 4, false)

	// Transfers.
	add(0xAA, "TAX", Implied, 1, 2, false)
	add(0xA8, "TAY", Implied, 1, 2, false)
	add(0xBA, "TSX", Implied, 1, 2, false)
	add(0x8A, "TXA", Implied, 1, 2, false)
	add(0x9A, "TXS", Implied, 1, 2, false)
	add(0x98, "TYA", Implied, 1, 2, false)

	// Arithmetic.
	add(0x69, "ADC", Immediate, 2, 2, false)
	add(0x65, "ADC", ZeroPage, 2, 3, false)
	add(0x75, "ADC", ZeroPageIndexedX, 2, 4, false)
	add(0x6D, "ADC", Absolute, 3, 4, false)
	add(0x7D, "ADC", IndexedX, 3, 4, true)
	add(0x79, "ADC", IndexedY, 3, 4, true)
	add(0x61, "ADC", PreIndexedIndirect, 2, 6, false)
	add(0x71, "ADC", PostIndexedIndirect, 2, 5, true)

	add(0xE9, "SBC", Immediate, 2, 2, false)
	add(0xE5, "SBC", ZeroPage, 2, 3, false)
	add(0xF5, "SBC", ZeroPageIndexedX, 2, 4, false)
	add(0xED, "SBC", Absolute, 3, 4, false)
	add(0xFD, "SBC", IndexedX, 3, 4, true)
	add(0xF9, "SBC", IndexedY, 3, 4, true)
	add(0xE1, "SBC", PreIndexedIndirect, 2, 6, false)
	add(0xF1, "SBC", PostIndexedIndirect, 2, 5, true)

	// Logic.
	add(0x29, "AND", Immediate, 2, 2, false)
	add(0x25, "AND", ZeroPage, 2, 3, false)
	add(0x35, "AND", ZeroPageIndexedX, 2, 4, false)
	add(0x2D, "AND", Absolute, 3, 4, false)
	add(0x3D, "AND", IndexedX, 3, 4, true)
	add(0x39, "AND", IndexedY, 3, 4, true)
	add(0x21, "AND", PreIndexedIndirect, 2, 6, false)
	add(0x31, "AND", PostIndexedIndirect, 2, 5, true)

	add(0x09, "ORA", Immediate, 2, 2, false)
	add(0x05, "ORA", ZeroPage, 2, 3, false)
	add(0x15, "ORA", ZeroPageIndexedX, 2, 4, false)
	add(0x0D, "ORA", Absolute, 3, 4, false)
	add(0x1D, "ORA", IndexedX, 3, 4, true)
	add(0x19, "ORA", IndexedY, 3, 4, true)
	add(0x01, "ORA", PreIndexedIndirect, 2, 6, false)
	add(0x11, "ORA", PostIndexedIndirect, 2, 5, true)

	add(0x49, "EOR", Immediate, 2, 2, false)
	add(0x45, "EOR", ZeroPage, 2, 3, false)
	add(0x55, "EOR", ZeroPageIndexedX, 2, 4, false)
	add(0x4D, "EOR", Absolute, 3, 4, false)
	add(0x5D, "EOR", IndexedX, 3, 4, true)
	add(0x59, "EOR", IndexedY, 3, 4, true)
	add(0x41, "EOR", PreIndexedIndirect, 2, 6, false)
	add(0x51, "EOR", PostIndexedIndirect, 2, 5, true)

	// Shifts / rotates.
	add(0x0A, "ASL", Accumulator, 1, 2, false)
	add(0x06, "ASL", ZeroPage, 2, 5, false)
	add(0x16, "ASL", ZeroPageIndexedX, 2, 6, false)
	add(0x0E, "ASL", Absolute, 3, 6, false)
	add(0x1E, "ASL", IndexedX, 3, 7, false)

	add(0x4A, "LSR", Accumulator, 1, 2, false)
	add(0x46, "LSR", ZeroPage, 2, 5, false)
	add(0x56, "LSR", ZeroPageIndexedX, 2, 6, false)
	add(0x4E, "LSR", Absolute, 3, 6, false)
	add(0x5E, "LSR", IndexedX, 3, 7, false)

	add(0x2A, "ROL", Accumulator, 1, 2, false)
	add(0x26, "ROL", ZeroPage, 2, 5, false)
	add(0x36, "ROL", ZeroPageIndexedX, 2, 6, false)
	add(0x2E, "ROL", Absolute, 3, 6, false)
	add(0x3E, "ROL", IndexedX, 3, 7, false)

	add(0x6A, "ROR", Accumulator, 1, 2, false)
	add(0x66, "ROR", ZeroPage, 2, 5, false)
	add(0x76, "ROR", ZeroPageIndexedX, 2, 6, false)
	add(0x6E, "ROR", Absolute, 3, 6, false)
	add(0x7E, "ROR", IndexedX, 3, 7, false)

	// Compares.
	add(0xC9, "CMP", Immediate, 2, 2, false)
	add(0xC5, "CMP", ZeroPage, 2, 3, false)
	add(0xD5, "CMP", ZeroPageIndexedX, 2, 4, false)
	add(0xCD, "CMP", Absolute, 3, 4, false)
	add(0xDD, "CMP", IndexedX, 3, 4, true)
	add(0xD9, "CMP", IndexedY, 3, 4, true)
	add(0xC1, "CMP", PreIndexedIndirect, 2, 6, false)
	add(0xD1, "CMP", PostIndexedIndirect, 2, 5, true)

	add(0xE0, "CPX", Immediate, 2, 2, false)
	add(0xE4, "CPX", ZeroPage, 2, 3, false)
	add(0xEC, "CPX", Absolute, 3, 4, false)

	add(0xC0, "CPY", Immediate, 2, 2, false)
	add(0xC4, "CPY", ZeroPage, 2, 3, false)
	add(0xCC, "CPY", Absolute, 3, 4, false)

	// BIT.
	add(0x24, "BIT", ZeroPage, 2, 3, false)
	add(0x2C, "BIT", Absolute, 3, 4, false)

	// Increments / decrements.
	add(0xE6, "INC", ZeroPage, 2, 5, false)
	add(0xF6, "INC", ZeroPageIndexedX, 2, 6, false)
	add(0xEE, "INC", Absolute, 3, 6, false)
	add(0xFE, "INC", IndexedX, 3, 7, false)

	add(0xC6, "DEC", ZeroPage, 2, 5, false)
	add(0xD6, "DEC", ZeroPageIndexedX, 2, 6, false)
	add(0xCE, "DEC", Absolute, 3, 6, false)
	add(0xDE, "DEC", IndexedX, 3, 7, false)

	add(0xE8, "INX", Implied, 1, 2, false)
	add(0xC8, "INY", Implied, 1, 2, false)
	add(0xCA, "DEX", Implied, 1, 2, false)
	add(0x88, "DEY", Implied, 1, 2, false)

	// Branches. Base cycle count is 2; +1 when taken and +1 more on a
	// page cross is applied in CPU.execute, not in this table.
	add(0xF0, "BEQ", Relative, 2, 2, false)
	add(0xD0, "BNE", Relative, 2, 2, false)
	add(0xB0, "BCS", Relative, 2, 2, false)
	add(0x90, "BCC", Relative, 2, 2, false)
	add(0x30, "BMI", Relative, 2, 2, false)
	add(0x10, "BPL", Relative, 2, 2, false)
	add(0x70, "BVS", Relative, 2, 2, false)
	add(0x50, "BVC", Relative, 2, 2, false)

	// Jumps.
	add(0x4C, "JMP", Absolute, 3, 3, false)
	add(0x6C, "JMP", Indirect, 3, 5, false)
	add(0x20, "JSR", Absolute, 3, 6, false)
	add(0x60, "RTS", Implied, 1, 6, false)

	// Stack ops.
	add(0x48, "PHA", Implied, 1, 3, false)
	add(0x68, "PLA", Implied, 1, 4, false)
	add(0x08, "PHP", Implied, 1, 3, false)
	add(0x28, "PLP", Implied, 1, 4, false)

	// Flag ops.
	add(0x18, "CLC", Implied, 1, 2, false)
	add(0x38, "SEC", Implied, 1, 2, false)
	add(0xD8, "CLD", Implied, 1, 2, false)
	add(0xF8, "SED", Implied, 1, 2, false)
	add(0x58, "CLI", Implied, 1, 2, false)
	add(0x78, "SEI", Implied, 1, 2, false)
	add(0xB8, "CLV", Implied, 1, 2, false)

	// Misc.
	add(0xEA, "NOP", Implied, 1, 2, false)
	add(0x00, "BRK", Implied, 1, 7, false)
	add(0x40, "RTI", Implied, 1, 6, false)

	return t
}
