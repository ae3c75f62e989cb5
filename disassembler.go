package nes

import (
	"fmt"
	"io"
)

// Tracer writes one line per executed instruction in the conventional
// 6502 trace format (as produced by nestest-style logs), for debugging. It
// is the "disassembly viewer used
// for debugging" spec.md §1 names as an external collaborator: out of
// scope as a feature, but cheap enough to keep as the CPU's one piece of
// diagnostic output, following the teacher's io.Writer-based tracing.
type Tracer struct {
	out io.Writer
	ppu *PPU
}

// NewTracer returns a Tracer writing to out. ppu may be nil if PPU
// dot/scanline columns are not needed.
func NewTracer(out io.Writer, ppu *PPU) *Tracer {
	return &Tracer{out: out, ppu: ppu}
}

var addressingFormats = map[AddressingMode]string{
	Immediate:           "#$%02X",
	Absolute:            "$%04X",
	ZeroPage:            "$%02X",
	Implied:             "",
	Indirect:            "($%04X)",
	IndexedX:            "$%04X,X",
	IndexedY:            "$%04X,Y",
	ZeroPageIndexedX:    "$%02X,X",
	ZeroPageIndexedY:    "$%02X,Y",
	PreIndexedIndirect:  "($%02X,X)",
	PostIndexedIndirect: "($%02X),Y",
	Relative:            "$%04X",
	Accumulator:         "A",
}

func (t *Tracer) emit(bus *Bus, c *CPU, pc uint16, inst *Instruction, resolvedAddr uint16) {
	n, _ := fmt.Fprintf(t.out, "%04X  ", pc)
	written := n

	switch inst.Size {
	case 1:
		n, _ = fmt.Fprintf(t.out, "%02X      ", inst.OpCode)
	case 2:
		n, _ = fmt.Fprintf(t.out, "%02X %02X   ", inst.OpCode, bus.Read(pc+1))
	case 3:
		n, _ = fmt.Fprintf(t.out, "%02X %02X %02X", inst.OpCode, bus.Read(pc+1), bus.Read(pc+2))
	}
	written += n

	n, _ = fmt.Fprint(t.out, "  ", inst.Name, " ")
	written += n

	switch inst.Mode {
	case Accumulator:
		n, _ = fmt.Fprint(t.out, "A")
		written += n
	case Implied:
	default:
		var arg uint16
		switch inst.Mode {
		case Immediate, ZeroPage, ZeroPageIndexedX, ZeroPageIndexedY, PreIndexedIndirect, PostIndexedIndirect:
			arg = uint16(bus.Read(pc + 1))
		case Absolute, Indirect, IndexedX, IndexedY:
			arg = uint16(bus.Read(pc+1)) | uint16(bus.Read(pc+2))<<8
		case Relative:
			arg = resolvedAddr
		}
		n, _ = fmt.Fprintf(t.out, addressingFormats[inst.Mode], arg)
		written += n
	}

	for written < 48 {
		fmt.Fprint(t.out, " ")
		written++
	}

	var dot, scanLine int
	if t.ppu != nil {
		dot, scanLine = t.ppu.Dot, t.ppu.ScanLine
	}
	fmt.Fprintf(t.out, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d\n",
		c.A, c.X, c.Y, byte(c.P), c.S, dot, scanLine, c.Cycles)
}
