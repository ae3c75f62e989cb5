package nes

import "fmt"

// FatalErrorKind classifies the conditions spec.md treats as unrecoverable:
// continuing the tick loop after one of these would make the emulator's
// observable behavior meaningless, so the scheduler stops instead of
// limping on.
type FatalErrorKind int

const (
	// UnknownOpcode is reported when the CPU fetches a byte that has no
	// entry in the documented instruction table.
	UnknownOpcode FatalErrorKind = iota

	// ReadOnlyWrite is reported when a write targets a device that has no
	// write handler (cartridge PRG/CHR ROM).
	ReadOnlyWrite

	// MalformedCartridge is reported by the iNES loader.
	MalformedCartridge

	// UnsupportedPPUMode is reported when PPUCTRL requests a rendering
	// mode this core does not implement (8x16 sprites).
	UnsupportedPPUMode
)

func (k FatalErrorKind) String() string {
	switch k {
	case UnknownOpcode:
		return "unknown opcode"
	case ReadOnlyWrite:
		return "write to read-only memory"
	case MalformedCartridge:
		return "malformed cartridge"
	case UnsupportedPPUMode:
		return "unsupported PPU mode"
	default:
		return "fatal error"
	}
}

// FatalError is the only error kind that may terminate Console.Run. Every
// other failure (host audio/window setup, unimplemented register bits) is
// either recovered by the caller or silently ignored, per spec.md §7.
type FatalError struct {
	Kind FatalErrorKind
	Addr uint16
	Msg  string
}

func (e *FatalError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("nes: %s: %s (addr=0x%04X)", e.Kind, e.Msg, e.Addr)
	}
	return fmt.Sprintf("nes: %s (addr=0x%04X)", e.Kind, e.Addr)
}

func fatalf(kind FatalErrorKind, addr uint16, format string, args ...any) *FatalError {
	return &FatalError{Kind: kind, Addr: addr, Msg: fmt.Sprintf(format, args...)}
}
