package nes

// ramSize is the NES's 2KiB of work RAM, mirrored every 0x0800 bytes across
// the 0x0000-0x1FFF CPU address window.
const ramSize = 0x0800

// RAM is the console's 2KiB work RAM.
type RAM struct {
	data [ramSize]byte
}

// NewRAM returns a zeroed RAM bank. Real hardware powers up with
// indeterminate contents; callers that need determinism across runs should
// treat a fresh RAM as their baseline.
func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read(address uint16) byte {
	return r.data[address%ramSize]
}

func (r *RAM) Write(address uint16, value byte) {
	r.data[address%ramSize] = value
}
