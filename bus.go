package nes

// Bus multiplexes the CPU's 16-bit address space onto RAM, the PPU
// register window, the APU register window, OAMDMA, the controller ports,
// and the cartridge. It performs no mirroring of its own — each device
// mirrors its own range, as spec.md §4.1 specifies — it only decides which
// device a given address belongs to.
type Bus struct {
	RAM         *RAM
	PPU         *PPU
	APU         *APU
	Cartridge   *Cartridge
	Controller1 *Controller

	cpu *CPU
}

// Read dispatches a CPU read to the owning device.
func (b *Bus) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.RAM.Read(address)

	case address < 0x4000:
		return b.PPU.ReadPort(address)

	case address == 0x4015:
		return b.APU.ReadStatus()

	case address == 0x4016:
		return b.Controller1.Read()

	case address == 0x4017:
		return 0x40 // upper bus bits, per spec.md §6; no second controller port.

	case address < 0x4020:
		return 0 // remaining APU/IO registers: write-only or unimplemented.

	default:
		v, err := b.Cartridge.Read(address)
		if err != nil {
			return 0
		}
		return v
	}
}

// Write dispatches a CPU write to the owning device. A write to read-only
// cartridge space returns a FatalError, per spec.md §4.1, as does a PPUCTRL
// write selecting 8x16 sprites; CPU.execute passes it up through CPU.Step,
// and the scheduler decides whether that is fatal to the whole emulator.
func (b *Bus) Write(address uint16, value byte) error {
	switch {
	case address < 0x2000:
		b.RAM.Write(address, value)
		return nil

	case address < 0x4000:
		return b.PPU.WritePort(address, value)

	case address == 0x4014:
		return b.oamDMA(value)

	case address == 0x4016:
		b.Controller1.Write(value)
		return nil

	case address == 0x4017:
		// The APU frame counter shares this address, per spec.md §6.
		b.APU.WriteFrameCounter(value)
		return nil

	case address < 0x4020:
		b.APU.WriteRegister(address, value)
		return nil

	default:
		return b.Cartridge.Write(address, value)
	}
}

// oamDMA copies 256 bytes from CPU page (value<<8) into PPU OAM starting at
// the PPU's current OAMADDR, per spec.md §4.3. Implemented as a Bus method,
// not a PPU method holding a CPU-RAM pointer, per the redesign direction in
// spec.md §9 ("make OAMDMA a method on the Bus").
func (b *Bus) oamDMA(page byte) error {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		v := b.Read(base + uint16(i))
		b.PPU.WriteOAMDMAByte(v)
	}
	if b.cpu != nil {
		b.cpu.dmaStall(513)
	}
	return nil
}
