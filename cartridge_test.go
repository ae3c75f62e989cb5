package nes

import (
	"bytes"
	"testing"
)

func baseHeader() []byte {
	return []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
}

func TestLoadINES_headerErrors(t *testing.T) {
	tests := []struct {
		name string
		rom  []byte
	}{
		{"empty", []byte{}},
		{"too short", []byte{'N', 'E', 'S', 0x1A, 0, 0, 0, 0, 0, 0}},
		{"bad magic", []byte{'N', 'O', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"four screen", func() []byte {
			h := baseHeader()
			h[6] |= flag6FourScr
			return append(h, make([]byte, prgBankSize+chrBankSize)...)
		}()},
		{"non-zero mapper", func() []byte {
			h := baseHeader()
			h[6] |= 0x10 // mapper low nibble = 1
			return append(h, make([]byte, prgBankSize+chrBankSize)...)
		}()},
		{"short PRG", func() []byte {
			h := baseHeader()
			h[4] = 2 // claims 2 banks, body has none
			return h
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadINES(bytes.NewReader(tt.rom)); err == nil {
				t.Fatalf("LoadINES(%s): want error, got nil", tt.name)
			}
		})
	}
}

func TestLoadINES_mirrorMode(t *testing.T) {
	tests := []struct {
		name string
		bit  byte
		want MirrorMode
	}{
		{"horizontal", 0, MirrorHorizontal},
		{"vertical", flag6Vertical, MirrorVertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := baseHeader()
			h[6] |= tt.bit
			rom := append(h, make([]byte, prgBankSize+chrBankSize)...)

			c, err := LoadINES(bytes.NewReader(rom))
			if err != nil {
				t.Fatalf("LoadINES: %v", err)
			}
			if c.MirrorMode != tt.want {
				t.Errorf("MirrorMode = %v, want %v", c.MirrorMode, tt.want)
			}
		})
	}
}

func TestLoadINES_chrRAM(t *testing.T) {
	h := baseHeader()
	h[5] = 0 // CHRBanks = 0 selects CHR RAM
	rom := append(h, make([]byte, prgBankSize)...)

	c, err := LoadINES(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("LoadINES: %v", err)
	}
	if len(c.CHR) != chrBankSize {
		t.Errorf("len(CHR) = %d, want %d", len(c.CHR), chrBankSize)
	}

	c.WriteCHR(0x0000, 0x42)
	if got := c.ReadCHR(0x0000); got != 0x42 {
		t.Errorf("ReadCHR after WriteCHR = %#x, want 0x42", got)
	}
}

func TestLoadINES_trainer(t *testing.T) {
	h := baseHeader()
	h[6] |= flag6Trainer
	rom := append(h, make([]byte, 512+prgBankSize+chrBankSize)...)

	if _, err := LoadINES(bytes.NewReader(rom)); err != nil {
		t.Fatalf("LoadINES with trainer: %v", err)
	}
}

func TestCartridge_prgMirroring(t *testing.T) {
	h := baseHeader()
	h[4] = 1 // one 16KiB PRG bank, mirrored across 0x8000-0xFFFF
	rom := append(h, make([]byte, prgBankSize+chrBankSize)...)
	rom[len(rom)-chrBankSize-prgBankSize] = 0xAB

	c, err := LoadINES(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("LoadINES: %v", err)
	}

	low, err := c.Read(0x8000)
	if err != nil {
		t.Fatalf("Read(0x8000): %v", err)
	}
	high, err := c.Read(0xC000)
	if err != nil {
		t.Fatalf("Read(0xC000): %v", err)
	}
	if low != 0xAB || high != 0xAB {
		t.Errorf("16KiB PRG not mirrored: 0x8000=%#x 0xC000=%#x", low, high)
	}
}

func TestCartridge_writeIsReadOnly(t *testing.T) {
	h := baseHeader()
	rom := append(h, make([]byte, prgBankSize+chrBankSize)...)
	c, err := LoadINES(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("LoadINES: %v", err)
	}

	if err := c.Write(0x8000, 0xFF); err == nil {
		t.Fatal("Write(0x8000): want error, got nil")
	}
	if err := c.Write(0x6000, 0xFF); err != nil {
		t.Errorf("Write(0x6000): want nil (dropped), got %v", err)
	}
}
