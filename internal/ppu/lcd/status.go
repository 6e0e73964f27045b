package lcd

import (
	"github.com/thelolagemann/gbmmu/internal/types"
	"github.com/thelolagemann/gbmmu/pkg/bits"
)

// Status represents the LCD status register (types.STAT):
//
//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
//	Bit 1-0 - Mode Flag       (Mode 0-3)            (Read Only)
type Status struct {
	CoincidenceInterrupt bool
	OAMInterrupt         bool
	VBlankInterrupt      bool
	HBlankInterrupt      bool
	// Coincidence and Mode are only changed by the PPU itself,
	// never by a register write.
	Coincidence bool
	Mode        Mode
}

// Write writes the interrupt enable bits of the status register.
func (s *Status) Write(value uint8) {
	s.CoincidenceInterrupt = bits.Test(value, 6)
	s.OAMInterrupt = bits.Test(value, 5)
	s.VBlankInterrupt = bits.Test(value, 4)
	s.HBlankInterrupt = bits.Test(value, 3)
}

// Read returns the value of the status register.
func (s *Status) Read() uint8 {
	value := uint8(types.Bit7) // bit 7 is always set
	if s.CoincidenceInterrupt {
		value |= types.Bit6
	}
	if s.OAMInterrupt {
		value |= types.Bit5
	}
	if s.VBlankInterrupt {
		value |= types.Bit4
	}
	if s.HBlankInterrupt {
		value |= types.Bit3
	}
	if s.Coincidence {
		value |= types.Bit2
	}
	return value | uint8(s.Mode)&0x03
}

// Mode represents a mode of the LCD, reported in bits 0-1 of STAT.
type Mode = int

const (
	// HBlank is the horizontal blanking mode.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode.
	VBlank
	// OAM is the OAM scan mode.
	OAM
	// VRAM is the pixel transfer mode.
	VRAM
)
