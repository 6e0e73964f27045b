package mmu

import (
	"github.com/thelolagemann/gbmmu/internal/boot"
	"github.com/thelolagemann/gbmmu/pkg/log"
)

// Opt is a function that modifies an MMU instance
// before it is first reset.
type Opt func(m *MMU)

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// WithBootROM replaces the built-in boot ROM. Only the first 256
// bytes are overlaid, even for a CGB boot ROM. A nil rom keeps the
// built-in boot ROM.
func WithBootROM(rom *boot.ROM) Opt {
	return func(m *MMU) {
		if rom != nil {
			m.bootROM = rom
		}
	}
}

// NoBootROM starts the MMU (and every Reset) with the boot ROM
// overlay inactive, as though the boot program had already run.
func NoBootROM() Opt {
	return func(m *MMU) {
		m.noBoot = true
	}
}

// WithBootDisableRegister makes any write to 0xFF50 (types.BDIS)
// unmap the boot ROM overlay, as it does on hardware. Without it,
// 0xFF50 is handed to the display controller like the rest of its
// register block, and the overlay is only unmapped through
// DisableBootROM.
func WithBootDisableRegister() Opt {
	return func(m *MMU) {
		m.bootDisableRegister = true
	}
}
