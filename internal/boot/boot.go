// Package boot provides the boot ROM overlay for the Game Boy. When the
// Game Boy first powers on, the boot ROM is overlaid on top of the
// cartridge at 0x0000 - 0x00FF, and is unmapped once the boot program
// has completed.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	// BootROMSize is the size of the DMG/MGB/SGB boot ROM, which is
	// also the size of the window it is overlaid onto.
	BootROMSize = 0x100
	// CGBBootROMSize is the size of the CGB boot ROM. Only the first
	// BootROMSize bytes are overlaid by this router.
	CGBBootROMSize = 0x900
)

// ErrInvalidLength is returned when a boot ROM image is neither
// BootROMSize nor CGBBootROMSize bytes long.
var ErrInvalidLength = errors.New("boot: invalid boot rom length")

// ROM represents a read-only boot ROM. The raw bytes are private to the
// ROM and there is no method that writes to them.
type ROM struct {
	raw      []byte // the raw boot rom
	checksum string // the MD5 checksum of the boot rom
}

// NewDMGBootROM returns the built-in DMG boot ROM.
func NewDMGBootROM() *ROM {
	raw := dmgBootROM // copy
	return newROM(raw[:])
}

// LoadBootROM loads a boot ROM into a new ROM. The input must be 256
// bytes (DMG/MGB/SGB) or 2304 bytes (CGB). The bytes are copied, so
// the caller may reuse b afterwards.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != BootROMSize && len(b) != CGBBootROMSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, len(b))
	}

	raw := make([]byte, len(b))
	copy(raw, b)
	return newROM(raw), nil
}

func newROM(raw []byte) *ROM {
	sum := md5.Sum(raw)
	return &ROM{
		raw:      raw,
		checksum: hex.EncodeToString(sum[:]),
	}
}

// Read returns the byte at the given address. Addresses outside the
// overlay window read as 0.
func (b *ROM) Read(addr uint16) byte {
	if b == nil || addr >= BootROMSize {
		return 0
	}
	return b.raw[addr]
}

// Size returns the size of the underlying boot program.
func (b *ROM) Size() int {
	if b == nil {
		return 0
	}
	return len(b.raw)
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the boot rom.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

// knownBootROMChecksums is a map of known boot rom checksums,
// with the key being the checksum, and the value being the
// model of the boot rom.
var knownBootROMChecksums = map[string]string{
	BUILTIN:      "Built-in (DMG)",
	DMG0:         "Game Boy (DMG-0)",
	DMG:          "Game Boy (DMG-01)",
	MGB:          "Game Boy Pocket",
	SGB:          "Super Game Boy",
	SGB2:         "Super Game Boy 2",
	CGB0:         "Game Boy Color (CGB-0)",
	CGB:          "Game Boy Color (CGB-A/B/C/D/E)",
	CGB_AGB:      "Game Boy Advance (AGB-001)",
	FORTUNE:      "Fortune/Bitman 3000B",
	GAME_FIGHTER: "Game Fighter",
	MAX_STATION:  "Max Station",
}

const (
	// BUILTIN is the checksum of the boot ROM returned by
	// NewDMGBootROM, a variant of the DMG boot program whose
	// checksum does not match the DMG-01 image.
	BUILTIN = "e6d1ceb4a19d6b0ba26244c9e2125003"
	// DMG0 is the checksum of the DMG early boot ROM, a variant
	// found in very early DMG units and only ever sold in Japan.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the DMG boot rom, which is
	// the most common boot ROM found in the original DMG-01
	// models.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB is the checksum of the MGB boot ROM, which differs
	// only by a single byte from the DMG boot ROM, loading
	// the value 0xFF into the A register, rather than 0x01.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB is the checksum of the SGB boot ROM.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 is the checksum of the SGB2 boot ROM.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
	// CGB0 is the checksum of the CGB early boot ROM.
	CGB0 = "7c773f3c0b01cb73bca8e83227287b7f"
	// CGB is the checksum of the CGB boot rom, found in the most
	// common CGB models.
	CGB = "dbfce9db9deaa2567f6a84fde55f9680"
	// CGB_AGB is the checksum of the boot ROM found in the GBA's
	// GBC compatibility mode.
	CGB_AGB = "e6cefb5f7d352fab6681989763917c73"
	// FORTUNE is the checksum of the boot ROM found in the
	// Game Boy clone "Fortune/Bitman 3000B".
	FORTUNE = "92ed4eca17d61fcd53f8a64c3ce84743"
	// GAME_FIGHTER is the checksum of the boot ROM found in the
	// Game Boy clone "Game Fighter".
	GAME_FIGHTER = "6a7b8ee12a793f66a969c6a2b8926cc9"
	// MAX_STATION is the checksum of the boot ROM found in the
	// Game Boy clone "Maxstation".
	MAX_STATION = "77a7021db824010a678791f6d062943d"
)
