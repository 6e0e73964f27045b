// Package ppu provides the display controller's side of the memory
// bus: the video RAM and OAM buffers, the caches derived from them,
// and the LCD register file at 0xFF40 - 0xFF7F. Rendering itself is
// not part of this package.
package ppu

import (
	"github.com/thelolagemann/gbmmu/internal/ppu/lcd"
	"github.com/thelolagemann/gbmmu/internal/types"
)

const (
	registerStart = 0xFF40
	registerEnd   = 0xFF80
)

// PPU implements the register file and memory caches of the Game
// Boy's (P)ixel (P)rocessing (U)nit.
//
// VRAM and OAM are owned by the PPU but written by the memory router,
// which informs the PPU of each write through UpdateTile and
// UpdateSprite, so that the tile and sprite caches never go stale.
type PPU struct {
	vRAM [types.VRAMSize]uint8
	oam  [types.OAMSize]uint8

	// Tiles holds the decoded tile data (0x8000 - 0x97FF).
	Tiles [TileCount]Tile
	// Sprites holds the decoded OAM entries.
	Sprites [SpriteCount]Sprite

	*lcd.Controller
	*lcd.Status

	ly uint8
	// registers backs every register in 0xFF40 - 0xFF7F that isn't
	// decoded.
	registers [registerEnd - registerStart]uint8

	tileUpdates, spriteUpdates uint64
}

// New returns a new PPU.
func New() *PPU {
	return &PPU{
		Controller: lcd.NewController(),
		Status:     &lcd.Status{},
	}
}

// VRAM returns the video RAM buffer shared with the memory router.
func (p *PPU) VRAM() *[types.VRAMSize]uint8 {
	return &p.vRAM
}

// OAM returns the sprite attribute table shared with the memory
// router.
func (p *PPU) OAM() *[types.OAMSize]uint8 {
	return &p.oam
}

// UpdateTile re-decodes the tile row containing address, which must
// be in the tile data area (0x8000 - 0x97FF). The new value has
// already been written to VRAM.
func (p *PPU) UpdateTile(address uint16, value uint8) {
	offset := address & 0x1FFF &^ 1
	if offset >= TileCount*16 {
		return
	}
	p.Tiles[offset>>4].decodeRow(int(offset>>1)&7, p.vRAM[offset], p.vRAM[offset+1])
	p.tileUpdates++
}

// UpdateSprite refreshes the sprite containing address (0xFE00 -
// 0xFE9F).
func (p *PPU) UpdateSprite(address uint16, value uint8) {
	index := (address & 0xFF) >> 2
	if index >= SpriteCount {
		return
	}
	p.Sprites[index].Update(address, value)
	p.spriteUpdates++
}

// Updates returns the number of tile and sprite cache updates
// performed since the PPU was created.
func (p *PPU) Updates() (tiles, sprites uint64) {
	return p.tileUpdates, p.spriteUpdates
}

// Read returns the value of the register at address.
func (p *PPU) Read(address uint16) uint8 {
	switch address {
	case types.LCDC:
		return p.Controller.Read()
	case types.STAT:
		return p.Status.Read()
	case types.LY:
		return p.ly
	}
	if address < registerStart || address >= registerEnd {
		return 0
	}
	return p.registers[address-registerStart]
}

// Write writes value to the register at address.
func (p *PPU) Write(address uint16, value uint8) {
	switch address {
	case types.LCDC:
		p.Controller.Write(value)
	case types.STAT:
		p.Status.Write(value)
	case types.LY:
		// writing any value resets LY
		p.SetLY(0)
	case types.LYC:
		p.registers[address-registerStart] = value
		p.Coincidence = p.ly == value
	default:
		if address >= registerStart && address < registerEnd {
			p.registers[address-registerStart] = value
		}
	}
}

// SetLY sets the current scanline, updating the coincidence flag.
func (p *PPU) SetLY(ly uint8) {
	p.ly = ly
	p.Coincidence = p.ly == p.registers[types.LYC-registerStart]
}
