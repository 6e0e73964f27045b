package ppu

// TileCount is the number of tiles held in the tile data area
// (0x8000 - 0x97FF) of VRAM.
const TileCount = 384

// Tile represents a decoded tile. Each tile has a size of 8x8 pixels
// and a color depth of 4 colors/gray shades, stored as the colour
// number (0-3) of each pixel.
type Tile [8][8]uint8

// decodeRow decodes a single row of a tile from its two bit planes.
func (t *Tile) decodeRow(row int, lo, hi uint8) {
	for x := 0; x < 8; x++ {
		t[row][x] = (lo>>(7-x))&1 | ((hi>>(7-x))&1)<<1
	}
}

// NewTile decodes a tile from its 16 byte representation.
func NewTile(b [16]uint8) Tile {
	t := Tile{}
	for y := 0; y < 8; y++ {
		t.decodeRow(y, b[y*2], b[y*2+1])
	}
	return t
}
