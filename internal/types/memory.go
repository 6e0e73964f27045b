package types

// Region boundaries of the 16-bit address space. Each Start is
// inclusive, each End exclusive.
const (
	BootStart uint16 = 0x0000
	BootEnd   uint16 = 0x0100

	ROMStart uint16 = 0x0000
	ROMEnd   uint16 = 0x8000

	VRAMStart uint16 = 0x8000
	// TileMapStart separates the tile data (0x8000 - 0x97FF) from
	// the two tile maps (0x9800 - 0x9FFF).
	TileMapStart uint16 = 0x9800
	VRAMEnd      uint16 = 0xA000

	CartRAMStart uint16 = 0xA000
	CartRAMEnd   uint16 = 0xC000

	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xE000

	EchoStart uint16 = 0xE000
	EchoEnd   uint16 = 0xFE00

	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFEA0

	UnusableStart uint16 = 0xFEA0
	UnusableEnd   uint16 = 0xFF00

	IOStart uint16 = 0xFF00
	IOEnd   uint16 = 0xFF80

	HRAMStart uint16 = 0xFF80
)

// Sizes of the backing stores.
const (
	BootOverlaySize = 0x100
	VRAMSize        = 0x2000
	CartRAMSize     = 0x2000
	WRAMSize        = 0x2000
	OAMSize         = 0xA0
	HRAMSize        = 0x80
)
