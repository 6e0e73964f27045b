package mmu

import "fmt"

// Region identifies the destination of an address.
type Region uint8

const (
	// Boot is the boot ROM overlay window (0x0000 - 0x00FF). It is
	// served by the program image while the overlay is inactive.
	Boot Region = iota
	// ROM is the program image (0x0100 - 0x7FFF).
	ROM
	// VRAM is the video RAM (0x8000 - 0x9FFF).
	VRAM
	// CartRAM is the cartridge RAM (0xA000 - 0xBFFF).
	CartRAM
	// WRAM is the work RAM (0xC000 - 0xDFFF).
	WRAM
	// Echo mirrors the work RAM (0xE000 - 0xFDFF).
	Echo
	// OAM is the sprite attribute table (0xFE00 - 0xFE9F).
	OAM
	// Unusable is the unusable tail of the sprite attribute
	// window (0xFEA0 - 0xFEFF).
	Unusable
	// P1 is the joypad register (0xFF00).
	P1
	// IF is the interrupt flag register (0xFF0F).
	IF
	// DMA is the OAM DMA trigger register (0xFF46). It is not
	// forwarded to the display controller: reads return the last
	// value written.
	DMA
	// Display is the display controller's register blocks
	// (0xFF40 - 0xFF7F, except DMA).
	Display
	// IO is the remainder of the I/O page, which is not decoded.
	IO
	// HRAM is the high RAM (0xFF80 - 0xFFFE).
	HRAM
	// IE is the interrupt enable register (0xFFFF).
	IE

	regionCount
)

var regionNames = [regionCount]string{
	Boot:     "BOOT",
	ROM:      "ROM",
	VRAM:     "VRAM",
	CartRAM:  "CART RAM",
	WRAM:     "WRAM",
	Echo:     "ECHO",
	OAM:      "OAM",
	Unusable: "UNUSABLE",
	P1:       "P1",
	IF:       "IF",
	DMA:      "DMA",
	Display:  "LCD",
	IO:       "IO",
	HRAM:     "HRAM",
	IE:       "IE",
}

func (r Region) String() string {
	if r >= regionCount {
		return fmt.Sprintf("Region(%d)", uint8(r))
	}
	return regionNames[r]
}

// rule matches every address for which address&mask == value.
type rule struct {
	mask, value uint16
	region      Region
}

// memoryMap is the ordered decoding table of the address space. The
// first matching rule wins, so single registers come before the
// blocks that contain them.
var memoryMap = []rule{
	{0xFFFF, 0xFFFF, IE},
	{0xFF80, 0xFF80, HRAM},
	{0xFFFF, 0xFF00, P1},
	{0xFFFF, 0xFF0F, IF},
	{0xFFFF, 0xFF46, DMA},
	{0xFFC0, 0xFF40, Display}, // bits 4-7 of 0x4, 0x5, 0x6 or 0x7
	{0xFF00, 0xFF00, IO},
	{0xFFE0, 0xFEA0, Unusable}, // 0xFEA0 - 0xFEBF
	{0xFFC0, 0xFEC0, Unusable}, // 0xFEC0 - 0xFEFF
	{0xFF00, 0xFE00, OAM},
	{0xE000, 0xE000, Echo},
	{0xE000, 0xC000, WRAM},
	{0xE000, 0xA000, CartRAM},
	{0xE000, 0x8000, VRAM},
	{0xFF00, 0x0000, Boot},
	{0x8000, 0x0000, ROM},
}

// decodeTable is memoryMap flattened so that decoding an address is
// a single lookup.
var decodeTable = compile(memoryMap)

func compile(rules []rule) *[0x10000]Region {
	t := &[0x10000]Region{}
	for i := 0; i < len(t); i++ {
		addr := uint16(i)
		matched := false
		for _, r := range rules {
			if addr&r.mask == r.value {
				t[i] = r.region
				matched = true
				break
			}
		}
		if !matched {
			panic(fmt.Sprintf("mmu: address %04X is not decoded", addr))
		}
	}
	return t
}

// Decode returns the region that address is routed to.
func Decode(address uint16) Region {
	return decodeTable[address]
}

// Span is a contiguous range of addresses routed to the same region.
type Span struct {
	Start, End uint16 // inclusive
	Region     Region
}

func (s Span) String() string {
	return fmt.Sprintf("%04X-%04X %s", s.Start, s.End, s.Region)
}

// MemoryMap returns the address space as a list of contiguous spans,
// in ascending address order.
func MemoryMap() []Span {
	var spans []Span
	start := 0
	for i := 1; i <= len(decodeTable); i++ {
		if i == len(decodeTable) || decodeTable[i] != decodeTable[start] {
			spans = append(spans, Span{
				Start:  uint16(start),
				End:    uint16(i - 1),
				Region: decodeTable[start],
			})
			start = i
		}
	}
	return spans
}
