package mmu

import (
	"testing"

	"github.com/thelolagemann/gbmmu/internal/types"
)

// reference decodes an address with a plain comparison chain over
// the documented memory map, independently of memoryMap.
func reference(a uint16) Region {
	switch {
	case a < types.BootEnd:
		return Boot
	case a < types.ROMEnd:
		return ROM
	case a < types.VRAMEnd:
		return VRAM
	case a < types.CartRAMEnd:
		return CartRAM
	case a < types.WRAMEnd:
		return WRAM
	case a < types.EchoEnd:
		return Echo
	case a < types.OAMEnd:
		return OAM
	case a < types.UnusableEnd:
		return Unusable
	case a == types.P1:
		return P1
	case a == types.IF:
		return IF
	case a == types.DMA:
		return DMA
	case a >= types.LCDC && a < types.IOEnd:
		return Display
	case a < types.IOEnd:
		return IO
	case a == types.IE:
		return IE
	default:
		return HRAM
	}
}

func TestDecode(t *testing.T) {
	for a := 0; a < 0x10000; a++ {
		if got, want := Decode(uint16(a)), reference(uint16(a)); got != want {
			t.Fatalf("%04X: expected %s, got %s", a, want, got)
		}
	}
}

func TestDecode_DisplayBlocks(t *testing.T) {
	for a := uint16(0xFF00); a < 0xFF80; a++ {
		block := (a >> 4) & 0xF
		isDisplay := block >= 4 && block <= 7 && a != types.DMA
		if (Decode(a) == Display) != isDisplay {
			t.Errorf("%04X: unexpected region %s", a, Decode(a))
		}
	}
}

func TestMemoryMap(t *testing.T) {
	want := []Span{
		{0x0000, 0x00FF, Boot},
		{0x0100, 0x7FFF, ROM},
		{0x8000, 0x9FFF, VRAM},
		{0xA000, 0xBFFF, CartRAM},
		{0xC000, 0xDFFF, WRAM},
		{0xE000, 0xFDFF, Echo},
		{0xFE00, 0xFE9F, OAM},
		{0xFEA0, 0xFEFF, Unusable},
		{0xFF00, 0xFF00, P1},
		{0xFF01, 0xFF0E, IO},
		{0xFF0F, 0xFF0F, IF},
		{0xFF10, 0xFF3F, IO},
		{0xFF40, 0xFF45, Display},
		{0xFF46, 0xFF46, DMA},
		{0xFF47, 0xFF7F, Display},
		{0xFF80, 0xFFFE, HRAM},
		{0xFFFF, 0xFFFF, IE},
	}

	got := MemoryMap()
	if len(got) != len(want) {
		t.Fatalf("expected %d spans, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRegion_String(t *testing.T) {
	if WRAM.String() != "WRAM" || regionCount.String() != "Region(15)" {
		t.Errorf("unexpected region names %s %s", WRAM, regionCount)
	}
}

func TestCompile_Undecoded(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an incomplete memory map")
		}
	}()
	compile([]rule{{0x8000, 0x0000, ROM}})
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Decode(uint16(i))
	}
}
