package bits

import "testing"

func TestWord(t *testing.T) {
	if w := Word(0x12, 0x34); w != 0x1234 {
		t.Errorf("expected 0x1234, got %04X", w)
	}
	hi, lo := Split(0xBEEF)
	if hi != 0xBE || lo != 0xEF {
		t.Errorf("expected BE EF, got %02X %02X", hi, lo)
	}
}

func TestBits(t *testing.T) {
	v := Set(0, 3)
	if !Test(v, 3) || Val(v, 3) != 1 || Reset(v, 3) != 0 {
		t.Errorf("unexpected bit operations on %08b", v)
	}
}
