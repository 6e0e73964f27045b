package ram

import "testing"

func TestRAM(t *testing.T) {
	r := NewRAM(0x2000)

	t.Run("zero initialised", func(t *testing.T) {
		for i := 0; i < r.Size(); i++ {
			if v := r.Read(uint16(i)); v != 0 {
				t.Fatalf("expected 0 at %04X, got %02X", i, v)
			}
		}
	})
	t.Run("masked", func(t *testing.T) {
		r.Write(0xC010, 0x42)
		if v := r.Read(0x0010); v != 0x42 {
			t.Errorf("expected 0x42, got %02X", v)
		}
		if v := r.Read(0xE010); v != 0x42 {
			t.Errorf("expected 0x42 through alias, got %02X", v)
		}
	})
	t.Run("reset", func(t *testing.T) {
		r.Write(0x0001, 0xFF)
		r.Reset()
		if v := r.Read(0x0001); v != 0 {
			t.Errorf("expected 0 after reset, got %02X", v)
		}
	})
	t.Run("bytes is a copy", func(t *testing.T) {
		r.Write(0x0002, 0x12)
		b := r.Bytes()
		b[2] = 0x34
		if v := r.Read(0x0002); v != 0x12 {
			t.Errorf("expected 0x12, got %02X", v)
		}
	})
}

func TestNewRAM_InvalidSize(t *testing.T) {
	for _, size := range []uint32{0, 3, 0x10001, 127} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for size %d", size)
				}
			}()
			NewRAM(size)
		}()
	}
}

func BenchmarkRAM_Read(b *testing.B) {
	r := NewRAM(0x2000)
	for i := 0; i < b.N; i++ {
		_ = r.Read(uint16(i))
	}
}
