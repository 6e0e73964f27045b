// Package inspect streams snapshots of the emulated address space to
// websocket clients, for use by external memory viewers.
package inspect

import (
	"github.com/thelolagemann/gbmmu/internal/types"
)

// Reader is anything that can read the address space, typically the
// MMU.
type Reader interface {
	ReadByte(address uint16) uint8
}

// Window is a named range of the address space.
type Window struct {
	Name   string
	Start  uint16
	Length int
}

// DefaultWindows are the RAM regions of the address space.
var DefaultWindows = []Window{
	{"VRAM", types.VRAMStart, types.VRAMSize},
	{"CART RAM", types.CartRAMStart, types.CartRAMSize},
	{"WRAM", types.WRAMStart, types.WRAMSize},
	{"OAM", types.OAMStart, types.OAMSize},
	{"IO", types.IOStart, int(types.IOEnd - types.IOStart)},
	{"HRAM", types.HRAMStart, types.HRAMSize},
}

// Snapshot is a copy of a window taken at a point in time.
type Snapshot struct {
	Window
	Data []byte
}

// Capture reads each window through r. It must be called from the
// goroutine that owns r, between accesses made by the emulated CPU.
func Capture(r Reader, windows ...Window) []Snapshot {
	snapshots := make([]Snapshot, 0, len(windows))
	for _, w := range windows {
		data := make([]byte, w.Length)
		for i := range data {
			data[i] = r.ReadByte(w.Start + uint16(i))
		}
		snapshots = append(snapshots, Snapshot{Window: w, Data: data})
	}
	return snapshots
}
