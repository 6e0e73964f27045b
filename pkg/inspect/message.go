package inspect

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

const (
	// MessageSnapshot carries the contents of a window.
	MessageSnapshot byte = iota + 1
)

const (
	// FlagCompressed is set when the payload is brotli compressed.
	FlagCompressed byte = 1 << iota
)

const headerSize = 4

// encode builds a snapshot message:
//
//	Byte 0   - message kind (MessageSnapshot)
//	Byte 1-2 - start address (little endian)
//	Byte 3   - flags
//	Byte 4-  - payload
func encode(s Snapshot, quality int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{MessageSnapshot, 0, 0, 0})
	binary.LittleEndian.PutUint16(buf.Bytes()[1:3], s.Start)

	if quality < 0 {
		buf.Write(s.Data)
		return buf.Bytes(), nil
	}

	buf.Bytes()[3] |= FlagCompressed
	w := brotli.NewWriterLevel(&buf, quality)
	if _, err := w.Write(s.Data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a snapshot message, decompressing the payload if
// necessary. The window name is not transmitted.
func Decode(msg []byte) (Snapshot, error) {
	if len(msg) < headerSize || msg[0] != MessageSnapshot {
		return Snapshot{}, fmt.Errorf("inspect: invalid message")
	}

	s := Snapshot{}
	s.Start = binary.LittleEndian.Uint16(msg[1:3])
	s.Data = msg[headerSize:]
	if msg[3]&FlagCompressed != 0 {
		data, err := io.ReadAll(brotli.NewReader(bytes.NewReader(s.Data)))
		if err != nil {
			return Snapshot{}, fmt.Errorf("inspect: decompressing snapshot: %w", err)
		}
		s.Data = data
	}
	s.Length = len(s.Data)
	return s, nil
}
