package inspect

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memory [0x10000]uint8

func (m *memory) ReadByte(address uint16) uint8 {
	return m[address]
}

func TestCapture(t *testing.T) {
	m := &memory{}
	for i := range m {
		m[i] = uint8(i)
	}

	snapshots := Capture(m, Window{"A", 0xC000, 4}, Window{"B", 0xFFFE, 2})
	require.Len(t, snapshots, 2)
	assert.Equal(t, "A", snapshots[0].Name)
	assert.Equal(t, []byte{0x00, 0x01, 0x02, 0x03}, snapshots[0].Data)
	assert.Equal(t, []byte{0xFE, 0xFF}, snapshots[1].Data)
}

func TestCapture_DefaultWindows(t *testing.T) {
	snapshots := Capture(&memory{}, DefaultWindows...)
	require.Len(t, snapshots, len(DefaultWindows))
	for i, s := range snapshots {
		assert.Len(t, s.Data, DefaultWindows[i].Length, s.Name)
	}
}

func TestEncodeDecode(t *testing.T) {
	s := Snapshot{Window: Window{"HRAM", 0xFF80, 8}, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}}

	t.Run("uncompressed", func(t *testing.T) {
		msg, err := encode(s, -1)
		require.NoError(t, err)
		assert.Equal(t, []byte{MessageSnapshot, 0x80, 0xFF, 0}, msg[:headerSize])

		got, err := Decode(msg)
		require.NoError(t, err)
		assert.Equal(t, uint16(0xFF80), got.Start)
		assert.Equal(t, s.Data, got.Data)
	})
	t.Run("compressed", func(t *testing.T) {
		msg, err := encode(s, 5)
		require.NoError(t, err)
		assert.Equal(t, FlagCompressed, msg[3]&FlagCompressed)

		got, err := Decode(msg)
		require.NoError(t, err)
		assert.Equal(t, s.Data, got.Data)
		assert.Equal(t, 8, got.Length)
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := Decode([]byte{MessageSnapshot, 0})
		assert.Error(t, err)
		_, err = Decode([]byte{0xFF, 0, 0, 0})
		assert.Error(t, err)
	})
}

func TestHub_PublishSkipsUnchanged(t *testing.T) {
	h := NewHub()
	s := []Snapshot{{Window: Window{"WRAM", 0xC000, 2}, Data: []byte{1, 2}}}

	assert.Equal(t, 1, h.Publish(s))
	assert.Equal(t, 0, h.Publish(s))

	s[0].Data = []byte{2, 1}
	assert.Equal(t, 1, h.Publish(s))
}

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h.Handler())
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func receive(t *testing.T, conn *websocket.Conn) Snapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	kind, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, kind)

	s, err := Decode(msg)
	require.NoError(t, err)
	return s
}

func TestHub_Broadcast(t *testing.T) {
	for _, tt := range []struct {
		name string
		opts []HubOpt
	}{
		{"uncompressed", nil},
		{"compressed", []HubOpt{WithCompression(4)}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			h := NewHub(tt.opts...)
			go h.Run(ctx)

			conn := dial(t, h)
			h.Publish([]Snapshot{{Window: Window{"OAM", 0xFE00, 3}, Data: []byte{9, 8, 7}}})

			s := receive(t, conn)
			assert.Equal(t, uint16(0xFE00), s.Start)
			assert.Equal(t, []byte{9, 8, 7}, s.Data)
		})
	}
}

func TestHub_LateClientReceivesLatest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub()
	go h.Run(ctx)

	require.Equal(t, 1, h.Publish([]Snapshot{{Window: Window{"HRAM", 0xFF80, 2}, Data: []byte{0xAB, 0xCD}}}))
	// wait for the hub to take the message off the queue
	require.Eventually(t, func() bool { return len(h.broadcast) == 0 }, time.Second, 10*time.Millisecond)

	conn := dial(t, h)
	s := receive(t, conn)
	assert.Equal(t, uint16(0xFF80), s.Start)
	assert.Equal(t, []byte{0xAB, 0xCD}, s.Data)
}
