package room

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"codenames/internal/game"
)

// fakeConn stands in for a websocket. Reads block on the frames channel and
// return io.EOF once the conn is closed; writes are recorded.
type fakeConn struct {
	frames chan []byte

	mu     sync.Mutex
	writes [][]byte
	closed bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{frames: make(chan []byte, 16)}
}

func (f *fakeConn) Read() ([]byte, error) {
	data, ok := <-f.frames
	if !ok {
		return nil, io.EOF
	}
	return data, nil
}

func (f *fakeConn) Write(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, data)
	return nil
}

func (f *fakeConn) Ping() error { return nil }

func (f *fakeConn) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.frames)
	}
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// push queues an inbound frame as the client would send it.
func (f *fakeConn) push(t *testing.T, msgType string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	frame, err := json.Marshal(WSMessage{Type: msgType, Data: data})
	require.NoError(t, err)
	f.frames <- frame
}

type stubSource struct {
	words []string
}

func (s stubSource) Words() []string { return s.words }

func testSource() stubSource {
	pool := make([]string, 40)
	for i := range pool {
		pool[i] = fmt.Sprintf("word%02d", i)
	}
	return stubSource{words: pool}
}

// fixedBoard lays cards out deterministically: 0-8 red, 9-16 blue,
// 17-23 neutral, 24 assassin.
func fixedBoard() game.Board {
	var b game.Board
	for i := 0; i < game.BoardSize; i++ {
		c := game.Card{Word: fmt.Sprintf("word%02d", i), Position: i}
		switch {
		case i < game.RedCards:
			c.Color = game.ColorRed
		case i < game.RedCards+game.BlueCards:
			c.Color = game.ColorBlue
		case i < game.RedCards+game.BlueCards+game.NeutralCards:
			c.Color = game.ColorNeutral
		default:
			c.Color = game.ColorAssassin
		}
		b[i] = c
	}
	return b
}

const (
	idxRed      = 0
	idxBlue     = 9
	idxNeutral  = 17
	idxAssassin = 24
)

// recv pops the next queued outbound message for the player.
func recv(t *testing.T, p *Player) WSMessage {
	t.Helper()
	select {
	case raw := <-p.send:
		var msg WSMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a message")
		return WSMessage{}
	}
}

// recvTyped skips to the next message of the wanted type and decodes it.
func recvTyped(t *testing.T, p *Player, msgType string, into any) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case raw := <-p.send:
			var msg WSMessage
			require.NoError(t, json.Unmarshal(raw, &msg))
			if msg.Type != msgType {
				continue
			}
			require.NoError(t, json.Unmarshal(msg.Data, into))
			return
		case <-deadline:
			t.Fatalf("timed out waiting for %q", msgType)
		}
	}
}

func assertNoMessage(t *testing.T, p *Player) {
	t.Helper()
	select {
	case raw := <-p.send:
		t.Fatalf("unexpected message: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}
