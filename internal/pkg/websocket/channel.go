package websocket

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/quickbite/dispatch/internal/pkg/models"
)

// ErrChannelClosed is returned by Send when the underlying connection is gone
var ErrChannelClosed = errors.New("channel closed")

// Channel is a non-owning handle to a transport connection. The registry
// holds channels but never manages their lifetime; the transport layer owns
// the connection and tells the registry when to let go.
type Channel interface {
	// Send delivers one message, bounded by the channel's write timeout.
	// It never blocks indefinitely on a slow or broken peer.
	Send(message models.DispatchMessage) error
	// IsOpen reports whether the underlying connection is still usable
	IsOpen() bool
}

// wsChannel wraps a gorilla WebSocket connection as a Channel. Writes are
// serialized because gorilla connections allow only one concurrent writer.
type wsChannel struct {
	conn    *websocket.Conn
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

// NewChannel wraps a WebSocket connection with a bounded-send channel handle
func NewChannel(conn *websocket.Conn, writeTimeout time.Duration) Channel {
	if writeTimeout <= 0 {
		writeTimeout = 250 * time.Millisecond
	}
	return &wsChannel{conn: conn, timeout: writeTimeout}
}

func (ch *wsChannel) Send(message models.DispatchMessage) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.closed {
		return ErrChannelClosed
	}

	_ = ch.conn.SetWriteDeadline(time.Now().Add(ch.timeout))
	if err := ch.conn.WriteJSON(message); err != nil {
		// A failed write means the peer is gone; mark the channel so the
		// registry sweeps it
		ch.closed = true
		return err
	}

	return nil
}

func (ch *wsChannel) IsOpen() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return !ch.closed
}
