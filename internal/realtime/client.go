package realtime

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// writeWait bounds a single frame write to the peer.
	writeWait = 10 * time.Second

	// sendQueueSize is how many outbound frames a peer may lag behind
	// before it is treated as unresponsive.
	sendQueueSize = 16
)

// ErrSlowSubscriber reports a peer whose outbound queue is full.
var ErrSlowSubscriber = errors.New("subscriber send queue full")

// Client wraps a websocket connection as a hub subscriber. Frames are
// queued and written by a dedicated pump goroutine, so Send never blocks
// on a peer that has stopped reading.
type Client struct {
	conn      *websocket.Conn
	logger    *zap.SugaredLogger
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient constructs a client wrapper around an upgraded connection and
// starts its write pump.
func NewClient(conn *websocket.Conn, logger *zap.SugaredLogger) *Client {
	c := &Client{
		conn:   conn,
		logger: logger,
		send:   make(chan []byte, sendQueueSize),
		done:   make(chan struct{}),
	}
	go c.writePump()
	return c
}

// Send queues a message for delivery. It returns ErrSlowSubscriber when
// the queue is full; the caller is expected to drop the subscriber.
func (c *Client) Send(payload []byte) error {
	select {
	case <-c.done:
		return errors.New("subscriber closed")
	case c.send <- payload:
		return nil
	default:
		return ErrSlowSubscriber
	}
}

// Close terminates the connection and stops the write pump. Safe to call
// more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// writePump drains the queue onto the connection. Each write carries a
// deadline, so a dead peer fails the write instead of holding the pump.
func (c *Client) writePump() {
	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.logger.Warnw("websocket send failed", "error", err)
				c.Close()
				return
			}
		}
	}
}
