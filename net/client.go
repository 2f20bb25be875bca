package net

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	eventBuffer  = 256
	redialBase   = time.Second
	redialMax    = 10 * time.Second
	writeTimeout = 5 * time.Second
)

// Client is a websocket event feed. Decoded events arrive on a buffered
// channel; when the buffer is full, events are dropped rather than
// stalling the read loop (the game loop will catch up from later
// authoritative state).
type Client struct {
	url string
	log *zap.Logger

	events  chan Event
	closeCh chan struct{}
	once    sync.Once

	mu   sync.Mutex
	conn *websocket.Conn
}

// Dial connects to a feed URL (ws:// or wss://) and starts the read
// loop. The logger may be nil.
func Dial(ctx context.Context, url string, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("net: dial %s: %w", url, err)
	}

	c := &Client{
		url:     url,
		log:     log,
		events:  make(chan Event, eventBuffer),
		closeCh: make(chan struct{}),
		conn:    conn,
	}
	log.Info("connected", zap.String("url", url))
	go c.readLoop(conn)
	return c, nil
}

// Events returns the decoded event stream.
func (c *Client) Events() <-chan Event { return c.events }

// Send writes one event to the server (e.g. local position reports).
func (c *Client) Send(e Event) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("net: send: not connected")
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(e); err != nil {
		return fmt.Errorf("net: send: %w", err)
	}
	return nil
}

// Close shuts down the read loop and the connection.
func (c *Client) Close() error {
	var err error
	c.once.Do(func() {
		close(c.closeCh)
		c.mu.Lock()
		if c.conn != nil {
			err = c.conn.Close()
		}
		c.mu.Unlock()
	})
	return err
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		var e Event
		if err := conn.ReadJSON(&e); err != nil {
			select {
			case <-c.closeCh:
				return
			default:
			}
			c.log.Warn("read failed, reconnecting", zap.Error(err))
			conn = c.redial()
			if conn == nil {
				return
			}
			continue
		}

		select {
		case c.events <- e:
		case <-c.closeCh:
			return
		default:
			c.log.Debug("event buffer full, dropping", zap.String("type", e.Type))
		}
	}
}

// redial reconnects with exponential backoff until it succeeds or the
// client is closed.
func (c *Client) redial() *websocket.Conn {
	c.mu.Lock()
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.mu.Unlock()

	backoff := redialBase
	for {
		select {
		case <-c.closeCh:
			return nil
		case <-time.After(backoff):
		}

		conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
		if err == nil {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
			c.log.Info("reconnected", zap.String("url", c.url))
			return conn
		}
		c.log.Warn("redial failed", zap.Error(err), zap.Duration("backoff", backoff))
		if backoff *= 2; backoff > redialMax {
			backoff = redialMax
		}
	}
}
