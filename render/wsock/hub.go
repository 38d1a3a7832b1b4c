// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wsock streams scene frames to browser clients over
// WebSocket, and turns their pointer, resize, wheel and config
// messages into scene events.
package wsock

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/synaptic/base/errors"
	"cogentcore.org/synaptic/scene"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

// SendBuffer is the number of messages buffered per client.
// Frames are dropped for clients that fall further behind.
const SendBuffer = 4

// Hub is a [scene.Renderer] that broadcasts each frame to all
// connected clients, and an [http.Handler] that accepts them.
type Hub struct {

	// Sink receives the events decoded from client messages,
	// typically [scene.Scene.Send].
	Sink func(ev scene.Event) bool

	// Upgrader upgrades HTTP requests to WebSocket connections.
	Upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}

	// latest is the most recent frame message, sent to new clients
	latest []byte
}

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

// NewHub returns a new hub sending events to the given sink.
func NewHub(sink func(ev scene.Event) bool) *Hub {
	return &Hub{
		Sink:    sink,
		clients: make(map[*client]struct{}),
	}
}

// NumClients returns the number of connected clients.
func (h *Hub) NumClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Render broadcasts the given frame to all clients.
func (h *Hub) Render(d *scene.Description) error {
	msg, err := frameMessage(d)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = msg
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
		}
	}
	return nil
}

// Release disconnects all clients.
func (h *Hub) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.conn.Close()
	}
}

// ServeHTTP upgrades the request to a WebSocket connection and
// serves the client until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("wsock: upgrade failed", "err", err)
		return
	}
	c := &client{id: uuid.New(), conn: conn, send: make(chan []byte, SendBuffer)}
	c.send <- errors.Log1(json.Marshal(&Message{Type: TypeHello, Client: c.id.String()}))
	h.mu.Lock()
	if h.latest != nil {
		c.send <- h.latest
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	slog.Info("client connected", "client", c.id, "remote", r.RemoteAddr)

	go c.write()
	h.read(c)
}

// write sends queued messages until the send channel is closed.
func (c *client) write() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			c.conn.Close()
			for range c.send {
			}
			return
		}
	}
	c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	c.conn.Close()
}

// read decodes client messages into events until the connection fails.
func (h *Hub) read(c *client) {
	defer h.remove(c)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("wsock: read ended", "client", c.id, "err", err)
			}
			return
		}
		ev, err := Decode(data)
		if err != nil {
			slog.Warn("wsock: dropping message", "client", c.id, "err", err)
			continue
		}
		if h.Sink != nil && !h.Sink(ev) {
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	slog.Info("client disconnected", "client", c.id)
}

// Serve serves the given handler on the given address until
// the context is done, and then shuts the server down.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("serving", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
