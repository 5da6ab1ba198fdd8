package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// client is one connected WebSocket consumer of the live update feed.
type client struct {
	conn *websocket.Conn
	send chan Update

	done     chan struct{}
	dropOnce sync.Once
}

// drop signals the write pump to stop. The read loop then fails on the
// closed connection and tears the client down.
func (c *client) drop() {
	c.dropOnce.Do(func() { close(c.done) })
}

// handleLive upgrades the connection and pumps updates both ways:
// outbound hub broadcasts to the client, inbound {"path","value"}
// commands into the registry.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan Update, s.config.SendBuffer),
		done: make(chan struct{}),
	}
	s.hub.add(c)
	defer func() {
		s.hub.remove(c)
		c.drop()
		conn.Close()
	}()

	go s.writePump(c)
	s.readLoop(c)
}

// readLoop reads inbound command messages until the connection closes.
func (s *Server) readLoop(c *client) {
	c.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("websocket read error", "error", err)
			}
			return
		}

		var cmd Update
		if err := json.Unmarshal(msg, &cmd); err != nil {
			s.logger.Warn("invalid command envelope", "error", err)
			continue
		}

		found, err := s.reg.UpdateByPath(cmd.Path, cmd.Value)
		switch {
		case !found:
			s.logger.Warn("update for unknown path", "path", cmd.Path)
		case err != nil:
			s.logger.Warn("update rejected", "path", cmd.Path, "error", err)
		default:
			s.logger.Debug("update applied", "path", cmd.Path, "value", cmd.Value)
		}
	}
}

// writePump forwards queued updates to the client and keeps the
// connection alive with pings.
func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(s.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case u := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := c.conn.WriteJSON(u); err != nil {
				c.drop()
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.drop()
				return
			}

		case <-c.done:
			c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(s.config.WriteTimeout))
			return
		}
	}
}
