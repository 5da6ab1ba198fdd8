package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fieldwatch-dev/fieldwatch/pkg/observe"
)

func dialLive(t *testing.T, srv *Server) (*websocket.Conn, func()) {
	t.Helper()
	ts := httptest.NewServer(srv.Handler())
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("dial error: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}

	// The handler registers the client with the hub right after the
	// handshake; wait until it shows up before mutating values.
	deadline := time.Now().Add(2 * time.Second)
	for srv.Hub().ClientCount() == 0 {
		if time.Now().After(deadline) {
			conn.Close()
			ts.Close()
			t.Fatal("client never registered with hub")
		}
		time.Sleep(5 * time.Millisecond)
	}

	return conn, func() {
		conn.Close()
		ts.Close()
	}
}

func TestLiveFeedBroadcastsUpdates(t *testing.T) {
	reg, srv := newTestServer()
	d1 := observe.NewValue(reg, nil, "d1", 0.0)

	conn, cleanup := dialLive(t, srv)
	defer cleanup()

	d1.Set(6.555)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	var u Update
	if err := json.Unmarshal(msg, &u); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if u.Path != "d1" || u.Value != "6.555" {
		t.Errorf("expected (d1, 6.555), got (%s, %s)", u.Path, u.Value)
	}
}

func TestLiveFeedAcceptsCommands(t *testing.T) {
	reg, srv := newTestServer()
	i1 := observe.NewValue(reg, nil, "i1", 0)

	conn, cleanup := dialLive(t, srv)
	defer cleanup()

	if err := conn.WriteJSON(Update{Path: "i1", Value: "45"}); err != nil {
		t.Fatalf("write error: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for i1.Get() != 45 {
		if time.Now().After(deadline) {
			t.Fatalf("value never applied, still %d", i1.Get())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestLiveFeedIgnoresGarbageCommands(t *testing.T) {
	reg, srv := newTestServer()
	i1 := observe.NewValue(reg, nil, "i1", 3)

	conn, cleanup := dialLive(t, srv)
	defer cleanup()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write error: %v", err)
	}

	// The connection must survive a bad envelope and keep applying
	// later, well-formed commands.
	if err := conn.WriteJSON(Update{Path: "i1", Value: "9"}); err != nil {
		t.Fatalf("write error: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for i1.Get() != 9 {
		if time.Now().After(deadline) {
			t.Fatalf("value never applied, still %d", i1.Get())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
