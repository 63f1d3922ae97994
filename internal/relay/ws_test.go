package relay

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"segmentd/pkg/types"
)

func dialMailbox(t *testing.T, m *Mailbox) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(m.WSHandler(zerolog.Nop()))
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}
	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestWSHandler_SendsCurrentCommandOnConnect(t *testing.T) {
	m := NewMailbox()
	m.Set(types.ControlCommand{Action: "toggle_blur"})

	conn, done := dialMailbox(t, m)
	defer done()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got types.ControlCommand
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Action != "toggle_blur" {
		t.Fatalf("expected toggle_blur, got %+v", got)
	}
}

func TestWSHandler_StreamsUpdates(t *testing.T) {
	m := NewMailbox()
	conn, done := dialMailbox(t, m)
	defer done()

	// Give the handler a moment to subscribe before publishing.
	time.Sleep(50 * time.Millisecond)
	m.Set(types.ControlCommand{Action: "next_slide"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got types.ControlCommand
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Action != "next_slide" {
		t.Fatalf("expected next_slide, got %+v", got)
	}
}
