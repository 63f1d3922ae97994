package relay

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin policy is enforced by the fronting proxy
	CheckOrigin: func(*http.Request) bool { return true },
}

const writeWait = 10 * time.Second

// WSHandler streams command updates to a websocket client. The current
// command (if any) is sent first, then every subsequent Set.
func (m *Mailbox) WSHandler(log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Debug().Err(err).Msg("websocket upgrade failed")
			return
		}
		defer conn.Close()

		updates, cancel := m.Subscribe()
		defer cancel()

		if cmd, ok := m.Get(); ok {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(cmd); err != nil {
				return
			}
		}

		// Reader goroutine: we never expect client frames, but reading
		// is what surfaces the close handshake.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case cmd := <-updates:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(cmd); err != nil {
					return
				}
			case <-done:
				return
			case <-r.Context().Done():
				return
			}
		}
	}
}
