// Package relay holds the remote-control command mailbox: a single
// last-write-wins slot a presenter's phone writes into and the streaming
// front end polls or subscribes to. The mailbox is an explicit, injectable
// state holder; nothing in the process reaches it except through the
// handle handed out at construction.
package relay

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"segmentd/pkg/types"
)

// Mailbox stores the most recent control command. Safe for concurrent use.
type Mailbox struct {
	mu   sync.RWMutex
	cmd  *types.ControlCommand
	subs map[chan types.ControlCommand]struct{}
}

func NewMailbox() *Mailbox {
	return &Mailbox{subs: make(map[chan types.ControlCommand]struct{})}
}

// Set stores cmd, overwriting any previous command, and fans it out to
// subscribers. The stored command gets a fresh id and timestamp.
func (m *Mailbox) Set(cmd types.ControlCommand) types.ControlCommand {
	cmd.ID = uuid.NewString()
	cmd.UpdatedUnixMS = time.Now().UnixMilli()

	m.mu.Lock()
	m.cmd = &cmd
	for ch := range m.subs {
		// Drop rather than block: a slow subscriber only ever misses
		// intermediate commands, never the final one (it re-reads on
		// reconnect).
		select {
		case ch <- cmd:
		default:
		}
	}
	m.mu.Unlock()
	return cmd
}

// Get returns the current command, if any.
func (m *Mailbox) Get() (types.ControlCommand, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cmd == nil {
		return types.ControlCommand{}, false
	}
	return *m.cmd, true
}

// Subscribe registers for future commands. The returned cancel func must be
// called to release the subscription.
func (m *Mailbox) Subscribe() (<-chan types.ControlCommand, func()) {
	ch := make(chan types.ControlCommand, 8)
	m.mu.Lock()
	m.subs[ch] = struct{}{}
	m.mu.Unlock()
	cancel := func() {
		m.mu.Lock()
		delete(m.subs, ch)
		m.mu.Unlock()
	}
	return ch, cancel
}
