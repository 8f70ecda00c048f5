package relay

import (
	"fmt"
	"sync"

	"github.com/l2switch/rstpd/internal/rstp"
)

// MemoryRelay is an in-memory rstp.Relay for tests and the end-to-end
// scenarios of spec.md §8: Send hands the outbound frame straight to
// whatever sink Wire has attached to that port, bypassing internal/bpdu's
// wire encoding entirely.
type MemoryRelay struct {
	sinks []func(rstp.Frame)
}

// NewMemoryRelay creates a relay with portCount ports, each initially
// unwired (Send on an unwired port is a no-op, like an unplugged cable).
func NewMemoryRelay(portCount int) *MemoryRelay {
	return &MemoryRelay{sinks: make([]func(rstp.Frame), portCount)}
}

// Wire attaches sink as the destination for port's outbound frames: either
// another engine's inbox directly (a point-to-point link) or a Medium's
// inject function (a shared segment, see simhub).
func (r *MemoryRelay) Wire(port int, sink func(rstp.Frame)) {
	r.sinks[port] = sink
}

// Send implements rstp.Relay.
func (r *MemoryRelay) Send(frame rstp.Frame, port int) error {
	if port < 0 || port >= len(r.sinks) {
		return fmt.Errorf("relay: port %d out of range", port)
	}
	if sink := r.sinks[port]; sink != nil {
		sink(frame)
	}
	return nil
}

// Medium is a shared broadcast segment that several ports (possibly
// belonging to different engines) Attach to: whatever one tap injects, all
// others receive, modeling a length of shared Ethernet cable or, through
// internal/simhub, a classical repeating hub.
type Medium struct {
	mu   sync.Mutex
	taps []*tap
}

type tap struct {
	sink func(rstp.Frame)
}

// Attach registers sink as one tap on the medium. The returned inject
// function broadcasts a frame to every other attached tap; detach removes
// this tap.
func (m *Medium) Attach(sink func(rstp.Frame)) (inject func(rstp.Frame), detach func()) {
	m.mu.Lock()
	t := &tap{sink: sink}
	m.taps = append(m.taps, t)
	m.mu.Unlock()

	inject = func(f rstp.Frame) {
		m.mu.Lock()
		taps := append([]*tap(nil), m.taps...)
		m.mu.Unlock()
		for _, other := range taps {
			if other == t {
				continue
			}
			other.sink(f)
		}
	}
	detach = func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, existing := range m.taps {
			if existing == t {
				m.taps = append(m.taps[:i], m.taps[i+1:]...)
				return
			}
		}
	}
	return inject, detach
}
