// Package simhub is a classical Ethernet hub: a half-duplex, shared-medium
// broadcaster, grounded on the original source's EtherHub.cc. A frame
// arriving on any attached port is rebroadcast to every other attached
// port. Collision synthesis (simultaneous-transmission timing, carried in
// the original via per-gate transmission-channel bookkeeping) is omitted:
// this simulation carries discrete BPDUs rather than timed Ethernet
// signals, so there is nothing for a collision to corrupt.
package simhub

import (
	"github.com/l2switch/rstpd/internal/relay"
	"github.com/l2switch/rstpd/internal/rstp"
)

// Hub is a shared segment that any number of relay ports — from any number
// of engines — can attach to, modeling several bridges cabled into one
// repeater instead of point-to-point links.
type Hub struct {
	medium relay.Medium
}

// NewHub returns an empty hub.
func NewHub() *Hub { return &Hub{} }

// Attach wires r's port to the hub: frames r sends on port are broadcast
// to every other port attached to this hub (on this or any other relay),
// and frames broadcast by others arrive via deliver. The returned func
// detaches the port from the hub.
func (h *Hub) Attach(r *relay.MemoryRelay, port int, deliver func(rstp.Frame)) func() {
	inject, detach := h.medium.Attach(deliver)
	r.Wire(port, inject)
	return detach
}
