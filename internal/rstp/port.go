// port.go
package rstp

import "time"

// PortInfo is the durable per-port record of spec.md §3: the best priority
// vector received (or locally originated) on the port, its role/state, its
// aging counters and its tc-while deadline.
type PortInfo struct {
	Index int

	RoleState RoleState
	Edge      bool
	LinkCost  uint32

	Vector PriorityVector

	Age      uint16
	LostBPDU int

	// TCWhile is the absolute deadline (spec.md glossary) until which
	// outbound BPDUs on this port carry the TC flag. Zero means "not set".
	TCWhile time.Time

	// PortPriority is this bridge's own configured priority for the port,
	// used as pp whenever this bridge originates a vector on the port
	// (spec.md §4.5: "port identity always local").
	PortPriority uint8
}

func (p *PortInfo) forwarding() bool {
	return p.RoleState.State() == StateForwarding
}

// tcActive reports whether, at instant now, outbound BPDUs on this port
// must carry the TC flag.
func (p *PortInfo) tcActive(now time.Time) bool {
	return !p.TCWhile.IsZero() && now.Before(p.TCWhile)
}

func (p *PortInfo) setTCWhile(now time.Time, d time.Duration) {
	p.TCWhile = now.Add(d)
}

// alternateKey is the (rpc, bp, ba, pp, pn) tuple spec.md §4.3 ranks
// Alternate ports by — root identity is irrelevant since every Alternate
// candidate already points at the same root as the current root port.
type alternateKey struct {
	rootPathCost   uint32
	bridgePriority uint16
	bridgeMAC      MAC
	portPriority   uint8
	portNum        uint16
}

func (p *PortInfo) alternateKey() alternateKey {
	v := p.Vector
	return alternateKey{v.RootPathCost, v.BridgePriority, v.BridgeMAC, v.PortPriority, v.PortNum}
}

// less reports whether k is a better (lower) alternate candidate than o.
func (k alternateKey) less(o alternateKey) bool {
	if k.rootPathCost != o.rootPathCost {
		return k.rootPathCost < o.rootPathCost
	}
	if k.bridgePriority != o.bridgePriority {
		return k.bridgePriority < o.bridgePriority
	}
	if c := compareMAC(k.bridgeMAC, o.bridgeMAC); c != 0 {
		return c < 0
	}
	if k.portPriority != o.portPriority {
		return k.portPriority < o.portPriority
	}
	return k.portNum < o.portNum
}
