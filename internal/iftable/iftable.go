// Package iftable implements the interface table collaborator of spec.md
// §6: per-port link cost, the bridge's own MAC, and the port count.
package iftable

import (
	"fmt"

	"github.com/l2switch/rstpd/internal/rstp"
)

// Interface describes one physical or simulated port.
type Interface struct {
	Name     string
	MAC      rstp.MAC
	LinkCost uint32
}

// Table is a fixed-size interface table built at construction time; per
// spec.md §3 the engine assumes a fixed port vector, so Table has no
// Add/Remove.
type Table struct {
	ifaces []Interface
}

// New builds a Table from ifaces in port-index order. The bridge MAC is
// taken from interface 0, per spec.md §3 ("bridgeMac: taken from interface
// 0 or a deterministic fallback"); fallback is the caller's responsibility
// if ifaces is empty.
func New(ifaces []Interface) (*Table, error) {
	if len(ifaces) == 0 {
		return nil, fmt.Errorf("iftable: at least one interface is required")
	}
	return &Table{ifaces: ifaces}, nil
}

func (t *Table) LinkCost(port int) uint32 { return t.ifaces[port].LinkCost }

func (t *Table) BridgeMAC() (rstp.MAC, error) {
	if t.ifaces[0].MAC.IsZero() {
		return rstp.MAC{}, fmt.Errorf("iftable: interface 0 has no MAC and no fallback is configured")
	}
	return t.ifaces[0].MAC, nil
}

func (t *Table) PortCount() int { return len(t.ifaces) }

// Name returns the configured name of port, for logging.
func (t *Table) Name(port int) string { return t.ifaces[port].Name }
