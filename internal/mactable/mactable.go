// Package mactable implements the MAC learning table collaborator of
// spec.md §6, kept external to the engine per spec.md §1's "deliberately
// out of scope" list — the engine only ever calls Flush and CopyTable.
package mactable

import "sync"

// Table is an in-memory dynamic MAC learning table: Learn records a
// station's arrival port, Flush forgets every station learned on a port,
// and CopyTable retags entries from one port to another, so a failover
// does not require relearning (spec.md §6).
type Table struct {
	mu      sync.Mutex
	entries map[[6]byte]int
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[[6]byte]int)}
}

// Learn records that mac was last seen arriving on port.
func (t *Table) Learn(mac [6]byte, port int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[mac] = port
}

// Flush removes every entry learned on port.
func (t *Table) Flush(port int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for mac, p := range t.entries {
		if p == port {
			delete(t.entries, mac)
		}
	}
}

// CopyTable retags every entry learned on from as learned on to.
func (t *Table) CopyTable(from, to int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for mac, p := range t.entries {
		if p == from {
			t.entries[mac] = to
		}
	}
}

// PortOf reports the port mac was last learned on, if any.
func (t *Table) PortOf(mac [6]byte) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.entries[mac]
	return p, ok
}

// Len reports the number of learned entries, for tests.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
