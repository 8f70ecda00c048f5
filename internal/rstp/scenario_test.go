package rstp

import "testing"

// peerRelay delivers every sent frame straight into peer's Deliver, modeling
// a single point-to-point link between two bridges with no transit delay.
type peerRelay struct {
	peer *Engine
}

func (r *peerRelay) Send(f Frame, port int) error {
	return r.peer.Deliver(port, f)
}

// TestTwoBridgeTopologyConverges drives the hello/migrate/forward-upgrade
// self-events directly (no real timers) across two point-to-point-linked
// bridges and checks that the lower-priority bridge ends up Root on its
// peer and Designated/Forwarding on its own port.
func TestTwoBridgeTopologyConverges(t *testing.T) {
	macA, macB := mac(1), mac(2)

	cfgA := DefaultConfig()
	cfgA.BridgePriority = 4096
	cfgB := DefaultConfig()
	cfgB.BridgePriority = 32768

	ifA := &fakeIfTable{linkCost: []uint32{200000}, mac: macA}
	ifB := &fakeIfTable{linkCost: []uint32{200000}, mac: macB}

	var a, b *Engine
	relayA := &peerRelay{}
	relayB := &peerRelay{}

	var err error
	a, err = NewEngine(cfgA, macA, []PortConfig{{}}, &fakeMacTable{}, ifA, relayA)
	if err != nil {
		t.Fatalf("NewEngine a: %v", err)
	}
	b, err = NewEngine(cfgB, macB, []PortConfig{{}}, &fakeMacTable{}, ifB, relayB)
	if err != nil {
		t.Fatalf("NewEngine b: %v", err)
	}
	relayA.peer = b
	relayB.peer = a

	a.Start()
	b.Start()

	a.handleHello()
	b.handleHello()

	a.handleMigrate()
	a.handleForwardUpgrade()
	a.handleForwardUpgrade()

	if got := b.ports[0].RoleState; got != RootForwarding() {
		t.Fatalf("bridge b's port = %s, want Root/Forwarding", got)
	}
	if got := a.ports[0].RoleState; got != DesignatedForwarding() {
		t.Fatalf("bridge a's port = %s, want Designated/Forwarding", got)
	}
}
