package simhub

import (
	"testing"

	"github.com/l2switch/rstpd/internal/relay"
	"github.com/l2switch/rstpd/internal/rstp"
)

func TestHubBroadcastsAcrossAttachedRelays(t *testing.T) {
	hub := NewHub()

	relayA := relay.NewMemoryRelay(1)
	relayB := relay.NewMemoryRelay(1)
	relayC := relay.NewMemoryRelay(1)

	var bGot, cGot int
	hub.Attach(relayA, 0, func(rstp.Frame) {})
	hub.Attach(relayB, 0, func(rstp.Frame) { bGot++ })
	detachC := hub.Attach(relayC, 0, func(rstp.Frame) { cGot++ })

	if err := relayA.Send(rstp.Frame{RootPriority: 1}, 0); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if bGot != 1 || cGot != 1 {
		t.Fatalf("expected both other relays to receive the broadcast, got b=%d c=%d", bGot, cGot)
	}

	detachC()
	if err := relayA.Send(rstp.Frame{RootPriority: 2}, 0); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if bGot != 2 {
		t.Fatalf("b should still receive after c detaches, got %d", bGot)
	}
	if cGot != 1 {
		t.Fatalf("c should not receive after detaching, got %d", cGot)
	}
}
