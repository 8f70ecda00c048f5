package rstp

import "testing"

func TestHandleHelloFloodsEligiblePorts(t *testing.T) {
	e, _, relay, _ := newTestEngine(t, 2, 32768)
	e.Start()
	e.ports[0].RoleState = DesignatedForwarding()
	e.ports[1].RoleState = DesignatedForwarding()

	e.handleHello()

	sentPorts := map[int]bool{}
	for _, sf := range relay.sent {
		sentPorts[sf.port] = true
	}
	if !sentPorts[0] || !sentPorts[1] {
		t.Fatalf("expected a hello bpdu on both designated ports, sent=%v", relay.sent)
	}
}

func TestHandleHelloFailsOverRootToBestAlternate(t *testing.T) {
	e, mt, _, _ := newTestEngine(t, 2, 32768)
	e.Start()

	e.ports[0].RoleState = RootForwarding()
	e.ports[1].RoleState = AlternateDiscarding()
	e.ports[1].Vector.RootPathCost = 50

	for i := 0; i < 4; i++ {
		e.handleHello()
	}

	if got := e.ports[1].RoleState; got != RootForwarding() {
		t.Fatalf("alternate port should take over as root after 4 missed hellos, got %s", got)
	}
	if got := e.ports[0].RoleState.Role(); got != RoleDesignated {
		t.Fatalf("demoted root port should become Designated, got %s", got)
	}

	copied := false
	for _, c := range mt.copies {
		if c == [2]int{0, 1} {
			copied = true
		}
	}
	if !copied {
		t.Fatalf("expected mac table entries to be copied from the old to the new root port")
	}
}

func TestHandleForwardUpgradeAdvancesDesignatedOnly(t *testing.T) {
	e, mt, _, _ := newTestEngine(t, 2, 32768)
	e.Start()
	e.ports[0].RoleState = DesignatedDiscarding()
	e.ports[1].RoleState = AlternateDiscarding()

	e.handleForwardUpgrade()
	if got := e.ports[0].RoleState; got != DesignatedLearning() {
		t.Fatalf("designated port should advance to Learning, got %s", got)
	}
	if got := e.ports[1].RoleState; got != AlternateDiscarding() {
		t.Fatalf("alternate port should not advance, got %s", got)
	}

	preFlush := len(mt.flushed)
	e.handleForwardUpgrade()
	if got := e.ports[0].RoleState; got != DesignatedForwarding() {
		t.Fatalf("designated port should advance to Forwarding, got %s", got)
	}
	if len(mt.flushed) <= preFlush {
		t.Fatalf("Learning->Forwarding transition should flush other ports")
	}
}

func TestHandleMigratePromotesNotAssigned(t *testing.T) {
	e, _, _, _ := newTestEngine(t, 1, 32768)
	e.Start()
	e.ports[0].RoleState = NotAssignedDiscarding()
	e.handleMigrate()
	if got := e.ports[0].RoleState; got != DesignatedDiscarding() {
		t.Fatalf("NotAssigned port should become Designated/Discarding, got %s", got)
	}
}
