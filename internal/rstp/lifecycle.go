// lifecycle.go
package rstp

import "time"

// initPortVector resets port i's stored vector to "I am root": this
// bridge advertises itself as root with zero cost, per spec.md §4.6.
func (e *Engine) initPortVector(i int) {
	p := &e.ports[i]
	p.Vector = PriorityVector{
		RootPriority:   e.priority,
		RootMAC:        e.mac,
		RootPathCost:   0,
		BridgePriority: e.priority,
		BridgeMAC:      e.mac,
		PortPriority:   p.PortPriority,
		PortNum:        uint16(i),
	}
	p.Age = 0
	p.LostBPDU = 0
}

// initPorts brings every port to its deterministic starting configuration
// (spec.md §4.6): Edge ports become Designated/Forwarding and bypass
// election; every other port becomes NotAssigned/Discarding. Every port's
// vector is reset and its MAC entries flushed. Calling initPorts twice
// with no intervening events leaves every record bit-identical (spec.md
// §8's idempotence law).
func (e *Engine) initPorts() {
	for i := range e.ports {
		p := &e.ports[i]
		if p.Edge {
			p.RoleState = DesignatedForwarding()
		} else {
			p.RoleState = NotAssignedDiscarding()
		}
		e.initPortVector(i)
		e.macTable.Flush(i)
	}
}

// Start brings the engine up: it re-initializes every port and arms the
// hello, forward-upgrade and migrate self-events. Start cancels any timers
// already running before scheduling fresh ones, so it is idempotent with
// respect to scheduling even if a lifecycle controller calls it more than
// once without an intervening Stop — the double-schedule risk spec.md §9's
// Open Question flags for the original's initialize(stage 1) + start().
func (e *Engine) Start() {
	e.cancelTimers()

	e.initPorts()

	e.helloTimer = time.NewTimer(0)
	e.fwdTimer = time.NewTimer(e.cfg.ForwardDelay)
	e.migTimer = time.NewTimer(e.cfg.MigrateTime)

	e.operational = true
	e.reportRoles()
}

// Stop cancels all pending self-events and marks the engine inoperational;
// BPDUs and self-events delivered afterward are dropped (ErrInoperational).
func (e *Engine) Stop() {
	e.cancelTimers()
	e.operational = false
}

func (e *Engine) cancelTimers() {
	if e.helloTimer != nil {
		e.helloTimer.Stop()
	}
	if e.fwdTimer != nil {
		e.fwdTimer.Stop()
	}
	if e.migTimer != nil {
		e.migTimer.Stop()
	}
}
