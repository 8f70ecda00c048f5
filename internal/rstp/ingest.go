// ingest.go
package rstp

import "time"

// Deliver runs the BPDU ingest decision table of spec.md §4.2 for a frame
// received on arrival. It is the sole entry point for externally-sourced
// events besides the self-timers in selfevents.go; the caller (run.go) is
// responsible for serializing calls onto a single goroutine, per spec.md
// §5's concurrency model.
func (e *Engine) Deliver(arrival int, frame Frame) error {
	if !e.operational {
		if e.obs != nil {
			e.obs.ObserveDiscarded(arrival, "inoperational")
		}
		return ErrInoperational
	}
	if frame.MessageAge >= e.cfg.MaxAge {
		if e.obs != nil {
			e.obs.ObserveDiscarded(arrival, "expired")
		}
		return ErrExpiredBPDU
	}
	if e.obs != nil {
		e.obs.ObserveReceived(arrival)
	}

	now := e.clock.Now()
	ap := &e.ports[arrival]
	defer e.reportRoles()

	// Step 1: TC propagation.
	if frame.TC && ap.forwarding() {
		e.flushAllExcept(arrival)
		e.setTCWhileAllExcept(arrival, now)
	}

	// Step 2: self-loop / Backup detection.
	if frame.BridgeMAC == e.mac {
		e.handleSelfLoop(arrival, frame)
		return nil
	}

	// Step 3: three-way challenge.
	c := e.compareIncoming(arrival, frame.vector(), ap.LinkCost)

	flooded := false
	switch {
	case c > 0 && frame.RootMAC != e.mac:
		flooded = e.branchA(arrival, frame)
	case c <= 0 && frame.BridgeMAC == ap.Vector.BridgeMAC:
		flooded = e.branchB(arrival, frame, c)
	}

	if flooded {
		e.flood()
	}
	return nil
}

// handleSelfLoop resolves a BPDU that looped back to its own originator
// (spec.md §4.2 step 2), by comparing port identities: the worse of arrival
// and the sender-advertised port becomes Backup/Discarding and is flushed;
// a tie (the message reached the same port it left from) disables that
// port outright, since the loop is unavoidable.
func (e *Engine) handleSelfLoop(arrival int, frame Frame) {
	ap := &e.ports[arrival]
	cmp := comparePortIdentity(ap.PortPriority, uint16(arrival), frame.PortPriority, frame.PortNum)

	switch {
	case cmp > 0:
		ap.RoleState = BackupDiscarding()
		e.macTable.Flush(arrival)
	case cmp < 0:
		if sender := int(frame.PortNum); sender >= 0 && sender < len(e.ports) {
			e.ports[sender].RoleState = BackupDiscarding()
			e.macTable.Flush(sender)
		}
	default:
		if sender := int(frame.PortNum); sender >= 0 && sender < len(e.ports) {
			e.ports[sender].RoleState = DisabledDiscarding()
		}
	}
}

// comparePortIdentity ranks (pp1, pn1) against (pp2, pn2); positive means
// the first identity is numerically worse (higher), matching the sign
// convention of comparePriorityVectors.
func comparePortIdentity(pp1 uint8, pn1 uint16, pp2 uint8, pn2 uint16) int {
	if pp1 != pp2 {
		return signed(1, pp1 > pp2)
	}
	if pn1 != pn2 {
		return signed(1, pn1 > pn2)
	}
	return 0
}

// branchA handles c > 0 (incoming superior to stored) with a foreign root
// identity: spec.md §4.2 Branch A. It returns whether a flood was
// triggered.
func (e *Engine) branchA(arrival int, frame Frame) bool {
	ap := &e.ports[arrival]
	now := e.clock.Now()

	adjusted := frame.vector()
	adjusted.RootPathCost += ap.LinkCost
	ap.Vector = adjusted
	ap.Age = uint16(frame.MessageAge/time.Second) + 1
	ap.LostBPDU = 0

	r := e.rootIndex()
	if r == -1 {
		ap.RoleState = RootForwarding()
		e.flushAllExcept(arrival)
		e.setTCWhileAll(now)
		return true
	}

	rootP := &e.ports[r]
	c2 := e.compareIncoming(r, frame.vector(), ap.LinkCost)

	switch {
	case c2 == 0:
		if comparePortIdentity(ap.PortPriority, uint16(arrival), rootP.PortPriority, uint16(r)) > 0 {
			ap.RoleState = AlternateDiscarding()
			e.macTable.Flush(arrival)
			return false
		}
		oldLost := rootP.LostBPDU
		e.macTable.CopyTable(r, arrival)
		rootP.RoleState = AlternateDiscarding()
		rootP.LostBPDU = oldLost
		ap.RoleState = RootForwarding()
		e.flushAllExcept(arrival)
		e.setTCWhileAllExcept(arrival, now)
		return true

	case c2 == 1:
		for i := range e.ports {
			if i == arrival || e.ports[i].Edge {
				continue
			}
			e.ports[i].RoleState = NotAssignedDiscarding()
			e.initPortVector(i)
		}
		ap.RoleState = RootForwarding()
		return true

	case c2 == 2, c2 == 3, c2 == 4:
		e.macTable.CopyTable(r, arrival)
		ap.RoleState = RootForwarding()
		e.flushAllExcept(arrival)
		e.setTCWhileAllExcept(arrival, now)
		c3 := e.contestLocalWithRoot(r, ap.Vector)
		if c3 >= 0 {
			rootP.RoleState = AlternateDiscarding()
		} else {
			rootP.RoleState = DesignatedDiscarding()
		}
		return true

	case c2 == -1:
		if err := e.sendBPDU(arrival); err != nil {
			stpLog(e.log, "WARNING", "corrective bpdu failed: "+err.Error())
		}
		return false

	default: // c2 in {-2, -3, -4}
		c3 := e.contestAgainst(arrival, frame.vector())
		if c3 < 0 {
			ap.RoleState = DesignatedDiscarding()
			if err := e.sendBPDU(arrival); err != nil {
				stpLog(e.log, "WARNING", "corrective bpdu failed: "+err.Error())
			}
		} else {
			ap.RoleState = AlternateDiscarding()
			e.macTable.Flush(arrival)
		}
		return false
	}
}

// branchB handles c <= 0 with the same neighbour restating (possibly
// updated) information: spec.md §4.2 Branch B. It returns whether a flood
// was triggered.
func (e *Engine) branchB(arrival int, frame Frame, c int) bool {
	ap := &e.ports[arrival]
	now := e.clock.Now()

	switch {
	case c == 0:
		ap.LostBPDU = 0
		return false

	case c == -1:
		switch ap.RoleState.Role() {
		case RoleRoot:
			if alt := e.bestAlternate(); alt != -1 {
				altP := &e.ports[alt]
				e.macTable.CopyTable(arrival, alt)
				altP.RoleState = RootForwarding()
				altP.LostBPDU = 0
				ap.RoleState = DesignatedDiscarding()
				e.flushAllExcept(alt)
				e.setTCWhileAllExcept(alt, now)
				if err := e.sendBPDU(arrival); err != nil {
					stpLog(e.log, "WARNING", "corrective bpdu failed: "+err.Error())
				}
				return false
			}
			e.initPorts()
			if c2 := e.compareIncoming(arrival, frame.vector(), ap.LinkCost); c2 > 0 {
				adjusted := frame.vector()
				adjusted.RootPathCost += ap.LinkCost
				ap.Vector = adjusted
				ap.Age = uint16(frame.MessageAge/time.Second) + 1
				ap.RoleState = RootForwarding()
				ap.LostBPDU = 0
			}
			return false
		case RoleAlternate:
			ap.RoleState = DesignatedDiscarding()
			if err := e.sendBPDU(arrival); err != nil {
				stpLog(e.log, "WARNING", "corrective bpdu failed: "+err.Error())
			}
			return false
		}
		return false

	default: // c in {-2, -3, -4}
		switch ap.RoleState.Role() {
		case RoleRoot:
			if alt := e.bestAlternate(); alt != -1 {
				if e.compareIncoming(alt, frame.vector(), ap.LinkCost) < 0 {
					altP := &e.ports[alt]
					e.macTable.CopyTable(arrival, alt)
					altP.RoleState = RootForwarding()
					altP.LostBPDU = 0
					e.flushAllExcept(alt)
					e.setTCWhileAllExcept(alt, now)
					if c3 := e.contestAgainst(arrival, frame.vector()); c3 < 0 {
						ap.RoleState = DesignatedDiscarding()
					} else {
						ap.RoleState = AlternateDiscarding()
					}
				}
			}
			adjusted := frame.vector()
			adjusted.RootPathCost += ap.LinkCost
			ap.Vector = adjusted
			ap.Age = uint16(frame.MessageAge/time.Second) + 1
			return true
		case RoleAlternate:
			if c3 := e.contestAgainst(arrival, frame.vector()); c3 < 0 {
				ap.RoleState = DesignatedDiscarding()
				if err := e.sendBPDU(arrival); err != nil {
					stpLog(e.log, "WARNING", "corrective bpdu failed: "+err.Error())
				}
			} else {
				ap.LostBPDU = 0
			}
			return false
		}
		return false
	}
}
