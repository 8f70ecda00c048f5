// selfevents.go
package rstp

// handleHello runs spec.md §4.4's hello self-event: non-edge ports in
// {Root, Alternate, Backup} age by one; a port whose lostBpdu exceeds 3
// fails over. Afterward every eligible port emits a BPDU and a TC
// notification is dispatched toward the root.
func (e *Engine) handleHello() {
	now := e.clock.Now()
	defer e.reportRoles()

	for i := range e.ports {
		p := &e.ports[i]
		if p.Edge {
			continue
		}
		switch p.RoleState.Role() {
		case RoleRoot, RoleAlternate, RoleBackup:
		default:
			continue
		}

		p.LostBPDU++
		if p.LostBPDU <= 3 {
			continue
		}

		switch p.RoleState.Role() {
		case RoleRoot:
			if alt := e.bestAlternate(); alt != -1 {
				altP := &e.ports[alt]
				e.macTable.CopyTable(i, alt)
				altP.RoleState = RootForwarding()
				altP.LostBPDU = 0
				p.RoleState = DesignatedDiscarding()
				e.initPortVector(i)
				e.flushAllExcept(alt)
				e.setTCWhileAll(now)
			} else {
				e.initPorts()
			}
		case RoleAlternate, RoleBackup:
			p.RoleState = DesignatedDiscarding()
			e.initPortVector(i)
		}
		p.LostBPDU = 0
	}

	e.flood()
}

// handleForwardUpgrade runs spec.md §4.4's forward-upgrade self-event:
// every Designated port advances one forwarding stage. A Learning→
// Forwarding transition flushes every other port and arms tc-while
// everywhere.
func (e *Engine) handleForwardUpgrade() {
	now := e.clock.Now()
	defer e.reportRoles()
	for i := range e.ports {
		p := &e.ports[i]
		if p.RoleState.Role() != RoleDesignated {
			continue
		}
		before := p.RoleState.State()
		p.RoleState = p.RoleState.advance()
		if before == StateLearning && p.RoleState.State() == StateForwarding {
			e.flushAllExcept(i)
			e.setTCWhileAll(now)
		}
	}
}

// handleMigrate runs spec.md §4.4's migrate self-event: any port still
// NotAssigned is promoted to Designated/Discarding, giving it a chance to
// contest for a better role on its next BPDU exchange.
func (e *Engine) handleMigrate() {
	defer e.reportRoles()
	for i := range e.ports {
		p := &e.ports[i]
		if p.RoleState.Role() == RoleNotAssigned {
			p.RoleState = DesignatedDiscarding()
		}
	}
}
