// egress.go
package rstp

import "time"

// frameForPort constructs the outbound BPDU for portIdx (spec.md §4.5): root
// identity and cost come from the root port's stored vector, or from this
// bridge's own identity at cost zero if it believes itself root; bridge and
// port identity are always local.
func (e *Engine) frameForPort(portIdx int) Frame {
	now := e.clock.Now()
	p := &e.ports[portIdx]

	var f Frame
	if r := e.rootIndex(); r != -1 {
		root := &e.ports[r]
		f.RootPriority = root.Vector.RootPriority
		f.RootMAC = root.Vector.RootMAC
		f.RootPathCost = root.Vector.RootPathCost
		f.MessageAge = time.Duration(root.Age) * time.Second
	} else {
		f.RootPriority = e.priority
		f.RootMAC = e.mac
		f.RootPathCost = 0
		f.MessageAge = 0
	}
	f.BridgePriority = e.priority
	f.BridgeMAC = e.mac
	f.PortPriority = p.PortPriority
	f.PortNum = uint16(portIdx)
	f.MaxAge = e.cfg.MaxAge
	f.HelloTime = e.cfg.HelloTime
	f.ForwardDelay = e.cfg.ForwardDelay
	f.TC = p.tcActive(now)
	f.TCA = false
	return f
}

// sendBPDU transmits the current frame for portIdx via the relay layer.
func (e *Engine) sendBPDU(portIdx int) error {
	err := e.relay.Send(e.frameForPort(portIdx), portIdx)
	if e.obs != nil {
		if err != nil {
			e.obs.ObserveSendError(portIdx)
		} else {
			e.obs.ObserveSent(portIdx)
		}
	}
	return err
}

// sendBPDUs emits a BPDU on every non-edge port whose role is eligible to
// originate (spec.md §4.5): every role except Root, Alternate, Disabled.
func (e *Engine) sendBPDUs() {
	for i := range e.ports {
		p := &e.ports[i]
		if p.Edge {
			continue
		}
		switch p.RoleState.Role() {
		case RoleRoot, RoleAlternate, RoleDisabled:
			continue
		}
		if err := e.sendBPDU(i); err != nil {
			stpLog(e.log, "WARNING", "sendBPDU port "+p.RoleState.String()+" failed: "+err.Error())
		}
	}
}

// sendTCNotification emits one corrective BPDU on the root port, if one
// exists and its tc-while deadline has not yet passed (spec.md §4.5).
func (e *Engine) sendTCNotification() {
	r := e.rootIndex()
	if r == -1 {
		return
	}
	if !e.ports[r].tcActive(e.clock.Now()) {
		return
	}
	if err := e.sendBPDU(r); err != nil {
		stpLog(e.log, "WARNING", "tc notification failed: "+err.Error())
		return
	}
	if e.obs != nil {
		e.obs.ObserveTCFlood()
	}
}

// flood emits BPDUs on every eligible port and a TC notification toward the
// root, the action named by the "flood" flag throughout spec.md §4.2.
func (e *Engine) flood() {
	e.sendBPDUs()
	e.sendTCNotification()
}
