// observer.go
package rstp

// Observer is the optional metrics collaborator of SPEC_FULL.md's ambient
// stack: counters for BPDUs sent/received/discarded, a gauge for current
// role per port, and a counter for TC floods. A nil Observer (the default)
// costs nothing; every call site below is guarded.
type Observer interface {
	ObserveReceived(port int)
	ObserveDiscarded(port int, reason string)
	ObserveSent(port int)
	ObserveSendError(port int)
	ObserveRole(port int, role Role)
	ObserveTCFlood()
}

// reportRoles pushes every port's current role to the observer. Called once
// at the end of each event (BPDU delivery or self-event), never mid-event,
// so an observer never sees a transient intermediate role (spec.md §3's
// dual-Root window included).
func (e *Engine) reportRoles() {
	if e.obs == nil {
		return
	}
	for i := range e.ports {
		e.obs.ObserveRole(i, e.ports[i].RoleState.Role())
	}
}
