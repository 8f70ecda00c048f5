// run.go
package rstp

import (
	"context"
	"time"
)

// Run drives the single-threaded event loop of spec.md §5: BPDU arrival
// and self-timer fire are processed one at a time to completion on this
// goroutine. Callers deliver received BPDUs by sending on inbox; Run itself
// owns the timer fan-in. Lifecycle operations (Start, Stop) do not pass
// through Run.
//
// Run blocks until ctx is cancelled or inbox is closed. Engine.Start must
// be called before Run so the timers it arms are the ones Run selects on.
func (e *Engine) Run(ctx context.Context, inbox <-chan InboundFrame) {
	for {
		var helloC, fwdC, migC <-chan time.Time
		if e.helloTimer != nil {
			helloC = e.helloTimer.C
		}
		if e.fwdTimer != nil {
			fwdC = e.fwdTimer.C
		}
		if e.migTimer != nil {
			migC = e.migTimer.C
		}

		select {
		case <-ctx.Done():
			return

		case <-helloC:
			if e.operational {
				e.handleHello()
				e.helloTimer.Reset(e.cfg.HelloTime)
			}

		case <-fwdC:
			if e.operational {
				e.handleForwardUpgrade()
				e.fwdTimer.Reset(e.cfg.ForwardDelay)
			}

		case <-migC:
			if e.operational {
				e.handleMigrate()
				e.migTimer.Reset(e.cfg.MigrateTime)
			}

		case in, ok := <-inbox:
			if !ok {
				return
			}
			if err := e.Deliver(in.Port, in.Frame); err != nil {
				stpLog(e.log, "DEBUG", "deliver on port "+e.bridgeID()+": "+err.Error())
			}
		}
	}
}

// InboundFrame is the public shape a Relay implementation feeds into Run's
// inbox channel on BPDU receipt.
type InboundFrame struct {
	Port  int
	Frame Frame
}
