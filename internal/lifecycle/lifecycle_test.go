package lifecycle

import (
	"testing"

	"github.com/l2switch/rstpd/internal/rstp"
)

type fakeMacTable struct{}

func (fakeMacTable) Flush(int)         {}
func (fakeMacTable) CopyTable(int, int) {}

type fakeIfTable struct{}

func (fakeIfTable) LinkCost(int) uint32        { return 100 }
func (fakeIfTable) BridgeMAC() (rstp.MAC, error) { return rstp.MAC{1}, nil }
func (fakeIfTable) PortCount() int             { return 1 }

type fakeRelay struct{}

func (fakeRelay) Send(rstp.Frame, int) error { return nil }

func newTestEngine(t *testing.T) *rstp.Engine {
	t.Helper()
	e, err := rstp.NewEngine(rstp.DefaultConfig(), rstp.MAC{1}, []rstp.PortConfig{{}},
		fakeMacTable{}, fakeIfTable{}, fakeRelay{})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestHandleStartOnlyTakesEffectAtLinkUp(t *testing.T) {
	e := newTestEngine(t)
	c := New(e, nil)

	if err := c.Handle(OperationStart, StageLinkDown); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if e.Operational() {
		t.Fatalf("engine should not start while the link is still down")
	}

	if err := c.Handle(OperationStart, StageLinkUp); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !e.Operational() {
		t.Fatalf("engine should start once the link is up")
	}
}

func TestHandleShutdownAndCrashStopTheEngine(t *testing.T) {
	for _, op := range []Operation{OperationShutdown, OperationCrash} {
		e := newTestEngine(t)
		c := New(e, nil)
		e.Start()

		if err := c.Handle(op, StageLinkDown); err != nil {
			t.Fatalf("Handle(%s): %v", op, err)
		}
		if e.Operational() {
			t.Fatalf("%s should stop the engine", op)
		}
	}
}

func TestHandleUnknownOperationErrors(t *testing.T) {
	e := newTestEngine(t)
	c := New(e, nil)
	if err := c.Handle(Operation(99), StageLinkUp); err == nil {
		t.Fatalf("expected an error for an unknown operation")
	}
}
