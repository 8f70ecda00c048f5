package rstp

import (
	"errors"
	"time"
)

type fakeMacTable struct {
	flushed []int
	copies  [][2]int
}

func (f *fakeMacTable) Flush(port int)         { f.flushed = append(f.flushed, port) }
func (f *fakeMacTable) CopyTable(from, to int) { f.copies = append(f.copies, [2]int{from, to}) }

type fakeIfTable struct {
	linkCost []uint32
	mac      MAC
}

func (f *fakeIfTable) LinkCost(port int) uint32   { return f.linkCost[port] }
func (f *fakeIfTable) BridgeMAC() (MAC, error)    { return f.mac, nil }
func (f *fakeIfTable) PortCount() int             { return len(f.linkCost) }

type sentFrame struct {
	port  int
	frame Frame
}

type fakeRelay struct {
	sent    []sentFrame
	failOn  map[int]bool
}

func (f *fakeRelay) Send(frame Frame, port int) error {
	f.sent = append(f.sent, sentFrame{port, frame})
	if f.failOn != nil && f.failOn[port] {
		return errSendFailed
	}
	return nil
}

var errSendFailed = errors.New("fake relay: send failed")

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func mac(b byte) MAC {
	return MAC{0, 0, 0, 0, 0, b}
}

func newTestEngine(t interface{ Fatalf(string, ...interface{}) }, portCount int, priority uint16) (*Engine, *fakeMacTable, *fakeRelay, *fakeClock) {
	mt := &fakeMacTable{}
	costs := make([]uint32, portCount)
	for i := range costs {
		costs[i] = 100
	}
	ift := &fakeIfTable{linkCost: costs, mac: mac(1)}
	relay := &fakeRelay{}
	clock := &fakeClock{now: time.Unix(0, 0)}

	ports := make([]PortConfig, portCount)

	cfg := DefaultConfig()
	cfg.BridgePriority = priority

	e, err := NewEngine(cfg, mac(1), ports, mt, ift, relay, WithClock(clock))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e, mt, relay, clock
}
