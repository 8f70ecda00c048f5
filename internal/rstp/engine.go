// engine.go
package rstp

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Engine is one bridge's RSTP instance: a single-threaded, event-driven
// state object mutated by BPDU arrival, self-timer fire, and lifecycle
// operations (spec.md §5). Nothing in Engine synchronizes its own state;
// callers (Run, in run.go) are responsible for serializing all calls onto
// one goroutine.
type Engine struct {
	priority uint16
	mac      MAC

	cfg Config

	ports []PortInfo

	macTable MACTable
	ifTable  InterfaceTable
	relay    Relay
	clock    Clock
	log      *logrus.Entry
	obs      Observer

	operational bool

	helloTimer *time.Timer
	fwdTimer   *time.Timer
	migTimer   *time.Timer
}

// Option configures an Engine at construction time.
type Option func(*Engine)

func WithClock(c Clock) Option { return func(e *Engine) { e.clock = c } }
func WithLogger(l *logrus.Entry) Option { return func(e *Engine) { e.log = l } }
func WithObserver(o Observer) Option { return func(e *Engine) { e.obs = o } }

// NewEngine constructs an Engine for a bridge with portCount ports, each
// described by ports[i]. It does not start any timers; call Start for that.
func NewEngine(cfg Config, mac MAC, ports []PortConfig, macTable MACTable, ifTable InterfaceTable, relay Relay, opts ...Option) (*Engine, error) {
	if macTable == nil || ifTable == nil || relay == nil {
		return nil, fmt.Errorf("%w: macTable, ifTable and relay are all required", ErrConfiguration)
	}
	if mac.IsZero() {
		return nil, fmt.Errorf("%w: bridge MAC must be non-zero", ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		priority: cfg.BridgePriority,
		mac:      mac,
		cfg:      cfg,
		ports:    make([]PortInfo, len(ports)),
		macTable: macTable,
		ifTable:  ifTable,
		relay:    relay,
		clock:    realClock{},
	}
	for i, pc := range ports {
		e.ports[i] = PortInfo{
			Index:        i,
			Edge:         pc.Edge,
			PortPriority: pc.PortPriority,
			LinkCost:     ifTable.LinkCost(i),
		}
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logrus.NewEntry(logrus.StandardLogger()).WithField("subsystem", "rstp")
	}
	return e, nil
}

// PortCount returns the number of ports this engine manages.
func (e *Engine) PortCount() int { return len(e.ports) }

// Port returns a copy of port i's record, for inspection by callers
// (cmd/rstpd's relay reads a port's role through it).
func (e *Engine) Port(i int) PortInfo { return e.ports[i] }

// Operational reports whether Start has been called more recently than
// Stop.
func (e *Engine) Operational() bool { return e.operational }

// rootIndex returns the index of the port with role Root, or -1 if this
// bridge believes itself to be the root (spec.md §4.2/§4.5).
func (e *Engine) rootIndex() int {
	for i := range e.ports {
		if e.ports[i].RoleState.Role() == RoleRoot {
			return i
		}
	}
	return -1
}

// bridgeID renders priority and MAC as "priority/mac" text, solely for
// log/debug formatting.
func (e *Engine) bridgeID() string {
	return fmt.Sprintf("%d/%s", e.priority, e.mac)
}

// DumpState is the Go-idiomatic, non-GUI-oriented descendant of the
// original's RSTP::printState(): a deterministic summary of the current
// per-port role/state/vector. Nothing in this module calls it; it is
// exported for callers that want a debug dump.
func (e *Engine) DumpState() string {
	s := fmt.Sprintf("bridge %s root=%d\n", e.bridgeID(), e.rootIndex())
	for i := range e.ports {
		p := &e.ports[i]
		s += fmt.Sprintf("  port %d: %s edge=%v lost=%d age=%d vector=%+v\n",
			i, p.RoleState, p.Edge, p.LostBPDU, p.Age, p.Vector)
	}
	return s
}
