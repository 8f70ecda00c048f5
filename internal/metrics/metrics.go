// Package metrics implements the prometheus Observer collaborator
// SPEC_FULL.md's domain stack commits to: counters for BPDUs sent,
// received and discarded, a gauge of each port's current role, a counter
// of role transitions, and a counter of TC floods.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/l2switch/rstpd/internal/rstp"
)

// Collector implements rstp.Observer and exposes its state through the
// prometheus client registry it is constructed with.
type Collector struct {
	bridge string

	bpduReceived  *prometheus.CounterVec
	bpduDiscarded *prometheus.CounterVec
	bpduSent      *prometheus.CounterVec
	bpduSendError *prometheus.CounterVec
	roleGauge     *prometheus.GaugeVec
	roleChanges   *prometheus.CounterVec
	tcFloods      prometheus.Counter

	lastRole map[int]rstp.Role
}

// NewCollector registers a Collector's metrics with reg under the label
// bridge=bridgeID, and returns the Collector ready to pass to
// rstp.WithObserver.
func NewCollector(reg prometheus.Registerer, bridgeID string) *Collector {
	c := &Collector{
		bridge:   bridgeID,
		lastRole: make(map[int]rstp.Role),

		bpduReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rstp", Name: "bpdu_received_total",
			Help: "BPDUs accepted for processing, by port.",
		}, []string{"bridge", "port"}),
		bpduDiscarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rstp", Name: "bpdu_discarded_total",
			Help: "BPDUs dropped without processing, by port and reason.",
		}, []string{"bridge", "port", "reason"}),
		bpduSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rstp", Name: "bpdu_sent_total",
			Help: "BPDUs successfully handed to the relay, by port.",
		}, []string{"bridge", "port"}),
		bpduSendError: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rstp", Name: "bpdu_send_errors_total",
			Help: "BPDU transmissions that failed at the relay layer, by port.",
		}, []string{"bridge", "port"}),
		roleGauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "rstp", Name: "port_role",
			Help: "Current port role as a small integer (see rstp.Role).",
		}, []string{"bridge", "port"}),
		roleChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rstp", Name: "role_changes_total",
			Help: "Number of times a port's role changed, by port.",
		}, []string{"bridge", "port"}),
		tcFloods: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rstp", Name: "tc_floods_total",
			Help: "Topology-change notifications flooded toward the root.",
		}),
	}

	reg.MustRegister(c.bpduReceived, c.bpduDiscarded, c.bpduSent, c.bpduSendError,
		c.roleGauge, c.roleChanges, c.tcFloods)
	return c
}

func (c *Collector) port(port int) string { return strconv.Itoa(port) }

func (c *Collector) ObserveReceived(port int) {
	c.bpduReceived.WithLabelValues(c.bridge, c.port(port)).Inc()
}

func (c *Collector) ObserveDiscarded(port int, reason string) {
	c.bpduDiscarded.WithLabelValues(c.bridge, c.port(port), reason).Inc()
}

func (c *Collector) ObserveSent(port int) {
	c.bpduSent.WithLabelValues(c.bridge, c.port(port)).Inc()
}

func (c *Collector) ObserveSendError(port int) {
	c.bpduSendError.WithLabelValues(c.bridge, c.port(port)).Inc()
}

func (c *Collector) ObserveRole(port int, role rstp.Role) {
	c.roleGauge.WithLabelValues(c.bridge, c.port(port)).Set(float64(role))
	if prev, ok := c.lastRole[port]; !ok || prev != role {
		c.lastRole[port] = role
		c.roleChanges.WithLabelValues(c.bridge, c.port(port)).Inc()
	}
}

func (c *Collector) ObserveTCFlood() {
	c.tcFloods.Inc()
}
