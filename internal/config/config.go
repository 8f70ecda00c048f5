// Package config loads and validates the JSON-file configuration of
// spec.md §6, in the shape of the teacher's StpBridgeConfig/StpPortConfig/
// *ConfigParamCheck (config.go), generalized to the RSTP engine's
// parameter list and modernized to wrapped errors instead of
// errors.New(fmt.Sprintf(...)).
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/l2switch/rstpd/internal/iftable"
	"github.com/l2switch/rstpd/internal/rstp"
)

// BridgeConfig is the on-disk shape of spec.md §6's recognized bridge-level
// parameters: autoEdge, maxAge, priority, tcWhileTime, helloTime, fwdDelay,
// migrateTime, macTableName, interfaceTableName. treeColoring is accepted
// and ignored — it names a presentation concern spec.md §1 excludes.
type BridgeConfig struct {
	Priority     uint16 `json:"priority"`
	AutoEdge     bool   `json:"autoEdge"`
	MaxAgeSec    uint16 `json:"maxAge"`
	TCWhileSec   uint16 `json:"tcWhileTime"`
	HelloSec     uint16 `json:"helloTime"`
	FwdDelaySec  uint16 `json:"fwdDelay"`
	MigrateSec   uint16 `json:"migrateTime"`
	TreeColoring bool   `json:"treeColoring"`

	MACTableName      string `json:"macTableName"`
	InterfaceTableName string `json:"interfaceTableName"`

	Ports []PortConfig `json:"ports"`
}

// PortConfig is one interface entry: its name (resolved against the host's
// interfaces by the caller), its RSTP port priority, link cost, and
// whether it is an edge port.
type PortConfig struct {
	Name         string `json:"name"`
	PortPriority uint8  `json:"portPriority"`
	LinkCost     uint32 `json:"linkCost"`
	Edge         bool   `json:"edge"`
}

// validBridgePriority mirrors the teacher's Table 17-2 check: bridge
// priority must be a multiple of 4096 in [0, 61440].
func validBridgePriority(p uint16) bool {
	return p%4096 == 0 && p <= 61440
}

// Load reads and validates a BridgeConfig from r.
func Load(r io.Reader) (BridgeConfig, error) {
	var c BridgeConfig
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return BridgeConfig{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return BridgeConfig{}, err
	}
	return c, nil
}

// Validate checks the parameter ranges spec.md §3/§6 impose.
func (c BridgeConfig) Validate() error {
	if !validBridgePriority(c.Priority) {
		return fmt.Errorf("%w: priority %d must be a multiple of 4096 in [0, 61440]", rstp.ErrConfiguration, c.Priority)
	}
	if len(c.Ports) == 0 {
		return fmt.Errorf("%w: at least one port is required", rstp.ErrConfiguration)
	}
	for i, p := range c.Ports {
		if p.Name == "" {
			return fmt.Errorf("%w: port %d has no interface name", rstp.ErrConfiguration, i)
		}
	}
	return nil
}

// EngineConfig converts the on-disk parameters into rstp.Config.
func (c BridgeConfig) EngineConfig() rstp.Config {
	cfg := rstp.DefaultConfig()
	cfg.BridgePriority = c.Priority
	cfg.AutoEdge = c.AutoEdge
	if c.MaxAgeSec > 0 {
		cfg.MaxAge = time.Duration(c.MaxAgeSec) * time.Second
	}
	if c.TCWhileSec > 0 {
		cfg.TCWhileTime = time.Duration(c.TCWhileSec) * time.Second
	}
	if c.HelloSec > 0 {
		cfg.HelloTime = time.Duration(c.HelloSec) * time.Second
	}
	if c.FwdDelaySec > 0 {
		cfg.ForwardDelay = time.Duration(c.FwdDelaySec) * time.Second
	}
	if c.MigrateSec > 0 {
		cfg.MigrateTime = time.Duration(c.MigrateSec) * time.Second
	}
	return cfg
}

// PortConfigs converts the on-disk per-port parameters into rstp.PortConfig,
// in the same order as c.Ports.
func (c BridgeConfig) PortConfigs() []rstp.PortConfig {
	out := make([]rstp.PortConfig, len(c.Ports))
	for i, p := range c.Ports {
		out[i] = rstp.PortConfig{Edge: p.Edge, PortPriority: p.PortPriority}
	}
	return out
}

// Interfaces converts the on-disk per-port parameters into iftable.Interface
// entries; mac supplies each port's MAC (typically all equal to the
// bridge's own MAC, since STP ports share the bridge's hardware address).
func (c BridgeConfig) Interfaces(mac rstp.MAC) []iftable.Interface {
	out := make([]iftable.Interface, len(c.Ports))
	for i, p := range c.Ports {
		out[i] = iftable.Interface{Name: p.Name, MAC: mac, LinkCost: p.LinkCost}
	}
	return out
}
