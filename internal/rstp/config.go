// config.go
package rstp

import (
	"fmt"
	"time"
)

// Default timer values, grounded on the teacher's def.go constants
// (MigrateTimeDefault, BridgeHelloTimeDefault, BridgeMaxAgeDefault,
// BridgeForwardDelayDefault), converted from the original's bare seconds
// to time.Duration.
const (
	DefaultMigrateTime   = 3 * time.Second
	DefaultHelloTime     = 2 * time.Second
	DefaultMaxAge        = 20 * time.Second
	DefaultForwardDelay  = 15 * time.Second
	DefaultTCWhileTime   = 2 * DefaultHelloTime
)

// Config carries the configuration parameters recognized by spec.md §6:
// autoEdge, maxAge, priority, tcWhileTime, helloTime, fwdDelay,
// migrateTime. treeColoring, macTableName and interfaceTableName are
// accepted by the external lifecycle/config loader (internal/config) and
// do not affect engine behavior, so they are not modeled here.
type Config struct {
	BridgePriority uint16
	AutoEdge       bool

	HelloTime    time.Duration
	ForwardDelay time.Duration
	MigrateTime  time.Duration
	MaxAge       time.Duration
	TCWhileTime  time.Duration
}

// DefaultConfig returns the spec.md §3 default timer set at bridge
// priority 32768, the default value of Table 17-2 in the original source.
func DefaultConfig() Config {
	return Config{
		BridgePriority: 32768,
		HelloTime:      DefaultHelloTime,
		ForwardDelay:   DefaultForwardDelay,
		MigrateTime:    DefaultMigrateTime,
		MaxAge:         DefaultMaxAge,
		TCWhileTime:    DefaultTCWhileTime,
	}
}

// Validate checks the parameter ranges spec.md §3 requires (all timers
// non-negative) plus the bridge priority range of spec.md §3's Bridge
// Identity (0..65535, trivially satisfied by the uint16 type itself).
func (c Config) Validate() error {
	for name, d := range map[string]time.Duration{
		"helloTime":    c.HelloTime,
		"fwdDelay":     c.ForwardDelay,
		"migrateTime":  c.MigrateTime,
		"maxAge":       c.MaxAge,
		"tcWhileTime":  c.TCWhileTime,
	} {
		if d < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %s", ErrConfiguration, name, d)
		}
	}
	return nil
}

// PortConfig carries the per-port configuration spec.md §3 requires: an
// Edge flag and a port priority (link cost is owned by the external
// interface table, not the port config, per spec.md §6).
type PortConfig struct {
	Edge         bool
	PortPriority uint8
}
