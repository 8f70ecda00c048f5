// Package lifecycle implements spec.md §6's lifecycle collaborator: three
// operation kinds (start, shutdown, crash), each with a link-layer stage,
// the controller responds to by calling the engine's Start or Stop.
package lifecycle

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/l2switch/rstpd/internal/rstp"
)

// Operation is one of the three lifecycle operation kinds spec.md §6 names.
type Operation int

const (
	OperationStart Operation = iota
	OperationShutdown
	OperationCrash
)

func (o Operation) String() string {
	switch o {
	case OperationStart:
		return "start"
	case OperationShutdown:
		return "shutdown"
	case OperationCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Stage is the accompanying link-layer stage: an operation only takes
// effect once its link has reached the stage the operation needs.
type Stage int

const (
	StageLinkDown Stage = iota
	StageLinkUp
)

// Controller wires lifecycle operations to one Engine's Start/Stop. Handle
// delegates straight through to Engine.Start/Stop, both idempotent per
// spec.md §9's Open Question resolution (see SPEC_FULL.md §12), so Handle
// itself needs no double-schedule guard of its own.
type Controller struct {
	engine *rstp.Engine
	log    *logrus.Entry
}

// New returns a Controller for engine. If log is nil a default entry
// tagged subsystem=lifecycle is used.
func New(engine *rstp.Engine, log *logrus.Entry) *Controller {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger()).WithField("subsystem", "lifecycle")
	}
	return &Controller{engine: engine, log: log}
}

// Handle applies op, observed at stage, to the controller's engine.
func (c *Controller) Handle(op Operation, stage Stage) error {
	switch op {
	case OperationStart:
		if stage != StageLinkUp {
			return nil
		}
		c.log.WithField("op", op.String()).Info("bringing engine up")
		c.engine.Start()
		return nil
	case OperationShutdown, OperationCrash:
		c.log.WithField("op", op.String()).Warning("bringing engine down")
		c.engine.Stop()
		return nil
	default:
		return fmt.Errorf("lifecycle: unknown operation %d", int(op))
	}
}
