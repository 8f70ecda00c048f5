// logger.go
package rstp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// stpLog mirrors the teacher's StpLogger(t, msg string) call shape
// (oshothebig-l2 stp/protocol/logger.go) but is backed by logrus instead
// of the internal, unavailable utils/logging.Writer.
func stpLog(log *logrus.Entry, level, msg string) {
	if log == nil {
		return
	}
	switch level {
	case "DEBUG":
		log.Debug(msg)
	case "INFO":
		log.Info(msg)
	case "WARNING":
		log.Warning(msg)
	case "ERROR":
		log.Error(msg)
	}
}

// machineLog mirrors the teacher's StpMachineLogger, tagging a log line
// with the originating port and bridge identity.
func machineLog(log *logrus.Entry, level string, port int, bridge uint16, msg string) {
	stpLog(log, level, fmt.Sprintf("port %d:brg %d:%s", port, bridge, msg))
}
