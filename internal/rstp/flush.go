// flush.go
package rstp

import "time"

// flushAllExcept flushes every port's learned MAC entries except except.
func (e *Engine) flushAllExcept(except int) {
	for i := range e.ports {
		if i == except {
			continue
		}
		e.macTable.Flush(i)
	}
}

// setTCWhileAllExcept arms the tc-while deadline on every port except
// except.
func (e *Engine) setTCWhileAllExcept(except int, now time.Time) {
	for i := range e.ports {
		if i == except {
			continue
		}
		e.ports[i].setTCWhile(now, e.cfg.TCWhileTime)
	}
}

// setTCWhileAll arms the tc-while deadline on every port.
func (e *Engine) setTCWhileAll(now time.Time) {
	e.setTCWhileAllExcept(-1, now)
}
