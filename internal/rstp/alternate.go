// alternate.go
package rstp

// bestAlternate scans every port with role Alternate and returns the index
// of the one with the lowest (rpc, bp, ba, pp, pn) tuple, per spec.md
// §4.3. It returns -1 if there is none.
func (e *Engine) bestAlternate() int {
	best := -1
	var bestKey alternateKey
	for i := range e.ports {
		p := &e.ports[i]
		if p.RoleState.Role() != RoleAlternate {
			continue
		}
		k := p.alternateKey()
		if best == -1 || k.less(bestKey) {
			best = i
			bestKey = k
		}
	}
	return best
}
