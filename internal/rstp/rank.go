// rank.go
package rstp

// compareIncoming ranks the stored vector of port portIdx against
// frameVector after adding linkCost to the frame's root path cost
// (spec.md §4.1). Positive means the incoming frame is superior to what
// is stored; negative means the stored vector remains superior; zero
// means they are field-wise equal.
func (e *Engine) compareIncoming(portIdx int, frameVector PriorityVector, linkCost uint32) int {
	adjusted := frameVector
	adjusted.RootPathCost += linkCost
	return comparePriorityVectors(e.ports[portIdx].Vector, adjusted)
}

// localVector is what this bridge would itself originate on portIdx: the
// current root port's root identity and cost, advanced by portIdx's own
// link cost (or, if this bridge is root, its own identity at cost
// linkCost(portIdx)), this bridge's own identity, and portIdx's own local
// port identity (spec.md §4.1, §4.5: "port identity always local").
func (e *Engine) localVector(portIdx int) PriorityVector {
	var root PriorityVector
	if r := e.rootIndex(); r != -1 {
		root = e.ports[r].Vector
	} else {
		root = PriorityVector{RootPriority: e.priority, RootMAC: e.mac, RootPathCost: 0}
	}
	return e.localVectorWithRoot(portIdx, root)
}

// localVectorWithRoot is localVector's core, parameterized on an explicit
// root vector rather than discovered via rootIndex. ingest.go uses this
// directly during the brief window where two ports transiently both carry
// role Root (spec.md §3's "transient duplication... resolved before
// return"), when rootIndex would otherwise return an arbitrary one of them.
func (e *Engine) localVectorWithRoot(portIdx int, root PriorityVector) PriorityVector {
	v := root
	v.RootPathCost += e.ports[portIdx].LinkCost
	v.BridgePriority = e.priority
	v.BridgeMAC = e.mac
	v.PortPriority = e.ports[portIdx].PortPriority
	v.PortNum = uint16(portIdx)
	return v
}

// contestLocalWithRoot compares what this bridge would originate on portIdx
// against the vector currently stored for that port (spec.md §4.1), using an
// explicit root vector rather than one discovered via rootIndex. branchA's
// c2 ∈ {2,3,4} case needs this during the same transient dual-Root window
// localVectorWithRoot exists for: it re-ranks the old root port against the
// new one while both still report role Root.
func (e *Engine) contestLocalWithRoot(portIdx int, root PriorityVector) int {
	return comparePriorityVectors(e.localVectorWithRoot(portIdx, root), e.ports[portIdx].Vector)
}

// contestAgainst compares what this bridge would originate on portIdx
// against an incoming frame vector (spec.md §4.1).
func (e *Engine) contestAgainst(portIdx int, frameVector PriorityVector) int {
	return comparePriorityVectors(e.localVector(portIdx), frameVector)
}
