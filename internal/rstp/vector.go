// vector.go
package rstp

import "fmt"

// MAC is a 48-bit hardware address, compared lexicographically byte by byte
// as spec.md requires for every MAC-address field of a priority vector.
type MAC [6]byte

func (m MAC) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}

func (m MAC) IsZero() bool {
	return m == MAC{}
}

func compareMAC(a, b MAC) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// PriorityVector is the tuple V = (rp, ra, rpc, bp, ba, pp, pn) of spec.md §3.
type PriorityVector struct {
	RootPriority   uint16
	RootMAC        MAC
	RootPathCost   uint32
	BridgePriority uint16
	BridgeMAC      MAC
	PortPriority   uint8
	PortNum        uint16
}

// comparePriorityVectors ranks a against b in the fixed field order
// (rp, ra, rpc, bp, ba, pp, pn) per spec.md §4.1. It returns 0 when the two
// vectors are field-wise equal. A nonzero result's magnitude names the
// first differing field (1 root identity, 2 root path cost, 3 bridge
// identity, 4 port identity); its sign is negative when a is the superior
// (numerically lower, more desirable) vector and positive when b is.
func comparePriorityVectors(a, b PriorityVector) int {
	if a.RootPriority != b.RootPriority {
		return signed(1, a.RootPriority > b.RootPriority)
	}
	if c := compareMAC(a.RootMAC, b.RootMAC); c != 0 {
		return signed(1, c > 0)
	}
	if a.RootPathCost != b.RootPathCost {
		return signed(2, a.RootPathCost > b.RootPathCost)
	}
	if a.BridgePriority != b.BridgePriority {
		return signed(3, a.BridgePriority > b.BridgePriority)
	}
	if c := compareMAC(a.BridgeMAC, b.BridgeMAC); c != 0 {
		return signed(3, c > 0)
	}
	if a.PortPriority != b.PortPriority {
		return signed(4, a.PortPriority > b.PortPriority)
	}
	if a.PortNum != b.PortNum {
		return signed(4, a.PortNum > b.PortNum)
	}
	return 0
}

func signed(magnitude int, aIsWorse bool) int {
	if aIsWorse {
		return magnitude
	}
	return -magnitude
}
