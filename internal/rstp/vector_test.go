package rstp

import "testing"

func TestComparePriorityVectorsFieldOrder(t *testing.T) {
	base := PriorityVector{
		RootPriority: 100, RootMAC: mac(1), RootPathCost: 10,
		BridgePriority: 200, BridgeMAC: mac(2), PortPriority: 128, PortNum: 1,
	}

	cases := []struct {
		name    string
		other   PriorityVector
		wantMag int
	}{
		{"equal", base, 0},
		{"better root priority", withField(base, func(v *PriorityVector) { v.RootPriority-- }), 1},
		{"worse root priority", withField(base, func(v *PriorityVector) { v.RootPriority++ }), 1},
		{"better root path cost", withField(base, func(v *PriorityVector) { v.RootPathCost-- }), 2},
		{"better bridge priority", withField(base, func(v *PriorityVector) { v.BridgePriority-- }), 3},
		{"better port priority", withField(base, func(v *PriorityVector) { v.PortPriority-- }), 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := comparePriorityVectors(base, tc.other)
			if abs(got) != tc.wantMag {
				t.Fatalf("comparePriorityVectors(base, other) = %d, want magnitude %d", got, tc.wantMag)
			}
		})
	}
}

func TestComparePriorityVectorsSign(t *testing.T) {
	superior := PriorityVector{RootPriority: 1}
	inferior := PriorityVector{RootPriority: 2}

	if c := comparePriorityVectors(superior, inferior); c >= 0 {
		t.Fatalf("comparePriorityVectors(superior, inferior) = %d, want negative", c)
	}
	if c := comparePriorityVectors(inferior, superior); c <= 0 {
		t.Fatalf("comparePriorityVectors(inferior, superior) = %d, want positive", c)
	}
}

func TestMACIsZero(t *testing.T) {
	var z MAC
	if !z.IsZero() {
		t.Fatalf("zero MAC reported non-zero")
	}
	if mac(1).IsZero() {
		t.Fatalf("non-zero MAC reported zero")
	}
}

func withField(v PriorityVector, f func(*PriorityVector)) PriorityVector {
	f(&v)
	return v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
