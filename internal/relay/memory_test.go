package relay

import (
	"testing"

	"github.com/l2switch/rstpd/internal/rstp"
)

func TestMemoryRelaySendDeliversToWiredSink(t *testing.T) {
	r := NewMemoryRelay(2)
	var got rstp.Frame
	received := false
	r.Wire(0, func(f rstp.Frame) {
		got = f
		received = true
	})

	f := rstp.Frame{RootPriority: 1234}
	if err := r.Send(f, 0); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !received || got.RootPriority != 1234 {
		t.Fatalf("sink did not receive the sent frame, got %+v", got)
	}
}

func TestMemoryRelaySendToUnwiredPortIsANoOp(t *testing.T) {
	r := NewMemoryRelay(1)
	if err := r.Send(rstp.Frame{}, 0); err != nil {
		t.Fatalf("Send to an unwired port should not error, got %v", err)
	}
}

func TestMemoryRelaySendOutOfRangeErrors(t *testing.T) {
	r := NewMemoryRelay(1)
	if err := r.Send(rstp.Frame{}, 5); err == nil {
		t.Fatalf("expected an error for an out-of-range port")
	}
}

func TestMediumBroadcastsToEveryOtherTap(t *testing.T) {
	var m Medium

	var aGot, bGot, cGot int
	injectA, _ := m.Attach(func(rstp.Frame) { aGot++ })
	_, detachB := m.Attach(func(rstp.Frame) { bGot++ })
	_, _ = m.Attach(func(rstp.Frame) { cGot++ })

	injectA(rstp.Frame{})
	if aGot != 0 {
		t.Fatalf("a tap should never receive its own injected frame")
	}
	if bGot != 1 || cGot != 1 {
		t.Fatalf("every other tap should receive the frame once, got b=%d c=%d", bGot, cGot)
	}

	detachB()
	injectA(rstp.Frame{})
	if bGot != 1 {
		t.Fatalf("detached tap should stop receiving frames, got %d", bGot)
	}
	if cGot != 2 {
		t.Fatalf("remaining tap should still receive frames, got %d", cGot)
	}
}
