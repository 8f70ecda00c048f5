package rstp

import (
	"context"
	"testing"
	"time"
)

// TestRunProcessesInboundFramesAndStopsOnCancel exercises Run without
// arming any real timers (operational is set directly rather than via
// Start, so helloTimer/fwdTimer/migTimer stay nil and Run's select only
// ever has ctx.Done() and inbox to choose from), keeping the test
// deterministic. initPorts gives the ports the same "I am root" vectors
// Start would.
func TestRunProcessesInboundFramesAndStopsOnCancel(t *testing.T) {
	e, _, relay, _ := newTestEngine(t, 2, 32768)
	e.initPorts()
	e.operational = true

	ctx, cancel := context.WithCancel(context.Background())
	inbox := make(chan InboundFrame, 1)

	done := make(chan struct{})
	go func() {
		e.Run(ctx, inbox)
		close(done)
	}()

	inbox <- InboundFrame{Port: 0, Frame: Frame{
		RootPriority: 4096, RootMAC: mac(9),
		BridgePriority: 4096, BridgeMAC: mac(9),
		PortPriority: 128, PortNum: 0,
	}}

	time.Sleep(50 * time.Millisecond)

	cancel()
	<-done

	if r := e.rootIndex(); r != 0 {
		t.Fatalf("rootIndex() after Run processed the frame = %d, want 0", r)
	}
	if len(relay.sent) == 0 {
		t.Fatalf("expected Run's processing of the frame to flood at least one bpdu")
	}
}

func TestRunExitsWhenInboxClosed(t *testing.T) {
	e, _, _, _ := newTestEngine(t, 1, 32768)
	e.operational = true

	inbox := make(chan InboundFrame)
	close(inbox)

	done := make(chan struct{})
	go func() {
		e.Run(context.Background(), inbox)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after inbox closed")
	}
}
