// Package relay implements spec.md §6's relay/framing collaborator: a
// live, pcap-backed implementation for real interfaces (grounded on the
// teacher's port.go/tx.go/rx.go) and an in-memory one for simulation
// (memory.go).
package relay

import (
	"fmt"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"github.com/sirupsen/logrus"

	"github.com/l2switch/rstpd/internal/bpdu"
	"github.com/l2switch/rstpd/internal/rstp"
)

// RoleLookup reports the current role of a port, purely for the cosmetic
// wire flags byte (see internal/bpdu.Encode).
type RoleLookup func(port int) rstp.Role

// PcapHandle is the subset of *pcap.Handle the relay uses, so tests can
// substitute a fake without opening a real interface.
type PcapHandle interface {
	WritePacketData(data []byte) error
	Close()
}

// PcapRelay transmits BPDUs on real interfaces via libpcap, mirroring the
// teacher's NewStpPort/TxRSTP pattern: one handle per port, opened live,
// packets read back via a gopacket.PacketSource feeding Deliver.
type PcapRelay struct {
	mac     rstp.MAC
	roleOf  RoleLookup
	handles []PcapHandle
	log     *logrus.Entry
}

// NewPcapRelay opens a live pcap handle on each of ifNames, in port-index
// order, and starts a background reader goroutine per interface that
// decodes incoming frames and calls deliver. It returns the relay and a
// stop function that closes every handle.
func NewPcapRelay(mac rstp.MAC, roleOf RoleLookup, ifNames []string, deliver func(port int, f rstp.Frame), log *logrus.Entry) (*PcapRelay, func(), error) {
	r := &PcapRelay{mac: mac, roleOf: roleOf, log: log}
	var closers []func()

	for i, name := range ifNames {
		handle, err := pcap.OpenLive(name, 65536, false, 50*time.Millisecond)
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, fmt.Errorf("relay: open %s: %w", name, err)
		}
		r.handles = append(r.handles, handle)
		closers = append(closers, handle.Close)

		port := i
		src := gopacket.NewPacketSource(handle, layers.LayerTypeEthernet)
		go func() {
			for packet := range src.Packets() {
				f, ok := bpdu.Decode(packet.Data())
				if !ok {
					continue
				}
				deliver(port, f)
			}
		}()
	}

	stop := func() {
		for _, c := range closers {
			c()
		}
	}
	return r, stop, nil
}

// Send implements rstp.Relay.
func (r *PcapRelay) Send(frame rstp.Frame, port int) error {
	if port < 0 || port >= len(r.handles) {
		return fmt.Errorf("relay: port %d out of range", port)
	}
	role := rstp.RoleNotAssigned
	if r.roleOf != nil {
		role = r.roleOf(port)
	}
	raw, err := bpdu.Encode(frame, r.mac, role)
	if err != nil {
		return err
	}
	if err := r.handles[port].WritePacketData(raw); err != nil {
		return fmt.Errorf("relay: write port %d: %w", port, err)
	}
	return nil
}
