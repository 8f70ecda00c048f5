// Package bpdu turns internal/rstp.Frame values into wire bytes and back,
// framed as Ethernet+LLC+RSTP the way the teacher's tx.go/rx.go do it.
package bpdu

import (
	"fmt"
	"net"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/l2switch/rstpd/internal/rstp"
)

// tickSeconds is the BPDU wire unit: whole seconds, matching the teacher's
// TxConfig (MsgAge/MaxAge/HelloTime/FwdDelay carried as plain uint16
// seconds, as opposed to TxRSTP's <<8 1/256s convention which this engine
// does not use).
const tickSeconds = time.Second

func durationToTick(d time.Duration) uint16 {
	return uint16(d / tickSeconds)
}

func tickToDuration(t uint16) time.Duration {
	return time.Duration(t) * tickSeconds
}

// packID packs a bridge/root priority and MAC into the 8-byte identifier
// gopacket/layers' RSTP.RootId and BridgeId fields expect, the same layout
// as the teacher's bridge.go CreateBridgeId: 2 priority bytes (big-endian)
// followed by the 6 MAC bytes.
func packID(priority uint16, mac rstp.MAC) [8]byte {
	var id [8]byte
	id[0] = byte(priority >> 8)
	id[1] = byte(priority)
	copy(id[2:], mac[:])
	return id
}

func unpackID(id [8]byte) (uint16, rstp.MAC) {
	priority := uint16(id[0])<<8 | uint16(id[1])
	var mac rstp.MAC
	copy(mac[:], id[2:])
	return priority, mac
}

// roleBits is a cosmetic port-role code for the RSTP flags byte's 2-bit
// role field; this engine never decodes it back, since role is recomputed
// locally by the ingest decision table rather than trusted from the wire.
func roleBits(r rstp.Role) uint8 {
	switch r {
	case rstp.RoleRoot:
		return 2
	case rstp.RoleDesignated:
		return 3
	default:
		return 1
	}
}

func setFlags(flags *uint8, tc, tca bool, role rstp.Role) {
	*flags = 0
	if tca {
		*flags |= 1 << 7
	}
	*flags |= roleBits(role) << 2
	if tc {
		*flags |= 1 << 0
	}
}

func readFlags(flags uint8) (tc, tca bool) {
	return flags&0x01 != 0, flags&0x80 != 0
}

// Encode builds the Ethernet+LLC+RSTP frame bytes for f, originated by
// srcMAC, advertising role (carried in the flags byte only; this engine's
// own state does not depend on it on receipt).
func Encode(f rstp.Frame, srcMAC rstp.MAC, role rstp.Role) ([]byte, error) {
	eth := layers.Ethernet{
		SrcMAC:       net.HardwareAddr(srcMAC[:]),
		DstMAC:       layers.BpduDMAC,
		EthernetType: layers.EthernetTypeLLC,
		Length:       uint16(layers.STPProtocolLength + 3),
	}
	llc := layers.LLC{
		DSAP:    0x42,
		IG:      false,
		SSAP:    0x42,
		CR:      false,
		Control: 0x03,
	}

	rstpLayer := layers.RSTP{
		ProtocolId:        layers.RSTPProtocolIdentifier,
		ProtocolVersionId: layers.RSTPProtocolVersion,
		BPDUType:          byte(layers.BPDUTypeRSTP),
		RootId:            packID(f.RootPriority, f.RootMAC),
		RootPathCost:      f.RootPathCost,
		BridgeId:          packID(f.BridgePriority, f.BridgeMAC),
		PortId:            uint16(f.PortNum) | uint16(f.PortPriority)<<8,
		MsgAge:            durationToTick(f.MessageAge),
		MaxAge:            durationToTick(f.MaxAge),
		HelloTime:         durationToTick(f.HelloTime),
		FwdDelay:          durationToTick(f.ForwardDelay),
		Version1Length:    0,
	}
	setFlags(&rstpLayer.Flags, f.TC, f.TCA, role)

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, &eth, &llc, &rstpLayer); err != nil {
		return nil, fmt.Errorf("bpdu: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses raw Ethernet bytes into a Frame, per spec.md §6's BPDU
// wire fields. It returns ok=false for anything that is not a well-formed
// RSTP BPDU (mirroring the teacher's ValidateBPDUFrame, narrowed to the
// RSTP-only subset this engine speaks — legacy STP and PVST framing are
// rejected rather than downgraded).
func Decode(raw []byte) (f rstp.Frame, ok bool) {
	packet := gopacket.NewPacket(raw, layers.LayerTypeEthernet, gopacket.NoCopy)

	ethernetLayer := packet.Layer(layers.LayerTypeEthernet)
	llcLayer := packet.Layer(layers.LayerTypeLLC)
	bpduLayer := packet.Layer(layers.LayerTypeBPDU)
	if ethernetLayer == nil || llcLayer == nil || bpduLayer == nil {
		return rstp.Frame{}, false
	}

	rstpLayer, isRSTP := bpduLayer.(*layers.RSTP)
	if !isRSTP || rstpLayer.BPDUType != byte(layers.BPDUTypeRSTP) ||
		rstpLayer.ProtocolId != layers.RSTPProtocolIdentifier {
		return rstp.Frame{}, false
	}

	f.RootPriority, f.RootMAC = unpackID(rstpLayer.RootId)
	f.RootPathCost = rstpLayer.RootPathCost
	f.BridgePriority, f.BridgeMAC = unpackID(rstpLayer.BridgeId)
	f.PortPriority = uint8(rstpLayer.PortId >> 8)
	f.PortNum = rstpLayer.PortId & 0x00ff
	f.MessageAge = tickToDuration(rstpLayer.MsgAge)
	f.MaxAge = tickToDuration(rstpLayer.MaxAge)
	f.HelloTime = tickToDuration(rstpLayer.HelloTime)
	f.ForwardDelay = tickToDuration(rstpLayer.FwdDelay)
	f.TC, f.TCA = readFlags(rstpLayer.Flags)

	return f, true
}
