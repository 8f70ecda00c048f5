// Command rstpd is the process entrypoint: it reads a bridge's JSON
// configuration, builds one rstp.Engine wired to real interfaces via pcap,
// and serves prometheus metrics, replacing the teacher's thrift-RPC
// main.go (stp/main.go) with a single self-contained binary.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/l2switch/rstpd/internal/config"
	"github.com/l2switch/rstpd/internal/iftable"
	"github.com/l2switch/rstpd/internal/lifecycle"
	"github.com/l2switch/rstpd/internal/mactable"
	"github.com/l2switch/rstpd/internal/metrics"
	"github.com/l2switch/rstpd/internal/relay"
	"github.com/l2switch/rstpd/internal/rstp"
)

func main() {
	configPath := flag.String("config", "/etc/rstpd/bridge.json", "path to the bridge JSON configuration")
	metricsAddr := flag.String("metrics-addr", ":9273", "listen address for the prometheus /metrics endpoint")
	logLevel := flag.String("log-level", "info", "logrus level: debug, info, warning, error")
	flag.Parse()

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(*logLevel); err == nil {
		log.SetLevel(lvl)
	}
	entry := logrus.NewEntry(log).WithField("subsystem", "rstpd")

	if err := run(*configPath, *metricsAddr, entry); err != nil {
		entry.WithError(err).Fatal("rstpd exiting")
	}
}

func run(configPath, metricsAddr string, log *logrus.Entry) error {
	f, err := os.Open(configPath)
	if err != nil {
		return fmt.Errorf("rstpd: open config: %w", err)
	}
	defer f.Close()

	bridgeCfg, err := config.Load(f)
	if err != nil {
		return fmt.Errorf("rstpd: load config: %w", err)
	}

	mac, err := bridgeMAC(bridgeCfg.Ports[0].Name)
	if err != nil {
		return fmt.Errorf("rstpd: resolve bridge MAC: %w", err)
	}

	ifaces := bridgeCfg.Interfaces(toMAC(mac))
	ifTable, err := iftable.New(ifaces)
	if err != nil {
		return fmt.Errorf("rstpd: build interface table: %w", err)
	}
	macTable := mactable.New()

	ifNames := make([]string, len(ifaces))
	for i, ifc := range ifaces {
		ifNames[i] = ifc.Name
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg, fmt.Sprintf("%d-%s", bridgeCfg.Priority, mac))

	// engine is assigned below, after the relay that needs to look its
	// port roles up; the lookup closure isn't invoked until the first
	// BPDU transmission, by which point engine is set.
	var engine *rstp.Engine

	inbox := make(chan rstp.InboundFrame, 64)
	deliver := func(port int, fr rstp.Frame) {
		select {
		case inbox <- rstp.InboundFrame{Port: port, Frame: fr}:
		default:
			log.Warning("inbox full, dropping received bpdu")
		}
	}

	pcapRelay, stopRelay, err := relay.NewPcapRelay(toMAC(mac), func(port int) rstp.Role {
		return engine.Port(port).RoleState.Role()
	}, ifNames, deliver, log.WithField("subsystem", "relay"))
	if err != nil {
		return fmt.Errorf("rstpd: open relay: %w", err)
	}
	defer stopRelay()

	engine, err = rstp.NewEngine(
		bridgeCfg.EngineConfig(), toMAC(mac), bridgeCfg.PortConfigs(),
		macTable, ifTable, pcapRelay,
		rstp.WithLogger(log.WithField("subsystem", "rstp")),
		rstp.WithObserver(collector),
	)
	if err != nil {
		return fmt.Errorf("rstpd: construct engine: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ctrl := lifecycle.New(engine, log.WithField("subsystem", "lifecycle"))
	if err := ctrl.Handle(lifecycle.OperationStart, lifecycle.StageLinkUp); err != nil {
		return fmt.Errorf("rstpd: start engine: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	httpServer := &http.Server{Addr: metricsAddr, Handler: mux}
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("metrics server stopped")
		}
	}()

	go func() {
		<-sig
		log.Info("signal received, shutting down")
		_ = httpServer.Shutdown(context.Background())
		cancel()
	}()

	engine.Run(ctx, inbox)
	_ = ctrl.Handle(lifecycle.OperationShutdown, lifecycle.StageLinkDown)
	return nil
}

// bridgeMAC resolves a bridge's identity MAC from its first configured
// interface, the way the teacher's SaveSwitchMac sourced it from the host's
// own network stack rather than from configuration.
func bridgeMAC(ifName string) (net.HardwareAddr, error) {
	iface, err := net.InterfaceByName(ifName)
	if err != nil {
		return nil, err
	}
	if len(iface.HardwareAddr) != 6 {
		return nil, fmt.Errorf("interface %s has no 6-byte hardware address", ifName)
	}
	return iface.HardwareAddr, nil
}

func toMAC(hw net.HardwareAddr) rstp.MAC {
	var m rstp.MAC
	copy(m[:], hw)
	return m
}
