/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"net"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/netclocks/sntp/client"
	"github.com/netclocks/sntp/clocksource"
	"github.com/netclocks/sntp/cmd/sntpd/alerts"
	"github.com/netclocks/sntp/cmd/sntpd/config"
	"github.com/netclocks/sntp/cmd/sntpd/metrics"
	"github.com/netclocks/sntp/cmd/sntpd/stats"
	"github.com/netclocks/sntp/protocol/ntp"
	"github.com/netclocks/sntp/transport/udp"
)

// Daemon polls a fixed set of SNTP servers on an interval, one goroutine
// per server, each with its own UDP socket and ClockSource: the
// "multi-task preemptive" deployment mode the core is indifferent to.
type Daemon struct {
	cfg     config.Config
	stats   map[string]*stats.Server
	alerts  []*alerts.Alert
	metrics *metrics.Exporter
}

// New builds a Daemon from cfg, compiling its alert expressions.
func New(cfg config.Config) (*Daemon, error) {
	d := &Daemon{
		cfg:     cfg,
		stats:   make(map[string]*stats.Server, len(cfg.Servers)),
		metrics: metrics.New(cfg.MetricsPort),
	}
	for _, server := range cfg.Servers {
		d.stats[server] = stats.NewServer(cfg.HistoryLength)
	}
	for _, a := range cfg.Alerts {
		compiled, err := alerts.Compile(a.Name, a.Expression)
		if err != nil {
			return nil, err
		}
		d.alerts = append(d.alerts, compiled)
	}
	return d, nil
}

// Run starts the metrics endpoint and one polling loop per server, and
// blocks until ctx is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	go func() {
		if err := d.metrics.Start(); err != nil {
			log.Errorf("metrics server stopped: %v", err)
		}
	}()

	if d.cfg.NotifySystemd {
		if err := notifySystemdReady(); err != nil {
			log.Warnf("sd_notify: %v", err)
		}
	}

	done := make(chan struct{}, len(d.cfg.Servers))
	for _, server := range d.cfg.Servers {
		go d.pollLoop(ctx, server, done)
	}
	for range d.cfg.Servers {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (d *Daemon) pollLoop(ctx context.Context, server string, done chan<- struct{}) {
	defer func() { done <- struct{}{} }()

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	d.pollOnce(server)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.pollOnce(server)
		}
	}
}

func (d *Daemon) pollOnce(server string) {
	tracker := d.stats[server]
	result, err := d.query(server)
	if err != nil {
		log.Warnf("%s: %v", server, err)
		tracker.RecordFailure()
		d.metrics.ObserveFailure(server)
		return
	}

	tracker.Record(result.Offset, result.RoundTrip, result.Stratum)
	d.metrics.Observe(server, result.Offset, result.RoundTrip, result.Stratum)

	snap := tracker.Snapshot()
	for _, alert := range d.alerts {
		fired, err := alert.Evaluate(snap)
		if err != nil {
			log.Errorf("%s: %v", server, err)
			continue
		}
		if fired {
			log.Warnf("%s: alert %q fired (offset=%dus mean=%.1fus stddev=%.1fus)",
				server, alert.Name, result.Offset, snap.MeanOffsetUs, snap.StddevOffsetUs)
		}
	}
}

func (d *Daemon) query(server string) (ntp.Result, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(server, "123"))
	if err != nil {
		return ntp.Result{}, client.NewError(client.AddressResolve, err)
	}

	conn, err := udp.Dial(&net.UDPAddr{})
	if err != nil {
		return ntp.Result{}, err
	}
	defer conn.Close()
	if err := conn.SetDeadline(time.Now().Add(d.cfg.QueryTimeout)); err != nil {
		return ntp.Result{}, err
	}

	ctx := client.Context{Clock: clocksource.New()}
	return client.GetTime(addr, conn, ctx)
}
