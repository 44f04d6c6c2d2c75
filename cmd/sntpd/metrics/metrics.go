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

// Package metrics exposes a Prometheus /metrics endpoint for sntpd.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Exporter holds one gauge vector per measurement, labeled by server.
type Exporter struct {
	registry  *prometheus.Registry
	offset    *prometheus.GaugeVec
	roundTrip *prometheus.GaugeVec
	stratum   *prometheus.GaugeVec
	failures  *prometheus.CounterVec
	port      int
}

// New builds an Exporter listening on port once Start is called.
func New(port int) *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		offset: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sntp_offset_microseconds",
			Help: "Most recent clock offset from the server, in microseconds.",
		}, []string{"server"}),
		roundTrip: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sntp_round_trip_microseconds",
			Help: "Most recent round-trip delay to the server, in microseconds.",
		}, []string{"server"}),
		stratum: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sntp_stratum",
			Help: "Stratum reported by the server in its most recent response.",
		}, []string{"server"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sntp_poll_failures_total",
			Help: "Count of polls that failed to produce a usable response.",
		}, []string{"server"}),
		port: port,
	}
	e.registry.MustRegister(e.offset, e.roundTrip, e.stratum, e.failures)
	return e
}

// Observe records one successful poll's measurements for server.
func (e *Exporter) Observe(server string, offsetUs int64, roundTripUs uint64, stratum uint8) {
	e.offset.WithLabelValues(server).Set(float64(offsetUs))
	e.roundTrip.WithLabelValues(server).Set(float64(roundTripUs))
	e.stratum.WithLabelValues(server).Set(float64(stratum))
}

// ObserveFailure increments the failure counter for server.
func (e *Exporter) ObserveFailure(server string) {
	e.failures.WithLabelValues(server).Inc()
}

// Start serves /metrics; it blocks and only returns on a listener error.
func (e *Exporter) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	log.Infof("serving metrics on :%d/metrics", e.port)
	return http.ListenAndServe(fmt.Sprintf(":%d", e.port), mux)
}
