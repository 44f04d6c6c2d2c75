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

// Package stats tracks running offset/round-trip statistics for each
// polled server.
package stats

import (
	"sync"

	"github.com/eclesh/welford"
)

// Server accumulates the recent history of one server's poll results: a
// bounded ring of raw samples for the alert expressions to index into,
// plus a Welford running mean/variance that never needs the full history
// in memory.
type Server struct {
	mu sync.Mutex

	maxHistory     int
	offsetUs       []float64
	roundTripUs    []float64
	offsetStats    *welford.Stats
	roundTripStats *welford.Stats
	lastStratum    uint8
	failures       int
}

// NewServer returns a Server tracker keeping at most maxHistory samples.
func NewServer(maxHistory int) *Server {
	return &Server{
		maxHistory:     maxHistory,
		offsetStats:    welford.New(),
		roundTripStats: welford.New(),
	}
}

// Record appends one successful poll's measurements.
func (s *Server) Record(offsetUs int64, roundTripUs uint64, stratum uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsetUs = prepend(s.offsetUs, float64(offsetUs), s.maxHistory)
	s.roundTripUs = prepend(s.roundTripUs, float64(roundTripUs), s.maxHistory)
	s.offsetStats.Add(float64(offsetUs))
	s.roundTripStats.Add(float64(roundTripUs))
	s.lastStratum = stratum
	s.failures = 0
}

// RecordFailure notes one failed poll, for liveness metrics.
func (s *Server) RecordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures++
}

// Snapshot is a point-in-time, lock-free copy of a Server's state, safe
// to hand to the metrics exporter or an alert evaluation.
type Snapshot struct {
	OffsetUs        []float64
	RoundTripUs     []float64
	MeanOffsetUs    float64
	StddevOffsetUs  float64
	MeanRoundTripUs float64
	Stratum         uint8
	Failures        int
}

// Snapshot copies out s's current state.
func (s *Server) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		OffsetUs:        append([]float64(nil), s.offsetUs...),
		RoundTripUs:     append([]float64(nil), s.roundTripUs...),
		MeanOffsetUs:    s.offsetStats.Mean(),
		StddevOffsetUs:  s.offsetStats.Stddev(),
		MeanRoundTripUs: s.roundTripStats.Mean(),
		Stratum:         s.lastStratum,
		Failures:        s.failures,
	}
}

// prepend pushes v onto the front of history, trimming it to max entries.
func prepend(history []float64, v float64, max int) []float64 {
	history = append([]float64{v}, history...)
	if len(history) > max {
		history = history[:max]
	}
	return history
}
