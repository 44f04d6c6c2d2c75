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

// Package clocksource provides client.ClockSource implementations backed
// by the local system clock.
package clocksource

import (
	"sync"
	"time"
)

// System is a client.ClockSource backed by time.Now(). A *System is not
// meant to be shared between concurrently running rounds: each goroutine
// driving its own client.Context should construct its own System with
// New. The mutex below only protects against the Init/Seconds/SubMicros
// sequence being read from a different goroutine than the one that
// called Init, not against two rounds interleaving on one instance.
type System struct {
	mu  sync.Mutex
	now time.Time
}

// New returns a ready-to-use System clock source.
func New() *System {
	return &System{}
}

// Init samples time.Now().
func (s *System) Init() {
	s.mu.Lock()
	s.now = time.Now()
	s.mu.Unlock()
}

// Seconds returns the Unix-epoch whole seconds of the most recent Init call.
func (s *System) Seconds() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint64(s.now.Unix())
}

// SubMicros returns the fractional microseconds of the most recent Init call.
func (s *System) SubMicros() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint32(s.now.Nanosecond() / 1000)
}
