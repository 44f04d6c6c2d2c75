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

package client

import "net"

// DatagramChannel is what the Protocol Engine expects from a UDP
// transport: send one datagram, receive one datagram and report its
// source. Implementations may block (an OS socket), or run on a
// cooperative/async runtime — from the engine's point of view a call
// either returns or the calling goroutine blocks, which is exactly what
// "may suspend" means in a language without a separate async keyword.
//
// The core does not impose an order on receive-buffer initialization
// beyond requiring room for at least protocol/ntp.PacketSizeBytes bytes.
type DatagramChannel interface {
	// SendTo sends the entirety of buf to addr. A partial send must be
	// reported as an error, not as a short byte count alone, but the
	// engine treats either as Network.
	SendTo(buf []byte, addr net.Addr) (n int, err error)
	// RecvFrom reads one datagram into buf and reports how many bytes
	// were written along with the address it arrived from.
	RecvFrom(buf []byte) (n int, addr net.Addr, err error)
}

// ClockSource is what the Protocol Engine expects from a local clock: a
// way to sample "now" into internal state (Init) and then read that
// sample back in two parts. Callers — here, the engine itself — must
// call Init immediately before each Seconds/SubMicros pair.
type ClockSource interface {
	// Init samples "now" into the source's internal state.
	Init()
	// Seconds returns the Unix-epoch whole seconds of the most recent
	// Init call.
	Seconds() uint64
	// SubMicros returns the fractional microseconds (0..=999999) of the
	// most recent Init call.
	SubMicros() uint32
}
