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

// Package client implements the SNTPv4 Protocol Engine: it orchestrates
// one request/response round (stamp, encode, send, receive, stamp,
// validate, compute) against a single already-resolved server endpoint.
//
// The engine is scheduling-model agnostic. Its two I/O points — SendTo
// and RecvFrom on a DatagramChannel — are ordinary blocking Go calls;
// whether the calling goroutine is the only one in the program (a
// "blocking synchronous" or "cooperative single-task" deployment) or one
// of many concurrent callers sharing the Go runtime's scheduler (a
// "multi-task preemptive" deployment) is a property of the caller, not
// of this package. The engine itself holds no cross-call state and
// performs no retries; concurrent calls on independent Contexts and
// channels are always safe.
package client

import (
	"net"

	"github.com/netclocks/sntp/protocol/ntp"
)

// Context owns a ClockSource and is cheaply copyable. It is the only
// state threaded through the engine besides the caller-provided
// DatagramChannel.
type Context struct {
	Clock ClockSource
}

// SendRequestResult is the state captured at send time that must survive
// until the matching ProcessResponse call. It carries no heap allocation
// and no locks, so dropping it (e.g. on cancellation) is always safe.
type SendRequestResult struct {
	OriginateTimestamp ntp.Timestamp
	Version            uint8
}

// now samples ctx's clock and returns the current instant as an NTP
// Timestamp, per the Timestamp Authority contract: Init must be called
// immediately before Seconds/SubMicros.
func now(ctx Context) ntp.Timestamp {
	ctx.Clock.Init()
	return ntp.ToNTP(int64(ctx.Clock.Seconds()), ctx.Clock.SubMicros())
}

// SendRequest constructs a fresh NTPv4 client request stamped with T1,
// encodes it and sends it to dest over channel. It fails with Network if
// the channel reports an error or if the number of bytes sent does not
// equal the full packet size.
func SendRequest(dest net.Addr, channel DatagramChannel, ctx Context) (SendRequestResult, error) {
	t1 := now(ctx)
	req := ntp.NewRequest(t1)

	var buf [ntp.PacketSizeBytes]byte
	ntp.Encode(req, buf[:])

	n, err := channel.SendTo(buf[:], dest)
	if err != nil {
		return SendRequestResult{}, NewError(Network, err)
	}
	if n != ntp.PacketSizeBytes {
		return SendRequestResult{}, NewError(Network, nil)
	}

	return SendRequestResult{
		OriginateTimestamp: t1,
		Version:            req.Version(),
	}, nil
}

// ProcessResponse receives one datagram from channel, stamps the local
// receive time T4, validates the response against dest and state in the
// RFC 5905 validation sequence: address, length, origin timestamp, mode,
// leap, version, stratum, and on success computes the round-trip delay
// and offset.
func ProcessResponse(dest net.Addr, channel DatagramChannel, ctx Context, state SendRequestResult) (ntp.Result, error) {
	var buf [ntp.PacketSizeBytes]byte
	n, src, err := channel.RecvFrom(buf[:])
	t4 := now(ctx)
	if err != nil {
		return ntp.Result{}, NewError(Network, err)
	}

	if !addressesEqual(src, dest) {
		return ntp.Result{}, NewError(ResponseAddressMismatch, nil)
	}
	if n != ntp.PacketSizeBytes {
		return ntp.Result{}, NewError(IncorrectPayload, nil)
	}

	resp := ntp.Decode(buf[:])

	if resp.OriginTimestamp() != state.OriginateTimestamp {
		return ntp.Result{}, NewError(IncorrectOriginTimestamp, nil)
	}
	if mode := resp.Mode(); mode != ntp.ModeServer && mode != ntp.ModeBroadcast {
		return ntp.Result{}, NewError(IncorrectMode, nil)
	}
	if resp.Leap() > ntp.LeapNotInSync {
		return ntp.Result{}, NewError(IncorrectLeapIndicator, nil)
	}
	if resp.Version() != state.Version {
		return ntp.Result{}, NewError(IncorrectResponseVersion, nil)
	}
	if resp.Stratum == 0 {
		return ntp.Result{}, NewError(IncorrectStratumHeaders, nil)
	}

	t1 := resp.OriginTimestamp()
	t2 := resp.ReceiveTimestamp()
	t3 := resp.TransmitTimestamp()

	roundTrip := ntp.RoundTripMicros(t1, t2, t3, t4)
	offset := ntp.OffsetMicros(t1, t2, t3, t4)

	unixSeconds := t3.UnixSeconds()
	return ntp.NewResult(uint32(unixSeconds), t3.Fraction(), roundTrip, offset, resp.Stratum, resp.Precision), nil
}

// GetTime performs a full SNTP round against dest over channel: it is
// exactly SendRequest followed by ProcessResponse using the same dest
// and ctx.
func GetTime(dest net.Addr, channel DatagramChannel, ctx Context) (ntp.Result, error) {
	state, err := SendRequest(dest, channel, ctx)
	if err != nil {
		return ntp.Result{}, err
	}
	return ProcessResponse(dest, channel, ctx, state)
}

// addressesEqual compares two net.Addr values for exact equality,
// including port: a response from the right host on the wrong port is
// still a mismatch (exact socket-address equality, RFC 5905 client
// validation).
func addressesEqual(a, b net.Addr) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Network() == b.Network() && a.String() == b.String()
}
