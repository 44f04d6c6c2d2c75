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

package ntp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Same wire bytes as a real ntpdate client request/response pair, reused
// here because the wire layout (offsets, byte order) hasn't changed.
var (
	requestPacket = &Packet{
		LiVnMode:       227,
		Stratum:        0,
		Poll:           3,
		Precision:      -6,
		RootDelay:      65536,
		RootDispersion: 65536,
		ReferenceID:    0,
		TxTimeSec:      3794210679,
		TxTimeFrac:     2718216404,
	}
	requestBytes = []byte{227, 0, 3, 250, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 226, 39, 15, 119, 162, 4, 176, 212}

	responsePacket = &Packet{
		LiVnMode:       36,
		Stratum:        1,
		Poll:           3,
		Precision:      -32,
		RootDelay:      0,
		RootDispersion: 10,
		ReferenceID:    1178738720,
		RefTimeSec:     3794209800,
		RefTimeFrac:    0,
		OrigTimeSec:    3794210679,
		OrigTimeFrac:   2718216404,
		RxTimeSec:      3794210679,
		RxTimeFrac:     2718375472,
		TxTimeSec:      3794210679,
		TxTimeFrac:     2719753478,
	}
	responseBytes = []byte{36, 1, 3, 224, 0, 0, 0, 0, 0, 0, 0, 10, 70, 66, 32, 32, 226, 39, 12, 8, 0, 0, 0, 0, 226, 39, 15, 119, 162, 4, 176, 212, 226, 39, 15, 119, 162, 7, 30, 48, 226, 39, 15, 119, 162, 28, 37, 6}
)

func TestEncodeRequest(t *testing.T) {
	b := requestPacket.Bytes()
	assert.Equal(t, requestBytes, b[:])
}

func TestEncodeResponse(t *testing.T) {
	b := responsePacket.Bytes()
	assert.Equal(t, responseBytes, b[:])
}

func TestDecodeResponse(t *testing.T) {
	p := Decode(responseBytes)
	assert.Equal(t, *responsePacket, p)
}

func TestWireLengthIsAlways48(t *testing.T) {
	b := requestPacket.Bytes()
	assert.Len(t, b, PacketSizeBytes)
}

// decode(encode(p)) == p for every well-formed packet.
func TestRoundTrip(t *testing.T) {
	for _, p := range []*Packet{requestPacket, responsePacket, {}} {
		var buf [PacketSizeBytes]byte
		Encode(p, buf[:])
		got := Decode(buf[:])
		assert.Equal(t, *p, got)
	}
}

func TestModeVersionLeapAccessors(t *testing.T) {
	p := &Packet{}
	p.SetLiVnMode(LeapNoWarning, ClientVersion, ModeClient)
	assert.Equal(t, ModeClient, p.Mode())
	assert.Equal(t, ClientVersion, p.Version())
	assert.Equal(t, LeapNoWarning, p.Leap())

	p.SetLiVnMode(LeapNotInSync, 3, ModeServer)
	assert.Equal(t, ModeServer, p.Mode())
	assert.Equal(t, uint8(3), p.Version())
	assert.Equal(t, LeapNotInSync, p.Leap())
}

func TestNewRequest(t *testing.T) {
	tx := NewTimestamp(3794210679, 2718216404)
	p := NewRequest(tx)
	require.Equal(t, ModeClient, p.Mode())
	require.Equal(t, ClientVersion, p.Version())
	require.Equal(t, LeapNoWarning, p.Leap())
	assert.Equal(t, tx, p.TransmitTimestamp())
	assert.Zero(t, p.Stratum)
	assert.Zero(t, p.OrigTimeSec)
	assert.Zero(t, p.RxTimeSec)
}
