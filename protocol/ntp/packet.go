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

/*
Package ntp implements the wire format and fixed-point time arithmetic of
an SNTPv4 client (RFC 4330 / RFC 5905 subset). It provides quick and
transparent translation between 48 bytes and a simply accessible struct,
plus the offset/round-trip-delay computation over the four NTP
timestamps, in the most efficient way: no heap allocation on the
encode/decode/compute paths.
*/
package ntp

// PacketSizeBytes is the size in bytes of an NTP packet header on the wire.
const PacketSizeBytes = 48

// Mode identifies the role a packet claims on the wire (RFC 5905 Figure 8).
type Mode uint8

// NTP modes this client cares about. Symmetric/control modes are never
// produced by this client and are only meaningful when read back from a
// response's Mode() accessor.
const (
	ModeReserved         Mode = 0
	ModeSymmetricActive  Mode = 1
	ModeSymmetricPassive Mode = 2
	ModeClient           Mode = 3
	ModeServer           Mode = 4
	ModeBroadcast        Mode = 5
	ModeControl          Mode = 6
	ModeReservedPrivate  Mode = 7
)

// Leap is the 2-bit leap indicator warning of an impending leap second.
type Leap uint8

// Leap indicator values (RFC 5905 section 7.3).
const (
	LeapNoWarning Leap = 0
	LeapAddSecond Leap = 1
	LeapDelSecond Leap = 2
	LeapNotInSync Leap = 3
)

// ClientVersion is the only NTP version this client transmits.
const ClientVersion uint8 = 4

const (
	modeMask    = 0b0000_0111
	modeShift   = 0
	versionMask = 0b0011_1000
	versionShift = 3
	leapMask    = 0b1100_0000
	leapShift   = 6
)

// extract pulls a bit-packed sub-field out of a byte: (b & mask) >> shift.
func extract(b, mask, shift uint8) uint8 {
	return (b & mask) >> shift
}

// pack writes a bit-packed sub-field value into a byte at the given mask/shift.
func pack(b, mask, shift, value uint8) uint8 {
	return (b &^ mask) | ((value << shift) & mask)
}

// Packet is a 48-byte NTPv4 header (RFC 5905 section 7.3):
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|LI | VN  |Mode |    Stratum    |     Poll      |  Precision    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                         Root Delay                           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                         Root Dispersion                      |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                          Reference ID                        |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     Reference Timestamp (64)                 |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                      Origin Timestamp (64)                   |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                      Receive Timestamp (64)                  |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                      Transmit Timestamp (64)                 |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// No extension fields and no MAC are modeled: this client never sends or
// expects either.
type Packet struct {
	LiVnMode       uint8 // leap indicator (2), version (3), mode (3)
	Stratum        uint8
	Poll           int8
	Precision      int8
	RootDelay      uint32 // NTP short format
	RootDispersion uint32 // NTP short format
	ReferenceID    uint32
	RefTimeSec     uint32
	RefTimeFrac    uint32
	OrigTimeSec    uint32
	OrigTimeFrac   uint32
	RxTimeSec      uint32
	RxTimeFrac     uint32
	TxTimeSec      uint32
	TxTimeFrac     uint32
}

// Mode returns the packet's mode sub-field.
func (p *Packet) Mode() Mode {
	return Mode(extract(p.LiVnMode, modeMask, modeShift))
}

// Version returns the packet's version sub-field.
func (p *Packet) Version() uint8 {
	return extract(p.LiVnMode, versionMask, versionShift)
}

// Leap returns the packet's leap indicator sub-field.
func (p *Packet) Leap() Leap {
	return Leap(extract(p.LiVnMode, leapMask, leapShift))
}

// SetLiVnMode packs leap, version and mode into the packet's LiVnMode byte.
func (p *Packet) SetLiVnMode(leap Leap, version uint8, mode Mode) {
	var b uint8
	b = pack(b, leapMask, leapShift, uint8(leap))
	b = pack(b, versionMask, versionShift, version)
	b = pack(b, modeMask, modeShift, uint8(mode))
	p.LiVnMode = b
}

// NewRequest builds a fresh NTPv4 client-mode request packet with the
// given transmit timestamp (T1). Every other field is left at its zero
// value: a client request carries no meaningful stratum, poll, precision,
// delay, dispersion, reference ID or other timestamps.
func NewRequest(txTimestamp Timestamp) *Packet {
	p := &Packet{}
	p.SetLiVnMode(LeapNoWarning, ClientVersion, ModeClient)
	p.TxTimeSec, p.TxTimeFrac = txTimestamp.Split()
	return p
}

// OriginTimestamp returns the packet's origin timestamp as a Timestamp.
func (p *Packet) OriginTimestamp() Timestamp {
	return NewTimestamp(p.OrigTimeSec, p.OrigTimeFrac)
}

// ReceiveTimestamp returns the packet's receive timestamp as a Timestamp.
func (p *Packet) ReceiveTimestamp() Timestamp {
	return NewTimestamp(p.RxTimeSec, p.RxTimeFrac)
}

// TransmitTimestamp returns the packet's transmit timestamp as a Timestamp.
func (p *Packet) TransmitTimestamp() Timestamp {
	return NewTimestamp(p.TxTimeSec, p.TxTimeFrac)
}

func putUint32(buf []byte, off int, v uint32) {
	buf[off] = byte(v >> 24)
	buf[off+1] = byte(v >> 16)
	buf[off+2] = byte(v >> 8)
	buf[off+3] = byte(v)
}

func getUint32(buf []byte, off int) uint32 {
	return uint32(buf[off])<<24 | uint32(buf[off+1])<<16 | uint32(buf[off+2])<<8 | uint32(buf[off+3])
}

// Encode writes p into buf using the fixed big-endian layout of RFC 5905
// section 7.3. buf must be at least PacketSizeBytes long; Encode never
// allocates.
func Encode(p *Packet, buf []byte) {
	_ = buf[PacketSizeBytes-1] // bounds check hint, single branch for the whole function
	buf[0] = p.LiVnMode
	buf[1] = p.Stratum
	buf[2] = byte(p.Poll)
	buf[3] = byte(p.Precision)
	putUint32(buf, 4, p.RootDelay)
	putUint32(buf, 8, p.RootDispersion)
	putUint32(buf, 12, p.ReferenceID)
	putUint32(buf, 16, p.RefTimeSec)
	putUint32(buf, 20, p.RefTimeFrac)
	putUint32(buf, 24, p.OrigTimeSec)
	putUint32(buf, 28, p.OrigTimeFrac)
	putUint32(buf, 32, p.RxTimeSec)
	putUint32(buf, 36, p.RxTimeFrac)
	putUint32(buf, 40, p.TxTimeSec)
	putUint32(buf, 44, p.TxTimeFrac)
}

// Bytes encodes p into a freshly allocated 48-byte array. Prefer Encode
// when writing into a caller-owned send buffer on the hot path.
func (p *Packet) Bytes() [PacketSizeBytes]byte {
	var buf [PacketSizeBytes]byte
	Encode(p, buf[:])
	return buf
}

// Decode reads a Packet out of buf, which must be at least PacketSizeBytes
// long. All multi-byte integer fields are converted from network
// (big-endian) to host byte order; Poll and Precision are reinterpreted
// from their unsigned wire representation as signed log2-seconds values.
// Decode never allocates and never fails: any 48 bytes decode to some
// Packet value, valid or not, and validity is the Protocol Engine's job.
func Decode(buf []byte) Packet {
	_ = buf[PacketSizeBytes-1]
	return Packet{
		LiVnMode:       buf[0],
		Stratum:        buf[1],
		Poll:           int8(buf[2]),
		Precision:      int8(buf[3]),
		RootDelay:      getUint32(buf, 4),
		RootDispersion: getUint32(buf, 8),
		ReferenceID:    getUint32(buf, 12),
		RefTimeSec:     getUint32(buf, 16),
		RefTimeFrac:    getUint32(buf, 20),
		OrigTimeSec:    getUint32(buf, 24),
		OrigTimeFrac:   getUint32(buf, 28),
		RxTimeSec:      getUint32(buf, 32),
		RxTimeFrac:     getUint32(buf, 36),
		TxTimeSec:      getUint32(buf, 40),
		TxTimeFrac:     getUint32(buf, 44),
	}
}
