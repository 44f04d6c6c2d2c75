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

import "time"

// EpochDelta is the difference, in seconds, between the NTP epoch
// (1900-01-01 UTC) and the Unix epoch (1970-01-01 UTC).
const EpochDelta = int64(2208988800)

// fractionUnit is how many ticks of an NTP fraction field make up one
// second: 2^32.
const fractionUnit = int64(1) << 32

// Timestamp is a 64-bit NTP fixed-point timestamp: the upper 32 bits are
// seconds since the NTP epoch, the lower 32 bits are a fraction of a
// second in units of 2^-32s.
type Timestamp uint64

// NewTimestamp composes a Timestamp from its wire seconds/fraction halves.
func NewTimestamp(seconds, fraction uint32) Timestamp {
	return Timestamp(uint64(seconds)<<32 | uint64(fraction))
}

// Split decomposes t into its wire seconds/fraction halves.
func (t Timestamp) Split() (seconds, fraction uint32) {
	return uint32(t >> 32), uint32(t)
}

// Seconds returns the NTP-epoch seconds half of t.
func (t Timestamp) Seconds() uint32 {
	return uint32(t >> 32)
}

// Fraction returns the sub-second fraction half of t.
func (t Timestamp) Fraction() uint32 {
	return uint32(t)
}

// UnixSeconds returns t's seconds field converted to the Unix epoch. The
// conversion is a plain subtraction; this client does not attempt NTP
// era-rollover detection.
func (t Timestamp) UnixSeconds() int64 {
	return int64(t.Seconds()) - EpochDelta
}

// ToNTP builds a Timestamp from a Unix-epoch seconds value and a
// sub-second fraction expressed in microseconds (0..999999). This is the
// construction a local ClockSource adapter performs to stamp T1/T4:
// to_ntp(sec_unix, subsec_us) = ((sec_unix + EpochDelta) << 32) + subsec_us * 2^32 / 1e6.
func ToNTP(unixSeconds int64, subsecMicros uint32) Timestamp {
	sec := uint64(unixSeconds + EpochDelta)
	frac := uint64(subsecMicros) << 32 / 1_000_000
	return Timestamp(sec<<32 | frac)
}

// FromTime builds a Timestamp from a time.Time value.
func FromTime(t time.Time) Timestamp {
	return ToNTP(t.Unix(), uint32(t.Nanosecond()/1000))
}

// wrappingSub computes a-b with 64-bit wraparound, tolerating rollover
// across the ~136-year NTP era boundary.
func wrappingSub(a, b Timestamp) uint64 {
	return uint64(a) - uint64(b)
}

// RoundTripMicros computes the round-trip delay delta, in microseconds,
// from the four protocol timestamps:
//
//	delta_raw = wrapping_sub(T4, T1) - wrapping_sub(T3, T2)
//
// saturating at zero if the result would be negative. The inner
// subtractions wrap at 2^64 so a timestamp pair spanning an era boundary
// still produces a finite, correct delta.
func RoundTripMicros(t1, t2, t3, t4 Timestamp) uint64 {
	outer := wrappingSub(t4, t1)
	inner := wrappingSub(t3, t2)
	if outer < inner {
		return 0
	}
	deltaRaw := outer - inner
	deltaSec := deltaRaw >> 32
	deltaFrac := deltaRaw & 0xFFFF_FFFF
	return deltaSec*1_000_000 + deltaFrac*1_000_000/uint64(fractionUnit)
}

// OffsetMicros computes the signed clock offset theta, in microseconds,
// from the four protocol timestamps:
//
//	d1 = wrapping_sub(T2, T1) / 2
//	d2 = wrapping_sub(T3, T4) / 2
//	theta_raw = d1 + d2  (saturating i64 add)
//
// The halving happens before the addition to avoid overflowing the
// intermediate sum; the sign of theta_raw is reapplied to the magnitude
// computed from its absolute value.
func OffsetMicros(t1, t2, t3, t4 Timestamp) int64 {
	d1 := int64(wrappingSub(t2, t1)) / 2
	d2 := int64(wrappingSub(t3, t4)) / 2
	thetaRaw := saturatingAddI64(d1, d2)

	sign := int64(1)
	abs := uint64(thetaRaw)
	if thetaRaw < 0 {
		sign = -1
		abs = uint64(-thetaRaw)
	}
	sec := abs >> 32
	frac := abs & 0xFFFF_FFFF
	return sign * int64(sec*1_000_000+frac*1_000_000/uint64(fractionUnit))
}

// saturatingAddI64 adds a and b, clamping to the int64 range on overflow
// instead of wrapping.
func saturatingAddI64(a, b int64) int64 {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) {
		return 1<<63 - 1
	}
	if (a < 0 && b < 0 && sum > 0) {
		return -1 << 63
	}
	return sum
}

// FractionToMicroseconds converts a 32-bit NTP fraction into whole
// microseconds: frac * 1e6 / 2^32.
func FractionToMicroseconds(frac uint32) uint32 {
	return uint32(uint64(frac) * 1_000_000 / uint64(fractionUnit))
}

// FractionToMilliseconds converts a 32-bit NTP fraction into whole
// milliseconds: frac * 1e3 / 2^32.
func FractionToMilliseconds(frac uint32) uint32 {
	return uint32(uint64(frac) * 1_000 / uint64(fractionUnit))
}

// FractionToNanoseconds converts a 32-bit NTP fraction into whole
// nanoseconds: frac * 1e9 / 2^32.
func FractionToNanoseconds(frac uint32) uint64 {
	return uint64(frac) * 1_000_000_000 / uint64(fractionUnit)
}

// FractionToPicoseconds converts a 32-bit NTP fraction into whole
// picoseconds: frac * 1e12 / 2^32. A 128-bit-wide intermediate (emulated
// via bits.Mul64/Div64) is required here because frac * 1e12 can exceed
// the 64-bit range.
func FractionToPicoseconds(frac uint32) uint64 {
	return mulDiv64(uint64(frac), 1_000_000_000_000, uint64(fractionUnit))
}
