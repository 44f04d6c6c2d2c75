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

import "fmt"

// Result is the public outcome of one successful SNTP round: the
// server's reported time plus the locally computed clock offset and
// round-trip delay. It owns no external resources and can be freely
// copied.
type Result struct {
	Seconds         uint32 // server TxTimestamp seconds, Unix epoch
	SecondsFraction uint32 // server TxTimestamp fraction, 0..MaxUint32 ~= 1s
	RoundTrip       uint64 // delta, microseconds, non-negative
	Offset          int64  // theta, microseconds, signed
	Stratum         uint8
	Precision       int8
}

// NewResult builds a Result, normalizing the seconds/fraction pair: if
// fraction overflowed to MaxUint32 during unit conversion, the extra
// second is carried into Seconds and the fraction wraps to zero.
func NewResult(seconds, fraction uint32, roundTrip uint64, offset int64, stratum uint8, precision int8) Result {
	if fraction == ^uint32(0) {
		seconds++
		fraction = 0
	}
	return Result{
		Seconds:         seconds,
		SecondsFraction: fraction,
		RoundTrip:       roundTrip,
		Offset:          offset,
		Stratum:         stratum,
		Precision:       precision,
	}
}

// String renders a Result for human-readable diagnostic output.
func (r Result) String() string {
	return fmt.Sprintf("offset=%dus round-trip=%dus stratum=%d precision=2^%d",
		r.Offset, r.RoundTrip, r.Stratum, r.Precision)
}
