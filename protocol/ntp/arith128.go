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

import "math/bits"

// mulDiv64 computes (a*b)/d without overflowing when a*b exceeds 64 bits,
// using a 128-bit intermediate product. d must be a power of two not
// greater than 2^32, which is always true for the fractionUnit divisor
// used by the picosecond conversion, so the division never overflows the
// low half of the quotient.
func mulDiv64(a, b, d uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, _ := bits.Div64(hi, lo, d)
	return q
}
