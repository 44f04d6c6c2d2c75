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

import "fmt"

// Kind is the closed set of ways an SNTP round can fail. It is never
// extended by a caller: new failure modes belong in a new Kind value
// here, not in a parallel error type.
type Kind int

// Error kinds, ordered by validation step.
const (
	// Network means the underlying transport reported failure, or a
	// short (partial) send.
	Network Kind = iota
	// AddressResolve is reserved for adapters performing name
	// resolution; the core never raises it itself.
	AddressResolve
	// ResponseAddressMismatch means the response's source address did
	// not match the request's destination.
	ResponseAddressMismatch
	// IncorrectPayload means the received byte count was not 48.
	IncorrectPayload
	// IncorrectOriginTimestamp means the response's origin timestamp
	// did not echo our T1.
	IncorrectOriginTimestamp
	// IncorrectMode means the response's mode was neither server (4)
	// nor broadcast (5).
	IncorrectMode
	// IncorrectLeapIndicator means the leap indicator exceeded 3; this
	// is structurally impossible on valid wire data and exists as a
	// defensive check.
	IncorrectLeapIndicator
	// IncorrectResponseVersion means the response's version did not
	// match the version we sent.
	IncorrectResponseVersion
	// IncorrectStratumHeaders means the response's stratum was 0
	// (Kiss-of-Death or unsynchronized).
	IncorrectStratumHeaders
)

var kindToString = map[Kind]string{
	Network:                  "network",
	AddressResolve:           "address resolve",
	ResponseAddressMismatch:  "response address mismatch",
	IncorrectPayload:         "incorrect payload",
	IncorrectOriginTimestamp: "incorrect origin timestamp",
	IncorrectMode:            "incorrect mode",
	IncorrectLeapIndicator:   "incorrect leap indicator",
	IncorrectResponseVersion: "incorrect response version",
	IncorrectStratumHeaders:  "incorrect stratum headers",
}

// String renders the Kind as a short, lowercase description.
func (k Kind) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return "unknown"
}

// Error is the error type every operation in this package returns on
// failure. It carries a Kind so callers can switch on failure category
// without string matching, plus an optional wrapped cause.
type Error struct {
	Kind  Kind
	cause error
}

// NewError builds an Error of the given kind, optionally wrapping cause.
func NewError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("sntp: %s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("sntp: %s", e.Kind)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}
