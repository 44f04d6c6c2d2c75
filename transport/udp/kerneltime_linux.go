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

package udp

import (
	"fmt"
	"net"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// TimestampedConn is a Conn that also records the kernel's SO_TIMESTAMPNS
// receive timestamp of each datagram, readable via LastRxTime. The
// Protocol Engine does not read it: T4 is still stamped from the
// Context's ClockSource after RecvFrom returns, and nothing in this
// package feeds LastRxTime into a ClockSource.
type TimestampedConn struct {
	*Conn
	lastRxTime time.Time
}

// NewTimestamped wraps an already-dialed Conn, enabling SO_TIMESTAMPNS on
// its underlying socket.
func NewTimestamped(c *Conn) (*TimestampedConn, error) {
	rc, err := c.uc.SyscallConn()
	if err != nil {
		return nil, err
	}
	var sockErr error
	err = rc.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_TIMESTAMPNS, 1)
	})
	if err != nil {
		return nil, err
	}
	if sockErr != nil {
		return nil, fmt.Errorf("enabling SO_TIMESTAMPNS: %w", sockErr)
	}
	return &TimestampedConn{Conn: c}, nil
}

// RecvFrom implements client.DatagramChannel. The kernel timestamp for
// the datagram just read is available afterwards via LastRxTime; when
// the kernel did not attach one (older kernels, non-UDP sockets), RecvFrom
// falls back silently and LastRxTime returns the zero time.
func (c *TimestampedConn) RecvFrom(buf []byte) (int, net.Addr, error) {
	oob := make([]byte, unix.CmsgSpace(int(unsafe.Sizeof(unix.Timespec{}))))
	n, oobn, _, addr, err := c.uc.ReadMsgUDP(buf, oob)
	if err != nil {
		return 0, nil, err
	}
	c.lastRxTime = parseTimestampNS(oob[:oobn])
	return n, addr, nil
}

// LastRxTime returns the kernel receive timestamp captured by the most
// recent RecvFrom call, or the zero time if none was available.
func (c *TimestampedConn) LastRxTime() time.Time {
	return c.lastRxTime
}

// parseTimestampNS extracts a SO_TIMESTAMPNS control message's
// unix.Timespec without going through the general-purpose
// unix.ParseSocketControlMessage allocation, mirroring the narrow,
// single-purpose cmsg walk this codebase uses elsewhere for timestamps.
func parseTimestampNS(b []byte) time.Time {
	mlen := 0
	for i := 0; i+unix.SizeofCmsghdr <= len(b); i += unix.CmsgSpace(mlen - unix.SizeofCmsghdr) {
		h := (*unix.Cmsghdr)(unsafe.Pointer(&b[i]))
		mlen = int(h.Len)
		if mlen == 0 {
			break
		}
		if h.Level == unix.SOL_SOCKET && h.Type == unix.SO_TIMESTAMPNS {
			data := b[i+unix.CmsgLen(0) : i+mlen]
			ts := (*unix.Timespec)(unsafe.Pointer(&data[0]))
			return time.Unix(ts.Sec, ts.Nsec)
		}
	}
	return time.Time{}
}
