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

// Package udp adapts *net.UDPConn to client.DatagramChannel, the only
// transport the SNTP engine understands.
package udp

import (
	"net"
	"time"

	"golang.org/x/net/ipv4"
)

// Conn wraps a *net.UDPConn as a client.DatagramChannel. It is a thin
// pass-through: one SendTo is one WriteTo, one RecvFrom is one
// ReadFromUDP, so callers keep full control over read deadlines and
// retry policy.
type Conn struct {
	uc *net.UDPConn
}

// Dial opens a UDP socket for talking to a single server address. The
// connection is not "connected" in the net.Dial sense — it stays
// unconnected so the Protocol Engine's source-address check in
// ProcessResponse has something to validate.
func Dial(laddr *net.UDPAddr) (*Conn, error) {
	uc, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nil, err
	}
	return &Conn{uc: uc}, nil
}

// SetTTL sets the outgoing IPv4 TTL on the socket, per RFC 4330's
// recommendation that clients not rely on a specific TTL but may want to
// bound one for diagnostic (traceroute-like) use.
func (c *Conn) SetTTL(ttl int) error {
	return ipv4.NewConn(c.uc).SetTTL(ttl)
}

// SetDeadline bounds how long the next SendTo/RecvFrom pair may block,
// giving the caller the timeout policy the engine itself deliberately
// does not impose.
func (c *Conn) SetDeadline(t time.Time) error {
	return c.uc.SetDeadline(t)
}

// SendTo implements client.DatagramChannel.
func (c *Conn) SendTo(buf []byte, addr net.Addr) (int, error) {
	return c.uc.WriteTo(buf, addr)
}

// RecvFrom implements client.DatagramChannel.
func (c *Conn) RecvFrom(buf []byte) (int, net.Addr, error) {
	n, addr, err := c.uc.ReadFromUDP(buf)
	return n, addr, err
}

// Close releases the underlying socket.
func (c *Conn) Close() error {
	return c.uc.Close()
}

// LocalAddr returns the address the socket is bound to.
func (c *Conn) LocalAddr() net.Addr {
	return c.uc.LocalAddr()
}
