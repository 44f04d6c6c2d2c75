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
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnRoundTrip(t *testing.T) {
	server, err := Dial(&net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: 0})
	require.NoError(t, err)
	defer server.Close()

	client, err := Dial(&net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: 0})
	require.NoError(t, err)
	defer client.Close()

	msg := []byte("hello sntp")
	n, err := client.SendTo(msg, server.LocalAddr())
	require.NoError(t, err)
	require.Equal(t, len(msg), n)

	buf := make([]byte, 64)
	require.NoError(t, server.SetDeadline(time.Now().Add(time.Second)))
	n, from, err := server.RecvFrom(buf)
	require.NoError(t, err)
	require.Equal(t, msg, buf[:n])
	require.Equal(t, client.LocalAddr().String(), from.String())
}

func TestConnSetTTL(t *testing.T) {
	c, err := Dial(&net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: 0})
	require.NoError(t, err)
	defer c.Close()
	require.NoError(t, c.SetTTL(16))
}
