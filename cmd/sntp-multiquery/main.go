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

// sntp-multiquery demonstrates the "multi-task preemptive" deployment
// model: it fans a query out to every server given on the command line
// concurrently, using one goroutine and one independent client.Context
// per server, and prints whichever results come back. It performs no
// retries and applies no selection algorithm across the results — that
// policy belongs to a caller, not to this demo.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/netclocks/sntp/client"
	"github.com/netclocks/sntp/clocksource"
	"github.com/netclocks/sntp/protocol/ntp"
	"github.com/netclocks/sntp/transport/udp"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Second, "per-server query timeout")
	flag.Parse()
	servers := flag.Args()
	if len(servers) == 0 {
		fmt.Fprintln(os.Stderr, "usage: sntp-multiquery [-timeout=2s] server [server...]")
		os.Exit(2)
	}

	results := make([]*ntp.Result, len(servers))
	errs := make([]error, len(servers))

	eg, _ := errgroup.WithContext(context.Background())
	for i, server := range servers {
		i, server := i, server
		eg.Go(func() error {
			r, err := queryOne(server, *timeout)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = &r
			return nil
		})
	}
	// errgroup's error is ignored deliberately: per-server failures are
	// reported individually below, not treated as a fatal group error.
	_ = eg.Wait()

	for i, server := range servers {
		if errs[i] != nil {
			log.Errorf("%s: %v", server, errs[i])
			continue
		}
		fmt.Printf("%s: %s\n", server, results[i])
	}
}

func queryOne(server string, timeout time.Duration) (ntp.Result, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(server, "123"))
	if err != nil {
		return ntp.Result{}, client.NewError(client.AddressResolve, err)
	}

	conn, err := udp.Dial(&net.UDPAddr{})
	if err != nil {
		return ntp.Result{}, err
	}
	defer conn.Close()
	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return ntp.Result{}, err
	}

	ctx := client.Context{Clock: clocksource.New()}
	return client.GetTime(addr, conn, ctx)
}
