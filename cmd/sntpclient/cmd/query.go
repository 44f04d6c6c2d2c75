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

package cmd

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netclocks/sntp/client"
	"github.com/netclocks/sntp/clocksource"
	"github.com/netclocks/sntp/protocol/ntp"
	"github.com/netclocks/sntp/transport/udp"
)

func runQuery(_ *cobra.Command, args []string) error {
	configureVerbosity()

	dur, err := time.ParseDuration(timeout)
	if err != nil {
		return fmt.Errorf("parsing timeout: %w", err)
	}

	serverAddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(args[0], "123"))
	if err != nil {
		return client.NewError(client.AddressResolve, err)
	}

	conn, err := udp.Dial(&net.UDPAddr{})
	if err != nil {
		return fmt.Errorf("opening socket: %w", err)
	}
	defer conn.Close()

	if ttl > 0 {
		if err := conn.SetTTL(ttl); err != nil {
			return fmt.Errorf("setting TTL: %w", err)
		}
	}
	if err := conn.SetDeadline(time.Now().Add(dur)); err != nil {
		return fmt.Errorf("setting deadline: %w", err)
	}

	log.Debugf("querying %s", serverAddr)
	ctx := client.Context{Clock: clocksource.New()}
	result, err := client.GetTime(serverAddr, conn, ctx)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(result)
	}
	printTable(serverAddr.String(), result)
	return nil
}

func printJSON(result any) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func printTable(server string, result ntp.Result) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetColWidth(24)
	table.SetHeader([]string{"server", "reading"})
	table.Append([]string{server, color.GreenString(result.String())})
	table.Render()
}
