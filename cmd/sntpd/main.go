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

// sntpd is a polling SNTP monitoring daemon: it queries a fixed set of
// servers on an interval, keeps running offset/round-trip statistics per
// server, evaluates operator-defined alert expressions against them, and
// exports the latest offset, round-trip delay and stratum plus a
// poll-failure counter over Prometheus.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netclocks/sntp/cmd/sntpd/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sntpd",
	Short: "Poll a set of SNTP servers and export their offset/delay as metrics",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "/etc/sntpd.yaml", "path to the YAML configuration file")
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Read(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	d, err := New(cfg)
	if err != nil {
		return fmt.Errorf("starting daemon: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Infof("polling %d server(s) every %s", len(cfg.Servers), cfg.PollInterval)
	return d.Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
