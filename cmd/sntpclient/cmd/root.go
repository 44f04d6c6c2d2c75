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

// Package cmd implements sntpclient, a one-shot SNTPv4 query tool.
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd is the entry point for sntpclient.
var RootCmd = &cobra.Command{
	Use:   "sntpclient SERVER",
	Short: "Query one SNTPv4 server and print the offset and round-trip delay",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

var (
	verbose bool
	timeout string
	ttl     int
	jsonOut bool
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	RootCmd.Flags().StringVarP(&timeout, "timeout", "t", "2s", "how long to wait for a response")
	RootCmd.Flags().IntVar(&ttl, "ttl", 0, "outgoing IPv4 TTL; 0 leaves the system default")
	RootCmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON instead of a table")
}

func configureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute is the main entry point for the CLI interface.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
