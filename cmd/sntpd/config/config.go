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

// Package config reads the YAML configuration for sntpd, the polling
// SNTP monitoring daemon.
package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// AlertConfig describes one govaluate expression evaluated against the
// running offset/round-trip statistics after every successful poll.
type AlertConfig struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
}

// Config specifies sntpd run options.
type Config struct {
	Servers       []string      `yaml:"servers"`
	PollInterval  time.Duration `yaml:"poll_interval"`
	QueryTimeout  time.Duration `yaml:"query_timeout"`
	HistoryLength int           `yaml:"history_length"`
	MetricsPort   int           `yaml:"metrics_port"`
	Alerts        []AlertConfig `yaml:"alerts"`
	NotifySystemd bool          `yaml:"notify_systemd"`
}

// Default returns a Config with the values sntpd falls back to when the
// YAML file omits them.
func Default() Config {
	return Config{
		PollInterval:  64 * time.Second,
		QueryTimeout:  2 * time.Second,
		HistoryLength: 100,
		MetricsPort:   9927,
		NotifySystemd: true,
	}
}

// Read loads a Config from path, starting from Default and overlaying
// whatever the YAML file sets.
func Read(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(c.Servers) == 0 {
		return Config{}, fmt.Errorf("%s: at least one server is required", path)
	}
	return c, nil
}
