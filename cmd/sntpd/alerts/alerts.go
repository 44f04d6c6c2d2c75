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

// Package alerts evaluates user-supplied govaluate expressions against a
// server's running offset/round-trip history, so operators can define
// "offset drifted too far" thresholds without a code change.
package alerts

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"

	"github.com/netclocks/sntp/cmd/sntpd/stats"
)

// Help documents the expression language available to alert definitions.
const Help = `supported variables:
  offset (list of recent offsets from the server, microseconds, most recent first)
  delay (list of recent round-trip delays, microseconds, most recent first)
  mean_offset, stddev_offset, mean_delay (running aggregates over the full history)
supported functions:
  abs(value)
  mean(values, number) - mean of the first 'number' entries of a list
  stddev(values, number) - standard deviation of the first 'number' entries of a list`

var functions = map[string]govaluate.ExpressionFunction{
	"abs": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("abs: want 1 argument, got %d", len(args))
		}
		return math.Abs(args[0].(float64)), nil
	},
	"mean": func(args ...interface{}) (interface{}, error) {
		vals, n, err := listAndCount(args)
		if err != nil {
			return nil, fmt.Errorf("mean: %w", err)
		}
		return welfordMean(vals[:n]), nil
	},
	"stddev": func(args ...interface{}) (interface{}, error) {
		vals, n, err := listAndCount(args)
		if err != nil {
			return nil, fmt.Errorf("stddev: %w", err)
		}
		return welfordStddev(vals[:n]), nil
	},
}

func listAndCount(args []interface{}) ([]float64, int, error) {
	if len(args) != 2 {
		return nil, 0, fmt.Errorf("want 2 arguments, got %d", len(args))
	}
	vals, ok := args[0].([]float64)
	if !ok {
		return nil, 0, fmt.Errorf("first argument must be a list")
	}
	n := int(args[1].(float64))
	if n > len(vals) {
		n = len(vals)
	}
	return vals, n, nil
}

// Alert is a compiled expression ready to be evaluated repeatedly.
type Alert struct {
	Name string
	expr *govaluate.EvaluableExpression
}

// Compile parses expression into a reusable Alert.
func Compile(name, expression string) (*Alert, error) {
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(expression, functions)
	if err != nil {
		return nil, fmt.Errorf("compiling alert %q: %w", name, err)
	}
	return &Alert{Name: name, expr: expr}, nil
}

// Evaluate runs the alert against snap, returning true if it fired. The
// expression must evaluate to a bool; any other result type is an error.
func (a *Alert) Evaluate(snap stats.Snapshot) (bool, error) {
	params := map[string]interface{}{
		"offset":        snap.OffsetUs,
		"delay":         snap.RoundTripUs,
		"mean_offset":   snap.MeanOffsetUs,
		"stddev_offset": snap.StddevOffsetUs,
		"mean_delay":    snap.MeanRoundTripUs,
	}
	result, err := a.expr.Evaluate(params)
	if err != nil {
		return false, fmt.Errorf("evaluating alert %q: %w", a.Name, err)
	}
	fired, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("alert %q did not evaluate to a bool", a.Name)
	}
	return fired, nil
}
