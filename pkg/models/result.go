// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package models contains data structures and types used throughout the CLI.
package models

import (
	"sort"
	"time"
)

// Invocation is everything needed to spawn the deployment tool once.
type Invocation struct {
	Program string
	Args    []string
	// Env holds only the variables assembled for the deployment.
	// The runner overlays them on the parent environment.
	Env map[string]string
	Dir string
	// Secrets are masked whenever Args are shown to the user or logged.
	Secrets []string
}

// EnvKeys returns the assembled variable names in a stable order.
func (inv *Invocation) EnvKeys() []string {
	keys := make([]string, 0, len(inv.Env))
	for k := range inv.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// InvocationResult contains the outcome of one tool run.
type InvocationResult struct {
	ExitCode int
	Output   string
	Elapsed  time.Duration
}
