//go:build windows

// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package forge

import "os/exec"

// setProcessGroup is a no-op on Windows; exec's default Cancel kills the tool
// and WaitDelay bounds the wait on anything it spawned.
func setProcessGroup(*exec.Cmd) {}
