// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package forge

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/moneyprinter/protocol-deploy/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool writes an executable shell script standing in for forge
func fakeTool(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "forge")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestRunner_Success(t *testing.T) {
	tool := fakeTool(t, `echo "chain=$CHAIN_ID args=$*"`)
	var out bytes.Buffer
	r := NewRunner(nil, &out)

	res, err := r.Run(context.Background(), &models.Invocation{
		Program: tool,
		Args:    []string{"script", "Deploy"},
		Env:     map[string]string{"CHAIN_ID": "10"},
		Dir:     t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "chain=10 args=script Deploy\n", res.Output)
	assert.Equal(t, res.Output, out.String(), "output is streamed while captured")
}

func TestRunner_EnvOverridesParent(t *testing.T) {
	t.Setenv("CHAIN_ID", "from-parent")
	t.Setenv("DEPLOY_TEST_PARENT_ONLY", "kept")
	tool := fakeTool(t, `echo "$CHAIN_ID $DEPLOY_TEST_PARENT_ONLY"`)

	res, err := NewRunner(nil, nil).Run(context.Background(), &models.Invocation{
		Program: tool,
		Env:     map[string]string{"CHAIN_ID": "5"},
	})
	require.NoError(t, err)
	assert.Equal(t, "5 kept\n", res.Output)
	assert.Equal(t, "from-parent", os.Getenv("CHAIN_ID"), "parent environment must not change")
}

func TestRunner_NonZeroExit(t *testing.T) {
	tool := fakeTool(t, `echo "Error: script failed" >&2; exit 3`)

	res, err := NewRunner(nil, nil).Run(context.Background(), &models.Invocation{
		Program: tool,
		Args:    []string{"--private-key", "0x0123456789abcdef"},
		Secrets: []string{"0x0123456789abcdef"},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, constants.ErrExternalToolFailure)
	assert.Equal(t, 3, res.ExitCode)

	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, 3, toolErr.ExitCode)
	assert.Equal(t, "Error: script failed\n", toolErr.Output)
	assert.Contains(t, err.Error(), "Error: script failed")
	assert.NotContains(t, toolErr.Summary(), "Error: script failed")
	assert.Equal(t, []string{"--private-key", "****cdef"}, toolErr.Args)
}

func TestRunner_MissingBinary(t *testing.T) {
	_, err := NewRunner(nil, nil).Run(context.Background(), &models.Invocation{
		Program: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	require.ErrorIs(t, err, constants.ErrToolNotFound)
}

func TestResolvePath(t *testing.T) {
	tool := fakeTool(t, "exit 0")

	path, err := ResolvePath(tool)
	require.NoError(t, err)
	assert.Equal(t, tool, path)

	_, err = ResolvePath(filepath.Join(t.TempDir(), "missing-forge"))
	require.ErrorIs(t, err, constants.ErrToolNotFound)
}

func TestRunner_CancelStopsSpawnedProcesses(t *testing.T) {
	// the background sleep inherits stdout, so Run only returns once it is gone too
	tool := fakeTool(t, "sleep 5 &\nsleep 5")
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewRunner(nil, nil).Run(ctx, &models.Invocation{Program: tool})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}
