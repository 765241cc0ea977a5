// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dependencies

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/stretchr/testify/require"
)

func TestParseForgeVersion(t *testing.T) {
	tests := []struct {
		name          string
		output        string
		expected      string
		expectedError bool
	}{
		{
			name:     "legacy format",
			output:   "forge 0.2.0 (5be158b 2024-03-01T00:19:50.046126000Z)\n",
			expected: "v0.2.0",
		},
		{
			name:     "stable format",
			output:   "forge Version: 1.0.0-stable\nCommit SHA: 8cabd2bbd1ee0c9ba5d2e5ba53e1dc36bb0f4d0a\nBuild Timestamp: 2025-02-21T12:36:48Z\n",
			expected: "v1.0.0",
		},
		{
			name:          "no version",
			output:        "command not found",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			v, err := ParseForgeVersion(tt.output)
			if tt.expectedError {
				require.Error(err)
				return
			}
			require.NoError(err)
			require.Equal(tt.expected, v)
		})
	}
}

func TestCheckMinDependencyVersion(t *testing.T) {
	tests := []struct {
		name          string
		version       string
		minVersion    string
		expectedError error
	}{
		{name: "equal to minimum", version: "v1.0.0", minVersion: "1.0.0"},
		{name: "higher than minimum", version: "v1.2.0", minVersion: "v1.0.0"},
		{name: "lower than minimum", version: "v0.2.0", minVersion: "v1.0.0", expectedError: constants.ErrToolVersion},
		{name: "invalid minimum", version: "v1.0.0", minVersion: "latest", expectedError: constants.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckVersionIsOverMin("forge", tt.version, tt.minVersion)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCheckForgeVersion(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures are not supported on windows")
	}
	require := require.New(t)
	forgePath := filepath.Join(t.TempDir(), "forge")
	require.NoError(os.WriteFile(forgePath, []byte("#!/bin/sh\necho 'forge Version: 1.1.0-stable'\n"), 0o755))
	ctx := context.Background()

	require.NoError(CheckForgeVersion(ctx, forgePath, ""))
	require.NoError(CheckForgeVersion(ctx, forgePath, "1.0.0"))
	require.ErrorIs(CheckForgeVersion(ctx, forgePath, "1.2.0"), constants.ErrToolVersion)
}
