// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"bytes"
	"testing"

	"github.com/moneyprinter/protocol-deploy/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPrintNetworkConfig_MasksAPIKey(t *testing.T) {
	var buf bytes.Buffer
	err := PrintNetworkConfig(&buf, "mainnet", &models.NetworkConfig{
		ChainID:         "1",
		RPCURL:          "https://eth.example",
		VerifierURL:     "https://api.etherscan.io/api",
		EtherscanAPIKey: "SUPERSECRETAPIKEY1234",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "https://eth.example")
	assert.Contains(t, out, "****1234")
	assert.NotContains(t, out, "SUPERSECRETAPIKEY1234")
}

func TestPrintInvocation_MasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	err := PrintInvocation(&buf, &models.Invocation{
		Program: "forge",
		Args:    []string{"script", "Deploy", "--private-key", "0xaaaabbbbccccdddd"},
		Env:     map[string]string{"PRIVATE_KEY": "0xaaaabbbbccccdddd", "CHAIN_ID": "1"},
		Secrets: []string{"0xaaaabbbbccccdddd"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "--private-key")
	assert.Contains(t, out, "PRIVATE_KEY")
	assert.NotContains(t, out, "0xaaaabbbbccccdddd")
}

func TestUserLog_PrintToUser(t *testing.T) {
	var buf bytes.Buffer
	ul := New(nil, &buf)

	ul.PrintToUser("deploying %s", "mainnet")
	ul.GreenCheckmarkToUser("done")

	assert.Equal(t, "deploying mainnet\n✓ done\n", buf.String())
}

func TestUserLog_InfoAndErrorOnlyLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var buf bytes.Buffer
	ul := New(zap.New(core), &buf)

	ul.Info("deploy request: %s", "network=mainnet")
	ul.Error("deployment of %s failed", "Deploy")

	assert.Empty(t, buf.String())
	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "deploy request: network=mainnet", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
