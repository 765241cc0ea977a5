// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deployconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Paths(t *testing.T) {
	l := NewLoader("/work/deploy-config", nil)

	assert.Equal(t, filepath.Join("/work/deploy-config", "mainnet.json"), l.NetworkPath("mainnet"))
	assert.Equal(t, filepath.Join("/work/deploy-config", "vault", "mainnet.USDC.json"), l.VaultPath("mainnet", "USDC"))
}

func TestLoader_LoadNetwork(t *testing.T) {
	t.Run("numeric chain id", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "sepolia.json"), `{
			"chainId": 11155111,
			"rpcUrl": "https://rpc.sepolia.example",
			"verifierUrl": "https://api-sepolia.etherscan.io/api",
			"etherscanApiKey": "ABC123",
			"unrelated": true
		}`)

		cfg, err := NewLoader(dir, nil).LoadNetwork("sepolia", true)
		require.NoError(t, err)
		assert.Equal(t, "11155111", cfg.ChainID.String())
		assert.Equal(t, "https://rpc.sepolia.example", cfg.RPCURL)
		assert.Equal(t, "https://api-sepolia.etherscan.io/api", cfg.VerifierURL)
		assert.Equal(t, "ABC123", cfg.EtherscanAPIKey)
	})

	t.Run("string chain id", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "local.json"), `{"chainId": "31337", "rpcUrl": "http://127.0.0.1:8545"}`)

		cfg, err := NewLoader(dir, nil).LoadNetwork("local", false)
		require.NoError(t, err)
		assert.Equal(t, "31337", cfg.ChainID.String())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader(t.TempDir(), nil).LoadNetwork("mainnet", true)
		require.ErrorIs(t, err, constants.ErrConfigNotFound)
		assert.Contains(t, err.Error(), "mainnet.json")
	})

	t.Run("malformed json", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "mainnet.json"), `{"chainId": 1, "rpcUrl": `)

		_, err := NewLoader(dir, nil).LoadNetwork("mainnet", true)
		require.ErrorIs(t, err, constants.ErrConfigParse)
		assert.NotErrorIs(t, err, constants.ErrConfigNotFound)
	})

	t.Run("chain id of the wrong type", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "mainnet.json"), `{"chainId": [1], "rpcUrl": "http://x"}`)

		_, err := NewLoader(dir, nil).LoadNetwork("mainnet", false)
		require.ErrorIs(t, err, constants.ErrConfigParse)
	})

	t.Run("verifier settings required only when verifying", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "mainnet.json"), `{"chainId": 1, "rpcUrl": "http://x"}`)
		l := NewLoader(dir, nil)

		_, err := l.LoadNetwork("mainnet", true)
		require.ErrorIs(t, err, constants.ErrConfigParse)
		assert.Contains(t, err.Error(), "verifierUrl, etherscanApiKey")

		_, err = l.LoadNetwork("mainnet", false)
		require.NoError(t, err)
	})

	t.Run("rpc url required", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "mainnet.json"), `{"chainId": 1}`)

		_, err := NewLoader(dir, nil).LoadNetwork("mainnet", false)
		require.ErrorIs(t, err, constants.ErrConfigParse)
		assert.Contains(t, err.Error(), "rpcUrl")
	})
}

func TestLoader_LoadVault(t *testing.T) {
	t.Run("reads network.symbol.json under vault/", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "vault", "mainnet.USDC.json"),
			`{"underlyingCurrency": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"}`)

		cfg, err := NewLoader(dir, nil).LoadVault("mainnet", "USDC")
		require.NoError(t, err)
		assert.Equal(t, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", cfg.UnderlyingCurrency)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader(t.TempDir(), nil).LoadVault("mainnet", "DAI")
		require.ErrorIs(t, err, constants.ErrConfigNotFound)
		assert.Contains(t, err.Error(), filepath.Join("vault", "mainnet.DAI.json"))
	})

	t.Run("missing underlying currency", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "vault", "mainnet.USDC.json"), `{}`)

		_, err := NewLoader(dir, nil).LoadVault("mainnet", "USDC")
		require.ErrorIs(t, err, constants.ErrConfigParse)
	})
}
