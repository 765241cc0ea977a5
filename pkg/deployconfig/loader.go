// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deployconfig reads the per-network JSON files under deploy-config/.
package deployconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/moneyprinter/protocol-deploy/pkg/models"
	"github.com/moneyprinter/protocol-deploy/pkg/utils"
	"go.uber.org/zap"
)

// Loader resolves config files relative to a fixed directory. It keeps no state
// between calls.
type Loader struct {
	dir string
	log *zap.Logger
}

func NewLoader(dir string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{dir: dir, log: log}
}

func (l *Loader) Dir() string {
	return l.dir
}

// NetworkPath returns <dir>/<network>.json
func (l *Loader) NetworkPath(network string) string {
	return filepath.Join(l.dir, network+constants.JSONExtension)
}

// VaultPath returns <dir>/vault/<network>.<currencySymbol>.json
func (l *Loader) VaultPath(network, currencySymbol string) string {
	return filepath.Join(l.dir, constants.VaultConfigDirName, network+"."+currencySymbol+constants.JSONExtension)
}

// LoadNetwork reads the network config. verify controls whether the verifier
// settings must be present.
func (l *Loader) LoadNetwork(network string, verify bool) (*models.NetworkConfig, error) {
	path := l.NetworkPath(network)
	cfg := &models.NetworkConfig{}
	if err := l.read(path, cfg); err != nil {
		return nil, err
	}
	if missing := cfg.MissingFields(verify); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s is missing %s", constants.ErrConfigParse, path, strings.Join(missing, ", "))
	}
	l.log.Debug("loaded network config",
		zap.String("path", path),
		zap.String("chainId", cfg.ChainID.String()),
		zap.String("rpcUrl", cfg.RPCURL),
	)
	return cfg, nil
}

// LoadVault reads the vault config for a network and currency symbol
func (l *Loader) LoadVault(network, currencySymbol string) (*models.VaultConfig, error) {
	path := l.VaultPath(network, currencySymbol)
	cfg := &models.VaultConfig{}
	if err := l.read(path, cfg); err != nil {
		return nil, err
	}
	if missing := cfg.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s is missing %s", constants.ErrConfigParse, path, strings.Join(missing, ", "))
	}
	l.log.Debug("loaded vault config",
		zap.String("path", path),
		zap.String("underlyingCurrency", cfg.UnderlyingCurrency),
	)
	return cfg, nil
}

func (l *Loader) read(path string, v interface{}) error {
	err := utils.ReadJSON(path, v)
	if err == nil {
		return nil
	}
	var jsonErr *utils.JSONError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", constants.ErrConfigNotFound, path)
	case errors.As(err, &jsonErr):
		return fmt.Errorf("%w: %s: %s", constants.ErrConfigParse, path, jsonErr.Err)
	default:
		return fmt.Errorf("could not read %s: %w", path, err)
	}
}
