// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deploy turns a deployment request into a forge script run.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/moneyprinter/protocol-deploy/pkg/deployconfig"
	"github.com/moneyprinter/protocol-deploy/pkg/forge"
	"github.com/moneyprinter/protocol-deploy/pkg/models"
	"go.uber.org/zap"
)

// ToolRunner executes a prepared invocation
type ToolRunner interface {
	Run(ctx context.Context, inv *models.Invocation) (*models.InvocationResult, error)
}

type Config struct {
	Loader *deployconfig.Loader
	Runner ToolRunner
	// ForgePath is the resolved forge binary
	ForgePath string
	// WorkDir is where forge runs; usually the project root holding deploy-config/
	WorkDir     string
	JoinTimeout time.Duration
	Log         *zap.Logger
}

type Deployer struct {
	loader      *deployconfig.Loader
	runner      ToolRunner
	forgePath   string
	workDir     string
	joinTimeout time.Duration
	log         *zap.Logger
}

func New(cfg Config) *Deployer {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	forgePath := cfg.ForgePath
	if forgePath == "" {
		forgePath = constants.DefaultForgeName
	}
	runner := cfg.Runner
	if runner == nil {
		runner = forge.NewRunner(log, nil)
	}
	return &Deployer{
		loader:      cfg.Loader,
		runner:      runner,
		forgePath:   forgePath,
		workDir:     cfg.WorkDir,
		joinTimeout: cfg.JoinTimeout,
		log:         log,
	}
}

// Plan is the deployment: the vault config (if any) and network config are
// loaded and the forge invocation is built, but nothing runs.
func (d *Deployer) Plan(req *models.DeployRequest) (*models.Invocation, *models.NetworkConfig, error) {
	var vaultCfg *models.VaultConfig
	if req.IsVaultDeployment() {
		d.log.Info("identified as vault deployment", zap.String("currency", req.CurrencySymbol()))
		var err error
		vaultCfg, err = d.loader.LoadVault(req.Network(), req.CurrencySymbol())
		if err != nil {
			return nil, nil, err
		}
	}
	netCfg, err := d.loader.LoadNetwork(req.Network(), req.Verify())
	if err != nil {
		return nil, nil, err
	}
	inv := &models.Invocation{
		Program: d.forgePath,
		Args:    forge.BuildScriptArgs(req, netCfg),
		Env:     AssembleEnv(req, netCfg, vaultCfg),
		Dir:     d.workDir,
		Secrets: []string{req.PrivateKey(), netCfg.EtherscanAPIKey},
	}
	return inv, netCfg, nil
}

// Deploy plans the deployment and runs forge in a child. It never retries:
// a failed broadcast must be looked at before running again.
func (d *Deployer) Deploy(ctx context.Context, req *models.DeployRequest) (*models.InvocationResult, error) {
	d.log.Info("deploying", zap.Stringer("request", req))
	inv, _, err := d.Plan(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var result *models.InvocationResult
	child := NewChild(func() error {
		var runErr error
		result, runErr = d.runner.Run(ctx, inv)
		return runErr
	})
	child.Start()
	err = child.JoinTimeout(d.joinTimeout)
	if errors.Is(err, constants.ErrJoinTimeout) {
		d.log.Error("deployment timed out, stopping forge", zap.Duration("timeout", d.joinTimeout))
		cancel()
		_ = child.Join()
		return result, err
	}
	if err != nil {
		return result, fmt.Errorf("deploying %s to %s: %w", req.FQN(), req.Network(), err)
	}
	return result, nil
}
