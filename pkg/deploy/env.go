// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/moneyprinter/protocol-deploy/pkg/models"
)

// AssembleEnv returns the variables the deployment script reads.
// vaultCfg is only consulted for vault deployments and may be nil otherwise.
func AssembleEnv(req *models.DeployRequest, netCfg *models.NetworkConfig, vaultCfg *models.VaultConfig) map[string]string {
	env := map[string]string{
		constants.EnvDeploymentContext: req.Network(),
		constants.EnvVaultAddress:      req.VaultAddress(),
		constants.EnvChainID:           netCfg.ChainID.String(),
		constants.EnvPrivateKey:        req.PrivateKey(),
	}
	if req.IsVaultDeployment() && vaultCfg != nil {
		env[constants.EnvCurrency] = vaultCfg.UnderlyingCurrency
	}
	return env
}
