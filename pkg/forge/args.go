// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package forge builds and runs `forge script` invocations.
package forge

import (
	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/moneyprinter/protocol-deploy/pkg/models"
)

// BuildScriptArgs returns the argument vector for `forge script`, without the program name.
// Verification flags are left out entirely when the request skips verification.
func BuildScriptArgs(req *models.DeployRequest, cfg *models.NetworkConfig) []string {
	args := []string{
		constants.ForgeScriptCmd,
		req.FQN(),
		constants.ForgeRPCURLFlag, cfg.RPCURL,
		constants.ForgePrivateKeyFlag, req.PrivateKey(),
		constants.ForgeBroadcastFlag,
	}
	if req.Verify() {
		args = append(args,
			constants.ForgeVerifyFlag,
			constants.ForgeVerifierURLFlag, cfg.VerifierURL,
			constants.ForgeAPIKeyFlag, cfg.EtherscanAPIKey,
		)
	}
	return append(args,
		constants.ForgeViaIRFlag,
		constants.ForgeVerbosityFlag,
		constants.ForgeSkipSimFlag,
	)
}
