// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"github.com/moneyprinter/protocol-deploy/pkg/config"
	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/moneyprinter/protocol-deploy/pkg/models"
	"github.com/spf13/cobra"
)

// DeployFlags holds the raw deployment flags
type DeployFlags struct {
	Network         string
	FQN             string
	PrivateKey      string
	NoVerify        bool
	VaultDeployment bool
	CurrencySymbol  string
	VaultAddress    string
}

func AddDeployFlagsToCmd(cmd *cobra.Command, f *DeployFlags) {
	cmd.Flags().StringVar(&f.Network, models.NetworkFlag, "", "network to deploy to (required)")
	cmd.Flags().StringVar(&f.FQN, models.FQNFlag, "", "deploy path and script name, e.g. script/Deploy.s.sol:Deploy (required)")
	cmd.Flags().StringVar(&f.PrivateKey, models.PrivateKeyFlag, "", "private key to deploy with (required, or set DEPLOY_PRIVATE_KEY)")
	cmd.Flags().BoolVar(&f.NoVerify, models.NoVerifyFlag, false, "skip contract verification")
	cmd.Flags().BoolVar(&f.VaultDeployment, models.VaultDeploymentFlag, false, "this is a new vault deployment")
	cmd.Flags().StringVar(&f.CurrencySymbol, models.CurrencySymbolFlag, "", "symbol of the vault currency (required with --vaultDeployment)")
	cmd.Flags().StringVar(&f.VaultAddress, models.VaultAddressFlag, "", "vault address for protections")
}

// BindDeployFlags lets DEPLOY_PRIVATE_KEY stand in for --private-key.
// It must be called after AddDeployFlagsToCmd.
func BindDeployFlags(cmd *cobra.Command, conf *config.Config) error {
	return conf.BindFlag(constants.ConfigPrivateKey, cmd.Flags().Lookup(models.PrivateKeyFlag))
}

// Request validates the flags and builds the deployment request. It does no file I/O.
func (f *DeployFlags) Request(conf *config.Config) (*models.DeployRequest, error) {
	privateKey := f.PrivateKey
	if privateKey == "" && conf != nil {
		privateKey = conf.GetConfigStringValue(constants.ConfigPrivateKey)
	}
	return models.NewDeployRequest(models.DeployRequestParams{
		Network:         f.Network,
		FQN:             f.FQN,
		PrivateKey:      privateKey,
		NoVerify:        f.NoVerify,
		VaultDeployment: f.VaultDeployment,
		CurrencySymbol:  f.CurrencySymbol,
		VaultAddress:    f.VaultAddress,
	})
}
