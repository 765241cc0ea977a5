// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"strings"

	"github.com/moneyprinter/protocol-deploy/pkg/constants"
)

// Flag names as they appear on the command line
const (
	NetworkFlag         = "network"
	FQNFlag             = "fqn"
	PrivateKeyFlag      = "private-key"
	NoVerifyFlag        = "no-verify"
	VaultDeploymentFlag = "vaultDeployment"
	CurrencySymbolFlag  = "currencySymbol"
	VaultAddressFlag    = "vaultAddress"
)

// DeployRequestParams is the raw command line input
type DeployRequestParams struct {
	Network         string
	FQN             string
	PrivateKey      string
	NoVerify        bool
	VaultDeployment bool
	CurrencySymbol  string
	VaultAddress    string
}

// DeployRequest is a validated deployment request. It cannot be changed once built.
type DeployRequest struct {
	network         string
	fqn             string
	privateKey      string
	noVerify        bool
	vaultDeployment bool
	currencySymbol  string
	vaultAddress    string
}

// NewDeployRequest validates params and builds a DeployRequest.
// It performs no I/O.
func NewDeployRequest(p DeployRequestParams) (*DeployRequest, error) {
	required := []struct {
		flag  string
		value string
	}{
		{NetworkFlag, p.Network},
		{FQNFlag, p.FQN},
		{PrivateKeyFlag, p.PrivateKey},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, fmt.Errorf("%w: --%s", constants.ErrMissingArgument, r.flag)
		}
	}
	if p.VaultDeployment && strings.TrimSpace(p.CurrencySymbol) == "" {
		return nil, fmt.Errorf("%w: --%s is required for vault deployments", constants.ErrMissingArgument, CurrencySymbolFlag)
	}
	if err := ValidatePathComponent(NetworkFlag, p.Network); err != nil {
		return nil, err
	}
	if p.VaultDeployment {
		if err := ValidatePathComponent(CurrencySymbolFlag, p.CurrencySymbol); err != nil {
			return nil, err
		}
	}
	return &DeployRequest{
		network:         p.Network,
		fqn:             p.FQN,
		privateKey:      p.PrivateKey,
		noVerify:        p.NoVerify,
		vaultDeployment: p.VaultDeployment,
		currencySymbol:  p.CurrencySymbol,
		vaultAddress:    p.VaultAddress,
	}, nil
}

// ValidatePathComponent rejects values that cannot be used as a config file
// name component (network and currency symbol become file names under the config dir)
func ValidatePathComponent(flag, value string) error {
	if strings.ContainsAny(value, `/\`) || strings.Contains(value, "..") {
		return fmt.Errorf("%w: --%s %q must not contain path separators", constants.ErrInvalidArgument, flag, value)
	}
	return nil
}

func (r *DeployRequest) Network() string {
	return r.network
}

func (r *DeployRequest) FQN() string {
	return r.fqn
}

func (r *DeployRequest) PrivateKey() string {
	return r.privateKey
}

// Verify reports whether the deployed contracts should be verified
func (r *DeployRequest) Verify() bool {
	return !r.noVerify
}

func (r *DeployRequest) IsVaultDeployment() bool {
	return r.vaultDeployment
}

func (r *DeployRequest) CurrencySymbol() string {
	return r.currencySymbol
}

func (r *DeployRequest) VaultAddress() string {
	return r.vaultAddress
}

// String never includes the private key
func (r *DeployRequest) String() string {
	s := fmt.Sprintf("network=%s fqn=%s verify=%t", r.network, r.fqn, r.Verify())
	if r.vaultDeployment {
		s += fmt.Sprintf(" vault=%s", r.currencySymbol)
	}
	if r.vaultAddress != "" {
		s += fmt.Sprintf(" vaultAddress=%s", r.vaultAddress)
	}
	return s
}
