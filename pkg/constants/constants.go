// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	BaseDirName = ".protocol-deploy"

	// DeployConfigDirName is resolved against the working directory unless overridden
	DeployConfigDirName = "deploy-config"
	VaultConfigDirName  = "vault"
	JSONExtension       = ".json"

	DefaultConfigFileName = "config"
	DefaultConfigFileType = "json"

	// launcher config keys (viper)
	ConfigForgePath  = "forge-path"
	ConfigDeployDir  = "config-dir"
	ConfigLogLevel   = "log-level"
	ConfigPrivateKey = "private-key"
	ConfigMinForge   = "min-forge-version"
	ConfigEnvPrefix  = "DEPLOY"

	DefaultLogLevel  = "warn"
	DefaultForgeName = "forge"
	RedactedSecret   = "****"
)

// Environment variables handed to the deployment script.
const (
	EnvDeploymentContext = "DEPLOYMENT_CONTEXT"
	EnvVaultAddress      = "VAULT_ADDRESS"
	EnvChainID           = "CHAIN_ID"
	EnvPrivateKey        = "PRIVATE_KEY"
	EnvCurrency          = "CURRENCY"
)

// forge script flags
const (
	ForgeScriptCmd       = "script"
	ForgeRPCURLFlag      = "--rpc-url"
	ForgePrivateKeyFlag  = "--private-key"
	ForgeBroadcastFlag   = "--broadcast"
	ForgeVerifyFlag      = "--verify"
	ForgeVerifierURLFlag = "--verifier-url"
	ForgeAPIKeyFlag      = "--etherscan-api-key"
	ForgeViaIRFlag       = "--via-ir"
	ForgeVerbosityFlag   = "-vvvv"
	ForgeSkipSimFlag     = "--skip-simulation"
)

// ForgeWaitDelay is how long a cancelled forge run may take to release its output
const ForgeWaitDelay = 5 * time.Second
