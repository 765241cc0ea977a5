// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moneyprinter/protocol-deploy/cmd/configcmd"
	"github.com/moneyprinter/protocol-deploy/cmd/flags"
	"github.com/moneyprinter/protocol-deploy/pkg/application"
	"github.com/moneyprinter/protocol-deploy/pkg/config"
	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/moneyprinter/protocol-deploy/pkg/dependencies"
	"github.com/moneyprinter/protocol-deploy/pkg/forge"
	"github.com/moneyprinter/protocol-deploy/pkg/logging"
	"github.com/moneyprinter/protocol-deploy/pkg/models"
	"github.com/moneyprinter/protocol-deploy/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	app *application.Deploy

	Version     = "0.3.0"
	cfgFile     string
	logLevel    string
	forgePath   string
	minForge    string
	configDir   string
	dryRun      bool
	joinTimeout time.Duration
	verboseFlag bool
	debugFlag   bool
	quietFlag   bool

	deployFlags   flags.DeployFlags
	deployRequest *models.DeployRequest
)

func NewRootCmd() *cobra.Command {
	// rootCmd deploys directly; subcommands are helpers around the same config
	rootCmd := &cobra.Command{
		Use:   "protocol-deploy",
		Short: "Deploy protocol contracts with forge script",
		Long: `protocol-deploy runs a Foundry deployment script against a configured network.

Network settings are read from deploy-config/<network>.json:

  {"chainId": 1, "rpcUrl": "...", "verifierUrl": "...", "etherscanApiKey": "..."}

Vault deployments (--vaultDeployment) also read
deploy-config/vault/<network>.<currencySymbol>.json:

  {"underlyingCurrency": "0x..."}

The script sees DEPLOYMENT_CONTEXT, VAULT_ADDRESS, CHAIN_ID, PRIVATE_KEY and,
for vault deployments, CURRENCY. Transactions are broadcast; a failed run is
never retried. The exit code of forge becomes the exit code of this command.

Examples:
  protocol-deploy --network sepolia --fqn script/Deploy.s.sol:Deploy --private-key $PK
  protocol-deploy --network mainnet --fqn script/Vault.s.sol:DeployVault \
    --private-key $PK --vaultDeployment --currencySymbol USDC`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: createApp,
		RunE:              runDeploy,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.protocol-deploy/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, constants.ConfigLogLevel, constants.DefaultLogLevel, "log level for the application")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Show only errors and hide forge output unless it fails")
	rootCmd.PersistentFlags().StringVar(&configDir, constants.ConfigDeployDir, "", "directory holding the deploy config files (default is ./deploy-config)")

	flags.AddDeployFlagsToCmd(rootCmd, &deployFlags)
	rootCmd.Flags().StringVar(&forgePath, constants.ConfigForgePath, "", "path to the forge binary (default is forge on PATH)")
	rootCmd.Flags().StringVar(&minForge, constants.ConfigMinForge, "", "fail before deploying if forge is older than this version")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the forge command and environment without running it")
	rootCmd.Flags().DurationVar(&joinTimeout, "join-timeout", 0, "stop forge if the deployment takes longer than this (0 waits forever)")

	cobra.CheckErr(app.Conf.BindFlag(constants.ConfigLogLevel, rootCmd.PersistentFlags().Lookup(constants.ConfigLogLevel)))
	cobra.CheckErr(app.Conf.BindFlag(constants.ConfigDeployDir, rootCmd.PersistentFlags().Lookup(constants.ConfigDeployDir)))
	cobra.CheckErr(app.Conf.BindFlag(constants.ConfigForgePath, rootCmd.Flags().Lookup(constants.ConfigForgePath)))
	cobra.CheckErr(app.Conf.BindFlag(constants.ConfigMinForge, rootCmd.Flags().Lookup(constants.ConfigMinForge)))
	cobra.CheckErr(flags.BindDeployFlags(rootCmd, app.Conf))

	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	// the deploy request is validated before anything touches the disk
	if !cmd.HasParent() {
		req, err := deployFlags.Request(app.Conf)
		if err != nil {
			return err
		}
		deployRequest = req
	}

	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	if err := app.Conf.Load(cfgFile, baseDir); err != nil {
		return err
	}
	log, err := setupLogging(cmd.ErrOrStderr(), app.Conf)
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	app.Setup(baseDir, wd, log, app.Conf)
	ux.Logger = ux.New(log, cmd.OutOrStdout())
	if app.Conf.ConfigFileExists() {
		log.Debug("using config file", zap.String("config-file", app.Conf.GetConfigPath()))
	}
	return nil
}

func setupEnv() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		// no logger here yet
		return "", fmt.Errorf("unable to get home directory: %w", err)
	}
	return config.DefaultBaseDir(home), nil
}

func setupLogging(w io.Writer, conf *config.Config) (*zap.Logger, error) {
	level := logging.Flags{
		Level:   conf.GetConfigStringValue(constants.ConfigLogLevel),
		Debug:   debugFlag,
		Verbose: verboseFlag,
		Quiet:   quietFlag,
	}.Resolve()
	log, err := logging.New(w, level)
	if err != nil {
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	return log, nil
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	req := deployRequest
	out := cmd.OutOrStdout()

	if dryRun {
		path := app.Conf.GetConfigStringValue(constants.ConfigForgePath)
		if resolved, err := app.GetForgePath(); err == nil {
			path = resolved
		}
		inv, _, err := app.NewDeployer(path, io.Discard, joinTimeout).Plan(req)
		if err != nil {
			return err
		}
		return ux.PrintInvocation(out, inv)
	}

	path, err := app.GetForgePath()
	if err != nil {
		return err
	}
	if err := dependencies.CheckForgeVersion(cmd.Context(), path, app.Conf.GetConfigStringValue(constants.ConfigMinForge)); err != nil {
		return err
	}
	toolOut := out
	if quietFlag {
		toolOut = io.Discard
	}
	d := app.NewDeployer(path, toolOut, joinTimeout)

	ux.Logger.PrintToUser("Deploying %s to %s", req.FQN(), req.Network())
	ux.Logger.Info("deploy request: %s", req)
	tracker := ux.NewStepTracker(ux.Logger)
	tracker.Start("Running forge script")
	res, err := d.Deploy(cmd.Context(), req)
	if err != nil {
		var toolErr *forge.ToolError
		if errors.As(err, &toolErr) {
			tracker.Failed(fmt.Sprintf("exit code %d", toolErr.ExitCode))
		} else {
			tracker.Failed(err.Error())
		}
		ux.Logger.Error("deployment of %s to %s failed", req.FQN(), req.Network())
		return err
	}
	tracker.Complete("")
	return ux.PrintDeploymentSummary(out, req, res)
}

// ExitCode maps an error from the command tree to a process exit code.
// A failed forge run exits with forge's own code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var toolErr *forge.ToolError
	if errors.As(err, &toolErr) && toolErr.ExitCode > 0 {
		return toolErr.ExitCode
	}
	return 1
}

// ReportError writes err for the user. forge output that was already streamed
// is not repeated.
func ReportError(w io.Writer, err error, streamed bool) {
	var toolErr *forge.ToolError
	if streamed && errors.As(err, &toolErr) {
		fmt.Fprintf(w, "\nERROR: %s\n", toolErr.Summary())
		return
	}
	fmt.Fprintf(w, "\nERROR: %s\n", err)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	app = application.New()
	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		ReportError(os.Stderr, err, !quietFlag)
		os.Exit(ExitCode(err))
	}
}
