// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/moneyprinter/protocol-deploy/pkg/models"
	"github.com/moneyprinter/protocol-deploy/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	showNetwork        string
	showCurrencySymbol string
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved config for a network",
		Long: `Show the network config a deployment would use, with the API key masked.

With --currencySymbol the vault config for that currency is shown as well.

Examples:
  protocol-deploy config show --network mainnet
  protocol-deploy config show --network mainnet --currencySymbol USDC`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().StringVar(&showNetwork, models.NetworkFlag, "", "network to show (required)")
	cmd.Flags().StringVar(&showCurrencySymbol, models.CurrencySymbolFlag, "", "also show the vault config for this currency")

	return cmd
}

func runShow(cmd *cobra.Command, _ []string) error {
	if showNetwork == "" {
		return fmt.Errorf("%w: --%s", constants.ErrMissingArgument, models.NetworkFlag)
	}
	if err := models.ValidatePathComponent(models.NetworkFlag, showNetwork); err != nil {
		return err
	}
	if err := models.ValidatePathComponent(models.CurrencySymbolFlag, showCurrencySymbol); err != nil {
		return err
	}

	loader := app.NewLoader()
	netCfg, err := loader.LoadNetwork(showNetwork, false)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", loader.NetworkPath(showNetwork))
	if err := ux.PrintNetworkConfig(out, showNetwork, netCfg); err != nil {
		return err
	}
	if missing := netCfg.MissingFields(true); len(missing) > 0 {
		fmt.Fprintf(out, "deployments need --%s until these are set: %v\n", models.NoVerifyFlag, missing)
	}

	if showCurrencySymbol == "" {
		return nil
	}
	vaultCfg, err := loader.LoadVault(showNetwork, showCurrencySymbol)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", loader.VaultPath(showNetwork, showCurrencySymbol))
	fmt.Fprintf(out, "%s=%s\n", constants.EnvCurrency, vaultCfg.UnderlyingCurrency)
	return nil
}
