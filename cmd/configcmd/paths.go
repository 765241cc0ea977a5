// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Show where settings and deploy configs are read from",
		Args:  cobra.NoArgs,
		RunE:  runPaths,
	}
}

func runPaths(cmd *cobra.Command, _ []string) error {
	configFile := app.Conf.GetConfigPath()
	if configFile == "" {
		configFile = "(none)"
	}
	forgePath, err := app.GetForgePath()
	if err != nil {
		forgePath = "(not found)"
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Setting", "Value")
	rows := [][]string{
		{"config file", configFile},
		{"base dir", app.GetBaseDir()},
		{"deploy config dir", app.NewLoader().Dir()},
		{"working dir", app.GetWorkDir()},
		{"forge", forgePath},
	}
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return err
		}
	}
	return table.Render()
}
