// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/moneyprinter/protocol-deploy/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Deploy

func NewCmd(injectedApp *application.Deploy) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect deploy configuration",
		Long:  `Inspect the deploy-config files and launcher settings used by deployments`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newPathsCmd())

	return cmd
}
