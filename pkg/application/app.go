// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"io"
	"path/filepath"
	"time"

	"github.com/moneyprinter/protocol-deploy/pkg/config"
	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/moneyprinter/protocol-deploy/pkg/deploy"
	"github.com/moneyprinter/protocol-deploy/pkg/deployconfig"
	"github.com/moneyprinter/protocol-deploy/pkg/forge"
	"go.uber.org/zap"
)

type Deploy struct {
	Log     *zap.Logger
	Conf    *config.Config
	baseDir string
	workDir string
}

func New() *Deploy {
	return &Deploy{
		Log:  zap.NewNop(),
		Conf: config.New(),
	}
}

func (app *Deploy) Setup(baseDir, workDir string, log *zap.Logger, conf *config.Config) {
	app.baseDir = baseDir
	app.workDir = workDir
	app.Log = log
	app.Conf = conf
}

func (app *Deploy) GetBaseDir() string {
	return app.baseDir
}

// GetWorkDir is the directory forge runs in
func (app *Deploy) GetWorkDir() string {
	return app.workDir
}

// GetDeployConfigDir returns the configured config-dir, or <workdir>/deploy-config
func (app *Deploy) GetDeployConfigDir() string {
	if dir := app.Conf.GetConfigStringValue(constants.ConfigDeployDir); dir != "" {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(app.workDir, dir)
	}
	return filepath.Join(app.workDir, constants.DeployConfigDirName)
}

func (app *Deploy) GetForgePath() (string, error) {
	return forge.ResolvePath(app.Conf.GetConfigStringValue(constants.ConfigForgePath))
}

func (app *Deploy) NewLoader() *deployconfig.Loader {
	return deployconfig.NewLoader(app.GetDeployConfigDir(), app.Log)
}

// NewDeployer wires the loader and a forge runner streaming to out
func (app *Deploy) NewDeployer(forgePath string, out io.Writer, joinTimeout time.Duration) *deploy.Deployer {
	return deploy.New(deploy.Config{
		Loader:      app.NewLoader(),
		Runner:      forge.NewRunner(app.Log, out),
		ForgePath:   forgePath,
		WorkDir:     app.workDir,
		JoinTimeout: joinTimeout,
		Log:         app.Log,
	})
}
