// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrMissingArgument     = errors.New("missing required argument")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrConfigNotFound      = errors.New("deploy config not found")
	ErrConfigParse         = errors.New("could not parse deploy config")
	ErrExternalToolFailure = errors.New("deployment tool failed")
	ErrToolNotFound        = errors.New("\n\nforge was not found. To resolve this:\n- Install Foundry (https://getfoundry.sh) and make sure forge is on your PATH.\n- Or point --forge-path at the forge binary.\n") //nolint:stylecheck
	ErrToolVersion         = errors.New("forge version is too old")
	ErrJoinTimeout         = errors.New("timed out waiting for deployment to finish")
)
