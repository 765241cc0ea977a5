// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dependencies

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/moneyprinter/protocol-deploy/pkg/constants"
)

// forge prints either "forge 0.2.0 (5be158b 2024-03-01T00:19:50Z)"
// or "forge Version: 1.0.0-stable"; only major.minor.patch is compared
var forgeVersionRe = regexp.MustCompile(`(\d+\.\d+\.\d+)`)

// ParseForgeVersion extracts a semver ("v1.2.3") from `forge --version` output
func ParseForgeVersion(output string) (string, error) {
	m := forgeVersionRe.FindStringSubmatch(output)
	if m == nil {
		return "", fmt.Errorf("could not find a version in %q", strings.TrimSpace(output))
	}
	return "v" + m[1], nil
}

// NormalizeVersion accepts "1.2.3" or "v1.2.3"
func NormalizeVersion(version string) (string, error) {
	v := strings.TrimSpace(version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q is not a semantic version", constants.ErrInvalidArgument, version)
	}
	return v, nil
}

func CheckVersionIsOverMin(dependencyName, version, minVersion string) error {
	minV, err := NormalizeVersion(minVersion)
	if err != nil {
		return err
	}
	// version has to be at least the minimum version specified for the dependency
	if semver.Compare(version, minV) == -1 {
		return fmt.Errorf("%w: minimum version of %s is %s, found %s", constants.ErrToolVersion, dependencyName, minV, version)
	}
	return nil
}

// ForgeVersion runs `forge --version`
func ForgeVersion(ctx context.Context, forgePath string) (string, error) {
	out, err := exec.CommandContext(ctx, forgePath, "--version").CombinedOutput() //nolint:gosec // G204: Running forge with a fixed flag
	if err != nil {
		return "", fmt.Errorf("could not query forge version: %w", err)
	}
	return ParseForgeVersion(string(out))
}

// CheckForgeVersion fails if the forge at forgePath is older than minVersion.
// An empty minVersion disables the check.
func CheckForgeVersion(ctx context.Context, forgePath, minVersion string) error {
	if minVersion == "" {
		return nil
	}
	version, err := ForgeVersion(ctx, forgePath)
	if err != nil {
		return err
	}
	return CheckVersionIsOverMin(constants.DefaultForgeName, version, minVersion)
}
