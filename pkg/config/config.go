// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds launcher settings.
// Priority: flags > env vars (DEPLOY_*) > config file > defaults
type Config struct {
	v *viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetEnvPrefix(constants.ConfigEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(constants.ConfigLogLevel, constants.DefaultLogLevel)
	return &Config{v: v}
}

// Load reads cfgFile, or <baseDir>/config.json when cfgFile is empty.
// A missing default config file is not an error; most users don't have one.
func (c *Config) Load(cfgFile, baseDir string) error {
	if cfgFile != "" {
		c.v.SetConfigFile(cfgFile)
	} else {
		c.v.AddConfigPath(baseDir)
		c.v.SetConfigType(constants.DefaultConfigFileType)
		c.v.SetConfigName(constants.DefaultConfigFileName)
	}
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed reading config file: %w", err)
	}
	return nil
}

// BindFlag makes flag the top priority source for key
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for %q", key)
	}
	return c.v.BindPFlag(key, flag)
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) ConfigFileExists() bool {
	return c.v.ConfigFileUsed() != ""
}

// GetConfigPath returns the path to the configuration file
func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

// DefaultBaseDir returns ~/.protocol-deploy for the given home directory
func DefaultBaseDir(home string) string {
	return filepath.Join(home, constants.BaseDirName)
}
