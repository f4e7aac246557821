// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package config loads the settings a Protector, its Azure-backed block
// store, and the process-wide logger are constructed from, following the
// same mapstructure-tag convention already used by ecp.Config.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/kopexa-grc/ecprotect/blob/azurestore"
	"github.com/kopexa-grc/ecprotect/blockstore/ecp"
	kerr "github.com/kopexa-grc/ecprotect/errors"
	"github.com/kopexa-grc/ecprotect/logger"
	"github.com/kopexa-grc/ecprotect/validation"
)

// EnvPrefix is the prefix viper requires on every environment variable
// binding, e.g. ECPROTECT_PROTECTOR_BLOCK_SIZE.
const EnvPrefix = "ECPROTECT"

// Config is the top-level configuration for an ECP-protected block store.
type Config struct {
	// Protector parameterizes the protection layer itself.
	Protector ecp.Config `mapstructure:"protector"`

	// Storage configures the Azure Blob Storage backend the Protector
	// wraps.
	Storage StorageConfig `mapstructure:"storage"`

	// Logging configures the process-wide zerolog logger.
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig configures the process-wide logger via the logger package.
type LoggingConfig struct {
	// Level is one of logger.DEBUG, INFO, WARN, ERROR, TRACE.
	Level string `mapstructure:"level"`

	// Format selects the output encoding: "json", "gcp", "color", or
	// "console".
	Format string `mapstructure:"format"`
}

// Apply configures the process-wide zerolog logger per LoggingConfig. It
// should be called once, after Load, before any other package starts
// logging.
func (l LoggingConfig) Apply() {
	logger.Set(l.Level)

	switch l.Format {
	case "json":
		logger.UseJSONLogging(os.Stderr)
	case "gcp":
		logger.UseGCPJSONLogging(os.Stderr)
	case "color":
		logger.UseJSONLogging(logger.NewColorWriter(os.Stderr))
	default:
		logger.StandardZerologLogger()
	}
}

// StorageConfig configures the Azure container an ECP-protected store is
// backed by, and the file/block geometry new stores are created with.
type StorageConfig struct {
	AccountName         string `mapstructure:"account_name"`
	AccountKey          string `mapstructure:"account_key"`
	ContainerName       string `mapstructure:"container_name"`
	ContainerAccessType string `mapstructure:"container_access_type"`
	Endpoint            string `mapstructure:"endpoint"`
	BlobAccessTier      string `mapstructure:"blob_access_tier"`

	// FileSize and BlockSize are only consulted when creating a new
	// store; an existing one recovers its own geometry via DetectSizes.
	FileSize  int64 `mapstructure:"file_size"`
	BlockSize int64 `mapstructure:"block_size"`
}

// AzConfig adapts StorageConfig into the shape azurestore.NewAzureService
// expects.
func (s StorageConfig) AzConfig() *azurestore.AzConfig {
	return &azurestore.AzConfig{
		AccountName:         s.AccountName,
		AccountKey:          s.AccountKey,
		BlobAccessTier:      s.BlobAccessTier,
		ContainerName:       s.ContainerName,
		ContainerAccessType: s.ContainerAccessType,
		Endpoint:            s.Endpoint,
	}
}

// Validate checks the constraints of the nested configuration structs.
func (c Config) Validate() error {
	if err := c.Protector.Validate(); err != nil {
		return err
	}

	if c.Storage.ContainerName == "" {
		return kerr.NewInvalidArgument("config: storage.container_name must be set")
	}

	if c.Storage.AccountName == "" {
		return kerr.NewInvalidArgument("config: storage.account_name must be set")
	}

	if c.Storage.Endpoint != "" {
		if err := validation.IsValidURL(c.Storage.Endpoint); err != nil {
			return kerr.Newf(kerr.InvalidArgument, err, "config: storage.endpoint is not a valid URL")
		}
	}

	return nil
}

// Load reads configuration from path (if non-empty) and from environment
// variables prefixed with EnvPrefix, e.g. ECPROTECT_STORAGE_ACCOUNT_NAME.
// Environment variables take precedence over the file. path may name any
// format viper supports (YAML, JSON, TOML); an empty path skips the file
// and relies on environment variables and defaults alone.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, kerr.Newf(kerr.UnexpectedFailure, err, "config: failed to read %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, kerr.Newf(kerr.UnexpectedFailure, err, "config: failed to decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("protector.block_size", 4096)
	v.SetDefault("protector.min_write_delay", "1s")
	v.SetDefault("protector.cache_time", "30s")
	v.SetDefault("protector.cache_size", 1024)
	v.SetDefault("protector.debug_invariants", false)

	v.SetDefault("storage.container_access_type", "private")

	v.SetDefault("logging.level", logger.INFO)
	v.SetDefault("logging.format", "console")
}
