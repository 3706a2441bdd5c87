package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitlearn/bitvis/internal/baseconv"
	"github.com/spf13/viper"
)

const (
	defaultSkin      = "default"
	defaultBase      = 10
	defaultCopyFlash = 1200 * time.Millisecond
	defaultLogBuffer = 256
)

// cliConfig holds only workbench-relevant configuration.
type cliConfig struct {
	Skin        string        `mapstructure:"skin"`
	Base        int           `mapstructure:"base"`
	CopyFlash   time.Duration `mapstructure:"copy-flash"`
	ManualStart bool          `mapstructure:"manual-start"`
	LogBuffer   int           `mapstructure:"log-buffer"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("BITVIS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("skin", defaultSkin)
	v.SetDefault("base", defaultBase)
	v.SetDefault("copy-flash", defaultCopyFlash)
	v.SetDefault("manual-start", false)
	v.SetDefault("log-buffer", defaultLogBuffer)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "bitvis", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.Base < baseconv.MinBase || cfg.Base > baseconv.MaxBase {
		return cfg, fmt.Errorf("invalid base: %d (must be %d-%d)", cfg.Base, baseconv.MinBase, baseconv.MaxBase)
	}
	if cfg.LogBuffer < 1 {
		return cfg, fmt.Errorf("invalid log-buffer: %d", cfg.LogBuffer)
	}

	return cfg, nil
}
