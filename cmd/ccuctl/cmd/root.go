// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ccukit/ccurpc"
	"github.com/ccukit/ccurpc/internal/config"
)

var (
	cfgFile  string
	address  string
	timeout  time.Duration
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ccuctl",
	Short: "Talk to a HomeMatic CCU over XML-RPC",
	Long: `ccuctl talks to a HomeMatic CCU controller over its XML-RPC API.

The controller's method set is discovered at runtime, so any method the
CCU offers can be listed and called by its local name, e.g.
ccu_get_serial for CCU.getSerial.

Settings come from a TOML or YAML config file and can be overridden
with flags.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVarP(&address, "address", "a", "", "CCU address, e.g. 192.168.1.26")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "timeout per XML-RPC request")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// loadConfig merges the config file, defaults and flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
	}

	if address != "" {
		cfg.Address = address
	}
	if timeout > 0 {
		cfg.Timeout = config.Duration{Duration: timeout}
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// newClient builds the client described by config and flags.
func newClient() (*ccurpc.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	if cfg.Address == "" {
		return nil, fmt.Errorf("no CCU address given (use --address or a config file)")
	}

	return ccurpc.New(cfg.Address, ccurpc.WithTimeout(cfg.Timeout.Duration))
}
