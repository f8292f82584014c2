// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/internal/tui"
	"github.com/MKhiriev/health-enclave/models"
)

const role = "device"

// options are the flags shared by every subcommand. Empty values fall back to
// the environment, the JSON file and the defaults.
type options struct {
	configFile string
	terminal   string
	caFile     string
	serverName string
	dbDSN      string
	keychain   string
	passphrase string
	logLevel   string
	logFile    string
}

func (o *options) overrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Passphrase: o.passphrase,
			LogLevel:   o.logLevel,
			LogFile:    o.logFile,
		},
		Adapter: config.Adapter{
			TerminalAddress: o.terminal,
			TLSCAFile:       o.caFile,
			ServerName:      o.serverName,
		},
		Storage: config.Storage{
			DB:       config.DB{DSN: o.dbDSN},
			Keychain: config.Keychain{Path: o.keychain},
		},
		JSONFilePath: o.configFile,
	}
}

// localConfig is used by subcommands that never dial the terminal.
func (o *options) localConfig() (*config.DeviceConfig, error) {
	return config.GetDeviceLocalConfig(config.Sources{Overrides: o.overrides()})
}

func (o *options) deviceConfig() (*config.DeviceConfig, error) {
	return config.GetDeviceConfig(config.Sources{Overrides: o.overrides()})
}

// logFilePath keeps log lines out of the console: without an explicit file
// they go next to the keychain.
func logFilePath(cfg *config.DeviceConfig) string {
	if cfg.App.LogFile != "" {
		return cfg.App.LogFile
	}
	return filepath.Join(filepath.Dir(cfg.Storage.Keychain.Path), role+".log")
}

func newLogger(cfg *config.DeviceConfig) *logger.Logger {
	return logger.NewFileLogger(role, cfg.App.LogLevel, logFilePath(cfg))
}

// passphrase returns the configured passphrase or asks the holder for it.
func passphrase(cfg *config.DeviceConfig, title string) (string, error) {
	if cfg.App.Passphrase != "" {
		return cfg.App.Passphrase, nil
	}
	return tui.PromptPassphrase(title)
}

// withKeychain opens the keychain for the duration of fn.
func withKeychain(cfg *config.DeviceConfig, log *logger.Logger, fn func(*store.Keychain, service.DeviceKeychainService) error) error {
	keychain, err := store.OpenKeychain(cfg.Storage.Keychain.Path)
	if err != nil {
		return err
	}
	defer keychain.Close()

	return fn(keychain, service.NewDeviceKeychainService(keychain, log))
}

func buildInfo() models.AppBuildInfo {
	info := models.AppBuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	if info.Version == "" {
		info.Version = "N/A"
	}
	if info.Date == "" {
		info.Date = "N/A"
	}
	if info.Commit == "" {
		info.Commit = "N/A"
	}
	return info
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "device",
		Short: "HealthEnclave holder device",
		Long: `The holder's side of HealthEnclave.

The device keeps every document it was given together with a twofold key only
it can unwrap. While connected to a terminal it syncs documents in both
directions and asks the holder before the terminal may open any of them.`,
		Example: `  # Create the device identity and recovery phrase
  device init --copy

  # Connect to a terminal and show the consent prompt
  device run --terminal 192.168.0.10:42242 --ca terminal.pem`,
		SilenceUsage: true,
		Version:      buildInfo().Version,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "JSON configuration file")
	flags.StringVarP(&opts.terminal, "terminal", "t", "", "terminal gRPC address, host:port")
	flags.StringVar(&opts.caFile, "ca", "", "pinned terminal certificate (PEM); empty dials without TLS")
	flags.StringVar(&opts.serverName, "server-name", "", "name checked against the terminal certificate")
	flags.StringVar(&opts.dbDSN, "db", "", "document store DSN")
	flags.StringVar(&opts.keychain, "keychain", "", "keychain file")
	flags.StringVar(&opts.passphrase, "passphrase", "", "keychain passphrase; prompted for when empty")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "log file; defaults to device.log next to the keychain")

	cmd.AddCommand(
		newInitCommand(&opts),
		newRestoreCommand(&opts),
		newRunCommand(&opts),
		newListCommand(&opts),
		newDeleteCommand(&opts),
		newVersionCommand(),
	)

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := buildInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", info.Version)
			fmt.Fprintf(out, "Build date: %s\n", info.Date)
			fmt.Fprintf(out, "Build commit: %s\n", info.Commit)
		},
	}
}
