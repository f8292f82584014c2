// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/health-enclave/internal/adapter"
	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/models"
)

const role = "enclavectl"

type options struct {
	configFile string
	address    string
	timeout    time.Duration
	logLevel   string
	logFile    string
}

type app struct {
	opts options

	newAdapter func(cfg config.Adapter, log *logger.Logger) (adapter.OperatorAdapter, error)
}

func newApp() *app {
	return &app{newAdapter: adapter.NewHTTPOperatorAdapter}
}

// client builds the operator API client. Logs go to stderr or --log-file so
// that command output stays clean.
func (a *app) client() (adapter.OperatorAdapter, error) {
	cfg, err := config.GetOperatorConfig(config.Sources{Overrides: &config.StructuredConfig{
		App:          config.App{LogLevel: a.opts.logLevel, LogFile: a.opts.logFile},
		Adapter:      config.Adapter{OperatorAddress: a.opts.address, RequestTimeout: a.opts.timeout},
		JSONFilePath: a.opts.configFile,
	}})
	if err != nil {
		return nil, err
	}

	return a.newAdapter(cfg.Adapter, logger.NewFileLogger(role, cfg.App.LogLevel, cfg.App.LogFile))
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

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enclavectl",
		Short: "Operate a HealthEnclave terminal",
		Long: `Operate a HealthEnclave terminal through its HTTP API.

Documents can only be added and opened while a device is connected to the
terminal. Opening a document waits for the holder to grant access on the
device.`,
		Example: `  # Generate a shared key and install it
  enclavectl gen-key --set

  # Add a document and open it again
  enclavectl add report.pdf
  enclavectl get 0192f3a4-5b6c-7d8e-9f00-112233445566 -o report.pdf`,
		SilenceUsage: true,
		Version:      buildInfo().Version,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.opts.configFile, "config", "c", "", "JSON configuration file")
	flags.StringVarP(&a.opts.address, "address", "a", "", "operator API base URL")
	flags.DurationVar(&a.opts.timeout, "request-timeout", 0, "timeout of a single request")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.opts.logFile, "log-file", "", "log file; defaults to stderr")

	cmd.AddCommand(
		a.genKeyCommand(),
		a.setKeyCommand(),
		a.sessionCommand(),
		a.listCommand(),
		a.addCommand(),
		a.getCommand(),
		a.versionCommand(),
	)

	return cmd
}
