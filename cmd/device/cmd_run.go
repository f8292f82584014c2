// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/health-enclave/internal/adapter"
	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/internal/tui"
	"github.com/MKhiriev/health-enclave/internal/workers"
	"github.com/MKhiriev/health-enclave/models"
)

func newRunCommand(opts *options) *cobra.Command {
	var headless bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sync with the terminal and answer its access requests",
		Long: `Connect to the terminal, keep the session alive and sync documents.

The consent prompt lists the device's documents and asks the holder whenever
the terminal wants to open one. With --headless every request is denied and
logs go to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.deviceConfig()
			if err != nil {
				return err
			}

			log := newLogger(cfg)
			if headless && cfg.App.LogFile == "" {
				log = logger.NewLogger(role, cfg.App.LogLevel)
			}

			secret, err := passphrase(cfg, "Unlock the device")
			if err != nil {
				return err
			}

			var (
				identity  models.DeviceIdentity
				deviceKey *crypto.DeviceKeyHolder
			)
			// the keychain is released once unlocked so that list and delete
			// keep working while the device runs
			err = withKeychain(cfg, log, func(_ *store.Keychain, keychain service.DeviceKeychainService) error {
				identity, deviceKey, err = keychain.Unlock(secret)
				return err
			})
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			storages, err := store.NewStorages(ctx, cfg.Storage.DB.DSN, cfg.Transfer.ChunkSize, log)
			if err != nil {
				return err
			}
			defer storages.Close()

			terminal, err := adapter.NewGRPCTerminalAdapter(cfg.Adapter, cfg.Transfer, identity, log)
			if err != nil {
				return err
			}
			defer terminal.Close()

			services := service.NewDeviceServices(storages.Documents(identity), deviceKey, terminal, cfg, log)
			log.Info().
				Str("identity", identity.Short()).
				Str("terminal", cfg.Adapter.TerminalAddress).
				Bool("headless", headless).
				Msg("device started")

			var consent workers.Worker = tui.New(services.DocumentsService, buildInfo(), log)
			if headless {
				consent = workers.NewDenyWorker(services.DocumentsService, log)
			}

			err = workers.NewWorkers(
				workers.NewSyncWorker(services.DocumentsService, cfg.Workers, log),
				consent,
			).Run(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&headless, "headless", false, "run without the consent prompt and deny every access request")

	return cmd
}
