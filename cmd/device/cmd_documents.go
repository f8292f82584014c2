// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/models"
)

// openDocuments opens the device's own document store. Metadata is plaintext,
// so no passphrase is needed.
func openDocuments(cmd *cobra.Command, cfg *config.DeviceConfig, log *logger.Logger) (store.DocumentRepository, func(), error) {
	var identity models.DeviceIdentity
	err := withKeychain(cfg, log, func(keychain *store.Keychain, _ service.DeviceKeychainService) error {
		var err error
		identity, err = keychain.Identity()
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	storages, err := store.NewStorages(cmd.Context(), cfg.Storage.DB.DSN, cfg.Transfer.ChunkSize, log)
	if err != nil {
		return nil, nil, err
	}
	return storages.Documents(identity), func() { _ = storages.Close() }, nil
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the documents held on the device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.localConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			repo, closeStore, err := openDocuments(cmd, cfg, log)
			if err != nil {
				return err
			}
			defer closeStore()

			documents, err := repo.ListMetadata(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCREATED BY\tCREATED AT")
			for _, md := range documents {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", md.ID, md.Name, md.CreatedBy, md.CreatedAt.Local().Format(time.DateTime))
			}
			return w.Flush()
		},
	}
}

func newDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <document-id>",
		Short: "Delete a document everywhere",
		Long: `Delete a document from the device.

The deletion is propagated to the terminal the next time the device runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.localConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			id := models.DocumentIdentifier(args[0])
			if err = id.Validate(); err != nil {
				return err
			}

			repo, closeStore, err := openDocuments(cmd, cfg, log)
			if err != nil {
				return err
			}
			defer closeStore()

			// offline: no terminal and no device key are needed to tombstone
			documents := service.NewDeviceDocumentsService(repo, nil, nil, cfg, log)
			if err = documents.DeleteDocument(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}
}
