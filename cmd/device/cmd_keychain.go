// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/internal/store"
)

var errEmptyMnemonic = errors.New("recovery phrase must not be empty")

func newInitCommand(opts *options) *cobra.Command {
	var force, copyMnemonic bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the device identity and recovery phrase",
		Long: `Create the device identity and a 24-word recovery phrase.

The phrase is the only way to recover the device key. It is printed once and
never stored; the keychain keeps the key protected by the passphrase.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.localConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			secret, err := passphrase(cfg, "Choose a passphrase for the keychain")
			if err != nil {
				return err
			}

			return withKeychain(cfg, log, func(_ *store.Keychain, keychain service.DeviceKeychainService) error {
				mnemonic, identity, err := keychain.Init(secret, force)
				if errors.Is(err, service.ErrAlreadyInitialized) {
					return fmt.Errorf("%w: --force replaces it and makes every twofold key unusable", err)
				}
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Device identity: %s\n\n", identity.Short())
				fmt.Fprintln(out, "Recovery phrase, write it down now:")
				fmt.Fprintf(out, "\n  %s\n\n", mnemonic)

				if copyMnemonic {
					if err = clipboard.WriteAll(mnemonic); err != nil {
						return fmt.Errorf("error copying recovery phrase: %w", err)
					}
					fmt.Fprintln(out, "The recovery phrase was copied to the clipboard.")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing identity and key")
	cmd.Flags().BoolVar(&copyMnemonic, "copy", false, "copy the recovery phrase to the clipboard")

	return cmd
}

func newRestoreCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [word...]",
		Short: "Restore the device key from the recovery phrase",
		Long: `Restore the device key from the 24-word recovery phrase.

The words are taken from the arguments, or read from standard input as one
line when none are given. An existing identity is kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.localConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			mnemonic, err := readMnemonic(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			secret, err := passphrase(cfg, "Choose a passphrase for the keychain")
			if err != nil {
				return err
			}

			return withKeychain(cfg, log, func(_ *store.Keychain, keychain service.DeviceKeychainService) error {
				identity, err := keychain.Restore(mnemonic, secret)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Device key restored for identity %s\n", identity.Short())
				return nil
			})
		},
	}
}

func readMnemonic(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading recovery phrase: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", errEmptyMnemonic
	}
	return line, nil
}
