// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/health-enclave/internal/adapter"
	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/models"
)

// pollPause separates retrieval attempts when the terminal answers 202
// before the requested wait has elapsed.
const pollPause = 500 * time.Millisecond

var errEmptyKey = errors.New("shared key must not be empty")

func (a *app) genKeyCommand() *cobra.Command {
	var set bool

	cmd := &cobra.Command{
		Use:   "gen-key",
		Short: "Generate a shared key",
		Long: `Generate a random shared key and print its base64 transcription.

The key lives only in the terminal's memory. It has to be entered again after
every restart of the terminal; documents added under an older key need the
device to grant access again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, encoded, err := crypto.NewSharedKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoded)

			if !set {
				return nil
			}
			return a.installKey(cmd, encoded)
		},
	}

	cmd.Flags().BoolVar(&set, "set", false, "install the generated key on the terminal")
	return cmd
}

func (a *app) setKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [base64-key]",
		Short: "Install the shared key on the terminal",
		Long: `Install the shared key on the terminal.

The key is taken from the argument, or read from standard input as one line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := readKey(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.installKey(cmd, encoded)
		},
	}
}

func (a *app) installKey(cmd *cobra.Command, encoded string) error {
	client, err := a.client()
	if err != nil {
		return err
	}

	fingerprint, err := client.SetSharedKey(cmd.Context(), encoded)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "shared key installed, fingerprint %s\n", fingerprint)
	return nil
}

func readKey(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading shared key: %w", err)
	}
	if line = strings.TrimSpace(line); line == "" {
		return "", errEmptyKey
	}
	return line, nil
}

func (a *app) sessionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the device session of the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			info, err := client.Session(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "State: %s\n", info.State)
			if info.Identity != "" {
				fmt.Fprintf(out, "Device: %s\n", info.Identity)
			}
			if info.Since != "" {
				fmt.Fprintf(out, "Since: %s\n", info.Since)
			}
			return nil
		},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the documents of the connected device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			documents, err := client.ListDocuments(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCREATED BY\tCREATED AT\tSTORED\tON DEVICE\tREADABLE")
			for _, d := range documents {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					d.ID, d.Name, d.CreatedBy, d.CreatedAt.Local().Format(time.DateTime),
					yesNo(d.Stored), yesNo(d.OnDevice), yesNo(d.Readable))
			}
			return w.Flush()
		},
	}
}

func (a *app) addCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Add a document for the connected device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = filepath.Base(args[0])
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			md, err := client.AddDocument(cmd.Context(), name, body)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), md.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "document name; defaults to the file name")
	return cmd
}

func (a *app) getCommand() *cobra.Command {
	var (
		wait    time.Duration
		timeout time.Duration
		output  string
	)

	cmd := &cobra.Command{
		Use:   "get <document-id>",
		Short: "Open a document",
		Long: `Open a document of the connected device.

Unless the terminal can open the document right away it asks the device for
access. With --wait the command keeps asking until the holder answers or
--timeout passes; with --wait 0 it reports a pending retrieval and exits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.DocumentIdentifier(args[0])
			if err := id.Validate(); err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			retrieval, err := retrieve(ctx, client, id, wait)
			if err != nil {
				return err
			}
			if retrieval.Status != models.RetrievalReady {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: waiting for the holder to grant access\n", id)
				return nil
			}

			md := retrieval.Metadata
			fmt.Fprintf(cmd.ErrOrStderr(), "%s by %s, %s\n", md.Name, md.CreatedBy, md.CreatedAt.Local().Format(time.DateTime))
			if output == "" {
				_, err = cmd.OutOrStdout().Write(retrieval.Body)
				return err
			}
			return os.WriteFile(output, retrieval.Body, 0o600)
		},
	}

	cmd.Flags().DurationVarP(&wait, "wait", "w", 20*time.Second, "how long the terminal waits for the device per request; keep below --request-timeout")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "give up after this long")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to a file instead of stdout")
	return cmd
}

// retrieve asks until the retrieval is Ready. Without wait a single Pending
// answer is returned as is.
func retrieve(ctx context.Context, client adapter.OperatorAdapter, id models.DocumentIdentifier, wait time.Duration) (models.Retrieval, error) {
	for {
		retrieval, err := client.GetDocument(ctx, id, wait)
		if err != nil || retrieval.Status == models.RetrievalReady || wait <= 0 {
			return retrieval, err
		}

		select {
		case <-ctx.Done():
			return models.Retrieval{}, fmt.Errorf("document %s is still pending: %w", id, ctx.Err())
		case <-time.After(pollPause):
		}
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information of enclavectl and the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			local := buildInfo()
			fmt.Fprintf(out, "enclavectl %s (%s, %s)\n", local.Version, local.Date, local.Commit)

			client, err := a.client()
			if err != nil {
				return err
			}
			remote, err := client.BuildInfo(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "terminal %s (%s, %s)\n", remote.Version, remote.Date, remote.Commit)
			return nil
		},
	}
}
