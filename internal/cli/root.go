// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the tfinspect command tree: decoding GetOperation
// and Item records captured from a version-control server, resolving their
// artifact locations and downloading file content.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lilducky98/monodevelop-tfs-addin/internal/adapter"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/config"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/decoder"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/logger"
	"github.com/lilducky98/monodevelop-tfs-addin/models"
)

// stdinArg names standard input as the record source.
const stdinArg = "-"

type app struct {
	info     models.BuildInfo
	logger   *logger.Logger
	flags    *config.StructuredConfig
	cfg      *config.StructuredConfig
	decoders *decoder.Decoders
}

// NewRootCommand builds the tfinspect command tree.
func NewRootCommand(info models.BuildInfo, log *logger.Logger) *cobra.Command {
	a := &app{info: info, logger: log, decoders: decoder.NewDecoders(log)}

	root := &cobra.Command{
		Use:   "tfinspect",
		Short: "Decode and inspect version-control wire records.",
		Long: `Decode GetOperation and Item records captured from a version-control
server, resolve artifact locations and download file content.

Example: tfinspect items -u http://tfs:8080/tfs/DefaultCollection --resolve items.xml`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
	}

	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		a.newPendingCommand(),
		a.newItemsCommand(),
		a.newVersionCommand(),
	)
	root.SetHelpCommand(&cobra.Command{Hidden: true})

	return root
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(a.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

// repository returns a client for the configured server, or nil when none is
// configured and required is false.
func (a *app) repository(required bool) (adapter.RepositoryClient, error) {
	if err := a.cfg.Repository.RequireURL(); err != nil {
		if required {
			return nil, err
		}
		return nil, nil
	}
	return adapter.NewHTTPRepositoryClient(a.cfg.Repository, a.logger)
}

// openSource opens the record file named by arg, or stdin for "-".
func openSource(cmd *cobra.Command, arg string) (io.ReadCloser, error) {
	if arg == stdinArg {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	return f, nil
}
