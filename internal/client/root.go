// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/drivesync/internal/config"
	"github.com/MKhiriev/drivesync/internal/logger"
	"github.com/MKhiriev/drivesync/internal/service"
	"github.com/MKhiriev/drivesync/models"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const appRole = "drivesync"

// NewRootCmd returns the drivesync command. Files are read and written
// through fsys.
func NewRootCmd(stdout, stderr io.Writer, info models.AppBuildInfo, fsys afero.Fs) *cobra.Command {
	var manifestFlag string

	cmd := &cobra.Command{
		Use:   "drivesync",
		Short: "Synchronize local files with Google Drive as listed in a JSON manifest",
		Long: "drivesync reads the manifest (sync.json by default), uploads files that have no\n" +
			"remote id yet, pushes or pulls files whose modification times differ, and\n" +
			"writes the known remote ids back into the manifest.",
		Version:       info.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}
			if manifestFlag != "" {
				cfg.Manifest.Path = manifestFlag
			}

			log, closeLog, err := logger.NewClientLogger(appRole, cfg.Log, stderr)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			log.Debug().Str("build", info.String()).Msg("starting")

			svcs := service.NewServices(cfg, fsys, log)
			app := NewApp(svcs.ManifestRunner, cfg.Manifest.Path, stdout, log)

			return app.Run(cmd.Context())
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.Flags().StringVarP(&manifestFlag, "manifest", "m", "", "path of the manifest (overrides DRIVESYNC_MANIFEST)")

	return cmd
}

// Execute runs drivesync with the process stdio and returns the exit code.
// An interrupt stops the run after the current call; the manifest is still
// written with the ids obtained so far.
func Execute(info models.AppBuildInfo) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd(os.Stdout, os.Stderr, info, afero.NewOsFs())
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "drivesync:", err)
		return 1
	}
	return 0
}
