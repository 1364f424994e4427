// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/drivesync/internal/logger"
	"github.com/MKhiriev/drivesync/internal/service"
)

// App runs one manifest and reports the outcome.
type App struct {
	runner   service.ManifestRunner
	manifest string
	out      io.Writer
	log      *logger.Logger
}

// NewApp builds an App that runs the manifest at manifest with runner and
// writes the per-file report to out.
func NewApp(runner service.ManifestRunner, manifest string, out io.Writer, log *logger.Logger) *App {
	return &App{
		runner:   runner,
		manifest: manifest,
		out:      out,
		log:      log,
	}
}

func (a *App) Run(ctx context.Context) error {
	report, err := a.runner.Run(ctx, a.manifest)
	// Results gathered before a fatal save error are still worth showing.
	if len(report.Results) > 0 {
		if renderErr := RenderReport(a.out, report); renderErr != nil {
			a.log.Warn().Err(renderErr).Msg("error writing report")
		}
	}
	if err != nil {
		return err
	}

	if failed := len(report.Failed()); failed > 0 {
		return fmt.Errorf("%w: %d of %d files: %w", ErrSyncFailed, failed, len(report.Results), report.Err())
	}

	return nil
}
