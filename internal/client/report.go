// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/drivesync/models"
	"github.com/charmbracelet/lipgloss"
)

type reportStyles struct {
	action map[models.Action]lipgloss.Style
	failed lipgloss.Style
	faint  lipgloss.Style
	bold   lipgloss.Style
}

// newReportStyles binds styles to w's renderer, so colours are dropped
// when w is not a terminal.
func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Width(11)

	return reportStyles{
		action: map[models.Action]lipgloss.Style{
			models.ActionCreated:    label.Foreground(lipgloss.Color("10")),
			models.ActionUpdated:    label.Foreground(lipgloss.Color("12")),
			models.ActionDownloaded: label.Foreground(lipgloss.Color("14")),
			models.ActionUnchanged:  label.Faint(true),
		},
		failed: label.Foreground(lipgloss.Color("9")).Bold(true),
		faint:  r.NewStyle().Faint(true),
		bold:   r.NewStyle().Bold(true),
	}
}

// RenderReport writes one line per file followed by a summary line.
func RenderReport(w io.Writer, report models.Report) error {
	st := newReportStyles(w)

	var b strings.Builder
	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(&b, "%s%s: %v\n", st.failed.Render(models.ActionNone.String()), res.LocalPath, res.Err)
			continue
		}

		line := st.action[res.Action].Render(res.Action.String()) + res.LocalPath
		if res.RemoteID != "" {
			line += " " + st.faint.Render("("+res.RemoteID+")")
		}
		b.WriteString(line + "\n")
	}

	summary := fmt.Sprintf("%d synced, %d failed", report.Succeeded(), len(report.Failed()))
	b.WriteString(st.bold.Render(summary) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
