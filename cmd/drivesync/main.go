// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/drivesync/internal/client"
	"github.com/MKhiriev/drivesync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(client.Execute(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
}
