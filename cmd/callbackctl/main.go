// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command callbackctl is the operator tool for the callback server. It signs
// and encrypts test vectors with the tenant credentials, builds handshake
// and delivery requests, and inspects the delivery journal.
package main

import (
	"os"

	"github.com/MKhiriev/wecom-callback/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := newRootCmd(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
