// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/AleutianAI/taskflow/pkg/taskapi"
	"github.com/AleutianAI/taskflow/pkg/ux"
	"github.com/spf13/cobra"
)

// runStatusCommand probes the server and reports the session. Any HTTP
// response counts as reachable; only a failed dial or timeout is offline.
func runStatusCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	var result taskapi.ProbeResult
	probeErr := ux.WithSpinner("Contacting the server", func() error {
		ctx, cancel := app.ctx()
		defer cancel()
		result = app.client.Probe(ctx)
		return nil
	})
	if probeErr != nil {
		fail(probeErr)
	}

	if result.Online {
		ux.Success(fmt.Sprintf("%s is reachable", app.client.BaseURL()))
		ux.Muted(fmt.Sprintf("HTTP %d in %s", result.Status, result.Latency.Round(time.Millisecond)))
	} else {
		ux.Error(fmt.Sprintf("%s is not reachable", app.client.BaseURL()))
		if result.Err != nil {
			ux.Muted(result.Err.Error())
		}
	}

	if sess, ok := app.sessions.Current(); ok {
		ux.Info("Signed in as " + sess.Username)
	} else {
		ux.Muted("Not signed in.")
	}

	if !result.Online {
		os.Exit(1)
	}
}
