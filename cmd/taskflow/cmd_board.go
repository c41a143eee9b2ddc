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
	"log/slog"

	"github.com/AleutianAI/taskflow/cmd/taskflow/internal/board"
	"github.com/AleutianAI/taskflow/pkg/logging"
	"github.com/AleutianAI/taskflow/pkg/ux"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runBoardCommand starts the interactive board. It owns the whole terminal
// until the user quits, so everything that would print goes to the log
// file instead.
func runBoardCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	if !ux.IsInteractive() {
		fail(fmt.Errorf("the board needs a terminal; use `taskflow task list` for scripting"))
	}

	boardLogger := logging.New(logging.Config{
		Level:   logging.ParseLevel(app.cfg.Logging.Level),
		LogDir:  app.cfg.Logging.Dir,
		Service: "board",
		Quiet:   true,
	})
	defer boardLogger.Close()
	// Reroute package-level slog (the API client logs through it) away
	// from stderr while the alternate screen is up.
	slog.SetDefault(boardLogger.Slog())

	username := ""
	if sess, ok := app.sessions.Current(); ok {
		username = sess.Username
	}

	m := board.New(board.Config{
		Client:     app.client,
		Sessions:   app.sessions,
		Logger:     boardLogger.Slog(),
		App:        app.cfg,
		ConfigPath: app.cfgPath,
		Username:   username,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fail(fmt.Errorf("the board stopped with an error: %w", err))
	}
}
