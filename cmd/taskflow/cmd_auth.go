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

	"github.com/AleutianAI/taskflow/cmd/taskflow/internal/forms"
	"github.com/AleutianAI/taskflow/pkg/session"
	"github.com/AleutianAI/taskflow/pkg/taskapi"
	"github.com/AleutianAI/taskflow/pkg/ux"
	"github.com/spf13/cobra"
)

// =============================================================================
// Credential Gathering
// =============================================================================

// gatherUsername takes the username from the argument list or, on a
// terminal, prompts for it.
func gatherUsername(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !ux.IsInteractive() {
		return "", fmt.Errorf("username required: taskflow login <username>")
	}
	return ux.Input("Username", "your account name", func(s string) error {
		return forms.FieldError(forms.Login{Username: s}, "Username")
	})
}

// gatherPassword resolves the password without ever echoing it: the
// --password flag, then TASKFLOW_PASSWORD, then a masked prompt.
func gatherPassword(username string) (string, error) {
	if authPassword != "" {
		return authPassword, nil
	}
	if env := os.Getenv("TASKFLOW_PASSWORD"); env != "" {
		return env, nil
	}
	if !ux.IsInteractive() {
		return "", fmt.Errorf("password required: set TASKFLOW_PASSWORD or pass --password")
	}
	return ux.Password("Password", func(s string) error {
		return forms.FieldError(forms.Login{Username: username, Password: s}, "Password")
	})
}

// =============================================================================
// Command Implementations
// =============================================================================

func runLoginCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	username, err := gatherUsername(args)
	if err != nil {
		fail(err)
	}
	password, err := gatherPassword(username)
	if err != nil {
		fail(err)
	}

	if errs := forms.Check(forms.Login{Username: username, Password: password}); !errs.Valid() {
		failValidation(errs)
	}

	var sess session.Session
	err = ux.WithSpinner("Signing in", func() error {
		ctx, cancel := app.ctx()
		defer cancel()
		var loginErr error
		sess, loginErr = app.client.Login(ctx, username, password)
		return loginErr
	})
	if err != nil {
		fail(err)
	}

	app.logger.Info("signed in", "username", sess.Username)
	ux.Success(fmt.Sprintf("Signed in as %s", sess.Username))
}

func runRegisterCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	username, err := gatherUsername(args)
	if err != nil {
		fail(err)
	}
	password, err := gatherPassword(username)
	if err != nil {
		fail(err)
	}

	// With a flag or env password there is no second typing to compare, so
	// the confirmation only exists on the interactive path.
	confirm := password
	if authPassword == "" && os.Getenv("TASKFLOW_PASSWORD") == "" && ux.IsInteractive() {
		confirm, err = ux.Password("Confirm password", nil)
		if err != nil {
			fail(err)
		}
	}

	form := forms.Register{Username: username, Password: password, Confirm: confirm}
	if errs := forms.Check(form); !errs.Valid() {
		failValidation(errs)
	}

	var sess session.Session
	err = ux.WithSpinner("Creating your account", func() error {
		ctx, cancel := app.ctx()
		defer cancel()
		var regErr error
		sess, regErr = app.client.Register(ctx, username, password)
		return regErr
	})
	if err != nil {
		fail(err)
	}

	app.logger.Info("registered", "username", sess.Username)
	ux.Success(fmt.Sprintf("Welcome, %s", sess.Username))
}

func runLogoutCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	if _, ok := app.sessions.Current(); !ok {
		ux.Muted("Not signed in.")
		return
	}
	if err := app.sessions.Clear(); err != nil {
		fail(err)
	}
	ux.Success("Signed out")
}

func runWhoamiCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	sess, ok := app.sessions.Current()
	if !ok {
		ux.Muted("Not signed in.")
		os.Exit(1)
	}

	// Verify the token against the server rather than trusting the file;
	// a stale token reads better as "expired" than as a surprise later.
	var account taskapi.Account
	err = ux.WithSpinner("Checking the session", func() error {
		ctx, cancel := app.ctx()
		defer cancel()
		var meErr error
		account, meErr = app.client.Me(ctx)
		return meErr
	})
	if err != nil {
		fail(err)
	}

	ux.Success(fmt.Sprintf("Signed in as %s", account.Username))
	ux.Muted(fmt.Sprintf("server %s, token stored for %s", app.client.BaseURL(), sess.Username))
}
