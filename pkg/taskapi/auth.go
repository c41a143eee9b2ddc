// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package taskapi

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AleutianAI/taskflow/pkg/session"
)

// Login exchanges credentials for a session and saves it to the store.
//
// # Description
//
// Sends the credentials to POST /api/auth/login. On success the returned
// token and canonical username are persisted through the session store and
// returned to the caller. A rejection (wrong password, unknown user) comes
// back as KindRequestFailed carrying the server's message; the store is not
// touched on failure.
func (c *Client) Login(ctx context.Context, username, password string) (session.Session, error) {
	var resp authResponse
	creds := credentialsPayload{Username: username, Password: password}
	if err := c.do(ctx, "login", http.MethodPost, "/api/auth/login", creds, &resp); err != nil {
		return session.Session{}, err
	}

	// The submitted name stands in when the response omits the canonical one.
	sess := session.Session{Token: resp.Token, Username: resp.Username}
	if sess.Username == "" {
		sess.Username = username
	}
	if err := c.sessions.Save(sess); err != nil {
		return session.Session{}, &Error{
			Kind:        KindRequestFailed,
			Op:          "login",
			Message:     "Signed in, but saving the session failed",
			Detail:      err.Error(),
			Remediation: "Check permissions on the state directory",
		}
	}

	slog.Info("Signed in", "username", resp.Username)
	return sess, nil
}

// Register creates an account and saves the resulting session to the store.
// The backend seeds new accounts with a default category set, so a first
// ListCategories right after registering is not empty.
func (c *Client) Register(ctx context.Context, username, password string) (session.Session, error) {
	var resp authResponse
	creds := credentialsPayload{Username: username, Password: password}
	if err := c.do(ctx, "register", http.MethodPost, "/api/auth/register", creds, &resp); err != nil {
		return session.Session{}, err
	}

	sess := session.Session{Token: resp.Token, Username: resp.Username}
	if sess.Username == "" {
		sess.Username = username
	}
	if err := c.sessions.Save(sess); err != nil {
		return session.Session{}, &Error{
			Kind:        KindRequestFailed,
			Op:          "register",
			Message:     "Account created, but saving the session failed",
			Detail:      err.Error(),
			Remediation: "Check permissions on the state directory",
		}
	}

	slog.Info("Account created", "username", resp.Username)
	return sess, nil
}

// Me returns the account behind the current session.
func (c *Client) Me(ctx context.Context) (Account, error) {
	var resp accountResponse
	if err := c.do(ctx, "whoami", http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return Account{}, err
	}
	return Account{
		ID:       strconv.FormatInt(resp.ID, 10),
		Username: resp.Username,
	}, nil
}
