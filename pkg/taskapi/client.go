// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package taskapi is the HTTP client for the TaskFlow backend.

# Problem Statement

Every surface of the client - the scriptable CLI commands and the interactive
board - talks to the same REST backend and needs the same behaviors on every
call:

 1. Bearer credential injection from the stored session
 2. Translation between the wire format and the client representation
 3. Session invalidation when the server answers 401
 4. A uniform, typed error envelope the UI layers can branch on

Scattering these across call sites is how clients end up with one screen that
redirects on an expired session and another that renders a raw 401.

# Solution

One Client owns the transport policy; callers see client-native types only:

	┌──────────────┐          ┌──────────────┐
	│ CLI commands │          │  board (TUI) │
	└──────┬───────┘          └──────┬───────┘
	       │                         │
	       └──────────┬──────────────┘
	                  ▼
	        ┌──────────────────┐      ┌─────────────────┐
	        │  taskapi.Client  │◄────►│  session.Store  │
	        │  (bearer, wire   │      │  (token + user) │
	        │   mapping, 401)  │      └─────────────────┘
	        └────────┬─────────┘
	                 ▼
	           TaskFlow REST API

# Session Handling

A 401 on an authenticated request clears the session store before the error
is returned, so no stale credential survives regardless of which surface made
the call. The error carries KindUnauthorized; deciding what to show next is
the caller's job, not the transport's. A 401 on login or register is an
ordinary rejection and leaves the store alone.

# Timeouts

General requests run until the server answers or the context ends; there is
no client-side deadline. The health probe is the exception: it exists to
answer "is anything listening" quickly and carries its own short timeout.

# Usage

	store, _ := session.Open(dir)
	client := taskapi.New("http://localhost:5000", store)

	tasks, err := client.ListTasks(ctx)
	if taskapi.IsUnauthorized(err) {
	    // session is already cleared; prompt for login
	}
*/
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AleutianAI/taskflow/pkg/session"
	"github.com/AleutianAI/taskflow/pkg/validation"
)

// probeTimeout bounds the health probe. General requests are not bounded.
const probeTimeout = 3 * time.Second

// -----------------------------------------------------------------------------
// Struct Definition
// -----------------------------------------------------------------------------

// Client talks to one TaskFlow backend. Safe for concurrent use.
type Client struct {
	// baseURL is the backend root, without a trailing slash.
	baseURL string

	// httpClient is used for API requests. No timeout: requests run until
	// the server answers or the caller's context ends.
	httpClient *http.Client

	// sessions supplies the bearer credential and absorbs 401 invalidation.
	sessions session.Store
}

// New creates a client for the backend at baseURL.
//
// # Inputs
//
//   - baseURL: Backend root URL (e.g., "http://localhost:5000")
//   - sessions: Session store consulted on every request; cleared on 401
//
// # Outputs
//
//   - *Client: Configured client instance
//
// # Examples
//
//	store := session.NewMemStore()
//	client := taskapi.New("http://localhost:5000", store)
//	result := client.Probe(ctx)
func New(baseURL string, sessions session.Store) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		sessions:   sessions,
	}
}

// BaseURL returns the backend root URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// -----------------------------------------------------------------------------
// Request Core
// -----------------------------------------------------------------------------

// checkID rejects a malformed resource id before it reaches a request
// path. Ids come from shell arguments as well as server responses; a bad
// one would aim the bearer token at a path the caller never meant.
func checkID(op, id string) error {
	if err := validation.ValidateID(id); err != nil {
		return &Error{
			Kind:        KindRequestFailed,
			Op:          op,
			Message:     err.Error(),
			Remediation: "Ids are listed by `taskflow task list` and `taskflow category list`",
		}
	}
	return nil
}

// do runs one API request: encodes body (when non-nil), attaches the bearer
// credential (when a session exists), and decodes the response into out
// (when non-nil). All error paths return *Error.
//
// A 401 on an authenticated request clears the session store before
// returning KindUnauthorized. A 401 without a credential attached is an
// ordinary KindRequestFailed, so login rejections read as what they are.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{
				Kind:        KindRequestFailed,
				Op:          op,
				Message:     "Failed to encode request",
				Detail:      err.Error(),
				Remediation: "This is an internal error - please report it",
			}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &Error{
			Kind:        KindConnection,
			Op:          op,
			Message:     "Failed to create request",
			Detail:      err.Error(),
			Remediation: "Check the configured server URL",
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	authed := false
	if sess, ok := c.sessions.Current(); ok {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
		authed = true
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return &Error{
				Kind:    KindCancelled,
				Op:      op,
				Message: "Request cancelled",
				Detail:  ctx.Err().Error(),
			}
		}
		return &Error{
			Kind:        KindConnection,
			Op:          op,
			Message:     "Cannot reach the TaskFlow server",
			Detail:      err.Error(),
			Remediation: fmt.Sprintf("Ensure the backend is running at %s (try: taskflow status)", c.baseURL),
		}
	}
	defer resp.Body.Close()

	slog.Debug("API request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", requestID)

	if resp.StatusCode == http.StatusUnauthorized && authed {
		if clearErr := c.sessions.Clear(); clearErr != nil {
			slog.Warn("Failed to clear expired session", "error", clearErr)
		}
		return &Error{
			Kind:        KindUnauthorized,
			Op:          op,
			Status:      resp.StatusCode,
			Message:     "Session expired, please sign in again",
			Remediation: "Run: taskflow login",
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.serverError(op, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{
				Kind:        KindDecode,
				Op:          op,
				Status:      resp.StatusCode,
				Message:     "Failed to parse server response",
				Detail:      err.Error(),
				Remediation: "Check that the server URL points at a TaskFlow backend",
			}
		}
	}
	return nil
}

// serverError builds the error for a non-2xx response, preferring the
// server's own message from the {"message": ...} envelope.
func (c *Client) serverError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope errorResponse
	msg := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		msg = envelope.Message
	}
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status %d", resp.StatusCode)
	}

	slog.Warn("API request rejected", "op", op, "status", resp.StatusCode, "message", msg)
	return &Error{
		Kind:    KindRequestFailed,
		Op:      op,
		Status:  resp.StatusCode,
		Message: msg,
	}
}

// -----------------------------------------------------------------------------
// Health Probe
// -----------------------------------------------------------------------------

// ProbeResult is the outcome of a connectivity probe.
type ProbeResult struct {
	// Online is true when ANY HTTP response arrived, whatever the status.
	Online bool

	// Status is the HTTP status code when Online.
	Status int

	// Latency is the round-trip time when Online.
	Latency time.Duration

	// Err is the transport error when offline.
	Err error
}

// Probe checks whether anything is listening at the backend URL.
//
// # Description
//
// Sends GET /api/health with a short deadline. Any HTTP response counts as
// online: an auth failure or a 500 still proves a server is reachable, and
// that is the only question the probe answers.
//
// # Inputs
//
//   - ctx: Context; the probe adds its own 3 second timeout
//
// # Outputs
//
//   - ProbeResult: Online flag plus status and latency, or the dial error
func (c *Client) Probe(ctx context.Context) ProbeResult {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return ProbeResult{Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("Health probe failed", "url", c.baseURL, "error", err)
		return ProbeResult{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return ProbeResult{
		Online:  true,
		Status:  resp.StatusCode,
		Latency: time.Since(start),
	}
}
