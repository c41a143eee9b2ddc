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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/AleutianAI/taskflow/cmd/taskflow/config"
	"github.com/AleutianAI/taskflow/pkg/logging"
	"github.com/AleutianAI/taskflow/pkg/session"
	"github.com/AleutianAI/taskflow/pkg/taskapi"
	"github.com/AleutianAI/taskflow/pkg/ux"
)

// requestTimeout bounds every one-shot CLI call. The board uses its own
// per-command lifecycle instead.
const requestTimeout = 10 * time.Second

// =============================================================================
// Application Context
// =============================================================================

// appContext bundles everything a command needs: the loaded config, the
// session store, the API client, and the logger. Build one at the top of
// each run function and Close it before returning.
type appContext struct {
	cfg      config.TaskflowConfig
	cfgPath  string
	client   *taskapi.Client
	sessions session.Store
	logger   *logging.Logger
}

// newApp loads the config, opens the session store, and builds the API
// client. The server URL is resolved most-specific-first: --server flag,
// then TASKFLOW_SERVER, then the config file.
func newApp() (*appContext, error) {
	path := configFlag
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	base := cfg.Server.BaseURL
	if env := os.Getenv("TASKFLOW_SERVER"); env != "" {
		base = env
	}
	if serverFlag != "" {
		base = serverFlag
	}

	dir, err := config.DefaultDir()
	if err != nil {
		return nil, err
	}
	sessions, err := session.Open(dir)
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.Logging.Level),
		LogDir:  cfg.Logging.Dir,
		Service: "cli",
	})
	slog.SetDefault(logger.Slog())

	if cfg.UI.Personality != "" {
		ux.SetPersonalityLevel(ux.ParsePersonalityLevel(cfg.UI.Personality))
	} else {
		ux.InitPersonality()
	}

	return &appContext{
		cfg:      cfg,
		cfgPath:  path,
		client:   taskapi.New(base, sessions),
		sessions: sessions,
		logger:   logger,
	}, nil
}

func (a *appContext) Close() {
	_ = a.logger.Close()
}

// ctx returns a bounded context for one API call.
func (a *appContext) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// =============================================================================
// Error Reporting
// =============================================================================

// fail prints err the way the command surface promises and exits non-zero.
// An expired session gets the one remediation that always works; other API
// errors surface the server's message plus any remediation hint.
func fail(err error) {
	var apiErr *taskapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Kind == taskapi.KindUnauthorized {
			ux.Error("Session expired, run `taskflow login`")
			os.Exit(1)
		}
		ux.Error(apiErr.Message)
		if apiErr.Remediation != "" {
			ux.Muted(apiErr.Remediation)
		}
		os.Exit(1)
	}
	ux.Error(err.Error())
	os.Exit(1)
}

// failValidation prints every field error and exits without having touched
// the network.
func failValidation(errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		ux.Error(fmt.Sprintf("%s: %s", strings.ToLower(field), errs[field]))
	}
	os.Exit(1)
}

// =============================================================================
// Lookup Helpers
// =============================================================================

// findTask fetches the task list and returns the task with the given id.
func findTask(a *appContext, id string) (taskapi.Task, error) {
	ctx, cancel := a.ctx()
	defer cancel()

	tasks, err := a.client.ListTasks(ctx)
	if err != nil {
		return taskapi.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return taskapi.Task{}, fmt.Errorf("no task with id %s", id)
}

// resolveCategory maps a user-supplied category reference (id or name,
// case-insensitive) onto its id. An empty reference means "no category".
func resolveCategory(categories []taskapi.Category, ref string) (string, error) {
	if ref == "" || strings.EqualFold(ref, "none") {
		return "", nil
	}
	for _, c := range categories {
		if c.ID == ref || strings.EqualFold(c.Name, ref) {
			return c.ID, nil
		}
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no category %q (none exist yet, create one with `taskflow category add`)", ref)
	}
	return "", fmt.Errorf("no category %q (have: %s)", ref, strings.Join(names, ", "))
}

// findCategory returns the category matching ref by id or name.
func findCategory(a *appContext, ref string) (taskapi.Category, error) {
	ctx, cancel := a.ctx()
	defer cancel()

	categories, err := a.client.ListCategories(ctx)
	if err != nil {
		return taskapi.Category{}, err
	}
	for _, c := range categories {
		if c.ID == ref || strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}
	return taskapi.Category{}, fmt.Errorf("no category %q", ref)
}
