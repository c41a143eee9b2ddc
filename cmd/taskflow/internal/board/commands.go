// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Messages and commands for the board. Every server call lives in a tea.Cmd
// so it runs off the event loop and reports back with exactly one typed
// message; Update applies state changes only on the success variants.

package board

import (
	"context"
	"time"

	"github.com/AleutianAI/taskflow/cmd/taskflow/config"
	"github.com/AleutianAI/taskflow/pkg/session"
	"github.com/AleutianAI/taskflow/pkg/taskapi"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// statusTTL is how long a transient status line stays on screen.
const statusTTL = 4 * time.Second

// =============================================================================
// Messages
// =============================================================================

// tasksLoadedMsg carries a full refresh of both server lists.
type tasksLoadedMsg struct {
	tasks      []taskapi.Task
	categories []taskapi.Category
}

// taskSavedMsg reports a created or updated task.
type taskSavedMsg struct {
	task    taskapi.Task
	created bool
}

// taskDeletedMsg reports a confirmed task deletion.
type taskDeletedMsg struct {
	id string
}

// categorySavedMsg reports a created or renamed category.
type categorySavedMsg struct {
	category taskapi.Category
}

// categoryDeletedMsg reports a confirmed category deletion.
type categoryDeletedMsg struct {
	id string
}

// authOKMsg reports a successful sign-in or account creation.
type authOKMsg struct {
	session    session.Session
	registered bool
}

// probeMsg carries the startup connectivity check.
type probeMsg struct {
	result taskapi.ProbeResult
}

// apiErrorMsg reports any failed server call. op names the attempt for the
// log line.
type apiErrorMsg struct {
	op  string
	err error
}

// statusExpiredMsg clears the transient status line when its timer fires.
type statusExpiredMsg struct {
	seq int
}

// configSavedMsg reports the outcome of persisting a config change.
type configSavedMsg struct {
	err error
}

// =============================================================================
// Commands
// =============================================================================

// loadCmd fetches tasks and categories in parallel. The board needs both
// before it can paint, so a single command waits for the pair.
func (m Model) loadCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()

		var (
			g     errgroup.Group
			tasks []taskapi.Task
			cats  []taskapi.Category
		)
		g.Go(func() error {
			var err error
			tasks, err = client.ListTasks(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			cats, err = client.ListCategories(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return apiErrorMsg{op: "load", err: err}
		}
		return tasksLoadedMsg{tasks: tasks, categories: cats}
	}
}

func (m Model) probeCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return probeMsg{result: client.Probe(context.Background())}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		sess, err := client.Login(context.Background(), username, password)
		if err != nil {
			return apiErrorMsg{op: "login", err: err}
		}
		return authOKMsg{session: sess}
	}
}

func (m Model) registerCmd(username, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		sess, err := client.Register(context.Background(), username, password)
		if err != nil {
			return apiErrorMsg{op: "register", err: err}
		}
		return authOKMsg{session: sess, registered: true}
	}
}

func (m Model) createTaskCmd(draft taskapi.TaskDraft) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		task, err := client.CreateTask(context.Background(), draft)
		if err != nil {
			return apiErrorMsg{op: "create task", err: err}
		}
		return taskSavedMsg{task: task, created: true}
	}
}

func (m Model) updateTaskCmd(id string, draft taskapi.TaskDraft) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		task, err := client.UpdateTask(context.Background(), id, draft)
		if err != nil {
			return apiErrorMsg{op: "update task", err: err}
		}
		return taskSavedMsg{task: task}
	}
}

func (m Model) setStatusCmd(task taskapi.Task, status string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		updated, err := client.SetTaskStatus(context.Background(), task, status)
		if err != nil {
			return apiErrorMsg{op: "toggle task", err: err}
		}
		return taskSavedMsg{task: updated}
	}
}

func (m Model) deleteTaskCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.DeleteTask(context.Background(), id); err != nil {
			return apiErrorMsg{op: "delete task", err: err}
		}
		return taskDeletedMsg{id: id}
	}
}

func (m Model) createCategoryCmd(draft taskapi.CategoryDraft) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		cat, err := client.CreateCategory(context.Background(), draft)
		if err != nil {
			return apiErrorMsg{op: "create category", err: err}
		}
		return categorySavedMsg{category: cat}
	}
}

func (m Model) deleteCategoryCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.DeleteCategory(context.Background(), id); err != nil {
			return apiErrorMsg{op: "delete category", err: err}
		}
		return categoryDeletedMsg{id: id}
	}
}

// saveConfigCmd persists the current configuration, carrying theme changes
// across runs. A missing path (tests, ephemeral runs) disables persistence.
func (m Model) saveConfigCmd() tea.Cmd {
	if m.cfgPath == "" {
		return nil
	}
	cfg, path := m.cfg, m.cfgPath
	return func() tea.Msg {
		return configSavedMsg{err: config.Save(path, cfg)}
	}
}

func statusTimerCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
