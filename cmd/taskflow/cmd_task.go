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
	"strings"

	"github.com/AleutianAI/taskflow/cmd/taskflow/internal/forms"
	"github.com/AleutianAI/taskflow/cmd/taskflow/internal/views"
	"github.com/AleutianAI/taskflow/pkg/taskapi"
	"github.com/AleutianAI/taskflow/pkg/ux"
	"github.com/AleutianAI/taskflow/pkg/validation"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// =============================================================================
// task list
// =============================================================================

// runTaskListCommand prints the same derived view the board shows: the
// filters come from flags, falling back to the config defaults.
func runTaskListCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	var tasks []taskapi.Task
	var categories []taskapi.Category
	err = ux.WithSpinner("Fetching tasks", func() error {
		ctx, cancel := app.ctx()
		defer cancel()

		var g errgroup.Group
		g.Go(func() error {
			var listErr error
			tasks, listErr = app.client.ListTasks(ctx)
			return listErr
		})
		g.Go(func() error {
			var listErr error
			categories, listErr = app.client.ListCategories(ctx)
			return listErr
		})
		return g.Wait()
	})
	if err != nil {
		fail(err)
	}

	view := taskView
	if view == "" {
		view = app.cfg.UI.DefaultView
	}
	sortOrder := taskSort
	if sortOrder == "" {
		sortOrder = app.cfg.UI.DefaultSort
	}
	query := views.Query{
		View:     views.ParseView(view),
		Sort:     views.ParseSort(sortOrder),
		Priority: taskPriority,
		Search:   taskSearch,
	}

	today := views.Today()
	visible := views.Visible(tasks, query, today)

	if len(visible) == 0 {
		if len(tasks) == 0 {
			ux.Muted("No tasks yet. Add one with `taskflow task add \"...\"`.")
		} else {
			ux.Muted("No tasks match these filters.")
		}
		return
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	for _, t := range visible {
		ux.TaskLine(taskIcon(t), t.Title, taskDetail(t, names, today))
	}

	counts := views.Counts(tasks, today)
	ux.Summary(counts.Pending, counts.Done, counts.Overdue, counts.Total)
}

func taskIcon(t taskapi.Task) ux.Icon {
	if t.Status == taskapi.StatusDone {
		return ux.IconSuccess
	}
	return ux.IconPending
}

// taskDetail builds the parenthetical detail: the id first so scripts can
// cut it out, then whatever else the task carries.
func taskDetail(t taskapi.Task, names map[string]string, today string) string {
	parts := []string{"id " + t.ID}
	if t.Priority != "" {
		parts = append(parts, t.Priority)
	}
	if name, ok := names[t.Category]; ok && t.Category != "" {
		parts = append(parts, name)
	}
	if t.Due != "" {
		due := "due " + t.Due
		switch {
		case t.Status != taskapi.StatusDone && views.Overdue(t.Due, today):
			due += ", overdue"
		case t.Status != taskapi.StatusDone && views.DueSoon(t.Due, today):
			due += ", soon"
		}
		parts = append(parts, due)
	}
	return strings.Join(parts, " · ")
}

// =============================================================================
// task add
// =============================================================================

func runTaskAddCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	title := strings.Join(args, " ")
	priority := taskPriority
	if priority == "" {
		priority = taskapi.PriorityMedium
	}

	form := forms.Task{Title: title, Desc: taskDesc, Priority: priority, Due: taskDue}
	if errs := forms.Check(form); !errs.Valid() {
		failValidation(errs)
	}

	categoryID := ""
	if taskCategory != "" {
		ctx, cancel := app.ctx()
		categories, listErr := app.client.ListCategories(ctx)
		cancel()
		if listErr != nil {
			fail(listErr)
		}
		categoryID, err = resolveCategory(categories, taskCategory)
		if err != nil {
			fail(err)
		}
	}

	draft := taskapi.TaskDraft{
		Title:    title,
		Desc:     taskDesc,
		Category: categoryID,
		Priority: priority,
		Due:      taskDue,
	}

	var created taskapi.Task
	err = ux.WithSpinner("Creating the task", func() error {
		ctx, cancel := app.ctx()
		defer cancel()
		var createErr error
		created, createErr = app.client.CreateTask(ctx, draft)
		return createErr
	})
	if err != nil {
		fail(err)
	}

	app.logger.Info("task created", "id", created.ID, "title", created.Title)
	ux.Success(fmt.Sprintf("Created %q", created.Title))
	ux.Muted("id " + created.ID)
}

// =============================================================================
// task edit
// =============================================================================

// runTaskEditCommand overlays the changed flags onto the task's current
// fields and sends the whole record back.
func runTaskEditCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	id, err := validation.SanitizeID(args[0])
	if err != nil {
		fail(err)
	}
	current, err := findTask(app, id)
	if err != nil {
		fail(err)
	}

	draft := taskapi.TaskDraft{
		Title:    current.Title,
		Desc:     current.Desc,
		Category: current.Category,
		Priority: current.Priority,
		Status:   current.Status,
		Due:      current.Due,
	}
	if cmd.Flags().Changed("title") {
		draft.Title = taskTitle
	}
	if cmd.Flags().Changed("desc") {
		draft.Desc = taskDesc
	}
	if cmd.Flags().Changed("priority") {
		draft.Priority = taskPriority
	}
	if cmd.Flags().Changed("due") {
		draft.Due = taskDue
	}
	if cmd.Flags().Changed("category") {
		ctx, cancel := app.ctx()
		categories, listErr := app.client.ListCategories(ctx)
		cancel()
		if listErr != nil {
			fail(listErr)
		}
		draft.Category, err = resolveCategory(categories, taskCategory)
		if err != nil {
			fail(err)
		}
	}

	form := forms.Task{Title: draft.Title, Desc: draft.Desc, Priority: draft.Priority, Due: draft.Due}
	if errs := forms.Check(form); !errs.Valid() {
		failValidation(errs)
	}

	var updated taskapi.Task
	err = ux.WithSpinner("Saving the task", func() error {
		ctx, cancel := app.ctx()
		defer cancel()
		var updateErr error
		updated, updateErr = app.client.UpdateTask(ctx, current.ID, draft)
		return updateErr
	})
	if err != nil {
		fail(err)
	}

	ux.Success(fmt.Sprintf("Saved %q", updated.Title))
}

// =============================================================================
// task done
// =============================================================================

func runTaskDoneCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	id, err := validation.SanitizeID(args[0])
	if err != nil {
		fail(err)
	}
	current, err := findTask(app, id)
	if err != nil {
		fail(err)
	}

	target := taskapi.StatusDone
	if taskUndo {
		target = taskapi.StatusPending
	}
	if current.Status == target {
		ux.Muted(fmt.Sprintf("%q is already %s.", current.Title, target))
		return
	}

	var updated taskapi.Task
	err = ux.WithSpinner("Updating the task", func() error {
		ctx, cancel := app.ctx()
		defer cancel()
		var statusErr error
		updated, statusErr = app.client.SetTaskStatus(ctx, current, target)
		return statusErr
	})
	if err != nil {
		fail(err)
	}

	if updated.Status == taskapi.StatusDone {
		ux.Success(fmt.Sprintf("Done: %q", updated.Title))
	} else {
		ux.Success(fmt.Sprintf("Back to pending: %q", updated.Title))
	}
}

// =============================================================================
// task rm
// =============================================================================

func runTaskRmCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	id, err := validation.SanitizeID(args[0])
	if err != nil {
		fail(err)
	}
	current, err := findTask(app, id)
	if err != nil {
		fail(err)
	}

	if !assumeYes {
		ok, confirmErr := ux.Confirm(fmt.Sprintf("Delete task %q?", current.Title))
		if confirmErr != nil {
			fail(confirmErr)
		}
		if !ok {
			return
		}
	}

	err = ux.WithSpinner("Deleting the task", func() error {
		ctx, cancel := app.ctx()
		defer cancel()
		return app.client.DeleteTask(ctx, current.ID)
	})
	if err != nil {
		fail(err)
	}

	app.logger.Info("task deleted", "id", current.ID)
	ux.Success("Task deleted")
}
