// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package taskapi

import (
	"context"
	"net/http"
)

// ListTasks returns every task of the authenticated user, newest first
// (the server orders by creation time descending).
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var wire []wireTask
	if err := c.do(ctx, "list tasks", http.MethodGet, "/api/tasks", nil, &wire); err != nil {
		return nil, err
	}

	tasks := make([]Task, 0, len(wire))
	for _, w := range wire {
		tasks = append(tasks, taskFromWire(w))
	}
	return tasks, nil
}

// CreateTask creates a task from the draft and returns the server's copy,
// which carries the assigned ID and creation timestamp. Callers replace
// their local state with the returned task rather than trusting the draft.
func (c *Client) CreateTask(ctx context.Context, draft TaskDraft) (Task, error) {
	var wire wireTask
	if err := c.do(ctx, "create task", http.MethodPost, "/api/tasks", draft.payload(), &wire); err != nil {
		return Task{}, err
	}
	return taskFromWire(wire), nil
}

// UpdateTask overwrites the task's fields with the draft and returns the
// server's copy.
func (c *Client) UpdateTask(ctx context.Context, id string, draft TaskDraft) (Task, error) {
	if err := checkID("update task", id); err != nil {
		return Task{}, err
	}
	var wire wireTask
	if err := c.do(ctx, "update task", http.MethodPut, "/api/tasks/"+id, draft.payload(), &wire); err != nil {
		return Task{}, err
	}
	return taskFromWire(wire), nil
}

// SetTaskStatus flips just the completion state of a task, re-sending the
// task's other fields unchanged.
func (c *Client) SetTaskStatus(ctx context.Context, task Task, status string) (Task, error) {
	draft := DraftOf(task)
	draft.Status = status
	return c.UpdateTask(ctx, task.ID, draft)
}

// DeleteTask removes the task. Deleting is permanent; confirmation belongs
// to the surface that asked, not to this client.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := checkID("delete task", id); err != nil {
		return err
	}
	return c.do(ctx, "delete task", http.MethodDelete, "/api/tasks/"+id, nil, nil)
}
