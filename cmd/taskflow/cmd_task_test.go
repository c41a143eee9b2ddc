// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the task list rendering helpers.

package main

import (
	"testing"

	"github.com/AleutianAI/taskflow/pkg/taskapi"
	"github.com/AleutianAI/taskflow/pkg/ux"
)

func TestTaskIcon(t *testing.T) {
	done := taskapi.Task{Status: taskapi.StatusDone}
	if taskIcon(done) != ux.IconSuccess {
		t.Error("done tasks get the success icon")
	}
	pending := taskapi.Task{Status: taskapi.StatusPending}
	if taskIcon(pending) != ux.IconPending {
		t.Error("pending tasks get the pending icon")
	}
}

func TestTaskDetail(t *testing.T) {
	names := map[string]string{"3": "Work"}

	tests := []struct {
		name string
		task taskapi.Task
		want string
	}{
		{
			"bare task",
			taskapi.Task{ID: "1"},
			"id 1",
		},
		{
			"everything set",
			taskapi.Task{ID: "2", Priority: "high", Category: "3", Status: "pending", Due: "2026-04-01"},
			"id 2 · high · Work · due 2026-04-01",
		},
		{
			"overdue pending task is flagged",
			taskapi.Task{ID: "4", Priority: "low", Status: "pending", Due: "2026-03-01"},
			"id 4 · low · due 2026-03-01, overdue",
		},
		{
			"overdue done task is not flagged",
			taskapi.Task{ID: "5", Priority: "low", Status: "done", Due: "2026-03-01"},
			"id 5 · low · due 2026-03-01",
		},
		{
			"due today is soon",
			taskapi.Task{ID: "6", Priority: "medium", Status: "pending", Due: "2026-03-10"},
			"id 6 · medium · due 2026-03-10, soon",
		},
		{
			"unknown category is dropped",
			taskapi.Task{ID: "7", Category: "99"},
			"id 7",
		},
	}

	today := "2026-03-10"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := taskDetail(tt.task, names, today); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
