// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

/*
Package views computes the derived task view: which tasks are visible, in
what order, and the aggregate counts shown next to the navigation.

# Problem Statement

The task list is one flat slice owned by the caller. Everything the user
sees is a projection of it: the active view (all / today / pending / done /
one category), a priority filter, a free-text search, and a sort key. The
CLI and the board both need the same projection, and both re-render on
every input change, so the computation must be pure and cheap.

# Solution

Pure functions over ([]taskapi.Task, Query, today). Nothing here mutates
the input slice or keeps state between calls:

	┌────────────┐   Visible(tasks, q, today)   ┌───────────────┐
	│ full slice │ ───────────────────────────▶ │ ordered slice │
	│  (owner:   │                              │  (view filter │
	│   caller)  │   Counts(tasks, today)       │   → priority  │
	│            │ ───────────────────────────▶ │   → search    │
	└────────────┘      stat badges             │   → sort)     │
	                                            └───────────────┘

Dates are plain YYYY-MM-DD strings throughout; lexicographic comparison is
chronological comparison for that layout, so no parsing happens on the
filter path.
*/
package views

import (
	"sort"
	"strings"

	"github.com/AleutianAI/taskflow/pkg/taskapi"
)

// -----------------------------------------------------------------------------
// View
// -----------------------------------------------------------------------------

// View selects which slice of the task list is shown. The built-in views
// are the constants below; a per-category view is built with CategoryView.
type View string

const (
	ViewAll     View = "all"
	ViewToday   View = "today"
	ViewPending View = "pending"
	ViewDone    View = "done"
)

// categoryPrefix marks per-category views, e.g. "category:7".
const categoryPrefix = "category:"

// CategoryView returns the view showing only tasks of one category.
func CategoryView(categoryID string) View {
	return View(categoryPrefix + categoryID)
}

// CategoryID returns the category id of a per-category view, or ("", false)
// for the built-in views.
func (v View) CategoryID() (string, bool) {
	s := string(v)
	if strings.HasPrefix(s, categoryPrefix) {
		return s[len(categoryPrefix):], true
	}
	return "", false
}

// ParseView maps a config or flag string onto a View. Unknown values fall
// back to ViewAll so a stale config can never hide every task.
func ParseView(s string) View {
	switch View(s) {
	case ViewToday, ViewPending, ViewDone:
		return View(s)
	default:
		if strings.HasPrefix(s, categoryPrefix) {
			return View(s)
		}
		return ViewAll
	}
}

// -----------------------------------------------------------------------------
// Sort
// -----------------------------------------------------------------------------

// Sort names the ordering applied after filtering.
type Sort string

const (
	SortCreatedDesc Sort = "created_desc" // newest first (default)
	SortCreatedAsc  Sort = "created_asc"
	SortDueAsc      Sort = "due_asc"
	SortDueDesc     Sort = "due_desc"
	SortPriority    Sort = "priority" // high, then medium, then low
)

// ParseSort maps a config or flag string onto a Sort. Unknown values fall
// back to SortCreatedDesc rather than erroring.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortCreatedAsc, SortDueAsc, SortDueDesc, SortPriority:
		return Sort(s)
	default:
		return SortCreatedDesc
	}
}

// priorityRank orders priorities for SortPriority. Lower is earlier.
func priorityRank(priority string) int {
	switch priority {
	case taskapi.PriorityHigh:
		return 0
	case taskapi.PriorityLow:
		return 2
	default:
		return 1
	}
}

// -----------------------------------------------------------------------------
// Query
// -----------------------------------------------------------------------------

// Query bundles every input that shapes the visible list.
type Query struct {
	// View is the active view filter. "" behaves like ViewAll.
	View View

	// Priority keeps only tasks of one priority. "" or "all" keeps every
	// priority.
	Priority string

	// Search is matched case-insensitively against title OR description.
	// "" matches everything.
	Search string

	// Sort names the ordering. Unknown values behave like SortCreatedDesc.
	Sort Sort
}

// -----------------------------------------------------------------------------
// Visible
// -----------------------------------------------------------------------------

// Visible computes the ordered list of tasks the user should see.
//
// # Description
//
// Applies, in this fixed order: the view filter, the priority filter, the
// search, and finally the sort. The input slice is never modified; the
// result is a fresh slice sharing the task values.
//
// Filter semantics:
//   - ViewToday keeps tasks due exactly today; ViewPending and ViewDone
//     keep tasks of that status; a category view keeps tasks whose
//     Category equals its id; ViewAll (and "") keeps everything.
//   - A non-empty, non-"all" Priority keeps only that priority.
//   - A non-empty Search keeps tasks whose title or description contains
//     it, case-insensitively.
//
// Sort semantics:
//   - SortCreatedDesc / SortCreatedAsc order by CreatedAt.
//   - SortDueAsc / SortDueDesc order by the due string; tasks without a
//     due date sort after all dated tasks in BOTH directions.
//   - SortPriority orders high, medium, low.
//
// Ties keep their input order (stable sort), so two tasks created in the
// same millisecond don't swap between renders.
//
// # Inputs
//
//   - tasks: the full normalized task list.
//   - q: the active filters and sort key.
//   - today: the local calendar date as YYYY-MM-DD, from Today().
//
// # Outputs
//
//   - []taskapi.Task: the visible tasks, ordered. Never nil.
func Visible(tasks []taskapi.Task, q Query, today string) []taskapi.Task {
	visible := make([]taskapi.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesView(t, q.View, today) && matchesPriority(t, q.Priority) && matchesSearch(t, q.Search) {
			visible = append(visible, t)
		}
	}

	sortTasks(visible, q.Sort)
	return visible
}

func matchesView(t taskapi.Task, v View, today string) bool {
	switch v {
	case ViewAll, "":
		return true
	case ViewToday:
		return t.Due == today
	case ViewPending:
		return t.Status == taskapi.StatusPending
	case ViewDone:
		return t.Status == taskapi.StatusDone
	default:
		if id, ok := v.CategoryID(); ok {
			return t.Category == id
		}
		return true
	}
}

func matchesPriority(t taskapi.Task, priority string) bool {
	if priority == "" || priority == "all" {
		return true
	}
	return t.Priority == priority
}

func matchesSearch(t taskapi.Task, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Desc), needle)
}

func sortTasks(tasks []taskapi.Task, key Sort) {
	switch key {
	case SortCreatedAsc:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt < tasks[j].CreatedAt
		})
	case SortDueAsc:
		sort.SliceStable(tasks, func(i, j int) bool {
			return lessDue(tasks[i].Due, tasks[j].Due, true)
		})
	case SortDueDesc:
		sort.SliceStable(tasks, func(i, j int) bool {
			return lessDue(tasks[i].Due, tasks[j].Due, false)
		})
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return priorityRank(tasks[i].Priority) < priorityRank(tasks[j].Priority)
		})
	default: // SortCreatedDesc
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt > tasks[j].CreatedAt
		})
	}
}

// lessDue compares due strings with the empty-last rule: a task with no
// due date sorts after every dated task regardless of direction.
func lessDue(a, b string, asc bool) bool {
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	if asc {
		return a < b
	}
	return a > b
}

// -----------------------------------------------------------------------------
// Counts
// -----------------------------------------------------------------------------

// Summary holds the aggregate counts for the stat badges. For any task
// list, Pending+Done = Total and Overdue <= Pending.
type Summary struct {
	Total    int
	DueToday int
	Pending  int
	Done     int

	// Overdue counts tasks due strictly before today that are still
	// pending. Done tasks are never overdue.
	Overdue int
}

// Counts computes the Summary over the full task list.
//
// # Inputs
//
//   - tasks: the full normalized task list (not the visible subset).
//   - today: the local calendar date as YYYY-MM-DD, from Today().
func Counts(tasks []taskapi.Task, today string) Summary {
	var s Summary
	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Due == today {
			s.DueToday++
		}
		if t.Status == taskapi.StatusDone {
			s.Done++
			continue
		}
		s.Pending++
		if Overdue(t.Due, today) {
			s.Overdue++
		}
	}
	return s
}
