// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package taskapi

import (
	"strconv"
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// Wire -> Client
// -----------------------------------------------------------------------------

// Normalize fills the defaulted fields of a task. It is a total function and
// applying it twice yields the same result as applying it once.
func Normalize(t Task) Task {
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	return t
}

// taskFromWire maps a backend task onto the client representation:
// numeric IDs become decimal strings, null category and due date become "",
// and the created_at timestamp becomes epoch milliseconds.
func taskFromWire(w wireTask) Task {
	t := Task{
		ID:        strconv.FormatInt(w.ID, 10),
		Title:     w.Title,
		Desc:      w.Desc,
		Priority:  w.Priority,
		Status:    w.Status,
		CreatedAt: parseCreatedAt(w.CreatedAt),
	}
	if w.CategoryID != nil {
		t.Category = strconv.FormatInt(*w.CategoryID, 10)
	}
	if w.DueDate != nil {
		t.Due = *w.DueDate
	}
	return Normalize(t)
}

// categoryFromWire maps a backend category onto the client representation.
func categoryFromWire(w wireCategory) Category {
	return Category{
		ID:    strconv.FormatInt(w.ID, 10),
		Name:  w.Name,
		Color: w.Color,
	}
}

// createdAtLayouts are tried in order when parsing created_at. The backend
// emits naive ISO-8601 (with optional fractional seconds) in UTC; the
// RFC 3339 form is accepted in case a proxy rewrites timestamps.
var createdAtLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// parseCreatedAt converts a server timestamp to epoch milliseconds.
// Unparseable input yields 0 so the task still renders, sorted oldest.
func parseCreatedAt(s string) int64 {
	for _, layout := range createdAtLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UnixMilli()
		}
	}
	return 0
}

// -----------------------------------------------------------------------------
// Client -> Wire
// -----------------------------------------------------------------------------

// payload maps form values onto the outbound wire body: the title is
// trimmed, an empty category becomes a null category_id, and an empty due
// date becomes a null due_date.
func (d TaskDraft) payload() taskPayload {
	p := taskPayload{
		Title:    strings.TrimSpace(d.Title),
		Desc:     d.Desc,
		Priority: d.Priority,
		Status:   d.Status,
	}
	if id, err := strconv.ParseInt(d.Category, 10, 64); err == nil && d.Category != "" {
		p.CategoryID = &id
	}
	if d.Due != "" {
		due := d.Due
		p.DueDate = &due
	}
	return p
}

// payload maps category form values onto the outbound wire body.
func (d CategoryDraft) payload() categoryPayload {
	return categoryPayload{
		Name:  strings.TrimSpace(d.Name),
		Color: d.Color,
	}
}

// DraftOf converts an existing task back into form values for editing.
func DraftOf(t Task) TaskDraft {
	return TaskDraft{
		Title:    t.Title,
		Desc:     t.Desc,
		Category: t.Category,
		Priority: t.Priority,
		Status:   t.Status,
		Due:      t.Due,
	}
}
