// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package taskapi

// -----------------------------------------------------------------------------
// Client Representation
// -----------------------------------------------------------------------------

// Task priority levels, ordered high to low for display.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task lifecycle states.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Task is the client-side representation of a task. All identifiers are
// strings and optional fields use "" rather than null, so downstream view
// code never branches on pointer-ness.
type Task struct {
	// ID is the server identifier rendered as a decimal string.
	ID string

	// Title is the task headline. Never empty for server-returned tasks.
	Title string

	// Desc is the free-form description, "" when absent.
	Desc string

	// Category is the owning category ID as a string, "" when uncategorized.
	Category string

	// Priority is one of high, medium, low. Defaults to medium.
	Priority string

	// Status is pending or done. Defaults to pending.
	Status string

	// Due is the due date in YYYY-MM-DD form, "" when the task has none.
	Due string

	// CreatedAt is the creation instant in epoch milliseconds, 0 when the
	// server timestamp could not be parsed.
	CreatedAt int64
}

// Category is the client-side representation of a task category.
type Category struct {
	ID    string
	Name  string
	Color string
}

// Account describes the authenticated user as reported by the server.
type Account struct {
	ID       string
	Username string
}

// TaskDraft carries task form values toward the server. Empty strings mean
// "not set"; the outbound mapping converts them to wire nulls.
type TaskDraft struct {
	Title    string
	Desc     string
	Category string
	Priority string
	Status   string
	Due      string
}

// CategoryDraft carries category form values toward the server.
type CategoryDraft struct {
	Name  string
	Color string
}

// -----------------------------------------------------------------------------
// Wire Representation
// -----------------------------------------------------------------------------

// wireTask is a task as the backend emits it. The backend writes due_date as
// "" or null interchangeably and created_at as a naive ISO-8601 timestamp.
type wireTask struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Desc       string  `json:"desc"`
	CategoryID *int64  `json:"category_id"`
	Priority   string  `json:"priority"`
	Status     string  `json:"status"`
	DueDate    *string `json:"due_date"`
	CreatedAt  string  `json:"created_at"`
}

// wireCategory is a category as the backend emits it.
type wireCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// taskPayload is the outbound task body for create and update.
type taskPayload struct {
	Title      string  `json:"title"`
	Desc       string  `json:"desc"`
	CategoryID *int64  `json:"category_id"`
	Priority   string  `json:"priority"`
	Status     string  `json:"status"`
	DueDate    *string `json:"due_date"`
}

// categoryPayload is the outbound category body for create and update.
type categoryPayload struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// credentialsPayload is the outbound body for login and register.
type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authResponse is the body returned by login and register.
type authResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// accountResponse is the body returned by the me endpoint.
type accountResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// errorResponse is the error envelope used by every endpoint.
type errorResponse struct {
	Message string `json:"message"`
}
