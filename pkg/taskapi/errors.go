// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package taskapi

import (
	"bytes"
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Error Types
// -----------------------------------------------------------------------------

// ErrorKind categorizes API failures for programmatic handling.
type ErrorKind int

const (
	// KindRequestFailed indicates the server rejected the request.
	KindRequestFailed ErrorKind = iota

	// KindUnauthorized indicates a 401 on an authenticated request.
	// The local session has already been cleared when this is returned.
	KindUnauthorized

	// KindConnection indicates the server is not reachable.
	KindConnection

	// KindCancelled indicates the operation was cancelled.
	KindCancelled

	// KindDecode indicates the server returned unexpected data.
	KindDecode
)

// String returns the error kind as a string for logging.
func (k ErrorKind) String() string {
	switch k {
	case KindRequestFailed:
		return "REQUEST_FAILED"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindConnection:
		return "CONNECTION_FAILED"
	case KindCancelled:
		return "CANCELLED"
	case KindDecode:
		return "INVALID_RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// Error provides structured error information for API operations.
type Error struct {
	// Kind categorizes the error for programmatic handling.
	Kind ErrorKind

	// Op is the logical operation that failed (e.g., "login", "create task").
	Op string

	// Status is the HTTP status code, 0 when no response arrived.
	Status int

	// Message is a human-readable description. When the server supplied
	// one in its error payload, that message is used verbatim.
	Message string

	// Detail provides technical information for debugging.
	Detail string

	// Remediation suggests how to fix the issue.
	Remediation string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// FullError returns a detailed error message including remediation.
func (e *Error) FullError() string {
	var buf bytes.Buffer
	buf.WriteString(e.Message)
	if e.Op != "" {
		buf.WriteString(fmt.Sprintf(" (operation: %s)", e.Op))
	}
	if e.Detail != "" {
		buf.WriteString("\n\nDetails: ")
		buf.WriteString(e.Detail)
	}
	if e.Remediation != "" {
		buf.WriteString("\n\nTo fix:\n")
		buf.WriteString(e.Remediation)
	}
	return buf.String()
}

// IsUnauthorized reports whether err carries KindUnauthorized, meaning the
// session was invalidated by the server and has been cleared locally.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindUnauthorized
}

// IsConnection reports whether err indicates the server was unreachable.
func IsConnection(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindConnection
}
