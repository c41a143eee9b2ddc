// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation guards user-provided inputs that end up in sensitive
// places. Resource ids arriving from shell arguments are interpolated into
// request paths carrying the bearer token; validating their shape first
// keeps a stray argument from steering an authenticated request at an
// arbitrary endpoint.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// idPattern matches server-assigned resource ids. The server hands out
// integer ids, so anything else in an id position is a caller mistake.
// 19 digits covers the full int64 range.
var idPattern = regexp.MustCompile(`^[0-9]{1,19}$`)

// ValidateID checks that a task or category id has the shape the server
// hands out.
//
// Example:
//
//	if err := validation.ValidateID(id); err != nil {
//	    return err
//	}
//	// Safe to place in a request path
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid id %q (ids are plain numbers, see `taskflow task list`)", id)
	}
	return nil
}

// SanitizeID trims surrounding whitespace and validates. Use it on ids
// coming straight from argv, where copy-pasted values often carry spaces.
//
//	id, err := validation.SanitizeID(args[0])
//	if err != nil {
//	    return err
//	}
func SanitizeID(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if err := ValidateID(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}
