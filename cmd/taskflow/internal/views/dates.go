// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package views

import "time"

// dateLayout is the wire and display format for due dates.
const dateLayout = "2006-01-02"

// Today returns the local calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(dateLayout)
}

// Overdue reports whether a due date is strictly before today. Tasks
// without a due date are never overdue.
func Overdue(due, today string) bool {
	return due != "" && due < today
}

// DueSoon reports whether the due date falls within [today, today+2d),
// i.e. today or tomorrow. Malformed dates are never "soon".
func DueSoon(due, today string) bool {
	if due == "" {
		return false
	}
	dueDate, err := time.Parse(dateLayout, due)
	if err != nil {
		return false
	}
	todayDate, err := time.Parse(dateLayout, today)
	if err != nil {
		return false
	}
	days := dueDate.Sub(todayDate).Hours() / 24
	return days >= 0 && days < 2
}
