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
Package forms declares the input forms and validates them locally, before
any network call happens.

# Problem Statement

The same four forms (login, register, task, category) are filled in from
two very different surfaces: huh fields inside the board and flags on CLI
commands. Scattering per-field rule checks across both surfaces drifts
immediately.

# Solution

One typed struct per form carrying declarative validator tags, and one
Check function evaluating them into a field→message map any surface can
render. An empty map means the form may be submitted; a non-empty map
aborts submission with zero network traffic.

	errs := forms.Check(forms.Register{Username: "m", Password: "pw", Confirm: "pw"})
	// errs = {"Username": "Must be at least 2 characters",
	//         "Password": "Must be at least 6 characters"}

The length minimums mirror what the server enforces (username >= 2,
password >= 6), so a form that passes locally is not bounced by the
server for length reasons.
*/
package forms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// formValidate is the validator instance for all form types.
// Initialized in init() with the palette validator.
var formValidate *validator.Validate

func init() {
	formValidate = validator.New()

	_ = formValidate.RegisterValidation("palette", validatePalette)
}

// validatePalette accepts only colors from the fixed palette. Empty values
// are left to the required tag.
func validatePalette(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	if color == "" {
		return true
	}
	return InPalette(color)
}

// =============================================================================
// Form Types
// =============================================================================

// Login carries the sign-in form. The server decides whether the
// credentials are right; locally both fields just have to be present.
type Login struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Register carries the account-creation form.
type Register struct {
	Username string `validate:"required,min=2,max=50"`
	Password string `validate:"required,min=6"`
	Confirm  string `validate:"required,eqfield=Password"`
}

// Task carries the task create/edit form. Category is a client-side id
// string ("" means uncategorized) and is not validated here: the ids come
// from the server's own category list.
type Task struct {
	Title    string `validate:"required,max=100"`
	Desc     string
	Category string
	Priority string `validate:"required,oneof=high medium low"`
	Due      string `validate:"omitempty,datetime=2006-01-02"`
}

// Category carries the category-creation form. Color must come from the
// fixed palette; server-returned colors are displayed as-is and never
// re-validated.
type Category struct {
	Name  string `validate:"required,max=50"`
	Color string `validate:"required,palette"`
}

// =============================================================================
// Validation
// =============================================================================

// Errors maps struct field names ("Username", "Title", ...) to a
// user-facing message. An empty map means the form is valid.
type Errors map[string]string

// Valid reports whether the form had no violations.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// First returns one message for compact surfaces (a CLI error line).
// Order is not specified when several fields fail.
func (e Errors) First() string {
	for _, msg := range e {
		return msg
	}
	return ""
}

// Check validates a form against its declarative tags.
//
// # Description
//
// Runs the struct's validator tags and converts every violation into a
// user-facing message keyed by the Go field name. Both the board's huh
// fields and the CLI commands consult the same result, so the two
// surfaces cannot drift apart on what counts as a valid form.
//
// # Inputs
//
//   - form: one of the form structs above (value or pointer).
//
// # Outputs
//
//   - Errors: field→message map; empty when the form may be submitted.
func Check(form any) Errors {
	errs := Errors{}

	err := formValidate.Struct(form)
	if err == nil {
		return errs
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		// Non-validation failure (e.g. a non-struct argument). Surface it
		// on a reserved key instead of panicking mid-form.
		errs["_form"] = err.Error()
		return errs
	}

	for _, v := range violations {
		errs[v.Field()] = message(v)
	}
	return errs
}

// FieldError runs Check and reports a single field's violation as an
// error, the shape huh's Validate functions want.
func FieldError(form any, field string) error {
	if msg, ok := Check(form)[field]; ok {
		return errors.New(msg)
	}
	return nil
}

// message converts one violation into user-facing text.
func message(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", v.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", v.Param())
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", v.Param())
	case "datetime":
		return "Use the YYYY-MM-DD format"
	case "palette":
		return "Pick a color from the palette"
	default:
		return fmt.Sprintf("Invalid value for %s", v.Field())
	}
}
