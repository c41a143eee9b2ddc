// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for local form validation.

package forms

import (
	"strings"
	"testing"
)

// =============================================================================
// Login Tests
// =============================================================================

func TestCheck_Login_Valid(t *testing.T) {
	errs := Check(Login{Username: "maya", Password: "secret123"})
	if !errs.Valid() {
		t.Errorf("expected valid login form, got %v", errs)
	}
}

func TestCheck_Login_MissingFields(t *testing.T) {
	errs := Check(Login{})
	if errs.Valid() {
		t.Fatal("expected violations for empty login form")
	}
	if _, ok := errs["Username"]; !ok {
		t.Errorf("expected Username violation, got %v", errs)
	}
	if _, ok := errs["Password"]; !ok {
		t.Errorf("expected Password violation, got %v", errs)
	}
}

func TestCheck_Login_NoLengthRules(t *testing.T) {
	// The server decides whether credentials are right; login only
	// requires presence, so a one-character password passes locally.
	errs := Check(Login{Username: "m", Password: "x"})
	if !errs.Valid() {
		t.Errorf("login should not enforce lengths, got %v", errs)
	}
}

// =============================================================================
// Register Tests
// =============================================================================

func TestCheck_Register_Valid(t *testing.T) {
	errs := Check(Register{Username: "maya", Password: "secret123", Confirm: "secret123"})
	if !errs.Valid() {
		t.Errorf("expected valid register form, got %v", errs)
	}
}

func TestCheck_Register_ShortUsername(t *testing.T) {
	errs := Check(Register{Username: "m", Password: "secret123", Confirm: "secret123"})
	if errs.Valid() {
		t.Fatal("expected violation for 1-character username")
	}
	if msg := errs["Username"]; msg != "Must be at least 2 characters" {
		t.Errorf("Username message = %q", msg)
	}
}

func TestCheck_Register_ShortPassword(t *testing.T) {
	errs := Check(Register{Username: "maya", Password: "12345", Confirm: "12345"})
	if errs.Valid() {
		t.Fatal("expected violation for 5-character password")
	}
	if msg := errs["Password"]; msg != "Must be at least 6 characters" {
		t.Errorf("Password message = %q", msg)
	}
}

func TestCheck_Register_ConfirmMismatch(t *testing.T) {
	errs := Check(Register{Username: "maya", Password: "secret123", Confirm: "secret124"})
	if errs.Valid() {
		t.Fatal("expected violation for mismatched confirmation")
	}
	if msg := errs["Confirm"]; msg != "Passwords do not match" {
		t.Errorf("Confirm message = %q", msg)
	}
}

func TestCheck_Register_BoundaryLengths(t *testing.T) {
	// Exactly at the minimums: valid.
	errs := Check(Register{Username: "ab", Password: "123456", Confirm: "123456"})
	if !errs.Valid() {
		t.Errorf("minimum lengths should pass, got %v", errs)
	}
}

func TestCheck_Register_MultipleViolations(t *testing.T) {
	errs := Check(Register{Username: "m", Password: "pw", Confirm: "other"})
	if len(errs) != 3 {
		t.Errorf("expected 3 violations, got %d: %v", len(errs), errs)
	}
}

// =============================================================================
// Task Tests
// =============================================================================

func TestCheck_Task_Valid(t *testing.T) {
	errs := Check(Task{
		Title:    "Buy milk",
		Desc:     "2 liters",
		Category: "3",
		Priority: "medium",
		Due:      "2026-01-15",
	})
	if !errs.Valid() {
		t.Errorf("expected valid task form, got %v", errs)
	}
}

func TestCheck_Task_MinimalValid(t *testing.T) {
	// Only title and priority are required; desc, category, due are free.
	errs := Check(Task{Title: "Buy milk", Priority: "high"})
	if !errs.Valid() {
		t.Errorf("expected valid minimal task form, got %v", errs)
	}
}

func TestCheck_Task_MissingTitle(t *testing.T) {
	errs := Check(Task{Priority: "medium"})
	if errs.Valid() {
		t.Fatal("expected violation for missing title")
	}
	if msg := errs["Title"]; msg != "This field is required" {
		t.Errorf("Title message = %q", msg)
	}
}

func TestCheck_Task_TitleTooLong(t *testing.T) {
	errs := Check(Task{Title: strings.Repeat("x", 101), Priority: "medium"})
	if errs.Valid() {
		t.Fatal("expected violation for 101-character title")
	}
	if msg := errs["Title"]; msg != "Must be at most 100 characters" {
		t.Errorf("Title message = %q", msg)
	}

	// Exactly 100 is fine.
	if errs := Check(Task{Title: strings.Repeat("x", 100), Priority: "medium"}); !errs.Valid() {
		t.Errorf("100-character title should pass, got %v", errs)
	}
}

func TestCheck_Task_BadPriority(t *testing.T) {
	errs := Check(Task{Title: "Buy milk", Priority: "urgent"})
	if errs.Valid() {
		t.Fatal("expected violation for unknown priority")
	}
	if msg := errs["Priority"]; !strings.Contains(msg, "high medium low") {
		t.Errorf("Priority message = %q", msg)
	}
}

func TestCheck_Task_BadDueDate(t *testing.T) {
	tests := []string{"tomorrow", "2026/01/15", "15-01-2026", "2026-13-40"}
	for _, due := range tests {
		errs := Check(Task{Title: "Buy milk", Priority: "medium", Due: due})
		if errs.Valid() {
			t.Errorf("due %q should be rejected", due)
			continue
		}
		if msg := errs["Due"]; msg != "Use the YYYY-MM-DD format" {
			t.Errorf("Due message for %q = %q", due, msg)
		}
	}
}

func TestCheck_Task_EmptyDueIsValid(t *testing.T) {
	errs := Check(Task{Title: "Buy milk", Priority: "medium", Due: ""})
	if !errs.Valid() {
		t.Errorf("empty due date should pass, got %v", errs)
	}
}

// =============================================================================
// Category Tests
// =============================================================================

func TestCheck_Category_Valid(t *testing.T) {
	errs := Check(Category{Name: "Work", Color: "#6366f1"})
	if !errs.Valid() {
		t.Errorf("expected valid category form, got %v", errs)
	}
}

func TestCheck_Category_MissingName(t *testing.T) {
	errs := Check(Category{Color: DefaultColor})
	if errs.Valid() {
		t.Fatal("expected violation for missing name")
	}
	if _, ok := errs["Name"]; !ok {
		t.Errorf("expected Name violation, got %v", errs)
	}
}

func TestCheck_Category_NameTooLong(t *testing.T) {
	errs := Check(Category{Name: strings.Repeat("x", 51), Color: DefaultColor})
	if errs.Valid() {
		t.Fatal("expected violation for 51-character name")
	}
}

func TestCheck_Category_ColorOutsidePalette(t *testing.T) {
	errs := Check(Category{Name: "Work", Color: "#123456"})
	if errs.Valid() {
		t.Fatal("expected violation for color outside the palette")
	}
	if msg := errs["Color"]; msg != "Pick a color from the palette" {
		t.Errorf("Color message = %q", msg)
	}
}

func TestCheck_Category_EveryPaletteColorAccepted(t *testing.T) {
	for _, color := range Palette {
		errs := Check(Category{Name: "Work", Color: color})
		if !errs.Valid() {
			t.Errorf("palette color %s rejected: %v", color, errs)
		}
	}
}

// =============================================================================
// Errors / FieldError Tests
// =============================================================================

func TestErrors_First(t *testing.T) {
	errs := Check(Login{})
	if errs.First() == "" {
		t.Error("First() should return a message when violations exist")
	}

	if (Errors{}).First() != "" {
		t.Error("First() should return empty for a valid form")
	}
}

func TestFieldError(t *testing.T) {
	err := FieldError(Register{Username: "m", Password: "secret123", Confirm: "secret123"}, "Username")
	if err == nil {
		t.Fatal("expected an error for the short username")
	}
	if err.Error() != "Must be at least 2 characters" {
		t.Errorf("err = %q", err.Error())
	}

	if err := FieldError(Register{Username: "m", Password: "secret123", Confirm: "secret123"}, "Password"); err != nil {
		t.Errorf("Password is valid, got %v", err)
	}
}

func TestCheck_PointerForm(t *testing.T) {
	errs := Check(&Login{Username: "maya", Password: "pw"})
	if !errs.Valid() {
		t.Errorf("pointer forms should validate too, got %v", errs)
	}
}

// =============================================================================
// Palette Tests
// =============================================================================

func TestPalette_TenColors(t *testing.T) {
	if len(Palette) != 10 {
		t.Errorf("palette has %d colors, want 10", len(Palette))
	}
}

func TestPalette_ContainsServerSeedColors(t *testing.T) {
	// The backend seeds new accounts with categories in these colors.
	seeds := []string{"#6366f1", "#22c55e", "#f59e0b", "#ef4444"}
	for _, seed := range seeds {
		if !InPalette(seed) {
			t.Errorf("seed color %s missing from palette", seed)
		}
	}
}

func TestPalette_DefaultColor(t *testing.T) {
	if DefaultColor != "#6366f1" {
		t.Errorf("DefaultColor = %q, want #6366f1", DefaultColor)
	}
	if !InPalette(DefaultColor) {
		t.Error("DefaultColor must be in the palette")
	}
}

func TestColorName(t *testing.T) {
	if got := ColorName("#6366f1"); got != "Indigo" {
		t.Errorf("ColorName(#6366f1) = %q, want Indigo", got)
	}
	// Colors outside the palette fall back to the hex string.
	if got := ColorName("#bada55"); got != "#bada55" {
		t.Errorf("ColorName(#bada55) = %q, want the hex itself", got)
	}
}

func TestInPalette(t *testing.T) {
	if InPalette("") {
		t.Error("empty string is not a palette color")
	}
	if InPalette("#FFFFFF") {
		t.Error("#FFFFFF is not a palette color")
	}
	for _, c := range Palette {
		if !InPalette(c) {
			t.Errorf("%s should be in its own palette", c)
		}
	}
}
