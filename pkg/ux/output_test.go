// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// Helper to capture stdout
func captureStdout(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// Helper to capture stderr
func captureStderr(f func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	f()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// =============================================================================
// Icon.Render Tests
// =============================================================================

func TestIcon_Render_Success(t *testing.T) {
	result := IconSuccess.Render()
	if result == "" {
		t.Error("expected non-empty result for IconSuccess")
	}
}

func TestIcon_Render_Warning(t *testing.T) {
	result := IconWarning.Render()
	if result == "" {
		t.Error("expected non-empty result for IconWarning")
	}
}

func TestIcon_Render_Error(t *testing.T) {
	result := IconError.Render()
	if result == "" {
		t.Error("expected non-empty result for IconError")
	}
}

func TestIcon_Render_Pending(t *testing.T) {
	result := IconPending.Render()
	if result == "" {
		t.Error("expected non-empty result for IconPending")
	}
}

func TestIcon_Render_Done(t *testing.T) {
	result := IconDone.Render()
	if result == "" {
		t.Error("expected non-empty result for IconDone")
	}
}

func TestIcon_Render_Default(t *testing.T) {
	// Icons that don't have specific styling render as-is
	icons := []Icon{IconArrow, IconBullet, IconFlag}
	for _, icon := range icons {
		result := icon.Render()
		if result != string(icon) {
			t.Errorf("expected %q for %q, got %q", string(icon), icon, result)
		}
	}
}

// =============================================================================
// PriorityIcon Tests
// =============================================================================

func TestPriorityIcon_KnownPriorities(t *testing.T) {
	for _, priority := range []string{"high", "medium", "low"} {
		result := PriorityIcon(priority)
		if result == "" {
			t.Errorf("expected non-empty icon for priority %q", priority)
		}
		if !strings.Contains(result, string(IconFlag)) {
			t.Errorf("expected flag glyph in icon for priority %q, got %q", priority, result)
		}
	}
}

func TestPriorityIcon_UnknownFallsBackToMedium(t *testing.T) {
	result := PriorityIcon("urgent")
	if result != PriorityIcon("medium") {
		t.Errorf("expected unknown priority to render like medium, got %q", result)
	}
}

// =============================================================================
// Title Tests
// =============================================================================

func TestTitle_MachineMode(t *testing.T) {
	// Save and restore personality
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMachine)

	output := captureStdout(func() {
		Title("Test Title")
	})

	// In machine mode, Title should output nothing
	if output != "" {
		t.Errorf("expected no output in machine mode, got %q", output)
	}
}

func TestTitle_FullMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityFull)

	output := captureStdout(func() {
		Title("Test Title")
	})

	if output == "" {
		t.Error("expected styled output in full mode")
	}
}

// =============================================================================
// Success Tests
// =============================================================================

func TestSuccess_MachineMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMachine)

	output := captureStdout(func() {
		Success("Task created")
	})

	if output != "OK: Task created\n" {
		t.Errorf("expected 'OK: Task created', got %q", output)
	}
}

func TestSuccess_MinimalMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMinimal)

	output := captureStdout(func() {
		Success("Task created")
	})

	if output == "" {
		t.Error("expected non-empty output in minimal mode")
	}
}

func TestSuccess_FullMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityFull)

	output := captureStdout(func() {
		Success("Task created")
	})

	if output == "" {
		t.Error("expected styled output in full mode")
	}
}

// =============================================================================
// Warning Tests
// =============================================================================

func TestWarning_MachineMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMachine)

	output := captureStderr(func() {
		Warning("Task is overdue")
	})

	if output != "WARN: Task is overdue\n" {
		t.Errorf("expected 'WARN: Task is overdue', got %q", output)
	}
}

func TestWarning_MinimalMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMinimal)

	output := captureStdout(func() {
		Warning("Task is overdue")
	})

	if output == "" {
		t.Error("expected non-empty output in minimal mode")
	}
}

func TestWarning_FullMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityFull)

	output := captureStdout(func() {
		Warning("Task is overdue")
	})

	if output == "" {
		t.Error("expected styled output in full mode")
	}
}

// =============================================================================
// Error Tests
// =============================================================================

func TestError_MachineMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMachine)

	output := captureStderr(func() {
		Error("Request failed")
	})

	if output != "ERROR: Request failed\n" {
		t.Errorf("expected 'ERROR: Request failed', got %q", output)
	}
}

func TestError_MinimalMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMinimal)

	output := captureStdout(func() {
		Error("Request failed")
	})

	if output == "" {
		t.Error("expected non-empty output in minimal mode")
	}
}

func TestError_FullMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityFull)

	output := captureStdout(func() {
		Error("Request failed")
	})

	if output == "" {
		t.Error("expected styled output in full mode")
	}
}

// =============================================================================
// Info Tests
// =============================================================================

func TestInfo_MachineMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMachine)

	output := captureStdout(func() {
		Info("Signed in as maya")
	})

	if output != "Signed in as maya\n" {
		t.Errorf("expected plain 'Signed in as maya', got %q", output)
	}
}

func TestInfo_FullMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityFull)

	output := captureStdout(func() {
		Info("Signed in as maya")
	})

	if output == "" {
		t.Error("expected styled output in full mode")
	}
}

// =============================================================================
// Muted Tests
// =============================================================================

func TestMuted_MachineMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMachine)

	output := captureStdout(func() {
		Muted("Secondary text")
	})

	// In machine mode, Muted should output nothing
	if output != "" {
		t.Errorf("expected no output in machine mode, got %q", output)
	}
}

func TestMuted_FullMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityFull)

	output := captureStdout(func() {
		Muted("Secondary text")
	})

	if output == "" {
		t.Error("expected styled output in full mode")
	}
}

// =============================================================================
// Box Tests
// =============================================================================

func TestBox_MachineMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMachine)

	output := captureStdout(func() {
		Box("Server", "http://localhost:5000")
	})

	if output != "Server: http://localhost:5000\n" {
		t.Errorf("expected 'Server: http://localhost:5000', got %q", output)
	}
}

func TestBox_FullMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityFull)

	output := captureStdout(func() {
		Box("Server", "http://localhost:5000")
	})

	if output == "" {
		t.Error("expected styled box output in full mode")
	}
}

// =============================================================================
// TaskLine Tests
// =============================================================================

func TestTaskLine_MachineMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMachine)

	output := captureStdout(func() {
		TaskLine(IconPending, "Buy groceries", "due 2026-01-15")
	})

	if output != "○\tBuy groceries\tdue 2026-01-15\n" {
		t.Errorf("expected tab-separated output, got %q", output)
	}
}

func TestTaskLine_MinimalMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMinimal)

	output := captureStdout(func() {
		TaskLine(IconPending, "Buy groceries", "due 2026-01-15")
	})

	if output == "" {
		t.Error("expected non-empty output in minimal mode")
	}
}

func TestTaskLine_FullMode_WithDetail(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityFull)

	output := captureStdout(func() {
		TaskLine(IconClock, "Buy groceries", "overdue")
	})

	if output == "" {
		t.Error("expected styled output with detail in full mode")
	}
	if !strings.Contains(output, "overdue") {
		t.Errorf("expected detail in output, got %q", output)
	}
}

func TestTaskLine_FullMode_NoDetail(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityFull)

	output := captureStdout(func() {
		TaskLine(IconDone, "Buy groceries", "")
	})

	if output == "" {
		t.Error("expected styled output without detail in full mode")
	}
}

// =============================================================================
// Summary Tests
// =============================================================================

func TestSummary_MachineMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityMachine)

	output := captureStdout(func() {
		Summary(5, 2, 1, 7)
	})

	if output != "SUMMARY: pending=5 done=2 overdue=1 total=7\n" {
		t.Errorf("expected machine format summary, got %q", output)
	}
}

func TestSummary_FullMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonalityLevel(orig.Level)

	SetPersonalityLevel(PersonalityFull)

	output := captureStdout(func() {
		Summary(10, 0, 0, 10)
	})

	if output == "" {
		t.Error("expected styled summary output in full mode")
	}
}

// =============================================================================
// Style Constants Tests
// =============================================================================

func TestColorConstants(t *testing.T) {
	// Verify color constants are defined
	colors := []interface{}{
		ColorIndigoBright,
		ColorIndigo,
		ColorViolet,
		ColorSky,
		ColorSlate,
		ColorSlateDark,
		ColorInk,
		ColorSuccess,
		ColorWarning,
		ColorError,
		ColorMuted,
		ColorPriorityHigh,
		ColorPriorityMedium,
		ColorPriorityLow,
	}

	for i, c := range colors {
		if c == nil {
			t.Errorf("color at index %d is nil", i)
		}
	}
}

func TestIconConstants(t *testing.T) {
	icons := map[string]Icon{
		"Success": IconSuccess,
		"Warning": IconWarning,
		"Error":   IconError,
		"Pending": IconPending,
		"Done":    IconDone,
		"Arrow":   IconArrow,
		"Bullet":  IconBullet,
		"Flag":    IconFlag,
		"Clock":   IconClock,
	}

	for name, icon := range icons {
		if string(icon) == "" {
			t.Errorf("icon %s is empty", name)
		}
	}
}
