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
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ErrNotInteractive is returned when a prompt is required but the terminal
// is non-interactive (piped output or machine personality). Callers should
// surface which flag would have supplied the value.
var ErrNotInteractive = errors.New("interactive prompt required but terminal is non-interactive")

// taskflowTheme returns a huh theme matched to the TaskFlow palette.
func taskflowTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(ColorIndigoBright).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorSlate)
	t.Focused.Base = t.Focused.Base.BorderForeground(ColorIndigo)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorIndigoBright)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorIndigoBright)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ColorIndigo).Foreground(lipgloss.Color("#ffffff"))
	t.Focused.BlurredButton = t.Focused.BlurredButton.Background(ColorSlateDark).Foreground(ColorSlate)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorIndigoBright)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(ColorIndigo)

	t.Blurred.Title = t.Blurred.Title.Foreground(ColorSlate)

	return t
}

// Theme exposes the themed huh configuration so the board can embed forms
// with the same look as the CLI prompts.
func Theme() *huh.Theme {
	return taskflowTheme()
}

// PromptOption is one choice in a select prompt.
type PromptOption struct {
	// Label is the display text.
	Label string

	// Description is optional context shown muted after the label.
	Description string

	// Value is returned when the option is chosen.
	Value string

	// Recommended marks the suggested choice.
	Recommended bool
}

// Select shows a list prompt and returns the chosen option's value.
func Select(title string, options []PromptOption) (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		label := o.Label
		if o.Description != "" {
			label = fmt.Sprintf("%s %s", o.Label, Styles.Muted.Render("· "+truncate(o.Description, 40)))
		}
		if o.Recommended {
			label += " " + Styles.Success.Render("(recommended)")
		}
		opts = append(opts, huh.NewOption(label, o.Value))
	}

	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(opts...).
			Value(&value),
	)).WithTheme(taskflowTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// Input shows a single-line text prompt. The validate func (optional) is
// evaluated live by the form before it can be submitted.
func Input(title, placeholder string, validate func(string) error) (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}

	input := huh.NewInput().Title(title).Placeholder(placeholder)
	if validate != nil {
		input = input.Validate(validate)
	}

	var value string
	form := huh.NewForm(huh.NewGroup(input.Value(&value))).WithTheme(taskflowTheme())
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// Password shows a masked text prompt.
func Password(title string, validate func(string) error) (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}

	input := huh.NewInput().Title(title).EchoMode(huh.EchoModePassword)
	if validate != nil {
		input = input.Validate(validate)
	}

	var value string
	form := huh.NewForm(huh.NewGroup(input.Value(&value))).WithTheme(taskflowTheme())
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm shows a yes/no prompt. Aborting the prompt (ctrl+c, esc) counts
// as declining, never as consent.
func Confirm(title string) (bool, error) {
	if !IsInteractive() {
		return false, ErrNotInteractive
	}

	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	)).WithTheme(taskflowTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// truncate shortens s to at most maxLen runes of ASCII, ellipsized.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}
