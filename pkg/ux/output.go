// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides rich terminal output styling for the taskflow CLI.
package ux

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// TaskFlow color palette - indigo brand with slate neutrals
var (
	// Primary palette (brightest to darkest)
	ColorIndigoBright = lipgloss.Color("#818cf8") // Bright indigo - highlights
	ColorIndigo       = lipgloss.Color("#6366f1") // Primary indigo - main brand color
	ColorViolet       = lipgloss.Color("#8b5cf6") // Violet - interactive elements
	ColorSky          = lipgloss.Color("#0ea5e9") // Sky blue - secondary accents

	// Neutral palette (for muted elements, borders)
	ColorSlate     = lipgloss.Color("#64748b") // Slate - muted text
	ColorSlateDark = lipgloss.Color("#334155") // Dark slate - borders
	ColorInk       = lipgloss.Color("#0f172a") // Ink - near black backgrounds

	// Semantic colors
	ColorSuccess = lipgloss.Color("#22c55e") // Green for success / done
	ColorWarning = lipgloss.Color("#f59e0b") // Amber for warnings / due soon
	ColorError   = lipgloss.Color("#ef4444") // Red for errors / overdue
	ColorMuted   = lipgloss.Color("#64748b") // Slate for muted text

	// Priority accents
	ColorPriorityHigh   = ColorError
	ColorPriorityMedium = ColorWarning
	ColorPriorityLow    = ColorSky
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	// Text styles
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	// Box styles
	Box        lipgloss.Style
	InfoBox    lipgloss.Style
	WarningBox lipgloss.Style
	ErrorBox   lipgloss.Style

	// Status indicators
	StatusOK      lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
}{
	// Text styles
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorIndigoBright),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorIndigo),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorIndigoBright).Bold(true),

	// Box styles
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSlateDark).
		Padding(0, 1),
	InfoBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorIndigo).
		Padding(0, 1),
	WarningBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWarning).
		Padding(0, 1),
	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Padding(0, 1),

	// Status indicators
	StatusOK:      lipgloss.NewStyle().SetString("✓").Foreground(ColorSuccess),
	StatusWarning: lipgloss.NewStyle().SetString("⚠").Foreground(ColorWarning),
	StatusError:   lipgloss.NewStyle().SetString("✗").Foreground(ColorError),
	StatusPending: lipgloss.NewStyle().SetString("○").Foreground(ColorSlate),
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconPending Icon = "○"
	IconDone    Icon = "●"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
	IconFlag    Icon = "⚑"
	IconClock   Icon = "◷"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconSuccess, IconDone:
		return Styles.Success.Render(string(i))
	case IconWarning, IconClock:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	case IconPending:
		return Styles.Muted.Render(string(i))
	default:
		return string(i)
	}
}

// PriorityIcon returns a colored flag for a task priority.
func PriorityIcon(priority string) string {
	switch priority {
	case "high":
		return lipgloss.NewStyle().Foreground(ColorPriorityHigh).Render(string(IconFlag))
	case "low":
		return lipgloss.NewStyle().Foreground(ColorPriorityLow).Render(string(IconFlag))
	default:
		return lipgloss.NewStyle().Foreground(ColorPriorityMedium).Render(string(IconFlag))
	}
}

// Print helpers that respect personality level

// Title prints a styled title
func Title(text string) {
	if GetPersonality().Level == PersonalityMachine {
		return
	}
	fmt.Println(Styles.Title.Render(text))
}

// Success prints a success message with checkmark
func Success(text string) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Fprintf(os.Stdout, "OK: %s\n", text)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", IconSuccess.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconSuccess.Render(), Styles.Success.Render(text))
	}
}

// Warning prints a warning message
func Warning(text string) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Fprintf(os.Stderr, "WARN: %s\n", text)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", IconWarning.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
	}
}

// Error prints an error message
func Error(text string) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", text)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", IconError.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconError.Render(), Styles.Error.Render(text))
	}
}

// Info prints an informational message
func Info(text string) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Println(text)
	default:
		fmt.Printf("%s %s\n", Styles.Muted.Render("│"), text)
	}
}

// Muted prints muted/secondary text
func Muted(text string) {
	if GetPersonality().Level == PersonalityMachine {
		return
	}
	fmt.Println(Styles.Muted.Render(text))
}

// Box prints text in a rounded box
func Box(title, content string) {
	if GetPersonality().Level == PersonalityMachine {
		fmt.Printf("%s: %s\n", title, content)
		return
	}
	boxStyle := Styles.Box.Width(60)
	titleLine := Styles.Title.Render(title)
	fmt.Println(boxStyle.Render(titleLine + "\n" + content))
}

// TaskLine prints one task row with its status icon and optional detail
func TaskLine(status Icon, title, detail string) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Printf("%s\t%s\t%s\n", status, title, detail)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", status.Render(), title)
	default:
		if detail != "" {
			fmt.Printf("%s %s %s\n", status.Render(), title, Styles.Muted.Render("("+detail+")"))
		} else {
			fmt.Printf("%s %s\n", status.Render(), title)
		}
	}
}

// Summary prints a task count summary line
func Summary(pending, done, overdue, total int) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Printf("SUMMARY: pending=%d done=%d overdue=%d total=%d\n", pending, done, overdue, total)
	default:
		line := fmt.Sprintf("\n%s %s  %s %s  %s %s  %s %s\n",
			Styles.Bold.Render(fmt.Sprintf("%d", pending)), Styles.Muted.Render("pending"),
			Styles.Success.Render(fmt.Sprintf("%d", done)), Styles.Muted.Render("done"),
			Styles.Error.Render(fmt.Sprintf("%d", overdue)), Styles.Muted.Render("overdue"),
			Styles.Bold.Render(fmt.Sprintf("%d", total)), Styles.Muted.Render("total"),
		)
		fmt.Print(line)
	}
}
