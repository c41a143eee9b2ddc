// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Rendering for the board. The screen is header (3 lines), scrolling task
// rows, and footer (2 lines); overlays replace the row region only, so the
// counts stay visible while confirming or reading help.

package board

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/taskflow/cmd/taskflow/internal/views"
	"github.com/AleutianAI/taskflow/pkg/taskapi"
	"github.com/AleutianAI/taskflow/pkg/ux"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 3
	footerHeight = 2
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == ModeLogin || m.mode == ModeForm {
		return m.renderFormScreen()
	}

	if !m.ready {
		return "Loading...\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())

	switch m.mode {
	case ModeHelp:
		b.WriteString(m.renderHelp())
	case ModeConfirm:
		b.WriteString(m.renderConfirm())
	default:
		b.WriteString(m.viewport.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// =============================================================================
// Header
// =============================================================================

func (m Model) renderHeader() string {
	var b strings.Builder

	// Line 1: identity and connectivity.
	b.WriteString(" ")
	b.WriteString(m.styles.appTitle.Render(string(ux.IconSuccess) + " TaskFlow"))
	if m.username != "" {
		b.WriteString("  " + m.styles.text.Render(m.username))
	}
	if m.probed {
		if m.online {
			b.WriteString("  " + m.styles.online.Render(string(ux.IconDone)+" online"))
		} else {
			b.WriteString("  " + m.styles.offline.Render(string(ux.IconPending)+" offline"))
		}
	}
	if m.loading {
		b.WriteString("  " + m.spin.View())
	}
	b.WriteString("\n")

	// Line 2: view badges with live counts.
	b.WriteString(" ")
	b.WriteString(m.renderBadges())
	b.WriteString("\n")

	// Line 3: search input while typing, active filters otherwise.
	b.WriteString(" ")
	if m.searching {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(m.renderFilterLine())
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderBadges() string {
	badge := func(label string, count int, v views.View) string {
		text := fmt.Sprintf("%s %d", label, count)
		if m.query.View == v {
			return m.styles.badgeActive.Render(text)
		}
		return m.styles.badge.Render(text)
	}

	parts := []string{
		badge("All", m.summary.Total, views.ViewAll),
		badge("Today", m.summary.DueToday, views.ViewToday),
		badge("Pending", m.summary.Pending, views.ViewPending),
		badge("Done", m.summary.Done, views.ViewDone),
	}

	overdue := fmt.Sprintf("Overdue %d", m.summary.Overdue)
	if m.summary.Overdue > 0 {
		parts = append(parts, m.styles.overdue.Render(overdue))
	} else {
		parts = append(parts, m.styles.badge.Render(overdue))
	}

	if id, ok := m.query.View.CategoryID(); ok {
		for _, c := range m.categories {
			if c.ID == id {
				chip := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■") + " " + c.Name
				parts = append(parts, m.styles.badgeActive.Render(chip))
				break
			}
		}
	}

	return strings.Join(parts, " ")
}

func (m Model) renderFilterLine() string {
	parts := []string{"sort " + sortLabel(m.query.Sort)}
	if m.query.Priority != "" {
		parts = append(parts, "priority "+m.query.Priority)
	}
	if m.query.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", m.query.Search))
	}
	return m.styles.muted.Render(strings.Join(parts, " · "))
}

func sortLabel(s views.Sort) string {
	switch s {
	case views.SortCreatedAsc:
		return "oldest"
	case views.SortDueAsc:
		return "due ↑"
	case views.SortDueDesc:
		return "due ↓"
	case views.SortPriority:
		return "priority"
	default:
		return "newest"
	}
}

// =============================================================================
// Task Rows
// =============================================================================

func (m Model) renderTaskRows() string {
	if len(m.visible) == 0 {
		return m.styles.muted.Render("  Nothing here. Press n to add a task.")
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	titleWidth := width - 36
	if titleWidth < 12 {
		titleWidth = 12
	}

	var b strings.Builder
	for i, t := range m.visible {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderTaskRow(t, i == m.cursor, titleWidth))
	}
	return b.String()
}

// renderTaskRow lays out one task on a single line so the cursor maps 1:1
// onto viewport offsets.
func (m Model) renderTaskRow(t taskapi.Task, selected bool, titleWidth int) string {
	marker := "  "
	if selected {
		marker = m.styles.marker.Render(string(ux.IconArrow) + " ")
	}

	status := ux.IconPending.Render()
	if t.Status == taskapi.StatusDone {
		status = ux.IconSuccess.Render()
	}

	title := clip(t.Title, titleWidth)
	switch {
	case selected:
		title = m.styles.titleSelected.Render(padRight(title, titleWidth))
	case t.Status == taskapi.StatusDone:
		title = m.styles.titleDone.Render(padRight(title, titleWidth))
	default:
		title = m.styles.text.Render(padRight(title, titleWidth))
	}

	category := padRight("", 13)
	if t.Category != "" {
		for _, c := range m.categories {
			if c.ID == t.Category {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■")
				category = swatch + " " + m.styles.muted.Render(padRight(clip(c.Name, 11), 11))
				break
			}
		}
	}

	due := padRight("", 10)
	if t.Due != "" {
		switch {
		case views.Overdue(t.Due, m.today):
			due = m.styles.dueOverdue.Render(t.Due)
		case views.DueSoon(t.Due, m.today):
			due = m.styles.dueSoon.Render(t.Due)
		default:
			due = m.styles.muted.Render(t.Due)
		}
	}

	return fmt.Sprintf("%s%s %s %s %s %s", marker, status, ux.PriorityIcon(t.Priority), title, category, due)
}

// =============================================================================
// Overlays
// =============================================================================

func (m Model) renderConfirm() string {
	var b strings.Builder

	b.WriteString("\n")
	if m.confirm.kind == "category" {
		b.WriteString("  " + m.styles.confirmTitle.Render(fmt.Sprintf("Delete category %q?", m.confirm.title)) + "\n")
		b.WriteString("  " + m.styles.muted.Render("The server refuses while tasks still use it.") + "\n")
	} else {
		b.WriteString("  " + m.styles.confirmTitle.Render(fmt.Sprintf("Delete task %q?", m.confirm.title)) + "\n")
		b.WriteString("  " + m.styles.muted.Render("This cannot be undone.") + "\n")
	}
	b.WriteString("\n")
	b.WriteString("  " + m.styles.muted.Render("Type y then enter to confirm, esc to cancel.") + "\n")
	b.WriteString("  > " + m.confirmInput)

	return b.String()
}

func (m Model) renderHelp() string {
	sections := []struct {
		name string
		keys [][2]string
	}{
		{"Navigate", [][2]string{
			{"j / k", "move"},
			{"g / G", "first / last"},
			{"ctrl+d / ctrl+u", "half page"},
		}},
		{"Filter", [][2]string{
			{"1 2 3 4", "all · today · pending · done"},
			{"tab", "cycle views"},
			{"c", "cycle categories"},
			{"p", "cycle priority filter"},
			{"s", "cycle sort"},
			{"/", "search, esc clears"},
		}},
		{"Tasks", [][2]string{
			{"n", "new task"},
			{"e / enter", "edit task"},
			{"d / space", "toggle done"},
			{"x", "delete task"},
		}},
		{"Categories", [][2]string{
			{"N", "new category"},
			{"X", "delete the filtered category"},
		}},
		{"Board", [][2]string{
			{"t", "toggle theme"},
			{"r", "reload"},
			{"q", "quit"},
		}},
	}

	var b strings.Builder
	for _, s := range sections {
		b.WriteString("\n  " + m.styles.helpSection.Render(s.name) + "\n")
		for _, k := range s.keys {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				m.styles.helpKey.Render(padRight(k[0], 16)),
				m.styles.helpDesc.Render(k[1])))
		}
	}
	return b.String()
}

// =============================================================================
// Footer
// =============================================================================

func (m Model) renderFooter() string {
	var b strings.Builder

	b.WriteString(" ")
	switch {
	case m.status != "" && m.statusErr:
		b.WriteString(m.styles.statusError.Render(m.status))
	case m.status != "":
		b.WriteString(m.styles.statusOK.Render(m.status))
	case m.loading:
		b.WriteString(m.styles.muted.Render("contacting server"))
	}
	b.WriteString("\n")

	b.WriteString(" ")
	b.WriteString(m.styles.muted.Render("n new · e edit · d done · x delete · / search · t theme · ? help · q quit"))
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// Form Screen
// =============================================================================

func (m Model) renderFormScreen() string {
	var b strings.Builder

	b.WriteString("\n ")
	b.WriteString(m.styles.appTitle.Render(string(ux.IconSuccess) + " TaskFlow"))
	if h := formHeading(m.draft); h != "" {
		b.WriteString("  " + m.styles.text.Render(h))
	}
	b.WriteString("\n")

	if m.draft != nil && m.draft.notice != "" {
		b.WriteString(" " + m.styles.statusError.Render(m.draft.notice) + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.form != nil:
		b.WriteString(m.form.View())
	case m.loading:
		b.WriteString(" " + m.spin.View() + " Signing in...\n")
	}

	b.WriteString("\n ")
	hint := "esc cancel"
	if m.draft != nil {
		switch m.draft.kind {
		case formLogin:
			hint = "enter submit · ctrl+r create an account · esc quit"
		case formRegister:
			hint = "enter submit · ctrl+l back to sign in · esc quit"
		}
	}
	b.WriteString(m.styles.muted.Render(hint))
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// Styles
// =============================================================================

// styleSet carries the theme-dependent styles. Two sets exist, light and
// dark, rebuilt on the theme toggle; the fixed semantic colors come from the
// shared ux palette.
type styleSet struct {
	appTitle      lipgloss.Style
	text          lipgloss.Style
	muted         lipgloss.Style
	online        lipgloss.Style
	offline       lipgloss.Style
	badge         lipgloss.Style
	badgeActive   lipgloss.Style
	marker        lipgloss.Style
	titleSelected lipgloss.Style
	titleDone     lipgloss.Style
	overdue       lipgloss.Style
	dueOverdue    lipgloss.Style
	dueSoon       lipgloss.Style
	statusOK      lipgloss.Style
	statusError   lipgloss.Style
	confirmTitle  lipgloss.Style
	helpSection   lipgloss.Style
	helpKey       lipgloss.Style
	helpDesc      lipgloss.Style
}

var (
	lightText     = lipgloss.Color("#0f172a")
	darkText      = lipgloss.Color("#e2e8f0")
	lightSelected = lipgloss.Color("#e0e7ff")
	darkSelected  = lipgloss.Color("#334155")
)

func newStyles(dark bool) styleSet {
	text := lightText
	selected := lightSelected
	if dark {
		text = darkText
		selected = darkSelected
	}

	return styleSet{
		appTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ux.ColorIndigo),

		text: lipgloss.NewStyle().
			Foreground(text),

		muted: lipgloss.NewStyle().
			Foreground(ux.ColorMuted),

		online: lipgloss.NewStyle().
			Foreground(ux.ColorSuccess),

		offline: lipgloss.NewStyle().
			Foreground(ux.ColorError),

		badge: lipgloss.NewStyle().
			Foreground(ux.ColorSlate),

		badgeActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(ux.ColorIndigoBright),

		marker: lipgloss.NewStyle().
			Foreground(ux.ColorIndigoBright).
			Bold(true),

		titleSelected: lipgloss.NewStyle().
			Background(selected).
			Foreground(text).
			Bold(true),

		titleDone: lipgloss.NewStyle().
			Foreground(ux.ColorMuted).
			Strikethrough(true),

		overdue: lipgloss.NewStyle().
			Bold(true).
			Foreground(ux.ColorError),

		dueOverdue: lipgloss.NewStyle().
			Foreground(ux.ColorError),

		dueSoon: lipgloss.NewStyle().
			Foreground(ux.ColorWarning),

		statusOK: lipgloss.NewStyle().
			Foreground(ux.ColorSuccess),

		statusError: lipgloss.NewStyle().
			Foreground(ux.ColorError),

		confirmTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ux.ColorError),

		helpSection: lipgloss.NewStyle().
			Bold(true).
			Foreground(ux.ColorIndigo),

		helpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(ux.ColorSky),

		helpDesc: lipgloss.NewStyle().
			Foreground(ux.ColorSlate),
	}
}

// =============================================================================
// Text Helpers
// =============================================================================

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

func padRight(s string, width int) string {
	if len([]rune(s)) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len([]rune(s)))
}
