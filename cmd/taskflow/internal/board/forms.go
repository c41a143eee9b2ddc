// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Form construction for the board. Fields bind into a heap-allocated draft
// so value copies of the model all see the same in-progress input, and every
// Validate func delegates to the shared field rules, keeping the board and
// the CLI flags on identical checks.

package board

import (
	"github.com/AleutianAI/taskflow/cmd/taskflow/internal/forms"
	"github.com/AleutianAI/taskflow/pkg/taskapi"
	"github.com/AleutianAI/taskflow/pkg/ux"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formKind names what the active form edits.
type formKind int

const (
	formLogin formKind = iota
	formRegister
	formTask
	formCategory
)

// drafts holds the in-progress values of whichever form is open. Allocated
// fresh per form so stale input never leaks into the next one.
type drafts struct {
	kind   formKind
	notice string // shown above the form, e.g. a server rejection

	login    forms.Login
	register forms.Register
	task     forms.Task
	category forms.Category

	editing string // task id under edit, "" when creating
	status  string // status carried through an edit unchanged
}

// =============================================================================
// Auth Forms
// =============================================================================

// openAuthForm swaps in the sign-in or sign-up form. username pre-fills the
// first field so a failed attempt or a form switch keeps what was typed.
func (m *Model) openAuthForm(kind formKind, notice, username string) (Model, tea.Cmd) {
	d := &drafts{kind: kind, notice: notice}
	m.draft = d
	m.mode = ModeLogin
	m.loading = false

	var group *huh.Group
	if kind == formRegister {
		d.register.Username = username
		group = huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&d.register.Username).
				Validate(func(s string) error {
					probe := d.register
					probe.Username = s
					return forms.FieldError(probe, "Username")
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&d.register.Password).
				Validate(func(s string) error {
					probe := d.register
					probe.Password = s
					return forms.FieldError(probe, "Password")
				}),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&d.register.Confirm).
				Validate(func(s string) error {
					probe := d.register
					probe.Confirm = s
					return forms.FieldError(probe, "Confirm")
				}),
		)
	} else {
		d.login.Username = username
		group = huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&d.login.Username).
				Validate(func(s string) error {
					probe := d.login
					probe.Username = s
					return forms.FieldError(probe, "Username")
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&d.login.Password).
				Validate(func(s string) error {
					probe := d.login
					probe.Password = s
					return forms.FieldError(probe, "Password")
				}),
		)
	}

	m.form = huh.NewForm(group).WithTheme(ux.Theme())
	return *m, m.form.Init()
}

// =============================================================================
// Task Form
// =============================================================================

// openTaskForm opens the task editor. existing nil means a new task.
func (m *Model) openTaskForm(existing *taskapi.Task) (Model, tea.Cmd) {
	d := &drafts{kind: formTask}
	if existing != nil {
		d.editing = existing.ID
		d.status = existing.Status
		d.task = forms.Task{
			Title:    existing.Title,
			Desc:     existing.Desc,
			Category: existing.Category,
			Priority: existing.Priority,
			Due:      existing.Due,
		}
	} else {
		d.task.Priority = taskapi.PriorityMedium
		// Creating from a category view pre-selects that category.
		if id, ok := m.query.View.CategoryID(); ok {
			d.task.Category = id
		}
	}
	m.draft = d
	m.mode = ModeForm

	categoryOpts := make([]huh.Option[string], 0, len(m.categories)+1)
	categoryOpts = append(categoryOpts, huh.NewOption("None", ""))
	for _, c := range m.categories {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■") + " " + c.Name
		categoryOpts = append(categoryOpts, huh.NewOption(label, c.ID))
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Value(&d.task.Title).
			Validate(func(s string) error {
				probe := d.task
				probe.Title = s
				return forms.FieldError(probe, "Title")
			}),
		huh.NewText().
			Title("Description").
			Lines(3).
			Value(&d.task.Desc),
		huh.NewSelect[string]().
			Title("Category").
			Options(categoryOpts...).
			Value(&d.task.Category),
		huh.NewSelect[string]().
			Title("Priority").
			Options(
				huh.NewOption("High", taskapi.PriorityHigh),
				huh.NewOption("Medium", taskapi.PriorityMedium),
				huh.NewOption("Low", taskapi.PriorityLow),
			).
			Value(&d.task.Priority),
		huh.NewInput().
			Title("Due date").
			Placeholder("YYYY-MM-DD").
			Value(&d.task.Due).
			Validate(func(s string) error {
				probe := d.task
				probe.Due = s
				return forms.FieldError(probe, "Due")
			}),
	)).WithTheme(ux.Theme())

	return *m, m.form.Init()
}

// =============================================================================
// Category Form
// =============================================================================

func (m *Model) openCategoryForm() (Model, tea.Cmd) {
	d := &drafts{kind: formCategory}
	d.category.Color = forms.DefaultColor
	m.draft = d
	m.mode = ModeForm

	colorOpts := make([]huh.Option[string], 0, len(forms.Palette))
	for _, hex := range forms.Palette {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■") + " " + forms.ColorName(hex)
		colorOpts = append(colorOpts, huh.NewOption(label, hex))
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Value(&d.category.Name).
			Validate(func(s string) error {
				probe := d.category
				probe.Name = s
				return forms.FieldError(probe, "Name")
			}),
		huh.NewSelect[string]().
			Title("Color").
			Options(colorOpts...).
			Value(&d.category.Color),
	)).WithTheme(ux.Theme())

	return *m, m.form.Init()
}

// =============================================================================
// Submit / Abort
// =============================================================================

// submitForm fires the server call for a completed form. The form itself
// already enforced the field rules, so drafts go straight to the client.
func (m Model) submitForm() (Model, tea.Cmd) {
	d := m.draft
	m.form = nil
	m.draft = nil
	if d == nil {
		m.mode = ModeBoard
		return m, nil
	}

	switch d.kind {
	case formLogin:
		m.lastAuth = formLogin
		m.lastUser = d.login.Username
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.loginCmd(d.login.Username, d.login.Password))

	case formRegister:
		m.lastAuth = formRegister
		m.lastUser = d.register.Username
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.registerCmd(d.register.Username, d.register.Password))

	case formTask:
		draft := taskapi.TaskDraft{
			Title:    d.task.Title,
			Desc:     d.task.Desc,
			Category: d.task.Category,
			Priority: d.task.Priority,
			Status:   d.status,
			Due:      d.task.Due,
		}
		m.mode = ModeBoard
		m.loading = true
		if d.editing == "" {
			return m, tea.Batch(m.spin.Tick, m.createTaskCmd(draft))
		}
		return m, tea.Batch(m.spin.Tick, m.updateTaskCmd(d.editing, draft))

	case formCategory:
		draft := taskapi.CategoryDraft{Name: d.category.Name, Color: d.category.Color}
		m.mode = ModeBoard
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.createCategoryCmd(draft))
	}

	m.mode = ModeBoard
	return m, nil
}

// abortForm handles esc inside a form. Backing out of the sign-in form ends
// the program, since there is nothing behind it to return to.
func (m Model) abortForm() (Model, tea.Cmd) {
	wasAuth := m.mode == ModeLogin
	m.form = nil
	m.draft = nil

	if wasAuth {
		m.quitting = true
		return m, tea.Quit
	}

	m.mode = ModeBoard
	m.updateViewportContent()
	return m, nil
}

// formHeading names the open form for the chrome around it.
func formHeading(d *drafts) string {
	if d == nil {
		return ""
	}
	switch d.kind {
	case formRegister:
		return "Create your account"
	case formTask:
		if d.editing != "" {
			return "Edit task"
		}
		return "New task"
	case formCategory:
		return "New category"
	default:
		return "Sign in"
	}
}
