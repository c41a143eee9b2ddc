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
Package board implements the interactive TaskFlow client as a bubbletea
program.

# Problem Statement

The scriptable commands round-trip one request per invocation, which is the
wrong shape for working through a day's tasks: every filter change, status
flip, and edit would mean another process start and another full screen of
output. The terminal needs the same always-on surface the web client gives a
browser tab, with the task list, filters, and forms living in one process.

# Solution

A single model owns all client state and mutates it only inside Update, the
way bubbletea wants. Every network call runs as a tea.Cmd and reports back
through a typed message, so the event loop stays single-threaded and a failed
request can never corrupt what is already on screen:

	┌────────────┐  keys   ┌───────────┐  tea.Cmd   ┌──────────┐
	│  terminal  │ ──────→ │   Update  │ ─────────→ │ taskapi  │
	│            │ ←────── │  (state)  │ ←───────── │  client  │
	└────────────┘  View   └───────────┘  typed msg └──────────┘

State changes apply only on success messages: creates prepend, updates
replace by id, deletes remove by id. Errors become a transient status line
and change nothing, except an expired session, which drops the model back to
the sign-in form.

# Thread Safety

The model is designed for single-threaded use within the bubbletea event
loop. Do not access model state from multiple goroutines.
*/
package board

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/AleutianAI/taskflow/cmd/taskflow/config"
	"github.com/AleutianAI/taskflow/cmd/taskflow/internal/views"
	"github.com/AleutianAI/taskflow/pkg/session"
	"github.com/AleutianAI/taskflow/pkg/taskapi"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// =============================================================================
// Mode
// =============================================================================

// Mode determines which surface owns the keyboard.
type Mode int

const (
	// ModeLogin shows the sign-in / sign-up form. Active whenever there is
	// no usable session.
	ModeLogin Mode = iota

	// ModeBoard shows the task list with filters and counts.
	ModeBoard

	// ModeForm shows a task or category form over the board.
	ModeForm

	// ModeConfirm gates a delete behind a typed answer.
	ModeConfirm

	// ModeHelp shows the key reference overlay.
	ModeHelp
)

// confirmTarget identifies what a pending confirmation would delete.
type confirmTarget struct {
	kind  string // "task" or "category"
	id    string
	title string
}

// =============================================================================
// Config
// =============================================================================

// Config wires the board to the rest of the client.
type Config struct {
	// Client performs all server calls. Required.
	Client *taskapi.Client

	// Sessions is consulted indirectly through Client; the board never
	// reads tokens itself.
	Sessions session.Store

	// Logger receives request failures and auth transitions. The board owns
	// the terminal, so this should be a file-only logger.
	Logger *slog.Logger

	// App is the loaded configuration; theme and default filters come from
	// here, and the theme toggle writes back through it.
	App config.TaskflowConfig

	// ConfigPath is where theme changes are persisted. Empty disables
	// persistence.
	ConfigPath string

	// Username of the active session, "" when signed out.
	Username string
}

// =============================================================================
// Model
// =============================================================================

// Model is the bubbletea model for the interactive board.
type Model struct {
	client   *taskapi.Client
	sessions session.Store
	logger   *slog.Logger
	cfg      config.TaskflowConfig
	cfgPath  string

	mode Mode

	// Session surface
	username string
	online   bool
	probed   bool

	// Last auth attempt, used to rebuild the form after a rejection.
	lastAuth formKind
	lastUser string

	// Server state, mirrored locally
	tasks      []taskapi.Task
	categories []taskapi.Category

	// Derived list state
	query   views.Query
	visible []taskapi.Task
	summary views.Summary
	today   string
	cursor  int

	// Search input ("/")
	searching bool
	search    textinput.Model

	// In-flight request indicator
	loading bool
	spin    spinner.Model

	// Transient status line
	status    string
	statusErr bool
	statusSeq int

	// Active form, nil outside ModeLogin/ModeForm
	form  *huh.Form
	draft *drafts

	// Pending confirmation
	confirm      confirmTarget
	confirmInput string

	// Rendering
	styles   styleSet
	dark     bool
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a board model from the wiring in cfg.
//
// # Inputs
//
//   - cfg: Client, logger, configuration, and session username.
//
// # Outputs
//
//   - Model: Ready for tea.NewProgram. Starts at the sign-in form when
//     cfg.Username is empty, otherwise loads the board immediately.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	search := textinput.New()
	search.Placeholder = "search tasks"
	search.Prompt = "/ "
	search.CharLimit = 100

	dark := cfg.App.UI.Theme == "dark"

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		client:   cfg.Client,
		sessions: cfg.Sessions,
		logger:   logger,
		cfg:      cfg.App,
		cfgPath:  cfg.ConfigPath,
		mode:     ModeBoard,
		username: cfg.Username,
		query: views.Query{
			View: views.ParseView(cfg.App.UI.DefaultView),
			Sort: views.ParseSort(cfg.App.UI.DefaultSort),
		},
		today:  views.Today(),
		search: search,
		spin:   sp,
		styles: newStyles(dark),
		dark:   dark,
	}

	if cfg.Username == "" {
		m, _ = m.openAuthForm(formLogin, "", "")
		return m
	}

	m.loading = true
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.probeCmd()}

	if m.mode == ModeLogin {
		if m.form != nil {
			cmds = append(cmds, m.form.Init())
		}
		return tea.Batch(cmds...)
	}

	cmds = append(cmds, m.spin.Tick, m.loadCmd())
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportHeight := m.height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}

		m.updateViewportContent()
		// Fall past the switch so an active form sees the resize too.

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case probeMsg:
		m.probed = true
		m.online = msg.result.Online
		return m, nil

	case tasksLoadedMsg:
		m.loading = false
		m.tasks = msg.tasks
		m.categories = msg.categories
		m.today = views.Today()
		m.refresh()
		return m, nil

	case taskSavedMsg:
		return m.applyTaskSaved(msg)

	case taskDeletedMsg:
		m.loading = false
		m.tasks = removeTask(m.tasks, msg.id)
		m.refresh()
		return m, m.setStatus("Task deleted", false)

	case categorySavedMsg:
		return m.applyCategorySaved(msg)

	case categoryDeletedMsg:
		return m.applyCategoryDeleted(msg)

	case authOKMsg:
		return m.applyAuthOK(msg)

	case apiErrorMsg:
		return m.applyAPIError(msg)

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case configSavedMsg:
		if msg.err != nil {
			return m, m.setStatus("Could not save config: "+msg.err.Error(), true)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeConfirm:
			return m.handleConfirmInput(msg)

		case ModeHelp:
			switch msg.String() {
			case "q", "?", "esc", "enter":
				m.mode = ModeBoard
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case ModeBoard:
			if m.searching {
				return m.handleSearchKey(msg)
			}
			return m.handleBoardKey(msg)

		case ModeLogin, ModeForm:
			// A few control keys bypass the form; everything else is the
			// form's to consume below.
			switch msg.String() {
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			case "ctrl+r":
				if m.mode == ModeLogin && m.draft != nil && m.draft.kind == formLogin {
					return m.openAuthForm(formRegister, "", m.draft.login.Username)
				}
			case "ctrl+l":
				if m.mode == ModeLogin && m.draft != nil && m.draft.kind == formRegister {
					return m.openAuthForm(formLogin, "", m.draft.register.Username)
				}
			}
		}
	}

	// The active form owns every remaining message, including its own
	// internal ticks.
	if (m.mode == ModeLogin || m.mode == ModeForm) && m.form != nil {
		f, cmd := m.form.Update(msg)
		if form, ok := f.(*huh.Form); ok {
			m.form = form
		}
		switch m.form.State {
		case huh.StateCompleted:
			return m.submitForm()
		case huh.StateAborted:
			return m.abortForm()
		}
		return m, cmd
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// =============================================================================
// Board Keys
// =============================================================================

func (m Model) handleBoardKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.mode = ModeHelp
		return m, nil

	case "j", "down":
		return m.moveCursor(1)

	case "k", "up":
		return m.moveCursor(-1)

	case "g", "home":
		return m.cursorTo(0)

	case "G", "end":
		return m.cursorTo(len(m.visible) - 1)

	case "ctrl+d":
		return m.moveCursor(m.viewport.Height / 2)

	case "ctrl+u":
		return m.moveCursor(-m.viewport.Height / 2)

	case "1":
		return m.setView(views.ViewAll)

	case "2":
		return m.setView(views.ViewToday)

	case "3":
		return m.setView(views.ViewPending)

	case "4":
		return m.setView(views.ViewDone)

	case "tab":
		return m.setView(nextView(m.query.View))

	case "c":
		return m.cycleCategory()

	case "p":
		return m.cyclePriority()

	case "s":
		return m.cycleSort()

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "esc":
		if m.query.Search != "" {
			m.search.SetValue("")
			m.query.Search = ""
			m.refresh()
		}
		return m, nil

	case "n":
		return m.openTaskForm(nil)

	case "e", "enter":
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		return m.openTaskForm(&t)

	case "d", " ":
		return m.toggleCurrentStatus()

	case "x", "backspace":
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirm = confirmTarget{kind: "task", id: t.ID, title: t.Title}
		m.confirmInput = ""
		m.mode = ModeConfirm
		return m, nil

	case "N":
		return m.openCategoryForm()

	case "X":
		id, ok := m.query.View.CategoryID()
		if !ok {
			return m, m.setStatus("Filter by a category first (press c)", true)
		}
		m.confirm = confirmTarget{kind: "category", id: id, title: m.categoryName(id)}
		m.confirmInput = ""
		m.mode = ModeConfirm
		return m, nil

	case "t":
		return m.toggleTheme()

	case "r":
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.loadCmd())
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil

	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.query.Search = ""
		m.refresh()
		return m, nil

	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	// Filter as the user types, like the web client's search box.
	m.query.Search = m.search.Value()
	m.cursor = 0
	m.refresh()
	return m, cmd
}

// =============================================================================
// Confirmation Handling
// =============================================================================

func (m Model) handleConfirmInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		answer := strings.ToLower(m.confirmInput)
		m.confirmInput = ""
		m.mode = ModeBoard
		if answer == "y" || answer == "yes" {
			return m.runConfirmed()
		}
		m.confirm = confirmTarget{}

	case "esc", "ctrl+c":
		m.mode = ModeBoard
		m.confirmInput = ""
		m.confirm = confirmTarget{}

	case "backspace":
		if len(m.confirmInput) > 0 {
			m.confirmInput = m.confirmInput[:len(m.confirmInput)-1]
		}

	default:
		if len(msg.String()) == 1 {
			m.confirmInput += msg.String()
		}
	}

	return m, nil
}

func (m Model) runConfirmed() (Model, tea.Cmd) {
	target := m.confirm
	m.confirm = confirmTarget{}
	m.loading = true

	if target.kind == "category" {
		return m, tea.Batch(m.spin.Tick, m.deleteCategoryCmd(target.id))
	}
	return m, tea.Batch(m.spin.Tick, m.deleteTaskCmd(target.id))
}

// =============================================================================
// Message Application
// =============================================================================

func (m Model) applyTaskSaved(msg taskSavedMsg) (Model, tea.Cmd) {
	m.loading = false

	if msg.created {
		m.tasks = append([]taskapi.Task{msg.task}, m.tasks...)
		m.refresh()
		m.cursorToTask(msg.task.ID)
		return m, m.setStatus(fmt.Sprintf("Created %q", msg.task.Title), false)
	}

	replaced := false
	for i := range m.tasks {
		if m.tasks[i].ID == msg.task.ID {
			m.tasks[i] = msg.task
			replaced = true
			break
		}
	}
	if !replaced {
		// The task vanished locally between submit and response, keep the
		// server's copy visible anyway.
		m.tasks = append([]taskapi.Task{msg.task}, m.tasks...)
	}
	m.refresh()
	return m, m.setStatus(fmt.Sprintf("Saved %q", msg.task.Title), false)
}

func (m Model) applyCategorySaved(msg categorySavedMsg) (Model, tea.Cmd) {
	m.loading = false

	replaced := false
	for i := range m.categories {
		if m.categories[i].ID == msg.category.ID {
			m.categories[i] = msg.category
			replaced = true
			break
		}
	}
	if !replaced {
		m.categories = append(m.categories, msg.category)
	}
	m.refresh()
	return m, m.setStatus(fmt.Sprintf("Created category %q", msg.category.Name), false)
}

func (m Model) applyCategoryDeleted(msg categoryDeletedMsg) (Model, tea.Cmd) {
	m.loading = false

	kept := m.categories[:0:0]
	for _, c := range m.categories {
		if c.ID != msg.id {
			kept = append(kept, c)
		}
	}
	m.categories = kept

	// Deleting the category you are looking at resets the filter, otherwise
	// the board would show an empty list with no way to tell why.
	if id, ok := m.query.View.CategoryID(); ok && id == msg.id {
		m.query.View = views.ViewAll
	}

	m.refresh()
	return m, m.setStatus("Category deleted", false)
}

func (m Model) applyAuthOK(msg authOKMsg) (Model, tea.Cmd) {
	m.username = msg.session.Username
	m.mode = ModeBoard
	m.form = nil
	m.draft = nil
	m.loading = true

	m.logger.Info("signed in", "username", m.username, "registered", msg.registered)

	greeting := fmt.Sprintf("Signed in as %s", m.username)
	if msg.registered {
		greeting = fmt.Sprintf("Welcome, %s", m.username)
	}
	return m, tea.Batch(m.spin.Tick, m.loadCmd(), m.setStatus(greeting, false))
}

func (m Model) applyAPIError(msg apiErrorMsg) (Model, tea.Cmd) {
	m.loading = false
	m.logger.Warn("request failed", "op", msg.op, "error", msg.err)

	if taskapi.IsUnauthorized(msg.err) {
		m.username = ""
		m.tasks = nil
		m.categories = nil
		m.refresh()
		return m.openAuthForm(formLogin, "Session expired, sign in again", "")
	}

	if m.mode == ModeLogin {
		// Auth attempt failed; put the form back with the server's reason.
		return m.openAuthForm(m.lastAuth, errorText(msg.err), m.lastUser)
	}

	return m, m.setStatus(errorText(msg.err), true)
}

// =============================================================================
// Navigation
// =============================================================================

func (m *Model) moveCursor(delta int) (Model, tea.Cmd) {
	if len(m.visible) == 0 {
		return *m, nil
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.visible)-1 {
		m.cursor = len(m.visible) - 1
	}
	m.updateViewportContent()
	m.ensureCursorVisible()
	return *m, nil
}

func (m *Model) cursorTo(index int) (Model, tea.Cmd) {
	if len(m.visible) == 0 {
		return *m, nil
	}
	if index < 0 {
		index = 0
	}
	if index > len(m.visible)-1 {
		index = len(m.visible) - 1
	}
	m.cursor = index
	m.updateViewportContent()
	m.ensureCursorVisible()
	return *m, nil
}

// cursorToTask moves the cursor onto the given task if it is visible.
func (m *Model) cursorToTask(id string) {
	for i, t := range m.visible {
		if t.ID == id {
			m.cursor = i
			m.updateViewportContent()
			m.ensureCursorVisible()
			return
		}
	}
}

func (m Model) current() (taskapi.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return taskapi.Task{}, false
	}
	return m.visible[m.cursor], true
}

// =============================================================================
// Filters
// =============================================================================

func (m *Model) setView(v views.View) (Model, tea.Cmd) {
	m.query.View = v
	m.cursor = 0
	m.refresh()
	m.viewport.GotoTop()
	return *m, nil
}

// nextView cycles the built-in views; category views restart the cycle.
func nextView(v views.View) views.View {
	switch v {
	case views.ViewAll:
		return views.ViewToday
	case views.ViewToday:
		return views.ViewPending
	case views.ViewPending:
		return views.ViewDone
	default:
		return views.ViewAll
	}
}

func (m *Model) cycleCategory() (Model, tea.Cmd) {
	if len(m.categories) == 0 {
		return *m, m.setStatus("No categories yet (press N to add one)", false)
	}

	current, _ := m.query.View.CategoryID()
	idx := -1
	for i, c := range m.categories {
		if c.ID == current {
			idx = i
			break
		}
	}

	next := idx + 1
	if next >= len(m.categories) {
		m.query.View = views.ViewAll
	} else {
		m.query.View = views.CategoryView(m.categories[next].ID)
	}
	m.cursor = 0
	m.refresh()
	m.viewport.GotoTop()
	return *m, nil
}

func (m *Model) cyclePriority() (Model, tea.Cmd) {
	switch m.query.Priority {
	case "":
		m.query.Priority = taskapi.PriorityHigh
	case taskapi.PriorityHigh:
		m.query.Priority = taskapi.PriorityMedium
	case taskapi.PriorityMedium:
		m.query.Priority = taskapi.PriorityLow
	default:
		m.query.Priority = ""
	}
	m.cursor = 0
	m.refresh()
	return *m, nil
}

func (m *Model) cycleSort() (Model, tea.Cmd) {
	switch m.query.Sort {
	case views.SortCreatedDesc:
		m.query.Sort = views.SortCreatedAsc
	case views.SortCreatedAsc:
		m.query.Sort = views.SortDueAsc
	case views.SortDueAsc:
		m.query.Sort = views.SortDueDesc
	case views.SortDueDesc:
		m.query.Sort = views.SortPriority
	default:
		m.query.Sort = views.SortCreatedDesc
	}
	m.refresh()
	return *m, nil
}

// =============================================================================
// Actions
// =============================================================================

func (m Model) toggleCurrentStatus() (Model, tea.Cmd) {
	t, ok := m.current()
	if !ok {
		return m, nil
	}

	target := taskapi.StatusDone
	if t.Status == taskapi.StatusDone {
		target = taskapi.StatusPending
	}

	m.loading = true
	return m, tea.Batch(m.spin.Tick, m.setStatusCmd(t, target))
}

func (m *Model) toggleTheme() (Model, tea.Cmd) {
	m.dark = !m.dark
	m.styles = newStyles(m.dark)
	if m.dark {
		m.cfg.UI.Theme = "dark"
	} else {
		m.cfg.UI.Theme = "light"
	}
	m.updateViewportContent()
	return *m, m.saveConfigCmd()
}

// =============================================================================
// Derived State
// =============================================================================

// refresh recomputes the visible list and counts after any change to tasks
// or the query, keeping the cursor in range.
func (m *Model) refresh() {
	m.visible = views.Visible(m.tasks, m.query, m.today)
	m.summary = views.Counts(m.tasks, m.today)
	if m.cursor > len(m.visible)-1 {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updateViewportContent()
	m.ensureCursorVisible()
}

// setStatus replaces the transient status line and returns the expiry timer
// for it. Older timers are ignored via the sequence number.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	m.statusSeq++
	return statusTimerCmd(m.statusSeq)
}

func (m Model) categoryName(id string) string {
	for _, c := range m.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func removeTask(tasks []taskapi.Task, id string) []taskapi.Task {
	kept := tasks[:0:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return kept
}

// =============================================================================
// Viewport Content
// =============================================================================

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTaskRows())
}

// ensureCursorVisible scrolls the viewport so the cursor row stays on
// screen. Rows are one line each, so the offset math is direct.
func (m *Model) ensureCursorVisible() {
	if !m.ready || len(m.visible) == 0 {
		return
	}
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}
