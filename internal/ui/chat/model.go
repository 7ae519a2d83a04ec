// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the chat model and its message dispatch. The model
// owns the transcript, the input field, and the single in-flight turn.
package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/confide-tui/internal/model"
	"github.com/jeranaias/confide-tui/internal/session"
	"github.com/jeranaias/confide-tui/internal/ui/styles"
)

// =============================================================================
// STATE TYPES
// =============================================================================

// State represents the current interface state.
type State int

const (
	// StateReady means the input is live and a message can be sent.
	StateReady State = iota
	// StateWaiting means a turn is in flight and submission is locked
	// until its outcome message arrives.
	StateWaiting
)

// entryKind selects which transcript style an entry is rendered with.
// Exactly one kind applies to any entry.
type entryKind int

const (
	entryUser entryKind = iota
	entryAssistant
	entryError
)

// entry is one block in the transcript. The transcript is append-only:
// earlier entries never change once added.
type entry struct {
	kind entryKind
	text string
}

// Fixed user-facing notices. Turn failures surface as one of these
// instead of raw error text.
const (
	quotaNotice    = "Free usage limit hit. Please check your Google Cloud Console or set up billing."
	genericNotice  = "API Error: An unexpected error occurred."
	unusableNotice = "API is not configured. Please check setup."
)

// headerTitle is the application title shown above the transcript.
const headerTitle = "Virtual Psychiatrist AI Helper"

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat interface.
type Model struct {
	state State
	theme *styles.Theme

	// Terminal dimensions
	width  int
	height int

	// Conversation backend. May be nil when configuration failed; the
	// interface then refuses submissions and shows a warning instead.
	session *session.Session

	// Transcript in display order, greeting first.
	entries []entry

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	keyMap   KeyMap

	// turnID identifies the in-flight turn. Outcome messages carrying
	// any other ID are stale and dropped.
	turnID string

	// statusMsg is a warning shown in the status bar until the next
	// successful submission.
	statusMsg string

	waitingSince time.Time
}

// New creates a chat model backed by sess. The transcript is seeded from
// the session history so the assistant greeting is visible immediately.
func New(theme *styles.Theme, sess *session.Session) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.Line // ASCII frames, safe on every terminal
	sp.Style = theme.Spinner

	m := Model{
		state:    StateReady,
		theme:    theme,
		session:  sess,
		viewport: vp,
		input:    ti,
		spinner:  sp,
		keyMap:   DefaultKeyMap(),
	}

	if sess != nil {
		for _, msg := range sess.History() {
			kind := entryAssistant
			if msg.Role == model.RoleUser {
				kind = entryUser
			}
			m.entries = append(m.entries, entry{
				kind: kind,
				text: msg.Role.DisplayName() + ": " + msg.Content,
			})
		}
	}
	m.updateViewport()

	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// MESSAGE DISPATCH
// =============================================================================

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TurnCompleteMsg:
		return m.handleTurnComplete(msg)

	case TurnErrorMsg:
		return m.handleTurnError(msg)

	case spinner.TickMsg:
		if m.state == StateWaiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Everything else belongs to the focused input field.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResize recalculates component dimensions for a new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Layout: header + viewport (dynamic) + activity row + input area +
	// status bar. These constants must stay in sync with the rendered
	// heights in view.go; renderChat() measures the real heights and
	// corrects the viewport if they drift, so keep these conservative
	// (never smaller than the actual row count).
	const (
		headerHeight    = 1 // title line
		activityHeight  = 1 // spinner row, blank when idle
		inputAreaHeight = 2 // border line + input line
		statusBarHeight = 1
	)

	reservedHeight := headerHeight + activityHeight + inputAreaHeight + statusBarHeight

	viewportHeight := m.height - reservedHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	viewportWidth := m.width
	if viewportWidth < 1 {
		viewportWidth = 1
	}

	m.viewport.Width = viewportWidth
	m.viewport.Height = viewportHeight

	// The input line carries Padding(0, 1), so its content width is
	// (width - 2); leave a little slack so the cursor never clips.
	const promptLen = 2 // "> "
	inputWidth := m.width - 6 - promptLen
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth

	if m.theme != nil {
		m.theme.SetSize(m.width, m.height)
	}

	// Re-render with the new wrap width and stay pinned to the newest
	// entry.
	m.updateViewport()
	m.viewport.GotoBottom()

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, vpCmd
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit always works, even while a turn is in flight.
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m.submitInput()

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// TURN OUTCOME HANDLERS
// =============================================================================

// handleTurnComplete appends the assistant reply for the in-flight turn.
func (m Model) handleTurnComplete(msg TurnCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.turnID {
		// Outcome of a turn this model no longer owns.
		return m, nil
	}

	m.state = StateReady
	m.turnID = ""
	m.appendEntry(entryAssistant, model.RoleAssistant.DisplayName()+": "+msg.Reply)

	m.input.Focus()
	return m, textinput.Blink
}

// handleTurnError appends the fixed notice for a failed turn. The session
// history is untouched by a failure, so the interface simply returns to
// ready and the user may try again.
func (m Model) handleTurnError(msg TurnErrorMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.turnID {
		return m, nil
	}

	m.state = StateReady
	m.turnID = ""
	m.appendEntry(entryError, errorEntryText(msg.Err))

	m.input.Focus()
	return m, textinput.Blink
}

// =============================================================================
// TRANSCRIPT HELPERS
// =============================================================================

// appendEntry adds one transcript entry and keeps the view pinned to the
// newest message.
func (m *Model) appendEntry(kind entryKind, text string) {
	m.entries = append(m.entries, entry{kind: kind, text: text})
	m.updateViewport()
	m.viewport.GotoBottom()
}

// updateViewport refreshes the viewport content from the transcript.
func (m *Model) updateViewport() {
	m.viewport.SetContent(m.renderTranscript())
}
