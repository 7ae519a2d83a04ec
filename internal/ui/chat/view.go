// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains all rendering logic for the chat interface:
//   - Main view assembly (renderChat)
//   - Transcript rendering with per-entry styling
//   - UI chrome (header, activity row, input area, status bar)
//
// Rendering never mutates state.
package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the complete chat interface.
func (m Model) View() string {
	return m.renderChat()
}

// renderChat renders the complete chat view.
// Layout: header (1 line) + transcript (viewport) + activity row (1 line) +
// input area (2 lines) + status bar (1 line). Total height must equal
// m.height exactly to prevent overflow.
//
// COUPLING WARNING: The viewport height is pre-calculated in handleResize()
// (model.go) using constant estimates. This function measures actual heights
// with lipgloss.Height() and has a fallback if there's a mismatch. If you
// change the height of any component here, also update the constants in
// handleResize().
func (m Model) renderChat() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Build the fixed-height components first to know how much room the
	// transcript gets.
	header := m.renderHeader()
	activity := m.renderActivity()
	input := m.renderInput()
	status := m.renderStatusBar()

	headerHeight := lipgloss.Height(header)
	activityHeight := lipgloss.Height(activity)
	inputHeight := lipgloss.Height(input)
	statusHeight := lipgloss.Height(status)

	availableHeight := m.height - headerHeight - activityHeight - inputHeight - statusHeight
	if availableHeight < 1 {
		availableHeight = 1
	}

	messages := m.viewport.View()

	// The viewport was sized in handleResize; if the rendered height has
	// drifted from the layout math, force it rather than break the frame.
	if lipgloss.Height(messages) != availableHeight {
		messages = lipgloss.NewStyle().
			Height(availableHeight).
			MaxHeight(availableHeight).
			Width(m.width).
			Render(messages)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		messages,
		activity,
		input,
		status,
	)
}

// =============================================================================
// HEADER
// =============================================================================

// renderHeader renders the title bar with the active model name.
func (m Model) renderHeader() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	title := m.theme.HeaderTitle.Render(headerTitle)

	var modelInfo string
	if m.session != nil {
		modelInfo = m.theme.HeaderSubtitle.Render(" | " + m.session.Model())
	}

	return m.theme.Header.Width(width).Render(title + modelInfo)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// renderTranscript renders every transcript entry in order, oldest first.
// Entries are separated by one blank line.
func (m Model) renderTranscript() string {
	if len(m.entries) == 0 {
		return m.theme.ThinkingText.Render("No messages.")
	}

	// Account for the transcript padding so wrapped lines never clip.
	wrapWidth := m.viewport.Width - 4
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	parts := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		parts = append(parts, m.entryStyle(e.kind).Render(wrapText(e.text, wrapWidth)))
	}

	return m.theme.Transcript.Render(strings.Join(parts, "\n\n"))
}

// entryStyle selects the rendering style for a transcript entry kind.
func (m Model) entryStyle(kind entryKind) lipgloss.Style {
	switch kind {
	case entryUser:
		return m.theme.UserEntry
	case entryError:
		return m.theme.ErrorEntry
	default:
		return m.theme.AssistantEntry
	}
}

// =============================================================================
// ACTIVITY ROW
// =============================================================================

// renderActivity renders the one-line activity row between the transcript
// and the input. It is blank while idle so the layout height stays stable.
func (m Model) renderActivity() string {
	if m.state != StateWaiting {
		return ""
	}

	elapsed := int(time.Since(m.waitingSince).Seconds())
	label := fmt.Sprintf("Thinking... %ds", elapsed)

	return " " + m.spinner.View() + " " + m.theme.ThinkingText.Render(label)
}

// =============================================================================
// INPUT AREA
// =============================================================================

// renderInput renders the input field under its separator border.
func (m Model) renderInput() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	return m.theme.InputContainer.Width(width).Render(m.input.View())
}

// =============================================================================
// STATUS BAR
// =============================================================================

// renderStatusBar renders the bottom bar: model name on the left, any
// warning or wait notice in the middle, shortcut hints on the right.
func (m Model) renderStatusBar() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var left string
	if m.session != nil && m.session.Usable() {
		left = m.theme.StatusModel.Render(m.session.Model())
	} else {
		left = m.theme.StatusWarning.Render("not configured")
	}

	content := left
	if m.statusMsg != "" {
		content += "  " + m.theme.StatusWarning.Render(m.statusMsg)
	} else if m.state == StateWaiting {
		content += "  " + m.theme.ThinkingText.Render("waiting for reply")
	}

	right := m.renderShortcuts()

	// lipgloss measures display width, so styled segments are safe here.
	gap := width - lipgloss.Width(content) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return m.theme.StatusBar.Width(width).Render(content + strings.Repeat(" ", gap) + right)
}

// renderShortcuts formats the short help bindings for the status bar.
func (m Model) renderShortcuts() string {
	parts := make([]string, 0, len(m.keyMap.ShortHelp()))
	for _, b := range m.keyMap.ShortHelp() {
		h := b.Help()
		parts = append(parts, m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
