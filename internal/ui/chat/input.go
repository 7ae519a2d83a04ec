// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains the input submission pipeline and the background
// worker that performs the remote call for a turn.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/confide-tui/internal/gemini"
	"github.com/jeranaias/confide-tui/internal/model"
	"github.com/jeranaias/confide-tui/internal/session"
)

// =============================================================================
// INPUT SUBMISSION
// =============================================================================

// submitInput validates the pending input and, when everything is in
// order, appends the user entry and spawns the turn worker. The pipeline
// refuses early without touching the transcript: an unusable session
// surfaces a status-bar warning, an in-flight turn locks submission, and
// whitespace-only input is dropped outright.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	if m.session == nil || !m.session.Usable() {
		m.statusMsg = unusableNotice
		return m, nil
	}

	if m.state == StateWaiting {
		return m, nil
	}

	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		return m, nil
	}

	m.input.Reset()
	m.statusMsg = ""

	m.appendEntry(entryUser, model.RoleUser.DisplayName()+": "+content)

	m.state = StateWaiting
	m.waitingSince = time.Now()
	m.turnID = uuid.New().String()

	// Capture before closure to avoid racing against later model updates.
	sess := m.session
	turnID := m.turnID

	return m, tea.Batch(submitTurn(sess, turnID, content), m.spinner.Tick)
}

// submitTurn performs one remote call off the event loop. It always
// delivers exactly one outcome message for turnID.
func submitTurn(sess *session.Session, turnID, content string) tea.Cmd {
	return func() tea.Msg {
		reply, err := sess.Submit(context.Background(), content)
		if err != nil {
			return TurnErrorMsg{ID: turnID, Err: err}
		}
		return TurnCompleteMsg{ID: turnID, Reply: reply}
	}
}

// errorEntryText maps a turn failure onto its fixed transcript notice.
// Quota exhaustion keeps the assistant prefix so the notice reads like
// part of the conversation; anything else gets the generic API notice.
func errorEntryText(err error) string {
	if errors.Is(err, gemini.ErrQuotaExceeded) {
		return model.RoleAssistant.DisplayName() + ": " + quotaNotice
	}
	return genericNotice
}
