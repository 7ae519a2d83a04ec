// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the Bubble Tea message types used by the chat
// interface. A submission spawns exactly one background task, and that
// task finishes by delivering exactly one of the outcome messages below
// back to the event loop. No other goroutine ever touches the model.
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

// =============================================================================
// TURN OUTCOME MESSAGES
// =============================================================================

// TurnCompleteMsg signals that the turn identified by ID received a reply.
type TurnCompleteMsg struct {
	ID    string
	Reply string
}

// TurnErrorMsg signals that the turn identified by ID failed. The UI maps
// Err onto one of the fixed transcript notices rather than showing it raw.
type TurnErrorMsg struct {
	ID  string
	Err error
}
