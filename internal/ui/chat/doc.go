// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the main chat view component for the confide TUI
application.

The chat package implements a complete terminal-based chat interface using
the Bubble Tea framework. It renders an append-only conversation transcript
and submits each user message to the Gemini-backed session as a single
request/response turn.

# Key Components

## Model (model.go)

The Model struct is the central Bubble Tea model that maintains all chat
state:
  - The transcript: an ordered list of user, assistant, and error entries
  - Input handling through a single-line text field
  - Viewport for transcript scrolling
  - The in-flight turn, identified by a unique turn ID

## View Rendering (view.go)

Rendering logic for the complete chat interface:
  - Header with the application title and active model name
  - Transcript entries with role-specific coloring
  - Activity row with a spinner while a reply is pending
  - Status bar with warnings and shortcut hints

## Input Submission (input.go)

The submission pipeline validates input, appends the user entry, and
spawns a background worker per turn. Exactly one turn may be in flight at
a time; its outcome arrives as a TurnCompleteMsg or TurnErrorMsg.

# Usage

Create a new chat model and run it as a Bubble Tea program:

	client := gemini.NewClient(apiKey)
	sess, err := session.New(client)
	if err != nil {
		// handle configuration failure
	}
	m := chat.New(styles.NewTheme(), sess)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		// handle terminal failure
	}

# Turn Lifecycle

Submission trims the input, refuses empty or in-flight submissions, and
appends the user entry before the request starts. The worker calls the
session off the event loop and always posts exactly one outcome message.
A successful turn appends the assistant reply; a failed turn appends a
fixed notice in the error style and leaves the session history unchanged,
so the next submission carries the same context.
*/
package chat
