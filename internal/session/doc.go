// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the conversation state exchanged with the Gemini
// API.
//
// A Session wraps a configured client and an append-only conversation
// seeded with the supportive-listener persona and the opening greeting.
// Submissions serialize on the session's mutex, so concurrent callers
// observe history growth in submission order.
//
// # Key Types
//
//   - Session: one conversation bound to one client
//   - Persona: the fixed system instruction seeded as the leading turn
//   - Greeting: the fixed assistant message that opens every conversation
//
// # Usage
//
// Create a session and submit a turn:
//
//	sess, err := session.New(client)
//	if err != nil {
//		// client was not configured
//	}
//	reply, err := sess.Submit(ctx, "I feel anxious")
//
// # History Discipline
//
// Submit performs exactly one remote call per invocation. On success the
// history grows by exactly two messages (the user turn, then the reply);
// on failure it is left untouched, so a later attempt resends the same
// context. Nothing is ever rewritten or removed.
package session
