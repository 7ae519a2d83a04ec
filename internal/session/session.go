// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the conversation state exchanged with the Gemini
// API.
//
// This file implements the Session itself: seeding, the single Submit
// operation, and the mutex discipline that serializes concurrent callers.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/jeranaias/confide-tui/internal/gemini"
	"github.com/jeranaias/confide-tui/internal/model"
)

// ErrNotConfigured indicates the session has no usable client behind it.
var ErrNotConfigured = errors.New("chat session not configured")

// Session holds one conversation against the Gemini API.
type Session struct {
	mu     sync.Mutex
	client *gemini.Client
	conv   *model.Conversation
}

// New creates a session seeded with the persona and opening greeting. The
// client must already be configured; an unusable client is rejected here so
// startup can treat it like a missing credential.
func New(client *gemini.Client) (*Session, error) {
	if client == nil || !client.IsConfigured() {
		return nil, ErrNotConfigured
	}
	return &Session{
		client: client,
		conv:   model.NewConversation(Persona, Greeting),
	}, nil
}

// Submit sends one user turn and returns the assistant's reply. The request
// carries the full accumulated history plus the new turn. The two turns are
// committed only after the call succeeds: history grows by exactly two per
// successful submission, and a failed call leaves it untouched so the
// session stays usable.
func (s *Session) Submit(ctx context.Context, userText string) (string, error) {
	if !s.Usable() {
		return "", ErrNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	contents := append(s.conv.ToContents(), gemini.NewUserContent(userText))

	resp, err := s.client.GenerateContent(ctx, contents)
	if err != nil {
		return "", err
	}
	reply, err := resp.Text()
	if err != nil {
		return "", err
	}

	s.conv.AddUserMessage(userText)
	s.conv.AddAssistantMessage(reply)
	return reply, nil
}

// Usable reports whether the session can accept submissions.
func (s *Session) Usable() bool {
	return s != nil && s.client != nil && s.client.IsConfigured()
}

// Model returns the model name the session talks to.
func (s *Session) Model() string {
	if s == nil || s.client == nil {
		return ""
	}
	return s.client.Model()
}

// History returns a snapshot of the conversation so far.
func (s *Session) History() []*model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conv.History()
}

// MessageCount returns the number of turns accumulated so far, including
// the seeded greeting.
func (s *Session) MessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conv.MessageCount()
}
