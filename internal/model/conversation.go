// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/jeranaias/confide-tui/internal/gemini"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds a complete chat conversation with history and metadata.
//
// Messages are append-only: turns are never edited or removed once added, so
// every request carries the full accumulated history.
type Conversation struct {
	// Identity
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Messages
	Messages []*Message `json:"messages"`

	// System prompt, sent ahead of the history on every request but never
	// shown in the transcript.
	SystemPrompt string `json:"system_prompt,omitempty"`
}

// NewConversation creates a new conversation carrying the given system
// prompt, seeded with a single assistant greeting message.
func NewConversation(systemPrompt, greeting string) *Conversation {
	conv := &Conversation{
		ID:           generateConversationID(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Messages:     make([]*Message, 0, 8),
		SystemPrompt: systemPrompt,
	}
	conv.AddMessage(NewAssistantMessage(greeting))
	return conv
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AddMessage appends a message to the conversation.
func (c *Conversation) AddMessage(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
}

// AddUserMessage creates and appends a user message.
func (c *Conversation) AddUserMessage(content string) *Message {
	msg := NewUserMessage(content)
	c.AddMessage(msg)
	return msg
}

// AddAssistantMessage creates and appends an assistant message.
func (c *Conversation) AddAssistantMessage(content string) *Message {
	msg := NewAssistantMessage(content)
	c.AddMessage(msg)
	return msg
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// History returns a snapshot of the message list. The returned slice is a
// copy so callers can iterate without racing appends.
func (c *Conversation) History() []*Message {
	history := make([]*Message, len(c.Messages))
	copy(history, c.Messages)
	return history
}

// =============================================================================
// WIRE CONVERSION
// =============================================================================

// ToContents converts the conversation to Gemini content format. The system
// prompt leads as a user content item, then the stored messages follow in
// order, so the wire history is always [persona, greeting, ...turns].
func (c *Conversation) ToContents() []gemini.Content {
	contents := make([]gemini.Content, 0, len(c.Messages)+1)

	if c.SystemPrompt != "" {
		contents = append(contents, gemini.NewUserContent(c.SystemPrompt))
	}

	for _, msg := range c.Messages {
		if msg.Content == "" {
			continue
		}

		switch msg.Role {
		case RoleUser:
			contents = append(contents, gemini.NewUserContent(msg.Content))
		case RoleAssistant:
			contents = append(contents, gemini.NewModelContent(msg.Content))
		}
	}

	return contents
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateConversationID creates a unique conversation ID.
func generateConversationID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "conv_" + hex.EncodeToString(bytes)
}
