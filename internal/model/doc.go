// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types used throughout the application
// for representing the chat history exchanged with the Gemini API.
//
// # Key Types
//
//   - Conversation: Append-only container for a chat session's messages
//   - Message: Single message with role, content, and timestamp
//   - Role: Message role enumeration (user, assistant)
//
// # Usage
//
// Create a new conversation seeded with an opening greeting:
//
//	conv := model.NewConversation(persona, greeting)
//	conv.AddUserMessage("Hello!")
//	contents := conv.ToContents()
package model
