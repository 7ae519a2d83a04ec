// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini provides the HTTP client for Google's Generative Language API.
//
// The client performs one blocking generateContent call per conversation turn.
// There is no streaming and no retry policy: a turn either yields one reply or
// one classified error (quota, auth, model, or generic).
//
// # Key Types
//
//   - Client: HTTP client for the generateContent endpoint
//   - Content: one conversation turn in API format ("user" or "model" role)
//   - GenerateContentResponse: response envelope with candidate extraction
//
// # Usage
//
// Create a client and send the accumulated conversation:
//
//	client := gemini.NewClient(apiKey)
//	resp, err := client.GenerateContent(ctx, contents)
//	if err != nil {
//	    // errors.Is(err, gemini.ErrQuotaExceeded) etc.
//	}
//	reply, err := resp.Text()
//
// # Security
//
// API keys are never logged. The key travels in a request header rather than
// the URL, and any display goes through the fingerprint form of APIKeyMasked.
package gemini
