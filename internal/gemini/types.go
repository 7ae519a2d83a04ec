// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini provides the HTTP client for Google's Generative Language API.
package gemini

import "strings"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// Part is one piece of content within a turn. This client only ever sends
// and receives text parts.
type Part struct {
	Text string `json:"text"`
}

// Content represents a single conversation turn in API format.
// The API accepts exactly two roles: "user" and "model".
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// NewUserContent creates a user turn with a single text part.
func NewUserContent(text string) Content {
	return Content{Role: RoleUser, Parts: []Part{{Text: text}}}
}

// NewModelContent creates a model turn with a single text part.
func NewModelContent(text string) Content {
	return Content{Role: RoleModel, Parts: []Part{{Text: text}}}
}

// Wire roles accepted by the generateContent endpoint.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// generateContentRequest is the request body for the generateContent endpoint.
type generateContentRequest struct {
	Contents []Content `json:"contents"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// Candidate is one generated reply in a response.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

// UsageMetadata reports token accounting for a single call.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// GenerateContentResponse is the success envelope from generateContent.
type GenerateContentResponse struct {
	Candidates    []Candidate   `json:"candidates"`
	UsageMetadata UsageMetadata `json:"usageMetadata"`
	ModelVersion  string        `json:"modelVersion"`
}

// Text returns the concatenated text parts of the first candidate.
// An OK response that carries no usable candidate (e.g. everything was
// filtered) is reported as ErrEmptyResponse.
func (r *GenerateContentResponse) Text() (string, error) {
	if len(r.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

// =============================================================================
// ERROR ENVELOPE
// =============================================================================

// apiErrorResponse is the error envelope returned by the API.
// Status carries the canonical RPC code name (e.g. "RESOURCE_EXHAUSTED");
// Details may carry a machine-readable reason (e.g. "API_KEY_INVALID").
type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Type   string `json:"@type"`
			Reason string `json:"reason"`
		} `json:"details"`
	} `json:"error"`
}
