// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		want     string
	}{
		{
			name:     "short text unchanged",
			text:     "hello",
			maxWidth: 20,
			want:     "hello",
		},
		{
			name:     "breaks at space",
			text:     "the quick brown fox",
			maxWidth: 10,
			want:     "the quick\nbrown fox",
		},
		{
			name:     "preserves existing newlines",
			text:     "line one\nline two",
			maxWidth: 20,
			want:     "line one\nline two",
		},
		{
			name:     "hard break without spaces",
			text:     "abcdefghij",
			maxWidth: 4,
			want:     "abcd\nefgh\nij",
		},
		{
			name:     "zero width returns input",
			text:     "untouched text",
			maxWidth: 0,
			want:     "untouched text",
		},
		{
			name:     "empty string",
			text:     "",
			maxWidth: 10,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.maxWidth)
			if got != tt.want {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrapTextUnicode(t *testing.T) {
	// Width is counted in runes, not bytes.
	text := "日本語のテキストです"
	got := wrapText(text, 5)

	for _, line := range strings.Split(got, "\n") {
		if n := len([]rune(line)); n > 5 {
			t.Errorf("line %q has %d runes, want <= 5", line, n)
		}
	}
	if strings.ReplaceAll(got, "\n", "") != text {
		t.Errorf("wrapping lost characters: %q", got)
	}
}

func TestWrapTextLongLines(t *testing.T) {
	text := strings.Repeat("word ", 50)
	got := wrapText(strings.TrimSpace(text), 20)

	for _, line := range strings.Split(got, "\n") {
		if n := len([]rune(line)); n > 20 {
			t.Errorf("line %q has %d runes, want <= 20", line, n)
		}
	}
}
