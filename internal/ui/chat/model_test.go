// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains tests for the model lifecycle: submission, turn
// outcomes, and layout.
package chat

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/confide-tui/internal/gemini"
	"github.com/jeranaias/confide-tui/internal/session"
	"github.com/jeranaias/confide-tui/internal/ui/styles"
)

// replyHandler serves a fixed Gemini reply for every request.
func replyHandler(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":%q}]}}]}`, text)
	}
}

// quotaHandler rejects every request with the quota-exhausted envelope.
func quotaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"code":429,"message":"quota exhausted","status":"RESOURCE_EXHAUSTED"}}`)
	}
}

// newChatSession builds a usable session backed by a test server.
func newChatSession(t *testing.T, handler http.HandlerFunc) *session.Session {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess, err := session.New(gemini.NewClient("TESTKEY").WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}
	return sess
}

// typeText feeds text into the model's input field one key event at a time.
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

// pressEnter submits the pending input.
func pressEnter(m Model) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestNewSeedsGreeting(t *testing.T) {
	sess := newChatSession(t, replyHandler("unused"))
	m := New(styles.NewTheme(), sess)

	if len(m.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(m.entries))
	}
	if m.entries[0].kind != entryAssistant {
		t.Errorf("first entry kind = %d, want assistant", m.entries[0].kind)
	}
	want := "AI Helper: " + session.Greeting
	if m.entries[0].text != want {
		t.Errorf("first entry = %q, want %q", m.entries[0].text, want)
	}
	if m.state != StateReady {
		t.Errorf("state = %d, want StateReady", m.state)
	}
}

func TestNewWithoutSession(t *testing.T) {
	m := New(styles.NewTheme(), nil)

	if len(m.entries) != 0 {
		t.Errorf("entries = %d, want 0", len(m.entries))
	}
}

func TestSubmitAppendsUserEntryAndLocks(t *testing.T) {
	sess := newChatSession(t, replyHandler("unused"))
	m := New(styles.NewTheme(), sess)

	m = typeText(t, m, "hello")
	m, cmd := pressEnter(m)

	if len(m.entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(m.entries))
	}
	if m.entries[1].kind != entryUser {
		t.Errorf("entry kind = %d, want user", m.entries[1].kind)
	}
	if m.entries[1].text != "You: hello" {
		t.Errorf("entry = %q, want %q", m.entries[1].text, "You: hello")
	}
	if m.state != StateWaiting {
		t.Errorf("state = %d, want StateWaiting", m.state)
	}
	if m.turnID == "" {
		t.Error("turnID is empty, want a unique id")
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared, still %q", m.input.Value())
	}
	if cmd == nil {
		t.Error("cmd is nil, want the turn worker")
	}
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	sess := newChatSession(t, replyHandler("unused"))
	m := New(styles.NewTheme(), sess)

	m = typeText(t, m, "  hi there  ")
	m, _ = pressEnter(m)

	if got := m.entries[1].text; got != "You: hi there" {
		t.Errorf("entry = %q, want %q", got, "You: hi there")
	}
}

func TestSubmitIgnoresEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and spaces", " \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newChatSession(t, replyHandler("unused"))
			m := New(styles.NewTheme(), sess)

			if tt.input != "" {
				m = typeText(t, m, tt.input)
			}
			m, cmd := pressEnter(m)

			if len(m.entries) != 1 {
				t.Errorf("entries = %d, want 1 (nothing appended)", len(m.entries))
			}
			if m.state != StateReady {
				t.Errorf("state = %d, want StateReady", m.state)
			}
			if cmd != nil {
				t.Error("cmd != nil, want no work spawned")
			}
		})
	}
}

func TestSubmitWithoutSessionWarns(t *testing.T) {
	m := New(styles.NewTheme(), nil)

	m = typeText(t, m, "hello")
	m, cmd := pressEnter(m)

	if len(m.entries) != 0 {
		t.Errorf("entries = %d, want 0", len(m.entries))
	}
	if m.statusMsg != unusableNotice {
		t.Errorf("statusMsg = %q, want %q", m.statusMsg, unusableNotice)
	}
	if cmd != nil {
		t.Error("cmd != nil, want no work spawned")
	}
}

func TestSubmitRefusedWhileWaiting(t *testing.T) {
	sess := newChatSession(t, replyHandler("unused"))
	m := New(styles.NewTheme(), sess)

	m = typeText(t, m, "first")
	m, _ = pressEnter(m)
	firstTurn := m.turnID

	m = typeText(t, m, "second")
	m, _ = pressEnter(m)

	if len(m.entries) != 2 {
		t.Errorf("entries = %d, want 2 (second submit refused)", len(m.entries))
	}
	if m.turnID != firstTurn {
		t.Errorf("turnID changed from %q to %q during in-flight turn", firstTurn, m.turnID)
	}
}

func TestTurnCompleteAppendsReply(t *testing.T) {
	sess := newChatSession(t, replyHandler("unused"))
	m := New(styles.NewTheme(), sess)

	m = typeText(t, m, "hello")
	m, _ = pressEnter(m)

	next, _ := m.Update(TurnCompleteMsg{ID: m.turnID, Reply: "I hear you."})
	m = next.(Model)

	if len(m.entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(m.entries))
	}
	if m.entries[2].kind != entryAssistant {
		t.Errorf("entry kind = %d, want assistant", m.entries[2].kind)
	}
	if m.entries[2].text != "AI Helper: I hear you." {
		t.Errorf("entry = %q, want %q", m.entries[2].text, "AI Helper: I hear you.")
	}
	if m.state != StateReady {
		t.Errorf("state = %d, want StateReady", m.state)
	}
	if m.turnID != "" {
		t.Errorf("turnID = %q, want cleared", m.turnID)
	}
}

func TestStaleOutcomesIgnored(t *testing.T) {
	sess := newChatSession(t, replyHandler("unused"))
	m := New(styles.NewTheme(), sess)

	m = typeText(t, m, "hello")
	m, _ = pressEnter(m)

	next, _ := m.Update(TurnCompleteMsg{ID: "stale", Reply: "ghost reply"})
	m = next.(Model)
	if len(m.entries) != 2 {
		t.Errorf("entries = %d after stale complete, want 2", len(m.entries))
	}
	if m.state != StateWaiting {
		t.Errorf("state = %d after stale complete, want StateWaiting", m.state)
	}

	next, _ = m.Update(TurnErrorMsg{ID: "stale", Err: errors.New("ghost error")})
	m = next.(Model)
	if len(m.entries) != 2 {
		t.Errorf("entries = %d after stale error, want 2", len(m.entries))
	}
	if m.state != StateWaiting {
		t.Errorf("state = %d after stale error, want StateWaiting", m.state)
	}
}

func TestTurnErrorNotices(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "quota exhaustion keeps assistant prefix",
			err:  fmt.Errorf("%w: resource exhausted", gemini.ErrQuotaExceeded),
			want: "AI Helper: " + quotaNotice,
		},
		{
			name: "generic failure",
			err:  errors.New("connection refused"),
			want: genericNotice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newChatSession(t, replyHandler("unused"))
			m := New(styles.NewTheme(), sess)

			m = typeText(t, m, "hello")
			m, _ = pressEnter(m)

			next, _ := m.Update(TurnErrorMsg{ID: m.turnID, Err: tt.err})
			m = next.(Model)

			if len(m.entries) != 3 {
				t.Fatalf("entries = %d, want 3", len(m.entries))
			}
			if m.entries[2].kind != entryError {
				t.Errorf("entry kind = %d, want error", m.entries[2].kind)
			}
			if m.entries[2].text != tt.want {
				t.Errorf("entry = %q, want %q", m.entries[2].text, tt.want)
			}
			if m.state != StateReady {
				t.Errorf("state = %d, want StateReady", m.state)
			}
		})
	}
}

func TestFullTurnAgainstServer(t *testing.T) {
	const reply = "That sounds difficult. Can you tell me more?"
	sess := newChatSession(t, replyHandler(reply))
	m := New(styles.NewTheme(), sess)

	m = typeText(t, m, "I feel anxious")
	m, _ = pressEnter(m)

	// Run the worker synchronously instead of through a program loop.
	msg := submitTurn(m.session, m.turnID, "I feel anxious")()
	next, _ := m.Update(msg)
	m = next.(Model)

	wantTexts := []string{
		"AI Helper: " + session.Greeting,
		"You: I feel anxious",
		"AI Helper: " + reply,
	}
	wantKinds := []entryKind{entryAssistant, entryUser, entryAssistant}

	if len(m.entries) != len(wantTexts) {
		t.Fatalf("entries = %d, want %d", len(m.entries), len(wantTexts))
	}
	for i := range wantTexts {
		if m.entries[i].text != wantTexts[i] {
			t.Errorf("entries[%d] = %q, want %q", i, m.entries[i].text, wantTexts[i])
		}
		if m.entries[i].kind != wantKinds[i] {
			t.Errorf("entries[%d] kind = %d, want %d", i, m.entries[i].kind, wantKinds[i])
		}
	}
	if m.state != StateReady {
		t.Errorf("state = %d, want StateReady", m.state)
	}
}

func TestQuotaTurnAgainstServer(t *testing.T) {
	sess := newChatSession(t, quotaHandler())
	m := New(styles.NewTheme(), sess)

	m = typeText(t, m, "hello")
	m, _ = pressEnter(m)

	msg := submitTurn(m.session, m.turnID, "hello")()
	turnErr, ok := msg.(TurnErrorMsg)
	if !ok {
		t.Fatalf("worker returned %T, want TurnErrorMsg", msg)
	}
	if !errors.Is(turnErr.Err, gemini.ErrQuotaExceeded) {
		t.Fatalf("worker error = %v, want ErrQuotaExceeded", turnErr.Err)
	}

	next, _ := m.Update(msg)
	m = next.(Model)

	want := "AI Helper: " + quotaNotice
	if m.entries[2].text != want {
		t.Errorf("entry = %q, want %q", m.entries[2].text, want)
	}
	if m.entries[2].kind != entryError {
		t.Errorf("entry kind = %d, want error", m.entries[2].kind)
	}

	// A failed turn leaves the interface usable for another attempt.
	m = typeText(t, m, "still here")
	m, cmd := pressEnter(m)
	if len(m.entries) != 4 {
		t.Errorf("entries = %d after retry, want 4", len(m.entries))
	}
	if cmd == nil {
		t.Error("cmd is nil on retry, want the turn worker")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"ctrl+q", tea.KeyMsg{Type: tea.KeyCtrlQ}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newChatSession(t, replyHandler("unused"))
			m := New(styles.NewTheme(), sess)

			_, cmd := m.Update(tt.key)
			if cmd == nil {
				t.Fatal("cmd is nil, want tea.Quit")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

func TestResizeRecalculatesLayout(t *testing.T) {
	sess := newChatSession(t, replyHandler("unused"))
	m := New(styles.NewTheme(), sess)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if m.viewport.Width != 100 {
		t.Errorf("viewport width = %d, want 100", m.viewport.Width)
	}
	// Five rows of chrome: header, activity row, input border, input
	// line, status bar.
	if m.viewport.Height != 35 {
		t.Errorf("viewport height = %d, want 35", m.viewport.Height)
	}
	if m.input.Width != 92 {
		t.Errorf("input width = %d, want 92", m.input.Width)
	}
}

func TestViewShowsTitleAndTranscript(t *testing.T) {
	sess := newChatSession(t, replyHandler("unused"))
	m := New(styles.NewTheme(), sess)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, headerTitle) {
		t.Errorf("view missing title %q", headerTitle)
	}
	if !strings.Contains(view, "AI Helper:") {
		t.Error("view missing the greeting entry")
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := New(styles.NewTheme(), nil)

	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q before resize, want Loading...", got)
	}
}
