// confide TUI - a private terminal companion for supportive AI conversation.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/confide-tui/internal/credential"
	"github.com/jeranaias/confide-tui/internal/gemini"
	"github.com/jeranaias/confide-tui/internal/session"
	"github.com/jeranaias/confide-tui/internal/ui/chat"
	"github.com/jeranaias/confide-tui/internal/ui/styles"
)

func main() {
	theme := styles.NewTheme()

	// Resolve the API key before entering the alternate screen so the
	// setup instructions and key prompt use the plain terminal.
	key, err := credential.Resolve(credential.DefaultOptions())
	if err != nil {
		fatal(theme, err)
	}

	client := gemini.NewClient(key)

	sess, err := session.New(client)
	if err != nil {
		fatal(theme, err)
	}

	p := tea.NewProgram(
		chat.New(theme, sess),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running confide: %v\n", err)
		os.Exit(1)
	}
}

// fatal reports a configuration failure and exits. Startup problems are
// unrecoverable: without a working session there is nothing to chat with.
func fatal(theme *styles.Theme, err error) {
	body := theme.ErrorTitle.Render("Error configuring API: "+err.Error()) + "\n\n" +
		theme.ErrorMessage.Render("Fix the API key setup and start again.")
	fmt.Fprintln(os.Stderr, theme.ErrorBox.Render(body))
	os.Exit(1)
}
