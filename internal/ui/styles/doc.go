// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the confide TUI.

This package defines the color palette and themed lipgloss styles used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

## Transcript Colors

Each transcript entry renders in exactly one of three colors:

	UserText      - Deep red for the user's lines
	AssistantText - Bright green for the AI Helper's replies
	ErrorText     - Error entries and warnings

## Surface Colors

Layered surface system for depth:

	Surface       - Main background
	SurfaceInput  - Input field background
	SurfaceChrome - Header and status bar background
	Overlay       - Borders and separators

## Text Colors

Hierarchical text color system:

	TextPrimary - Main content text
	TextChrome  - Text on chrome surfaces
	TextMuted   - De-emphasized text

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}
	if theme.HasTrueColor {
		// Terminal supports 16M colors
	}

# Usage Example

	import "github.com/jeranaias/confide-tui/internal/ui/styles"

	theme := styles.NewTheme()
	line := theme.AssistantEntry.Render("AI Helper: Hello.")
*/
package styles
