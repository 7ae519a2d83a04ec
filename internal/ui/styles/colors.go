// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the confide TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// TRANSCRIPT COLORS
// =============================================================================

// UserText - The signature deep red for the user's transcript lines
var UserText = lipgloss.AdaptiveColor{Light: "#A30505", Dark: "#DC0707"}

// AssistantText - Bright green for the AI Helper's replies
var AssistantText = lipgloss.AdaptiveColor{Light: "#15840B", Dark: "#21ED14"}

// ErrorText - Error entries and warnings
var ErrorText = lipgloss.AdaptiveColor{Light: "#C81E1E", Dark: "#FF0000"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F0F0F"}

// SurfaceInput - Input field background
var SurfaceInput = lipgloss.AdaptiveColor{Light: "#ECECEC", Dark: "#3C3F41"}

// SurfaceChrome - Header and status bar background
var SurfaceChrome = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#505355"}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#D4D4D4", Dark: "#505050"}

// OverlayBright - Focused borders and hover states
var OverlayBright = lipgloss.AdaptiveColor{Light: "#B8B8B8", Dark: "#606060"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E6E6E6"}

// TextChrome - Text on chrome surfaces (header, status bar)
var TextChrome = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#FFFFFF"}

// TextMuted - Hints, placeholders, shortcut descriptions
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#8A8A8A"}
