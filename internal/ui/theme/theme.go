package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — high-contrast arcade look
var (
	Primary = lipgloss.Color("#F59E0B") // Amber
	Accent  = lipgloss.Color("#38BDF8") // Sky
	Success = lipgloss.Color("#34D399") // Emerald
	Error   = lipgloss.Color("#FB7185") // Rose
	Text    = lipgloss.Color("#F1F5F9") // Near-white
	TextDim = lipgloss.Color("#64748B") // Slate
	BgCard  = lipgloss.Color("#1E1B2E") // Deep violet
	Border  = lipgloss.Color("#3F3A5A") // Muted violet
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Coin = lipgloss.NewStyle().
		Foreground(Primary)
)

// Card is the bordered box used for question panels and dialogs.
var Card = lipgloss.NewStyle().
	Background(BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)
