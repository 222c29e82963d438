// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"} // File paths, secondary info
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Gutters, help text, footers

	// Semantic color names - Status
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states

	// Diff colors
	DiffAdditionColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#73F59F"} // Added lines
	DiffDeletionColor = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF8787"} // Removed lines
	DiffContextColor  = lipgloss.AdaptiveColor{Light: "#444444", Dark: "#AAAAAA"} // Unchanged lines
	DiffHunkColor     = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // @@ headers

	// Word-level highlight backgrounds for changed spans within a pair
	DiffWordAdditionBgColor = lipgloss.AdaptiveColor{Light: "#C8E6C9", Dark: "#1B4721"}
	DiffWordDeletionBgColor = lipgloss.AdaptiveColor{Light: "#FFCDD2", Dark: "#55201F"}

	// Syntax highlighting colors (Catppuccin Mocha for dark)
	SyntaxKeywordColor  = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"} // mauve
	SyntaxStringColor   = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"} // yellow
	SyntaxCommentColor  = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"} // overlay0
	SyntaxNumberColor   = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"} // peach
	SyntaxFunctionColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // blue
	SyntaxTypeColor     = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"} // teal
	SyntaxOperatorColor = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"} // red
	SyntaxLiteralColor  = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"} // peach

	// Selection highlight for the focused hunk
	SelectionBackgroundColor = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#2D3436"}
)
