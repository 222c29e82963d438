package styles

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// colorTargets maps each token to the color variable it overrides.
var colorTargets = map[ColorToken]*lipgloss.AdaptiveColor{
	TokenTextPrimary:    &TextPrimaryColor,
	TokenTextSecondary:  &TextSecondaryColor,
	TokenTextMuted:      &TextMutedColor,
	TokenStatusError:    &StatusErrorColor,
	TokenStatusSuccess:  &StatusSuccessColor,
	TokenDiffAddition:   &DiffAdditionColor,
	TokenDiffDeletion:   &DiffDeletionColor,
	TokenDiffContext:    &DiffContextColor,
	TokenDiffHunk:       &DiffHunkColor,
	TokenDiffWordAddBg:  &DiffWordAdditionBgColor,
	TokenDiffWordDelBg:  &DiffWordDeletionBgColor,
	TokenSelectionBg:    &SelectionBackgroundColor,
	TokenSyntaxKeyword:  &SyntaxKeywordColor,
	TokenSyntaxString:   &SyntaxStringColor,
	TokenSyntaxComment:  &SyntaxCommentColor,
	TokenSyntaxNumber:   &SyntaxNumberColor,
	TokenSyntaxFunction: &SyntaxFunctionColor,
	TokenSyntaxType:     &SyntaxTypeColor,
	TokenSyntaxOperator: &SyntaxOperatorColor,
	TokenSyntaxLiteral:  &SyntaxLiteralColor,
}

// ApplyTheme overrides color tokens from a config map of token name to hex
// color. The same color is used for light and dark terminal backgrounds.
// Unknown tokens and malformed colors are rejected before any variable is
// touched.
func ApplyTheme(colors map[string]string) error {
	for key, value := range colors {
		if _, ok := colorTargets[ColorToken(key)]; !ok {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !hexColorRegex.MatchString(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
	}
	for key, value := range colors {
		*colorTargets[ColorToken(key)] = lipgloss.AdaptiveColor{Light: value, Dark: value}
	}
	return nil
}
