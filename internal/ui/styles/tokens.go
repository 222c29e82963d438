package styles

// ColorToken represents a named, themeable color. These are the keys users
// can override under theme.colors in their config.
type ColorToken string

const (
	// Text hierarchy
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"

	// Status
	TokenStatusError   ColorToken = "status.error"
	TokenStatusSuccess ColorToken = "status.success"

	// Diff
	TokenDiffAddition   ColorToken = "diff.addition"
	TokenDiffDeletion   ColorToken = "diff.deletion"
	TokenDiffContext    ColorToken = "diff.context"
	TokenDiffHunk       ColorToken = "diff.hunk"
	TokenDiffWordAddBg  ColorToken = "diff.word.addition.bg"
	TokenDiffWordDelBg  ColorToken = "diff.word.deletion.bg"
	TokenSelectionBg    ColorToken = "selection.bg"

	// Syntax
	TokenSyntaxKeyword  ColorToken = "syntax.keyword"
	TokenSyntaxString   ColorToken = "syntax.string"
	TokenSyntaxComment  ColorToken = "syntax.comment"
	TokenSyntaxNumber   ColorToken = "syntax.number"
	TokenSyntaxFunction ColorToken = "syntax.function"
	TokenSyntaxType     ColorToken = "syntax.type"
	TokenSyntaxOperator ColorToken = "syntax.operator"
	TokenSyntaxLiteral  ColorToken = "syntax.literal"
)
