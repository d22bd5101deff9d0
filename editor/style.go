package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/pointwise/internal/grapheme"
)

// Style controls how the editor draws the gutter, text and caret. The zero
// Style renders plain text with an invisible caret.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// EndOfLine is the glyph drawn under the caret when it sits after the
	// last cluster of a line. Anything other than a single cell is drawn as
	// a space.
	EndOfLine string
}

func (s Style) endOfLine() string {
	if grapheme.Count(s.EndOfLine) != 1 || grapheme.Width(s.EndOfLine, 0, 1) != 1 {
		return " "
	}
	return s.EndOfLine
}

func DefaultStyle() Style {
	var (
		dim    = lipgloss.Color("240")
		bright = lipgloss.Color("250")
		shade  = lipgloss.Color("237")
	)
	gutter := lipgloss.NewStyle().Foreground(dim)
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(bright).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(shade),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		EndOfLine:     " ",
	}
}
