package buffer

import (
	"strings"

	"github.com/iw2rmb/pointwise/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
// The cursor ends after the inserted text.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.Apply(TextEdit{Range: r, Text: s})
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case row == 0 && col == 0:
		return
	case col > 0:
		b.Apply(TextEdit{Range: Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}})
	default:
		// Join with previous line (delete the newline).
		prev := Pos{Row: row - 1, Col: len(b.lines[row-1])}
		b.Apply(TextEdit{Range: Range{Start: prev, End: b.cursor}})
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	lastRow := len(b.lines) - 1
	switch {
	case row == lastRow && col == len(b.lines[lastRow]):
		return
	case col < len(b.lines[row]):
		b.Apply(TextEdit{Range: Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}})
	default:
		b.Apply(TextEdit{Range: Range{Start: b.cursor, End: Pos{Row: row + 1, Col: 0}}})
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.Apply(TextEdit{Range: r})
}

// TextInRange returns the text covered by r after clamping and normalizing.
func (b *Buffer) TextInRange(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.LineLen)))
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.LineLen))
	text = normalizeLineBreaks(text)
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := grapheme.Join(b.lines[startRow][:startCol])
	suffix := grapheme.Join(b.lines[endRow][endCol:])

	parts := strings.Split(text, "\n")
	repl := make([][]string, 0, len(parts))
	if len(parts) == 1 {
		line, col := resegment(prefix+parts[0], suffix)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, Col: col}
	} else {
		first, _ := resegment(prefix+parts[0], "")
		repl = append(repl, first)
		for _, p := range parts[1 : len(parts)-1] {
			repl = append(repl, grapheme.Split(p))
		}
		last, col := resegment(parts[len(parts)-1], suffix)
		repl = append(repl, last)
		nextCursor = Pos{Row: startRow + len(parts) - 1, Col: col}
	}

	before := b.lines[:startRow]
	after := b.lines[endRow+1:]
	out := make([][]string, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)

	b.lines = out
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: ClampPos(r.Start, len(b.lines), b.LineLen), End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

// resegment splits head+tail into clusters and returns the column just past
// head. A cluster that straddles the seam counts as part of head, so the
// column never lands inside a cluster.
func resegment(head, tail string) ([]string, int) {
	line := grapheme.Split(head + tail)
	return line, min(grapheme.Count(head), len(line))
}

// normalizeLineBreaks folds "\r\n" and lone "\r" into "\n".
func normalizeLineBreaks(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func textForLinesRange(lines [][]string, r Range) string {
	if r.IsEmpty() {
		return ""
	}

	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == r.Start.Row {
			partStart = r.Start.Col
		}
		if row == r.End.Row {
			partEnd = r.End.Col
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
