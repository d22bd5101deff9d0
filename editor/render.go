package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/pointwise/buffer"
	"github.com/iw2rmb/pointwise/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(n)
	}

	left := max(m.xOffset, 0)
	right := int(^uint(0) >> 1)
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	out := make([]string, 0, n)
	for row := range n {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderLine(row, cursor, sel, selOK, left, right))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine renders the cells [left, right) of row. Clusters cut by either
// edge are drawn as blanks to keep alignment; tabs expand to spaces.
func (m *Model) renderLine(row int, cursor buffer.Pos, sel buffer.Range, selOK bool, left, right int) string {
	st := m.cfg.Style
	clusters := grapheme.Split(m.buf.Line(row))
	cells := grapheme.Cells(clusters, m.cfg.TabWidth)

	cursorCol := -1
	if m.focused && row == cursor.Row {
		cursorCol = min(max(cursor.Col, 0), len(clusters))
	}
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(clusters))

	var (
		sb      strings.Builder
		run     strings.Builder
		runKind = -1
	)
	const (
		kindText = iota
		kindSel
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := st.Text
		if runKind == kindSel {
			style = st.Selection
		}
		sb.WriteString(style.Render(run.String()))
		run.Reset()
	}

	for i, c := range clusters {
		segL, segR := cells[i], cells[i+1]
		spanL, spanR := max(segL, left), min(segR, right)
		if spanL >= spanR {
			continue
		}

		text := c
		if c == "\t" || spanL != segL || spanR != segR {
			text = strings.Repeat(" ", spanR-spanL)
		}

		if i == cursorCol {
			flush()
			sb.WriteString(st.Cursor.Render(text))
			continue
		}
		kind := kindText
		if hasSel && i >= selStart && i < selEnd {
			kind = kindSel
		}
		if kind != runKind {
			flush()
			runKind = kind
		}
		run.WriteString(text)
	}
	flush()

	// Caret at end of line is a one-cell placeholder.
	if cursorCol == len(clusters) {
		eol := cells[len(clusters)]
		if eol >= left && eol < right {
			sb.WriteString(st.Cursor.Render(st.endOfLine()))
		}
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.Col
	}
	if row == sel.End.Row {
		end = sel.End.Col
	}
	return start, end, start < end
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}
