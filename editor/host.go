package editor

import (
	"github.com/iw2rmb/pointwise/buffer"
	"github.com/iw2rmb/pointwise/internal/grapheme"
)

// modelHost is the point.Host a Model hands to commands: the buffer plus
// viewport scrolling.
type modelHost struct {
	*buffer.Buffer
	m *Model
}

func (h modelHost) RevealCursor() { h.m.revealCursor() }

// revealCursor scrolls the viewport so the caret cell is visible.
func (m *Model) revealCursor() {
	if m.buf == nil {
		return
	}
	m.followCursorX()
	m.rebuildContent()
	m.followCursorY()
}

func (m *Model) followCursorY() {
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}

func (m *Model) followCursorX() {
	w := m.contentWidth()
	if w <= 0 {
		m.xOffset = 0
		return
	}

	cur := m.buf.Cursor()
	cell := m.cursorCell(cur)
	if cell < m.xOffset {
		m.xOffset = cell
		return
	}
	if cell >= m.xOffset+w {
		m.xOffset = cell - w + 1
	}
}

// cursorCell returns the cell column of the caret on its line.
func (m *Model) cursorCell(cur buffer.Pos) int {
	clusters := grapheme.Split(m.buf.Line(cur.Row))
	cells := grapheme.Cells(clusters, m.cfg.TabWidth)
	return cells[min(max(cur.Col, 0), len(clusters))]
}

// contentWidth is the viewport width left for text after the gutter; 0 means
// unknown (no size yet).
func (m *Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if w <= 0 {
		return 0
	}
	if m.cfg.ShowLineNums {
		w -= gutterDigits(m.buf.LineCount()) + 1
	}
	return max(w, 1)
}
