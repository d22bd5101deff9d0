package point

import "github.com/iw2rmb/pointwise/buffer"

// GotoPoint moves the caret to pt (clamped) and reveals it.
func GotoPoint(h Host, pt int) {
	setCaret(h, PointToPosition(h, pt))
}

// GotoPosition moves the caret to (line, column) after validation and
// reveals it.
func GotoPosition(h Host, line, column int) {
	setCaret(h, h.Validate(buffer.Pos{Row: line, Col: column}))
}

// ToLine moves to line, keeping the current column where the line allows.
func ToLine(h Host, line int) { GotoPosition(h, line, CurrentColumn(h)) }

// ToColumn moves to column on the current line.
func ToColumn(h Host, column int) { GotoPosition(h, CurrentLine(h), column) }

func BeginningOfLine(h Host) { ToColumn(h, 0) }

func EndOfLine(h Host) { ToColumn(h, maxInt) }

func BeginningOfBuffer(h Host) { GotoPoint(h, 0) }

func EndOfBuffer(h Host) { GotoPoint(h, maxInt) }

// MoveByCharacters moves the caret by delta points.
//
// A positive delta is widened by the number of line breaks between the caret
// and the unadjusted target; a negative delta is applied as is.
func MoveByCharacters(h Host, delta int) {
	GotoPoint(h, target(h, delta))
}

func ForwardChar(h Host, n int) { MoveByCharacters(h, n) }

func BackwardChar(h Host, n int) { MoveByCharacters(h, -n) }

// MoveByLines moves |n| lines down (n > 0) or up (n < 0), one line per step.
// Each step keeps the column the caret has after the previous step, so a short
// line in between clamps the column for the rest of the motion.
func MoveByLines(h Host, n int) {
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for range n {
		line := CurrentLine(h)
		ToLine(h, line+step)
		if CurrentLine(h) == line {
			return
		}
	}
}

func NextLine(h Host, n int) { MoveByLines(h, n) }

func PreviousLine(h Host, n int) { MoveByLines(h, -n) }

// LineBreaksBetween counts the line breaks crossed walking from the lower to
// the higher of a and b. Both bounds are clamped into the document first.
func LineBreaksBetween(h Host, a, b int) int {
	if a > b {
		a, b = b, a
	}
	a, b = clampPoint(h, a), clampPoint(h, b)
	if a == b {
		return 0
	}

	last := h.LineCount() - 1
	n := 0
	for row := h.PosFromPoint(a).Row; row < last; row++ {
		eol := h.PointFromPos(buffer.Pos{Row: row, Col: h.LineLen(row)})
		if eol >= b {
			break
		}
		n++
	}
	return n
}

// target returns the adjusted point delta points away from the caret.
func target(h Host, delta int) int {
	cur := Point(h)
	pt := addSat(cur, delta)
	if delta > 0 {
		pt = addSat(pt, LineBreaksBetween(h, cur, pt))
	}
	return pt
}

// addSat adds without wrapping past the int range.
func addSat(a, b int) int {
	switch {
	case b > 0 && a > maxInt-b:
		return maxInt
	case b < 0 && a < -maxInt-b:
		return -maxInt
	}
	return a + b
}

func setCaret(h Host, p buffer.Pos) {
	h.SetCaret(p)
	h.RevealCursor()
}
