package point

import "github.com/iw2rmb/pointwise/buffer"

// The boundary predicates compare the caret against the positions the
// motion commands would reach, computed through the host's Validate instead
// of moving the caret.

func IsBeginningOfLine(h Host) bool { return CurrentColumn(h) == 0 }

func IsEndOfLine(h Host) bool {
	cur := h.Cursor()
	return cur == h.Validate(buffer.Pos{Row: cur.Row, Col: maxInt})
}

func IsBeginningOfBuffer(h Host) bool {
	return IsBeginningOfLine(h) && CurrentLine(h) == 0
}

func IsEndOfBuffer(h Host) bool { return h.Cursor() == endOfBuffer(h) }

// PointMin is the first point of any document.
func PointMin(Host) int { return 0 }

// PointMax is the point EndOfBuffer moves to.
func PointMax(h Host) int { return h.PointFromPos(endOfBuffer(h)) }

func endOfBuffer(h Host) buffer.Pos {
	return h.Validate(buffer.Pos{Row: maxInt, Col: maxInt})
}
