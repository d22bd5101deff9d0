package point

import "github.com/iw2rmb/pointwise/buffer"

// PositionToPoint returns the number of points preceding pos.
func PositionToPoint(h Host, pos buffer.Pos) int {
	return h.PointFromPos(h.Validate(pos))
}

// PointToPosition clamps pt into [PointMin, PointMax] and converts it.
func PointToPosition(h Host, pt int) buffer.Pos {
	return h.PosFromPoint(clampPoint(h, pt))
}

// Validate clamps pos into the document.
func Validate(h Host, pos buffer.Pos) buffer.Pos { return h.Validate(pos) }

// Point returns the caret point.
func Point(h Host) int { return h.PointFromPos(h.Cursor()) }

// Position returns the caret position.
func Position(h Host) buffer.Pos { return h.Cursor() }

func CurrentLine(h Host) int { return h.Cursor().Row }

func CurrentColumn(h Host) int { return h.Cursor().Col }

func clampPoint(h Host, pt int) int {
	return min(max(pt, PointMin(h)), PointMax(h))
}
