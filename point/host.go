package point

import "github.com/iw2rmb/pointwise/buffer"

// Document is the read/write surface a host exposes over its text.
//
// *buffer.Buffer implements Document.
type Document interface {
	// Cursor returns the caret position.
	Cursor() buffer.Pos
	// SetCaret moves the caret to p and collapses any selection.
	SetCaret(p buffer.Pos)

	// PointFromPos converts a position to a point.
	PointFromPos(p buffer.Pos) int
	// PosFromPoint converts a point to a position, clamping it into bounds.
	PosFromPoint(pt int) buffer.Pos

	LineCount() int
	LineLen(row int) int
	// Validate clamps p into document bounds.
	Validate(p buffer.Pos) buffer.Pos

	// Apply performs the edits as one atomic transaction.
	Apply(edits ...buffer.TextEdit)
}

// Host is a Document that can also scroll its caret into view.
type Host interface {
	Document
	RevealCursor()
}

// Headless adapts a Document without a viewport into a Host.
func Headless(d Document) Host { return headless{d} }

type headless struct{ Document }

func (headless) RevealCursor() {}

const maxInt = int(^uint(0) >> 1)
