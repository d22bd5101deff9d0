package point

// Mark is a saved caret point. The zero Mark holds nothing.
//
// Marks are plain values owned by the caller, so saves may nest freely.
type Mark struct {
	pt    int
	valid bool
}

// Point returns the saved point and whether the mark holds one.
func (m Mark) Point() (int, bool) { return m.pt, m.valid }

// SavePoint captures the caret point.
func SavePoint(h Host) Mark { return Mark{pt: Point(h), valid: true} }

// RestorePoint moves the caret back to m. Restoring the zero Mark does nothing.
// The saved point is clamped if the document has since shrunk.
func RestorePoint(h Host, m Mark) {
	if !m.valid {
		return
	}
	GotoPoint(h, m.pt)
}

// SaveExcursion runs fn and then returns the caret to where it was, even if
// fn panics.
func SaveExcursion(h Host, fn func()) {
	m := SavePoint(h)
	defer RestorePoint(h, m)
	fn()
}
