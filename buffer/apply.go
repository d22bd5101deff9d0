package buffer

// Apply runs edits in order as a single transaction. Later edits see the text
// left by earlier ones, and every range is clamped into the document before it
// is used. Clusters that meet at an edit seam are re-segmented, and "\r\n" or
// a lone "\r" in edit text is stored as a line break.
//
// When at least one edit changes the text, the caret lands at the end of the
// last such edit, the selection is dropped, and Version, TextVersion, the undo
// history and LastChange each advance once for the whole call. Edits that
// change nothing leave the buffer untouched.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	anyChanged := false
	lastCursor := b.cursor

	for _, e := range edits {
		nextCursor, applied, changed := b.replaceRange(e.Range, e.Text)
		if !changed {
			continue
		}
		anyChanged = true
		lastCursor = nextCursor
		change.addAppliedEdit(applied)
	}

	if !anyChanged {
		return
	}

	b.cursor = b.clampPos(lastCursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.commitChange(change)
}
