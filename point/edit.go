package point

import "github.com/iw2rmb/pointwise/buffer"

// DeleteChars deletes the text between the caret and offset points away from
// it: forward when offset > 0, backward when offset < 0. A positive offset is
// widened by the line breaks it crosses, as in MoveByCharacters.
func DeleteChars(h Host, offset int) {
	if offset == 0 {
		return
	}
	end := PointToPosition(h, target(h, offset))
	h.Apply(buffer.TextEdit{Range: buffer.Range{Start: h.Cursor(), End: end}})
	h.RevealCursor()
}

func DeleteForwardChar(h Host, n int) { DeleteChars(h, n) }

func DeleteBackwardChar(h Host, n int) { DeleteChars(h, -n) }

// Insert inserts text at the caret. Where the caret ends up is the host's
// choice; *buffer.Buffer leaves it after the inserted text and stores "\r\n"
// and "\r" as line breaks.
func Insert(h Host, text string) {
	if text == "" {
		return
	}
	at := h.Cursor()
	h.Apply(buffer.TextEdit{Range: buffer.Range{Start: at, End: at}, Text: text})
	h.RevealCursor()
}

func Newline(h Host) { Insert(h, "\n") }
