package point

import (
	"testing"

	"github.com/iw2rmb/pointwise/buffer"
)

func TestDeleteChars(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		from     int
		offset   int
		want     string
		wantPos  buffer.Pos
		wantEdit bool
	}{
		{name: "backward-joins-lines", text: sample, from: 4, offset: -1, want: "abcdef\nghi", wantPos: buffer.Pos{Row: 0, Col: 3}, wantEdit: true},
		{name: "forward-one", text: sample, from: 0, offset: 1, want: "bc\ndef\nghi", wantPos: buffer.Pos{Row: 0, Col: 0}, wantEdit: true},
		// A positive count crossing a break is widened, so it takes one
		// more cluster than asked for.
		{name: "forward-widened-across-break", text: "abc\ndef", from: 2, offset: 2, want: "abef", wantPos: buffer.Pos{Row: 0, Col: 2}, wantEdit: true},
		{name: "backward-many", text: sample, from: 6, offset: -4, want: "abf\nghi", wantPos: buffer.Pos{Row: 0, Col: 2}, wantEdit: true},
		{name: "backward-at-bob", text: sample, from: 0, offset: -3, want: sample, wantPos: buffer.Pos{}},
		{name: "forward-at-eob", text: sample, from: 11, offset: 2, want: sample, wantPos: buffer.Pos{Row: 2, Col: 3}},
		{name: "zero", text: sample, from: 5, offset: 0, want: sample, wantPos: buffer.Pos{Row: 1, Col: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := at(tc.text, tc.from)
			before := h.TextVersion()

			DeleteChars(h, tc.offset)

			if got := h.Text(); got != tc.want {
				t.Fatalf("text=%q, want %q", got, tc.want)
			}
			if got := h.Cursor(); got != tc.wantPos {
				t.Fatalf("cursor=%v, want %v", got, tc.wantPos)
			}
			if edited := h.TextVersion() != before; edited != tc.wantEdit {
				t.Fatalf("edited=%v, want %v", edited, tc.wantEdit)
			}
		})
	}
}

func TestDeleteChars_IsOneUndoStep(t *testing.T) {
	h := at(sample, 8)
	DeleteBackwardChar(h, 5)
	if got := h.Text(); got != "abcghi" {
		t.Fatalf("text=%q, want %q", got, "abcghi")
	}
	if !h.Undo() {
		t.Fatalf("expected undo")
	}
	if got := h.Text(); got != sample {
		t.Fatalf("after undo text=%q, want %q", got, sample)
	}
	if h.CanUndo() {
		t.Fatalf("expected a single undo step")
	}
}

func TestDeleteForwardChar_Reveals(t *testing.T) {
	h := at(sample, 1)
	DeleteForwardChar(h, 1)
	if got := h.Text(); got != "ac\ndef\nghi" {
		t.Fatalf("text=%q", got)
	}
	if h.reveals != 1 {
		t.Fatalf("reveals=%d, want 1", h.reveals)
	}
}

func TestInsert_CarriageReturnsBecomeLineBreaks(t *testing.T) {
	h := at("ab", 1)
	Insert(h, "x\r\ny\rz")
	if got, want := h.Text(), "ax\ny\nzb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := Point(h); got != 6 {
		t.Fatalf("point=%d, want 6", got)
	}
	if got := h.Len(); got != 7 {
		t.Fatalf("Len()=%d, want 7", got)
	}
}

func TestInsertAndNewline(t *testing.T) {
	h := at(sample, 5)

	Insert(h, "XY")
	if got := h.Text(); got != "abc\ndXYef\nghi" {
		t.Fatalf("text=%q", got)
	}
	if got := Point(h); got != 7 {
		t.Fatalf("point=%d, want 7", got)
	}

	Newline(h)
	if got := h.Text(); got != "abc\ndXY\nef\nghi" {
		t.Fatalf("text=%q", got)
	}
	if got, want := Position(h), (buffer.Pos{Row: 2, Col: 0}); got != want {
		t.Fatalf("position=%v, want %v", got, want)
	}
	if h.reveals != 2 {
		t.Fatalf("reveals=%d, want 2", h.reveals)
	}

	v := h.TextVersion()
	Insert(h, "")
	if h.TextVersion() != v || h.reveals != 2 {
		t.Fatalf("empty insert changed state")
	}
}
