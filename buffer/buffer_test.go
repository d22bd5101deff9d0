package buffer

import "testing"

func TestNew_EmptyDocumentHasOneLine(t *testing.T) {
	b := New("", Options{})
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
	if got := b.LineLen(0); got != 0 {
		t.Fatalf("line len=%d, want 0", got)
	}
	if got := b.Len(); got != 0 {
		t.Fatalf("len=%d, want 0", got)
	}
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
}

func TestBuffer_LineQueries(t *testing.T) {
	b := New("abc\n\ne\u0301f", Options{})

	cases := []struct {
		row  int
		len  int
		text string
	}{
		{row: 0, len: 3, text: "abc"},
		{row: 1, len: 0, text: ""},
		{row: 2, len: 2, text: "e\u0301f"},
		{row: -1, len: 0, text: ""},
		{row: 3, len: 0, text: ""},
	}
	for _, tc := range cases {
		if got := b.LineLen(tc.row); got != tc.len {
			t.Fatalf("LineLen(%d)=%d, want %d", tc.row, got, tc.len)
		}
		if got := b.Line(tc.row); got != tc.text {
			t.Fatalf("Line(%d)=%q, want %q", tc.row, got, tc.text)
		}
	}
	if got := b.LineCount(); got != 3 {
		t.Fatalf("line count=%d, want 3", got)
	}
}

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}
}

func TestBuffer_SetCaret_CollapsesSelection(t *testing.T) {
	b := New("hello\nworld", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 1, Col: 2}})
	if _, ok := b.Selection(); !ok {
		t.Fatalf("expected active selection")
	}
	v := b.Version()

	b.SetCaret(Pos{Row: 1, Col: 2})
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection collapsed")
	}
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	b.SetCaret(Pos{Row: 1, Col: 2})
	if got := b.Version(); got != v+1 {
		t.Fatalf("no-op caret moved version to %d", got)
	}
}

func TestBuffer_SetSelection_NormalizesClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Range{Start: Pos{Row: 1, Col: 99}, End: Pos{Row: 0, Col: -1}})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 1, Col: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor=%v, want selection end (0,0)", got)
	}
	v := b.Version()

	b.SetSelection(Range{Start: Pos{Row: 1, Col: 2}, End: Pos{Row: 0, Col: 0}})
	if b.Version() != v {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if b.Version() != v+1 {
		t.Fatalf("expected version %d, got %d", v+1, b.Version())
	}

	b.ClearSelection()
	if b.Version() != v+1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}
}

func TestBuffer_Validate(t *testing.T) {
	b := New("ab\n\nxyz", Options{})
	cases := []struct {
		in, want Pos
	}{
		{in: Pos{Row: 1, Col: 5}, want: Pos{Row: 1, Col: 0}},
		{in: Pos{Row: -3, Col: 1}, want: Pos{Row: 0, Col: 1}},
		{in: Pos{Row: 7, Col: 7}, want: Pos{Row: 2, Col: 3}},
	}
	for _, tc := range cases {
		if got := b.Validate(tc.in); got != tc.want {
			t.Fatalf("Validate(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
