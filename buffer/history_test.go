package buffer

import "testing"

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("expected empty history")
	}

	b.InsertText("a")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	v := b.Version()
	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_UndoRedo_EmptyStacksNoMutation(t *testing.T) {
	b := New("x", Options{})
	v := b.Version()
	if b.Undo() || b.Redo() {
		t.Fatalf("expected no history")
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_UndoRedo_ApplyIsSingleHistoryStep(t *testing.T) {
	b := New("abc\ndef", Options{})
	b.Apply(
		TextEdit{Range: Range{Start: Pos{Row: 0, Col: 3}, End: Pos{Row: 1, Col: 0}}},
		TextEdit{Range: Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 0, Col: 0}}, Text: ">"},
	)
	if got, want := b.Text(), ">abcdef"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.Undo()
	if got, want := b.Text(), "abc\ndef"; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
	if b.CanUndo() {
		t.Fatalf("expected a single undo step")
	}
}

func TestBuffer_HistoryLimit_BoundsUndoDepth(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	for _, s := range []string{"a", "b", "c"} {
		b.InsertText(s)
	}

	undos := 0
	for b.Undo() {
		undos++
	}
	if undos != 2 {
		t.Fatalf("undos=%d, want 2", undos)
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_HistoryDisabled(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("expected history disabled")
	}
}

func TestBuffer_UndoThenNewEdit_ClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}
	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("expected redo cleared by new edit")
	}
}

func TestBuffer_Undo_RestoresSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 0, Col: 3}})
	b.InsertText("X")

	b.Undo()
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection restored")
	}
	if want := (Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 0, Col: 3}}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
}
