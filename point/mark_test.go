package point

import "testing"

func TestSaveRestorePoint(t *testing.T) {
	h := newHost(sample)
	for pt := PointMin(h); pt <= PointMax(h); pt++ {
		GotoPoint(h, pt)
		m := SavePoint(h)
		ForwardChar(h, 5)
		RestorePoint(h, m)
		if got := Point(h); got != pt {
			t.Fatalf("restored to %d, want %d", got, pt)
		}
	}
}

func TestRestorePoint_ZeroMark(t *testing.T) {
	h := at(sample, 6)
	var m Mark
	if _, ok := m.Point(); ok {
		t.Fatalf("zero mark reports a point")
	}
	RestorePoint(h, m)
	if got := Point(h); got != 6 {
		t.Fatalf("point=%d, want 6", got)
	}
	if h.reveals != 0 {
		t.Fatalf("reveals=%d, want 0", h.reveals)
	}
}

func TestRestorePoint_ClampsAfterShrink(t *testing.T) {
	h := at(sample, 11)
	m := SavePoint(h)
	DeleteBackwardChar(h, 8)
	RestorePoint(h, m)
	if got, want := Point(h), PointMax(h); got != want {
		t.Fatalf("point=%d, want %d", got, want)
	}
}

func TestNestedMarks(t *testing.T) {
	h := at(sample, 1)
	outer := SavePoint(h)
	NextLine(h, 1)
	inner := SavePoint(h)
	EndOfBuffer(h)

	RestorePoint(h, inner)
	if got := Point(h); got != 5 {
		t.Fatalf("inner restore point=%d, want 5", got)
	}
	RestorePoint(h, outer)
	if got := Point(h); got != 1 {
		t.Fatalf("outer restore point=%d, want 1", got)
	}
	if pt, ok := inner.Point(); !ok || pt != 5 {
		t.Fatalf("inner mark=(%d,%v), want (5,true)", pt, ok)
	}
}

func TestSaveExcursion(t *testing.T) {
	h := at(sample, 2)
	SaveExcursion(h, func() {
		EndOfBuffer(h)
		SaveExcursion(h, func() { BeginningOfBuffer(h) })
		if got := Point(h); got != 11 {
			t.Fatalf("inner excursion left point=%d, want 11", got)
		}
	})
	if got := Point(h); got != 2 {
		t.Fatalf("point=%d, want 2", got)
	}
}

func TestSaveExcursion_RestoresOnPanic(t *testing.T) {
	h := at(sample, 3)
	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("recover=%v, want boom", r)
			}
		}()
		SaveExcursion(h, func() {
			GotoPoint(h, 9)
			panic("boom")
		})
	}()
	if got := Point(h); got != 3 {
		t.Fatalf("point=%d, want 3", got)
	}
}
