package editor

import (
	"github.com/iw2rmb/pointwise/buffer"
	"github.com/iw2rmb/pointwise/command"
)

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	Point       int
	// RuneOffset is the caret as a rune offset into Text.
	RuneOffset  int
	Selection   struct {
		Range  buffer.Range
		Active bool
	}

	// Full text; hosts diff if they need to.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
		Point:       b.PointFromPos(b.Cursor()),
		Text:        b.Text(),
	}
	ev.RuneOffset, _ = b.RuneOffsetFromPos(ev.Cursor, buffer.ConvertPolicy{ClampMode: buffer.OffsetClamp})
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}

// CommandEvent reports one dispatched command.
type CommandEvent struct {
	Name   string
	Prefix command.Prefix
	Result command.Result
	Err    error
}
