package command

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/pointwise/point"
)

// Default returns a registry holding the built-in motion and editing
// commands.
func Default() *Registry {
	r := NewRegistry()
	for _, c := range builtins() {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

func builtins() []Command {
	return []Command{
		counted("forward-char", "Move forward n characters.", false, point.ForwardChar),
		counted("backward-char", "Move backward n characters.", false, point.BackwardChar),
		counted("next-line", "Move down n lines.", false, point.NextLine),
		counted("previous-line", "Move up n lines.", false, point.PreviousLine),
		plain("beginning-of-line", "Move to the start of the line.", point.BeginningOfLine),
		plain("end-of-line", "Move to the end of the line.", point.EndOfLine),
		plain("beginning-of-buffer", "Move to the start of the buffer.", point.BeginningOfBuffer),
		plain("end-of-buffer", "Move to the end of the buffer.", point.EndOfBuffer),
		counted("delete-char", "Delete n characters forward.", true, point.DeleteForwardChar),
		counted("delete-backward-char", "Delete n characters backward.", true, point.DeleteBackwardChar),
		{
			Name:  "newline",
			Doc:   "Insert n line breaks.",
			Edits: true,
			Run: func(h point.Host, n int) Result {
				if n > 0 {
					point.Insert(h, strings.Repeat("\n", n))
				}
				return Result{}
			},
		},
		{
			Name: "status",
			Doc:  "Report the caret position and boundary predicates.",
			Run: func(h point.Host, _ int) Result {
				return Result{Message: Status(h)}
			},
		},
	}
}

// Status describes the caret: position, point and the four boundary
// predicates.
func Status(h point.Host) string {
	return fmt.Sprintf("pos=%v point=%d/%d bol=%t eol=%t bob=%t eob=%t",
		point.Position(h), point.Point(h), point.PointMax(h),
		point.IsBeginningOfLine(h), point.IsEndOfLine(h),
		point.IsBeginningOfBuffer(h), point.IsEndOfBuffer(h))
}

func counted(name, doc string, edits bool, fn func(point.Host, int)) Command {
	return Command{
		Name:  name,
		Doc:   doc,
		Edits: edits,
		Run: func(h point.Host, n int) Result {
			fn(h, n)
			return Result{}
		},
	}
}

func plain(name, doc string, fn func(point.Host)) Command {
	return Command{
		Name: name,
		Doc:  doc,
		Run: func(h point.Host, _ int) Result {
			fn(h)
			return Result{}
		},
	}
}
