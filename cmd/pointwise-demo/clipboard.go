package main

import (
	"github.com/atotto/clipboard"

	"github.com/iw2rmb/pointwise/editor"
)

type osClipboard struct{}

func (osClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (osClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

// systemClipboard returns nil when no clipboard utility is available, which
// disables yank.
func systemClipboard() editor.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return osClipboard{}
}
