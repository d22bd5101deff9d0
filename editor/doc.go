// Package editor provides a Bubble Tea component that hosts a buffer for the
// point translator.
//
// The Model renders a buffer.Buffer in a viewport, binds Emacs keys to named
// commands, and implements point.Host: revealing the caret scrolls the
// viewport so the caret cell is visible.
package editor
