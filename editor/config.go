package editor

import "github.com/iw2rmb/pointwise/command"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4

	// KeyMap defaults to DefaultKeyMap when it has no bindings.
	KeyMap KeyMap
	// Commands defaults to command.Default().
	Commands *command.Registry

	// ReadOnly refuses edits; motions still work.
	ReadOnly bool

	// Forwarded to buffer.Options.
	HistoryLimit int

	// OnChange is called after an Update that changed the buffer version.
	OnChange func(ChangeEvent)
	// OnCommand is called after every dispatched command, failed or not.
	OnCommand func(CommandEvent)

	// Clipboard is the yank source. Nil disables yank.
	Clipboard Clipboard
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if len(c.KeyMap.Bindings) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Commands == nil {
		c.Commands = command.Default()
	}
	return c
}
