package editor

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Actions handled by the editor itself rather than the command registry.
const (
	ActionUndo              = "undo"
	ActionRedo              = "redo"
	ActionYank              = "yank"
	ActionUniversalArgument = "universal-argument"
)

// LocalActions returns the action names the editor handles without the
// command registry.
func LocalActions() []string {
	return []string{ActionUndo, ActionRedo, ActionYank, ActionUniversalArgument}
}

// Binding ties keys to an action: a registry command name or a local action.
type Binding struct {
	Action string
	Key    key.Binding
}

// KeyMap defines the editor key bindings. Earlier bindings win when keys
// overlap.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Bindings []Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{Bindings: []Binding{
		bind("forward-char", "C-f", "forward", "ctrl+f", "right"),
		bind("backward-char", "C-b", "backward", "ctrl+b", "left"),
		bind("next-line", "C-n", "next line", "ctrl+n", "down"),
		bind("previous-line", "C-p", "previous line", "ctrl+p", "up"),
		bind("beginning-of-line", "C-a", "line start", "ctrl+a", "home"),
		bind("end-of-line", "C-e", "line end", "ctrl+e", "end"),
		bind("beginning-of-buffer", "M-<", "buffer start", "alt+<", "ctrl+home"),
		bind("end-of-buffer", "M->", "buffer end", "alt+>", "ctrl+end"),
		bind("delete-char", "C-d", "delete", "ctrl+d", "delete"),
		bind("delete-backward-char", "backspace", "delete back", "backspace", "ctrl+h"),
		bind("newline", "enter", "newline", "enter"),
		bind("status", "M-=", "status", "alt+="),

		// Terminals report C-/ as ctrl+_.
		bind(ActionUndo, "C-/", "undo", "ctrl+_", "ctrl+/", "ctrl+z"),
		bind(ActionRedo, "M-_", "redo", "alt+_"),
		bind(ActionYank, "C-y", "yank", "ctrl+y"),
		bind(ActionUniversalArgument, "C-u", "argument", "ctrl+u"),
	}}
}

func bind(action, helpKey, helpDesc string, keys ...string) Binding {
	return Binding{
		Action: action,
		Key:    key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, helpDesc)),
	}
}

// Match returns the action bound to msg.
func (km KeyMap) Match(msg tea.KeyMsg) (string, bool) {
	for _, b := range km.Bindings {
		if key.Matches(msg, b.Key) {
			return b.Action, true
		}
	}
	return "", false
}

// Keys returns the keys bound to action.
func (km KeyMap) Keys(action string) []string {
	for _, b := range km.Bindings {
		if b.Action == action {
			return b.Key.Keys()
		}
	}
	return nil
}

// Rebind returns a copy of km where action is bound to exactly keys. The keys
// are removed from every other action so the new binding cannot be shadowed.
func (km KeyMap) Rebind(action string, keys ...string) KeyMap {
	out := KeyMap{Bindings: make([]Binding, 0, len(km.Bindings)+1)}
	found := false
	for _, b := range km.Bindings {
		help := b.Key.Help()
		if b.Action == action {
			found = true
			out.Bindings = append(out.Bindings, Binding{
				Action: action,
				Key:    key.NewBinding(key.WithKeys(keys...), key.WithHelp(help.Key, help.Desc)),
			})
			continue
		}

		kept := slices.DeleteFunc(slices.Clone(b.Key.Keys()), func(k string) bool {
			return slices.Contains(keys, k)
		})
		nb := key.NewBinding(key.WithHelp(help.Key, help.Desc))
		if len(kept) > 0 {
			nb.SetKeys(kept...)
		}
		out.Bindings = append(out.Bindings, Binding{Action: b.Action, Key: nb})
	}
	if !found {
		out.Bindings = append(out.Bindings, bind(action, firstOr(keys, action), action, keys...))
	}
	return out
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range km.Bindings {
		switch b.Action {
		case "forward-char", "backward-char", "next-line", "previous-line", ActionUndo, ActionUniversalArgument:
			out = append(out, b.Key)
		}
	}
	return out
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	for chunk := range slices.Chunk(km.Bindings, 4) {
		col := make([]key.Binding, 0, len(chunk))
		for _, b := range chunk {
			col = append(col, b.Key)
		}
		cols = append(cols, col)
	}
	return cols
}

func firstOr(keys []string, fallback string) string {
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}
