package editor

import (
	"errors"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/pointwise/command"
	"github.com/iw2rmb/pointwise/point"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused || m.buf == nil {
		return m
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.prefix = prefixArg{}
		m.insert(string(msg.Runes), 1)
		return m
	}

	if m.prefix.feed(msg) {
		return m
	}

	action, ok := m.cfg.KeyMap.Match(msg)
	if ok && action == ActionUniversalArgument {
		m.prefix.universal()
		return m
	}

	p := m.prefix.take()
	switch {
	case ok:
		_, _ = (&m).run(action, p)
	case msg.Type == tea.KeyTab:
		m.insert("\t", p.Count())
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.insert(string(msg.Runes), p.Count())
	}
	return m
}

// run dispatches a local action or a registry command.
func (m *Model) run(name string, p command.Prefix) (command.Result, error) {
	var (
		res command.Result
		err error
	)
	switch name {
	case ActionUndo:
		err = m.history(p.Count(), m.buf.Undo)
	case ActionRedo:
		err = m.history(p.Count(), m.buf.Redo)
	case ActionYank:
		err = m.yank(p.Count())
	case ActionUniversalArgument:
		m.prefix.universal()
		return res, nil
	default:
		res, err = m.cfg.Commands.ExecWith(m.Host(), name, p, command.ExecOptions{ReadOnly: m.cfg.ReadOnly})
	}

	m.status = res.Message
	if err != nil {
		m.status = err.Error()
		log.Printf("editor: %s: %v", name, err)
	} else if res.Message != "" {
		log.Printf("editor: %s: %s", name, res.Message)
	}
	if m.cfg.OnCommand != nil {
		m.cfg.OnCommand(CommandEvent{Name: name, Prefix: p, Result: res, Err: err})
	}
	return res, err
}

var errNothingToYank = errors.New("clipboard is empty")

func (m *Model) history(n int, step func() bool) error {
	if m.cfg.ReadOnly {
		return command.ErrReadOnly
	}
	for range n {
		if !step() {
			break
		}
	}
	m.revealCursor()
	return nil
}

func (m *Model) yank(n int) error {
	if m.cfg.ReadOnly {
		return command.ErrReadOnly
	}
	if m.cfg.Clipboard == nil {
		return errNothingToYank
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		return err
	}
	if s == "" {
		return errNothingToYank
	}
	m.insert(s, n)
	return nil
}

// maxInsertBytes bounds the text produced by a repeated insert.
const maxInsertBytes = 16 << 20

// insert inserts n copies of text at the caret as one edit.
func (m *Model) insert(text string, n int) {
	if m.cfg.ReadOnly {
		m.status = command.ErrReadOnly.Error()
		return
	}
	if n <= 0 || text == "" {
		return
	}
	n = min(n, max(maxInsertBytes/len(text), 1))
	point.Insert(m.Host(), strings.Repeat(text, n))
}
