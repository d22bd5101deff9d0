package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/pointwise/editor"
	"github.com/iw2rmb/pointwise/internal/config"
)

type appOptions struct {
	Path      string
	Text      string
	Config    config.Config
	Clipboard editor.Clipboard
	// At is the initial caret as a rune offset into Text.
	At int
}

type appKeys struct {
	Quit, Save, Help key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Quit: key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("C-q", "quit")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("C-s", "save")),
		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	}
}

type app struct {
	path     string
	readOnly bool

	editor editor.Model
	help   help.Model
	keys   appKeys

	width, height int
	message       string
	savedVersion  uint64
}

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	dirtyStyle  = lipgloss.NewStyle().Bold(true)
)

func newApp(opt appOptions) app {
	ec := opt.Config.Apply(editor.Config{
		Text:      opt.Text,
		Style:     editor.DefaultStyle(),
		Clipboard: opt.Clipboard,
	})
	ed := editor.New(ec)
	if opt.At != 0 {
		var ok bool
		if ed, ok = ed.GotoRuneOffset(opt.At); !ok {
			log.Printf("ignoring -at %d: not a cluster boundary within the text", opt.At)
		}
	}
	return app{
		path:         opt.Path,
		readOnly:     ed.ReadOnly(),
		editor:       ed,
		help:         help.New(),
		keys:         defaultAppKeys(),
		savedVersion: ed.Buffer().TextVersion(),
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, a.editorHeight())
		return a, nil
	case tea.KeyMsg:
		// A pending prefix argument owns the next key.
		if !a.editor.PrefixPending() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a, tea.Quit
			case key.Matches(msg, a.keys.Save):
				a.message = a.save()
				return a, nil
			case key.Matches(msg, a.keys.Help):
				a.help.ShowAll = !a.help.ShowAll
				a.editor = a.editor.SetSize(a.width, a.editorHeight())
				return a, nil
			}
		}
		a.message = ""
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.editor.View(),
		a.statusLine(),
		a.help.View(a.editor.KeyMap()),
	)
}

func (a app) editorHeight() int {
	helpHeight := lipgloss.Height(a.help.View(a.editor.KeyMap()))
	return max(a.height-1-helpHeight, 0)
}

func (a app) dirty() bool {
	return a.editor.Buffer().TextVersion() != a.savedVersion
}

func (a app) statusLine() string {
	name := "*scratch*"
	if a.path != "" {
		name = filepath.Base(a.path)
	}
	if a.dirty() {
		name = dirtyStyle.Render(name + " **")
	}
	if a.readOnly {
		name += " [RO]"
	}

	cur := a.editor.Buffer().Cursor()
	msg := a.message
	if msg == "" {
		msg = a.editor.Status()
	}
	if a.editor.PrefixPending() {
		msg = "C-u-"
	}
	line := fmt.Sprintf(" %s  L%d C%d  %s", name, cur.Row+1, cur.Col, msg)
	st := statusStyle
	if a.width > 0 {
		st = st.Width(a.width).MaxWidth(a.width)
	}
	return st.Render(line)
}

func (a *app) save() string {
	if a.path == "" {
		return "no file to save to"
	}
	if a.readOnly {
		return "buffer is read-only"
	}
	text := a.editor.Buffer().Text()
	if err := os.WriteFile(a.path, []byte(text), 0o644); err != nil {
		log.Printf("save %s: %v", a.path, err)
		return "save failed: " + err.Error()
	}
	a.savedVersion = a.editor.Buffer().TextVersion()
	log.Printf("saved %s (%d bytes)", a.path, len(text))
	return "wrote " + a.path
}
