package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/pointwise/buffer"
	"github.com/iw2rmb/pointwise/command"
	"github.com/iw2rmb/pointwise/point"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	prefix prefixArg
	status string

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Host returns the point.Host backed by m. Revealing the caret through it
// scrolls m's viewport, so the host must not outlive the Update call it is
// used in when m is stored by value.
func (m *Model) Host() point.Host { return modelHost{Buffer: m.buf, m: m} }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.revealCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.revealCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) ReadOnly() bool { return m.cfg.ReadOnly }

// Status returns the message of the last dispatched command, or the error it
// failed with.
func (m Model) Status() string { return m.status }

// PrefixPending reports whether a prefix argument is being typed.
func (m Model) PrefixPending() bool { return m.prefix.pending() }

// ScrollOffset returns the first visible row and cell column.
func (m Model) ScrollOffset() (row, col int) { return m.viewport.YOffset, m.xOffset }

// GotoRuneOffset moves the caret to the rune offset off into the buffer text.
// It reports false, leaving the caret alone, when off is out of range or
// falls inside a grapheme cluster.
func (m Model) GotoRuneOffset(off int) (Model, bool) {
	pos, ok := m.buf.PosFromRuneOffset(off, buffer.ConvertPolicy{ClampMode: buffer.OffsetError})
	if !ok {
		return m, false
	}
	m.buf.SetCaret(pos)
	if m.syncFromBuffer() {
		m.revealCursor()
	}
	return m, true
}

// Exec dispatches the named command or local action as if its key had been
// pressed with prefix p.
func (m Model) Exec(name string, p command.Prefix) (Model, command.Result, error) {
	res, err := (&m).run(name, p)
	m.syncFromBuffer()
	return m, res, err
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
		m.syncFromBuffer()
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Don't follow the caret here; allow manual scrolling via mouse wheel.
		m.syncFromBuffer()
		return m, cmd
	default:
		// The host may have mutated the buffer outside of the editor.
		if m.syncFromBuffer() {
			m.revealCursor()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer rebuilds content and fires OnChange when the buffer moved
// on since the last sync.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}
