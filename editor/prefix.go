package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/pointwise/command"
)

// prefixArg accumulates the numeric argument typed before a command:
// C-u multiplies by four, M-<digit> (or a digit after C-u) types a number,
// and a leading minus negates it.
type prefixArg struct {
	collecting bool
	n          int
	set        bool
	digits     bool
	neg        bool
}

func (a *prefixArg) universal() {
	if a.digits {
		return
	}
	if a.set {
		a.n = min(a.n*4, command.MaxPrefix)
	} else {
		a.n = 4
	}
	a.set, a.collecting = true, true
}

// feed consumes msg when it continues the argument.
func (a *prefixArg) feed(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) != 1 {
		return false
	}
	if !msg.Alt && !a.collecting {
		return false
	}

	r := msg.Runes[0]
	switch {
	case r >= '0' && r <= '9':
		if !a.digits {
			a.n = 0
		}
		a.n = min(a.n*10+int(r-'0'), command.MaxPrefix)
		a.digits, a.set, a.collecting = true, true, true
		return true
	case r == '-' && !a.digits && !a.neg:
		a.neg, a.set, a.collecting = true, true, true
		return true
	}
	return false
}

// take returns the accumulated prefix and resets the state.
func (a *prefixArg) take() command.Prefix {
	p := command.Prefix{N: a.n, Set: a.set}
	if a.neg {
		p.N = -1
		if a.digits {
			p.N = -a.n
		}
	}
	*a = prefixArg{}
	return p
}

func (a prefixArg) pending() bool { return a.collecting }
