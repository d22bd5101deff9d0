// Package command exposes the point translator as named commands that take
// an Emacs-style prefix argument.
package command

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/iw2rmb/pointwise/point"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrDuplicateCommand = errors.New("duplicate command")
	ErrNoHost           = errors.New("no active host")
	ErrReadOnly         = errors.New("buffer is read-only")
)

// MaxPrefix bounds the magnitude of a repeat count.
const MaxPrefix = 1 << 20

// Prefix is the numeric argument typed before a command.
type Prefix struct {
	N   int
	Set bool
}

// Count returns the repeat count: N when set, 1 otherwise. The result is
// clamped to [-MaxPrefix, MaxPrefix].
func (p Prefix) Count() int {
	if !p.Set {
		return 1
	}
	return min(max(p.N, -MaxPrefix), MaxPrefix)
}

// Result is what a command reports back to the host.
type Result struct {
	Message string
}

// Command is a named operation over a host.
type Command struct {
	Name string
	Doc  string
	// Edits marks commands that change text; they are refused in read-only
	// mode.
	Edits bool
	Run   func(h point.Host, n int) Result
}

type ExecOptions struct {
	ReadOnly bool
}

// Registry maps command names to commands. It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// Register adds c. Names must be non-empty and unique.
func (r *Registry) Register(c Command) error {
	if c.Name == "" {
		return errors.New("command: empty name")
	}
	if c.Run == nil {
		return fmt.Errorf("command %q: nil Run", c.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cmds[c.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, c.Name)
	}
	r.cmds[c.Name] = c
	return nil
}

func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cmds[name]
	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exec runs the named command against h with p's repeat count.
func (r *Registry) Exec(h point.Host, name string, p Prefix) (Result, error) {
	return r.ExecWith(h, name, p, ExecOptions{})
}

func (r *Registry) ExecWith(h point.Host, name string, p Prefix, opt ExecOptions) (Result, error) {
	c, ok := r.Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if h == nil {
		return Result{}, fmt.Errorf("%s: %w", name, ErrNoHost)
	}
	if c.Edits && opt.ReadOnly {
		return Result{}, fmt.Errorf("%s: %w", name, ErrReadOnly)
	}
	return c.Run(h, p.Count()), nil
}
