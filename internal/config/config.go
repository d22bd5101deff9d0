// Package config loads the demo host's TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/pointwise/command"
	"github.com/iw2rmb/pointwise/editor"
)

var ErrInvalid = errors.New("invalid config")

// Config is the on-disk configuration.
type Config struct {
	ShowLineNumbers bool   `toml:"show_line_numbers"`
	ReadOnly        bool   `toml:"read_only"`
	HistoryLimit    int    `toml:"history_limit"`
	TabWidth        int    `toml:"tab_width"`
	LogFile         string `toml:"log_file"`

	// Keys maps an action name to the keys that trigger it, replacing the
	// default binding.
	Keys map[string][]string `toml:"keys"`
}

func Default() Config {
	return Config{
		ShowLineNumbers: true,
		HistoryLimit:    1000,
		TabWidth:        4,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Default(), fmt.Errorf("parsing at %d:%d: %w", row, col, err)
		}
		return Default(), fmt.Errorf("parsing: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate reports every problem found, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	if c.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: history_limit %d is negative", ErrInvalid, c.HistoryLimit))
	}
	if c.TabWidth < 0 {
		errs = append(errs, fmt.Errorf("%w: tab_width %d is negative", ErrInvalid, c.TabWidth))
	}

	known := append(command.Default().Names(), editor.LocalActions()...)
	for _, action := range sortedKeys(c.Keys) {
		if !slices.Contains(known, action) {
			errs = append(errs, fmt.Errorf("%w: keys.%s: %w", ErrInvalid, action, command.ErrUnknownCommand))
			continue
		}
		if len(c.Keys[action]) == 0 {
			errs = append(errs, fmt.Errorf("%w: keys.%s: no keys", ErrInvalid, action))
		}
	}
	return errors.Join(errs...)
}

// KeyMap applies the [keys] overrides to base in name order.
func (c Config) KeyMap(base editor.KeyMap) editor.KeyMap {
	km := base
	for _, action := range sortedKeys(c.Keys) {
		km = km.Rebind(action, c.Keys[action]...)
	}
	return km
}

// Apply copies the configured options into ec.
func (c Config) Apply(ec editor.Config) editor.Config {
	ec.ShowLineNums = c.ShowLineNumbers
	ec.ReadOnly = c.ReadOnly
	ec.HistoryLimit = c.HistoryLimit
	ec.TabWidth = c.TabWidth
	base := ec.KeyMap
	if len(base.Bindings) == 0 {
		base = editor.DefaultKeyMap()
	}
	ec.KeyMap = c.KeyMap(base)
	return ec
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
