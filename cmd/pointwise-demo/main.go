package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/pointwise"
	"github.com/iw2rmb/pointwise/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pointwise-demo", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath(), "path to the TOML config file")
	logPath := fs.String("log", "", "write debug log to this file (overrides log_file)")
	showVersion := fs.Bool("version", false, "print the version and exit")
	at := fs.Int("at", 0, "start with the caret at this rune offset")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "usage: pointwise-demo [flags] [file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Println(pointwise.Banner("pointwise-demo"))
		return nil
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return errors.New("at most one file may be given")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "pointwise")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	path := fs.Arg(0)
	text, err := readText(path)
	if err != nil {
		return err
	}
	log.Printf("starting %s path=%q config=%q", pointwise.VersionTag(), path, *configPath)

	a := newApp(appOptions{
		Path:      path,
		Text:      text,
		Config:    cfg,
		Clipboard: systemClipboard(),
		At:        *at,
	})
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// readText loads path. A file that does not exist yet starts empty.
func readText(path string) (string, error) {
	if path == "" {
		return welcomeText, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "pointwise.toml"
	}
	return filepath.Join(dir, "pointwise", "config.toml")
}

const welcomeText = `Hello from pointwise.

C-f C-b C-n C-p move, C-a C-e go to line ends, M-< M-> to buffer ends.
C-u or M-<digit> give the next command a count.
M-= reports the caret position and boundary predicates.
C-s saves when a file was given, C-q quits.`
