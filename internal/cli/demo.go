package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/dropzone"
	"github.com/aretw0/dropzone/internal/presentation/tui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// ErrNotTerminal is returned when the demo is started without an interactive terminal.
var ErrNotTerminal = errors.New("the demo needs an interactive terminal")

// DemoOptions configures the interactive board.
type DemoOptions struct {
	BoardPath string
	LogPath   string
	Debug     bool
}

type boardFile struct {
	Columns []tui.Column `yaml:"columns"`
}

// DefaultColumns is the board shown when no board file is given.
func DefaultColumns() []tui.Column {
	return []tui.Column{
		{ID: "todo", Title: "To do", Cards: []tui.Card{
			{ID: "design", Title: "Sketch the layout"},
			{ID: "docs", Title: "Write the docs"},
		}},
		{ID: "doing", Title: "In progress", Cards: []tui.Card{
			{ID: "engine", Title: "Keyboard drag"},
		}},
		{ID: "done", Title: "Done", Cards: []tui.Card{
			{ID: "registry", Title: "Zone registry"},
		}},
	}
}

// LoadBoard reads columns from a YAML board file.
func LoadBoard(path string) ([]tui.Column, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	var f boardFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse board file %s: %w", filepath.Base(path), err)
	}
	seen := make(map[string]bool)
	for _, col := range f.Columns {
		ids := []string{col.ID}
		for _, c := range col.Cards {
			ids = append(ids, c.ID)
		}
		for _, id := range ids {
			if id == "" {
				return nil, fmt.Errorf("board file %s: missing id", filepath.Base(path))
			}
			if seen[id] {
				return nil, fmt.Errorf("board file %s: duplicate id %q", filepath.Base(path), id)
			}
			seen[id] = true
		}
	}
	return f.Columns, nil
}

// RunDemo starts the interactive kanban board on the terminal.
func RunDemo(opts DemoOptions, out io.Writer) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	columns := DefaultColumns()
	if opts.BoardPath != "" {
		var err error
		if columns, err = LoadBoard(opts.BoardPath); err != nil {
			return err
		}
	}

	var logOut io.Writer
	if opts.LogPath != "" {
		f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := createLogger(opts.Debug, logOut)

	tui.PrintBanner(out)

	board, err := tui.NewBoard(columns,
		dropzone.WithLogger(logger),
		dropzone.WithLifecycleHooks(createDebugHooks(logger)),
	)
	if err != nil {
		return err
	}
	defer board.Close()

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	p := tea.NewProgram(board, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(sigCtx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if sig := sigCtx.Signal(); sig != nil {
		printSystemMessage(out, "Interrupted by %s", sig)
	}
	return nil
}
