package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/quantmind-br/sharesns/internal/domain"
)

// SystemClipboard writes to the OS clipboard directly
type SystemClipboard struct{}

// Available reports whether the platform has a supported clipboard
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// SetText writes text to the clipboard
func (SystemClipboard) SetText(text string) bool {
	return clipboard.WriteAll(text) == nil
}

// CommandDocument copies by feeding the selected text to a clipboard
// utility on stdin (wl-copy, xclip, xsel, pbcopy, clip)
type CommandDocument struct {
	commands [][]string
	lookPath func(file string) (string, error)
	run      func(ctx context.Context, name string, args []string, stdin string) error

	mu       sync.Mutex
	selected *string
}

// NewCommandDocument creates a document using the utilities of the current OS
func NewCommandDocument() *CommandDocument {
	return &CommandDocument{
		commands: commandsFor(runtime.GOOS),
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

func commandsFor(goos string) [][]string {
	switch goos {
	case "darwin":
		return [][]string{{"pbcopy"}}
	case "windows":
		return [][]string{{"clip"}}
	default:
		return [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	}
}

func runCommand(ctx context.Context, name string, args []string, stdin string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.Run()
}

type commandElement struct {
	doc      *CommandDocument
	text     string
	selected *string
}

// CreateHiddenElement implements domain.CopyDocument
func (d *CommandDocument) CreateHiddenElement(_ context.Context, text string) (domain.HiddenElement, error) {
	return &commandElement{doc: d, text: text}, nil
}

// ExecCopy copies the current selection with the first utility found
func (d *CommandDocument) ExecCopy(ctx context.Context) (bool, error) {
	d.mu.Lock()
	selected := d.selected
	d.mu.Unlock()

	if selected == nil {
		return false, errors.New("nothing selected")
	}

	for _, c := range d.commands {
		if _, err := d.lookPath(c[0]); err != nil {
			continue
		}
		if err := d.run(ctx, c[0], c[1:], *selected); err != nil {
			return false, fmt.Errorf("%s: %w", c[0], err)
		}
		return true, nil
	}
	return false, domain.ErrNoCopyMechanism
}

func (e *commandElement) SelectAll(_ context.Context) error {
	e.doc.mu.Lock()
	text := e.text
	e.selected = &text
	e.doc.selected = e.selected
	e.doc.mu.Unlock()
	return nil
}

// Remove drops the selection only while it is still this element's
func (e *commandElement) Remove(_ context.Context) error {
	e.doc.mu.Lock()
	if e.selected != nil && e.doc.selected == e.selected {
		e.doc.selected = nil
	}
	e.selected = nil
	e.doc.mu.Unlock()
	return nil
}
