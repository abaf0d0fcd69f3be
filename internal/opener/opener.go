// Package opener hands share URLs to the desktop environment.
package opener

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/pkg/browser"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/utils"
)

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"sms":   true,
}

// SystemOpener opens URLs with the system default handler. Window name and
// features have no meaning outside a browser and are ignored.
type SystemOpener struct {
	open   func(string) error
	logger *utils.Logger
}

var _ domain.WindowOpener = (*SystemOpener)(nil)

// NewSystemOpener creates an opener backed by github.com/pkg/browser.
// Launcher chatter goes to the debug log instead of the terminal.
func NewSystemOpener(logger *utils.Logger) *SystemOpener {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	logger = logger.WithComponent("opener")

	browser.Stdout = logWriter{logger}
	browser.Stderr = logWriter{logger}

	return &SystemOpener{open: browser.OpenURL, logger: logger}
}

// Open validates rawURL and launches it
func (o *SystemOpener) Open(ctx context.Context, rawURL, name, features string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkURL(rawURL); err != nil {
		return err
	}

	o.logger.Debug().Str("url", rawURL).Str("name", name).Msg("Opening share URL")
	if err := o.open(rawURL); err != nil {
		return fmt.Errorf("open %s: %w", rawURL, err)
	}
	return nil
}

func checkURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	if !allowedSchemes[strings.ToLower(u.Scheme)] {
		return fmt.Errorf("%w: scheme %q not allowed", domain.ErrInvalidURL, u.Scheme)
	}
	if u.Scheme != "sms" && u.Host == "" {
		return fmt.Errorf("%w: missing host", domain.ErrInvalidURL)
	}
	return nil
}

// PrintOpener writes each URL on its own line instead of opening it
type PrintOpener struct {
	mu sync.Mutex
	w  io.Writer
}

var _ domain.WindowOpener = (*PrintOpener)(nil)

// NewPrintOpener creates a PrintOpener writing to w
func NewPrintOpener(w io.Writer) *PrintOpener {
	return &PrintOpener{w: w}
}

// Open prints rawURL
func (o *PrintOpener) Open(_ context.Context, rawURL, _, _ string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := fmt.Fprintln(o.w, rawURL)
	return err
}

type logWriter struct {
	logger *utils.Logger
}

func (w logWriter) Write(p []byte) (int, error) {
	if msg := strings.TrimSpace(string(p)); msg != "" {
		w.logger.Debug().Str("output", msg).Msg("Browser launcher")
	}
	return len(p), nil
}
