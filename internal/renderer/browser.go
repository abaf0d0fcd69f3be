package renderer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/utils"
)

// Browser is a Chrome instance driven over the DevTools protocol. Each
// shared page lives in its own tab.
type Browser struct {
	browser *rod.Browser
	timeout time.Duration
	stealth bool
	logger  *utils.Logger
}

// BrowserOptions contains options for launching a Browser
type BrowserOptions struct {
	Timeout     time.Duration
	Stealth     bool
	Headless    bool
	BrowserPath string
	NoSandbox   bool // Required for running in CI/Docker environments
	Logger      *utils.Logger
}

// DefaultBrowserOptions returns default browser options
func DefaultBrowserOptions() BrowserOptions {
	return BrowserOptions{
		Timeout:   60 * time.Second,
		Stealth:   true,
		Headless:  true,
		NoSandbox: isCI(),
	}
}

// isCI returns true if running in a CI environment
func isCI() bool {
	return os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != ""
}

// NewBrowser launches Chrome and connects to it
func NewBrowser(opts BrowserOptions) (*Browser, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	logger = logger.WithComponent("renderer")

	if opts.BrowserPath == "" {
		if _, ok := launcher.LookPath(); !ok {
			return nil, domain.ErrBrowserNotFound
		}
	}

	l := launcher.New()
	if opts.BrowserPath != "" {
		l = l.Bin(opts.BrowserPath)
	}
	l = l.Headless(opts.Headless)

	if opts.Stealth {
		l = l.Set("disable-blink-features", "AutomationControlled")
	}
	if opts.NoSandbox {
		l = l.NoSandbox(true)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	logger.Debug().Bool("headless", opts.Headless).Bool("stealth", opts.Stealth).Msg("Browser launched")

	return &Browser{
		browser: browser,
		timeout: opts.Timeout,
		stealth: opts.Stealth,
		logger:  logger,
	}, nil
}

// Open opens pageURL in a new tab and waits for it to load
func (b *Browser) Open(ctx context.Context, pageURL string) (*PageHost, error) {
	if b.browser == nil {
		return nil, fmt.Errorf("browser is closed")
	}

	var (
		page *rod.Page
		err  error
	)
	if b.stealth {
		page, err = StealthPage(b.browser)
	} else {
		page, err = b.browser.Page(proto.TargetCreateTarget{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	loadCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	p := page.Context(loadCtx)

	if b.stealth {
		if err := ApplyStealthMode(p); err != nil {
			_ = page.Close()
			return nil, fmt.Errorf("failed to apply stealth mode: %w", err)
		}
	}

	if err := p.Navigate(pageURL); err != nil {
		_ = page.Close()
		return nil, domain.NewFetchError(pageURL, 0, fmt.Errorf("navigation failed: %w", err))
	}
	if err := p.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("failed waiting for load: %w", err)
	}

	b.logger.Debug().Str("url", pageURL).Msg("Page loaded")
	return newPageHost(page, b.timeout, b.logger), nil
}

// Close releases browser resources
func (b *Browser) Close() error {
	if b.browser != nil {
		browser := b.browser
		b.browser = nil
		return browser.Close()
	}
	return nil
}

// IsAvailable checks if the browser is available
func IsAvailable() bool {
	path, exists := launcher.LookPath()
	return exists && path != ""
}

// GetBrowserPath returns the detected browser path
func GetBrowserPath() (string, bool) {
	return launcher.LookPath()
}
