package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/quantmind-br/sharesns/internal/cache"
	"github.com/quantmind-br/sharesns/internal/clipboard"
	"github.com/quantmind-br/sharesns/internal/config"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/fetcher"
	"github.com/quantmind-br/sharesns/internal/opener"
	"github.com/quantmind-br/sharesns/internal/opengraph"
	"github.com/quantmind-br/sharesns/internal/renderer"
	"github.com/quantmind-br/sharesns/internal/sdk"
	"github.com/quantmind-br/sharesns/internal/utils"
)

// Backend bundles the environment a dispatcher runs against
type Backend struct {
	Source     domain.MetadataSource
	Opener     domain.WindowOpener
	Platform   domain.Platform
	Legacy     domain.LegacyClipboard
	Document   domain.CopyDocument
	ScriptHost domain.ScriptHost
	SDK        domain.KakaoSDK

	closers []func() error
}

// OnClose registers fn to run when the backend is closed
func (b *Backend) OnClose(fn func() error) {
	b.closers = append(b.closers, fn)
}

// Close releases resources in reverse registration order
func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}

// BackendRequest describes the backend one run needs
type BackendRequest struct {
	Engine  Engine
	PageURL string
	Config  *config.Config
	// Print replaces the opener with one that writes URLs to Output
	Print  bool
	Output io.Writer
	Logger *utils.Logger
}

// BackendFactory builds a Backend
type BackendFactory func(ctx context.Context, req BackendRequest) (*Backend, error)

// NewBackend is the default BackendFactory
func NewBackend(ctx context.Context, req BackendRequest) (*Backend, error) {
	if req.Logger == nil {
		req.Logger = utils.NewNopLogger()
	}
	if req.Engine == EngineBrowser {
		return newBrowserBackend(ctx, req)
	}
	return newSystemBackend(req)
}

func newSystemBackend(req BackendRequest) (*Backend, error) {
	cfg := req.Config
	logger := req.Logger

	client, err := fetcher.NewClient(fetcher.ClientOptions{
		Timeout:     cfg.Fetch.Timeout,
		UserAgent:   cfg.Fetch.UserAgent,
		ProxyURL:    cfg.Fetch.ProxyURL,
		MaxBodySize: cfg.MaxBodyBytes(),
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fetcher: %w", err)
	}

	b := &Backend{
		Platform: PlatformFor(cfg.Platform, nil),
		Legacy:   clipboard.SystemClipboard{},
		Document: clipboard.NewCommandDocument(),
	}
	b.OnClose(client.Close)

	var pageCache domain.Cache
	if cfg.Cache.Enabled {
		c, err := cache.NewBadgerCache(cache.Options{Directory: utils.ExpandPath(cfg.Cache.Directory)})
		if err != nil {
			logger.Warn().Err(err).Msg("Cache unavailable, continuing without it")
		} else {
			pageCache = c
			b.OnClose(c.Close)
		}
	}

	if req.PageURL != "" {
		b.Source = opengraph.NewFetchScanner(opengraph.FetchScannerOptions{
			PageURL:  req.PageURL,
			Fetcher:  client,
			Cache:    pageCache,
			CacheTTL: cfg.Cache.TTL,
			Fallback: true,
			Logger:   logger,
		})
	}

	if req.Print {
		b.Opener = opener.NewPrintOpener(req.Output)
	} else {
		b.Opener = opener.NewSystemOpener(logger)
	}
	return b, nil
}

func newBrowserBackend(ctx context.Context, req BackendRequest) (*Backend, error) {
	cfg := req.Config

	opts := renderer.DefaultBrowserOptions()
	opts.Timeout = cfg.Browser.Timeout
	opts.Headless = cfg.Browser.Headless
	opts.Stealth = cfg.Browser.Stealth
	opts.BrowserPath = cfg.Browser.Path
	opts.Logger = req.Logger

	browser, err := renderer.NewBrowser(opts)
	if err != nil {
		return nil, err
	}

	pageURL := req.PageURL
	if pageURL == "" {
		pageURL = "about:blank"
	}
	host, err := browser.Open(ctx, pageURL)
	if err != nil {
		_ = browser.Close()
		return nil, err
	}

	b := &Backend{
		Platform:   PlatformFor(cfg.Platform, host),
		Legacy:     host,
		Document:   host,
		ScriptHost: host,
		SDK:        host,
		Opener:     host,
	}
	if req.PageURL != "" {
		b.Source = host
	}
	if req.Print {
		b.Opener = opener.NewPrintOpener(req.Output)
	}
	b.OnClose(browser.Close)
	b.OnClose(host.Close)
	b.OnClose(func() error {
		sdk.ReleaseKakao(host)
		return nil
	})
	return b, nil
}
