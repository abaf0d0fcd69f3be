package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/quantmind-br/sharesns/internal/clipboard"
	"github.com/quantmind-br/sharesns/internal/config"
	"github.com/quantmind-br/sharesns/internal/dispatcher"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/opengraph"
	"github.com/quantmind-br/sharesns/internal/strategies"
	"github.com/quantmind-br/sharesns/internal/utils"
)

// Orchestrator runs one share from the command line: it resolves the
// destination, builds a backend for the page and dispatches
type Orchestrator struct {
	config   *config.Config
	registry *strategies.Registry
	factory  BackendFactory
	output   io.Writer
	logger   *utils.Logger
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config  *config.Config
	Verbose bool
	// Output receives printed targets and copy confirmations
	Output         io.Writer
	BackendFactory BackendFactory
	Logger         *utils.Logger
}

// RunOptions describes one share
type RunOptions struct {
	Type    string
	PageURL string
	// Overrides is a JSON object layered over the page's Open Graph data
	Overrides string
	// KakaoKey overrides kakao.app_key
	KakaoKey string
	// Print writes the target instead of opening it
	Print bool
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := "info"
		logFormat := "pretty"
		if cfg.Logging.Level != "" {
			logLevel = cfg.Logging.Level
		}
		if cfg.Logging.Format != "" {
			logFormat = cfg.Logging.Format
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  logFormat,
			Verbose: opts.Verbose,
		})
	}

	factory := opts.BackendFactory
	if factory == nil {
		factory = NewBackend
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	return &Orchestrator{
		config:   cfg,
		registry: strategies.NewDefaultRegistry(),
		factory:  factory,
		output:   output,
		logger:   logger,
	}, nil
}

// Types returns every supported share type
func (o *Orchestrator) Types() []domain.ShareType {
	return o.registry.Types()
}

// EngineFor returns the engine Run would use for shareType, or "" when the
// type is not supported
func (o *Orchestrator) EngineFor(shareType string, printOnly bool) Engine {
	s, err := o.registry.Resolve(shareType)
	if err != nil {
		return ""
	}
	return ResolveEngine(o.config.Engine, s, printOnly)
}

// ValidatePageURL checks that pageURL is an absolute http(s) URL
func (o *Orchestrator) ValidatePageURL(pageURL string) error {
	if pageURL == "" {
		return nil
	}
	if !utils.IsHTTPURL(pageURL) {
		return domain.NewValidationError("url", fmt.Sprintf("%q is not an http(s) URL", pageURL), domain.ErrInvalidURL)
	}
	return nil
}

// Run shares pageURL to opts.Type
func (o *Orchestrator) Run(ctx context.Context, opts RunOptions) error {
	startTime := time.Now()

	s, err := o.registry.Resolve(opts.Type)
	if err != nil {
		return err
	}
	opts.PageURL = utils.EnsureScheme(opts.PageURL)
	if err := o.ValidatePageURL(opts.PageURL); err != nil {
		return err
	}

	engine := ResolveEngine(o.config.Engine, s, opts.Print)
	logger := o.logger.WithShareType(s.Name())
	logger.Debug().
		Str("url", opts.PageURL).
		Str("domain", utils.GetDomain(opts.PageURL)).
		Str("engine", string(engine)).
		Msg("Starting share")

	backend, err := o.factory(ctx, BackendRequest{
		Engine:  engine,
		PageURL: opts.PageURL,
		Config:  o.config,
		Print:   opts.Print,
		Output:  o.output,
		Logger:  o.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to prepare %s engine: %w", engine, err)
	}
	defer closeBackend(backend, logger)

	d, err := o.dispatcher(ctx, backend)
	if err != nil {
		return err
	}

	overrides := overridesArg(opts.Overrides)

	if opts.Print {
		return o.printTarget(ctx, d, s, overrides)
	}

	if s.UsesSDK() {
		key := opts.KakaoKey
		if key == "" {
			key = o.config.Kakao.AppKey
		}
		if err := d.UseKakao(ctx, key); err != nil {
			return err
		}
	}

	d.CopyURLCallback(func(text string) {
		fmt.Fprintf(o.output, "Copied %s\n", text)
	})

	if err := d.Dispatch(ctx, opts.Type, overrides); err != nil {
		return err
	}

	logger.Info().Dur("elapsed", time.Since(startTime)).Msg("Shared")
	return nil
}

// Inspect returns the Open Graph data a share of pageURL would start from
func (o *Orchestrator) Inspect(ctx context.Context, pageURL string) (domain.OpenGraph, error) {
	if pageURL == "" {
		return nil, domain.NewValidationError("url", "page URL is required", domain.ErrInvalidURL)
	}
	pageURL = utils.EnsureScheme(pageURL)
	if err := o.ValidatePageURL(pageURL); err != nil {
		return nil, err
	}

	backend, err := o.factory(ctx, BackendRequest{
		Engine:  Engine(o.config.Engine),
		PageURL: pageURL,
		Config:  o.config,
		Print:   true,
		Output:  o.output,
		Logger:  o.logger,
	})
	if err != nil {
		return nil, err
	}
	defer closeBackend(backend, o.logger)

	scanned, err := backend.Source.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return opengraph.Capture(ctx, scannedSource(scanned), o.config.ShareDefaults(), o.logger).Original(), nil
}

func closeBackend(b *Backend, logger *utils.Logger) {
	if err := b.Close(); err != nil {
		logger.Warn().Err(err).Msg("Backend close failed")
	}
}

// scannedSource replays an earlier scan
type scannedSource map[string]string

func (s scannedSource) Scan(context.Context) (map[string]string, error) {
	return s, nil
}

func (o *Orchestrator) dispatcher(ctx context.Context, b *Backend) (*dispatcher.Dispatcher, error) {
	copier := clipboard.NewCopier(clipboard.Options{
		Legacy:   b.Legacy,
		Document: b.Document,
		Prompt:   o.config.Locale.CopyPrompt,
		Logger:   o.logger,
	})

	return dispatcher.New(ctx, dispatcher.Options{
		Source:       b.Source,
		Defaults:     o.config.ShareDefaults(),
		Opener:       b.Opener,
		Platform:     b.Platform,
		Copier:       copier,
		ScriptHost:   b.ScriptHost,
		SDK:          b.SDK,
		PollInterval: o.config.Kakao.PollInterval,
		MaxChecks:    o.config.Kakao.MaxChecks,
		Registry:     o.registry,
		Logger:       o.logger,
	})
}

// printTarget writes the built target: URLs and copy text as-is, SDK
// payloads as JSON
func (o *Orchestrator) printTarget(ctx context.Context, d *dispatcher.Dispatcher, s strategies.Strategy, overrides any) error {
	target, err := d.Target(ctx, s.Name(), overrides)
	if err != nil {
		return err
	}

	switch target.Kind {
	case domain.TargetURL:
		_, err = fmt.Fprintln(o.output, target.URL)
	case domain.TargetClipboard:
		_, err = fmt.Fprintln(o.output, target.Text)
	default:
		enc := json.NewEncoder(o.output)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		err = enc.Encode(target)
	}
	return err
}

func overridesArg(raw string) any {
	if raw == "" {
		return nil
	}
	return raw
}
