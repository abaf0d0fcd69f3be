package dispatcher

import (
	"context"
	"time"

	"github.com/quantmind-br/sharesns/internal/clipboard"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/opengraph"
	"github.com/quantmind-br/sharesns/internal/sdk"
	"github.com/quantmind-br/sharesns/internal/strategies"
	"github.com/quantmind-br/sharesns/internal/utils"
)

// Options contains the collaborators of a Dispatcher
type Options struct {
	// Source is scanned once at construction
	Source   domain.MetadataSource
	Defaults opengraph.Defaults

	Opener   domain.WindowOpener
	Platform domain.Platform
	Copier   *clipboard.Copier

	// ScriptHost and SDK back the Kakao destinations. Loader is created
	// from ScriptHost when nil. Kakao, when set, is used as is; otherwise the
	// process-wide initializer for SDK is shared.
	Kakao        *sdk.Kakao
	ScriptHost   domain.ScriptHost
	Loader       *sdk.Loader
	SDK          domain.KakaoSDK
	PollInterval time.Duration
	MaxChecks    int

	// Registry defaults to every known destination
	Registry *strategies.Registry
	Logger   *utils.Logger
}

// ShareFunc shares to one destination
type ShareFunc func(ctx context.Context, overrides any)

// Dispatcher turns a share type and optional Open Graph overrides into
// a window open, an SDK call or a clipboard copy. It is safe for concurrent
// use; all per-call state is local to the call.
type Dispatcher struct {
	store    *opengraph.Store
	registry *strategies.Registry
	opener   domain.WindowOpener
	platform domain.Platform
	copier   *clipboard.Copier
	kakao    *sdk.Kakao
	logger   *utils.Logger
}

// New captures the page's Open Graph data and creates a dispatcher
func New(ctx context.Context, opts Options) (*Dispatcher, error) {
	if opts.Opener == nil {
		return nil, domain.NewConfigurationError("opener", domain.ErrInvalidConfig)
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	registry := opts.Registry
	if registry == nil {
		registry = strategies.NewDefaultRegistry()
	}

	copier := opts.Copier
	if copier == nil {
		copier = clipboard.NewCopier(clipboard.Options{Logger: logger})
	}

	loader := opts.Loader
	if loader == nil && opts.ScriptHost != nil {
		loader = sdk.NewLoader(opts.ScriptHost, logger)
	}

	kakao := opts.Kakao
	if kakao == nil {
		kakao = sdk.SharedKakao(sdk.KakaoOptions{
			Loader:       loader,
			SDK:          opts.SDK,
			PollInterval: opts.PollInterval,
			MaxChecks:    opts.MaxChecks,
			Logger:       logger,
		})
	}

	return &Dispatcher{
		store:    opengraph.Capture(ctx, opts.Source, opts.Defaults, logger),
		registry: registry,
		opener:   opts.Opener,
		platform: opts.Platform,
		copier:   copier,
		kakao:    kakao,
		logger:   logger.WithComponent("dispatcher"),
	}, nil
}

// OpenGraph returns a copy of the captured data
func (d *Dispatcher) OpenGraph() domain.OpenGraph {
	return d.store.Original()
}

// Types returns the supported share types
func (d *Dispatcher) Types() []domain.ShareType {
	return d.registry.Types()
}

// Share dispatches one share. Failures are logged and never returned.
func (d *Dispatcher) Share(ctx context.Context, shareType string, overrides any) {
	_ = d.Dispatch(ctx, shareType, overrides)
}

// Dispatch is Share for callers that need the outcome. Every error is also
// logged.
func (d *Dispatcher) Dispatch(ctx context.Context, shareType string, overrides any) error {
	s, err := d.registry.Resolve(shareType)
	if err != nil {
		d.logger.Warn().Err(err).Str("type", shareType).Msg("Share rejected")
		return err
	}

	logger := d.logger.WithShareType(s.Name())
	og := d.store.Merge(overrides)
	target := s.BuildTarget(og, d.env(ctx))

	if err := s.Execute(ctx, &callRuntime{d: d, og: og}, og, target); err != nil {
		logger.Error().Err(err).Msg("Share failed")
		return err
	}

	logger.Debug().Str("kind", target.Kind.String()).Msg("Shared")
	return nil
}

// Target builds the share target without executing it
func (d *Dispatcher) Target(ctx context.Context, shareType string, overrides any) (domain.Target, error) {
	s, err := d.registry.Resolve(shareType)
	if err != nil {
		return domain.Target{}, err
	}
	og := d.store.Merge(overrides)
	return s.BuildTarget(og, d.env(ctx)), nil
}

// Func returns a ShareFunc bound to shareType
func (d *Dispatcher) Func(shareType domain.ShareType) ShareFunc {
	return func(ctx context.Context, overrides any) {
		d.Share(ctx, string(shareType), overrides)
	}
}

// UseKakao starts loading and initializing the Kakao SDK in the background.
// A missing app key is returned; every later failure is logged.
func (d *Dispatcher) UseKakao(ctx context.Context, appKey string) error {
	return d.kakao.Start(ctx, appKey)
}

// KakaoState returns the Kakao SDK initialization state
func (d *Dispatcher) KakaoState() sdk.State {
	return d.kakao.State()
}

// AwaitKakao waits for a requested Kakao initialization
func (d *Dispatcher) AwaitKakao(ctx context.Context) error {
	return d.kakao.Await(ctx)
}

// CopyURLCallback registers the callback run after each successful copy
func (d *Dispatcher) CopyURLCallback(fn clipboard.Callback) {
	d.copier.SetCallback(fn)
}

func (d *Dispatcher) env(ctx context.Context) strategies.Env {
	if d.platform == nil {
		return strategies.Env{}
	}
	return strategies.Env{IOS: d.platform.IsIOS(ctx)}
}

// callRuntime binds the dispatcher collaborators to one call's data
type callRuntime struct {
	d  *Dispatcher
	og domain.OpenGraph
}

func (r *callRuntime) OpenWindow(ctx context.Context, url, name, features string) error {
	return r.d.opener.Open(ctx, url, name, features)
}

func (r *callRuntime) Copy(ctx context.Context, text string) bool {
	return r.d.copier.CopyWithPrompt(ctx, text, r.og.Get(domain.KeyCopyURLPrompt))
}

func (r *callRuntime) SendKakaoFeed(ctx context.Context, feed domain.KakaoFeed) error {
	return r.d.kakao.SendFeed(ctx, feed)
}

func (r *callRuntime) ShareKakaoStory(ctx context.Context, story domain.KakaoStory) error {
	return r.d.kakao.ShareStory(ctx, story)
}
