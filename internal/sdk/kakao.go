package sdk

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/utils"
)

// Readiness poll defaults
const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultMaxChecks    = 50
)

// KakaoOptions configures a Kakao initializer
type KakaoOptions struct {
	Loader       *Loader
	SDK          domain.KakaoSDK
	PollInterval time.Duration
	MaxChecks    int
	Logger       *utils.Logger
}

type attempt struct {
	done chan struct{}
	err  error
}

// Kakao owns the initialization state of the Kakao SDK: script load,
// Init with the app key, then a bounded poll until the SDK reports itself
// initialized
type Kakao struct {
	loader       *Loader
	sdk          domain.KakaoSDK
	pollInterval time.Duration
	maxChecks    int
	logger       *utils.Logger

	mu       sync.Mutex
	state    State
	current  *attempt
	initDone bool
}

// NewKakao creates an initializer
func NewKakao(opts KakaoOptions) *Kakao {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.MaxChecks <= 0 {
		opts.MaxChecks = DefaultMaxChecks
	}
	return &Kakao{
		loader:       opts.Loader,
		sdk:          opts.SDK,
		pollInterval: opts.PollInterval,
		maxChecks:    opts.MaxChecks,
		logger:       logger.WithComponent("sdk").WithSDK(KakaoID),
	}
}

var (
	sharedMu sync.Mutex
	shared   = map[domain.KakaoSDK]*Kakao{}
)

// SharedKakao returns the process-wide initializer for opts.SDK, creating
// it from opts on first use. Every dispatcher bound to the same SDK handle
// shares one initialization.
func SharedKakao(opts KakaoOptions) *Kakao {
	if opts.SDK == nil || !reflect.TypeOf(opts.SDK).Comparable() {
		return NewKakao(opts)
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if k, ok := shared[opts.SDK]; ok {
		return k
	}
	k := NewKakao(opts)
	shared[opts.SDK] = k
	return k
}

// ReleaseKakao forgets the shared initializer for handle, once the page
// behind it is gone
func ReleaseKakao(handle domain.KakaoSDK) {
	if handle == nil || !reflect.TypeOf(handle).Comparable() {
		return
	}
	sharedMu.Lock()
	delete(shared, handle)
	sharedMu.Unlock()
}

// State returns the initialization state
func (k *Kakao) State() State {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state
}

// Start requests initialization and returns without waiting. A Ready SDK is
// left alone and an in-flight initialization is joined, whatever appKey is.
func (k *Kakao) Start(ctx context.Context, appKey string) error {
	_, err := k.begin(ctx, appKey)
	return err
}

// InitializeOnce requests initialization and waits for its outcome
func (k *Kakao) InitializeOnce(ctx context.Context, appKey string) error {
	att, err := k.begin(ctx, appKey)
	if err != nil || att == nil {
		return err
	}
	return wait(ctx, att)
}

// Await waits for a requested initialization to finish
func (k *Kakao) Await(ctx context.Context) error {
	k.mu.Lock()
	state, att := k.state, k.current
	k.mu.Unlock()

	switch state {
	case Ready:
		return nil
	case Loading:
		return wait(ctx, att)
	case Failed:
		return fmt.Errorf("%w: %v", domain.ErrSDKNotInitialized, att.err)
	default:
		return domain.ErrSDKNotInitialized
	}
}

// SendFeed shares a feed once the SDK is ready
func (k *Kakao) SendFeed(ctx context.Context, feed domain.KakaoFeed) error {
	if err := k.Await(ctx); err != nil {
		return err
	}
	return k.sdk.SendDefault(ctx, feed)
}

// ShareStory shares to KakaoStory once the SDK is ready
func (k *Kakao) ShareStory(ctx context.Context, story domain.KakaoStory) error {
	if err := k.Await(ctx); err != nil {
		return err
	}
	return k.sdk.ShareStory(ctx, story)
}

func (k *Kakao) begin(ctx context.Context, appKey string) (*attempt, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch k.state {
	case Ready:
		return nil, nil
	case Loading:
		return k.current, nil
	}

	if appKey == "" {
		return nil, domain.NewConfigurationError("kakao.app_key", domain.ErrMissingAppKey)
	}
	if k.sdk == nil || k.loader == nil {
		return nil, domain.NewConfigurationError("kakao", domain.ErrSDKUnavailable)
	}

	att := &attempt{done: make(chan struct{})}
	k.current = att
	k.state = Loading

	go k.run(context.WithoutCancel(ctx), appKey, att)
	return att, nil
}

func (k *Kakao) run(ctx context.Context, appKey string, att *attempt) {
	err := k.initialize(ctx, appKey)

	k.mu.Lock()
	if err != nil {
		k.state = Failed
	} else {
		k.state = Ready
	}
	att.err = err
	close(att.done)
	k.mu.Unlock()

	if err != nil {
		k.logger.Error().Err(err).Msg("Kakao SDK initialization failed")
		return
	}
	k.logger.Info().Msg("Kakao SDK ready")
}

func (k *Kakao) initialize(ctx context.Context, appKey string) error {
	if err := k.loader.Load(ctx, KakaoID); err != nil {
		return err
	}

	k.mu.Lock()
	initDone := k.initDone
	k.mu.Unlock()

	// Another owner may already have initialized the SDK on this page
	if !initDone && k.sdk.IsInitialized(ctx) {
		k.mu.Lock()
		k.initDone = true
		k.mu.Unlock()
		k.logger.Debug().Msg("Kakao SDK already initialized, skipping Init")
		return nil
	}

	if !initDone {
		if err := k.sdk.Init(ctx, appKey); err != nil {
			return domain.NewScriptLoadError(KakaoID, KakaoScript.Src, fmt.Errorf("%w: init: %v", domain.ErrSDKNotReady, err))
		}
		k.mu.Lock()
		k.initDone = true
		k.mu.Unlock()
	}

	checks := 0
	poll := backoff.WithMaxRetries(backoff.NewConstantBackOff(k.pollInterval), uint64(k.maxChecks-1))
	err := backoff.Retry(func() error {
		checks++
		if k.sdk.IsInitialized(ctx) {
			return nil
		}
		return domain.ErrSDKNotReady
	}, backoff.WithContext(poll, ctx))
	if err != nil {
		return domain.NewScriptLoadError(KakaoID, KakaoScript.Src,
			fmt.Errorf("%w after %d checks", domain.ErrSDKNotReady, checks))
	}
	return nil
}

func wait(ctx context.Context, att *attempt) error {
	select {
	case <-att.done:
		return att.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
