package sdk

import (
	"context"
	"fmt"
	"sync"

	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/utils"
	"golang.org/x/sync/singleflight"
)

// KakaoID is the id the Kakao JavaScript SDK is registered under
const KakaoID = "kakao"

// Script is the element a third-party SDK is loaded from
type Script struct {
	ID  string
	Src string
}

// KakaoScript is the Kakao JavaScript SDK
var KakaoScript = Script{
	ID:  "kakao-js-sdk",
	Src: "//developers.kakao.com/sdk/js/kakao.min.js",
}

// Loader injects third-party SDK scripts into a ScriptHost. Each SDK is
// loaded at most once at a time; concurrent callers share the in-flight
// load and its result. Ready is terminal, Failed can be retried.
type Loader struct {
	host   domain.ScriptHost
	logger *utils.Logger
	group  singleflight.Group

	mu      sync.Mutex
	scripts map[string]Script
	states  map[string]State
	errs    map[string]error
}

// NewLoader creates a loader with the Kakao SDK registered
func NewLoader(host domain.ScriptHost, logger *utils.Logger) *Loader {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Loader{
		host:    host,
		logger:  logger.WithComponent("sdk"),
		scripts: map[string]Script{KakaoID: KakaoScript},
		states:  make(map[string]State),
		errs:    make(map[string]error),
	}
}

// Register adds or replaces the script of an SDK that has not loaded yet
func (l *Loader) Register(sdkID string, script Script) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if st := l.states[sdkID]; st == Loading || st == Ready {
		return fmt.Errorf("sdk %q is %s", sdkID, st)
	}
	l.scripts[sdkID] = script
	return nil
}

// State returns the load state of an SDK
func (l *Loader) State(sdkID string) (State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.scripts[sdkID]; !ok {
		return NotRequested, unknownSDK(sdkID)
	}
	return l.states[sdkID], nil
}

// Err returns the error of the last failed load, if any
func (l *Loader) Err(sdkID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errs[sdkID]
}

// Load makes sure the SDK script is present and loaded. The load itself is
// detached from ctx: cancelling ctx only stops this caller from waiting.
func (l *Loader) Load(ctx context.Context, sdkID string) error {
	l.mu.Lock()
	script, ok := l.scripts[sdkID]
	state := l.states[sdkID]
	l.mu.Unlock()

	if !ok {
		return unknownSDK(sdkID)
	}
	if state == Ready {
		return nil
	}

	detached := context.WithoutCancel(ctx)
	ch := l.group.DoChan(sdkID, func() (any, error) {
		return nil, l.load(detached, sdkID, script)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loader) load(ctx context.Context, sdkID string, script Script) error {
	logger := l.logger.WithSDK(sdkID)

	l.mu.Lock()
	if l.states[sdkID] == Ready {
		l.mu.Unlock()
		return nil
	}
	l.states[sdkID] = Loading
	delete(l.errs, sdkID)
	l.mu.Unlock()

	if l.host == nil {
		return l.finish(sdkID, domain.NewScriptLoadError(sdkID, script.Src, domain.ErrSDKUnavailable))
	}

	if l.host.HasScript(ctx, script.ID, script.Src) {
		logger.Debug().Msg("Script already present")
		return l.finish(sdkID, nil)
	}

	logger.Debug().Str("src", script.Src).Msg("Injecting script")
	events, err := l.host.Inject(ctx, domain.ScriptTag{ID: script.ID, Src: script.Src, Async: true})
	if err != nil {
		return l.finish(sdkID, domain.NewScriptLoadError(sdkID, script.Src, fmt.Errorf("%w: %v", domain.ErrScriptLoadFailed, err)))
	}

	for ev := range events {
		switch ev.Kind {
		case domain.ScriptLoad:
			return l.finish(sdkID, nil)
		case domain.ScriptReadyStateChange:
			if ev.ReadyState == "" || ev.ReadyState == "complete" {
				return l.finish(sdkID, nil)
			}
		case domain.ScriptError:
			return l.finish(sdkID, domain.NewScriptLoadError(sdkID, script.Src, eventErr(domain.ErrScriptLoadFailed, ev.Err)))
		case domain.ScriptAbort:
			return l.finish(sdkID, domain.NewScriptLoadError(sdkID, script.Src, eventErr(domain.ErrScriptAborted, ev.Err)))
		}
	}

	return l.finish(sdkID, domain.NewScriptLoadError(sdkID, script.Src,
		fmt.Errorf("%w: host stopped reporting events", domain.ErrScriptLoadFailed)))
}

func (l *Loader) finish(sdkID string, err error) error {
	l.mu.Lock()
	if err != nil {
		l.states[sdkID] = Failed
		l.errs[sdkID] = err
	} else {
		l.states[sdkID] = Ready
	}
	l.mu.Unlock()

	if err != nil {
		l.logger.WithSDK(sdkID).Error().Err(err).Msg("SDK script failed to load")
	} else {
		l.logger.WithSDK(sdkID).Debug().Msg("SDK script ready")
	}
	return err
}

func eventErr(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %v", sentinel, cause)
}

func unknownSDK(sdkID string) error {
	return domain.NewConfigurationError("sdk", fmt.Errorf("%w: %q", domain.ErrUnknownSDK, sdkID))
}
