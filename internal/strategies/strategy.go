package strategies

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/quantmind-br/sharesns/internal/domain"
)

// Env carries client facts that builders depend on
type Env struct {
	// IOS selects the iOS flavour of platform-sensitive URLs (sms)
	IOS bool
}

// Runtime performs the side effects a strategy's opener needs
type Runtime interface {
	// OpenWindow opens a new sized browsing context
	OpenWindow(ctx context.Context, url, name, features string) error
	// Copy copies text to the clipboard and reports success
	Copy(ctx context.Context, text string) bool
	// SendKakaoFeed shares a feed through the Kakao SDK
	SendKakaoFeed(ctx context.Context, feed domain.KakaoFeed) error
	// ShareKakaoStory shares to KakaoStory through the Kakao SDK
	ShareKakaoStory(ctx context.Context, story domain.KakaoStory) error
}

// BuildFunc turns effective Open Graph data into a share target
type BuildFunc func(og domain.OpenGraph, env Env) domain.Target

// OpenFunc executes a built target
type OpenFunc func(ctx context.Context, rt Runtime, s Strategy, og domain.OpenGraph, target domain.Target) error

// Strategy is the registry record for one share type
type Strategy struct {
	Type  domain.ShareType
	Kind  domain.TargetKind
	Build BuildFunc
	Open  OpenFunc
	Popup PopupSize
}

// Name returns the strategy name
func (s Strategy) Name() string {
	return string(s.Type)
}

// UsesSDK reports whether the strategy goes through a third-party SDK
func (s Strategy) UsesSDK() bool {
	return s.Kind == domain.TargetSDK
}

// BuildTarget builds the target, falling back to the raw url builder
func (s Strategy) BuildTarget(og domain.OpenGraph, env Env) domain.Target {
	if s.Build == nil {
		return DefaultBuild(og, env)
	}
	return s.Build(og, env)
}

// Execute runs the opener, falling back to the popup opener
func (s Strategy) Execute(ctx context.Context, rt Runtime, og domain.OpenGraph, target domain.Target) error {
	if s.Open == nil {
		return PopupOpen(ctx, rt, s, og, target)
	}
	return s.Open(ctx, rt, s, og, target)
}

// DefaultBuild returns the raw url field as the share URL
func DefaultBuild(og domain.OpenGraph, _ Env) domain.Target {
	return domain.Target{Kind: domain.TargetURL, URL: og.Get(domain.OGURL)}
}

// Registry maps share types to strategies. Strategies are registered once.
type Registry struct {
	mu         sync.RWMutex
	strategies map[domain.ShareType]Strategy
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[domain.ShareType]Strategy)}
}

// NewDefaultRegistry creates a registry holding every known destination
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range DefaultStrategies() {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a strategy for a known type that has no strategy yet
func (r *Registry) Register(s Strategy) error {
	if !IsKnown(s.Type) {
		return fmt.Errorf("register %q: %w", s.Type, domain.ErrUnsupportedType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[s.Type]; exists {
		return fmt.Errorf("strategy %q already registered", s.Type)
	}
	r.strategies[s.Type] = s
	return nil
}

// Resolve normalizes raw and returns its strategy. Unknown and malformed
// tokens yield a *domain.ValidationError.
func (r *Registry) Resolve(raw string) (Strategy, error) {
	t, err := Normalize(raw)
	if err != nil {
		return Strategy{}, err
	}

	r.mu.RLock()
	s, ok := r.strategies[t]
	r.mu.RUnlock()

	if !ok {
		return Strategy{}, domain.NewValidationError("type", fmt.Sprintf("share type %q is not supported", raw), domain.ErrUnsupportedType)
	}
	return s, nil
}

// Types returns the registered types, sorted
func (r *Registry) Types() []domain.ShareType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]domain.ShareType, 0, len(r.strategies))
	for t := range r.strategies {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
