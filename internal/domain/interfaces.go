package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../mocks/domain_mocks.go -package=mocks . MetadataSource,WindowOpener,ScriptHost,KakaoSDK,LegacyClipboard,CopyDocument,HiddenElement,Platform,Fetcher,Cache

// MetadataSource reads every element whose property starts with "og:" and
// returns the values keyed with the prefix stripped
type MetadataSource interface {
	Scan(ctx context.Context) (map[string]string, error)
}

// WindowOpener opens a new top-level browsing context
type WindowOpener interface {
	Open(ctx context.Context, url, name, features string) error
}

// ScriptHost is the document that third-party scripts are injected into
type ScriptHost interface {
	// HasScript reports whether a script with the id, or whose src contains
	// srcSubstring, is already present
	HasScript(ctx context.Context, id, srcSubstring string) bool
	// Inject inserts the script and streams its events. The channel is closed
	// after a terminal event or when the host gives up on the element.
	Inject(ctx context.Context, tag ScriptTag) (<-chan ScriptEvent, error)
}

// KakaoSDK is the Kakao JavaScript SDK global
type KakaoSDK interface {
	Init(ctx context.Context, appKey string) error
	IsInitialized(ctx context.Context) bool
	SendDefault(ctx context.Context, feed KakaoFeed) error
	ShareStory(ctx context.Context, story KakaoStory) error
}

// LegacyClipboard is a direct clipboard write API that may be absent
type LegacyClipboard interface {
	Available() bool
	SetText(text string) bool
}

// CopyDocument provides the hidden-element copy command fallback
type CopyDocument interface {
	CreateHiddenElement(ctx context.Context, text string) (HiddenElement, error)
	ExecCopy(ctx context.Context) (bool, error)
}

// HiddenElement is an off-screen editable element holding the text to copy
type HiddenElement interface {
	SelectAll(ctx context.Context) error
	Remove(ctx context.Context) error
}

// Platform describes the client the share runs on
type Platform interface {
	IsIOS(ctx context.Context) bool
}

// Fetcher defines the interface for HTTP fetching
type Fetcher interface {
	// Get fetches content from a URL
	Get(ctx context.Context, url string) (*Response, error)
	// Close releases resources
	Close() error
}

// Cache defines the interface for content caching
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Has checks if a key exists in cache
	Has(ctx context.Context, key string) bool
	// Delete removes a key from cache
	Delete(ctx context.Context, key string) error
	// Close releases cache resources
	Close() error
}
