package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	DefaultEngine   = EngineSystem
	DefaultPlatform = PlatformAuto

	// Kakao defaults
	DefaultPollInterval = 100 * time.Millisecond
	DefaultMaxChecks    = 50

	// Popup defaults
	DefaultPopupName   = "shareSNS"
	DefaultPopupWidth  = 660
	DefaultPopupHeight = 380

	// Locale defaults
	DefaultCopyPrompt      = "Ctrl+C를 눌러 복사하세요."
	DefaultKakaoTalkButton = "이벤트 참여하기"

	// Fetch defaults
	DefaultFetchTimeout = 30 * time.Second
	DefaultMaxBodySize  = "5MB"

	// Cache defaults
	DefaultCacheEnabled = true
	DefaultCacheTTL     = 1 * time.Hour

	// Browser defaults
	DefaultBrowserHeadless = true
	DefaultBrowserTimeout  = 60 * time.Second
	DefaultBrowserStealth  = true

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// EnvPrefix prefixes every environment override (SHARESNS_KAKAO_APP_KEY)
const EnvPrefix = "SHARESNS"

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sharesns"
	}
	return filepath.Join(home, ".sharesns")
}

// CacheDir returns the cache directory path
func CacheDir() string {
	return filepath.Join(ConfigDir(), "cache")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Engine:   DefaultEngine,
		Platform: DefaultPlatform,
		Kakao: KakaoConfig{
			PollInterval: DefaultPollInterval,
			MaxChecks:    DefaultMaxChecks,
		},
		Popup: PopupConfig{
			Name:   DefaultPopupName,
			Width:  DefaultPopupWidth,
			Height: DefaultPopupHeight,
		},
		Locale: LocaleConfig{
			CopyPrompt:      DefaultCopyPrompt,
			KakaoTalkButton: DefaultKakaoTalkButton,
		},
		Fetch: FetchConfig{
			Timeout:     DefaultFetchTimeout,
			MaxBodySize: DefaultMaxBodySize,
		},
		Cache: CacheConfig{
			Enabled:   DefaultCacheEnabled,
			TTL:       DefaultCacheTTL,
			Directory: CacheDir(),
		},
		Browser: BrowserConfig{
			Headless: DefaultBrowserHeadless,
			Timeout:  DefaultBrowserTimeout,
			Stealth:  DefaultBrowserStealth,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
