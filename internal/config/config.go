package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/opengraph"
)

// Engine names
const (
	EngineSystem  = "system"
	EngineBrowser = "browser"
)

// Platform names
const (
	PlatformAuto    = "auto"
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformDesktop = "desktop"
)

// Config represents the complete application configuration
type Config struct {
	Engine   string        `mapstructure:"engine" yaml:"engine"`
	Platform string        `mapstructure:"platform" yaml:"platform"`
	Kakao    KakaoConfig   `mapstructure:"kakao" yaml:"kakao"`
	Popup    PopupConfig   `mapstructure:"popup" yaml:"popup"`
	Locale   LocaleConfig  `mapstructure:"locale" yaml:"locale"`
	Fetch    FetchConfig   `mapstructure:"fetch" yaml:"fetch"`
	Cache    CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Browser  BrowserConfig `mapstructure:"browser" yaml:"browser"`
	Logging  LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// KakaoConfig contains Kakao SDK settings
type KakaoConfig struct {
	AppKey       string        `mapstructure:"app_key" yaml:"app_key"`
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	MaxChecks    int           `mapstructure:"max_checks" yaml:"max_checks"`
}

// PopupConfig contains the popup defaults used when a destination sets no size
type PopupConfig struct {
	Name   string `mapstructure:"name" yaml:"name"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
}

// LocaleConfig contains user-facing strings
type LocaleConfig struct {
	CopyPrompt      string `mapstructure:"copy_prompt" yaml:"copy_prompt"`
	KakaoTalkButton string `mapstructure:"kakaotalk_button" yaml:"kakaotalk_button"`
}

// FetchConfig contains page fetch settings
type FetchConfig struct {
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UserAgent   string        `mapstructure:"user_agent" yaml:"user_agent"`
	ProxyURL    string        `mapstructure:"proxy_url" yaml:"proxy_url"`
	MaxBodySize string        `mapstructure:"max_body_size" yaml:"max_body_size"`
}

// CacheConfig contains cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Directory string        `mapstructure:"directory" yaml:"directory"`
}

// BrowserConfig contains settings for the browser engine
type BrowserConfig struct {
	Headless bool          `mapstructure:"headless" yaml:"headless"`
	Path     string        `mapstructure:"path" yaml:"path"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Stealth  bool          `mapstructure:"stealth" yaml:"stealth"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration. Out of range values are reset to
// their defaults; values that name nothing are errors.
func (c *Config) Validate() error {
	c.Engine = strings.ToLower(strings.TrimSpace(c.Engine))
	switch c.Engine {
	case "":
		c.Engine = DefaultEngine
	case EngineSystem, EngineBrowser:
	default:
		return domain.NewConfigurationError("engine", fmt.Errorf("%w: unknown engine %q", domain.ErrInvalidConfig, c.Engine))
	}

	c.Platform = strings.ToLower(strings.TrimSpace(c.Platform))
	switch c.Platform {
	case "":
		c.Platform = DefaultPlatform
	case PlatformAuto, PlatformIOS, PlatformAndroid, PlatformDesktop:
	default:
		return domain.NewConfigurationError("platform", fmt.Errorf("%w: unknown platform %q", domain.ErrInvalidConfig, c.Platform))
	}

	if c.Kakao.PollInterval < time.Millisecond {
		c.Kakao.PollInterval = DefaultPollInterval
	}
	if c.Kakao.MaxChecks < 1 {
		c.Kakao.MaxChecks = DefaultMaxChecks
	}
	if c.Popup.Name == "" {
		c.Popup.Name = DefaultPopupName
	}
	if c.Popup.Width < 1 || c.Popup.Height < 1 {
		c.Popup.Width = DefaultPopupWidth
		c.Popup.Height = DefaultPopupHeight
	}
	if c.Locale.CopyPrompt == "" {
		c.Locale.CopyPrompt = DefaultCopyPrompt
	}
	if c.Locale.KakaoTalkButton == "" {
		c.Locale.KakaoTalkButton = DefaultKakaoTalkButton
	}
	if c.Fetch.Timeout < time.Second {
		c.Fetch.Timeout = DefaultFetchTimeout
	}
	if c.Fetch.MaxBodySize == "" {
		c.Fetch.MaxBodySize = DefaultMaxBodySize
	} else if _, err := ParseSize(c.Fetch.MaxBodySize); err != nil {
		return fmt.Errorf("invalid fetch.max_body_size: %w", err)
	}
	if c.Cache.TTL < time.Minute {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Browser.Timeout < time.Second {
		c.Browser.Timeout = DefaultBrowserTimeout
	}
	return nil
}

// MaxBodyBytes returns fetch.max_body_size in bytes, zero if unparsable
func (c *Config) MaxBodyBytes() int64 {
	n, err := ParseSize(c.Fetch.MaxBodySize)
	if err != nil {
		return 0
	}
	return n
}

// ShareDefaults maps the popup and locale sections to the fields captured
// with every page
func (c *Config) ShareDefaults() opengraph.Defaults {
	d := opengraph.DefaultFields()
	if c.Popup.Name != "" {
		d.PopupName = c.Popup.Name
	}
	if c.Popup.Width > 0 && c.Popup.Height > 0 {
		d.PopupWidth = c.Popup.Width
		d.PopupHeight = c.Popup.Height
	}
	if c.Locale.CopyPrompt != "" {
		d.CopyPrompt = c.Locale.CopyPrompt
	}
	if c.Locale.KakaoTalkButton != "" {
		d.KakaoWebButtonText = c.Locale.KakaoTalkButton
	}
	return d
}

// ParseSize parses sizes such as "512KB", "5MB" or "1GB" into bytes
func ParseSize(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	var multiplier int64 = 1
	if strings.HasSuffix(s, "GB") {
		multiplier = 1024 * 1024 * 1024
		s = strings.TrimSuffix(s, "GB")
	} else if strings.HasSuffix(s, "MB") {
		multiplier = 1024 * 1024
		s = strings.TrimSuffix(s, "MB")
	} else if strings.HasSuffix(s, "KB") {
		multiplier = 1024
		s = strings.TrimSuffix(s, "KB")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("no numeric value in size string")
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value: %w", err)
	}

	if n < 0 {
		return 0, fmt.Errorf("negative size not allowed")
	}

	return n * multiplier, nil
}
