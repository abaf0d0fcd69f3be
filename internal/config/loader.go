package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/quantmind-br/sharesns/internal/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load loads configuration from file, environment, and defaults
// Uses the global viper instance to access CLI flag bindings
func Load() (*Config, error) {
	return load(viper.GetViper())
}

// LoadWithViper loads configuration into a fresh viper instance and
// returns it for later flag merging
func LoadWithViper() (*Config, *viper.Viper, error) {
	v := viper.New()
	cfg, err := load(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// SetConfigName would discard a file set with SetConfigFile
	v.SetConfigType("yaml")
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (SHARESNS_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("engine", DefaultEngine)
	v.SetDefault("platform", DefaultPlatform)

	// Kakao defaults
	v.SetDefault("kakao.app_key", "")
	v.SetDefault("kakao.poll_interval", DefaultPollInterval)
	v.SetDefault("kakao.max_checks", DefaultMaxChecks)

	// Popup defaults
	v.SetDefault("popup.name", DefaultPopupName)
	v.SetDefault("popup.width", DefaultPopupWidth)
	v.SetDefault("popup.height", DefaultPopupHeight)

	// Locale defaults
	v.SetDefault("locale.copy_prompt", DefaultCopyPrompt)
	v.SetDefault("locale.kakaotalk_button", DefaultKakaoTalkButton)

	// Fetch defaults
	v.SetDefault("fetch.timeout", DefaultFetchTimeout)
	v.SetDefault("fetch.user_agent", "")
	v.SetDefault("fetch.proxy_url", "")
	v.SetDefault("fetch.max_body_size", DefaultMaxBodySize)

	// Cache defaults
	v.SetDefault("cache.enabled", DefaultCacheEnabled)
	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("cache.directory", CacheDir())

	// Browser defaults
	v.SetDefault("browser.headless", DefaultBrowserHeadless)
	v.SetDefault("browser.path", "")
	v.SetDefault("browser.timeout", DefaultBrowserTimeout)
	v.SetDefault("browser.stealth", DefaultBrowserStealth)

	// Logging defaults
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// Save writes cfg as YAML. An existing file is kept unless overwrite is set.
func Save(cfg *Config, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := utils.EnsureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	dir := ConfigDir()
	return os.MkdirAll(dir, 0755)
}

// EnsureCacheDir creates the cache directory if it doesn't exist
func EnsureCacheDir() error {
	dir := CacheDir()
	return os.MkdirAll(dir, 0755)
}
