package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSentinelErrors verifies sentinel errors are defined
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check string
	}{
		{"ErrMalformedType", ErrMalformedType, "malformed share type"},
		{"ErrUnsupportedType", ErrUnsupportedType, "unsupported share type"},
		{"ErrInvalidOverride", ErrInvalidOverride, "override"},
		{"ErrMissingAppKey", ErrMissingAppKey, "app key"},
		{"ErrUnknownSDK", ErrUnknownSDK, "unknown sdk"},
		{"ErrInvalidConfig", ErrInvalidConfig, "invalid configuration"},
		{"ErrScriptLoadFailed", ErrScriptLoadFailed, "script load failed"},
		{"ErrScriptAborted", ErrScriptAborted, "aborted"},
		{"ErrSDKNotReady", ErrSDKNotReady, "not ready"},
		{"ErrSDKNotInitialized", ErrSDKNotInitialized, "not initialized"},
		{"ErrSDKUnavailable", ErrSDKUnavailable, "unavailable"},
		{"ErrCopyFailed", ErrCopyFailed, "copy failed"},
		{"ErrNoCopyMechanism", ErrNoCopyMechanism, "no clipboard mechanism"},
		{"ErrCacheMiss", ErrCacheMiss, "cache miss"},
		{"ErrInvalidURL", ErrInvalidURL, "invalid URL"},
		{"ErrBrowserNotFound", ErrBrowserNotFound, "browser not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Contains(t, tt.err.Error(), tt.check)
		})
	}
}

// TestFetchError tests FetchError methods
func TestFetchError(t *testing.T) {
	t.Run("Error with status code", func(t *testing.T) {
		baseErr := errors.New("connection failed")
		err := &FetchError{
			URL:        "https://example.com",
			StatusCode: 503,
			Err:        baseErr,
		}

		assert.Contains(t, err.Error(), "https://example.com")
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "connection failed")
	})

	t.Run("Error without status code", func(t *testing.T) {
		err := &FetchError{
			URL: "https://example.com",
			Err: errors.New("connection refused"),
		}

		assert.Contains(t, err.Error(), "connection refused")
		assert.NotContains(t, err.Error(), "status")
	})

	t.Run("NewFetchError creates correct error", func(t *testing.T) {
		baseErr := errors.New("timeout")
		err := NewFetchError("https://example.com", 504, baseErr)

		assert.Equal(t, "https://example.com", err.URL)
		assert.Equal(t, 504, err.StatusCode)
		assert.Equal(t, baseErr, errors.Unwrap(err))
	})
}

// TestValidationError tests ValidationError methods
func TestValidationError(t *testing.T) {
	t.Run("Error method formats correctly", func(t *testing.T) {
		err := NewValidationError("type", "must be a string", ErrMalformedType)

		assert.Equal(t, "validation error for type: must be a string", err.Error())
		assert.ErrorIs(t, err, ErrMalformedType)
	})

	t.Run("IsValidationError", func(t *testing.T) {
		wrapped := fmt.Errorf("dispatch: %w", NewValidationError("url", "bad", ErrInvalidURL))

		assert.True(t, IsValidationError(wrapped))
		assert.False(t, IsValidationError(ErrInvalidURL))
		assert.False(t, IsValidationError(nil))
	})
}

// TestConfigurationError tests ConfigurationError methods
func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("kakao.app_key", ErrMissingAppKey)

	assert.Equal(t, "configuration error for kakao.app_key: sdk app key is required", err.Error())
	assert.ErrorIs(t, err, ErrMissingAppKey)

	wrapped := fmt.Errorf("kakao: %w", err)
	assert.True(t, IsConfigurationError(wrapped))
	assert.False(t, IsConfigurationError(ErrMissingAppKey))
	assert.False(t, IsValidationError(wrapped))
}

// TestScriptLoadError tests ScriptLoadError methods
func TestScriptLoadError(t *testing.T) {
	err := NewScriptLoadError("kakao", "//developers.kakao.com/sdk/js/kakao.min.js", ErrScriptAborted)

	assert.Contains(t, err.Error(), "loading kakao sdk")
	assert.Contains(t, err.Error(), "kakao.min.js")
	assert.ErrorIs(t, err, ErrScriptAborted)
	assert.NotErrorIs(t, err, ErrScriptLoadFailed)

	var sle *ScriptLoadError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &sle))
	assert.Equal(t, "kakao", sle.SDK)
}
