package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrMalformedType indicates a share type that is empty or not a string token
	ErrMalformedType = errors.New("malformed share type")

	// ErrUnsupportedType indicates a share type outside the known set
	ErrUnsupportedType = errors.New("unsupported share type")

	// ErrInvalidOverride indicates override data that could not be used
	ErrInvalidOverride = errors.New("invalid open graph override")

	// ErrMissingAppKey indicates an SDK was requested without an app key
	ErrMissingAppKey = errors.New("sdk app key is required")

	// ErrUnknownSDK indicates an SDK id with no registered script
	ErrUnknownSDK = errors.New("unknown sdk")

	// ErrInvalidConfig indicates an unusable configuration value
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScriptLoadFailed indicates the script element fired an error event
	ErrScriptLoadFailed = errors.New("script load failed")

	// ErrScriptAborted indicates the script load was aborted
	ErrScriptAborted = errors.New("script load aborted")

	// ErrSDKNotReady indicates the SDK never reported itself initialized
	ErrSDKNotReady = errors.New("sdk not ready")

	// ErrSDKNotInitialized indicates an SDK call before initialization was requested
	ErrSDKNotInitialized = errors.New("sdk not initialized")

	// ErrSDKUnavailable indicates the backend has no SDK host
	ErrSDKUnavailable = errors.New("sdk unavailable")

	// ErrCopyFailed indicates the clipboard copy did not succeed
	ErrCopyFailed = errors.New("copy failed")

	// ErrNoCopyMechanism indicates neither the direct API nor the fallback exist
	ErrNoCopyMechanism = errors.New("no clipboard mechanism available")

	// ErrCacheMiss indicates a cache miss
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidURL indicates an invalid URL was provided
	ErrInvalidURL = errors.New("invalid URL")

	// ErrBrowserNotFound indicates Chrome/Chromium was not found
	ErrBrowserNotFound = errors.New("browser not found")
)

// ConfigurationError is fatal and returned synchronously to the caller
type ConfigurationError struct {
	Setting string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for %s: %v", e.Setting, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(setting string, err error) *ConfigurationError {
	return &ConfigurationError{
		Setting: setting,
		Err:     err,
	}
}

// ValidationError represents a validation error recovered locally
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// ScriptLoadError represents a failed third-party script load
type ScriptLoadError struct {
	SDK string
	Src string
	Err error
}

func (e *ScriptLoadError) Error() string {
	return fmt.Sprintf("loading %s sdk from %s: %v", e.SDK, e.Src, e.Err)
}

func (e *ScriptLoadError) Unwrap() error {
	return e.Err
}

// NewScriptLoadError creates a new ScriptLoadError
func NewScriptLoadError(sdk, src string, err error) *ScriptLoadError {
	return &ScriptLoadError{
		SDK: sdk,
		Src: src,
		Err: err,
	}
}

// FetchError represents an error during fetching
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// IsConfigurationError reports whether err must be surfaced to the caller
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsValidationError reports whether err is a locally recovered validation failure
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
