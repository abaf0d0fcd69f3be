package utils

import (
	"net/url"
	"path"
	"strings"
)

// NormalizeURL normalizes a URL for consistent handling
func NormalizeURL(rawURL string) (string, error) {
	// If no scheme is present, prepend https:// before parsing
	// This ensures the host is correctly identified
	if !strings.Contains(rawURL, "://") && !strings.HasPrefix(rawURL, "//") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	// Ensure scheme
	if u.Scheme == "" {
		u.Scheme = "https"
	}

	// Normalize host to lowercase
	u.Host = strings.ToLower(u.Host)

	// Remove default ports
	if (u.Scheme == "http" && u.Port() == "80") ||
		(u.Scheme == "https" && u.Port() == "443") {
		u.Host = u.Hostname()
	}

	// Clean path
	if u.Path == "" {
		u.Path = "/"
	} else {
		u.Path = path.Clean(u.Path)
	}

	// Remove trailing slash (except for root)
	if u.Path != "/" && strings.HasSuffix(u.Path, "/") {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	// Remove fragment
	u.Fragment = ""

	// Build the result manually to ensure trailing slash for root path
	result := u.String()

	// Ensure root path has trailing slash
	if u.Path == "/" && u.RawQuery == "" && !strings.HasSuffix(result, "/") {
		result += "/"
	}

	return result, nil
}

// EnsureScheme prepends https:// to a bare host such as "example.com/a"
func EnsureScheme(rawURL string) string {
	if rawURL == "" || strings.Contains(rawURL, "://") || strings.HasPrefix(rawURL, "//") {
		return rawURL
	}
	return "https://" + rawURL
}

// ResolveURL resolves ref against base the way a browser resolves a link
func ResolveURL(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}

	return baseURL.ResolveReference(refURL).String(), nil
}

// GetDomain extracts the domain from a URL
func GetDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// IsAbsoluteURL checks if a URL is absolute
func IsAbsoluteURL(rawURL string) bool {
	// Protocol-relative URLs (starting with //) are considered absolute
	if strings.HasPrefix(rawURL, "//") {
		return true
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.IsAbs()
}

// IsHTTPURL checks if a URL uses HTTP or HTTPS scheme and names a host
func IsHTTPURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
