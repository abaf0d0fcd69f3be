package fetcher

import (
	"math/rand"
	"strings"
)

// UserAgents is a pool of real desktop browser user agents
var UserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:132.0) Gecko/20100101 Firefox/132.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.6 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36 Edg/131.0.0.0",
}

// AcceptLanguages are common Accept-Language header values. Korean first
// since most share destinations localize their previews.
var AcceptLanguages = []string{
	"ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7",
	"ko,en-US;q=0.9,en;q=0.8",
	"en-US,en;q=0.9,ko;q=0.8",
}

// SecChUaPlatforms are Sec-CH-UA-Platform header values
var SecChUaPlatforms = []string{
	`"Windows"`,
	`"macOS"`,
	`"Linux"`,
}

// RandomUserAgent returns a random user agent from the pool
func RandomUserAgent() string {
	return UserAgents[rand.Intn(len(UserAgents))]
}

// RandomAcceptLanguage returns a random Accept-Language header value
func RandomAcceptLanguage() string {
	return AcceptLanguages[rand.Intn(len(AcceptLanguages))]
}

// StealthHeaders returns the headers of a browser navigation request
func StealthHeaders(userAgent string) map[string]string {
	if userAgent == "" {
		userAgent = RandomUserAgent()
	}

	headers := map[string]string{
		"User-Agent":                userAgent,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		"Accept-Language":           RandomAcceptLanguage(),
		"Accept-Encoding":           "gzip, deflate, br",
		"Cache-Control":             "no-cache",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Sec-Fetch-User":            "?1",
		"Upgrade-Insecure-Requests": "1",
	}

	if strings.Contains(userAgent, "Chrome") || strings.Contains(userAgent, "Chromium") {
		headers["Sec-CH-UA"] = `"Google Chrome";v="131", "Chromium";v="131", "Not_A Brand";v="24"`
		headers["Sec-CH-UA-Mobile"] = "?0"
		headers["Sec-CH-UA-Platform"] = SecChUaPlatforms[rand.Intn(len(SecChUaPlatforms))]
	}

	return headers
}
