package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/quantmind-br/sharesns/internal/utils"
)

// PrefixOpenGraph namespaces scanned Open Graph data
const PrefixOpenGraph = "og"

// GenerateKey returns the SHA256 of the normalized URL. The query is kept:
// it often selects the shared content.
func GenerateKey(rawURL string) string {
	normalized, err := utils.NormalizeURL(rawURL)
	if err != nil {
		normalized = rawURL
	}
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// GenerateKeyWithPrefix generates a cache key with a prefix
func GenerateKeyWithPrefix(prefix, rawURL string) string {
	return prefix + ":" + GenerateKey(rawURL)
}

// OpenGraphKey is the cache key of a page's scanned Open Graph data
func OpenGraphKey(pageURL string) string {
	return GenerateKeyWithPrefix(PrefixOpenGraph, pageURL)
}
