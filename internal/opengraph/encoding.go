package opengraph

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DetectEncoding returns the charset of an HTML page, preferring the
// Content-Type header, then the meta tag, then content sniffing
func DetectEncoding(content []byte, contentType string) string {
	if enc := charsetParam(strings.ToLower(contentType)); enc != "" {
		return enc
	}

	head := strings.ToLower(string(content[:min(1024, len(content))]))
	if enc := charsetParam(head); enc != "" {
		return enc
	}

	if _, name, _ := charset.DetermineEncoding(content, ""); name != "" {
		return name
	}
	return "utf-8"
}

func charsetParam(s string) string {
	idx := strings.Index(s, "charset=")
	if idx == -1 {
		return ""
	}

	start := idx + len("charset=")
	if start < len(s) && (s[start] == '"' || s[start] == '\'') {
		start++
	}

	end := start
	for end < len(s) {
		c := s[end]
		if c == '"' || c == '\'' || c == ';' || c == '>' || c == ' ' || c == '/' {
			break
		}
		end++
	}
	return strings.TrimSpace(s[start:end])
}

// ToUTF8 decodes content to UTF-8. Unknown charsets are returned as-is.
func ToUTF8(content []byte, contentType string) ([]byte, error) {
	enc := DetectEncoding(content, contentType)
	if enc == "utf-8" || enc == "utf8" {
		return content, nil
	}

	e, err := htmlindex.Get(enc)
	if err != nil {
		return content, nil
	}

	return io.ReadAll(transform.NewReader(bytes.NewReader(content), e.NewDecoder()))
}
