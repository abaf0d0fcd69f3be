package opengraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/quantmind-br/sharesns/internal/cache"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/utils"
)

// ParseHTML extracts every [property^="og:"] element of an HTML page keyed
// with the prefix stripped. Later elements win.
func ParseHTML(body []byte, contentType string) (map[string]string, error) {
	doc, err := document(body, contentType)
	if err != nil {
		return nil, err
	}
	return scanDocument(doc), nil
}

func document(body []byte, contentType string) (*goquery.Document, error) {
	utf8Body, err := ToUTF8(body, contentType)
	if err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(utf8Body))
}

func scanDocument(doc *goquery.Document) map[string]string {
	og := make(map[string]string)
	doc.Find(`[property^="og:"]`).Each(func(_ int, sel *goquery.Selection) {
		property, _ := sel.Attr("property")
		content, _ := sel.Attr("content")
		og[strings.TrimPrefix(property, "og:")] = content
	})
	return og
}

// HTMLScanner scans a page that has already been fetched
type HTMLScanner struct {
	Body        []byte
	ContentType string
	PageURL     string
	// Fallback fills title, description, image, site_name and url from the
	// page itself when the og: tags are missing
	Fallback bool
}

// Scan implements domain.MetadataSource
func (s *HTMLScanner) Scan(_ context.Context) (map[string]string, error) {
	doc, err := document(s.Body, s.ContentType)
	if err != nil {
		return nil, err
	}

	og := scanDocument(doc)
	if s.Fallback {
		fillFallback(og, doc, s.Body, s.ContentType, s.PageURL)
	}
	resolveRelative(og, s.PageURL)
	return og, nil
}

// resolveRelative makes relative url and image values absolute against
// pageURL. Destinations only accept absolute links.
func resolveRelative(og map[string]string, pageURL string) {
	if !utils.IsHTTPURL(pageURL) {
		return
	}
	for _, key := range []string{domain.OGURL, domain.OGImage} {
		v := og[key]
		if v == "" || utils.IsAbsoluteURL(v) {
			continue
		}
		if abs, err := utils.ResolveURL(pageURL, v); err == nil {
			og[key] = abs
		}
	}
}

func fillFallback(og map[string]string, doc *goquery.Document, body []byte, contentType, pageURL string) {
	setMissing := func(key, value string) {
		if og[key] == "" && strings.TrimSpace(value) != "" {
			og[key] = strings.TrimSpace(value)
		}
	}

	if canonical, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok {
		setMissing(domain.OGURL, canonical)
	}
	setMissing(domain.OGURL, pageURL)
	setMissing(domain.OGTitle, doc.Find("title").First().Text())
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		setMissing(domain.OGDescription, desc)
	}

	if og[domain.OGTitle] != "" && og[domain.OGDescription] != "" && og[domain.OGImage] != "" && og[domain.OGSiteName] != "" {
		return
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil || parsedURL.Host == "" {
		return
	}

	utf8Body, err := ToUTF8(body, contentType)
	if err != nil {
		return
	}

	article, err := readability.FromReader(bytes.NewReader(utf8Body), parsedURL)
	if err != nil {
		return
	}

	setMissing(domain.OGTitle, article.Title)
	setMissing(domain.OGDescription, article.Excerpt)
	setMissing(domain.OGImage, article.Image)
	setMissing(domain.OGSiteName, article.SiteName)
}

// FetchScannerOptions configures a FetchScanner
type FetchScannerOptions struct {
	PageURL  string
	Fetcher  domain.Fetcher
	Cache    domain.Cache
	CacheTTL time.Duration
	Fallback bool
	Logger   *utils.Logger
}

// FetchScanner fetches a page and scans it, caching the result by page URL
type FetchScanner struct {
	opts   FetchScannerOptions
	logger *utils.Logger
}

// NewFetchScanner creates a scanner for one page
func NewFetchScanner(opts FetchScannerOptions) *FetchScanner {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &FetchScanner{
		opts:   opts,
		logger: logger.WithComponent("opengraph").WithURL(opts.PageURL),
	}
}

// Scan implements domain.MetadataSource
func (s *FetchScanner) Scan(ctx context.Context) (map[string]string, error) {
	if s.opts.PageURL == "" {
		return nil, domain.ErrInvalidURL
	}

	key := cache.OpenGraphKey(s.opts.PageURL)
	if s.opts.Cache != nil {
		if data, err := s.opts.Cache.Get(ctx, key); err == nil {
			var entry domain.CacheEntry
			if err := json.Unmarshal(data, &entry); err == nil {
				s.logger.Debug().Time("fetched_at", entry.FetchedAt).Msg("Open Graph cache hit")
				return entry.Data, nil
			}
		}
	}

	if s.opts.Fetcher == nil {
		return nil, fmt.Errorf("scanning %s: no fetcher configured", s.opts.PageURL)
	}

	resp, err := s.opts.Fetcher.Get(ctx, s.opts.PageURL)
	if err != nil {
		return nil, err
	}

	pageURL := resp.URL
	if pageURL == "" {
		pageURL = s.opts.PageURL
	}

	html := &HTMLScanner{
		Body:        resp.Body,
		ContentType: resp.ContentType,
		PageURL:     pageURL,
		Fallback:    s.opts.Fallback,
	}
	og, err := html.Scan(ctx)
	if err != nil {
		return nil, err
	}

	if s.opts.Cache != nil {
		entry := domain.CacheEntry{URL: s.opts.PageURL, Data: og, FetchedAt: time.Now()}
		if data, err := json.Marshal(entry); err == nil {
			if err := s.opts.Cache.Set(ctx, key, data, s.opts.CacheTTL); err != nil {
				s.logger.Warn().Err(err).Msg("Failed to cache Open Graph data")
			}
		}
	}

	s.logger.Debug().Int("fields", len(og)).Msg("Scanned page")
	return og, nil
}
