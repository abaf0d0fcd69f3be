package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/klauspost/compress/zstd"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/utils"
)

// MaxBodySize is the default cap on how much of a page is read
const MaxBodySize = 5 << 20

// Client fetches pages with a browser TLS fingerprint. Each Get is a single
// attempt.
type Client struct {
	tlsClient tls_client.HttpClient
	userAgent string
	maxBody   int64
	logger    *utils.Logger
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	Timeout     time.Duration
	UserAgent   string
	ProxyURL    string
	// MaxBodySize caps the bytes read per page; zero means MaxBodySize
	MaxBodySize int64
	Logger      *utils.Logger
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:     30 * time.Second,
		MaxBodySize: MaxBodySize,
	}
}

// NewClient creates a new stealth HTTP client
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = MaxBodySize
	}

	tlsOpts := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(int(opts.Timeout.Seconds())),
		tls_client.WithClientProfile(profiles.Chrome_131),
		tls_client.WithRandomTLSExtensionOrder(),
	}

	if opts.ProxyURL != "" {
		tlsOpts = append(tlsOpts, tls_client.WithProxyUrl(opts.ProxyURL))
	}

	tlsClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), tlsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tls client: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	return &Client{
		tlsClient: tlsClient,
		userAgent: opts.UserAgent,
		maxBody:   opts.MaxBodySize,
		logger:    logger.WithComponent("fetcher"),
	}, nil
}

// Get fetches a page, following redirects. Response.URL is the final URL.
func (c *Client) Get(ctx context.Context, targetURL string) (*domain.Response, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidURL, targetURL)
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range StealthHeaders(c.userAgent) {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.tlsClient.Do(req)
	if err != nil {
		return nil, domain.NewFetchError(targetURL, 0, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, domain.NewFetchError(targetURL, resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	body, err = c.decodeBody(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, domain.NewFetchError(targetURL, resp.StatusCode, err)
	}

	httpHeaders := make(http.Header)
	for k, v := range resp.Header {
		httpHeaders[k] = v
	}

	finalURL := targetURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	c.logger.Debug().
		Str("url", finalURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Fetched page")

	return &domain.Response{
		StatusCode:  resp.StatusCode,
		Body:        body,
		Headers:     httpHeaders,
		ContentType: resp.Header.Get("Content-Type"),
		URL:         finalURL,
	}, nil
}

// Close releases client resources
func (c *Client) Close() error {
	c.tlsClient.CloseIdleConnections()
	return nil
}

// zstdMagic starts every zstd frame
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// decodeBody decompresses zstd bodies the transport left encoded, such as
// pre-compressed pages served without a Content-Encoding header
func (c *Client) decodeBody(body []byte, contentType string) ([]byte, error) {
	if !bytes.HasPrefix(body, zstdMagic) && !strings.Contains(contentType, "zstd") {
		return body, nil
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(c.maxBody)))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer decoder.Close()

	decoded, err := decoder.DecodeAll(body, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress zstd: %w", err)
	}
	if int64(len(decoded)) > c.maxBody {
		decoded = decoded[:c.maxBody]
	}

	c.logger.Debug().
		Int("compressed_size", len(body)).
		Int("decompressed_size", len(decoded)).
		Msg("Decompressed zstd body")
	return decoded, nil
}
