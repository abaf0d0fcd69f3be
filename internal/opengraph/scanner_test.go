package opengraph

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/quantmind-br/sharesns/internal/cache"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/encoding/korean"
)

const page = `<!DOCTYPE html>
<html>
<head>
<title>Fallback title</title>
<meta property="og:title" content="OG Title">
<meta property="og:description" content="OG Description">
<meta property="og:url" content="https://x.test/post">
<meta property="og:image" content="https://x.test/i.png">
<meta property="og:title" content="Later Title">
<meta name="og:ignored" content="name attribute is not property">
</head>
<body><p>Body</p></body>
</html>`

func TestParseHTML(t *testing.T) {
	og, err := ParseHTML([]byte(page), "text/html; charset=utf-8")
	require.NoError(t, err)

	assert.Equal(t, "Later Title", og["title"], "later elements win")
	assert.Equal(t, "OG Description", og["description"])
	assert.Equal(t, "https://x.test/post", og["url"])
	assert.Equal(t, "https://x.test/i.png", og["image"])
	assert.NotContains(t, og, "ignored")
}

func TestParseHTML_EUCKR(t *testing.T) {
	src := `<html><head><meta charset="euc-kr"><meta property="og:title" content="공유하기"></head></html>`
	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(src))
	require.NoError(t, err)

	og, err := ParseHTML(encoded, "text/html")
	require.NoError(t, err)
	assert.Equal(t, "공유하기", og["title"])
}

func TestDetectEncoding(t *testing.T) {
	assert.Equal(t, "euc-kr", DetectEncoding([]byte("<html>"), "text/html; charset=EUC-KR"))
	assert.Equal(t, "shift_jis", DetectEncoding([]byte(`<meta charset="Shift_JIS">`), ""))
	assert.Equal(t, "utf-8", DetectEncoding([]byte("<html><body>공유</body></html>"), ""))
}

func TestHTMLScanner_Fallback(t *testing.T) {
	body := `<html><head><title>Plain page</title>
<meta name="description" content="Plain description">
<link rel="canonical" href="https://x.test/canonical">
</head><body><article><p>Some text.</p></article></body></html>`

	t.Run("enabled", func(t *testing.T) {
		s := &HTMLScanner{Body: []byte(body), PageURL: "https://x.test/page", Fallback: true}
		og, err := s.Scan(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Plain page", og["title"])
		assert.Equal(t, "Plain description", og["description"])
		assert.Equal(t, "https://x.test/canonical", og["url"])
	})

	t.Run("disabled", func(t *testing.T) {
		s := &HTMLScanner{Body: []byte(body), PageURL: "https://x.test/page"}
		og, err := s.Scan(context.Background())
		require.NoError(t, err)
		assert.Empty(t, og)
	})

	t.Run("og tags win", func(t *testing.T) {
		s := &HTMLScanner{Body: []byte(page), PageURL: "https://x.test/page", Fallback: true}
		og, err := s.Scan(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Later Title", og["title"])
		assert.Equal(t, "https://x.test/post", og["url"])
	})
}

func TestHTMLScanner_ResolvesRelativeLinks(t *testing.T) {
	body := `<meta property="og:url" content="/post/1"><meta property="og:image" content="img/og.png">`

	s := &HTMLScanner{Body: []byte(body), PageURL: "https://x.test/blog/index.html"}
	og, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://x.test/post/1", og["url"])
	assert.Equal(t, "https://x.test/blog/img/og.png", og["image"])

	t.Run("left alone without a page url", func(t *testing.T) {
		og, err := (&HTMLScanner{Body: []byte(body)}).Scan(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/post/1", og["url"])
	})
}

func TestFetchScanner(t *testing.T) {
	ctx := context.Background()
	pageURL := "https://x.test/post"

	t.Run("fetches and caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mocks.NewMockFetcher(ctrl)
		c := mocks.NewMockCache(ctrl)

		key := cache.OpenGraphKey(pageURL)
		c.EXPECT().Get(ctx, key).Return(nil, domain.ErrCacheMiss)
		fetcher.EXPECT().Get(ctx, pageURL).Return(&domain.Response{
			StatusCode:  200,
			Body:        []byte(page),
			ContentType: "text/html",
			URL:         pageURL,
		}, nil)
		c.EXPECT().Set(ctx, key, gomock.Any(), time.Hour).DoAndReturn(
			func(_ context.Context, _ string, value []byte, _ time.Duration) error {
				var entry domain.CacheEntry
				require.NoError(t, json.Unmarshal(value, &entry))
				assert.Equal(t, "Later Title", entry.Data["title"])
				return nil
			})

		s := NewFetchScanner(FetchScannerOptions{PageURL: pageURL, Fetcher: fetcher, Cache: c, CacheTTL: time.Hour})
		og, err := s.Scan(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Later Title", og["title"])
	})

	t.Run("cache hit skips fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mocks.NewMockFetcher(ctrl)
		c := mocks.NewMockCache(ctrl)

		data, err := json.Marshal(domain.CacheEntry{URL: pageURL, Data: map[string]string{"title": "Cached"}, FetchedAt: time.Now()})
		require.NoError(t, err)
		c.EXPECT().Get(ctx, cache.OpenGraphKey(pageURL)).Return(data, nil)

		s := NewFetchScanner(FetchScannerOptions{PageURL: pageURL, Fetcher: fetcher, Cache: c})
		og, err := s.Scan(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"title": "Cached"}, og)
	})

	t.Run("fetch error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mocks.NewMockFetcher(ctrl)
		fetcher.EXPECT().Get(ctx, pageURL).Return(nil, domain.NewFetchError(pageURL, 404, errors.New("not found")))

		s := NewFetchScanner(FetchScannerOptions{PageURL: pageURL, Fetcher: fetcher})
		_, err := s.Scan(ctx)
		require.Error(t, err)
	})

	t.Run("empty url", func(t *testing.T) {
		_, err := NewFetchScanner(FetchScannerOptions{}).Scan(ctx)
		assert.ErrorIs(t, err, domain.ErrInvalidURL)
	})
}
