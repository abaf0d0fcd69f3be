package dispatcher

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/quantmind-br/sharesns/internal/clipboard"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/mocks"
	"github.com/quantmind-br/sharesns/internal/opengraph"
	"github.com/quantmind-br/sharesns/internal/sdk"
	"github.com/quantmind-br/sharesns/internal/strategies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl     *gomock.Controller
	source   *mocks.MockMetadataSource
	opener   *mocks.MockWindowOpener
	platform *mocks.MockPlatform
	legacy   *mocks.MockLegacyClipboard
	host     *mocks.MockScriptHost
	sdk      *mocks.MockKakaoSDK
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		ctrl:     ctrl,
		source:   mocks.NewMockMetadataSource(ctrl),
		opener:   mocks.NewMockWindowOpener(ctrl),
		platform: mocks.NewMockPlatform(ctrl),
		legacy:   mocks.NewMockLegacyClipboard(ctrl),
		host:     mocks.NewMockScriptHost(ctrl),
		sdk:      mocks.NewMockKakaoSDK(ctrl),
	}
}

func (f *fixture) dispatcher(t *testing.T, page map[string]string) *Dispatcher {
	t.Helper()
	f.source.EXPECT().Scan(gomock.Any()).Return(page, nil)
	f.platform.EXPECT().IsIOS(gomock.Any()).Return(false).AnyTimes()
	t.Cleanup(func() { sdk.ReleaseKakao(f.sdk) })

	d, err := New(context.Background(), Options{
		Source:       f.source,
		Defaults:     opengraph.DefaultFields(),
		Opener:       f.opener,
		Platform:     f.platform,
		Copier:       clipboard.NewCopier(clipboard.Options{Legacy: f.legacy}),
		ScriptHost:   f.host,
		SDK:          f.sdk,
		PollInterval: time.Millisecond,
		MaxChecks:    5,
	})
	require.NoError(t, err)
	return d
}

var page = map[string]string{
	domain.OGTitle:       "T",
	domain.OGDescription: "D",
	domain.OGURL:         "http://x.com/a?b=1",
	domain.OGImage:       "http://x.com/i.png",
}

func TestNew_RequiresOpener(t *testing.T) {
	_, err := New(context.Background(), Options{})
	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}

func TestDispatcher_Facebook(t *testing.T) {
	f := newFixture(t)
	d := f.dispatcher(t, page)

	f.opener.EXPECT().Open(gomock.Any(),
		"https://www.facebook.com/sharer/sharer.php?u=http%3A%2F%2Fx.com%2Fa%3Fb%3D1",
		"shareSNS",
		strategies.Features(strategies.PopupSize{Width: 600, Height: 580}),
	).Return(nil)

	d.Facebook(context.Background(), nil)
}

func TestDispatcher_SMS(t *testing.T) {
	f := newFixture(t)
	d := f.dispatcher(t, map[string]string{domain.OGTitle: "T", domain.OGDescription: "D", domain.OGURL: "http://x.com"})

	f.opener.EXPECT().Open(gomock.Any(), "sms:?body=T%0aD%0ahttp://x.com%2526a=1", "shareSNS", gomock.Any()).Return(nil)

	d.SMS(context.Background(), map[string]string{domain.OGURL: "http://x.com?a=1"})
}

func TestDispatcher_SMSOnIOS(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().Scan(gomock.Any()).Return(map[string]string{domain.OGURL: "http://x.com"}, nil)
	f.platform.EXPECT().IsIOS(gomock.Any()).Return(true)

	d, err := New(context.Background(), Options{Source: f.source, Opener: f.opener, Platform: f.platform})
	require.NoError(t, err)

	f.opener.EXPECT().Open(gomock.Any(), "sms:&body=http://x.com", gomock.Any(), gomock.Any()).Return(nil)
	d.SMS(context.Background(), nil)
}

func TestDispatcher_UnknownTypeIsNoOp(t *testing.T) {
	f := newFixture(t)
	d := f.dispatcher(t, page)

	for _, raw := range []string{"googleplus", "", "face book"} {
		err := d.Dispatch(context.Background(), raw, nil)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	}
	// no opener, sdk or clipboard expectations: any side effect fails the test
}

func TestDispatcher_TypeNormalization(t *testing.T) {
	f := newFixture(t)
	d := f.dispatcher(t, page)

	f.opener.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	for _, raw := range []string{"NAVER_BLOG", "naver-blog", "NaverBlog"} {
		require.NoError(t, d.Dispatch(context.Background(), raw, nil))
	}
}

func TestDispatcher_Overrides(t *testing.T) {
	f := newFixture(t)
	d := f.dispatcher(t, page)

	var urls []string
	f.opener.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, url, _, _ string) error {
			urls = append(urls, url)
			return nil
		}).Times(3)

	d.Twitter(context.Background(), `{"title":"New"}`)
	d.Twitter(context.Background(), `not json`)
	d.Twitter(context.Background(), nil)

	require.Len(t, urls, 3)
	assert.Contains(t, urls[0], "text=New%20D&")
	assert.Contains(t, urls[1], "text=T%20D&", "malformed overrides degrade to the page data")
	assert.Equal(t, urls[1], urls[2])
	assert.Equal(t, "T", d.OpenGraph().Get(domain.OGTitle), "overrides never leak into the captured data")
}

func TestDispatcher_PopupOverride(t *testing.T) {
	f := newFixture(t)
	d := f.dispatcher(t, page)

	f.opener.EXPECT().Open(gomock.Any(), gomock.Any(), "myPopup", gomock.Any()).Return(nil)
	d.Share(context.Background(), "twitter", map[string]any{"popup_name": "myPopup"})
}

func TestDispatcher_OpenErrorIsLogged(t *testing.T) {
	f := newFixture(t)
	d := f.dispatcher(t, page)

	f.opener.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("popup blocked"))

	assert.NotPanics(t, func() { d.Band(context.Background(), nil) })
	f.opener.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("popup blocked"))
	assert.Error(t, d.Dispatch(context.Background(), "band", nil))
}

func TestDispatcher_CopyURL(t *testing.T) {
	t.Run("callback exactly once per success", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(t, page)

		f.legacy.EXPECT().Available().Return(true).Times(2)
		f.legacy.EXPECT().SetText("http://x.com/a?b=1").Return(true).Times(2)

		var copied []string
		d.CopyURLCallback(func(text string) { copied = append(copied, text) })

		d.CopyURL(context.Background(), nil)
		d.CopyURL(context.Background(), nil)
		assert.Equal(t, []string{"http://x.com/a?b=1", "http://x.com/a?b=1"}, copied)
	})

	t.Run("no callback on failure", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(t, page)

		f.legacy.EXPECT().Available().Return(true)
		f.legacy.EXPECT().SetText(gomock.Any()).Return(false)

		called := 0
		d.CopyURLCallback(func(string) { called++ })

		err := d.Dispatch(context.Background(), "copyurl", nil)
		assert.ErrorIs(t, err, domain.ErrCopyFailed)
		assert.Zero(t, called)
	})

	t.Run("override url is copied", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(t, page)

		f.legacy.EXPECT().Available().Return(true)
		f.legacy.EXPECT().SetText("https://other.test").Return(true)

		d.CopyURL(context.Background(), map[string]string{domain.OGURL: "https://other.test"})
	})
}

func TestDispatcher_KakaoBeforeUseKakao(t *testing.T) {
	f := newFixture(t)
	d := f.dispatcher(t, page)

	err := d.Dispatch(context.Background(), "kakao", nil)
	assert.ErrorIs(t, err, domain.ErrSDKNotInitialized)
	assert.ErrorIs(t, d.AwaitKakao(context.Background()), domain.ErrSDKNotInitialized)
	assert.Equal(t, sdk.NotRequested, d.KakaoState())
}

func TestDispatcher_UseKakao(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(t, page)

		err := d.UseKakao(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrMissingAppKey)
		assert.True(t, domain.IsConfigurationError(err))
	})

	t.Run("share waits for readiness", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(t, page)

		f.host.EXPECT().HasScript(gomock.Any(), "kakao-js-sdk", "//developers.kakao.com/sdk/js/kakao.min.js").Return(false)
		events := make(chan domain.ScriptEvent, 1)
		events <- domain.ScriptEvent{Kind: domain.ScriptLoad}
		f.host.EXPECT().Inject(gomock.Any(), domain.ScriptTag{
			ID:    "kakao-js-sdk",
			Src:   "//developers.kakao.com/sdk/js/kakao.min.js",
			Async: true,
		}).Return((<-chan domain.ScriptEvent)(events), nil).Times(1)
		gomock.InOrder(
			f.sdk.EXPECT().IsInitialized(gomock.Any()).Return(false),
			f.sdk.EXPECT().Init(gomock.Any(), "app-key").Return(nil).Times(1),
			f.sdk.EXPECT().IsInitialized(gomock.Any()).Return(true),
		)

		f.sdk.EXPECT().SendDefault(gomock.Any(), domain.KakaoFeed{
			ObjectType: "feed",
			Content: domain.KakaoContent{
				Title:       "T",
				Description: "D",
				ImageURL:    "http://x.com/i.png",
				Link:        domain.KakaoLink{MobileWebURL: "http://x.com/a?b=1", WebURL: "http://x.com/a?b=1"},
			},
		}).Return(nil)
		f.sdk.EXPECT().ShareStory(gomock.Any(), domain.KakaoStory{URL: "http://x.com/a?b=1", Text: "Story"}).Return(nil)

		require.NoError(t, d.UseKakao(context.Background(), "app-key"))
		require.NoError(t, d.UseKakao(context.Background(), "app-key"), "repeated calls join the same initialization")
		require.NoError(t, d.AwaitKakao(context.Background()))

		require.NoError(t, d.Dispatch(context.Background(), "kakao", nil))
		require.NoError(t, d.Dispatch(context.Background(), "kakao_story", map[string]string{domain.KeyKakaoStoryText: "Story"}))
		assert.Equal(t, sdk.Ready, d.KakaoState())
	})
}

func TestDispatcher_KakaoInitializedOncePerPage(t *testing.T) {
	f := newFixture(t)
	first := f.dispatcher(t, page)
	second := f.dispatcher(t, page)

	f.host.EXPECT().HasScript(gomock.Any(), "kakao-js-sdk", gomock.Any()).Return(false)
	events := make(chan domain.ScriptEvent, 1)
	events <- domain.ScriptEvent{Kind: domain.ScriptLoad}
	f.host.EXPECT().Inject(gomock.Any(), gomock.Any()).Return((<-chan domain.ScriptEvent)(events), nil).Times(1)
	gomock.InOrder(
		f.sdk.EXPECT().IsInitialized(gomock.Any()).Return(false),
		f.sdk.EXPECT().Init(gomock.Any(), "app-key").Return(nil).Times(1),
		f.sdk.EXPECT().IsInitialized(gomock.Any()).Return(true),
	)

	require.NoError(t, first.UseKakao(context.Background(), "app-key"))
	require.NoError(t, second.UseKakao(context.Background(), "app-key"))
	require.NoError(t, first.AwaitKakao(context.Background()))
	require.NoError(t, second.AwaitKakao(context.Background()))
	assert.Equal(t, sdk.Ready, second.KakaoState())
}

func TestDispatcher_InjectedKakao(t *testing.T) {
	f := newFixture(t)
	k := sdk.NewKakao(sdk.KakaoOptions{})
	f.source.EXPECT().Scan(gomock.Any()).Return(page, nil)

	d, err := New(context.Background(), Options{
		Source:   f.source,
		Defaults: opengraph.DefaultFields(),
		Opener:   f.opener,
		Platform: f.platform,
		Kakao:    k,
		SDK:      f.sdk,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, d.UseKakao(context.Background(), "app-key"), domain.ErrSDKUnavailable, "the injected initializer is used")
}

func TestDispatcher_EveryTypeWithPageDefaults(t *testing.T) {
	f := newFixture(t)
	d := f.dispatcher(t, map[string]string{})

	f.opener.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.legacy.EXPECT().Available().Return(true).AnyTimes()
	f.legacy.EXPECT().SetText(gomock.Any()).Return(true).AnyTimes()

	for _, st := range d.Types() {
		assert.NotPanics(t, func() { d.Func(st)(context.Background(), nil) }, st)
	}

	methods := []ShareFunc{
		d.Facebook, d.Twitter, d.Naver, d.NaverBlog, d.Band, d.Kakao,
		d.KakaoStory, d.KakaoStoryURL, d.CopyURL, d.SMS, d.LinkedIn, d.Pinterest,
	}
	for _, m := range methods {
		assert.NotPanics(t, func() { m(context.Background(), nil) })
	}
}

func TestDispatcher_Target(t *testing.T) {
	f := newFixture(t)
	d := f.dispatcher(t, page)

	target, err := d.Target(context.Background(), "facebook", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u=http%3A%2F%2Fx.com%2Fa%3Fb%3D1", target.URL)

	_, err = d.Target(context.Background(), "myspace", nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestDispatcher_ConcurrentShares(t *testing.T) {
	f := newFixture(t)
	d := f.dispatcher(t, page)

	var mu sync.Mutex
	got := make(map[string]bool)
	f.opener.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, url, _, _ string) error {
			mu.Lock()
			got[url] = true
			mu.Unlock()
			return nil
		}).Times(50)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d.Facebook(context.Background(), map[string]string{domain.OGURL: fmt.Sprintf("http://x.com/%d", i)})
		}(i)
	}
	wg.Wait()

	require.Len(t, got, 50)
	assert.True(t, got["https://www.facebook.com/sharer/sharer.php?u=http%3A%2F%2Fx.com%2F7"])
}
