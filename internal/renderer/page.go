package renderer

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/utils"
)

// PageHost exposes a loaded tab as every capability the dispatcher needs
type PageHost struct {
	page    *rod.Page
	timeout time.Duration
	logger  *utils.Logger
	seq     atomic.Uint64
}

var (
	_ domain.MetadataSource  = (*PageHost)(nil)
	_ domain.WindowOpener    = (*PageHost)(nil)
	_ domain.ScriptHost      = (*PageHost)(nil)
	_ domain.KakaoSDK        = (*PageHost)(nil)
	_ domain.LegacyClipboard = (*PageHost)(nil)
	_ domain.CopyDocument    = (*PageHost)(nil)
	_ domain.Platform        = (*PageHost)(nil)
)

func newPageHost(page *rod.Page, timeout time.Duration, logger *utils.Logger) *PageHost {
	return &PageHost{page: page, timeout: timeout, logger: logger}
}

// evaluate runs opts against the page, bounded by ctx and the host timeout
func (h *PageHost) evaluate(ctx context.Context, opts *rod.EvalOptions) (*proto.RuntimeRemoteObject, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.page.Context(ctx).Evaluate(opts)
}

func (h *PageHost) eval(ctx context.Context, js string, args ...interface{}) (*proto.RuntimeRemoteObject, error) {
	return h.evaluate(ctx, rod.Eval(js, args...))
}

// Scan collects every [property^="og:"] element. Later elements win.
func (h *PageHost) Scan(ctx context.Context) (map[string]string, error) {
	res, err := h.eval(ctx, jsScanOpenGraph)
	if err != nil {
		return nil, fmt.Errorf("scan open graph: %w", err)
	}

	og := make(map[string]string)
	for k, v := range res.Value.Map() {
		og[k] = v.Str()
	}
	return og, nil
}

// Open calls window.open as a user gesture so popup blocking does not apply
func (h *PageHost) Open(ctx context.Context, url, name, features string) error {
	res, err := h.evaluate(ctx, rod.Eval(jsOpenWindow, url, name, features).ByUser())
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	if !res.Value.Bool() {
		return fmt.Errorf("open window %s: blocked", url)
	}
	return nil
}

// HasScript reports whether a script with id, or a src containing
// srcSubstring, is in the document
func (h *PageHost) HasScript(ctx context.Context, id, srcSubstring string) bool {
	res, err := h.eval(ctx, jsHasScript, id, srcSubstring)
	if err != nil {
		h.logger.Debug().Err(err).Str("id", id).Msg("Script lookup failed")
		return false
	}
	return res.Value.Bool()
}

// Inject inserts the script tag before the first script of the document.
// The channel yields the first terminal event and is then closed. It is
// closed without an event if the page goes away or the host timeout passes.
func (h *PageHost) Inject(ctx context.Context, tag domain.ScriptTag) (<-chan domain.ScriptEvent, error) {
	if tag.Src == "" {
		return nil, fmt.Errorf("inject %s: empty src", tag.ID)
	}

	events := make(chan domain.ScriptEvent, 1)
	go func() {
		defer close(events)

		res, err := h.evaluate(ctx, rod.Eval(jsInjectScript, tag.ID, tag.Src, tag.Async).ByPromise())
		if err != nil {
			h.logger.Debug().Err(err).Str("src", tag.Src).Msg("Script injection interrupted")
			return
		}

		ev, ok := scriptEvent(res.Value.Get("kind").Str(), res.Value.Get("readyState").Str())
		if ok {
			events <- ev
		}
	}()
	return events, nil
}

// scriptEvent maps a page-side event name to a ScriptEvent
func scriptEvent(kind, readyState string) (domain.ScriptEvent, bool) {
	switch kind {
	case "load":
		return domain.ScriptEvent{Kind: domain.ScriptLoad}, true
	case "readystatechange":
		return domain.ScriptEvent{Kind: domain.ScriptReadyStateChange, ReadyState: readyState}, true
	case "error":
		return domain.ScriptEvent{Kind: domain.ScriptError}, true
	case "abort":
		return domain.ScriptEvent{Kind: domain.ScriptAbort}, true
	default:
		return domain.ScriptEvent{}, false
	}
}

// Init initializes the Kakao global unless it already is
func (h *PageHost) Init(ctx context.Context, appKey string) error {
	if _, err := h.eval(ctx, jsKakaoInit, appKey); err != nil {
		return fmt.Errorf("kakao init: %w", err)
	}
	return nil
}

// IsInitialized reports Kakao.isInitialized()
func (h *PageHost) IsInitialized(ctx context.Context) bool {
	res, err := h.eval(ctx, jsKakaoIsInitialized)
	if err != nil {
		return false
	}
	return res.Value.Bool()
}

// SendDefault calls Kakao.Link.sendDefault with the feed
func (h *PageHost) SendDefault(ctx context.Context, feed domain.KakaoFeed) error {
	if _, err := h.evaluate(ctx, rod.Eval(jsKakaoSendDefault, feed).ByUser()); err != nil {
		return fmt.Errorf("kakao send: %w", err)
	}
	return nil
}

// ShareStory calls Kakao.Story.share
func (h *PageHost) ShareStory(ctx context.Context, story domain.KakaoStory) error {
	if _, err := h.evaluate(ctx, rod.Eval(jsKakaoShareStory, story).ByUser()); err != nil {
		return fmt.Errorf("kakao story: %w", err)
	}
	return nil
}

// Available reports whether window.clipboardData exists
func (h *PageHost) Available() bool {
	res, err := h.eval(context.Background(), jsLegacyClipboardAvailable)
	return err == nil && res.Value.Bool()
}

// SetText writes through window.clipboardData
func (h *PageHost) SetText(text string) bool {
	res, err := h.eval(context.Background(), jsLegacyClipboardSet, text)
	return err == nil && res.Value.Bool()
}

// CreateHiddenElement appends an off-screen read-only textarea holding text
func (h *PageHost) CreateHiddenElement(ctx context.Context, text string) (domain.HiddenElement, error) {
	id := "sharesns-copy-" + strconv.FormatUint(h.seq.Add(1), 10)
	if _, err := h.eval(ctx, jsCreateHiddenTextarea, id, text); err != nil {
		return nil, fmt.Errorf("create textarea: %w", err)
	}
	return &hiddenTextarea{host: h, id: id}, nil
}

// ExecCopy runs document.execCommand('copy') on the current selection
func (h *PageHost) ExecCopy(ctx context.Context) (bool, error) {
	res, err := h.evaluate(ctx, rod.Eval(jsExecCopy).ByUser())
	if err != nil {
		return false, fmt.Errorf("exec copy: %w", err)
	}
	if res.Value.Nil() {
		return false, domain.ErrNoCopyMechanism
	}
	return res.Value.Bool(), nil
}

var iosUserAgent = regexp.MustCompile(`\b(iPhone|iPad|iPod)\b`)

// IsIOS inspects navigator.userAgent
func (h *PageHost) IsIOS(ctx context.Context) bool {
	res, err := h.eval(ctx, jsUserAgent)
	if err != nil {
		return false
	}
	return IsIOSUserAgent(res.Value.Str())
}

// IsIOSUserAgent reports whether ua names an iPhone, iPad or iPod
func IsIOSUserAgent(ua string) bool {
	return iosUserAgent.MatchString(ua)
}

// URL returns the current page URL
func (h *PageHost) URL(ctx context.Context) string {
	info, err := h.page.Context(ctx).Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// Close closes the tab
func (h *PageHost) Close() error {
	return h.page.Close()
}

type hiddenTextarea struct {
	host *PageHost
	id   string
}

func (t *hiddenTextarea) SelectAll(ctx context.Context) error {
	res, err := t.host.eval(ctx, jsSelectAll, t.id)
	if err != nil {
		return fmt.Errorf("select textarea: %w", err)
	}
	if !res.Value.Bool() {
		return fmt.Errorf("select textarea: %s is gone", t.id)
	}
	return nil
}

func (t *hiddenTextarea) Remove(ctx context.Context) error {
	_, err := t.host.eval(ctx, jsRemoveElement, t.id)
	return err
}
