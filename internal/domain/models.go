package domain

import (
	"net/http"
	"time"
)

// Well-known Open Graph keys
const (
	OGTitle       = "title"
	OGDescription = "description"
	OGURL         = "url"
	OGImage       = "image"
	OGSiteName    = "site_name"
)

// Default field keys pre-populated at capture time
const (
	KeyPopupName          = "popup_name"
	KeyPopupWidth         = "popup_width"
	KeyPopupHeight        = "popup_height"
	KeyTwitterText        = "twitter_text"
	KeyKakaoTalkLabel     = "kakaotalk_label"
	KeyKakaoImageWidth    = "kakaotalk_image_width"
	KeyKakaoImageHeight   = "kakaotalk_image_height"
	KeyKakaoWebButtonText = "kakaotalk_webbutton_text"
	KeyKakaoStoryText     = "kakaostory_text"
	KeyCopyURLPrompt      = "copyurl_copy"
)

// OpenGraph maps a metadata key (og: prefix stripped) to its value
type OpenGraph map[string]string

// Get returns the value for key, or "" when absent
func (og OpenGraph) Get(key string) string {
	if og == nil {
		return ""
	}
	return og[key]
}

// Clone returns a shallow copy that never aliases og
func (og OpenGraph) Clone() OpenGraph {
	out := make(OpenGraph, len(og))
	for k, v := range og {
		out[k] = v
	}
	return out
}

// ShareType is a normalized destination token
type ShareType string

const (
	ShareFacebook      ShareType = "facebook"
	ShareTwitter       ShareType = "twitter"
	ShareNaver         ShareType = "naver"
	ShareNaverBlog     ShareType = "naverblog"
	ShareBand          ShareType = "band"
	ShareKakao         ShareType = "kakao"
	ShareKakaoStory    ShareType = "kakaostory"
	ShareKakaoStoryURL ShareType = "kakaostoryurl"
	ShareCopyURL       ShareType = "copyurl"
	ShareSMS           ShareType = "sms"
	ShareLinkedIn      ShareType = "linkedin"
	SharePinterest     ShareType = "pinterest"
)

// String returns the token
func (t ShareType) String() string {
	return string(t)
}

// TargetKind tags the variant held by a Target
type TargetKind int

const (
	// TargetURL is a share URL opened in a new browsing context
	TargetURL TargetKind = iota
	// TargetSDK is a structured payload for a third-party SDK call
	TargetSDK
	// TargetClipboard is text to copy
	TargetClipboard
)

func (k TargetKind) String() string {
	switch k {
	case TargetURL:
		return "url"
	case TargetSDK:
		return "sdk"
	case TargetClipboard:
		return "clipboard"
	default:
		return "unknown"
	}
}

// Target is what a strategy builds from the effective Open Graph data
type Target struct {
	Kind       TargetKind  `json:"kind"`
	URL        string      `json:"url,omitempty"`
	Text       string      `json:"text,omitempty"`
	KakaoFeed  *KakaoFeed  `json:"kakao_feed,omitempty"`
	KakaoStory *KakaoStory `json:"kakao_story,omitempty"`
}

// KakaoLink is the link block of a Kakao feed
type KakaoLink struct {
	MobileWebURL string `json:"mobileWebUrl"`
	WebURL       string `json:"webUrl"`
}

// KakaoContent is the content block of a Kakao feed
type KakaoContent struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Link        KakaoLink `json:"link"`
}

// KakaoFeed is the payload of Kakao.Link.sendDefault
type KakaoFeed struct {
	ObjectType string       `json:"objectType"`
	Content    KakaoContent `json:"content"`
}

// KakaoStory is the payload of Kakao.Story.share
type KakaoStory struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// ScriptTag describes a script element to inject
type ScriptTag struct {
	ID    string
	Src   string
	Async bool
}

// ScriptEventKind identifies a script element event
type ScriptEventKind int

const (
	ScriptLoad ScriptEventKind = iota
	ScriptReadyStateChange
	ScriptError
	ScriptAbort
)

// ScriptEvent is one event observed on an injected script element
type ScriptEvent struct {
	Kind       ScriptEventKind
	ReadyState string
	Err        error
}

// Response represents an HTTP response
type Response struct {
	StatusCode  int
	Body        []byte
	Headers     http.Header
	ContentType string
	URL         string
	FromCache   bool
}

// CacheEntry represents a cached Open Graph scan
type CacheEntry struct {
	URL       string            `json:"url"`
	Data      map[string]string `json:"data"`
	FetchedAt time.Time         `json:"fetched_at"`
}
