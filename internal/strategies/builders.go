package strategies

import (
	"strings"

	"github.com/quantmind-br/sharesns/internal/domain"
)

// DefaultStrategies returns one strategy per known share type
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Type: domain.ShareFacebook, Kind: domain.TargetURL, Build: buildFacebook, Popup: PopupSize{Width: 600, Height: 580}},
		{Type: domain.ShareTwitter, Kind: domain.TargetURL, Build: buildTwitter, Popup: PopupSize{Width: 600, Height: 450}},
		{Type: domain.ShareNaver, Kind: domain.TargetURL, Build: buildNaver, Popup: PopupSize{Width: 600, Height: 550}},
		{Type: domain.ShareNaverBlog, Kind: domain.TargetURL, Build: buildNaverBlog, Popup: PopupSize{Width: 600, Height: 550}},
		{Type: domain.ShareBand, Kind: domain.TargetURL, Build: buildBand, Popup: PopupSize{Width: 410, Height: 540}},
		{Type: domain.ShareKakao, Kind: domain.TargetSDK, Build: buildKakaoFeed, Open: SDKOpen},
		{Type: domain.ShareKakaoStory, Kind: domain.TargetSDK, Build: buildKakaoStory, Open: SDKOpen},
		{Type: domain.ShareKakaoStoryURL, Kind: domain.TargetURL, Build: buildKakaoStoryURL, Popup: PopupSize{Width: 500, Height: 530}},
		{Type: domain.ShareCopyURL, Kind: domain.TargetClipboard, Build: buildCopyURL, Open: ClipboardOpen},
		{Type: domain.ShareSMS, Kind: domain.TargetURL, Build: BuildSMS},
		{Type: domain.ShareLinkedIn, Kind: domain.TargetURL, Build: buildLinkedIn, Popup: PopupSize{Width: 600, Height: 530}},
		{Type: domain.SharePinterest, Kind: domain.TargetURL, Build: buildPinterest, Popup: PopupSize{Width: 750, Height: 550}},
	}
}

func urlTarget(u string) domain.Target {
	return domain.Target{Kind: domain.TargetURL, URL: u}
}

func buildFacebook(og domain.OpenGraph, _ Env) domain.Target {
	return urlTarget(Encode([]string{"https://www.facebook.com/sharer/sharer.php?u=", ""},
		og.Get(domain.OGURL)))
}

// TweetText prefixes the description with the title when one is present.
// An explicit twitter_text field wins.
func TweetText(og domain.OpenGraph) string {
	if text := og.Get(domain.KeyTwitterText); text != "" {
		return text
	}
	return joinPresent(" ", og.Get(domain.OGTitle), og.Get(domain.OGDescription))
}

func buildTwitter(og domain.OpenGraph, _ Env) domain.Target {
	return urlTarget(Encode([]string{"https://twitter.com/intent/tweet?text=", "&url=", ""},
		TweetText(og), og.Get(domain.OGURL)))
}

// Naver expects the url parameter escaped twice
func buildNaver(og domain.OpenGraph, _ Env) domain.Target {
	return urlTarget(Encode([]string{"https://share.naver.com/web/shareView.nhn?url=", "&title=", ""},
		EncodeComponent(og.Get(domain.OGURL)), og.Get(domain.OGTitle)))
}

func buildNaverBlog(og domain.OpenGraph, _ Env) domain.Target {
	return urlTarget(Encode([]string{"https://blog.naver.com/openapi/share?url=", "&title=", ""},
		og.Get(domain.OGURL), og.Get(domain.OGTitle)))
}

func buildBand(og domain.OpenGraph, _ Env) domain.Target {
	return urlTarget(Encode([]string{"https://band.us/plugin/share?body=", "%0A", "%0A", "&route=", ""},
		og.Get(domain.OGTitle), og.Get(domain.OGDescription), og.Get(domain.OGURL), og.Get(domain.OGURL)))
}

// StoryText is the KakaoStory post text. An explicit kakaostory_text field wins.
func StoryText(og domain.OpenGraph) string {
	if text := og.Get(domain.KeyKakaoStoryText); text != "" {
		return text
	}
	return joinPresent(" ", og.Get(domain.OGTitle), og.Get(domain.OGDescription))
}

func buildKakaoStoryURL(og domain.OpenGraph, _ Env) domain.Target {
	return urlTarget(Encode([]string{"https://story.kakao.com/share?url=", "&text=", ""},
		og.Get(domain.OGURL), StoryText(og)))
}

func buildKakaoFeed(og domain.OpenGraph, _ Env) domain.Target {
	u := og.Get(domain.OGURL)
	return domain.Target{
		Kind: domain.TargetSDK,
		KakaoFeed: &domain.KakaoFeed{
			ObjectType: "feed",
			Content: domain.KakaoContent{
				Title:       og.Get(domain.OGTitle),
				Description: og.Get(domain.OGDescription),
				ImageURL:    og.Get(domain.OGImage),
				Link: domain.KakaoLink{
					MobileWebURL: u,
					WebURL:       u,
				},
			},
		},
	}
}

func buildKakaoStory(og domain.OpenGraph, _ Env) domain.Target {
	return domain.Target{
		Kind: domain.TargetSDK,
		KakaoStory: &domain.KakaoStory{
			URL:  og.Get(domain.OGURL),
			Text: StoryText(og),
		},
	}
}

func buildCopyURL(og domain.OpenGraph, _ Env) domain.Target {
	return domain.Target{Kind: domain.TargetClipboard, Text: og.Get(domain.OGURL)}
}

var (
	smsNewlines = strings.NewReplacer("\r\n", "%0a", "\n", "%0a", "\r", "%0a")
	smsURLQuery = strings.NewReplacer("&", "%2526", "?", "%2526")
)

// BuildSMS builds an sms: URI whose body is title, description and url on
// separate lines. The body is not percent-encoded: newlines become %0a and
// query delimiters inside the url become %2526 so messaging apps keep the
// link in one piece. iOS expects '&' before body, everything else '?'.
func BuildSMS(og domain.OpenGraph, env Env) domain.Target {
	sep := "?"
	if env.IOS {
		sep = "&"
	}

	body := joinPresent("\n",
		og.Get(domain.OGTitle),
		og.Get(domain.OGDescription),
		smsURLQuery.Replace(og.Get(domain.OGURL)),
	)

	return urlTarget("sms:" + sep + "body=" + smsNewlines.Replace(body))
}

func buildLinkedIn(og domain.OpenGraph, _ Env) domain.Target {
	return urlTarget(Encode([]string{"https://www.linkedin.com/shareArticle?mini=true&url=", "&title=", "&summary=", "&source=", ""},
		og.Get(domain.OGURL), og.Get(domain.OGTitle), og.Get(domain.OGDescription), og.Get(domain.OGSiteName)))
}

func buildPinterest(og domain.OpenGraph, _ Env) domain.Target {
	return urlTarget(Encode([]string{"https://pinterest.com/pin/create/button/?url=", "&media=", "&description=", ""},
		og.Get(domain.OGURL), og.Get(domain.OGImage), og.Get(domain.OGTitle)))
}

func joinPresent(sep string, parts ...string) string {
	present := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}
