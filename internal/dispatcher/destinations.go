package dispatcher

import (
	"context"

	"github.com/quantmind-br/sharesns/internal/domain"
)

// Facebook shares to Facebook
func (d *Dispatcher) Facebook(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.ShareFacebook), overrides)
}

// Twitter shares to Twitter
func (d *Dispatcher) Twitter(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.ShareTwitter), overrides)
}

// Naver shares to Naver
func (d *Dispatcher) Naver(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.ShareNaver), overrides)
}

// NaverBlog shares to Naver Blog
func (d *Dispatcher) NaverBlog(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.ShareNaverBlog), overrides)
}

// Band shares to Band
func (d *Dispatcher) Band(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.ShareBand), overrides)
}

// Kakao shares a feed through the Kakao SDK
func (d *Dispatcher) Kakao(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.ShareKakao), overrides)
}

// KakaoStory shares to KakaoStory through the Kakao SDK
func (d *Dispatcher) KakaoStory(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.ShareKakaoStory), overrides)
}

// KakaoStoryURL shares to KakaoStory through its share URL
func (d *Dispatcher) KakaoStoryURL(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.ShareKakaoStoryURL), overrides)
}

// CopyURL copies the page URL
func (d *Dispatcher) CopyURL(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.ShareCopyURL), overrides)
}

// SMS opens the messaging app
func (d *Dispatcher) SMS(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.ShareSMS), overrides)
}

// LinkedIn shares to LinkedIn
func (d *Dispatcher) LinkedIn(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.ShareLinkedIn), overrides)
}

// Pinterest pins the page image
func (d *Dispatcher) Pinterest(ctx context.Context, overrides any) {
	d.Share(ctx, string(domain.SharePinterest), overrides)
}
