package strategies

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quantmind-br/sharesns/internal/domain"
)

// PopupSize is the size of the browsing context opened for a destination
type PopupSize struct {
	Width  int
	Height int
}

// IsZero reports whether no size was set
func (p PopupSize) IsZero() bool {
	return p.Width <= 0 || p.Height <= 0
}

// Popup defaults
const (
	DefaultPopupName   = "shareSNS"
	DefaultPopupWidth  = 660
	DefaultPopupHeight = 380
)

// DefaultPopup is used when neither the destination nor the data set a size
var DefaultPopup = PopupSize{Width: DefaultPopupWidth, Height: DefaultPopupHeight}

// PopupSizeFor resolves the popup size: destination size first, then
// popup_width/popup_height from the data, then DefaultPopup
func PopupSizeFor(s Strategy, og domain.OpenGraph) PopupSize {
	if !s.Popup.IsZero() {
		return s.Popup
	}

	w, errW := strconv.Atoi(og.Get(domain.KeyPopupWidth))
	h, errH := strconv.Atoi(og.Get(domain.KeyPopupHeight))
	if errW == nil && errH == nil && w > 0 && h > 0 {
		return PopupSize{Width: w, Height: h}
	}
	return DefaultPopup
}

// Features renders the window features string for a popup
func Features(size PopupSize) string {
	return fmt.Sprintf("width=%d,height=%d,location=0,menubar=0,resizable=0,scrollbars=yes,status=0,titlebar=0,toolbar=0",
		size.Width, size.Height)
}

// PopupOpen opens target.URL in a new sized browsing context
func PopupOpen(ctx context.Context, rt Runtime, s Strategy, og domain.OpenGraph, target domain.Target) error {
	if target.URL == "" {
		return fmt.Errorf("%s: empty share url", s.Type)
	}

	name := og.Get(domain.KeyPopupName)
	if name == "" {
		name = DefaultPopupName
	}

	return rt.OpenWindow(ctx, target.URL, name, Features(PopupSizeFor(s, og)))
}

// SDKOpen hands a structured payload to the Kakao SDK
func SDKOpen(ctx context.Context, rt Runtime, s Strategy, _ domain.OpenGraph, target domain.Target) error {
	switch {
	case target.KakaoFeed != nil:
		return rt.SendKakaoFeed(ctx, *target.KakaoFeed)
	case target.KakaoStory != nil:
		return rt.ShareKakaoStory(ctx, *target.KakaoStory)
	default:
		return fmt.Errorf("%s: target carries no sdk payload", s.Type)
	}
}

// ClipboardOpen copies target.Text
func ClipboardOpen(ctx context.Context, rt Runtime, s Strategy, _ domain.OpenGraph, target domain.Target) error {
	if !rt.Copy(ctx, target.Text) {
		return fmt.Errorf("%s: %w", s.Type, domain.ErrCopyFailed)
	}
	return nil
}
