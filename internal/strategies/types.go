package strategies

import (
	"strings"

	"github.com/quantmind-br/sharesns/internal/domain"
	"golang.org/x/text/cases"
)

var separatorStripper = strings.NewReplacer("_", "", "-", "")

// Normalize folds a raw share-type token to its canonical form:
// surrounding space trimmed, '_' and '-' removed, case-folded.
// Tokens that are empty or contain anything but ASCII letters and digits
// are malformed. The check runs before folding, so non-ASCII runes that
// fold to ASCII (KELVIN SIGN, long s) never reach a known type.
func Normalize(raw string) (domain.ShareType, error) {
	token := separatorStripper.Replace(strings.TrimSpace(raw))

	if token == "" {
		return "", domain.NewValidationError("type", "empty share type", domain.ErrMalformedType)
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}
		return "", domain.NewValidationError("type", "share type "+quote(raw)+" is not a token", domain.ErrMalformedType)
	}

	return domain.ShareType(cases.Fold().String(token)), nil
}

// KnownTypes returns the closed set of share types, in registration order
func KnownTypes() []domain.ShareType {
	return []domain.ShareType{
		domain.ShareFacebook,
		domain.ShareTwitter,
		domain.ShareNaver,
		domain.ShareNaverBlog,
		domain.ShareBand,
		domain.ShareKakao,
		domain.ShareKakaoStory,
		domain.ShareKakaoStoryURL,
		domain.ShareCopyURL,
		domain.ShareSMS,
		domain.ShareLinkedIn,
		domain.SharePinterest,
	}
}

// IsKnown reports whether t belongs to the closed set
func IsKnown(t domain.ShareType) bool {
	for _, known := range KnownTypes() {
		if t == known {
			return true
		}
	}
	return false
}

func quote(s string) string {
	return `"` + s + `"`
}
