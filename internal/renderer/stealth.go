package renderer

import (
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// StealthPage creates a new stealth page that's harder to detect as automated
func StealthPage(browser *rod.Browser) (*rod.Page, error) {
	return stealth.Page(browser)
}

// ApplyStealthMode sets a desktop viewport and hides the webdriver flag.
// Share widgets on some portals refuse to render for automated clients.
func ApplyStealthMode(page *rod.Page) error {
	err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  1920,
		Height: 1080,
	})
	if err != nil {
		return err
	}

	_, err = page.Eval(jsHideWebdriver)
	return err
}
