package app

import (
	"context"
	"runtime"

	"github.com/quantmind-br/sharesns/internal/config"
	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/strategies"
)

// Engine selects how a page is read and where side effects happen
type Engine string

const (
	// EngineSystem fetches the page over HTTP and opens share URLs with the
	// desktop's default handler
	EngineSystem Engine = config.EngineSystem
	// EngineBrowser loads the page in Chrome and shares from inside it
	EngineBrowser Engine = config.EngineBrowser
)

// ResolveEngine returns the engine for one share. SDK destinations need a
// live page to load the SDK into, so they always run in the browser unless
// only the target is being printed.
func ResolveEngine(configured string, s strategies.Strategy, printOnly bool) Engine {
	if s.UsesSDK() && !printOnly {
		return EngineBrowser
	}
	if Engine(configured) == EngineBrowser {
		return EngineBrowser
	}
	return EngineSystem
}

// StaticPlatform is a Platform fixed by configuration
type StaticPlatform struct {
	iOS bool
}

// IsIOS implements domain.Platform
func (p StaticPlatform) IsIOS(context.Context) bool {
	return p.iOS
}

// PlatformFor maps the platform setting to a Platform. "auto" defers to
// detected when the engine can detect, otherwise to the host OS.
func PlatformFor(setting string, detected domain.Platform) domain.Platform {
	switch setting {
	case config.PlatformIOS:
		return StaticPlatform{iOS: true}
	case config.PlatformAndroid, config.PlatformDesktop:
		return StaticPlatform{}
	}
	if detected != nil {
		return detected
	}
	return StaticPlatform{iOS: runtime.GOOS == "ios"}
}
