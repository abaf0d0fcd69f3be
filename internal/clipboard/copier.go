package clipboard

import (
	"context"
	"sync"

	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/utils"
)

// Callback is invoked with the copied text after a successful copy
type Callback func(text string)

// Copier copies text through a direct clipboard API when one is available,
// otherwise through a hidden element and the copy command
type Copier struct {
	legacy domain.LegacyClipboard
	doc    domain.CopyDocument
	prompt string
	logger *utils.Logger

	mu       sync.Mutex
	callback Callback

	// A document holds one selection, so element copies run one at a time
	elementMu sync.Mutex
}

// Options configures a Copier
type Options struct {
	Legacy   domain.LegacyClipboard
	Document domain.CopyDocument
	// Prompt is logged when a copy fails so the user can copy by hand
	Prompt string
	Logger *utils.Logger
}

// NewCopier creates a copier
func NewCopier(opts Options) *Copier {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Copier{
		legacy: opts.Legacy,
		doc:    opts.Document,
		prompt: opts.Prompt,
		logger: logger.WithComponent("clipboard"),
	}
}

// SetCallback registers the completion callback. A later registration
// replaces the earlier one; nil clears it.
func (c *Copier) SetCallback(fn Callback) {
	c.mu.Lock()
	c.callback = fn
	c.mu.Unlock()
}

// Copy copies text and reports success
func (c *Copier) Copy(ctx context.Context, text string) bool {
	return c.CopyWithPrompt(ctx, text, "")
}

// CopyWithPrompt copies text; prompt overrides the configured failure prompt
func (c *Copier) CopyWithPrompt(ctx context.Context, text, prompt string) bool {
	var ok bool
	switch {
	case c.legacy != nil && c.legacy.Available():
		ok = c.legacy.SetText(text)
	case c.doc != nil:
		ok = c.copyWithElement(ctx, text)
	default:
		c.logger.Warn().Err(domain.ErrNoCopyMechanism).Msg("Cannot copy")
	}

	if !ok {
		if prompt == "" {
			prompt = c.prompt
		}
		c.logger.Warn().Err(domain.ErrCopyFailed).Str("prompt", prompt).Str("text", text).Msg("Copy failed")
		return false
	}

	c.mu.Lock()
	fn := c.callback
	c.mu.Unlock()

	if fn != nil {
		fn(text)
	}
	return true
}

func (c *Copier) copyWithElement(ctx context.Context, text string) bool {
	c.elementMu.Lock()
	defer c.elementMu.Unlock()

	el, err := c.doc.CreateHiddenElement(ctx, text)
	if err != nil {
		c.logger.Debug().Err(err).Msg("Failed to create copy element")
		return false
	}
	defer func() {
		if err := el.Remove(context.WithoutCancel(ctx)); err != nil {
			c.logger.Debug().Err(err).Msg("Failed to remove copy element")
		}
	}()

	if err := el.SelectAll(ctx); err != nil {
		c.logger.Debug().Err(err).Msg("Failed to select copy element")
		return false
	}

	ok, err := c.doc.ExecCopy(ctx)
	if err != nil {
		c.logger.Debug().Err(err).Msg("Copy command failed")
		return false
	}
	return ok
}
