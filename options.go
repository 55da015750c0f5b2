package mathify

import "github.com/lumilearn/mathify-go/internal/types"

// Option is a function that configures the render config for one call.
type Option func(*RenderConfig)

// WithMarkdownFormatting sets whether text spans containing emphasis
// markers are rendered into Formatted segments.
func WithMarkdownFormatting(enable bool) Option {
	return func(cfg *RenderConfig) {
		cfg.MarkdownFormatting = enable
	}
}

// WithForceDisplayMode forces math segments into display (block) mode.
// Display mode can only be forced on; a grouped equation system never
// drops back to inline regardless of this option.
func WithForceDisplayMode(enable bool) Option {
	return func(cfg *RenderConfig) {
		cfg.ForceDisplayMode = enable
	}
}

// WithConfig replaces the whole render config. Later options still apply
// on top of it.
func WithConfig(config *RenderConfig) Option {
	return func(cfg *RenderConfig) {
		if config != nil {
			*cfg = *config
		}
	}
}

// applyOptions builds a fresh config from the defaults and the given
// options. The returned config is private to one call; options never
// mutate the shared default.
func applyOptions(opts ...Option) *RenderConfig {
	cfg := *types.DefaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}
