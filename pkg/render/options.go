package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the merge pipeline.
type RenderOptions struct {
	// Template overrides the renderer's default template name.
	Template string
	// Theme carries the resolved theme/variant configuration (tokens, CSS
	// vars, partials, asset URLs) for renderers that expose it to templates.
	Theme *theme.RendererConfig
	// Sanitize asks the renderer to pass its output through its markup
	// sanitizer before returning it.
	Sanitize bool
	// Extra seeds additional context values alongside the merged dataset.
	// Dataset keys win on collision so personalization cannot be shadowed.
	Extra map[string]any
}
