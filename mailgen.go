// Package mailgen renders JSON/YAML content datasets through a Jinja-style
// template engine into HTML email previews and plaintext output, with
// per-recipient personalization (greeting rewrite and interest-based article
// reordering) layered on top.
package mailgen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-mailgen/pkg/content"
	"github.com/goliatone/go-mailgen/pkg/orchestrator"
	"github.com/goliatone/go-mailgen/pkg/render"
)

// Dataset aliases the base content mapping handed to templates.
type Dataset = content.Dataset

// Profile aliases per-recipient personalization data.
type Profile = content.Profile

// RenderOptions describes per-request overrides that renderers can use, such
// as template selection or output sanitizing.
type RenderOptions = render.RenderOptions

// Request aliases the orchestrator request for convenience.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so quick-start callers need a single import.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderHTML loads the dataset from the given source, applies the optional
// profile source, and renders through the default email renderer. It is the
// simplest entry point for callers that just want HTML output.
func RenderHTML(ctx context.Context, source, profileSource content.Source, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Render(ctx, orchestrator.Request{
		Source:        source,
		ProfileSource: profileSource,
	})
}

// RenderDataset renders a pre-built dataset and profile, bypassing the loader
// stage while still delegating to the orchestrator pipeline.
func RenderDataset(ctx context.Context, dataset Dataset, profile Profile, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Render(ctx, orchestrator.Request{
		Dataset:  dataset,
		Profile:  profile,
		Renderer: rendererName,
	})
}

// WithThemeSelector registers a go-theme selector so theme/variant choices on
// requests resolve into renderer configuration.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
