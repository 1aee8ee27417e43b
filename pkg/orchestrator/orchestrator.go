// Package orchestrator coordinates the full pipeline from content source to
// rendered output: load dataset, load profile, merge personalization, resolve
// theme, render.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-mailgen/internal/content/loader"
	"github.com/goliatone/go-mailgen/pkg/content"
	"github.com/goliatone/go-mailgen/pkg/personalize"
	"github.com/goliatone/go-mailgen/pkg/render"
	"github.com/goliatone/go-mailgen/pkg/renderers/email"
	"github.com/goliatone/go-mailgen/pkg/renderers/text"
)

const defaultRendererName = "email"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom content loader.
func WithLoader(loader content.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithLoaderOptions builds the default loader from the supplied options,
// enabling fs.FS or HTTP sources without a custom Loader implementation.
func WithLoaderOptions(options content.LoaderOptions) Option {
	return func(o *Orchestrator) {
		o.loader = internalLoader.New(options)
	}
}

// WithMerger injects a custom personalization merger.
func WithMerger(merger *personalize.Merger) Option {
	return func(o *Orchestrator) {
		o.merger = merger
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithClock injects the time source used to default calendar values during
// dataset decoding. Defaults to time.Now.
func WithClock(clock content.Clock) Option {
	return func(o *Orchestrator) {
		o.clock = clock
	}
}

// WithLogger injects the logger used for personalization warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// WithDefaultTheme sets the theme/variant used when a request names neither.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// Orchestrator coordinates loading, merging, and rendering. It applies
// sensible defaults (file loader, email renderer, process clock) while
// remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader          content.Loader
	merger          *personalize.Merger
	registry        *render.Registry
	defaultRenderer string
	clock           content.Clock
	logger          *slog.Logger
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	defaultTheme    string
	defaultVariant  string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render personalized output from a
// content dataset.
type Request struct {
	// Source identifies where the base dataset lives. Optional when Document
	// or Dataset is supplied.
	Source content.Source

	// Document allows callers to bypass the loader when they already have a
	// raw payload.
	Document *content.Document

	// Dataset bypasses loading and decoding entirely.
	Dataset content.Dataset

	// ProfileSource identifies optional per-recipient personalization data.
	// Missing or malformed profiles degrade to an empty profile with a logged
	// warning; they never fail the render.
	ProfileSource content.Source

	// Profile supplies personalization data directly, bypassing ProfileSource.
	Profile content.Profile

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme when a selector is configured.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions such as template
	// overrides or sanitize toggles that renderers can surface.
	RenderOptions render.RenderOptions
}

// Render executes the loader → merger → renderer sequence and returns the
// rendered bytes (HTML for the default email renderer).
func (o *Orchestrator) Render(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	dataset, err := o.resolveDataset(ctx, req)
	if err != nil {
		return nil, err
	}

	profile := o.resolveProfile(ctx, req)

	merged := o.merger.Merge(dataset, profile)

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, merged, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

func (o *Orchestrator) resolveDataset(ctx context.Context, req Request) (content.Dataset, error) {
	if req.Dataset != nil {
		return o.withCurrentYear(req.Dataset), nil
	}

	doc := req.Document
	if doc == nil {
		if req.Source == nil {
			return nil, errors.New("orchestrator: source, document, or dataset is required")
		}
		loaded, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: load dataset: %w", err)
		}
		doc = &loaded
	}

	dataset, err := content.DecodeDataset(*doc, o.clock)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: decode dataset: %w", err)
	}
	return dataset, nil
}

// withCurrentYear applies the same calendar defaulting to pre-built datasets
// that DecodeDataset applies to loaded ones, without mutating the caller's map.
func (o *Orchestrator) withCurrentYear(dataset content.Dataset) content.Dataset {
	if _, ok := dataset["current_year"]; ok {
		return dataset
	}
	clock := o.clock
	if clock == nil {
		clock = time.Now
	}
	out := dataset.Clone()
	out["current_year"] = clock().Year()
	return out
}

func (o *Orchestrator) resolveProfile(ctx context.Context, req Request) content.Profile {
	if req.Profile != nil {
		return req.Profile
	}
	if req.ProfileSource == nil {
		return content.Profile{}
	}

	result := content.LoadProfile(ctx, o.loader, req.ProfileSource)
	if result.Diagnostic != "" {
		o.logger.Warn("personalization unavailable", "detail", result.Diagnostic)
	}
	return result.Profile
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(content.NewLoaderOptions())
	}
	if o.merger == nil {
		o.merger = personalize.New()
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		htmlRenderer, err := email.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default email renderer: %w", err)
		} else {
			o.registry.MustRegister(htmlRenderer)
		}
		textRenderer, err := text.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default text renderer: %w", err)
		} else {
			o.registry.MustRegister(textRenderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
