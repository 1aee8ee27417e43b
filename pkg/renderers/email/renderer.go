// Package email renders merged content datasets into HTML email previews
// using the pongo2-backed template engine and an embedded newsletter
// template bundle.
package email

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-mailgen/pkg/content"
	"github.com/goliatone/go-mailgen/pkg/render"
	rendertemplate "github.com/goliatone/go-mailgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-mailgen/pkg/render/template/gotemplate"
)

const defaultTemplate = "templates/newsletter.tpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	defaultTemplate  string
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithDefaultTemplate overrides the template used when a request does not
// name one.
func WithDefaultTemplate(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.defaultTemplate = name
		}
	}
}

// WithSanitizePolicy overrides the bluemonday policy applied when a request
// asks for sanitized output.
func WithSanitizePolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer produces HTML email output.
type Renderer struct {
	templates       rendertemplate.TemplateRenderer
	defaultTemplate string
	policy          *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the email renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:      TemplatesFS(),
		defaultTemplate: defaultTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("email renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:       renderer,
		defaultTemplate: cfg.defaultTemplate,
		policy:          cfg.policy,
	}, nil
}

func (r *Renderer) Name() string {
	return "email"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the requested template against the merged dataset. Theme
// configuration (when present) is exposed to templates under the theme key;
// neither extra context values nor the resolved theme shadow dataset keys.
func (r *Renderer) Render(_ context.Context, data content.Dataset, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("email renderer: template renderer is nil")
	}

	name := options.Template
	if name == "" {
		name = r.defaultTemplate
	}

	result, err := r.templates.RenderTemplate(name, buildContext(data, options))
	if err != nil {
		return nil, fmt.Errorf("email renderer: render template: %w", err)
	}

	if options.Sanitize {
		policy := r.policy
		if policy == nil {
			policy = emailPolicy()
		}
		result = policy.Sanitize(result)
	}

	return []byte(result), nil
}

func buildContext(data content.Dataset, options render.RenderOptions) map[string]any {
	ctx := make(map[string]any, len(data)+len(options.Extra)+1)
	for key, value := range options.Extra {
		ctx[key] = value
	}
	for key, value := range data {
		ctx[key] = value
	}
	if options.Theme != nil {
		if _, exists := data["theme"]; !exists {
			ctx["theme"] = themeContext(options.Theme)
		}
	}
	return ctx
}
