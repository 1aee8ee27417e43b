// Package text renders merged content datasets into plaintext output such as
// greeting messages and terminal-friendly newsletter digests.
package text

import (
	"context"
	"fmt"
	"io/fs"
	"os"

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

// Renderer produces plaintext output.
type Renderer struct {
	templates       rendertemplate.TemplateRenderer
	defaultTemplate string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer applying any provided options.
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
			return nil, fmt.Errorf("text renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:       renderer,
		defaultTemplate: cfg.defaultTemplate,
	}, nil
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render executes the requested template against the merged dataset.
func (r *Renderer) Render(_ context.Context, data content.Dataset, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("text renderer: template renderer is nil")
	}

	name := options.Template
	if name == "" {
		name = r.defaultTemplate
	}

	ctx := make(map[string]any, len(data)+len(options.Extra))
	for key, value := range options.Extra {
		ctx[key] = value
	}
	for key, value := range data {
		ctx[key] = value
	}

	result, err := r.templates.RenderTemplate(name, ctx)
	if err != nil {
		return nil, fmt.Errorf("text renderer: render template: %w", err)
	}
	return []byte(result), nil
}
