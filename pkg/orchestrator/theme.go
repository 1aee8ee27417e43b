package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// resolveTheme turns the request's theme/variant choice into a renderer
// configuration. Without a configured selector, or when neither the request
// nor the defaults name a theme, rendering proceeds unthemed.
func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}

	name := req.ThemeName
	if name == "" {
		name = o.defaultTheme
	}
	if name == "" {
		return nil, nil
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = o.defaultVariant
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q/%q: %w", name, variant, err)
	}

	return rendererConfig(selection, o.themeFallbacks), nil
}

// rendererConfig flattens a theme selection into the configuration renderers
// consume: manifest values overlaid with the selected variant, fallback
// partials filling any gaps, and tokens mirrored as CSS custom properties.
func rendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	partials := make(map[string]string, len(fallbacks))
	for key, value := range fallbacks {
		partials[key] = value
	}
	tokens := map[string]string{}
	assets := map[string]string{}
	prefix := ""

	if manifest := selection.Manifest; manifest != nil {
		for key, value := range manifest.Templates {
			partials[key] = value
		}
		for key, value := range manifest.Tokens {
			tokens[key] = value
		}
		prefix = manifest.Assets.Prefix
		for key, value := range manifest.Assets.Files {
			assets[key] = value
		}

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Templates {
				partials[key] = value
			}
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
			for key, value := range variant.Assets.Files {
				assets[key] = value
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, assets),
	}
}

func assetResolver(prefix string, assets map[string]string) func(string) string {
	return func(name string) string {
		file, ok := assets[name]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimSuffix(prefix, "/") + "/" + file
	}
}

// StaticSelector resolves theme selections from a fixed set of manifests.
// It satisfies theme.ThemeSelector for callers that register manifests at
// startup rather than loading them from a provider.
type StaticSelector struct {
	manifests map[string]*theme.Manifest
}

// NewStaticSelector indexes the supplied manifests by name.
func NewStaticSelector(manifests ...*theme.Manifest) *StaticSelector {
	indexed := make(map[string]*theme.Manifest, len(manifests))
	for _, manifest := range manifests {
		if manifest == nil || manifest.Name == "" {
			continue
		}
		indexed[manifest.Name] = manifest
	}
	return &StaticSelector{manifests: indexed}
}

// Select returns the selection for the named theme. Unknown variants resolve
// to the manifest defaults; unknown themes are an error.
func (s *StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("theme %q not registered", name)
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
