package template

import (
	"io"
)

// TemplateRenderer is the seam renderers rely on. The engine owns template
// control flow (loops, conditionals, filter application); callers only hand
// over a name and a data mapping.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
