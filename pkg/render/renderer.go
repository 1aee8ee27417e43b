package render

import (
	"context"

	"github.com/goliatone/go-mailgen/pkg/content"
)

// Renderer converts a merged dataset into a byte representation (HTML email,
// plaintext message, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, data content.Dataset, options RenderOptions) ([]byte, error)
}
