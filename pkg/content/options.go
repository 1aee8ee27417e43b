package content

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches raw content documents from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configure the built-in loader implementation.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups. Required for fs sources.
	FileSystem fs.FS
	// HTTPClient overrides the client used for URL sources.
	HTTPClient *http.Client
	// AllowHTTPFallback enables URL sources when no explicit client is set.
	AllowHTTPFallback bool
	// RequestTimeout bounds URL fetches.
	RequestTimeout time.Duration
}

// NewLoaderOptions returns options with conservative defaults: file and fs
// loading enabled, HTTP disabled, 30s timeout once HTTP is opted into.
func NewLoaderOptions() LoaderOptions {
	return LoaderOptions{
		RequestTimeout: 30 * time.Second,
	}
}
