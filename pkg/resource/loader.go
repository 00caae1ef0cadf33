package resource

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches a template fragment from a Source. Implementations decide
// which source kinds they support.
type Loader interface {
	Load(ctx context.Context, src Source) (Fragment, error)
}

// LoaderOptions carries the dependencies the built-in loader needs. Zero
// values disable the corresponding strategy.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups.
	FileSystem fs.FS
	// HTTPClient is used for SourceKindURL fetches when provided.
	HTTPClient *http.Client
	// AllowHTTPFallback enables URL fetching with a default client when no
	// HTTPClient is configured.
	AllowHTTPFallback bool
	// RequestTimeout bounds each remote fetch.
	RequestTimeout time.Duration
}
