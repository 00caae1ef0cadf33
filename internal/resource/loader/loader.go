package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgresource "github.com/goliatone/go-payflow/pkg/resource"
)

// Loader implements pkgresource.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgresource.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgresource.LoaderOptions) pkgresource.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a template fragment from the provided source.
func (l *Loader) Load(ctx context.Context, src pkgresource.Source) (pkgresource.Fragment, error) {
	if src == nil {
		return pkgresource.Fragment{}, errors.New("resource loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgresource.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgresource.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgresource.SourceKindURL:
		if !l.allowHTTP {
			return pkgresource.Fragment{}, errors.New("resource loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("resource loader: unsupported source kind")
	}
	if err != nil {
		return pkgresource.Fragment{}, err
	}

	return pkgresource.NewFragment(src, data)
}
