package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-modelexport/pkg/export"
)

// Loader implements export.Loader by delegating to file, fs.FS, or HTTP
// strategies depending on the source kind.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ export.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options export.LoaderOptions) export.Loader {
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

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src export.Source) (export.Document, error) {
	if src == nil {
		return export.Document{}, errors.New("export loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case export.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case export.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case export.SourceKindURL:
		if !l.allowHTTP {
			return export.Document{}, errors.New("export loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("export loader: unsupported source kind")
	}
	if err != nil {
		return export.Document{}, err
	}

	return export.NewDocument(src, data)
}
