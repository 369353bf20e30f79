package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-nodegen/internal/apify"
	"github.com/goliatone/go-nodegen/pkg/inputschema"
)

// Loader implements inputschema.Loader by delegating to file, fs.FS, HTTP, or
// actor API strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	actors    schemaFetcher
}

// Ensure the implementation satisfies the public interface.
var _ inputschema.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options inputschema.LoaderOptions) inputschema.Loader {
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

	actors := apify.New(apify.Config{
		BaseURL:    options.ActorAPIBaseURL,
		Token:      options.ActorAPIToken,
		Timeout:    timeout,
		RetryCount: options.RetryCount,
		RetryWait:  options.RetryWait,
		HTTPClient: options.HTTPClient,
	})

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		actors:    actors,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src inputschema.Source) (inputschema.Document, error) {
	if src == nil {
		return inputschema.Document{}, errors.New("inputschema loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case inputschema.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case inputschema.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case inputschema.SourceKindURL:
		if !l.allowHTTP {
			return inputschema.Document{}, errors.New("inputschema loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	case inputschema.SourceKindActor:
		data, err = loadActor(ctx, l.actors, src.Location())
	default:
		err = errors.New("inputschema loader: unsupported source kind")
	}
	if err != nil {
		return inputschema.Document{}, err
	}

	return inputschema.NewDocument(src, data)
}
