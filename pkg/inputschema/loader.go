package inputschema

import (
	"context"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// DefaultActorAPIBaseURL is the public actor platform API root.
const DefaultActorAPIBaseURL = "https://api.apify.com"

// Loader fetches input schema documents from files, fs.FS, HTTP, or the actor
// API. Implementations live under internal/inputschema but satisfy this
// contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem enables loading fs sources from an abstract filesystem.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means URL sources are disabled unless AllowHTTPFallback is
	// true.
	HTTPClient *http.Client

	// AllowHTTPFallback enables a default HTTP client when none is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations (URL and actor sources).
	RequestTimeout time.Duration

	// ActorAPIBaseURL points actor sources at the platform API. Empty means
	// DefaultActorAPIBaseURL.
	ActorAPIBaseURL string

	// ActorAPIToken is sent as a bearer token when set. Public actors resolve
	// without one.
	ActorAPIToken string

	// RetryCount and RetryWait are passed through to the actor API client.
	RetryCount int
	RetryWait  time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading using a default client and assigns an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithActorAPI configures the actor API endpoint and token.
func WithActorAPI(baseURL, token string) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.ActorAPIBaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		opts.ActorAPIToken = strings.TrimSpace(token)
	}
}

// WithRetries sets the retry count and wait used by the actor API client.
func WithRetries(count int, wait time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.RetryCount = count
		opts.RetryWait = wait
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.ActorAPIBaseURL == "" {
		cfg.ActorAPIBaseURL = DefaultActorAPIBaseURL
	}
	return cfg
}

// Construction helpers live in the top-level nodegen package to prevent import cycles.
