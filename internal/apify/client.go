// Package apify resolves an actor's input schema through the platform REST
// API: actor -> default build tag -> build -> actorDefinition.input.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/goliatone/go-nodegen/pkg/inputschema"
)

const (
	defaultBuildTag = "latest"
	actorPath       = "/v2/acts/{actorId}"
	buildPath       = "/v2/actor-builds/{buildId}"
)

// Config configures the API client.
type Config struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	RetryCount int
	RetryWait  time.Duration
	HTTPClient *http.Client
}

// Client is a thin wrapper over the two endpoints needed to find an input
// schema.
type Client struct {
	http *resty.Client
}

// Actor is the subset of the actor object the client reads.
type Actor struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Username          string                 `json:"username"`
	Title             string                 `json:"title"`
	Description       string                 `json:"description"`
	DefaultRunOptions RunOptions             `json:"defaultRunOptions"`
	TaggedBuilds      map[string]TaggedBuild `json:"taggedBuilds"`
}

// RunOptions holds the actor's default run configuration.
type RunOptions struct {
	Build string `json:"build"`
}

// TaggedBuild points a tag at a concrete build.
type TaggedBuild struct {
	BuildID     string `json:"buildId"`
	BuildNumber string `json:"buildNumber"`
}

// Build is the subset of the build object the client reads.
type Build struct {
	ID              string          `json:"id"`
	ActorDefinition ActorDefinition `json:"actorDefinition"`
	// InputSchema is the legacy stringified schema older builds carry.
	InputSchema string `json:"inputSchema"`
}

// ActorDefinition keeps the input schema as raw JSON so property order
// survives.
type ActorDefinition struct {
	Input json.RawMessage `json:"input"`
}

type envelope[T any] struct {
	Data T `json:"data"`
}

// New builds a client with pass-through retry settings.
func New(cfg Config) *Client {
	var client *resty.Client
	if cfg.HTTPClient != nil {
		client = resty.NewWithClient(cfg.HTTPClient)
	} else {
		client = resty.New()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = inputschema.DefaultActorAPIBaseURL
	}

	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.RetryWait > 0 {
		client.SetRetryWaitTime(cfg.RetryWait)
		client.SetRetryMaxWaitTime(4 * cfg.RetryWait)
	}
	if token := strings.TrimSpace(cfg.Token); token != "" {
		client.SetAuthToken(token)
	}
	client.AddRetryCondition(retryCondition)

	return &Client{http: client}
}

func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// Actor fetches an actor by ID or "username/name" slug.
func (c *Client) Actor(ctx context.Context, id string) (Actor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Actor{}, errors.New("apify: actor id is required")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("actorId", encodeActorID(id)).
		Get(actorPath)
	if err != nil {
		return Actor{}, fmt.Errorf("apify: get actor %s: %w", id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return Actor{}, fmt.Errorf("apify: actor %s: %w", id, inputschema.ErrActorNotFound)
	}
	if resp.IsError() {
		return Actor{}, fmt.Errorf("apify: get actor %s: unexpected status %s", id, resp.Status())
	}

	var out envelope[Actor]
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return Actor{}, fmt.Errorf("apify: decode actor %s: %w", id, err)
	}
	return out.Data, nil
}

// Build fetches a build by ID.
func (c *Client) Build(ctx context.Context, id string) (Build, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Build{}, fmt.Errorf("apify: build id is required: %w", inputschema.ErrBuildNotFound)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("buildId", id).
		Get(buildPath)
	if err != nil {
		return Build{}, fmt.Errorf("apify: get build %s: %w", id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return Build{}, fmt.Errorf("apify: build %s: %w", id, inputschema.ErrBuildNotFound)
	}
	if resp.IsError() {
		return Build{}, fmt.Errorf("apify: get build %s: unexpected status %s", id, resp.Status())
	}

	var out envelope[Build]
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return Build{}, fmt.Errorf("apify: decode build %s: %w", id, err)
	}
	return out.Data, nil
}

// DefaultBuildID resolves the build the actor runs by default.
func (a Actor) DefaultBuildID() (string, error) {
	tag := strings.TrimSpace(a.DefaultRunOptions.Build)
	if tag == "" {
		tag = defaultBuildTag
	}
	tagged, ok := a.TaggedBuilds[tag]
	if !ok {
		return "", fmt.Errorf("apify: build tag %q: %w", tag, inputschema.ErrBuildNotFound)
	}
	if strings.TrimSpace(tagged.BuildID) == "" {
		return "", fmt.Errorf("apify: build tag %q has no build id: %w", tag, inputschema.ErrBuildNotFound)
	}
	return tagged.BuildID, nil
}

// RawInputSchema returns the build's input schema payload.
func (b Build) RawInputSchema() ([]byte, error) {
	input := bytes.TrimSpace(b.ActorDefinition.Input)
	if len(input) > 0 && !bytes.Equal(input, []byte("null")) {
		return append([]byte(nil), input...), nil
	}
	if legacy := strings.TrimSpace(b.InputSchema); legacy != "" {
		return []byte(legacy), nil
	}
	return nil, fmt.Errorf("apify: build %s: %w", b.ID, inputschema.ErrInputSchemaMissing)
}

// InputSchema walks actor -> default build -> input schema.
func (c *Client) InputSchema(ctx context.Context, actorID string) ([]byte, error) {
	actor, err := c.Actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	buildID, err := actor.DefaultBuildID()
	if err != nil {
		return nil, fmt.Errorf("%w (actor %s)", err, actorID)
	}
	build, err := c.Build(ctx, buildID)
	if err != nil {
		return nil, fmt.Errorf("%w (actor %s)", err, actorID)
	}
	raw, err := build.RawInputSchema()
	if err != nil {
		return nil, fmt.Errorf("%w (actor %s)", err, actorID)
	}
	return raw, nil
}

// encodeActorID turns "username/name" into the "username~name" form the API
// expects in paths.
func encodeActorID(id string) string {
	return strings.Replace(id, "/", "~", 1)
}
