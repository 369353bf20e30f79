package loader

import (
	"context"
	"errors"
)

// schemaFetcher is satisfied by the apify client; tests swap in fakes.
type schemaFetcher interface {
	InputSchema(ctx context.Context, actorID string) ([]byte, error)
}

func loadActor(ctx context.Context, fetcher schemaFetcher, id string) ([]byte, error) {
	if id == "" {
		return nil, errors.New("inputschema loader: actor id is required")
	}
	if fetcher == nil {
		return nil, errors.New("inputschema loader: actor api is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fetcher.InputSchema(ctx, id)
}
