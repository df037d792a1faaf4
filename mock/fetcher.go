package mock

import (
	"context"

	"github.com/fwojciec/mdtools"
)

var _ mdtools.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of mdtools.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*mdtools.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*mdtools.FetchResult, error) {
	return f.FetchFn(ctx, url)
}
