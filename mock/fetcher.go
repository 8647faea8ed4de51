// Package mock provides mock implementations of geardocs interfaces for
// testing.
package mock

import (
	"context"

	"github.com/wzkariampuzha/geardocs"
)

var _ geardocs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of geardocs.Fetcher.
type Fetcher struct {
	FetchAllFn func(ctx context.Context, urls []string) []geardocs.FetchResult
}

func (f *Fetcher) FetchAll(ctx context.Context, urls []string) []geardocs.FetchResult {
	return f.FetchAllFn(ctx, urls)
}
