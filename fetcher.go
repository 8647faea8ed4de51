package geardocs

import "context"

// Fetcher retrieves raw payloads from URLs.
type Fetcher interface {
	// FetchAll retrieves every URL concurrently and returns one result
	// per URL, in input order. A failure on one URL never prevents
	// attempting the others; per-URL errors are carried in the results.
	FetchAll(ctx context.Context, urls []string) []FetchResult
}
