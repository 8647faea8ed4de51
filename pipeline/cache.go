package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/wzkariampuzha/geardocs"
)

// Ensure Cache implements geardocs.DocumentService at compile time.
var _ geardocs.DocumentService = (*Cache)(nil)

// Cache holds built documents keyed by source id. Documents are built
// lazily on first lookup; concurrent lookups for the same id share a
// single build via singleflight. Documents never expire on their own
// and are replaced only by Refresh.
type Cache struct {
	builder geardocs.DocumentBuilder
	sources []*geardocs.SourceDescriptor
	byID    map[string]*geardocs.SourceDescriptor

	mu   sync.RWMutex
	docs map[string]*geardocs.NormalizedDocument
	gen  uint64

	group singleflight.Group

	// BuildConcurrency bounds parallel builds during BuildAll and
	// Refresh. Zero means unbounded.
	BuildConcurrency int
}

// NewCache returns an empty cache over the given sources. Source order
// is preserved for listings.
func NewCache(builder geardocs.DocumentBuilder, sources []*geardocs.SourceDescriptor) *Cache {
	byID := make(map[string]*geardocs.SourceDescriptor, len(sources))
	for _, src := range sources {
		byID[src.ID] = src
	}
	return &Cache{
		builder: builder,
		sources: sources,
		byID:    byID,
		docs:    make(map[string]*geardocs.NormalizedDocument, len(sources)),
	}
}

// Source returns the descriptor registered under id, or nil.
func (c *Cache) Source(id string) *geardocs.SourceDescriptor {
	return c.byID[id]
}

// Sources returns all registered descriptors in catalog order.
func (c *Cache) Sources() []*geardocs.SourceDescriptor {
	return c.sources
}

// FindDocumentByID returns the cached document for id, building it first
// if no build has happened yet. Concurrent callers for the same id wait
// on one shared build.
func (c *Cache) FindDocumentByID(ctx context.Context, id string) (*geardocs.NormalizedDocument, error) {
	src, ok := c.byID[id]
	if !ok {
		return nil, geardocs.Errorf(geardocs.ENOTFOUND, "unknown documentation source %q", id)
	}

	c.mu.RLock()
	doc, ok := c.docs[id]
	gen := c.gen
	c.mu.RUnlock()
	if ok {
		return doc, nil
	}

	// The build key carries the cache generation so a build that was in
	// flight when Refresh cleared the map can neither be joined by
	// post-refresh callers nor store its stale result.
	v, err, _ := c.group.Do(fmt.Sprintf("%d/%s", gen, id), func() (any, error) {
		// Another waiter may have stored the document between the
		// read above and this call.
		c.mu.RLock()
		doc, ok := c.docs[id]
		c.mu.RUnlock()
		if ok {
			return doc, nil
		}

		doc = c.builder.Build(ctx, src)
		c.mu.Lock()
		if c.gen == gen {
			c.docs[id] = doc
		}
		c.mu.Unlock()
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*geardocs.NormalizedDocument), nil
}

// FindDocuments returns the documents built so far, in catalog order.
// It never triggers a build.
func (c *Cache) FindDocuments(ctx context.Context) ([]*geardocs.NormalizedDocument, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	docs := make([]*geardocs.NormalizedDocument, 0, len(c.docs))
	for _, src := range c.sources {
		if doc, ok := c.docs[src.ID]; ok {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// BuildAll builds every source that has no cached document yet. Builds
// run in parallel, bounded by BuildConcurrency.
func (c *Cache) BuildAll(ctx context.Context) error {
	g := new(errgroup.Group)
	if c.BuildConcurrency > 0 {
		g.SetLimit(c.BuildConcurrency)
	}
	for _, src := range c.sources {
		id := src.ID
		g.Go(func() error {
			_, err := c.FindDocumentByID(ctx, id)
			return err
		})
	}
	return g.Wait()
}

// Refresh discards all cached documents and rebuilds every source.
// Builds still running from before the refresh cannot leak their stale
// documents into the new cache generation.
func (c *Cache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	c.docs = make(map[string]*geardocs.NormalizedDocument, len(c.sources))
	c.mu.Unlock()
	return c.BuildAll(ctx)
}
