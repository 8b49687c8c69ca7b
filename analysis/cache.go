package analysis

import (
	"sync"

	"github.com/viant/webcomp/depgraph"
	"github.com/viant/webcomp/model"
)

// cache is one snapshot's memoization state: parsed documents, locally
// scanned documents, transitively scanned documents, resolved documents and
// terminal failures, all keyed by canonical URL. Entries are monotonic
// within a snapshot: once populated, never mutated.
type cache struct {
	parsed       *promiseMap[*model.ParsedDocument]
	scannedLocal *promiseMap[*model.ScannedDocument]
	scanned      *promiseMap[*model.ScannedDocument]
	graph        *depgraph.Graph

	mu       sync.Mutex
	resolved map[string]*Document
	failed   map[string]*model.Warning
}

func newCache() *cache {
	return &cache{
		parsed:       newPromiseMap[*model.ParsedDocument](),
		scannedLocal: newPromiseMap[*model.ScannedDocument](),
		scanned:      newPromiseMap[*model.ScannedDocument](),
		graph:        depgraph.New(),
		resolved:     map[string]*Document{},
		failed:       map[string]*model.Warning{},
	}
}

// invalidate returns a new cache without the reverse transitive closure of
// urls, computed against this cache's dependency graph. The old cache is
// left untouched; awaiters still holding it observe a consistent snapshot.
func (c *cache) invalidate(urls []string) *cache {
	if len(urls) == 0 {
		return c.clone(nil)
	}
	closure := c.graph.Dependants(urls)
	return c.clone(closure)
}

func (c *cache) clone(exclude map[string]bool) *cache {
	c.mu.Lock()
	defer c.mu.Unlock()
	fresh := &cache{
		parsed:       c.parsed.withoutKeys(exclude),
		scannedLocal: c.scannedLocal.withoutKeys(exclude),
		scanned:      c.scanned.withoutKeys(exclude),
		graph:        c.graph.Without(exclude),
		resolved:     map[string]*Document{},
		failed:       map[string]*model.Warning{},
	}
	for url, doc := range c.resolved {
		if !exclude[url] {
			fresh.resolved[url] = doc
		}
	}
	for url, warning := range c.failed {
		if !exclude[url] {
			fresh.failed[url] = warning
		}
	}
	return fresh
}

func (c *cache) getResolved(url string) (*Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.resolved[url]
	return doc, ok
}

func (c *cache) putResolved(url string, doc *Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved[url] = doc
}

func (c *cache) getFailed(url string) (*model.Warning, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w, ok := c.failed[url]
	return w, ok
}

func (c *cache) putFailed(url string, warning *model.Warning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.failed[url]; !ok {
		c.failed[url] = warning
	}
}
