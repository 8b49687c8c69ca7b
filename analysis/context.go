// Package analysis hosts the analysis context: the engine coordinating the
// snapshot cache, the dependency graph, the scanner pipeline and the
// fork/invalidate/cancel protocol.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/viant/webcomp/loader"
	"github.com/viant/webcomp/model"
	"github.com/viant/webcomp/parser"
	"github.com/viant/webcomp/scanner"
)

// options is the immutable configuration shared by a context and all its
// forks.
type options struct {
	loader    loader.Loader
	resolver  loader.Resolver
	parsers   *parser.Registry
	scanners  *scanner.Registry
	lazyEdges map[string][]string
	logger    *slog.Logger
}

// Context is one immutable analysis snapshot: a cache generation plus the
// machinery to populate it. Forks created by invalidation share the
// immutable configuration but never mutable state.
type Context struct {
	opts       *options
	cache      *cache
	generation int

	// resolveMu serializes feature resolution; resolution is pure CPU work
	// over completed scan results, so holding it across a document's whole
	// resolve pass is safe.
	resolveMu     sync.Mutex
	resolvedFeats map[model.Feature]model.ClassLike
	resolving     map[model.Feature]bool
}

func newContext(opts *options, c *cache, generation int) *Context {
	return &Context{
		opts:          opts,
		cache:         c,
		generation:    generation,
		resolvedFeats: map[model.Feature]model.ClassLike{},
		resolving:     map[model.Feature]bool{},
	}
}

// fork derives a new snapshot, invalidating the reverse transitive closure
// of changed against the old dependency graph.
func (c *Context) fork(changed []string) *Context {
	return newContext(c.opts, c.cache.invalidate(changed), c.generation+1)
}

// Generation returns the snapshot's cache generation counter.
func (c *Context) Generation() int {
	return c.generation
}

// CanResolve reports whether the resolver understands a URL.
func (c *Context) CanResolve(url string) bool {
	return c.opts.resolver.CanResolve(url)
}

// ResolveURL canonicalizes a URL, passing unresolvable ones through.
func (c *Context) ResolveURL(url string) string {
	if !c.opts.resolver.CanResolve(url) {
		return url
	}
	return c.opts.resolver.Resolve(url)
}

// CanLoad reports whether the loader can fetch a URL.
func (c *Context) CanLoad(url string) bool {
	return c.opts.loader.CanLoad(url)
}

// parse loads and parses a document, memoized per snapshot. Producers run
// detached from any caller's cancellation.
func (c *Context) parse(url string) *promise[*model.ParsedDocument] {
	return c.cache.parsed.getOrCompute(url, func() (*model.ParsedDocument, error) {
		content, err := c.opts.loader.Load(context.Background(), url)
		if err != nil {
			return nil, model.NewWarningError("unable-to-load",
				fmt.Sprintf("unable to load %v: %v", url, err), model.ZeroRange(url))
		}
		p, ok := c.opts.parsers.ForURL(url)
		if !ok {
			return nil, model.NewWarningError("unknown-document-type",
				fmt.Sprintf("no parser registered for %v", url), model.ZeroRange(url))
		}
		return p.Parse(context.Background(), content, url, nil)
	})
}

// scanLocal parses a document and runs its scanner set, without following
// imports. Inline sub-documents are recursively parsed and scanned with the
// inline type's scanner set.
func (c *Context) scanLocal(url string) *promise[*model.ScannedDocument] {
	return c.cache.scannedLocal.getOrCompute(url, func() (*model.ScannedDocument, error) {
		parsed, err := c.parse(url).await(context.Background())
		if err != nil {
			return nil, err
		}
		return c.scanParsed(parsed, false)
	})
}

// scanParsed runs the scanner set for a parsed document and attaches
// recursively scanned inline sub-documents.
func (c *Context) scanParsed(parsed *model.ParsedDocument, isInline bool) (*model.ScannedDocument, error) {
	sd := &model.ScannedDocument{
		URL:      parsed.URL,
		Parsed:   parsed,
		IsInline: isInline,
	}
	for _, s := range c.opts.scanners.For(parsed.Type) {
		features, err := s.Scan(context.Background(), parsed)
		if err != nil {
			sd.Warnings = append(sd.Warnings, model.AsWarning(err, parsed.URL))
			continue
		}
		sd.Features = append(sd.Features, features...)
	}
	for _, f := range sd.Features {
		inline, ok := f.(*model.InlineDocument)
		if !ok {
			continue
		}
		p, ok := c.opts.parsers.ForType(inline.Type)
		if !ok {
			continue
		}
		offset := inline.Offset
		inlineParsed, err := p.Parse(context.Background(), inline.Contents, parsed.URL, &offset)
		if err != nil {
			inline.Warnings = append(inline.Warnings, model.AsWarning(err, parsed.URL))
			continue
		}
		scannedInline, err := c.scanParsed(inlineParsed, true)
		if err != nil {
			inline.Warnings = append(inline.Warnings, model.AsWarning(err, parsed.URL))
			continue
		}
		inline.Scanned = scannedInline
	}
	return sd, nil
}

// dependenciesOf returns the resolvable import targets of a scanned
// document plus any configured lazy edges.
func (c *Context) dependenciesOf(sd *model.ScannedDocument) []string {
	var deps []string
	seen := map[string]bool{}
	for _, imp := range sd.Imports() {
		if imp.URL == "" || imp.URL == sd.URL || seen[imp.URL] {
			continue
		}
		seen[imp.URL] = true
		deps = append(deps, imp.URL)
	}
	for _, lazy := range c.opts.lazyEdges[sd.URL] {
		target := c.ResolveURL(lazy)
		if target == "" || target == sd.URL || seen[target] {
			continue
		}
		seen[target] = true
		deps = append(deps, target)
	}
	return deps
}

// scanTransitive scans a document and schedules its imports, returning once
// the transitive closure is ready. Import failures attach to the import
// features rather than failing the importer; this is what lets cycles
// resolve.
func (c *Context) scanTransitive(url string) *promise[*model.ScannedDocument] {
	return c.cache.scanned.getOrCompute(url, func() (*model.ScannedDocument, error) {
		sd, err := c.scanLocal(url).await(context.Background())
		if err != nil {
			c.cache.graph.RejectDocument(url, err)
			if model.IsWarning(err) {
				c.cache.putFailed(url, model.AsWarning(err, url))
			}
			return nil, err
		}
		deps := c.dependenciesOf(sd)
		c.cache.graph.AddDocument(url, deps)
		for _, dep := range deps {
			c.scanTransitive(dep)
		}
		if err := c.cache.graph.WhenReady(context.Background(), url); err != nil {
			return nil, err
		}
		for _, imp := range sd.Imports() {
			if imp.URL == "" {
				continue
			}
			if depErr := c.cache.graph.Err(imp.URL); depErr != nil {
				imp.Warnings = append(imp.Warnings, model.AsWarning(depErr, imp.URL))
			}
		}
		return sd, nil
	})
}

// analyzeAll transitively scans every root URL concurrently, then resolves
// the successful ones. Warning-carrying failures land in the failed table;
// anything else propagates.
func (c *Context) analyzeAll(ctx context.Context, urls []string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, url := range urls {
		url := url
		g.Go(func() error {
			if _, err := c.scanTransitive(url).await(gctx); err != nil {
				if model.IsWarning(err) {
					c.cache.putFailed(url, model.AsWarning(err, url))
					return nil
				}
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, url := range urls {
		if _, ok := c.cache.getFailed(url); ok {
			continue
		}
		if _, err := c.GetDocument(url); err != nil && !model.IsWarning(err) {
			return err
		}
	}
	return nil
}

// allResolved reports whether every URL is already in the resolved table.
func (c *Context) allResolved(urls []string) bool {
	for _, url := range urls {
		if _, ok := c.cache.getResolved(url); !ok {
			return false
		}
	}
	return true
}

// GetDocument returns the resolved document for a URL, creating and
// memoizing it on first access within the snapshot. A URL that failed or
// was never scanned yields a warning-carrying error.
func (c *Context) GetDocument(url string) (*Document, error) {
	c.resolveMu.Lock()
	defer c.resolveMu.Unlock()
	return c.getDocumentLocked(c.ResolveURL(url))
}

func (c *Context) getDocumentLocked(url string) (*Document, error) {
	if doc, ok := c.cache.getResolved(url); ok {
		return doc, nil
	}
	if warning, ok := c.cache.getFailed(url); ok {
		return nil, &model.WarningError{Warning: warning}
	}
	p, ok := c.cache.scanned.peek(url)
	if !ok || !p.completed() {
		return nil, model.NewWarningError("unable-to-analyze",
			fmt.Sprintf("%v was not analyzed in this snapshot", url), model.ZeroRange(url))
	}
	if p.err != nil {
		if model.IsWarning(p.err) {
			return nil, &model.WarningError{Warning: model.AsWarning(p.err, url)}
		}
		return nil, p.err
	}
	doc := newDocument(p.val, c)
	// memoize before resolving so cyclic imports observe the shell
	c.cache.putResolved(url, doc)
	doc.resolveLocked()
	return doc, nil
}
