package analysis

import (
	"context"
	"log/slog"
	"sync"

	"github.com/viant/webcomp/loader"
	"github.com/viant/webcomp/parser"
	"github.com/viant/webcomp/scanner"
)

// Options configures an Analyzer. Zero-value fields fall back to the
// standard loader, resolver, parser and scanner sets.
type Options struct {
	Loader    loader.Loader
	Resolver  loader.Resolver
	Parsers   *parser.Registry
	Scanners  *scanner.Registry
	LazyEdges map[string][]string
	Logger    *slog.Logger
}

// Analyzer is the public entry point. It owns the current snapshot and
// serializes analyze calls against the in-flight one; serialization exists
// for cache reuse, not correctness — concurrent analyses on different
// forks proceed independently.
type Analyzer struct {
	mu       sync.Mutex
	current  *Context
	inFlight <-chan struct{}
}

// NewAnalyzer creates an analyzer with the given options.
func NewAnalyzer(o Options) *Analyzer {
	if o.Resolver == nil {
		o.Resolver = loader.NewPackageResolver("")
	}
	if o.Loader == nil {
		o.Loader = loader.NewAFSLoader()
	}
	if o.Parsers == nil {
		o.Parsers = parser.Default()
	}
	if o.Scanners == nil {
		o.Scanners = scanner.Default(o.Resolver)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	opts := &options{
		loader:    o.Loader,
		resolver:  o.Resolver,
		parsers:   o.Parsers,
		scanners:  o.Scanners,
		lazyEdges: o.LazyEdges,
		logger:    o.Logger,
	}
	a := &Analyzer{}
	a.current = newContext(opts, newCache(), 0)
	return a
}

// Analyze returns a snapshot with all urls resolved, which may be the
// current snapshot when everything is already cached. Cancelling ctx
// abandons the wait with context.Canceled; producers already inside the
// cache run to completion for any non-cancelled peer.
func (a *Analyzer) Analyze(ctx context.Context, urls []string) (*Context, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.mu.Lock()
	prev, cur := a.inFlight, a.current
	a.mu.Unlock()
	if prev != nil {
		select {
		case <-prev:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	canonical := make([]string, len(urls))
	for i, url := range urls {
		canonical[i] = cur.ResolveURL(url)
	}
	if cur.allResolved(canonical) {
		return cur, nil
	}
	fork := cur.fork(nil)
	done := make(chan struct{})
	a.mu.Lock()
	a.current = fork
	a.inFlight = done
	a.mu.Unlock()

	var analyzeErr error
	go func() {
		defer close(done)
		analyzeErr = fork.analyzeAll(context.Background(), canonical)
	}()
	select {
	case <-done:
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if analyzeErr != nil {
			return nil, analyzeErr
		}
		fork.opts.logger.Debug("analysis complete",
			slog.Int("generation", fork.generation), slog.Int("urls", len(canonical)))
		return fork, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// FilesChanged forks the current snapshot, invalidating the changed urls
// and everything that transitively imports them, and makes the fork
// current.
func (a *Analyzer) FilesChanged(urls []string) *Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	canonical := make([]string, len(urls))
	for i, url := range urls {
		canonical[i] = a.current.ResolveURL(url)
	}
	a.current = a.current.fork(canonical)
	a.current.opts.logger.Debug("files changed",
		slog.Int("generation", a.current.generation), slog.Int("urls", len(canonical)))
	return a.current
}

// ClearCaches forks the current snapshot with an empty cache.
func (a *Analyzer) ClearCaches() *Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = newContext(a.current.opts, newCache(), a.current.generation+1)
	return a.current
}

// Current returns the current snapshot.
func (a *Analyzer) Current() *Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}
