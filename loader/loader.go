// Package loader provides the URL loading and resolution services the
// analysis context delegates to. Loading goes through viant/afs so that
// documents can live on the local file system, in memory (tests), or on any
// other storage scheme afs understands.
package loader

import (
	"context"
	"fmt"

	"github.com/viant/afs"
)

// Loader fetches document bytes by canonical URL.
type Loader interface {
	CanLoad(url string) bool
	Load(ctx context.Context, url string) ([]byte, error)
}

// AFSLoader loads documents through an afs service.
type AFSLoader struct {
	fs afs.Service
}

// NewAFSLoader returns a loader over the default afs service.
func NewAFSLoader() *AFSLoader {
	return &AFSLoader{fs: afs.New()}
}

// CanLoad reports whether the URL uses a scheme the afs service handles.
func (l *AFSLoader) CanLoad(url string) bool {
	switch Scheme(url) {
	case "", "file", "mem":
		return true
	default:
		return false
	}
}

// Load downloads the document bytes.
func (l *AFSLoader) Load(ctx context.Context, url string) ([]byte, error) {
	data, err := l.fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to load %v: %w", url, err)
	}
	return data, nil
}
