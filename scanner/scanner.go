// Package scanner classifies parsed-document ASTs into typed features. A
// scanner set is registered per document type; scanning runs the scanners in
// registration order and concatenates their features. Scanners are purely
// AST-driven: no I/O, no imports followed, no AST mutation.
package scanner

import (
	"context"

	"github.com/viant/webcomp/model"
)

// Scanner emits the features it recognizes in a parsed document.
type Scanner interface {
	Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error)
}

// Registry maps document types to their ordered scanner sets.
type Registry struct {
	byType map[string][]Scanner
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byType: map[string][]Scanner{}}
}

// Register appends scanners to a document type's set.
func (r *Registry) Register(docType string, scanners ...Scanner) {
	r.byType[docType] = append(r.byType[docType], scanners...)
}

// For returns the scanner set for a document type, in registration order.
func (r *Registry) For(docType string) []Scanner {
	return r.byType[docType]
}
