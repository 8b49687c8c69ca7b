// Package parser maps document types to the parsers producing their ASTs.
// Parsers are pure: no caching, no I/O; the analysis cache owns memoization.
package parser

import (
	"context"
	"path"
	"strings"

	"github.com/viant/webcomp/model"
)

// DocumentParser consumes raw bytes and yields a parsed document. A parse
// failure is returned as a *model.WarningError so the context can record it
// in its failed-document table.
type DocumentParser interface {
	Parse(ctx context.Context, content []byte, url string, inline *model.InlineOffset) (*model.ParsedDocument, error)
}

// Registry maps document extensions and types to parsers.
type Registry struct {
	byExt  map[string]DocumentParser
	byType map[string]DocumentParser
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byExt:  map[string]DocumentParser{},
		byType: map[string]DocumentParser{},
	}
}

// Register maps a document type and its extensions to a parser.
func (r *Registry) Register(docType string, extensions []string, p DocumentParser) {
	r.byType[docType] = p
	for _, ext := range extensions {
		r.byExt[ext] = p
	}
}

// ForURL returns the parser for a document URL, selected by extension.
func (r *Registry) ForURL(url string) (DocumentParser, bool) {
	ext := strings.ToLower(path.Ext(url))
	p, ok := r.byExt[ext]
	return p, ok
}

// ForType returns the parser for a document type, used for inline documents.
func (r *Registry) ForType(docType string) (DocumentParser, bool) {
	p, ok := r.byType[docType]
	return p, ok
}

// TypeForURL returns the registered document type for a URL.
func (r *Registry) TypeForURL(url string) string {
	switch strings.ToLower(path.Ext(url)) {
	case ".html", ".htm":
		return "html"
	case ".js", ".mjs":
		return "js"
	case ".css":
		return "css"
	case ".json":
		return "json"
	default:
		return ""
	}
}
