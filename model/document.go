package model

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// ParsedDocument is the immutable result of parsing one document. The AST
// stays attached so scanners can walk it; RangeOf maps node spans back to
// the outer file when the document was parsed from an inline block.
type ParsedDocument struct {
	Type     string // html, js, css, json
	URL      string
	Contents []byte
	Tree     *sitter.Tree // nil for structured-data documents
	Data     any          // decoded value for structured-data documents
	Hash     uint64
	Inline   *InlineOffset
}

// Root returns the AST root, or nil for structured-data documents.
func (d *ParsedDocument) Root() *sitter.Node {
	if d.Tree == nil {
		return nil
	}
	return d.Tree.RootNode()
}

// RangeOf converts a node's span into a SourceRange in the outer file.
func (d *ParsedDocument) RangeOf(node *sitter.Node) *SourceRange {
	return RangeOf(node, d.URL, d.Inline)
}

// TextOf returns the source text covered by a node.
func (d *ParsedDocument) TextOf(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	return node.Content(d.Contents)
}

// ScannedDocument holds the features scanned from one parsed document,
// before imports are followed or references resolved.
type ScannedDocument struct {
	URL      string
	Parsed   *ParsedDocument
	Features []Feature
	Warnings []*Warning
	IsInline bool
}

// AllFeatures returns the document's features including those of nested
// inline documents, in scan order.
func (d *ScannedDocument) AllFeatures() []Feature {
	var out []Feature
	for _, f := range d.Features {
		out = append(out, f)
		if inline, ok := f.(*InlineDocument); ok && inline.Scanned != nil {
			out = append(out, inline.Scanned.AllFeatures()...)
		}
	}
	return out
}

// Imports returns the document's import features, nested ones included.
func (d *ScannedDocument) Imports() []*Import {
	var out []*Import
	for _, f := range d.AllFeatures() {
		if imp, ok := f.(*Import); ok {
			out = append(out, imp)
		}
	}
	return out
}
