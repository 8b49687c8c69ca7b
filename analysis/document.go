package analysis

import (
	"github.com/viant/webcomp/loader"
	"github.com/viant/webcomp/model"
)

// Document is a resolved document: the scanned features lifted into
// resolved features, grouped by kind, with inheritance chains flattened.
// A Document is created exactly once per (snapshot, URL) pair.
type Document struct {
	URL      string
	Scanned  *model.ScannedDocument
	Warnings []*model.Warning

	ctx        *Context
	features   []model.Feature
	byKind     map[model.Kind][]model.Feature
	importURLs []string
}

func newDocument(sd *model.ScannedDocument, ctx *Context) *Document {
	return &Document{
		URL:     sd.URL,
		Scanned: sd,
		ctx:     ctx,
		byKind:  map[model.Kind][]model.Feature{},
	}
}

// resolveLocked lifts the scanned features into resolved features. Called
// with the context's resolve lock held; cyclic imports re-entering through
// the resolved table observe the memoized shell.
func (d *Document) resolveLocked() {
	d.Warnings = append(d.Warnings, d.Scanned.Warnings...)
	for _, f := range d.Scanned.AllFeatures() {
		resolved := f
		if cl, ok := f.(model.ClassLike); ok {
			resolved = d.ctx.resolveClassLike(cl, d)
		}
		d.features = append(d.features, resolved)
		d.byKind[resolved.Kind()] = append(d.byKind[resolved.Kind()], resolved)
		if imp, ok := resolved.(*model.Import); ok && imp.URL != "" {
			d.importURLs = append(d.importURLs, imp.URL)
		}
	}
}

// Features returns the document's resolved features in scan order.
func (d *Document) Features() []model.Feature {
	return d.features
}

// Imports returns the resolved documents this document imports, skipping
// imports that failed or were never scanned.
func (d *Document) Imports() []*Document {
	d.ctx.resolveMu.Lock()
	defer d.ctx.resolveMu.Unlock()
	return d.importsLocked()
}

func (d *Document) importsLocked() []*Document {
	var docs []*Document
	for _, url := range d.importURLs {
		if doc, err := d.ctx.getDocumentLocked(url); err == nil {
			docs = append(docs, doc)
		}
	}
	return docs
}

// Query selects features from a document and, optionally, its imported
// closure.
type Query struct {
	Kind model.Kind
	// ID filters by identifier; empty matches all.
	ID string
	// Imported extends the search across the import graph.
	Imported bool
	// ExternalPackages keeps traversing into installed dependencies.
	ExternalPackages bool
}

// GetFeatures returns the features matching a query, in document traversal
// order.
func (d *Document) GetFeatures(q Query) []model.Feature {
	d.ctx.resolveMu.Lock()
	defer d.ctx.resolveMu.Unlock()
	var out []model.Feature
	d.collectFeatures(q, map[string]bool{}, &out)
	return out
}

func (d *Document) collectFeatures(q Query, visited map[string]bool, out *[]model.Feature) {
	if visited[d.URL] {
		return
	}
	visited[d.URL] = true
	features := d.features
	if q.Kind != "" {
		features = d.byKind[q.Kind]
	}
	for _, f := range features {
		if q.ID != "" && !hasIdentifier(f, q.ID) {
			continue
		}
		*out = append(*out, f)
	}
	if !q.Imported {
		return
	}
	for _, imported := range d.importsLocked() {
		if !q.ExternalPackages && loader.IsExternal(imported.URL) && !loader.IsExternal(d.URL) {
			continue
		}
		imported.collectFeatures(q, visited, out)
	}
}

func hasIdentifier(f model.Feature, id string) bool {
	for _, candidate := range f.Identifiers() {
		if candidate == id {
			return true
		}
	}
	return false
}
