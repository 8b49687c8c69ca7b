package markup

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/loader"
	"github.com/viant/webcomp/model"
)

// ImportScanner emits an Import per recognized import element: html imports,
// external scripts and external stylesheets. The href is resolved against
// the containing document's URL.
type ImportScanner struct {
	Resolver loader.Resolver
}

// NewImportScanner creates an import scanner using the given resolver.
func NewImportScanner(resolver loader.Resolver) *ImportScanner {
	return &ImportScanner{Resolver: resolver}
}

func (s *ImportScanner) Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error) {
	var features []model.Feature
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		switch n.Type() {
		case nodeElement, nodeScriptElement:
			if imp := s.importOf(n, doc); imp != nil {
				features = append(features, imp)
			}
		}
		return true
	})
	return features, nil
}

func (s *ImportScanner) importOf(el *sitter.Node, doc *model.ParsedDocument) *model.Import {
	switch tagName(el, doc) {
	case "link":
		rel := attribute(el, doc, "rel")
		href := attribute(el, doc, "href")
		if rel == nil || href == nil || href.value == "" {
			return nil
		}
		var importType string
		switch rel.value {
		case "import":
			importType = "html-import"
		case "lazy-import":
			importType = "html-import"
		case "stylesheet":
			importType = "html-style"
		default:
			return nil
		}
		return &model.Import{
			URL:          s.Resolver.ResolveAgainst(doc.URL, href.value),
			OriginalHref: href.value,
			ImportType:   importType,
			Lazy:         rel.value == "lazy-import",
			SourceRange:  doc.RangeOf(el),
		}
	case "script":
		src := attribute(el, doc, "src")
		if src == nil || src.value == "" {
			return nil
		}
		return &model.Import{
			URL:          s.Resolver.ResolveAgainst(doc.URL, src.value),
			OriginalHref: src.value,
			ImportType:   "html-script",
			SourceRange:  doc.RangeOf(el),
		}
	}
	return nil
}
