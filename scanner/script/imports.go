package script

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/loader"
	"github.com/viant/webcomp/model"
)

// ImportScanner emits an Import per module import statement. Relative
// specifiers are resolved against the containing document; bare specifiers
// are recorded unresolved and skipped by the transitive scan.
type ImportScanner struct {
	Resolver loader.Resolver
}

// NewImportScanner creates a script import scanner.
func NewImportScanner(resolver loader.Resolver) *ImportScanner {
	return &ImportScanner{Resolver: resolver}
}

func (s *ImportScanner) Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error) {
	var features []model.Feature
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		if n.Type() != nodeImportStatement {
			return true
		}
		source := n.ChildByFieldName("source")
		if source == nil {
			source = childOfType(n, nodeString)
		}
		specifier, ok := stringLiteral(source, doc)
		if !ok || specifier == "" {
			return true
		}
		imp := &model.Import{
			OriginalHref: specifier,
			ImportType:   "js-import",
			SourceRange:  doc.RangeOf(n),
		}
		if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
			imp.URL = s.Resolver.ResolveAgainst(doc.URL, specifier)
		}
		features = append(features, imp)
		return false
	})
	return features, nil
}
