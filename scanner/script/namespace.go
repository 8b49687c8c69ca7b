package script

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/model"
)

// NamespaceScanner finds object literals annotated as namespaces, bound to
// variables or dotted assignment targets.
type NamespaceScanner struct{}

// NewNamespaceScanner creates a namespace scanner.
func NewNamespaceScanner() *NamespaceScanner {
	return &NamespaceScanner{}
}

func (s *NamespaceScanner) Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error) {
	var features []model.Feature
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		var name string
		var value *sitter.Node
		switch n.Type() {
		case nodeVariableDeclarator:
			name = doc.TextOf(n.ChildByFieldName("name"))
			value = n.ChildByFieldName("value")
		case nodeAssignment:
			name = dottedName(n.ChildByFieldName("left"), doc)
			value = n.ChildByFieldName("right")
		default:
			return true
		}
		if name == "" || value == nil || value.Type() != nodeObject {
			return true
		}
		ann := annotationOf(n, doc)
		tag := ann.Tag("namespace")
		if tag == nil {
			return true
		}
		if tag.Name != "" {
			name = tag.Name
		}
		features = append(features, &model.Namespace{
			Name:        name,
			Description: ann.Desc(),
			Summary:     tagDesc(ann, "summary"),
			SourceRange: doc.RangeOf(n),
		})
		return false
	})
	return features, nil
}
