package markup

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/model"
)

// ElementReferenceScanner records every use of a custom element: elements
// whose tag name contains a hyphen, excluding the dom-module wrapper itself.
type ElementReferenceScanner struct{}

// NewElementReferenceScanner creates an element-reference scanner.
func NewElementReferenceScanner() *ElementReferenceScanner {
	return &ElementReferenceScanner{}
}

func (s *ElementReferenceScanner) Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error) {
	var features []model.Feature
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		if n.Type() != nodeElement {
			return true
		}
		tag := tagName(n, doc)
		if !strings.Contains(tag, "-") || tag == "dom-module" {
			return true
		}
		ref := &model.ElementReference{
			TagName:     tag,
			SourceRange: doc.RangeOf(n),
		}
		for _, a := range attributes(n, doc) {
			ref.Attributes = append(ref.Attributes, &model.AttributeUse{
				Name:        a.name,
				Value:       a.value,
				SourceRange: doc.RangeOf(a.node),
				NameRange:   doc.RangeOf(a.nameNode),
			})
		}
		features = append(features, ref)
		return true
	})
	return features, nil
}
