package script

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/jsdoc"
	"github.com/viant/webcomp/model"
)

// FunctionScanner finds function declarations and function-typed
// initializers or assignments that carry a @memberof annotation attaching
// them to a namespace. Params and return come from the declaration merged
// with the JSDoc.
type FunctionScanner struct{}

// NewFunctionScanner creates a function scanner.
func NewFunctionScanner() *FunctionScanner {
	return &FunctionScanner{}
}

func (s *FunctionScanner) Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error) {
	var features []model.Feature
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		var name string
		var fn *sitter.Node
		switch n.Type() {
		case nodeFunctionDeclaration:
			name = doc.TextOf(n.ChildByFieldName("name"))
			fn = n
		case nodeVariableDeclarator:
			value := n.ChildByFieldName("value")
			if value == nil || !isFunctionNode(value.Type()) {
				return true
			}
			name = doc.TextOf(n.ChildByFieldName("name"))
			fn = value
		case nodeAssignment:
			right := n.ChildByFieldName("right")
			if right == nil || !isFunctionNode(right.Type()) {
				return true
			}
			name = dottedName(n.ChildByFieldName("left"), doc)
			fn = right
		default:
			return true
		}
		if name == "" {
			return true
		}
		ann := annotationOf(n, doc)
		memberof := ann.Tag("memberof")
		if memberof == nil || memberof.Name == "" {
			return true
		}
		if ann.HasTag("mixinFunction") {
			return true
		}
		features = append(features, s.function(fn, doc, memberof.Name+"."+lastSegment(name), ann))
		return false
	})
	return features, nil
}

func (s *FunctionScanner) function(fn *sitter.Node, doc *model.ParsedDocument, name string, ann *jsdoc.Annotation) *model.Function {
	return &model.Function{
		Name:        name,
		Description: ann.Desc(),
		Summary:     tagDesc(ann, "summary"),
		Privacy:     InferPrivacy(lastSegment(name), ann, false),
		Params:      methodParams(fn, doc, ann),
		ReturnType:  tagType(ann, "returns"),
		ReturnDesc:  tagDesc(ann, "returns"),
		SourceRange: doc.RangeOf(fn),
	}
}
