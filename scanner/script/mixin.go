package script

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/jsdoc"
	"github.com/viant/webcomp/model"
)

// MixinScanner recognizes mixin-producing functions: function declarations,
// arrow expressions and function expressions assigned to variables or
// dotted targets, including helper-wrapped forms like
// Namespace.helper(function Mixin(base) { ... }). Mixins require the
// framework annotation on the enclosing binding; unannotated helpers are
// ignored. A plain let/var with no function body yields an empty-members
// mixin record.
type MixinScanner struct{}

// NewMixinScanner creates a mixin scanner.
func NewMixinScanner() *MixinScanner {
	return &MixinScanner{}
}

func (s *MixinScanner) Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error) {
	var features []model.Feature
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		switch n.Type() {
		case nodeFunctionDeclaration:
			ann := annotationOf(n, doc)
			if !ann.HasTag("mixinFunction") {
				return true
			}
			name := doc.TextOf(n.ChildByFieldName("name"))
			if name == "" {
				return true
			}
			features = append(features, s.mixin(n, doc, qualifiedName(name, ann), ann))
			return false
		case nodeVariableDeclarator:
			ann := annotationOf(n, doc)
			if !ann.HasTag("mixinFunction") {
				return true
			}
			name := doc.TextOf(n.ChildByFieldName("name"))
			if name == "" {
				return true
			}
			value := n.ChildByFieldName("value")
			if value == nil {
				// annotated forward declaration
				features = append(features, s.mixin(nil, doc, qualifiedName(name, ann), ann, doc.RangeOf(n)))
				return false
			}
			if fn := unwrapFunction(value); fn != nil {
				features = append(features, s.mixin(fn, doc, qualifiedName(name, ann), ann))
				return false
			}
			return true
		case nodeAssignment:
			ann := annotationOf(n, doc)
			if !ann.HasTag("mixinFunction") {
				return true
			}
			name := dottedName(n.ChildByFieldName("left"), doc)
			if name == "" {
				return true
			}
			if fn := unwrapFunction(n.ChildByFieldName("right")); fn != nil {
				features = append(features, s.mixin(fn, doc, name, ann))
				return false
			}
			return true
		}
		return true
	})
	return features, nil
}

// unwrapFunction returns the function-like value of an initializer,
// unwrapping a helper call around it when necessary.
func unwrapFunction(value *sitter.Node) *sitter.Node {
	if value == nil {
		return nil
	}
	if isFunctionNode(value.Type()) {
		return value
	}
	if value.Type() == nodeCallExpression {
		return firstArgFunction(value)
	}
	return nil
}

// mixin builds the mixin feature from its producing function.
func (s *MixinScanner) mixin(fn *sitter.Node, doc *model.ParsedDocument, name string, ann *jsdoc.Annotation, rng ...*model.SourceRange) *model.Mixin {
	mixin := &model.Mixin{}
	mixin.Name = name
	mixin.Description = ann.Desc()
	mixin.Summary = tagDesc(ann, "summary")
	mixin.Privacy = InferPrivacy(lastSegment(name), ann, false)
	if fn != nil {
		mixin.SourceRange = doc.RangeOf(fn)
		if classNode := mixinClassOf(fn, doc); classNode != nil {
			scanClassBody(classNode, doc, &mixin.Element)
			_, mixin.Mixins = heritageChain(classNode, doc)
		}
	} else if len(rng) > 0 {
		mixin.SourceRange = rng[0]
	}
	for _, title := range []string{"appliesMixin", "mixes"} {
		for _, m := range ann.TagNames(title) {
			mixin.Mixins = append(mixin.Mixins, &model.Reference{Identifier: m, SourceRange: mixin.SourceRange})
		}
	}
	return mixin
}
