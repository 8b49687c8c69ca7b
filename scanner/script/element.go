package script

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/model"
)

// ElementScanner recognizes legacy factory-call element declarations:
// Polymer({is: '...', ...}). The descriptor's properties block publishes
// properties, behaviors compose into the prototype chain, and function
// valued entries become methods.
type ElementScanner struct{}

// NewElementScanner creates a legacy element scanner.
func NewElementScanner() *ElementScanner {
	return &ElementScanner{}
}

func (s *ElementScanner) Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error) {
	var features []model.Feature
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		if n.Type() != nodeCallExpression {
			return true
		}
		if dottedName(n.ChildByFieldName("function"), doc) != "Polymer" {
			return true
		}
		args := n.ChildByFieldName("arguments")
		if args == nil {
			return true
		}
		var descriptor *sitter.Node
		for i := 0; i < int(args.ChildCount()); i++ {
			if child := args.Child(i); child.Type() == nodeObject {
				descriptor = child
				break
			}
		}
		if descriptor == nil {
			return true
		}
		features = append(features, s.element(n, descriptor, doc))
		return false
	})
	return features, nil
}

func (s *ElementScanner) element(call, descriptor *sitter.Node, doc *model.ParsedDocument) *model.Element {
	ann := annotationOf(call, doc)
	el := &model.Element{}
	el.Description = ann.Desc()
	el.Summary = tagDesc(ann, "summary")
	el.Privacy = model.Public
	el.SourceRange = doc.RangeOf(call)
	el.Metadata = map[string]any{}
	if ann != nil {
		for _, t := range ann.Tags {
			switch t.Title {
			case "demo":
				if t.Name != "" {
					el.Demos = append(el.Demos, model.Demo{URL: t.Name, Description: t.Description})
				}
			case "event":
				if t.Name != "" {
					el.Events = append(el.Events, &model.Event{Name: t.Name, Description: t.Description, SourceRange: el.SourceRange})
				}
			}
		}
	}
	for _, pair := range objectPairs(descriptor) {
		key := pairKey(pair, doc)
		value := pair.ChildByFieldName("value")
		if value == nil {
			continue
		}
		switch {
		case key == "is":
			if tag, ok := stringLiteral(value, doc); ok {
				el.TagName = tag
			}
		case key == "properties" && value.Type() == nodeObject:
			attachPublished(el, publishedProperties(value, doc), doc)
		case key == "behaviors" && value.Type() == nodeArray:
			for i := 0; i < int(value.ChildCount()); i++ {
				child := value.Child(i)
				if ref := dottedName(child, doc); ref != "" {
					el.Behaviors = append(el.Behaviors, &model.Reference{Identifier: ref, SourceRange: doc.RangeOf(child)})
				}
			}
		case key == "observers" && value.Type() == nodeArray:
			var observers []string
			for i := 0; i < int(value.ChildCount()); i++ {
				if obs, ok := stringLiteral(value.Child(i), doc); ok {
					observers = append(observers, obs)
				}
			}
			el.Metadata["observers"] = observers
		case isFunctionNode(value.Type()):
			mann := commentAnnotation(pair, doc)
			el.Methods = append(el.Methods, &model.Method{
				Name:        key,
				Description: mann.Desc(),
				Privacy:     InferPrivacy(key, mann, false),
				Params:      methodParams(value, doc, mann),
				ReturnType:  tagType(mann, "returns"),
				ReturnDesc:  tagDesc(mann, "returns"),
				SourceRange: doc.RangeOf(pair),
			})
		}
	}
	if el.TagName == "" {
		el.Warnings = append(el.Warnings, &model.Warning{
			Code:        "unknown-tag-name",
			Message:     "element descriptor has no is property",
			Severity:    model.SeverityWarning,
			SourceRange: el.SourceRange,
		})
	}
	return el
}
