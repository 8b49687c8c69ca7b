package script

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/jsdoc"
	"github.com/viant/webcomp/model"
)

// BehaviorScanner recognizes framework behaviors: object literals bound to
// dotted names carrying the behavior annotation. A behavior whose value is
// an array of identifier references is a composition of chained behaviors.
// Same-name declarations are merged, keeping the last-declared instance as
// the base.
type BehaviorScanner struct{}

// NewBehaviorScanner creates a behavior scanner.
func NewBehaviorScanner() *BehaviorScanner {
	return &BehaviorScanner{}
}

func (s *BehaviorScanner) Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error) {
	var ordered []*model.Behavior
	index := map[string]*model.Behavior{}
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		if n.Type() != nodeAssignment {
			return true
		}
		bound := dottedName(n.ChildByFieldName("left"), doc)
		if bound == "" || !strings.Contains(bound, ".") {
			return true
		}
		ann := annotationOf(n, doc)
		tag := ann.Tag("polymerBehavior")
		if tag == nil {
			return true
		}
		name := tag.Name
		if name == "" {
			name = bound
		}
		behavior := s.behavior(n.ChildByFieldName("right"), doc, name, ann)
		if existing, ok := index[name]; ok {
			merged := mergeBehaviors(existing, behavior)
			index[name] = merged
			for i, b := range ordered {
				if b == existing {
					ordered[i] = merged
				}
			}
			return false
		}
		index[name] = behavior
		ordered = append(ordered, behavior)
		return false
	})
	features := make([]model.Feature, 0, len(ordered))
	for _, b := range ordered {
		features = append(features, b)
	}
	return features, nil
}

func (s *BehaviorScanner) behavior(value *sitter.Node, doc *model.ParsedDocument, name string, ann *jsdoc.Annotation) *model.Behavior {
	b := &model.Behavior{}
	b.Name = name
	b.Description = ann.Desc()
	b.Summary = tagDesc(ann, "summary")
	b.Privacy = InferPrivacy(lastSegment(name), ann, false)
	if value != nil {
		b.SourceRange = doc.RangeOf(value)
	}
	for _, t := range ann.Tags {
		switch t.Title {
		case "demo":
			if t.Name != "" {
				b.Demos = append(b.Demos, model.Demo{URL: t.Name, Description: t.Description})
			}
		case "event":
			if t.Name != "" {
				b.Events = append(b.Events, &model.Event{Name: t.Name, Description: t.Description, SourceRange: b.SourceRange})
			}
		}
	}
	if value == nil {
		return b
	}
	switch value.Type() {
	case nodeArray:
		// composition: an array of references to chained behaviors
		for i := 0; i < int(value.ChildCount()); i++ {
			child := value.Child(i)
			if ref := dottedName(child, doc); ref != "" {
				b.Behaviors = append(b.Behaviors, &model.Reference{Identifier: ref, SourceRange: doc.RangeOf(child)})
			}
		}
	case nodeObject:
		s.scanObject(value, doc, b)
	}
	return b
}

func (s *BehaviorScanner) scanObject(obj *sitter.Node, doc *model.ParsedDocument, b *model.Behavior) {
	for _, pair := range objectPairs(obj) {
		key := pairKey(pair, doc)
		value := pair.ChildByFieldName("value")
		switch {
		case key == "properties" && value != nil && value.Type() == nodeObject:
			attachPublished(&b.Element, publishedProperties(value, doc), doc)
		case key == "behaviors" && value != nil && value.Type() == nodeArray:
			for i := 0; i < int(value.ChildCount()); i++ {
				child := value.Child(i)
				if ref := dottedName(child, doc); ref != "" {
					b.Behaviors = append(b.Behaviors, &model.Reference{Identifier: ref, SourceRange: doc.RangeOf(child)})
				}
			}
		case value != nil && isFunctionNode(value.Type()):
			ann := commentAnnotation(pair, doc)
			b.Methods = append(b.Methods, &model.Method{
				Name:        key,
				Description: ann.Desc(),
				Privacy:     InferPrivacy(key, ann, false),
				Params:      methodParams(value, doc, ann),
				ReturnType:  tagType(ann, "returns"),
				ReturnDesc:  tagDesc(ann, "returns"),
				SourceRange: doc.RangeOf(pair),
			})
		}
	}
	// shorthand methods (`name() {}`) are method definitions, not pairs
	for i := 0; i < int(obj.ChildCount()); i++ {
		member := obj.Child(i)
		name := doc.TextOf(member.ChildByFieldName("name"))
		if member.Type() != nodeMethodDefinition || name == "" {
			continue
		}
		ann := commentAnnotation(member, doc)
		b.Methods = append(b.Methods, &model.Method{
			Name:        name,
			Description: ann.Desc(),
			Privacy:     InferPrivacy(name, ann, false),
			Params:      methodParams(member, doc, ann),
			ReturnType:  tagType(ann, "returns"),
			ReturnDesc:  tagDesc(ann, "returns"),
			SourceRange: doc.RangeOf(member),
		})
	}
}

// mergeBehaviors merges two same-name behavior declarations: the
// last-declared instance wins as the base; the longest description is kept;
// events are concatenated then deduplicated; demos are concatenated;
// properties and behavior references are unioned with self-references
// filtered out.
func mergeBehaviors(old, latest *model.Behavior) *model.Behavior {
	merged := latest.CloneClassLike().(*model.Behavior)
	if len(old.Description) > len(merged.Description) {
		merged.Description = old.Description
	}
	seenEvents := map[string]bool{}
	for _, e := range merged.Events {
		seenEvents[e.Name] = true
	}
	for _, e := range old.Events {
		if !seenEvents[e.Name] {
			merged.Events = append(merged.Events, e)
			seenEvents[e.Name] = true
		}
	}
	merged.Demos = append(append([]model.Demo(nil), old.Demos...), latest.Demos...)
	seenProps := map[string]bool{}
	for _, p := range merged.Properties {
		seenProps[p.Name] = true
	}
	for _, p := range old.Properties {
		if !seenProps[p.Name] {
			merged.Properties = append(merged.Properties, p)
			seenProps[p.Name] = true
		}
	}
	seenRefs := map[string]bool{merged.Name: true}
	var refs []*model.Reference
	for _, r := range append(append([]*model.Reference(nil), latest.Behaviors...), old.Behaviors...) {
		if !seenRefs[r.Identifier] {
			refs = append(refs, r)
			seenRefs[r.Identifier] = true
		}
	}
	merged.Behaviors = refs
	return merged
}
