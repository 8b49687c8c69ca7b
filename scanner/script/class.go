package script

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/jsdoc"
	"github.com/viant/webcomp/model"
)

// ClassScanner finds class declarations, class expressions bound to
// variables or assignment targets (including dotted names), and classes
// registered through customElements.define. A class registered as a custom
// element or annotated @customElement is emitted as an element; classes
// with the mixin shape are left to the mixin scanner.
type ClassScanner struct{}

// NewClassScanner creates a class scanner.
func NewClassScanner() *ClassScanner {
	return &ClassScanner{}
}

// define records one customElements.define call site.
type define struct {
	tag       string       // string-literal tag, when given
	isLookup  string       // class name to read the static is getter from
	className string       // identifier second argument
	inline    *sitter.Node // class-expression second argument
}

func (s *ClassScanner) Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error) {
	defines := collectDefines(doc)
	byClassName := map[string]*define{}
	byClassNode := map[*sitter.Node]*define{}
	for i := range defines {
		d := &defines[i]
		if d.className != "" {
			byClassName[d.className] = d
		}
		if d.inline != nil {
			byClassNode[d.inline] = d
		}
	}

	var features []model.Feature
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		var classNode *sitter.Node
		var name string
		switch n.Type() {
		case nodeClassDeclaration:
			classNode = n
			name = doc.TextOf(n.ChildByFieldName("name"))
		case nodeVariableDeclarator:
			value := n.ChildByFieldName("value")
			if value == nil || !isClassNode(value.Type()) {
				return true
			}
			classNode = value
			name = doc.TextOf(n.ChildByFieldName("name"))
		case nodeAssignment:
			right := n.ChildByFieldName("right")
			if right == nil || !isClassNode(right.Type()) {
				return true
			}
			classNode = right
			name = dottedName(n.ChildByFieldName("left"), doc)
		case nodeClassExpression:
			// inline class passed straight to customElements.define
			if d, ok := byClassNode[n]; ok {
				features = append(features, s.element(n, doc, doc.TextOf(n.ChildByFieldName("name")), d))
				return false
			}
			return true
		default:
			return true
		}
		if name == "" || isMixinClass(classNode, doc) {
			return true
		}
		ann := annotationOf(classNode, doc)
		fullName := qualifiedName(name, ann)
		d := byClassName[name]
		if d == nil && ann.HasTag("customElement") {
			d = &define{className: name}
			if t := ann.Tag("customElement"); t != nil {
				d.tag = t.Name
			}
		}
		if d != nil {
			features = append(features, s.element(classNode, doc, fullName, d))
		} else {
			features = append(features, s.class(classNode, doc, fullName))
		}
		return false
	})
	return features, nil
}

// class builds a plain class feature.
func (s *ClassScanner) class(classNode *sitter.Node, doc *model.ParsedDocument, name string) *model.Class {
	el := &model.Element{}
	s.fill(classNode, doc, name, el)
	return &el.Class
}

// element builds an element feature for a registered class.
func (s *ClassScanner) element(classNode *sitter.Node, doc *model.ParsedDocument, name string, d *define) *model.Element {
	el := &model.Element{}
	s.fill(classNode, doc, name, el)
	switch {
	case d.tag != "":
		// string literal wins over a Class.is lookup
		el.TagName = d.tag
	default:
		el.TagName = staticIsTag(classNode, doc)
	}
	if el.TagName == "" {
		el.Warnings = append(el.Warnings, &model.Warning{
			Code:        "unknown-tag-name",
			Message:     "unable to determine the element's tag name",
			Severity:    model.SeverityWarning,
			SourceRange: el.SourceRange,
		})
	}
	return el
}

// fill populates the class-level surfaces shared by classes and elements.
func (s *ClassScanner) fill(classNode *sitter.Node, doc *model.ParsedDocument, name string, el *model.Element) {
	ann := annotationOf(classNode, doc)
	el.Name = name
	el.Description = ann.Desc()
	el.Summary = tagDesc(ann, "summary")
	el.Privacy = InferPrivacy(lastSegment(name), ann, false)
	el.SourceRange = doc.RangeOf(classNode)
	el.SuperClass, el.Mixins = heritageChain(classNode, doc)
	if ann != nil {
		for _, title := range []string{"appliesMixin", "mixes"} {
			for _, mixin := range ann.TagNames(title) {
				el.Mixins = append(el.Mixins, &model.Reference{Identifier: mixin, SourceRange: el.SourceRange})
			}
		}
		if ext := ann.Tag("extends"); ext != nil && ext.Name != "" {
			el.SuperClass = &model.Reference{Identifier: ext.Name, SourceRange: el.SourceRange}
		}
		for _, t := range ann.Tags {
			if t.Title == "demo" && t.Name != "" {
				el.Demos = append(el.Demos, model.Demo{URL: t.Name, Description: t.Description})
			}
		}
	}
	scanClassBody(classNode, doc, el)
}

// heritageChain unwraps `extends MixinA(MixinB(Base))` into the mixin
// references and the terminal superclass reference.
func heritageChain(classNode *sitter.Node, doc *model.ParsedDocument) (*model.Reference, []*model.Reference) {
	expr := heritageExpr(classNode)
	var mixins []*model.Reference
	for expr != nil && expr.Type() == nodeCallExpression {
		if fn := dottedName(expr.ChildByFieldName("function"), doc); fn != "" {
			mixins = append(mixins, &model.Reference{Identifier: fn, SourceRange: doc.RangeOf(expr)})
		}
		args := expr.ChildByFieldName("arguments")
		expr = nil
		if args != nil {
			for i := 0; i < int(args.ChildCount()); i++ {
				if child := args.Child(i); child.IsNamed() {
					expr = child
					break
				}
			}
		}
	}
	var super *model.Reference
	if name := dottedName(expr, doc); name != "" && name != "HTMLElement" {
		super = &model.Reference{Identifier: name, SourceRange: doc.RangeOf(expr)}
	}
	return super, mixins
}

// collectDefines gathers customElements.define call sites.
func collectDefines(doc *model.ParsedDocument) []define {
	var defines []define
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		if n.Type() != nodeCallExpression {
			return true
		}
		if dottedName(n.ChildByFieldName("function"), doc) != "customElements.define" {
			return true
		}
		args := n.ChildByFieldName("arguments")
		if args == nil {
			return true
		}
		var named []*sitter.Node
		for i := 0; i < int(args.ChildCount()); i++ {
			if child := args.Child(i); child.IsNamed() {
				named = append(named, child)
			}
		}
		if len(named) < 2 {
			return true
		}
		var d define
		if tag, ok := stringLiteral(named[0], doc); ok {
			d.tag = tag
		} else if name := dottedName(named[0], doc); strings.HasSuffix(name, ".is") {
			d.isLookup = strings.TrimSuffix(name, ".is")
		}
		switch {
		case named[1].Type() == nodeIdentifier:
			d.className = doc.TextOf(named[1])
		case isClassNode(named[1].Type()):
			d.inline = named[1]
		}
		defines = append(defines, d)
		return true
	})
	return defines
}

// staticIsTag reads the tag from a class's `static get is()` getter.
func staticIsTag(classNode *sitter.Node, doc *model.ParsedDocument) string {
	body := classBody(classNode)
	if body == nil {
		return ""
	}
	for i := 0; i < int(body.ChildCount()); i++ {
		member := body.Child(i)
		if member.Type() != nodeMethodDefinition {
			continue
		}
		if doc.TextOf(member.ChildByFieldName("name")) != "is" {
			continue
		}
		if childOfType(member, "static") == nil || childOfType(member, "get") == nil {
			continue
		}
		if tag, ok := stringLiteral(returnedValue(member), doc); ok {
			return tag
		}
	}
	return ""
}

// qualifiedName prefixes a name with its @memberof namespace.
func qualifiedName(name string, ann *jsdoc.Annotation) string {
	if t := ann.Tag("memberof"); t != nil && t.Name != "" && !strings.Contains(name, ".") {
		return t.Name + "." + name
	}
	return name
}

// lastSegment returns the final segment of a dotted name.
func lastSegment(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
