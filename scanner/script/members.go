package script

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/jsdoc"
	"github.com/viant/webcomp/model"
)

// scanClassBody fills an element-like feature's members from a class body:
// methods, fields, getter properties, the framework's static properties
// block and vanilla observedAttributes.
func scanClassBody(classNode *sitter.Node, doc *model.ParsedDocument, el *model.Element) {
	body := classBody(classNode)
	if body == nil {
		return
	}
	for i := 0; i < int(body.ChildCount()); i++ {
		member := body.Child(i)
		switch member.Type() {
		case nodeMethodDefinition:
			scanMethodDefinition(member, doc, el)
		case nodeFieldDefinition:
			name := doc.TextOf(member.ChildByFieldName("property"))
			if name == "" {
				continue
			}
			ann := commentAnnotation(member, doc)
			prop := &model.Property{
				Name:        name,
				Description: ann.Desc(),
				Privacy:     InferPrivacy(name, ann, false),
				SourceRange: doc.RangeOf(member),
			}
			if value := member.ChildByFieldName("value"); value != nil {
				prop.Default = doc.TextOf(value)
				prop.Type = literalType(value)
			}
			el.Properties = append(el.Properties, prop)
		}
	}
}

func scanMethodDefinition(member *sitter.Node, doc *model.ParsedDocument, el *model.Element) {
	nameNode := member.ChildByFieldName("name")
	name := doc.TextOf(nameNode)
	if name == "" || name == "constructor" {
		return
	}
	static := childOfType(member, "static") != nil
	getter := childOfType(member, "get") != nil
	setter := childOfType(member, "set") != nil
	ann := commentAnnotation(member, doc)

	if static && getter {
		switch name {
		case "properties":
			attachPublished(el, publishedProperties(returnedValue(member), doc), doc)
			return
		case "observedAttributes":
			attachObserved(el, returnedValue(member), doc)
			return
		case "is":
			// tag name lookup handled by the class scanner
			return
		}
	}
	if setter {
		return
	}
	if getter {
		el.Properties = append(el.Properties, &model.Property{
			Name:        name,
			Description: ann.Desc(),
			Privacy:     InferPrivacy(name, ann, false),
			ReadOnly:    true,
			Type:        tagType(ann, "returns"),
			SourceRange: doc.RangeOf(member),
		})
		return
	}
	method := &model.Method{
		Name:        name,
		Description: ann.Desc(),
		Privacy:     InferPrivacy(name, ann, false),
		Static:      static,
		Params:      methodParams(member, doc, ann),
		ReturnType:  tagType(ann, "returns"),
		ReturnDesc:  tagDesc(ann, "returns"),
		SourceRange: doc.RangeOf(member),
	}
	el.Methods = append(el.Methods, method)
}

// methodParams merges the declared parameter list with @param docs.
func methodParams(fn *sitter.Node, doc *model.ParsedDocument, ann *jsdoc.Annotation) []model.Parameter {
	var params []model.Parameter
	for _, name := range paramNames(fn, doc) {
		p := model.Parameter{Name: name}
		if ann != nil {
			for _, t := range ann.Tags {
				if (t.Title == "param" || t.Title == "arg" || t.Title == "argument") && t.Name == name {
					p.Type = t.Type
					p.Description = t.Description
				}
			}
		}
		params = append(params, p)
	}
	return params
}

// returnedValue extracts the value returned from a method body, for static
// getter blocks like `static get properties() { return {...}; }`.
func returnedValue(method *sitter.Node) *sitter.Node {
	body := method.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)
		if child.Type() != nodeReturnStatement {
			continue
		}
		for j := 0; j < int(child.ChildCount()); j++ {
			if gc := child.Child(j); gc.IsNamed() {
				return gc
			}
		}
	}
	return nil
}

// publishedProperties parses a framework properties block into properties.
func publishedProperties(obj *sitter.Node, doc *model.ParsedDocument) []*model.Property {
	var props []*model.Property
	for _, pair := range objectPairs(obj) {
		name := pairKey(pair, doc)
		if name == "" {
			continue
		}
		ann := commentAnnotation(pair, doc)
		prop := &model.Property{
			Name:        name,
			Description: ann.Desc(),
			Privacy:     InferPrivacy(name, ann, false),
			Published:   true,
			SourceRange: doc.RangeOf(pair),
		}
		value := pair.ChildByFieldName("value")
		if value == nil {
			props = append(props, prop)
			continue
		}
		switch value.Type() {
		case nodeIdentifier:
			prop.Type = doc.TextOf(value)
		case nodeObject:
			if t := pairValueOf(value, doc, "type"); t != nil {
				prop.Type = doc.TextOf(t)
			}
			if d := pairValueOf(value, doc, "value"); d != nil {
				prop.Default = doc.TextOf(d)
			}
			prop.Notify = boolValue(pairValueOf(value, doc, "notify"))
			prop.ReadOnly = boolValue(pairValueOf(value, doc, "readOnly"))
			prop.Reflect = boolValue(pairValueOf(value, doc, "reflectToAttribute"))
		}
		props = append(props, prop)
	}
	return props
}

// attachPublished appends published properties to an element-like feature
// and derives the attribute and change-event surfaces from the public ones.
func attachPublished(el *model.Element, props []*model.Property, doc *model.ParsedDocument) {
	for _, prop := range props {
		el.Properties = append(el.Properties, prop)
		if prop.Privacy != model.Public {
			continue
		}
		attrName, ok := AttributeName(prop.Name)
		if !ok {
			prop.Warnings = append(prop.Warnings, &model.Warning{
				Code:        "invalid-attribute-name",
				Message:     fmt.Sprintf("property %v cannot be mapped to an attribute", prop.Name),
				Severity:    model.SeverityWarning,
				SourceRange: prop.SourceRange,
			})
			continue
		}
		el.Attributes = append(el.Attributes, &model.Attribute{
			Name:        attrName,
			Description: prop.Description,
			Type:        prop.Type,
			SourceRange: prop.SourceRange,
		})
		if prop.Notify {
			el.Events = append(el.Events, &model.Event{
				Name:        attrName + "-changed",
				Description: fmt.Sprintf("Fired when the `%v` property changes.", prop.Name),
				SourceRange: prop.SourceRange,
			})
		}
	}
}

// attachObserved adds attributes from a vanilla observedAttributes array.
func attachObserved(el *model.Element, value *sitter.Node, doc *model.ParsedDocument) {
	if value == nil || value.Type() != nodeArray {
		return
	}
	for i := 0; i < int(value.ChildCount()); i++ {
		child := value.Child(i)
		if name, ok := stringLiteral(child, doc); ok && name != "" {
			el.Attributes = append(el.Attributes, &model.Attribute{
				Name:        name,
				SourceRange: doc.RangeOf(child),
			})
		}
	}
}

// boolValue reports whether a node is the literal true.
func boolValue(node *sitter.Node) bool {
	return node != nil && node.Type() == nodeTrue
}

// literalType guesses a type name from a literal initializer.
func literalType(value *sitter.Node) string {
	switch value.Type() {
	case nodeString:
		return "string"
	case nodeNumber:
		return "number"
	case nodeTrue, nodeFalse:
		return "boolean"
	case nodeArray:
		return "Array"
	case nodeObject:
		return "Object"
	}
	return ""
}

// tagType returns the {Type} of the named tag, or "".
func tagType(ann *jsdoc.Annotation, title string) string {
	if t := ann.Tag(title); t != nil {
		return t.Type
	}
	return ""
}

// tagDesc returns the description of the named tag, or "".
func tagDesc(ann *jsdoc.Annotation, title string) string {
	if t := ann.Tag(title); t != nil {
		return t.Description
	}
	return ""
}
