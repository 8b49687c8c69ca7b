// Package markup holds the scanners for HTML documents: imports, inline
// script and style blocks, dom-module templates, and custom element usage.
package markup

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/model"
)

// attr is one attribute occurrence on a start tag.
type attr struct {
	name      string
	value     string
	node      *sitter.Node
	nameNode  *sitter.Node
	valueNode *sitter.Node
}

// startTag returns the start or self-closing tag node of an element.
func startTag(el *sitter.Node) *sitter.Node {
	for i := 0; i < int(el.ChildCount()); i++ {
		child := el.Child(i)
		if child.Type() == nodeStartTag || child.Type() == nodeSelfClosing {
			return child
		}
	}
	return nil
}

// tagName returns the element's tag name, lower-cased.
func tagName(el *sitter.Node, doc *model.ParsedDocument) string {
	tag := startTag(el)
	if tag == nil {
		return ""
	}
	for i := 0; i < int(tag.ChildCount()); i++ {
		child := tag.Child(i)
		if child.Type() == nodeTagName {
			return strings.ToLower(doc.TextOf(child))
		}
	}
	return ""
}

// attributes collects the attributes of an element's start tag in order.
func attributes(el *sitter.Node, doc *model.ParsedDocument) []attr {
	tag := startTag(el)
	if tag == nil {
		return nil
	}
	var out []attr
	for i := 0; i < int(tag.ChildCount()); i++ {
		child := tag.Child(i)
		if child.Type() != nodeAttribute {
			continue
		}
		a := attr{node: child}
		for j := 0; j < int(child.ChildCount()); j++ {
			gc := child.Child(j)
			switch gc.Type() {
			case nodeAttributeName:
				a.name = strings.ToLower(doc.TextOf(gc))
				a.nameNode = gc
			case nodeAttributeValue:
				a.value = doc.TextOf(gc)
				a.valueNode = gc
			case nodeQuotedValue:
				for k := 0; k < int(gc.ChildCount()); k++ {
					if ggc := gc.Child(k); ggc.Type() == nodeAttributeValue {
						a.value = doc.TextOf(ggc)
						a.valueNode = ggc
					}
				}
			}
		}
		if a.name != "" {
			out = append(out, a)
		}
	}
	return out
}

// attribute returns the named attribute, or nil.
func attribute(el *sitter.Node, doc *model.ParsedDocument, name string) *attr {
	for _, a := range attributes(el, doc) {
		if a.name == name {
			found := a
			return &found
		}
	}
	return nil
}

// rawText returns an element's raw_text child, or nil.
func rawText(el *sitter.Node) *sitter.Node {
	for i := 0; i < int(el.ChildCount()); i++ {
		if child := el.Child(i); child.Type() == nodeRawText {
			return child
		}
	}
	return nil
}
