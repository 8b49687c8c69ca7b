// Package script holds the scanners for JavaScript documents: imports,
// classes, elements, mixins, behaviors, namespaces and functions.
package script

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/jsdoc"
	"github.com/viant/webcomp/model"
)

// statementOf climbs to the statement-level ancestor of a node: the child
// of the program, a statement block, or an export statement wrapper.
func statementOf(node *sitter.Node) *sitter.Node {
	for n := node; n != nil; n = n.Parent() {
		parent := n.Parent()
		if parent == nil {
			return n
		}
		switch parent.Type() {
		case nodeProgram, nodeStatementBlock:
			return n
		case nodeExportStatement:
			if gp := parent.Parent(); gp != nil && gp.Type() == nodeProgram {
				return parent
			}
		}
	}
	return node
}

// annotationOf returns the parsed documentation comment attached to the
// statement containing node, or nil.
func annotationOf(node *sitter.Node, doc *model.ParsedDocument) *jsdoc.Annotation {
	stmt := statementOf(node)
	if stmt == nil {
		return nil
	}
	prev := stmt.PrevNamedSibling()
	if prev == nil || prev.Type() != nodeComment {
		return nil
	}
	text := doc.TextOf(prev)
	if !strings.HasPrefix(text, "/**") {
		return nil
	}
	return jsdoc.Parse(text)
}

// commentAnnotation parses a comment node directly preceding a class member.
func commentAnnotation(member *sitter.Node, doc *model.ParsedDocument) *jsdoc.Annotation {
	prev := member.PrevNamedSibling()
	if prev == nil || prev.Type() != nodeComment {
		return nil
	}
	text := doc.TextOf(prev)
	if !strings.HasPrefix(text, "/**") {
		return nil
	}
	return jsdoc.Parse(text)
}

// dottedName flattens an identifier or member-expression chain like A.B.C
// into its source text, or returns "" when the expression is not a plain
// dotted name.
func dottedName(node *sitter.Node, doc *model.ParsedDocument) string {
	if node == nil {
		return ""
	}
	switch node.Type() {
	case nodeIdentifier, nodePropertyIdentifier:
		return doc.TextOf(node)
	case nodeMemberExpression:
		object := dottedName(node.ChildByFieldName("object"), doc)
		property := dottedName(node.ChildByFieldName("property"), doc)
		if object == "" || property == "" {
			return ""
		}
		return object + "." + property
	}
	return ""
}

// stringLiteral unquotes a string node.
func stringLiteral(node *sitter.Node, doc *model.ParsedDocument) (string, bool) {
	if node == nil || node.Type() != nodeString {
		return "", false
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child.Type() == nodeStringFragment {
			return doc.TextOf(child), true
		}
	}
	// empty string literal has no fragment child
	text := doc.TextOf(node)
	if len(text) >= 2 {
		return text[1 : len(text)-1], true
	}
	return "", true
}

// childOfType returns the first child with the given kind, or nil.
func childOfType(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child.Type() == kind {
			return child
		}
	}
	return nil
}

// heritageExpr returns the expression a class extends, or nil.
func heritageExpr(classNode *sitter.Node) *sitter.Node {
	heritage := childOfType(classNode, nodeClassHeritage)
	if heritage == nil {
		return nil
	}
	for i := 0; i < int(heritage.ChildCount()); i++ {
		if child := heritage.Child(i); child.IsNamed() {
			return child
		}
	}
	return nil
}

// classBody returns a class node's body.
func classBody(classNode *sitter.Node) *sitter.Node {
	if body := classNode.ChildByFieldName("body"); body != nil {
		return body
	}
	return childOfType(classNode, nodeClassBody)
}

// objectPairs returns the pair children of an object literal in order.
func objectPairs(obj *sitter.Node) []*sitter.Node {
	if obj == nil || obj.Type() != nodeObject {
		return nil
	}
	var pairs []*sitter.Node
	for i := 0; i < int(obj.ChildCount()); i++ {
		if child := obj.Child(i); child.Type() == nodePair {
			pairs = append(pairs, child)
		}
	}
	return pairs
}

// pairKey returns the property name of an object pair.
func pairKey(pair *sitter.Node, doc *model.ParsedDocument) string {
	key := pair.ChildByFieldName("key")
	if key == nil {
		return ""
	}
	if s, ok := stringLiteral(key, doc); ok {
		return s
	}
	return doc.TextOf(key)
}

// pairValueOf returns the value of the named pair in an object literal.
func pairValueOf(obj *sitter.Node, doc *model.ParsedDocument, name string) *sitter.Node {
	for _, pair := range objectPairs(obj) {
		if pairKey(pair, doc) == name {
			return pair.ChildByFieldName("value")
		}
	}
	return nil
}

// enclosingFunction returns the nearest function-like ancestor, or nil.
func enclosingFunction(node *sitter.Node) *sitter.Node {
	for n := node.Parent(); n != nil; n = n.Parent() {
		if isFunctionNode(n.Type()) {
			return n
		}
	}
	return nil
}

// paramNames returns a function's formal parameter names. A bare-identifier
// arrow parameter is returned as a single name.
func paramNames(fn *sitter.Node, doc *model.ParsedDocument) []string {
	if fn == nil {
		return nil
	}
	if params := childOfType(fn, nodeFormalParameters); params != nil {
		var names []string
		for i := 0; i < int(params.ChildCount()); i++ {
			if child := params.Child(i); child.Type() == nodeIdentifier {
				names = append(names, doc.TextOf(child))
			}
		}
		return names
	}
	if fn.Type() == nodeArrowFunction {
		if param := fn.ChildByFieldName("parameter"); param != nil && param.Type() == nodeIdentifier {
			return []string{doc.TextOf(param)}
		}
		if param := childOfType(fn, nodeIdentifier); param != nil {
			return []string{doc.TextOf(param)}
		}
	}
	return nil
}

// isMixinClass reports whether a class node has the mixin shape: it extends
// a parameter of its enclosing function.
func isMixinClass(classNode *sitter.Node, doc *model.ParsedDocument) bool {
	heritage := heritageExpr(classNode)
	if heritage == nil || heritage.Type() != nodeIdentifier {
		return false
	}
	super := doc.TextOf(heritage)
	fn := enclosingFunction(classNode)
	if fn == nil {
		return false
	}
	for _, name := range paramNames(fn, doc) {
		if name == super {
			return true
		}
	}
	return false
}

// mixinClassOf finds the class node produced by a mixin function: an arrow
// body class, or a class returned from (or declared in) the function body.
func mixinClassOf(fn *sitter.Node, doc *model.ParsedDocument) *sitter.Node {
	if fn == nil {
		return nil
	}
	body := fn.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	if isClassNode(body.Type()) {
		return body
	}
	if body.Type() != nodeStatementBlock {
		return nil
	}
	var found *sitter.Node
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)
		switch child.Type() {
		case nodeClassDeclaration:
			if found == nil {
				found = child
			}
		case nodeReturnStatement:
			for j := 0; j < int(child.ChildCount()); j++ {
				if gc := child.Child(j); isClassNode(gc.Type()) {
					return gc
				}
			}
		}
	}
	return found
}

// firstArgFunction returns the first function-like argument of a call, used
// to unwrap helper-wrapped mixin declarations.
func firstArgFunction(call *sitter.Node) *sitter.Node {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		args = childOfType(call, nodeArguments)
	}
	if args == nil {
		return nil
	}
	for i := 0; i < int(args.ChildCount()); i++ {
		if child := args.Child(i); isFunctionNode(child.Type()) {
			return child
		}
	}
	return nil
}
