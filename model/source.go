package model

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// SourcePosition is a zero-based line/column position within a file.
type SourcePosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceRange identifies a span of text within a file.
type SourceRange struct {
	File  string         `json:"file"`
	Start SourcePosition `json:"start"`
	End   SourcePosition `json:"end"`
}

func (r *SourceRange) String() string {
	if r == nil {
		return "<no range>"
	}
	return fmt.Sprintf("%s:%d:%d", r.File, r.Start.Line+1, r.Start.Column+1)
}

// ZeroRange returns an empty range anchored at the start of a file.
func ZeroRange(file string) *SourceRange {
	return &SourceRange{File: file}
}

// InlineOffset locates an inline document within its containing file.
type InlineOffset struct {
	Line     int    // line of the inline content's first character
	Col      int    // column of the inline content's first character
	Filename string // containing file URL
}

// RangeOf converts a tree-sitter node span into a SourceRange, applying the
// inline offset when the node comes from an embedded document.
func RangeOf(node *sitter.Node, file string, inline *InlineOffset) *SourceRange {
	if node == nil {
		return ZeroRange(file)
	}
	start := SourcePosition{Line: int(node.StartPoint().Row), Column: int(node.StartPoint().Column)}
	end := SourcePosition{Line: int(node.EndPoint().Row), Column: int(node.EndPoint().Column)}
	if inline != nil {
		if start.Line == 0 {
			start.Column += inline.Col
		}
		if end.Line == 0 {
			end.Column += inline.Col
		}
		start.Line += inline.Line
		end.Line += inline.Line
		if inline.Filename != "" {
			file = inline.Filename
		}
	}
	return &SourceRange{File: file, Start: start, End: end}
}
