// Package script parses JavaScript documents with tree-sitter.
package script

import (
	"context"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/viant/webcomp/model"
)

// Parser parses JavaScript documents. Safe for concurrent use.
type Parser struct{}

// NewParser creates a JavaScript parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses JavaScript content into a parsed document.
func (p *Parser) Parse(ctx context.Context, content []byte, url string, inline *model.InlineOffset) (*model.ParsedDocument, error) {
	if !utf8.Valid(content) {
		return nil, model.NewWarningError("parse-error",
			fmt.Sprintf("unable to parse %v: invalid utf-8", url), model.ZeroRange(url))
	}
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, model.NewWarningError("parse-error",
			fmt.Sprintf("unable to parse %v as javascript: %v", url, err), model.ZeroRange(url))
	}
	hash, err := model.Hash(content)
	if err != nil {
		return nil, fmt.Errorf("failed to hash %v: %w", url, err)
	}
	return &model.ParsedDocument{
		Type:     "js",
		URL:      url,
		Contents: content,
		Tree:     tree,
		Hash:     hash,
		Inline:   inline,
	}, nil
}
