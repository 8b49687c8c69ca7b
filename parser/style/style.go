// Package style parses CSS documents with tree-sitter.
package style

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/css"

	"github.com/viant/webcomp/model"
)

// Parser parses CSS documents. Safe for concurrent use.
type Parser struct{}

// NewParser creates a CSS parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses CSS content into a parsed document.
func (p *Parser) Parse(ctx context.Context, content []byte, url string, inline *model.InlineOffset) (*model.ParsedDocument, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(css.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, model.NewWarningError("parse-error",
			fmt.Sprintf("unable to parse %v as css: %v", url, err), model.ZeroRange(url))
	}
	hash, err := model.Hash(content)
	if err != nil {
		return nil, fmt.Errorf("failed to hash %v: %w", url, err)
	}
	return &model.ParsedDocument{
		Type:     "css",
		URL:      url,
		Contents: content,
		Tree:     tree,
		Hash:     hash,
		Inline:   inline,
	}, nil
}
