// Package markup parses HTML documents with tree-sitter.
package markup

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"

	"github.com/viant/webcomp/model"
)

// Parser parses HTML documents. Safe for concurrent use; each Parse call
// creates its own tree-sitter parser instance.
type Parser struct{}

// NewParser creates an HTML parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses HTML content into a parsed document.
func (p *Parser) Parse(ctx context.Context, content []byte, url string, inline *model.InlineOffset) (*model.ParsedDocument, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(html.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, model.NewWarningError("parse-error",
			fmt.Sprintf("unable to parse %v as html: %v", url, err), model.ZeroRange(url))
	}
	hash, err := model.Hash(content)
	if err != nil {
		return nil, fmt.Errorf("failed to hash %v: %w", url, err)
	}
	return &model.ParsedDocument{
		Type:     "html",
		URL:      url,
		Contents: content,
		Tree:     tree,
		Hash:     hash,
		Inline:   inline,
	}, nil
}
