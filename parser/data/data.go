// Package data parses structured-data (JSON) documents.
package data

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/webcomp/model"
)

// Parser parses JSON documents. Safe for concurrent use.
type Parser struct{}

// NewParser creates a JSON parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes JSON content into a parsed document.
func (p *Parser) Parse(ctx context.Context, content []byte, url string, inline *model.InlineOffset) (*model.ParsedDocument, error) {
	var value any
	if err := json.Unmarshal(content, &value); err != nil {
		return nil, model.NewWarningError("parse-error",
			fmt.Sprintf("unable to parse %v as json: %v", url, err), model.ZeroRange(url))
	}
	hash, err := model.Hash(content)
	if err != nil {
		return nil, fmt.Errorf("failed to hash %v: %w", url, err)
	}
	return &model.ParsedDocument{
		Type:     "json",
		URL:      url,
		Contents: content,
		Data:     value,
		Hash:     hash,
		Inline:   inline,
	}, nil
}
