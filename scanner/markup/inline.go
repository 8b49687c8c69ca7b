package markup

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/model"
)

// InlineDocumentScanner extracts script and style blocks as inline
// sub-documents. The recorded offset lets downstream source ranges map back
// to the containing file.
type InlineDocumentScanner struct{}

// NewInlineDocumentScanner creates an inline-document scanner.
func NewInlineDocumentScanner() *InlineDocumentScanner {
	return &InlineDocumentScanner{}
}

func (s *InlineDocumentScanner) Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error) {
	var features []model.Feature
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		var docType string
		switch n.Type() {
		case nodeScriptElement:
			// external scripts are imports, not inline documents
			if attribute(n, doc, "src") != nil {
				return true
			}
			docType = "js"
		case nodeStyleElement:
			docType = "css"
		default:
			return true
		}
		content := rawText(n)
		if content == nil {
			return true
		}
		inline := &model.InlineDocument{
			Type:     docType,
			Contents: []byte(doc.TextOf(content)),
			Offset: model.InlineOffset{
				Line:     int(content.StartPoint().Row),
				Col:      int(content.StartPoint().Column),
				Filename: doc.URL,
			},
			SourceRange: doc.RangeOf(n),
		}
		features = append(features, inline)
		return true
	})
	return features, nil
}
