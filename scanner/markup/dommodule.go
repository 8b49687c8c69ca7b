package markup

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/webcomp/model"
)

// DomModuleScanner recognizes <dom-module id> template wrappers and the
// slots their templates declare. The resolver attaches the slots to the
// element registered under the module's id.
type DomModuleScanner struct{}

// NewDomModuleScanner creates a dom-module scanner.
func NewDomModuleScanner() *DomModuleScanner {
	return &DomModuleScanner{}
}

func (s *DomModuleScanner) Scan(ctx context.Context, doc *model.ParsedDocument) ([]model.Feature, error) {
	var features []model.Feature
	model.Walk(doc.Root(), func(n *sitter.Node) bool {
		if n.Type() != nodeElement || tagName(n, doc) != "dom-module" {
			return true
		}
		module := &model.DomModule{SourceRange: doc.RangeOf(n)}
		if id := attribute(n, doc, "id"); id != nil {
			module.ID = id.value
		} else {
			module.Warnings = append(module.Warnings, &model.Warning{
				Code:        "dom-module-missing-id",
				Message:     "dom-module has no id attribute",
				Severity:    model.SeverityWarning,
				SourceRange: doc.RangeOf(n),
			})
		}
		module.Slots = scanSlots(n, doc)
		features = append(features, module)
		return false
	})
	return features, nil
}

func scanSlots(root *sitter.Node, doc *model.ParsedDocument) []*model.Slot {
	var slots []*model.Slot
	model.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != nodeElement || tagName(n, doc) != "slot" {
			return true
		}
		slot := &model.Slot{SourceRange: doc.RangeOf(n)}
		if name := attribute(n, doc, "name"); name != nil {
			slot.Name = name.value
		}
		slots = append(slots, slot)
		return true
	})
	return slots
}
