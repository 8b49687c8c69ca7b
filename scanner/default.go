package scanner

import (
	"github.com/viant/webcomp/loader"
	"github.com/viant/webcomp/scanner/markup"
	"github.com/viant/webcomp/scanner/script"
)

// Default returns a registry with the standard scanner sets registered per
// document type, in the order their features should appear.
func Default(resolver loader.Resolver) *Registry {
	r := NewRegistry()
	r.Register("html",
		markup.NewImportScanner(resolver),
		markup.NewInlineDocumentScanner(),
		markup.NewDomModuleScanner(),
		markup.NewElementReferenceScanner(),
	)
	r.Register("js",
		script.NewImportScanner(resolver),
		script.NewElementScanner(),
		script.NewClassScanner(),
		script.NewMixinScanner(),
		script.NewBehaviorScanner(),
		script.NewNamespaceScanner(),
		script.NewFunctionScanner(),
	)
	return r
}
