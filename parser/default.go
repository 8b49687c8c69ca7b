package parser

import (
	"github.com/viant/webcomp/parser/data"
	"github.com/viant/webcomp/parser/markup"
	"github.com/viant/webcomp/parser/script"
	"github.com/viant/webcomp/parser/style"
)

// Default returns a registry with the standard four parsers registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register("html", []string{".html", ".htm"}, markup.NewParser())
	r.Register("js", []string{".js", ".mjs"}, script.NewParser())
	r.Register("css", []string{".css"}, style.NewParser())
	r.Register("json", []string{".json"}, data.NewParser())
	return r
}
