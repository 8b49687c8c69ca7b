package summary

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/viant/webcomp/analysis"
	"github.com/viant/webcomp/loader"
	"github.com/viant/webcomp/model"
)

// Generate walks resolved documents in a stable order and produces the
// summary surface. Paths are rewritten relative to the package root;
// inherited member ranges are rewritten relative to the referring
// feature's directory. The result is schema-validated before returning.
func Generate(docs []*analysis.Document, root string) (*Summary, error) {
	docs = withImports(docs)
	g := &generator{root: root, namespaces: map[string]*Namespace{}}
	out := &Summary{SchemaVersion: SchemaVersion}
	for _, doc := range docs {
		for _, f := range doc.Features() {
			switch feature := f.(type) {
			case *model.Namespace:
				g.addNamespace(out, feature)
			}
		}
	}
	for _, doc := range docs {
		for _, f := range doc.Features() {
			switch feature := f.(type) {
			case *model.Element:
				out.Elements = append(out.Elements, g.element(feature))
			case *model.Mixin:
				g.addMixin(out, g.element(&feature.Element))
			case *model.Behavior:
				if out.Metadata == nil {
					out.Metadata = &Metadata{Polymer: &PolymerMetadata{}}
				}
				out.Metadata.Polymer.Behaviors = append(out.Metadata.Polymer.Behaviors, g.element(&feature.Element))
			case *model.Class:
				out.Classes = append(out.Classes, g.class(feature))
			case *model.Function:
				g.addFunction(out, g.function(feature))
			}
		}
	}
	sortSummary(out)
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Emit generates and marshals the summary.
func Emit(docs []*analysis.Document, root string) ([]byte, error) {
	out, err := Generate(docs, root)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(out, "", "  ")
}

// withImports expands the document set with its transitive imports, in
// traversal order; every feature is emitted from its defining document.
func withImports(docs []*analysis.Document) []*analysis.Document {
	var out []*analysis.Document
	seen := map[*analysis.Document]bool{}
	var visit func(*analysis.Document)
	visit = func(d *analysis.Document) {
		if seen[d] {
			return
		}
		seen[d] = true
		out = append(out, d)
		for _, imported := range d.Imports() {
			visit(imported)
		}
	}
	for _, d := range docs {
		visit(d)
	}
	return out
}

type generator struct {
	root       string
	namespaces map[string]*Namespace
}

// addNamespace inserts a namespace into the dotted-name tree.
func (g *generator) addNamespace(out *Summary, ns *model.Namespace) {
	if _, ok := g.namespaces[ns.Name]; ok {
		return
	}
	entry := &Namespace{
		Name:        ns.Name,
		Description: ns.Description,
		Summary:     ns.Summary,
		SourceRange: g.rangeOf(ns.SourceRange, ""),
	}
	g.namespaces[ns.Name] = entry
	if parent := g.owner(ns.Name); parent != nil {
		parent.Namespaces = append(parent.Namespaces, entry)
		return
	}
	out.Namespaces = append(out.Namespaces, entry)
}

// owner returns the namespace owning a dotted name, or nil.
func (g *generator) owner(name string) *Namespace {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return nil
	}
	return g.namespaces[name[:i]]
}

func (g *generator) addMixin(out *Summary, mixin *Element) {
	if parent := g.owner(mixin.Name); parent != nil {
		parent.Mixins = append(parent.Mixins, mixin)
		return
	}
	out.Mixins = append(out.Mixins, mixin)
}

func (g *generator) addFunction(out *Summary, fn *Function) {
	if parent := g.owner(fn.Name); parent != nil {
		parent.Functions = append(parent.Functions, fn)
		return
	}
	out.Functions = append(out.Functions, fn)
}

func (g *generator) element(el *model.Element) *Element {
	entry := &Element{
		Name:        el.Name,
		TagName:     el.TagName,
		Description: el.Description,
		Summary:     el.Summary,
		Privacy:     privacyOf(el.Privacy),
		Path:        g.path(el.SourceRange),
		Metadata:    el.Metadata,
		Properties:  []*Property{},
		Methods:     []*Method{},
		Attributes:  []*Attribute{},
		Events:      []*Event{},
		Slots:       []*Slot{},
		Demos:       []*Demo{},
		Styling:     &Styling{CSSVariables: []*CSSVariable{}, Selectors: []any{}},
		SourceRange: g.rangeOf(el.SourceRange, ""),
	}
	if el.SuperClass != nil {
		entry.Superclass = el.SuperClass.Identifier
	}
	for _, m := range el.Mixins {
		entry.Mixins = append(entry.Mixins, m.Identifier)
	}
	base := featureDir(el.SourceRange)
	for _, p := range el.Properties {
		entry.Properties = append(entry.Properties, g.property(p, base))
	}
	for _, m := range el.Methods {
		entry.Methods = append(entry.Methods, g.method(m, base))
	}
	for _, a := range el.Attributes {
		entry.Attributes = append(entry.Attributes, &Attribute{
			Name:          a.Name,
			Description:   a.Description,
			Type:          a.Type,
			InheritedFrom: a.InheritedFrom,
			SourceRange:   g.memberRange(a.SourceRange, a.InheritedFrom, base),
		})
	}
	for _, e := range el.Events {
		entry.Events = append(entry.Events, &Event{
			Name:          e.Name,
			Description:   e.Description,
			Type:          "CustomEvent",
			InheritedFrom: e.InheritedFrom,
			SourceRange:   g.memberRange(e.SourceRange, e.InheritedFrom, base),
		})
	}
	for _, s := range el.Slots {
		entry.Slots = append(entry.Slots, &Slot{Name: s.Name, SourceRange: g.rangeOf(s.SourceRange, "")})
	}
	for _, d := range el.Demos {
		entry.Demos = append(entry.Demos, &Demo{URL: d.URL, Description: d.Description})
	}
	return entry
}

func (g *generator) class(cls *model.Class) *Class {
	entry := &Class{
		Name:        cls.Name,
		Description: cls.Description,
		Summary:     cls.Summary,
		Privacy:     privacyOf(cls.Privacy),
		Path:        g.path(cls.SourceRange),
		Properties:  []*Property{},
		Methods:     []*Method{},
		Demos:       []*Demo{},
		SourceRange: g.rangeOf(cls.SourceRange, ""),
	}
	if cls.SuperClass != nil {
		entry.Superclass = cls.SuperClass.Identifier
	}
	for _, m := range cls.Mixins {
		entry.Mixins = append(entry.Mixins, m.Identifier)
	}
	base := featureDir(cls.SourceRange)
	for _, p := range cls.Properties {
		entry.Properties = append(entry.Properties, g.property(p, base))
	}
	for _, m := range cls.Methods {
		entry.Methods = append(entry.Methods, g.method(m, base))
	}
	for _, d := range cls.Demos {
		entry.Demos = append(entry.Demos, &Demo{URL: d.URL, Description: d.Description})
	}
	return entry
}

func (g *generator) function(fn *model.Function) *Function {
	entry := &Function{
		Name:        fn.Name,
		Description: fn.Description,
		Summary:     fn.Summary,
		Privacy:     privacyOf(fn.Privacy),
		Params:      []*Parameter{},
		SourceRange: g.rangeOf(fn.SourceRange, ""),
	}
	for _, p := range fn.Params {
		entry.Params = append(entry.Params, &Parameter{Name: p.Name, Type: p.Type, Description: p.Description})
	}
	if fn.ReturnType != "" || fn.ReturnDesc != "" {
		entry.Return = &Return{Type: fn.ReturnType, Description: fn.ReturnDesc}
	}
	return entry
}

func (g *generator) property(p *model.Property, base string) *Property {
	entry := &Property{
		Name:          p.Name,
		Type:          p.Type,
		Description:   p.Description,
		Privacy:       privacyOf(p.Privacy),
		Default:       p.Default,
		InheritedFrom: p.InheritedFrom,
		SourceRange:   g.memberRange(p.SourceRange, p.InheritedFrom, base),
	}
	if p.Published {
		meta := map[string]any{"published": true}
		if p.Notify {
			meta["notify"] = true
		}
		if p.ReadOnly {
			meta["readOnly"] = true
		}
		if p.Reflect {
			meta["reflectToAttribute"] = true
		}
		entry.Metadata = meta
	}
	return entry
}

func (g *generator) method(m *model.Method, base string) *Method {
	entry := &Method{
		Name:          m.Name,
		Description:   m.Description,
		Privacy:       privacyOf(m.Privacy),
		Params:        []*Parameter{},
		InheritedFrom: m.InheritedFrom,
		SourceRange:   g.memberRange(m.SourceRange, m.InheritedFrom, base),
	}
	for _, p := range m.Params {
		entry.Params = append(entry.Params, &Parameter{Name: p.Name, Type: p.Type, Description: p.Description})
	}
	if m.ReturnType != "" || m.ReturnDesc != "" {
		entry.Return = &Return{Type: m.ReturnType, Description: m.ReturnDesc}
	}
	return entry
}

// path returns a feature's file relative to the package root.
func (g *generator) path(r *model.SourceRange) string {
	if r == nil {
		return ""
	}
	return loader.Relative(g.root, r.File)
}

// rangeOf rewrites a range's file relative to base, defaulting to the
// package root.
func (g *generator) rangeOf(r *model.SourceRange, base string) *SourceRange {
	if r == nil {
		return nil
	}
	if base == "" {
		base = g.root
	}
	return &SourceRange{
		File:  loader.Relative(base, r.File),
		Start: Position{Line: r.Start.Line, Column: r.Start.Column},
		End:   Position{Line: r.End.Line, Column: r.End.Column},
	}
}

// memberRange rewrites a member's range: inherited members are made
// relative to the referring feature's directory, own members to the
// package root.
func (g *generator) memberRange(r *model.SourceRange, inheritedFrom, base string) *SourceRange {
	if inheritedFrom == "" || base == "" {
		return g.rangeOf(r, "")
	}
	return g.rangeOf(r, base)
}

// featureDir returns the directory of the feature's primary file.
func featureDir(r *model.SourceRange) string {
	if r == nil {
		return ""
	}
	return loader.Dir(r.File)
}

// sortSummary puts every section in a stable name order.
func sortSummary(out *Summary) {
	sort.SliceStable(out.Elements, func(i, j int) bool {
		return elementKey(out.Elements[i]) < elementKey(out.Elements[j])
	})
	sort.SliceStable(out.Mixins, func(i, j int) bool { return out.Mixins[i].Name < out.Mixins[j].Name })
	sort.SliceStable(out.Classes, func(i, j int) bool { return out.Classes[i].Name < out.Classes[j].Name })
	sort.SliceStable(out.Functions, func(i, j int) bool { return out.Functions[i].Name < out.Functions[j].Name })
	sort.SliceStable(out.Namespaces, func(i, j int) bool { return out.Namespaces[i].Name < out.Namespaces[j].Name })
	if out.Metadata != nil && out.Metadata.Polymer != nil {
		behaviors := out.Metadata.Polymer.Behaviors
		sort.SliceStable(behaviors, func(i, j int) bool { return behaviors[i].Name < behaviors[j].Name })
	}
}

func elementKey(el *Element) string {
	if el.TagName != "" {
		return el.TagName
	}
	return el.Name
}
