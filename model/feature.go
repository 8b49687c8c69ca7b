package model

// Kind identifies the variant of a feature.
type Kind string

const (
	KindImport           Kind = "import"
	KindInlineDocument   Kind = "inline-document"
	KindClass            Kind = "class"
	KindElement          Kind = "element"
	KindMixin            Kind = "element-mixin"
	KindBehavior         Kind = "behavior"
	KindNamespace        Kind = "namespace"
	KindFunction         Kind = "function"
	KindElementReference Kind = "element-reference"
	KindDomModule        Kind = "dom-module"
	KindSlot             Kind = "slot"
)

// Feature is a declaration or usage discovered by a scanner. Scanned
// features are lifted into resolved features by the analysis context;
// class-like variants gain flattened member lists at that point.
type Feature interface {
	Kind() Kind
	// Identifiers returns the names this feature can be looked up by.
	Identifiers() []string
	Range() *SourceRange
	FeatureWarnings() []*Warning
}

// Reference is a by-name pointer at another feature, recorded where the
// reference appears in source.
type Reference struct {
	Identifier  string
	SourceRange *SourceRange
}

// Import records a dependency edge from a document to the URL it imports.
type Import struct {
	// URL is the canonical resolved target; empty when the specifier could
	// not be resolved (bare module specifiers, unknown schemes).
	URL          string
	OriginalHref string
	ImportType   string // html-import, html-script, html-style, js-import
	Lazy         bool
	SourceRange  *SourceRange
	Warnings     []*Warning
}

func (i *Import) Kind() Kind                  { return KindImport }
func (i *Import) Identifiers() []string       { return []string{i.URL} }
func (i *Import) Range() *SourceRange         { return i.SourceRange }
func (i *Import) FeatureWarnings() []*Warning { return i.Warnings }

// InlineDocument is a script or style block embedded in a markup document.
// The scanned sub-document is attached during the local scan.
type InlineDocument struct {
	Type        string // js or css
	Contents    []byte
	Offset      InlineOffset
	Scanned     *ScannedDocument
	SourceRange *SourceRange
	Warnings    []*Warning
}

func (d *InlineDocument) Kind() Kind                  { return KindInlineDocument }
func (d *InlineDocument) Identifiers() []string       { return nil }
func (d *InlineDocument) Range() *SourceRange         { return d.SourceRange }
func (d *InlineDocument) FeatureWarnings() []*Warning { return d.Warnings }

// AttributeUse is one attribute on an element reference, with the ranges
// needed to point tooling at the name and the full attribute.
type AttributeUse struct {
	Name        string
	Value       string
	SourceRange *SourceRange
	NameRange   *SourceRange
}

// ElementReference is a use of a custom element in markup.
type ElementReference struct {
	TagName     string
	Attributes  []*AttributeUse
	SourceRange *SourceRange
	Warnings    []*Warning
}

func (r *ElementReference) Kind() Kind                  { return KindElementReference }
func (r *ElementReference) Identifiers() []string       { return []string{r.TagName} }
func (r *ElementReference) Range() *SourceRange         { return r.SourceRange }
func (r *ElementReference) FeatureWarnings() []*Warning { return r.Warnings }

// DomModule is a markup template wrapper associating a template, and the
// slots it declares, with an element tag name.
type DomModule struct {
	ID          string
	Slots       []*Slot
	SourceRange *SourceRange
	Warnings    []*Warning
}

func (m *DomModule) Kind() Kind                  { return KindDomModule }
func (m *DomModule) Identifiers() []string       { return []string{m.ID} }
func (m *DomModule) Range() *SourceRange         { return m.SourceRange }
func (m *DomModule) FeatureWarnings() []*Warning { return m.Warnings }

// Slot is a named insertion point declared in a template.
type Slot struct {
	Name        string
	SourceRange *SourceRange
}

func (s *Slot) Kind() Kind                  { return KindSlot }
func (s *Slot) Identifiers() []string       { return []string{s.Name} }
func (s *Slot) Range() *SourceRange         { return s.SourceRange }
func (s *Slot) FeatureWarnings() []*Warning { return nil }

// Namespace is an annotated object literal grouping related declarations.
type Namespace struct {
	Name        string
	Description string
	Summary     string
	SourceRange *SourceRange
	Warnings    []*Warning
}

func (n *Namespace) Kind() Kind                  { return KindNamespace }
func (n *Namespace) Identifiers() []string       { return []string{n.Name} }
func (n *Namespace) Range() *SourceRange         { return n.SourceRange }
func (n *Namespace) FeatureWarnings() []*Warning { return n.Warnings }

// Function is a standalone function attached to a namespace.
type Function struct {
	Name        string
	Description string
	Summary     string
	Privacy     Privacy
	Params      []Parameter
	ReturnType  string
	ReturnDesc  string
	SourceRange *SourceRange
	Warnings    []*Warning
}

func (f *Function) Kind() Kind                  { return KindFunction }
func (f *Function) Identifiers() []string       { return []string{f.Name} }
func (f *Function) Range() *SourceRange         { return f.SourceRange }
func (f *Function) FeatureWarnings() []*Warning { return f.Warnings }
