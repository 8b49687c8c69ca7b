// Package summary walks a resolved analysis and emits the versioned JSON
// surface describing its elements, mixins, behaviors, classes, functions
// and namespaces. The surface is validated before it is marshalled.
package summary

import "github.com/viant/webcomp/model"

// SchemaVersion is the version stamped on emitted summaries. Consumers
// accept any 1.x.x surface.
const SchemaVersion = "1.0.0"

// Summary is the top-level emitted document.
type Summary struct {
	SchemaVersion string       `json:"schema_version" validate:"required"`
	Elements      []*Element   `json:"elements,omitempty" validate:"dive"`
	Mixins        []*Element   `json:"mixins,omitempty" validate:"dive"`
	Classes       []*Class     `json:"classes,omitempty" validate:"dive"`
	Functions     []*Function  `json:"functions,omitempty" validate:"dive"`
	Namespaces    []*Namespace `json:"namespaces,omitempty" validate:"dive"`
	Metadata      *Metadata    `json:"metadata,omitempty"`
}

// Metadata carries the framework-specific sections of the surface.
type Metadata struct {
	Polymer *PolymerMetadata `json:"polymer,omitempty"`
}

// PolymerMetadata records the framework's behavior declarations.
type PolymerMetadata struct {
	Behaviors []*Element `json:"behaviors,omitempty" validate:"dive"`
}

// SourceRange locates a feature in its file, relative to the package root
// or, for inherited members, to the referring element's directory.
type SourceRange struct {
	File  string   `json:"file" validate:"required"`
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Position is a zero-based line/column pair.
type Position struct {
	Line   int `json:"line" validate:"min=0"`
	Column int `json:"column" validate:"min=0"`
}

// Element describes an element, mixin or behavior entry.
type Element struct {
	Name        string         `json:"name,omitempty"`
	TagName     string         `json:"tagname,omitempty"`
	Description string         `json:"description"`
	Summary     string         `json:"summary"`
	Path        string         `json:"path" validate:"required"`
	Privacy     string         `json:"privacy" validate:"required,oneof=public protected private"`
	Superclass  string         `json:"superclass,omitempty"`
	Mixins      []string       `json:"mixins,omitempty"`
	Properties  []*Property    `json:"properties" validate:"dive"`
	Methods     []*Method      `json:"methods" validate:"dive"`
	Attributes  []*Attribute   `json:"attributes" validate:"dive"`
	Events      []*Event       `json:"events" validate:"dive"`
	Slots       []*Slot        `json:"slots"`
	Demos       []*Demo        `json:"demos"`
	Styling     *Styling       `json:"styling"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	SourceRange *SourceRange   `json:"sourceRange,omitempty"`
}

// Class describes a plain class entry.
type Class struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Summary     string       `json:"summary"`
	Path        string       `json:"path" validate:"required"`
	Privacy     string       `json:"privacy" validate:"required,oneof=public protected private"`
	Superclass  string       `json:"superclass,omitempty"`
	Mixins      []string     `json:"mixins,omitempty"`
	Properties  []*Property  `json:"properties" validate:"dive"`
	Methods     []*Method    `json:"methods" validate:"dive"`
	Demos       []*Demo      `json:"demos"`
	SourceRange *SourceRange `json:"sourceRange,omitempty"`
}

// Function describes a top-level namespace function.
type Function struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Summary     string       `json:"summary"`
	Privacy     string       `json:"privacy" validate:"required,oneof=public protected private"`
	Params      []*Parameter `json:"params"`
	Return      *Return      `json:"return,omitempty"`
	SourceRange *SourceRange `json:"sourceRange,omitempty"`
}

// Namespace groups the entries declared under one dotted name.
type Namespace struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Summary     string       `json:"summary"`
	Elements    []*Element   `json:"elements,omitempty" validate:"dive"`
	Mixins      []*Element   `json:"mixins,omitempty" validate:"dive"`
	Functions   []*Function  `json:"functions,omitempty" validate:"dive"`
	Namespaces  []*Namespace `json:"namespaces,omitempty" validate:"dive"`
	SourceRange *SourceRange `json:"sourceRange,omitempty"`
}

// Property describes a data member.
type Property struct {
	Name          string         `json:"name" validate:"required"`
	Type          string         `json:"type,omitempty"`
	Description   string         `json:"description"`
	Privacy       string         `json:"privacy" validate:"required,oneof=public protected private"`
	Default       string         `json:"defaultValue,omitempty"`
	InheritedFrom string         `json:"inheritedFrom,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	SourceRange   *SourceRange   `json:"sourceRange,omitempty"`
}

// Method describes a callable member.
type Method struct {
	Name          string       `json:"name" validate:"required"`
	Description   string       `json:"description"`
	Privacy       string       `json:"privacy" validate:"required,oneof=public protected private"`
	Params        []*Parameter `json:"params"`
	Return        *Return      `json:"return,omitempty"`
	InheritedFrom string       `json:"inheritedFrom,omitempty"`
	SourceRange   *SourceRange `json:"sourceRange,omitempty"`
}

// Parameter describes one parameter of a function or method.
type Parameter struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Return describes a function or method result.
type Return struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"desc,omitempty"`
}

// Attribute describes a markup attribute surfaced by an element.
type Attribute struct {
	Name          string       `json:"name" validate:"required"`
	Description   string       `json:"description"`
	Type          string       `json:"type,omitempty"`
	InheritedFrom string       `json:"inheritedFrom,omitempty"`
	SourceRange   *SourceRange `json:"sourceRange,omitempty"`
}

// Event describes an event fired by an element.
type Event struct {
	Name          string       `json:"name" validate:"required"`
	Description   string       `json:"description"`
	Type          string       `json:"type"`
	InheritedFrom string       `json:"inheritedFrom,omitempty"`
	SourceRange   *SourceRange `json:"sourceRange,omitempty"`
}

// Slot describes a template insertion point.
type Slot struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	SourceRange *SourceRange `json:"sourceRange,omitempty"`
}

// Demo points at a demo page.
type Demo struct {
	URL         string `json:"url" validate:"required"`
	Description string `json:"description"`
}

// Styling reserves the styling section of an element entry.
type Styling struct {
	CSSVariables []*CSSVariable `json:"cssVariables"`
	Selectors    []any          `json:"selectors"`
}

// CSSVariable describes a custom property an element honors.
type CSSVariable struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// privacyOf maps a model privacy onto the surface's string form.
func privacyOf(p model.Privacy) string {
	if p == "" {
		return string(model.Public)
	}
	return string(p)
}
