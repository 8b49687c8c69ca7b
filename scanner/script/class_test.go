package script_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/webcomp/model"
	pscript "github.com/viant/webcomp/parser/script"
	"github.com/viant/webcomp/scanner/script"
)

func parseJS(t *testing.T, src string) *model.ParsedDocument {
	t.Helper()
	doc, err := pscript.NewParser().Parse(context.Background(), []byte(src), "test.js", nil)
	require.NoError(t, err)
	return doc
}

func TestClassScanner_bindingNames(t *testing.T) {
	doc := parseJS(t, `
class Declaration {}
var VarDeclaration = class {};
Assignment = class {};
Namespace.AlsoAssignment = class {};
Declared.AnotherAssignment = class {};
`)
	features, err := script.NewClassScanner().Scan(context.Background(), doc)
	require.NoError(t, err)
	var names []string
	for _, f := range features {
		cls, ok := f.(*model.Class)
		if assert.True(t, ok) {
			names = append(names, cls.Name)
		}
	}
	assert.EqualValues(t, []string{
		"Declaration",
		"VarDeclaration",
		"Assignment",
		"Namespace.AlsoAssignment",
		"Declared.AnotherAssignment",
	}, names)
}

func TestClassScanner_defineMakesElement(t *testing.T) {
	doc := parseJS(t, `
class VanillaElement extends HTMLElement {}
customElements.define('vanilla-element', VanillaElement);
`)
	features, err := script.NewClassScanner().Scan(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, features, 1)
	el, ok := features[0].(*model.Element)
	require.True(t, ok, "expected an element, got %T", features[0])
	assert.EqualValues(t, "vanilla-element", el.TagName)
	assert.EqualValues(t, "VanillaElement", el.Name)
	assert.Nil(t, el.SuperClass, "HTMLElement is not a superclass reference")
}

func TestClassScanner_stringLiteralTagWinsOverIsLookup(t *testing.T) {
	doc := parseJS(t, `
class BothElement extends HTMLElement {
  static get is() { return 'from-getter'; }
}
customElements.define('from-literal', BothElement);
`)
	features, err := script.NewClassScanner().Scan(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, features, 1)
	el := features[0].(*model.Element)
	assert.EqualValues(t, "from-literal", el.TagName)
}

func TestClassScanner_isLookupTag(t *testing.T) {
	doc := parseJS(t, `
class LookupElement extends HTMLElement {
  static get is() { return 'lookup-element'; }
}
customElements.define(LookupElement.is, LookupElement);
`)
	features, err := script.NewClassScanner().Scan(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, features, 1)
	el := features[0].(*model.Element)
	assert.EqualValues(t, "lookup-element", el.TagName)
}

func TestClassScanner_annotatedElement(t *testing.T) {
	doc := parseJS(t, `
/**
 * An annotated element.
 * @customElement annotated-element
 */
class AnnotatedElement extends HTMLElement {}
`)
	features, err := script.NewClassScanner().Scan(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, features, 1)
	el := features[0].(*model.Element)
	assert.EqualValues(t, "annotated-element", el.TagName)
	assert.EqualValues(t, "An annotated element.", el.Description)
}

func TestClassScanner_heritageChain(t *testing.T) {
	doc := parseJS(t, `
class Mixed extends MixinA(MixinB(Base)) {}
`)
	features, err := script.NewClassScanner().Scan(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, features, 1)
	cls := features[0].(*model.Class)
	require.NotNil(t, cls.SuperClass)
	assert.EqualValues(t, "Base", cls.SuperClass.Identifier)
	var mixins []string
	for _, m := range cls.Mixins {
		mixins = append(mixins, m.Identifier)
	}
	assert.EqualValues(t, []string{"MixinA", "MixinB"}, mixins)
}

func TestClassScanner_members(t *testing.T) {
	doc := parseJS(t, `
class WithMembers {
  /**
   * Greets someone.
   * @param {string} who - target of the greeting
   * @returns {string} the greeting
   */
  greet(who) { return 'hi ' + who; }
  _update() {}
  get size() { return 1; }
}
`)
	features, err := script.NewClassScanner().Scan(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, features, 1)
	cls := features[0].(*model.Class)
	require.Len(t, cls.Methods, 2)
	assert.EqualValues(t, "greet", cls.Methods[0].Name)
	assert.EqualValues(t, model.Public, cls.Methods[0].Privacy)
	require.Len(t, cls.Methods[0].Params, 1)
	assert.EqualValues(t, "who", cls.Methods[0].Params[0].Name)
	assert.EqualValues(t, "string", cls.Methods[0].Params[0].Type)
	assert.EqualValues(t, "string", cls.Methods[0].ReturnType)
	assert.EqualValues(t, "_update", cls.Methods[1].Name)
	assert.EqualValues(t, model.Protected, cls.Methods[1].Privacy)
	require.Len(t, cls.Properties, 1)
	assert.EqualValues(t, "size", cls.Properties[0].Name)
	assert.True(t, cls.Properties[0].ReadOnly)
}

// Annotated and plain declarations each scan to their specific kind exactly
// once, in scan order: elements from the class scanner first, mixins next.
func TestScanOrder_noDuplicateClassification(t *testing.T) {
	doc := parseJS(t, `
class PlainElement extends HTMLElement {}
customElements.define('plain-element', PlainElement);

/**
 * @customElement annotated-element
 */
class AnnotatedElement extends HTMLElement {}

/** @mixinFunction */
const PlainMixin = (base) => class extends base {};

/**
 * @mixinFunction
 */
function AnnotatedMixin(base) { return class extends base {}; }
`)
	var features []model.Feature
	for _, s := range []interface {
		Scan(context.Context, *model.ParsedDocument) ([]model.Feature, error)
	}{script.NewClassScanner(), script.NewMixinScanner()} {
		found, err := s.Scan(context.Background(), doc)
		require.NoError(t, err)
		features = append(features, found...)
	}
	require.Len(t, features, 4)
	assert.EqualValues(t, model.KindElement, features[0].Kind())
	assert.EqualValues(t, "PlainElement", features[0].(*model.Element).Name)
	assert.EqualValues(t, model.KindElement, features[1].Kind())
	assert.EqualValues(t, "AnnotatedElement", features[1].(*model.Element).Name)
	assert.EqualValues(t, model.KindMixin, features[2].Kind())
	assert.EqualValues(t, "PlainMixin", features[2].(*model.Mixin).Name)
	assert.EqualValues(t, model.KindMixin, features[3].Kind())
	assert.EqualValues(t, "AnnotatedMixin", features[3].(*model.Mixin).Name)
}
