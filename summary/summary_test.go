package summary_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/viant/webcomp/analysis"
	"github.com/viant/webcomp/loader"
	"github.com/viant/webcomp/summary"
)

func analyzeFixture(t *testing.T, root string, files map[string]string, urls ...string) []*analysis.Document {
	t.Helper()
	fs := afs.New()
	for url, content := range files {
		require.NoError(t, fs.Upload(context.Background(), url, 0644, strings.NewReader(content)))
	}
	analyzer := analysis.NewAnalyzer(analysis.Options{Resolver: loader.NewPackageResolver(root)})
	snapshot, err := analyzer.Analyze(context.Background(), urls)
	require.NoError(t, err)
	var docs []*analysis.Document
	for _, url := range urls {
		doc, err := snapshot.GetDocument(url)
		require.NoError(t, err)
		docs = append(docs, doc)
	}
	return docs
}

func TestGenerate(t *testing.T) {
	root := "mem://localhost/sum"
	docs := analyzeFixture(t, root, map[string]string{
		root + "/app.js": `
/**
 * The app namespace.
 * @namespace
 */
MyApp = {};

/**
 * Greets.
 * @memberof MyApp
 * @param {string} who - greeting target
 * @returns {string} the greeting
 */
function greet(who) { return 'hi ' + who; }

/**
 * A fancy button.
 * @customElement fancy-button
 */
class FancyButton extends HTMLElement {
  static get properties() {
    return {
      label: {
        type: String,
        notify: true,
      },
    };
  }
}

/**
 * @mixinFunction
 * @memberof MyApp
 */
const ShinyMixin = (base) => class extends base {};

/** @polymerBehavior */
MyApp.PressBehavior = {
  properties: {
    pressed: { type: Boolean },
  },
};
`,
	}, root+"/app.js")

	out, err := summary.Generate(docs, root)
	require.NoError(t, err)
	assert.EqualValues(t, summary.SchemaVersion, out.SchemaVersion)

	require.Len(t, out.Elements, 1)
	el := out.Elements[0]
	assert.EqualValues(t, "fancy-button", el.TagName)
	assert.EqualValues(t, "FancyButton", el.Name)
	assert.EqualValues(t, "app.js", el.Path)
	require.Len(t, el.Attributes, 1)
	assert.EqualValues(t, "label", el.Attributes[0].Name)
	require.Len(t, el.Events, 1)
	assert.EqualValues(t, "label-changed", el.Events[0].Name)

	require.Len(t, out.Namespaces, 1)
	ns := out.Namespaces[0]
	assert.EqualValues(t, "MyApp", ns.Name)
	require.Len(t, ns.Functions, 1)
	wantFn := &summary.Function{
		Name:        "MyApp.greet",
		Description: "Greets.",
		Privacy:     "public",
		Params: []*summary.Parameter{
			{Name: "who", Type: "string", Description: "greeting target"},
		},
		Return: &summary.Return{Type: "string", Description: "the greeting"},
	}
	if diff := cmp.Diff(wantFn, ns.Functions[0], cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".SourceRange"
	}, cmp.Ignore())); diff != "" {
		t.Errorf("function mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, ns.Mixins, 1)
	assert.EqualValues(t, "MyApp.ShinyMixin", ns.Mixins[0].Name)

	require.NotNil(t, out.Metadata)
	require.NotNil(t, out.Metadata.Polymer)
	require.Len(t, out.Metadata.Polymer.Behaviors, 1)
	assert.EqualValues(t, "MyApp.PressBehavior", out.Metadata.Polymer.Behaviors[0].Name)
}

func TestGenerate_inheritedRangesRelativeToElementDir(t *testing.T) {
	root := "mem://localhost/rel"
	docs := analyzeFixture(t, root, map[string]string{
		root + "/ui/widget.js": `
/**
 * @customElement shared-widget
 */
class SharedWidget extends BaseWidget {}
customElements.define('shared-widget', SharedWidget);
`,
		root + "/base.js": `class BaseWidget { baseMethod() {} }`,
		root + "/ui/app.html": `
<script src="widget.js"></script>
<script src="../base.js"></script>
`,
	}, root+"/ui/app.html")

	out, err := summary.Generate(docs, root)
	require.NoError(t, err)
	require.Len(t, out.Elements, 1)
	el := out.Elements[0]
	assert.EqualValues(t, "ui/widget.js", el.Path)
	var inherited *summary.Method
	for _, m := range el.Methods {
		if m.InheritedFrom == "BaseWidget" {
			inherited = m
		}
	}
	require.NotNil(t, inherited, "baseMethod must be inherited")
	require.NotNil(t, inherited.SourceRange)
	assert.EqualValues(t, "../base.js", inherited.SourceRange.File,
		"inherited member ranges are relative to the element's directory")
}

func TestValidate_enumeratesViolations(t *testing.T) {
	bad := &summary.Summary{
		SchemaVersion: summary.SchemaVersion,
		Elements: []*summary.Element{
			{TagName: "bad-element", Privacy: "sneaky"},
			{TagName: "worse-element", Path: "el.js", Privacy: ""},
		},
	}
	err := summary.Validate(bad)
	require.Error(t, err)
	message := err.Error()
	assert.Contains(t, message, "Privacy")
	assert.Contains(t, message, "Path")
	assert.True(t, strings.Count(message, "\n") >= 2, "all violations are enumerated:\n%v", message)
}

func TestCompatibleVersion(t *testing.T) {
	assert.True(t, summary.CompatibleVersion("1.0.0"))
	assert.True(t, summary.CompatibleVersion("1.9.3"))
	assert.False(t, summary.CompatibleVersion("2.0.0"))
	assert.False(t, summary.CompatibleVersion("not-a-version"))
}
