package analysis_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/viant/webcomp/analysis"
	"github.com/viant/webcomp/loader"
	"github.com/viant/webcomp/model"
)

// upload seeds in-memory fixture documents.
func upload(t *testing.T, files map[string]string) {
	t.Helper()
	fs := afs.New()
	for url, content := range files {
		err := fs.Upload(context.Background(), url, 0644, strings.NewReader(content))
		require.NoError(t, err)
	}
}

func newAnalyzer(root string) *analysis.Analyzer {
	return analysis.NewAnalyzer(analysis.Options{
		Resolver: loader.NewPackageResolver(root),
	})
}

func elementByTag(t *testing.T, doc *analysis.Document, tag string) *model.Element {
	t.Helper()
	features := doc.GetFeatures(analysis.Query{Kind: model.KindElement, ID: tag, Imported: true})
	require.Len(t, features, 1, "expected exactly one element %v", tag)
	el, ok := features[0].(*model.Element)
	require.True(t, ok)
	return el
}

func TestAnalyze_behaviorInheritance(t *testing.T) {
	root := "mem://localhost/e1"
	upload(t, map[string]string{
		root + "/simple-element.html": `
<link rel="import" href="behaviors.html">
<dom-module id="simple-element">
  <template><slot name="stuff"></slot></template>
</dom-module>
<script>
Polymer({
  is: 'simple-element',
  behaviors: [MyNamespace.SimpleBehavior],
  properties: {
    localProperty: {
      type: Boolean,
      value: true,
    },
    _protectedProperty: {
      type: String,
      value: "do cool stuff with me!",
    },
    __privateProperty: {
      type: String,
    },
  },
});
</script>
`,
		root + "/behaviors.html": `
<script>
/** @polymerBehavior */
MyNamespace.SubBehavior = {
  properties: {
    deeplyInheritedProperty: {
      type: Array,
      value: [],
      notify: true,
    },
  },
};

/** @polymerBehavior */
MyNamespace.SimpleBehavior = {
  behaviors: [MyNamespace.SubBehavior],
  properties: {
    inheritPlease: {
      type: String,
    },
  },
};
</script>
`,
	})
	analyzer := newAnalyzer(root)
	snapshot, err := analyzer.Analyze(context.Background(), []string{root + "/simple-element.html"})
	require.NoError(t, err)
	doc, err := snapshot.GetDocument(root + "/simple-element.html")
	require.NoError(t, err)
	el := elementByTag(t, doc, "simple-element")

	props := map[string]*model.Property{}
	for _, p := range el.Properties {
		props[p.Name] = p
	}
	require.Contains(t, props, "localProperty")
	assert.EqualValues(t, "", props["localProperty"].InheritedFrom)
	assert.EqualValues(t, "true", props["localProperty"].Default)
	require.Contains(t, props, "_protectedProperty")
	assert.EqualValues(t, model.Protected, props["_protectedProperty"].Privacy)
	require.Contains(t, props, "__privateProperty")
	assert.EqualValues(t, model.Private, props["__privateProperty"].Privacy)
	require.Contains(t, props, "inheritPlease")
	assert.EqualValues(t, "MyNamespace.SimpleBehavior", props["inheritPlease"].InheritedFrom)
	require.Contains(t, props, "deeplyInheritedProperty")
	assert.EqualValues(t, "MyNamespace.SubBehavior", props["deeplyInheritedProperty"].InheritedFrom)

	attrs := map[string]*model.Attribute{}
	for _, a := range el.Attributes {
		attrs[a.Name] = a
	}
	assert.Contains(t, attrs, "local-property")
	assert.Contains(t, attrs, "inherit-please")
	assert.Contains(t, attrs, "deeply-inherited-property")
	assert.NotContains(t, attrs, "_protected-property")

	events := map[string]bool{}
	for _, e := range el.Events {
		events[e.Name] = true
	}
	assert.Contains(t, events, "deeply-inherited-property-changed")

	slots := map[string]bool{}
	for _, s := range el.Slots {
		slots[s.Name] = true
	}
	assert.Contains(t, slots, "stuff")
}

func TestAnalyze_superclassMethodInheritance(t *testing.T) {
	root := "mem://localhost/e3"
	upload(t, map[string]string{
		root + "/classes.js": `
class Base {
  baseMethod() {}
  overriddenMethod() {}
}

class Subclass extends Base {
  overriddenMethod() {}
  subMethod() {}
}
`,
	})
	analyzer := newAnalyzer(root)
	snapshot, err := analyzer.Analyze(context.Background(), []string{root + "/classes.js"})
	require.NoError(t, err)
	doc, err := snapshot.GetDocument(root + "/classes.js")
	require.NoError(t, err)
	features := doc.GetFeatures(analysis.Query{Kind: model.KindClass, ID: "Subclass"})
	require.Len(t, features, 1)
	sub := features[0].(*model.Class)

	methods := map[string]string{}
	for _, m := range sub.Methods {
		methods[m.Name] = m.InheritedFrom
	}
	assert.EqualValues(t, map[string]string{
		"overriddenMethod": "",
		"subMethod":        "",
		"baseMethod":       "Base",
	}, methods)
}

// Repeated access within one snapshot returns the same document reference.
func TestGetDocument_memoized(t *testing.T) {
	root := "mem://localhost/memo"
	upload(t, map[string]string{root + "/a.js": "class A {}\n"})
	analyzer := newAnalyzer(root)
	snapshot, err := analyzer.Analyze(context.Background(), []string{root + "/a.js"})
	require.NoError(t, err)
	first, err := snapshot.GetDocument(root + "/a.js")
	require.NoError(t, err)
	second, err := snapshot.GetDocument(root + "/a.js")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestGetDocument_notAnalyzed(t *testing.T) {
	root := "mem://localhost/unknown"
	analyzer := newAnalyzer(root)
	_, err := analyzer.Current().GetDocument(root + "/never.html")
	require.Error(t, err)
	warning := model.AsWarning(err, root+"/never.html")
	assert.EqualValues(t, "unable-to-analyze", warning.Code)
	assert.EqualValues(t, warning.SourceRange.Start, warning.SourceRange.End)
}

// Invalidation is the reverse transitive closure: documents importing a
// changed file are rebuilt, unrelated documents keep their identity.
func TestFilesChanged_invalidatesImporters(t *testing.T) {
	root := "mem://localhost/inv"
	upload(t, map[string]string{
		root + "/a.html": `<link rel="import" href="b.html">`,
		root + "/b.html": `<script>class B {}</script>`,
		root + "/c.html": `<script>class C {}</script>`,
	})
	urls := []string{root + "/a.html", root + "/c.html"}
	analyzer := newAnalyzer(root)
	snapshot, err := analyzer.Analyze(context.Background(), urls)
	require.NoError(t, err)
	beforeA, err := snapshot.GetDocument(root + "/a.html")
	require.NoError(t, err)
	beforeC, err := snapshot.GetDocument(root + "/c.html")
	require.NoError(t, err)

	analyzer.FilesChanged([]string{root + "/b.html"})
	snapshot, err = analyzer.Analyze(context.Background(), urls)
	require.NoError(t, err)
	afterA, err := snapshot.GetDocument(root + "/a.html")
	require.NoError(t, err)
	afterC, err := snapshot.GetDocument(root + "/c.html")
	require.NoError(t, err)

	assert.NotSame(t, beforeA, afterA, "a imports b and must be rebuilt")
	assert.Same(t, beforeC, afterC, "c does not import b and must survive")
}

// An empty invalidation is a no-op fork: every document keeps its identity.
func TestFilesChanged_emptySetKeepsEverything(t *testing.T) {
	root := "mem://localhost/noop"
	upload(t, map[string]string{root + "/a.js": "class A {}\n"})
	analyzer := newAnalyzer(root)
	snapshot, err := analyzer.Analyze(context.Background(), []string{root + "/a.js"})
	require.NoError(t, err)
	before, err := snapshot.GetDocument(root + "/a.js")
	require.NoError(t, err)
	fork := analyzer.FilesChanged(nil)
	after, err := fork.GetDocument(root + "/a.js")
	require.NoError(t, err)
	assert.Same(t, before, after)
}

// Cyclic imports scan to completion and neither side's import features
// carry warnings.
func TestAnalyze_cyclicImports(t *testing.T) {
	root := "mem://localhost/cycle"
	upload(t, map[string]string{
		root + "/a.html": `<link rel="import" href="b.html"><script>class A {}</script>`,
		root + "/b.html": `<link rel="import" href="a.html"><script>class B {}</script>`,
	})
	analyzer := newAnalyzer(root)
	snapshot, err := analyzer.Analyze(context.Background(), []string{root + "/a.html"})
	require.NoError(t, err)
	for _, url := range []string{root + "/a.html", root + "/b.html"} {
		doc, err := snapshot.GetDocument(url)
		require.NoError(t, err, url)
		for _, f := range doc.Features() {
			if imp, ok := f.(*model.Import); ok {
				assert.Empty(t, imp.Warnings, "import of %v in %v", imp.URL, url)
			}
		}
	}
	// features of b are visible from a through the cycle
	docA, err := snapshot.GetDocument(root + "/a.html")
	require.NoError(t, err)
	found := docA.GetFeatures(analysis.Query{Kind: model.KindClass, ID: "B", Imported: true})
	assert.Len(t, found, 1)
}

// A failing import surfaces as a warning on the import feature, never as
// importer failure.
func TestAnalyze_brokenImport(t *testing.T) {
	root := "mem://localhost/broken"
	upload(t, map[string]string{
		root + "/a.html": `<link rel="import" href="missing.html"><script>class A {}</script>`,
	})
	analyzer := newAnalyzer(root)
	snapshot, err := analyzer.Analyze(context.Background(), []string{root + "/a.html"})
	require.NoError(t, err)
	doc, err := snapshot.GetDocument(root + "/a.html")
	require.NoError(t, err)
	var imports []*model.Import
	for _, f := range doc.Features() {
		if imp, ok := f.(*model.Import); ok {
			imports = append(imports, imp)
		}
	}
	require.Len(t, imports, 1)
	require.NotEmpty(t, imports[0].Warnings)
	assert.EqualValues(t, "unable-to-load", imports[0].Warnings[0].Code)
}

// A root parse failure lands in the failed table and surfaces from
// GetDocument as the stored warning.
func TestAnalyze_rootParseFailure(t *testing.T) {
	root := "mem://localhost/badjson"
	upload(t, map[string]string{root + "/bad.json": "{not json"})
	analyzer := newAnalyzer(root)
	snapshot, err := analyzer.Analyze(context.Background(), []string{root + "/bad.json"})
	require.NoError(t, err)
	_, err = snapshot.GetDocument(root + "/bad.json")
	require.Error(t, err)
	warning := model.AsWarning(err, root+"/bad.json")
	assert.EqualValues(t, "parse-error", warning.Code)
}

// Cancelling one analysis rejects it with the cancellation marker while a
// concurrent analysis on the same analyzer resolves normally.
func TestAnalyze_cancellationIsolation(t *testing.T) {
	root := "mem://localhost/cancel"
	upload(t, map[string]string{
		root + "/vanilla-elements.js": `
class VanillaElement extends HTMLElement {}
customElements.define('vanilla-element', VanillaElement);
`,
	})
	analyzer := newAnalyzer(root)
	url := root + "/vanilla-elements.js"

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	type result struct {
		snapshot *analysis.Context
		err      error
	}
	results := make(chan result, 2)
	go func() {
		snapshot, err := analyzer.Analyze(cancelled, []string{url})
		results <- result{snapshot, err}
	}()
	go func() {
		snapshot, err := analyzer.Analyze(context.Background(), []string{url})
		results <- result{snapshot, err}
	}()
	var failures, successes int
	for i := 0; i < 2; i++ {
		r := <-results
		if r.err != nil {
			failures++
			assert.True(t, errors.Is(r.err, context.Canceled), "cancellation must be recognizable, got %v", r.err)
			continue
		}
		successes++
		doc, err := r.snapshot.GetDocument(url)
		require.NoError(t, err)
		assert.NotNil(t, doc)
	}
	assert.EqualValues(t, 1, failures)
	assert.EqualValues(t, 1, successes)
}

// Lazy edges behave as if the declaring document had imported them.
func TestAnalyze_lazyEdges(t *testing.T) {
	root := "mem://localhost/lazy"
	upload(t, map[string]string{
		root + "/app.html":   `<script>class App {}</script>`,
		root + "/extra.html": `<script>class Extra {}</script>`,
	})
	analyzer := analysis.NewAnalyzer(analysis.Options{
		Resolver: loader.NewPackageResolver(root),
		LazyEdges: map[string][]string{
			root + "/app.html": {"extra.html"},
		},
	})
	snapshot, err := analyzer.Analyze(context.Background(), []string{root + "/app.html"})
	require.NoError(t, err)
	_, err = snapshot.GetDocument(root + "/extra.html")
	assert.NoError(t, err, "lazy edge targets are scanned with their importer")
}
