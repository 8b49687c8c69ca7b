package script_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/webcomp/model"
	"github.com/viant/webcomp/scanner/script"
)

func scanBehaviors(t *testing.T, src string) []*model.Behavior {
	t.Helper()
	doc := parseJS(t, src)
	features, err := script.NewBehaviorScanner().Scan(context.Background(), doc)
	require.NoError(t, err)
	var behaviors []*model.Behavior
	for _, f := range features {
		b, ok := f.(*model.Behavior)
		require.True(t, ok)
		behaviors = append(behaviors, b)
	}
	return behaviors
}

func TestBehaviorScanner_objectLiteral(t *testing.T) {
	behaviors := scanBehaviors(t, `
/**
 * Makes anything highlightable.
 * @polymerBehavior
 */
MyNamespace.HighlightBehavior = {
  properties: {
    isHighlighted: {
      type: Boolean,
      value: false,
      notify: true,
    },
  },
  /**
   * Toggles the highlight.
   */
  toggle() {},
};
`)
	require.Len(t, behaviors, 1)
	b := behaviors[0]
	assert.EqualValues(t, "MyNamespace.HighlightBehavior", b.Name)
	assert.EqualValues(t, "Makes anything highlightable.", b.Description)
	require.Len(t, b.Properties, 1)
	assert.EqualValues(t, "isHighlighted", b.Properties[0].Name)
	assert.True(t, b.Properties[0].Notify)
	require.Len(t, b.Attributes, 1)
	assert.EqualValues(t, "is-highlighted", b.Attributes[0].Name)
	require.Len(t, b.Events, 1)
	assert.EqualValues(t, "is-highlighted-changed", b.Events[0].Name)
	require.Len(t, b.Methods, 1)
	assert.EqualValues(t, "toggle", b.Methods[0].Name)
}

func TestBehaviorScanner_arrayComposition(t *testing.T) {
	behaviors := scanBehaviors(t, `
/** @polymerBehavior MyNamespace.CombinedBehavior */
MyNamespace.CombinedBehaviorImpl = [MyNamespace.A, MyNamespace.B];
`)
	require.Len(t, behaviors, 1)
	b := behaviors[0]
	assert.EqualValues(t, "MyNamespace.CombinedBehavior", b.Name)
	var refs []string
	for _, r := range b.Behaviors {
		refs = append(refs, r.Identifier)
	}
	assert.EqualValues(t, []string{"MyNamespace.A", "MyNamespace.B"}, refs)
}

func TestBehaviorScanner_mergesSameName(t *testing.T) {
	behaviors := scanBehaviors(t, `
/**
 * Short.
 * @polymerBehavior MyNamespace.Merged
 * @event first-event
 */
MyNamespace.MergedImplA = {
  properties: {
    alpha: { type: String },
  },
};

/**
 * A much longer description that should win the merge.
 * @polymerBehavior MyNamespace.Merged
 * @event first-event
 * @event second-event
 */
MyNamespace.MergedImplB = {
  properties: {
    beta: { type: String },
  },
};
`)
	require.Len(t, behaviors, 1)
	b := behaviors[0]
	assert.EqualValues(t, "MyNamespace.Merged", b.Name)
	assert.EqualValues(t, "A much longer description that should win the merge.", b.Description)
	var props []string
	for _, p := range b.Properties {
		props = append(props, p.Name)
	}
	assert.ElementsMatch(t, []string{"alpha", "beta"}, props)
	var events []string
	for _, e := range b.Events {
		events = append(events, e.Name)
	}
	assert.ElementsMatch(t, []string{"first-event", "second-event"}, events)
}

func TestBehaviorScanner_requiresDottedBinding(t *testing.T) {
	behaviors := scanBehaviors(t, `
/** @polymerBehavior */
justAVariable = { properties: {} };
`)
	assert.Empty(t, behaviors)
}
