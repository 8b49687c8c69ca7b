package script_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/webcomp/jsdoc"
	"github.com/viant/webcomp/model"
	"github.com/viant/webcomp/scanner/script"
)

func TestAttributeName(t *testing.T) {
	tests := []struct {
		property string
		want     string
		ok       bool
	}{
		{"foo", "foo", true},
		{"fooBar", "foo-bar", true},
		{"fooBarBaz", "foo-bar-baz", true},
		{"_fooBar", "_foo-bar", true},
		{"FooBar", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := script.AttributeName(tc.property)
		assert.EqualValues(t, tc.ok, ok, tc.property)
		assert.EqualValues(t, tc.want, got, tc.property)
	}
}

// Converting a property name then applying the inverse conversion yields
// the original name.
func TestAttributeName_roundTrip(t *testing.T) {
	for _, property := range []string{"foo", "fooBar", "deeplyInheritedProperty", "aBC"} {
		attr, ok := script.AttributeName(property)
		if assert.True(t, ok, property) {
			assert.EqualValues(t, property, script.PropertyName(attr), property)
		}
	}
}

func TestInferPrivacy(t *testing.T) {
	public := jsdoc.Parse("/** @public */")
	private := jsdoc.Parse("/** @private */")
	tests := []struct {
		name           string
		ann            *jsdoc.Annotation
		defaultPrivate bool
		want           model.Privacy
	}{
		{name: "plain", want: model.Public},
		{name: "_protected", want: model.Protected},
		{name: "__private", want: model.Private},
		{name: "plain", defaultPrivate: true, want: model.Private},
		{name: "__private", ann: public, want: model.Public},
		{name: "plain", ann: private, want: model.Private},
	}
	for _, tc := range tests {
		got := script.InferPrivacy(tc.name, tc.ann, tc.defaultPrivate)
		assert.EqualValues(t, tc.want, got, tc.name)
	}
}
