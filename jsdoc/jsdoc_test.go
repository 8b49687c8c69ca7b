package jsdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/webcomp/jsdoc"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		comment  string
		wantDesc string
		wantTags map[string]string
	}{
		{
			name: "description only",
			comment: `/**
 * A very fine element.
 */`,
			wantDesc: "A very fine element.",
		},
		{
			name: "marker tags",
			comment: `/**
 * @customElement my-element
 * @mixinFunction
 */`,
			wantTags: map[string]string{"customElement": "my-element", "mixinFunction": ""},
		},
		{
			name:     "namespaced behavior",
			comment:  `/** @polymerBehavior MyNamespace.SimpleBehavior */`,
			wantTags: map[string]string{"polymerBehavior": "MyNamespace.SimpleBehavior"},
		},
		{
			name: "description and memberof",
			comment: `/**
 * Does a thing.
 * @memberof Polymer
 */`,
			wantDesc: "Does a thing.",
			wantTags: map[string]string{"memberof": "Polymer"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ann := jsdoc.Parse(tc.comment)
			if !assert.NotNil(t, ann) {
				return
			}
			assert.EqualValues(t, tc.wantDesc, ann.Description)
			for title, name := range tc.wantTags {
				tag := ann.Tag(title)
				if !assert.NotNil(t, tag, title) {
					continue
				}
				assert.EqualValues(t, name, tag.Name, title)
			}
		})
	}
}

func TestParse_paramAndReturns(t *testing.T) {
	ann := jsdoc.Parse(`/**
 * Sums two numbers.
 * @param {number} a - the first operand
 * @param {number} b the second operand
 * @returns {number} the sum
 */`)
	if !assert.NotNil(t, ann) {
		return
	}
	assert.EqualValues(t, "Sums two numbers.", ann.Description)
	if assert.Len(t, ann.Tags, 3) {
		assert.EqualValues(t, "number", ann.Tags[0].Type)
		assert.EqualValues(t, "a", ann.Tags[0].Name)
		assert.EqualValues(t, "the first operand", ann.Tags[0].Description)
		assert.EqualValues(t, "b", ann.Tags[1].Name)
		ret := ann.Tag("returns")
		if assert.NotNil(t, ret) {
			assert.EqualValues(t, "number", ret.Type)
			assert.EqualValues(t, "the sum", ret.Description)
		}
	}
}

func TestParse_empty(t *testing.T) {
	assert.Nil(t, jsdoc.Parse("/** */"))
	assert.Nil(t, jsdoc.Parse(""))
}

func TestAnnotation_nilSafety(t *testing.T) {
	var ann *jsdoc.Annotation
	assert.False(t, ann.HasTag("public"))
	assert.Nil(t, ann.Tag("public"))
	assert.EqualValues(t, "", ann.Desc())
}
