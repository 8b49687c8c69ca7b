package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/webcomp/model"
	"github.com/viant/webcomp/parser"
)

func TestRegistry_selection(t *testing.T) {
	r := parser.Default()
	for url, wantType := range map[string]string{
		"mem://localhost/pkg/a.html": "html",
		"mem://localhost/pkg/a.htm":  "html",
		"mem://localhost/pkg/a.js":   "js",
		"mem://localhost/pkg/a.mjs":  "js",
		"mem://localhost/pkg/a.css":  "css",
		"mem://localhost/pkg/a.json": "json",
	} {
		p, ok := r.ForURL(url)
		require.True(t, ok, url)
		doc, err := p.Parse(context.Background(), sample(wantType), url, nil)
		require.NoError(t, err, url)
		assert.EqualValues(t, wantType, doc.Type, url)
		assert.EqualValues(t, url, doc.URL)
		assert.NotZero(t, doc.Hash)
	}
	_, ok := r.ForURL("mem://localhost/pkg/a.txt")
	assert.False(t, ok)
}

func sample(docType string) []byte {
	switch docType {
	case "html":
		return []byte("<p>hi</p>")
	case "js":
		return []byte("var x = 1;")
	case "css":
		return []byte("p { color: red; }")
	default:
		return []byte(`{"name": "pkg"}`)
	}
}

func TestRegistry_forType(t *testing.T) {
	r := parser.Default()
	p, ok := r.ForType("js")
	require.True(t, ok)
	offset := &model.InlineOffset{Line: 4, Col: 8, Filename: "mem://localhost/pkg/outer.html"}
	doc, err := p.Parse(context.Background(), []byte("var inline = 1;"), "mem://localhost/pkg/outer.html", offset)
	require.NoError(t, err)
	rng := doc.RangeOf(doc.Root())
	assert.EqualValues(t, 4, rng.Start.Line, "inline ranges shift by the block's line offset")
	assert.EqualValues(t, 8, rng.Start.Column, "first-line columns shift by the block's column offset")
}

func TestDataParser_invalid(t *testing.T) {
	r := parser.Default()
	p, _ := r.ForURL("mem://localhost/pkg/bad.json")
	_, err := p.Parse(context.Background(), []byte("{oops"), "mem://localhost/pkg/bad.json", nil)
	require.Error(t, err)
	assert.True(t, model.IsWarning(err))
	assert.EqualValues(t, "parse-error", model.AsWarning(err, "bad.json").Code)
}
