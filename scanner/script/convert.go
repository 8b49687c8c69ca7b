package script

import (
	"strings"
	"unicode"

	"github.com/viant/webcomp/jsdoc"
	"github.com/viant/webcomp/model"
)

// InferPrivacy applies the explicit @public/@protected/@private annotation
// when present, then falls back to the underscore convention: __name is
// private, _name is protected, anything else follows defaultPrivate.
func InferPrivacy(name string, ann *jsdoc.Annotation, defaultPrivate bool) model.Privacy {
	switch {
	case ann.HasTag("public"):
		return model.Public
	case ann.HasTag("private"):
		return model.Private
	case ann.HasTag("protected"):
		return model.Protected
	case strings.HasPrefix(name, "__"):
		return model.Private
	case strings.HasPrefix(name, "_"):
		return model.Protected
	case defaultPrivate:
		return model.Private
	}
	return model.Public
}

// AttributeName converts a property name to its attribute form: a dash is
// inserted before each upper-case letter and the letter lower-cased. Names
// starting with an upper-case letter cannot be published and are rejected.
func AttributeName(property string) (string, bool) {
	if property == "" {
		return "", false
	}
	runes := []rune(property)
	if unicode.IsUpper(runes[0]) {
		return "", false
	}
	var sb strings.Builder
	for _, r := range runes {
		if unicode.IsUpper(r) {
			sb.WriteRune('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), true
}

// PropertyName is the inverse of AttributeName: each letter after a dash is
// upper-cased and the dash dropped.
func PropertyName(attribute string) string {
	var sb strings.Builder
	upper := false
	for _, r := range attribute {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			sb.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
