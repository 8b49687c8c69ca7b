// Package jsdoc parses the documentation comments attached to scanned
// declarations. It understands the block-comment framing, a free-form
// description followed by @tag lines, and the handful of tag shapes the
// scanners care about (typed params, bare markers, named references).
package jsdoc

import (
	"regexp"
	"strings"
)

// Annotation is a parsed documentation comment.
type Annotation struct {
	Description string
	Tags        []*Tag
}

// Tag is a single @tag entry within an annotation.
type Tag struct {
	Title       string // tag name without the leading @
	Type        string // {Type} expression, when present
	Name        string // identifier operand, when present
	Description string // trailing free text
}

var tagLine = regexp.MustCompile(`^@(\S+)\s*(.*)$`)

// Parse parses a raw comment (with or without the /** */ framing) into an
// Annotation. A nil result means the comment was empty after unwrapping.
func Parse(comment string) *Annotation {
	text := Unwrap(comment)
	if text == "" {
		return nil
	}
	ann := &Annotation{}
	var desc []string
	var current *Tag
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if m := tagLine.FindStringSubmatch(trimmed); m != nil {
			current = parseTag(m[1], m[2])
			ann.Tags = append(ann.Tags, current)
			continue
		}
		if current != nil {
			if trimmed != "" {
				if current.Description != "" {
					current.Description += "\n"
				}
				current.Description += trimmed
			}
			continue
		}
		desc = append(desc, line)
	}
	ann.Description = strings.TrimSpace(strings.Join(desc, "\n"))
	return ann
}

// Unwrap strips the /** */ framing and per-line * gutters from a block
// comment, or the // prefixes from a line comment run.
func Unwrap(comment string) string {
	text := strings.TrimSpace(comment)
	switch {
	case strings.HasPrefix(text, "/**"):
		text = strings.TrimPrefix(text, "/**")
		text = strings.TrimSuffix(text, "*/")
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
	}
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "//")
		if line == "*" {
			line = ""
		} else if strings.HasPrefix(line, "* ") {
			line = line[2:]
		} else {
			line = strings.TrimPrefix(line, "*")
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// parseTag splits a tag operand into {Type}, name and description.
func parseTag(title, rest string) *Tag {
	tag := &Tag{Title: title}
	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "{") {
		if end := matchBrace(rest); end > 0 {
			tag.Type = strings.TrimSpace(rest[1:end])
			rest = strings.TrimSpace(rest[end+1:])
		}
	}
	switch title {
	case "param", "arg", "argument", "returns", "return", "memberof", "extends",
		"appliesMixin", "mixes", "namespace", "polymerBehavior", "customElement",
		"event", "demo":
		if rest != "" {
			fields := strings.SplitN(rest, " ", 2)
			tag.Name = strings.TrimPrefix(fields[0], "-")
			if tag.Name == "" && len(fields) > 1 {
				fields = fields[1:]
				tag.Name = fields[0]
			}
			if len(fields) > 1 {
				tag.Description = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(fields[1]), "- "))
			}
			if title == "returns" || title == "return" {
				// returns has no name operand, only description
				tag.Description = strings.TrimSpace(strings.TrimPrefix(rest, "- "))
				tag.Name = ""
			}
		}
	default:
		tag.Description = rest
	}
	return tag
}

// matchBrace returns the index of the } closing the { at position 0, or -1.
func matchBrace(s string) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Tag returns the first tag with the given title, or nil.
func (a *Annotation) Tag(title string) *Tag {
	if a == nil {
		return nil
	}
	for _, t := range a.Tags {
		if t.Title == title {
			return t
		}
	}
	return nil
}

// HasTag reports whether a tag with the given title is present.
func (a *Annotation) HasTag(title string) bool {
	return a.Tag(title) != nil
}

// TagNames returns the Name operand of every tag with the given title.
func (a *Annotation) TagNames(title string) []string {
	if a == nil {
		return nil
	}
	var names []string
	for _, t := range a.Tags {
		if t.Title == title && t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return names
}

// Desc returns the annotation description, tolerating a nil receiver.
func (a *Annotation) Desc() string {
	if a == nil {
		return ""
	}
	return a.Description
}
