package analysis

import (
	"fmt"

	"github.com/viant/webcomp/model"
)

// classKinds are the kinds a superclass or mixin reference can resolve to.
var classKinds = []model.Kind{model.KindClass, model.KindElement, model.KindMixin, model.KindBehavior}

// resolveClassLike lifts a scanned class-like feature into its resolved
// form: the prototype chain [self, superclass, mixins..., behaviors...] is
// built against the snapshot and ancestor members are appended with their
// provenance tagged. Resolution is memoized per snapshot; a cyclic chain
// resolves to the scanned feature itself.
func (c *Context) resolveClassLike(f model.ClassLike, scope *Document) model.ClassLike {
	if resolved, ok := c.resolvedFeats[f]; ok {
		return resolved
	}
	if c.resolving[f] {
		return f
	}
	c.resolving[f] = true
	defer delete(c.resolving, f)

	clone := f.CloneClassLike()
	data := clone.ClassData()
	var chain []model.ClassLike

	appendAncestor := func(ref *model.Reference, kinds []model.Kind, what string) {
		if ref == nil {
			return
		}
		found := c.findScanned(scope, kinds, ref.Identifier)
		if found == nil {
			data.Warnings = append(data.Warnings, &model.Warning{
				Code:        "could-not-resolve-reference",
				Message:     fmt.Sprintf("could not resolve %v reference %v", what, ref.Identifier),
				Severity:    model.SeverityWarning,
				SourceRange: ref.SourceRange,
			})
			return
		}
		chain = append(chain, c.resolveClassLike(found, scope))
	}

	appendAncestor(data.SuperClass, classKinds, "superclass")
	for _, ref := range data.Mixins {
		appendAncestor(ref, []model.Kind{model.KindMixin}, "mixin")
	}
	if el := clone.ElementData(); el != nil {
		for _, ref := range el.Behaviors {
			appendAncestor(ref, []model.Kind{model.KindBehavior}, "behavior")
		}
	}
	for _, ancestor := range chain {
		mergeInherited(clone, ancestor)
	}
	if el := clone.ElementData(); el != nil && el.TagName != "" && clone.Kind() == model.KindElement {
		c.attachTemplate(el, scope)
	}
	c.resolvedFeats[f] = clone
	return clone
}

// attachTemplate associates an element with the slots of its dom-module
// template, found anywhere in the document's import closure.
func (c *Context) attachTemplate(el *model.Element, scope *Document) {
	module := c.findScannedFeature(scope, []model.Kind{model.KindDomModule}, el.TagName)
	if module == nil {
		return
	}
	dm, ok := module.(*model.DomModule)
	if !ok {
		return
	}
	own := map[string]bool{}
	for _, s := range el.Slots {
		own[s.Name] = true
	}
	for _, s := range dm.Slots {
		if !own[s.Name] {
			el.Slots = append(el.Slots, s)
		}
	}
}

// mergeInherited appends an ancestor's members to the child unless shadowed
// by a same-named own member. Members already tagged keep their original
// provenance.
func mergeInherited(child, ancestor model.ClassLike) {
	from := ancestor.ClassData().Name
	cd := child.ClassData()
	ad := ancestor.ClassData()

	ownProps := map[string]bool{}
	for _, p := range cd.Properties {
		ownProps[p.Name] = true
	}
	for _, p := range ad.Properties {
		if ownProps[p.Name] {
			continue
		}
		inherited := *p
		if inherited.InheritedFrom == "" {
			inherited.InheritedFrom = from
		}
		cd.Properties = append(cd.Properties, &inherited)
		ownProps[p.Name] = true
	}

	ownMethods := map[string]bool{}
	for _, m := range cd.Methods {
		ownMethods[m.Name] = true
	}
	for _, m := range ad.Methods {
		if ownMethods[m.Name] {
			continue
		}
		inherited := *m
		if inherited.InheritedFrom == "" {
			inherited.InheritedFrom = from
		}
		cd.Methods = append(cd.Methods, &inherited)
		ownMethods[m.Name] = true
	}

	childEl, ancEl := child.ElementData(), ancestor.ElementData()
	if childEl == nil || ancEl == nil {
		return
	}
	ownAttrs := map[string]bool{}
	for _, a := range childEl.Attributes {
		ownAttrs[a.Name] = true
	}
	for _, a := range ancEl.Attributes {
		if ownAttrs[a.Name] {
			continue
		}
		inherited := *a
		if inherited.InheritedFrom == "" {
			inherited.InheritedFrom = from
		}
		childEl.Attributes = append(childEl.Attributes, &inherited)
		ownAttrs[a.Name] = true
	}
	ownEvents := map[string]bool{}
	for _, e := range childEl.Events {
		ownEvents[e.Name] = true
	}
	for _, e := range ancEl.Events {
		if ownEvents[e.Name] {
			continue
		}
		inherited := *e
		if inherited.InheritedFrom == "" {
			inherited.InheritedFrom = from
		}
		childEl.Events = append(childEl.Events, &inherited)
		ownEvents[e.Name] = true
	}
}

// findScanned locates a scanned class-like feature by identifier across
// the document's import closure.
func (c *Context) findScanned(scope *Document, kinds []model.Kind, id string) model.ClassLike {
	if f, ok := c.findScannedFeature(scope, kinds, id).(model.ClassLike); ok {
		return f
	}
	return nil
}

// findScannedFeature walks the scanned documents reachable from scope,
// depth-first over import edges with a visited set, returning the first
// feature of one of the kinds carrying the identifier.
func (c *Context) findScannedFeature(scope *Document, kinds []model.Kind, id string) model.Feature {
	kindSet := map[model.Kind]bool{}
	for _, k := range kinds {
		kindSet[k] = true
	}
	visited := map[string]bool{}
	var search func(url string) model.Feature
	search = func(url string) model.Feature {
		if visited[url] {
			return nil
		}
		visited[url] = true
		p, ok := c.cache.scanned.peek(url)
		if !ok || !p.completed() || p.err != nil {
			return nil
		}
		sd := p.val
		for _, f := range sd.AllFeatures() {
			if kindSet[f.Kind()] && hasIdentifier(f, id) {
				return f
			}
		}
		for _, dep := range c.dependenciesOf(sd) {
			if found := search(dep); found != nil {
				return found
			}
		}
		return nil
	}
	return search(scope.URL)
}
