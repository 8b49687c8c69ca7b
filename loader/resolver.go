package loader

import (
	"path"
	"strings"

	"github.com/viant/afs/url"
)

// Resolver turns the URLs documents refer to each other by into canonical
// cache keys. URLs it cannot interpret pass through unchanged and are
// treated as opaque keys.
type Resolver interface {
	CanResolve(url string) bool
	// Resolve canonicalizes a URL relative to the package root.
	Resolve(url string) string
	// ResolveAgainst canonicalizes href relative to the document at base.
	ResolveAgainst(base, href string) string
}

// PackageResolver resolves relative URLs against a package root URL.
type PackageResolver struct {
	Root string
}

// NewPackageResolver returns a resolver rooted at root.
func NewPackageResolver(root string) *PackageResolver {
	return &PackageResolver{Root: strings.TrimSuffix(root, "/")}
}

func (r *PackageResolver) CanResolve(u string) bool {
	switch Scheme(u) {
	case "", "file", "mem":
		return true
	default:
		return false
	}
}

func (r *PackageResolver) Resolve(u string) string {
	if !r.CanResolve(u) {
		return u
	}
	if Scheme(u) != "" || strings.HasPrefix(u, "/") {
		return Clean(u)
	}
	if r.Root == "" {
		return Clean(u)
	}
	return Clean(url.Join(r.Root, u))
}

func (r *PackageResolver) ResolveAgainst(base, href string) string {
	if !r.CanResolve(href) {
		return href
	}
	if Scheme(href) != "" || strings.HasPrefix(href, "/") {
		return Clean(href)
	}
	dir := Dir(base)
	if dir == "" {
		return r.Resolve(href)
	}
	return Clean(url.Join(dir, href))
}

// Scheme returns the URL scheme, or "" for plain paths.
func Scheme(u string) string {
	i := strings.Index(u, "://")
	if i < 0 {
		return ""
	}
	return u[:i]
}

// Clean normalizes the path portion of a URL, collapsing . and .. segments.
func Clean(u string) string {
	scheme := Scheme(u)
	if scheme == "" {
		return path.Clean(u)
	}
	rest := u[len(scheme)+3:]
	return scheme + "://" + path.Clean(rest)
}

// Dir returns the URL of the directory containing u.
func Dir(u string) string {
	scheme := Scheme(u)
	if scheme == "" {
		d := path.Dir(u)
		if d == "." {
			return ""
		}
		return d
	}
	rest := u[len(scheme)+3:]
	return scheme + "://" + path.Dir(rest)
}

// Relative rewrites target as a path relative to the directory baseDir,
// falling back to the target's path when they do not share a prefix.
func Relative(baseDir, target string) string {
	baseDir = strings.TrimSuffix(baseDir, "/")
	tScheme := Scheme(target)
	bScheme := Scheme(baseDir)
	if tScheme != bScheme {
		return target
	}
	if tScheme != "" {
		baseDir = baseDir[len(bScheme)+3:]
		target = target[len(tScheme)+3:]
	}
	if baseDir == "" {
		return target
	}
	if strings.HasPrefix(target, baseDir+"/") {
		return target[len(baseDir)+1:]
	}
	// walk up until a shared prefix is found
	up := ""
	dir := baseDir
	for dir != "." && dir != "/" && dir != "" {
		dir = path.Dir(dir)
		up += "../"
		prefix := strings.TrimSuffix(dir, "/") + "/"
		if dir != "." && dir != "/" && strings.HasPrefix(target, prefix) {
			return up + target[len(prefix):]
		}
	}
	return target
}

// IsExternal reports whether a URL points into an installed dependency
// rather than the package being analyzed.
func IsExternal(u string) bool {
	return strings.Contains(u, "bower_components/") ||
		strings.Contains(u, "node_modules/")
}
