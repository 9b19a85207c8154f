package platform

import (
	"path"
	"sort"
	"strings"
)

// Routes is the set of internal paths the site router serves.
type Routes struct {
	known map[string]struct{}
}

// NewRoutes builds a route set. The root route is always present.
func NewRoutes(paths ...string) Routes {
	known := map[string]struct{}{"/": {}}
	for _, p := range paths {
		if normalized := normalizeRoute(p); normalized != "" {
			known[normalized] = struct{}{}
		}
	}
	return Routes{known: known}
}

// Resolves reports whether href targets a known route. Query strings and fragments are
// ignored; absolute URLs and non-http schemes are outside the router and always resolve.
func (r Routes) Resolves(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" {
		return false
	}
	if IsExternal(href) {
		return true
	}
	if strings.HasPrefix(href, "#") {
		return true
	}
	_, ok := r.known[normalizeRoute(href)]
	return ok
}

// Paths returns the known routes in lexical order.
func (r Routes) Paths() []string {
	out := make([]string, 0, len(r.known))
	for p := range r.known {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// IsExternal reports whether href leaves the site (has a scheme or is protocol-relative).
func IsExternal(href string) bool {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "//") {
		return true
	}
	if i := strings.Index(href, ":"); i > 0 {
		scheme := href[:i]
		return !strings.ContainsAny(scheme, "/?#")
	}
	return false
}

func normalizeRoute(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
