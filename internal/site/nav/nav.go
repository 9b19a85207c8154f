package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Href  string // e.g. "/blog"
	Label string
}

// RenderedItem is a view model for the navbar.
type RenderedItem struct {
	Href     string
	Label    string
	Active   bool
	External bool
}

// Build renders navigation items with active state given the current path.
func Build(items []Item, currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		external := isExternal(it.Href)
		out = append(out, RenderedItem{
			Href:     it.Href,
			Label:    it.Label,
			Active:   !external && isActive(it.Href, currentPath),
			External: external,
		})
	}
	return out
}

func isActive(itemPath, currentPath string) bool {
	itemPath = clean(itemPath)
	currentPath = clean(currentPath)
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/blog" or "/blog/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

func clean(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	return path.Clean("/" + strings.TrimPrefix(p, "/"))
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") || strings.HasPrefix(href, "//")
}
