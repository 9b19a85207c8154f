package helpers

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a gomponents node to templ so pages can be served with templ.Handler.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		return node.Render(w)
	})
}

// Render renders node to a string. Intended for tests and static export.
func Render(node g.Node) (string, error) {
	var b strings.Builder
	if node == nil {
		return "", nil
	}
	if err := node.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Classes joins the non-empty class names with single spaces.
func Classes(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}

// NavClass returns navbar link classes.
func NavClass(active bool) string {
	modifier := ""
	if active {
		modifier = "navbar-link--active"
	}
	return Classes("navbar-link", modifier)
}
