package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoutesResolves(t *testing.T) {
	t.Parallel()

	routes := NewRoutes("/docs/01-guides", "blog/", " /docs/06-decisions ")

	tests := []struct {
		name string
		href string
		want bool
	}{
		{name: "root always known", href: "/", want: true},
		{name: "exact docs route", href: "/docs/01-guides", want: true},
		{name: "trailing slash", href: "/docs/01-guides/", want: true},
		{name: "route declared without leading slash", href: "/blog", want: true},
		{name: "query and fragment ignored", href: "/docs/06-decisions?tab=all#top", want: true},
		{name: "unknown route", href: "/docs/99-missing", want: false},
		{name: "empty destination", href: "", want: false},
		{name: "external url", href: "https://github.com/hugodevelopr", want: true},
		{name: "mailto", href: "mailto:hello@example.com", want: true},
		{name: "in-page anchor", href: "#content-map", want: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, routes.Resolves(tc.href))
		})
	}
}

func TestRoutesPathsSorted(t *testing.T) {
	t.Parallel()

	routes := NewRoutes("/blog", "/docs/01-guides", "/blog")
	require.Equal(t, []string{"/", "/blog", "/docs/01-guides"}, routes.Paths())
}

func TestIsExternal(t *testing.T) {
	t.Parallel()

	require.True(t, IsExternal("https://example.com"))
	require.True(t, IsExternal("//cdn.example.com/x.js"))
	require.False(t, IsExternal("/docs/00-start-here"))
	require.False(t, IsExternal("/search?q=a:b"))
}
