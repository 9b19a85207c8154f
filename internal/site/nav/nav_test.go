package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testItems = []Item{
	{Href: "/docs/00-start-here", Label: "Docs"},
	{Href: "/blog", Label: "Blog"},
	{Href: "https://github.com/hugodevelopr", Label: "GitHub"},
}

func TestBuildMarksActivePrefix(t *testing.T) {
	t.Parallel()

	items := Build(testItems, "/blog/2024/observability")
	require.Len(t, items, 3)
	require.False(t, items[0].Active)
	require.True(t, items[1].Active, "nested blog path should highlight blog")
	require.False(t, items[2].Active)
	require.True(t, items[2].External)
}

func TestBuildRootHighlightsNothing(t *testing.T) {
	t.Parallel()

	for _, item := range Build(testItems, "") {
		require.False(t, item.Active, "%s should not be active on the home page", item.Href)
	}
}

func TestIsActiveBoundaries(t *testing.T) {
	t.Parallel()

	require.True(t, isActive("/blog", "/blog"))
	require.True(t, isActive("/blog", "/blog/"))
	require.True(t, isActive("/blog", "/blog?page=2"))
	require.False(t, isActive("/blog", "/blogroll"))
	require.True(t, isActive("/", "/"))
	require.False(t, isActive("/", "/docs"))
}
