package pages_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hugodevelopr/hugodeveloper/internal/site/content"
	"github.com/hugodevelopr/hugodeveloper/internal/site/pages"
	"github.com/hugodevelopr/hugodeveloper/internal/site/testutil"
)

func TestAllListsHomeThenNotFound(t *testing.T) {
	t.Parallel()

	all := pages.All(content.MustHome())
	require.Len(t, all, 2)

	require.Equal(t, "home", all[0].Name)
	require.Equal(t, "/", all[0].Route)
	require.Equal(t, "index.html", all[0].File)
	require.Equal(t, http.StatusOK, all[0].Status)

	require.Equal(t, "not_found", all[1].Name)
	require.Equal(t, "404.html", all[1].File)
	require.Equal(t, http.StatusNotFound, all[1].Status)
}

func TestNotFoundLinksHome(t *testing.T) {
	t.Parallel()

	p := testutil.NewFakePlatform("Hugo Moura", "")
	doc := testutil.RenderDOM(t, pages.NotFound().Render(p))

	require.Equal(t, "Page not found", doc.Find("h1").Text())
	require.Equal(t, []string{"/"}, p.Links())
	require.True(t, p.Shells()[0].NoIndex)
}
