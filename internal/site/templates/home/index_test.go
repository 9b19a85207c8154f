package home_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/hugodevelopr/hugodeveloper/internal/site/content"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/home"
	"github.com/hugodevelopr/hugodeveloper/internal/site/testutil"
)

func TestIndexPassesTitleAndDescriptionToShell(t *testing.T) {
	t.Parallel()

	p := testutil.NewFakePlatform("Hugo Moura", "Principal Software Engineer")
	testutil.RenderNode(t, home.Index(p, home.PageData{Description: "Hands-on architecture."}))

	shells := p.Shells()
	require.Len(t, shells, 1)
	require.Equal(t, "Hugo Moura", shells[0].Title)
	require.Equal(t, "Hands-on architecture.", shells[0].Description)
	require.Equal(t, home.Route, shells[0].Path)
}

func TestIndexDefaultsDescription(t *testing.T) {
	t.Parallel()

	p := testutil.NewFakePlatform("Hugo Moura", "")
	testutil.RenderNode(t, home.Index(p, home.PageData{}))

	require.Equal(t, home.DefaultDescription, p.Shells()[0].Description)
}

func TestIndexIsIdempotent(t *testing.T) {
	t.Parallel()

	data := content.MustHome()
	p := testutil.NewFakePlatform("Hugo Moura", "Principal Software Engineer")

	require.Equal(t,
		testutil.RenderNode(t, home.Index(p, data)),
		testutil.RenderNode(t, home.Index(p, data)),
	)
}

func TestIndexHeroPrecedesContentMap(t *testing.T) {
	t.Parallel()

	p := testutil.NewFakePlatform("Hugo Moura", "")
	doc := testutil.RenderDOM(t, home.Index(p, content.MustHome()))

	sections := doc.Find("main > section")
	require.Equal(t, 2, sections.Length())
	require.Equal(t, "hero", sections.Eq(0).AttrOr("id", ""))
	require.Equal(t, "content-map", sections.Eq(1).AttrOr("id", ""))
}

func TestIndexEndToEndScenario(t *testing.T) {
	t.Parallel()

	p := testutil.DefaultPlatform("/")
	data := home.PageData{
		Hero: home.HeroContent{
			Lead:     "I document how I design and evolve backend systems.",
			Portrait: home.Portrait{Src: "/img/avatar.png", Alt: "Portrait photo"},
			Primary:  home.Action{Label: "Explore the work", Href: "/docs/00-start-here"},
		},
		ContentMap: home.ContentMap{
			Title: "Content map",
			Cards: []home.NavCard{
				{Title: "Guides", Description: "g", Href: "/docs/01-guides"},
				{Title: "Deep Dives", Description: "d", Href: "/docs/02-deep-dives"},
				{Title: "Decisions", Description: "c", Href: "/docs/06-decisions"},
			},
		},
	}

	doc := testutil.RenderDOM(t, home.Index(p, data))

	require.Contains(t, doc.Find("head title").Text(), "Hugo Moura")
	require.Equal(t, 3, doc.Find("body a.card").Length())
	require.Equal(t, []string{"/docs/01-guides", "/docs/02-deep-dives", "/docs/06-decisions"}, cardHrefs(doc))
	require.Equal(t, "Principal Software Engineer", doc.Find(".signature-role").Text())
}

func TestIndexSnapshot(t *testing.T) {
	p := testutil.NewFakePlatform("Hugo Moura", "Principal Software Engineer")
	data := home.PageData{
		Description: "Hands-on architecture.",
		Hero: home.HeroContent{
			Kicker:    "Author",
			Lead:      "Systems that *last*.",
			Portrait:  home.Portrait{Src: "/img/avatar.png", Alt: "Portrait"},
			FocusTags: []string{"Architecture", "Reliability"},
			Primary:   home.Action{Label: "Explore the work", Href: "/docs/00-start-here"},
		},
		ContentMap: home.ContentMap{
			Title: "Content map",
			Cards: []home.NavCard{
				{Title: "Guides", Description: "Practical *how-to* notes", Href: "/docs/01-guides", Meta: "Practice"},
				{Title: "Decisions", Description: "See [ADR](/docs/06-decisions) list", Href: "/docs/06-decisions"},
			},
			Recommended: home.Action{Label: "Start here", Href: "/docs/00-start-here"},
			Latest:      []home.NavRow{{Label: "Blog", Meta: "Posts", Href: "/blog"}},
		},
	}

	snaps.MatchSnapshot(t, testutil.RenderNode(t, home.Index(p, data)))
}
