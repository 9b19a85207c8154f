package home_test

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/hugodevelopr/hugodeveloper/internal/site/content"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/home"
	"github.com/hugodevelopr/hugodeveloper/internal/site/testutil"
)

func TestHeroRendersExactlyOneEagerImage(t *testing.T) {
	t.Parallel()

	data := content.MustHome()
	p := testutil.NewFakePlatform("Hugo Moura", "Principal Software Engineer")
	doc := testutil.RenderDOM(t, home.Index(p, data))

	imgs := doc.Find("img")
	require.Equal(t, 1, imgs.Length())

	img := imgs.First()
	for attr, want := range map[string]string{
		"src":           "/img/avatar.png",
		"alt":           "Portrait photo",
		"width":         "360",
		"height":        "360",
		"loading":       "eager",
		"fetchpriority": "high",
	} {
		got, ok := img.Attr(attr)
		require.True(t, ok, "missing %s", attr)
		require.Equal(t, want, got, attr)
	}
}

func TestHeroFallsBackToIdentity(t *testing.T) {
	t.Parallel()

	p := testutil.NewFakePlatform("Hugo Moura", "Principal Software Engineer")
	hc := home.HeroContent{Primary: home.Action{Label: "Go", Href: "/docs/00-start-here"}}
	doc := testutil.RenderDOM(t, home.Hero(p, hc.WithIdentity(p.Identity())))

	require.Equal(t, "Hugo Moura", doc.Find("h1#hero-title").Text())
	require.Equal(t, "Hugo Moura", doc.Find(".signature-name").Text())
	require.Equal(t, "Principal Software Engineer", doc.Find(".signature-role").Text())

	width, _ := doc.Find("img").Attr("width")
	height, _ := doc.Find("img").Attr("height")
	require.Equal(t, "360", width)
	require.Equal(t, "360", height)
}

func TestHeroActionsAndTags(t *testing.T) {
	t.Parallel()

	p := testutil.NewFakePlatform("Hugo Moura", "")
	hc := home.HeroContent{
		DisplayName: "Hugo Moura",
		Kicker:      "Author",
		Lead:        "Trade-offs. *Reliability*.",
		FocusTags:   []string{"Architecture", "Observability", ".NET"},
		Primary:     home.Action{Label: "Explore the work", Href: "/docs/00-start-here"},
		Secondary:   &home.Action{Label: "Blog", Href: "/blog"},
	}
	doc := testutil.RenderDOM(t, home.Hero(p, hc))

	require.Equal(t, "Author", doc.Find(".kicker").Text())
	require.Equal(t, "Reliability", doc.Find(".lead em").Text())
	require.Equal(t, []string{"/docs/00-start-here", "/blog"}, p.Links())
	require.Equal(t, "Explore the work", doc.Find(".actions a.primary").Text())
	require.Equal(t, "Blog", doc.Find(".actions a.secondary").Text())

	var tags []string
	doc.Find("ul.signals li").Each(func(_ int, s *goquery.Selection) {
		tags = append(tags, s.Text())
	})
	require.Equal(t, hc.FocusTags, tags)
}

func TestHeroLeadWithSeveralParagraphsStaysValid(t *testing.T) {
	t.Parallel()

	p := testutil.NewFakePlatform("Hugo Moura", "")
	out := testutil.RenderNode(t, home.Hero(p, home.HeroContent{DisplayName: "Hugo Moura", Lead: "one\n\ntwo"}))

	require.Contains(t, out, `<div class="lead"><p>one</p>`)
	require.NotContains(t, out, "<p class=\"lead\">")

	doc := testutil.ParseHTML(t, []byte(out))
	require.Equal(t, 2, doc.Find(".lead > p").Length())
}

func TestHeroWithoutSecondaryAction(t *testing.T) {
	t.Parallel()

	p := testutil.NewFakePlatform("Hugo Moura", "")
	doc := testutil.RenderDOM(t, home.Hero(p, home.HeroContent{
		DisplayName: "Hugo Moura",
		Primary:     home.Action{Label: "Explore the work", Href: "/docs/00-start-here"},
	}))

	require.Equal(t, 1, doc.Find(".actions a").Length())
	require.Zero(t, doc.Find(".actions a.secondary").Length())
	require.Zero(t, doc.Find("ul.signals").Length())
	require.Equal(t, []string{"/docs/00-start-here"}, p.Links())
}
