package home

import "github.com/hugodevelopr/hugodeveloper/internal/site/platform"

// DefaultDescription is used for the meta description when the page data leaves it empty.
const DefaultDescription = "Principal-level software architecture, hands-on. Deep dives, guides, and decisions built from real-world systems."

const (
	defaultPortraitSize = 360
	defaultCTA          = "Open →"
)

// PageData is the full landing page payload.
type PageData struct {
	Description string
	Hero        HeroContent
	ContentMap  ContentMap
}

// Action is a labelled internal destination.
type Action struct {
	Label string
	Href  string
}

// Portrait describes the above-the-fold image.
type Portrait struct {
	Src    string
	Alt    string
	Width  int
	Height int
}

// HeroContent is the introductory block. DisplayName and Role fall back to the site
// identity when empty.
type HeroContent struct {
	Kicker      string
	DisplayName string
	Role        string
	Lead        string
	Portrait    Portrait
	FocusTags   []string
	Primary     Action
	Secondary   *Action
}

// NavCard is one navigational tile of the content map.
type NavCard struct {
	Title       string
	Description string
	Href        string
	Meta        string
	CTA         string
}

// NavRow is a compact navigation row (label, short meta, destination).
type NavRow struct {
	Label string
	Meta  string
	Href  string
}

// ContentMap is the section listing documentation categories.
type ContentMap struct {
	Title           string
	Cards           []NavCard
	Recommended     Action
	RecommendedNote string
	LatestTitle     string
	Latest          []NavRow
}

// WithIdentity fills display name and role from the site identity where the literal
// content leaves them empty.
func (hc HeroContent) WithIdentity(id platform.SiteIdentity) HeroContent {
	if hc.DisplayName == "" {
		hc.DisplayName = id.Title
	}
	if hc.Role == "" {
		hc.Role = id.Tagline
	}
	return hc
}

func (p Portrait) size() (int, int) {
	w, h := p.Width, p.Height
	if w <= 0 {
		w = defaultPortraitSize
	}
	if h <= 0 {
		h = w
	}
	return w, h
}
