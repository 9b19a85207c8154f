// Package content holds the canonical landing page dataset and its validation.
package content

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/home"
)

//go:embed data/home.yaml
var homeYAML []byte

type document struct {
	Description string        `yaml:"description"`
	Hero        heroDoc       `yaml:"hero"`
	ContentMap  contentMapDoc `yaml:"contentMap"`
}

type actionDoc struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type portraitDoc struct {
	Src    string `yaml:"src"`
	Alt    string `yaml:"alt"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type heroDoc struct {
	Kicker      string      `yaml:"kicker"`
	DisplayName string      `yaml:"displayName"`
	Role        string      `yaml:"role"`
	Lead        string      `yaml:"lead"`
	Portrait    portraitDoc `yaml:"portrait"`
	FocusTags   []string    `yaml:"focusTags"`
	Primary     actionDoc   `yaml:"primary"`
	Secondary   *actionDoc  `yaml:"secondary"`
}

type cardDoc struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Href        string `yaml:"href"`
	Meta        string `yaml:"meta"`
	CTA         string `yaml:"cta"`
}

type rowDoc struct {
	Label string `yaml:"label"`
	Meta  string `yaml:"meta"`
	Href  string `yaml:"href"`
}

type contentMapDoc struct {
	Title           string    `yaml:"title"`
	Cards           []cardDoc `yaml:"cards"`
	Recommended     actionDoc `yaml:"recommended"`
	RecommendedNote string    `yaml:"recommendedNote"`
	LatestTitle     string    `yaml:"latestTitle"`
	Latest          []rowDoc  `yaml:"latest"`
}

// Home returns the canonical landing page data.
func Home() (home.PageData, error) {
	return Parse(homeYAML)
}

// MustHome is Home for package initialisation paths where the embedded dataset is trusted.
func MustHome() home.PageData {
	data, err := Home()
	if err != nil {
		panic(err)
	}
	return data
}

// Parse decodes a landing page document. Unknown keys are rejected.
func Parse(data []byte) (home.PageData, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return home.PageData{}, fmt.Errorf("content: decode home: %w", err)
	}
	return doc.pageData(), nil
}

func (d document) pageData() home.PageData {
	hero := home.HeroContent{
		Kicker:      d.Hero.Kicker,
		DisplayName: d.Hero.DisplayName,
		Role:        d.Hero.Role,
		Lead:        d.Hero.Lead,
		Portrait:    home.Portrait(d.Hero.Portrait),
		FocusTags:   append([]string(nil), d.Hero.FocusTags...),
		Primary:     home.Action(d.Hero.Primary),
	}
	if d.Hero.Secondary != nil {
		secondary := home.Action(*d.Hero.Secondary)
		hero.Secondary = &secondary
	}

	cards := make([]home.NavCard, 0, len(d.ContentMap.Cards))
	for _, c := range d.ContentMap.Cards {
		cards = append(cards, home.NavCard(c))
	}
	rows := make([]home.NavRow, 0, len(d.ContentMap.Latest))
	for _, r := range d.ContentMap.Latest {
		rows = append(rows, home.NavRow(r))
	}

	return home.PageData{
		Description: d.Description,
		Hero:        hero,
		ContentMap: home.ContentMap{
			Title:           d.ContentMap.Title,
			Cards:           cards,
			Recommended:     home.Action(d.ContentMap.Recommended),
			RecommendedNote: d.ContentMap.RecommendedNote,
			LatestTitle:     d.ContentMap.LatestTitle,
			Latest:          rows,
		},
	}
}
