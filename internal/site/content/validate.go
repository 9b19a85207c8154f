package content

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/home"
)

// Issue is one content problem. Issues are warnings; rendering never depends on them.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	return i.Field + ": " + i.Message
}

// Validate checks destinations against the router, that display text is present and that
// the portrait exists in assets. A nil assets skips the asset check.
func Validate(data home.PageData, routes platform.Resolver, assets fs.FS) []Issue {
	var issues []Issue
	add := func(field, format string, args ...any) {
		issues = append(issues, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
	}
	checkHref := func(field, href string) {
		if routes != nil && !routes.Resolves(href) {
			add(field, "destination %q does not resolve to a known route", href)
		}
	}
	required := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			add(field, "must not be empty")
		}
	}

	hero := data.Hero
	required("hero.lead", hero.Lead)
	required("hero.primary.label", hero.Primary.Label)
	checkHref("hero.primary.href", hero.Primary.Href)
	if hero.Secondary != nil {
		required("hero.secondary.label", hero.Secondary.Label)
		checkHref("hero.secondary.href", hero.Secondary.Href)
	}
	required("hero.portrait.alt", hero.Portrait.Alt)
	if hero.Portrait.Src == "" {
		add("hero.portrait.src", "must not be empty")
	} else if assets != nil && !platform.IsExternal(hero.Portrait.Src) {
		name := strings.TrimPrefix(hero.Portrait.Src, "/")
		if _, err := fs.Stat(assets, name); err != nil {
			add("hero.portrait.src", "asset %q not found", hero.Portrait.Src)
		}
	}

	cm := data.ContentMap
	if len(cm.Cards) == 0 {
		add("contentMap.cards", "must contain at least one card")
	}
	seen := make(map[string]int, len(cm.Cards))
	for i, card := range cm.Cards {
		field := fmt.Sprintf("contentMap.cards[%d]", i)
		required(field+".title", card.Title)
		required(field+".description", card.Description)
		checkHref(field+".href", card.Href)
		if prev, ok := seen[card.Href]; ok {
			add(field+".href", "duplicates contentMap.cards[%d]", prev)
		} else {
			seen[card.Href] = i
		}
	}
	if cm.Recommended.Href != "" {
		checkHref("contentMap.recommended.href", cm.Recommended.Href)
	}
	for i, row := range cm.Latest {
		field := fmt.Sprintf("contentMap.latest[%d]", i)
		required(field+".label", row.Label)
		checkHref(field+".href", row.Href)
	}
	return issues
}
