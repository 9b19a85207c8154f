package testutil

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	g "maragu.dev/gomponents"

	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/helpers"
)

// ParseHTML parses the provided HTML payload into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// RenderNode renders node and returns the markup.
func RenderNode(t testing.TB, node g.Node) string {
	t.Helper()

	out, err := helpers.Render(node)
	if err != nil {
		t.Fatalf("render node: %v", err)
	}
	return out
}

// RenderDOM renders node and parses the result.
func RenderDOM(t testing.TB, node g.Node) *goquery.Document {
	t.Helper()
	return ParseHTML(t, []byte(RenderNode(t, node)))
}
