package helpers

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
)

var (
	markdown = goldmark.New()
	policy   = bluemonday.UGCPolicy()
	// phrasing keeps emphasis and code only, so the result can sit inside a link.
	phrasing = bluemonday.NewPolicy().AllowElements("em", "strong", "code")
	strict   = bluemonday.StrictPolicy()
)

// Inline renders a short markdown snippet (emphasis, code, links) as sanitized HTML.
// A single paragraph is unwrapped; several paragraphs stay wrapped, so callers place the
// result in a flow container such as a div.
func Inline(src string) g.Node {
	out := InlineHTML(src)
	if out == "" {
		return nil
	}
	return g.Raw(out)
}

// InlineHTML is Inline returning the sanitized markup as a string.
func InlineHTML(src string) string {
	out, ok := convert(src)
	if !ok {
		return strings.TrimSpace(policy.Sanitize(out))
	}
	if strings.Count(out, "<p>") == 1 && strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return strings.TrimSpace(policy.Sanitize(out))
}

// Phrase renders markdown keeping only emphasis, strong and code. Links and block
// elements are reduced to their text.
func Phrase(src string) g.Node {
	out := PhraseHTML(src)
	if out == "" {
		return nil
	}
	return g.Raw(out)
}

// PhraseHTML is Phrase returning the sanitized markup as a string.
func PhraseHTML(src string) string {
	out, _ := convert(src)
	return strings.TrimSpace(phrasing.Sanitize(out))
}

// PlainText renders markdown and strips every tag, collapsing whitespace. The result is
// unescaped text suitable for attribute values.
func PlainText(src string) string {
	out, _ := convert(src)
	return strings.Join(strings.Fields(html.UnescapeString(strict.Sanitize(out))), " ")
}

// convert renders src with goldmark. On failure the trimmed source is returned with ok
// set to false.
func convert(src string) (string, bool) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", true
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return src, false
	}
	return strings.TrimSpace(buf.String()), true
}
