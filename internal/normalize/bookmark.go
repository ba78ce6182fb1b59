package normalize

import (
	"regexp"
	"strings"
)

// bookmarkCardPattern matches a whole Ghost bookmark card and captures its
// target URL and title. Titles containing nested tags do not match.
var bookmarkCardPattern = regexp.MustCompile(
	`(?s)<figure class="kg-card kg-bookmark-card">.*?href="([^"]+)".*?kg-bookmark-title">([^<]+)</div>.*?</figure>`,
)

// ExtractBookmarks replaces every bookmark card in html with a markdown link
// surrounded by blank lines. The card's target is passed through rewriteURL.
// Cards that are malformed or never closed are left as they are.
func ExtractBookmarks(html string, rewriteURL func(string) string) string {
	if !strings.Contains(html, "kg-bookmark-card") {
		return html
	}

	return bookmarkCardPattern.ReplaceAllStringFunc(html, func(card string) string {
		groups := bookmarkCardPattern.FindStringSubmatch(card)
		url, title := groups[1], groups[2]
		return "\n\n[" + title + "](" + rewriteURL(url) + ")\n\n"
	})
}
