package normalize

import (
	"regexp"
	"strings"
)

// figurePattern captures the opening tag, inner content and closing tag of a figure.
var figurePattern = regexp.MustCompile(`(?s)(<figure[^>]*>)(.*?)(</figure>)`)

// RewriteFigures applies rewrite to the inner content of every figure block.
// Opening tags and everything outside figures are left untouched.
func RewriteFigures(html string, rewrite func(string) string) string {
	if !strings.Contains(html, "<figure") {
		return html
	}

	return figurePattern.ReplaceAllStringFunc(html, func(block string) string {
		groups := figurePattern.FindStringSubmatch(block)
		return groups[1] + rewrite(groups[2]) + groups[3]
	})
}
