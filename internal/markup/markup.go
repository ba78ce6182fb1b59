// Package markup converts normalized post HTML to markdown.
package markup

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/net/html"
)

// Converter turns HTML into markdown.
type Converter struct {
	conv *converter.Converter
}

// New creates a Converter with the commonmark, table and strikethrough plugins.
//
// Escaping is disabled: normalized content already carries markdown
// (bookmark cards become [title](url) links) that must survive conversion.
func New() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
			strikethrough.NewStrikethroughPlugin(),
		),
		converter.WithEscapeMode(converter.EscapeModeDisabled),
	)
	conv.Register.RendererFor("img", converter.TagTypeInline, renderDataImage, converter.PriorityEarly)

	return &Converter{conv: conv}
}

// Convert returns the markdown for html. It never fails: if the converter
// rejects the input, the input is returned as-is.
func (c *Converter) Convert(htmlStr string) string {
	if strings.TrimSpace(htmlStr) == "" {
		return ""
	}

	md, err := c.conv.ConvertString(htmlStr)
	if err != nil {
		return htmlStr
	}
	return strings.TrimSpace(md)
}

// renderDataImage replaces inline data: URI images with an alt-text placeholder.
// Regular images fall through to the commonmark renderer.
func renderDataImage(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	src := dom.GetAttributeOr(n, "src", "")
	if !strings.HasPrefix(src, "data:") {
		return converter.RenderTryNext
	}

	alt := strings.TrimSpace(dom.GetAttributeOr(n, "alt", ""))
	if alt != "" {
		w.WriteString("[Image: " + alt + "]")
	}
	return converter.RenderSuccess
}
