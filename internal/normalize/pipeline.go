// Package normalize cleans Ghost HTML before markdown conversion.
//
// Normalization is an ordered pipeline of pure string stages:
//
//  1. bookmarks: bookmark cards become plain markdown links
//  2. figures:   resource URLs inside figure blocks become "/<path>"
//  3. residual:  every other resource URL becomes "<posts path><path>"
//
// Bookmarks run first so a card's inner link is never treated as a generic
// resource URL. Figures run before residual so media keeps the image-serving
// convention while inline links get the posts-path convention.
package normalize

import "github.com/gorewood/driftwood/internal/rewrite"

// Stage names.
const (
	StageBookmarks = "bookmarks"
	StageFigures   = "figures"
	StageResidual  = "residual"
)

// Stage is a named string transform.
type Stage struct {
	Name  string
	Apply func(html string) string
}

// Normalizer runs its stages in order.
type Normalizer struct {
	stages []Stage
}

// New builds the standard pipeline for the given rules.
func New(rules rewrite.Rules) *Normalizer {
	return &Normalizer{stages: Stages(rules)}
}

// Stages returns the standard stages for rules, in execution order.
func Stages(rules rewrite.Rules) []Stage {
	return []Stage{
		{
			Name: StageBookmarks,
			Apply: func(html string) string {
				return ExtractBookmarks(html, rules.BookmarkURL)
			},
		},
		{
			Name: StageFigures,
			Apply: func(html string) string {
				return RewriteFigures(html, func(inner string) string {
					return rules.EmbeddedURLs(inner, "/")
				})
			},
		},
		{
			Name: StageResidual,
			Apply: func(html string) string {
				return rules.EmbeddedURLs(html, rules.PostsPath)
			},
		},
	}
}

// Stages returns a copy of the pipeline's stages.
func (n *Normalizer) Stages() []Stage {
	return append([]Stage(nil), n.stages...)
}

// Normalize runs every stage over html. Empty input is returned unchanged.
func (n *Normalizer) Normalize(html string) string {
	if html == "" {
		return html
	}
	for _, stage := range n.stages {
		html = stage.Apply(html)
	}
	return html
}
