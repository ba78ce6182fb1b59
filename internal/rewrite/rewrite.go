// Package rewrite turns absolute Ghost URLs into site-relative paths.
package rewrite

import "strings"

// Default patterns used by Ghost exports.
const (
	DefaultContentBase = "__GHOST_URL__/content/"
	DefaultSiteBase    = "__GHOST_URL__/"
	DefaultPostsPath   = "/posts/"
)

// Rules holds the URL patterns the rewriters substitute.
type Rules struct {
	// ContentBase prefixes uploaded resources (images, files, media).
	ContentBase string
	// SiteBase prefixes every page of the source site.
	SiteBase string
	// PostsPath replaces SiteBase for links into other posts.
	PostsPath string
}

// DefaultRules returns the rules for a stock Ghost export.
func DefaultRules() Rules {
	return Rules{
		ContentBase: DefaultContentBase,
		SiteBase:    DefaultSiteBase,
		PostsPath:   DefaultPostsPath,
	}
}

// ImageURL rewrites the first ContentBase occurrence of a feature image to "/".
// A nil url stays nil.
func (r Rules) ImageURL(url *string) *string {
	if url == nil || *url == "" {
		return url
	}
	cleaned := replaceFirst(*url, r.ContentBase, "/")
	return &cleaned
}

// BookmarkURL rewrites the first SiteBase occurrence of a bookmark target to PostsPath.
func (r Rules) BookmarkURL(url string) string {
	return replaceFirst(url, r.SiteBase, r.PostsPath)
}

// EmbeddedURLs replaces every ContentBase occurrence in html with replacement.
func (r Rules) EmbeddedURLs(html, replacement string) string {
	if html == "" || r.ContentBase == "" {
		return html
	}
	return strings.ReplaceAll(html, r.ContentBase, replacement)
}

// replaceFirst is strings.Replace with n=1, except that an empty pattern is a no-op.
func replaceFirst(s, old, replacement string) string {
	if s == "" || old == "" {
		return s
	}
	return strings.Replace(s, old, replacement, 1)
}
