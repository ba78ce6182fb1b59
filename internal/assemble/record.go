// Package assemble builds render-ready records from Ghost posts.
package assemble

// RenderRecord is everything a template needs to render one post.
// It is created per post and not modified after Assemble returns it.
type RenderRecord struct {
	ID    string
	UUID  string
	Title string // quoted when it contains a colon past the second character
	Slug  string

	// HTML is the normalized content; Markdown is its converted form.
	HTML     string
	Markdown string

	FeatureImage *string
	Tags         []string

	Excerpt  string
	Status   string
	Page     bool
	Featured bool
	Draft    bool

	PublishedAt   string // 2006-01-02T15:04:05.000Z
	UpdatedAt     string // 2006-01-02T15:04:05.000Z
	FormattedDate string // 2006-01-02
}

// HasFeatureImage reports whether the post has a feature image.
func (r *RenderRecord) HasFeatureImage() bool {
	return r.FeatureImage != nil && *r.FeatureImage != ""
}

// Image returns the feature image path, or "" when there is none.
func (r *RenderRecord) Image() string {
	if r.FeatureImage == nil {
		return ""
	}
	return *r.FeatureImage
}
