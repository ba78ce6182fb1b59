package assemble

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-slug"

	"github.com/gorewood/driftwood/internal/ghost"
	"github.com/gorewood/driftwood/internal/index"
	"github.com/gorewood/driftwood/internal/normalize"
	"github.com/gorewood/driftwood/internal/rewrite"
)

// Timestamp layouts used in rendered records.
const (
	InstantLayout = "2006-01-02T15:04:05.000Z"
	DateLayout    = "2006-01-02"
)

// StatusPublished is the Ghost status of a live post.
const StatusPublished = "published"

// ErrNoTimestamp is returned for posts with no usable date.
var ErrNoTimestamp = errors.New("post has no published, created or updated timestamp")

// MarkupConverter turns normalized HTML into markdown.
type MarkupConverter interface {
	Convert(html string) string
}

// Assembler turns posts into render records.
type Assembler struct {
	index      *index.Index
	rules      rewrite.Rules
	normalizer *normalize.Normalizer
	markup     MarkupConverter
}

// New creates an Assembler.
func New(ix *index.Index, rules rewrite.Rules, markup MarkupConverter) *Assembler {
	return &Assembler{
		index:      ix,
		rules:      rules,
		normalizer: normalize.New(rules),
		markup:     markup,
	}
}

// Assemble builds the render record and target file name for post.
func (a *Assembler) Assemble(post ghost.Post) (*RenderRecord, string, error) {
	published, updated, err := postTimes(post)
	if err != nil {
		return nil, "", fmt.Errorf("post %s: %w", post.ID, err)
	}

	record := &RenderRecord{
		ID:            post.ID,
		UUID:          post.UUID,
		Title:         QuoteTitle(post.Title),
		Slug:          postSlug(post),
		FeatureImage:  a.rules.ImageURL(post.FeatureImage),
		Tags:          a.VisibleTags(post.ID),
		Status:        post.Status,
		Page:          post.IsPage(),
		Featured:      bool(post.Featured),
		Draft:         post.Status != "" && post.Status != StatusPublished,
		PublishedAt:   published.Format(InstantLayout),
		UpdatedAt:     updated.Format(InstantLayout),
		FormattedDate: published.Format(DateLayout),
	}
	if post.CustomExcerpt != nil {
		record.Excerpt = *post.CustomExcerpt
	}
	if post.HTML != nil && *post.HTML != "" {
		record.HTML = a.normalizer.Normalize(*post.HTML)
		record.Markdown = a.markup.Convert(record.HTML)
	}

	return record, FileName(record.Page, record.Slug, record.FormattedDate), nil
}

// VisibleTags returns the names of the post's tags in association order.
// Unknown ids and internal tags are dropped.
func (a *Assembler) VisibleTags(postID string) []string {
	ids := a.index.TagIDs(postID)
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		tag, ok := a.index.Tag(id)
		if !ok || tag.Internal() {
			continue
		}
		names = append(names, tag.Name)
	}
	return names
}

// QuoteTitle wraps title in double quotes when it contains a colon after
// its first character, so "A: B" survives as a YAML front matter value.
// A leading colon is left alone.
func QuoteTitle(title string) string {
	if strings.IndexByte(title, ':') > 0 {
		return `"` + title + `"`
	}
	return title
}

// FileName returns page-<slug>.md for pages and <date>-<slug>.md otherwise.
func FileName(page bool, slugValue, date string) string {
	if page {
		return "page-" + slugValue + ".md"
	}
	return date + "-" + slugValue + ".md"
}

// Target returns the file name post is written to without converting its content.
func Target(post ghost.Post) (string, error) {
	published, _, err := postTimes(post)
	if err != nil {
		return "", fmt.Errorf("post %s: %w", post.ID, err)
	}
	return FileName(post.IsPage(), postSlug(post), published.Format(DateLayout)), nil
}

// postSlug returns the post slug, deriving one from the title or id when empty.
func postSlug(post ghost.Post) string {
	if post.Slug != "" {
		return post.Slug
	}
	if normalized, err := slug.Normalize(post.Title); err == nil && normalized != "" {
		return normalized
	}
	return post.ID
}

// postTimes resolves the published and updated instants of a post in UTC.
// Drafts have no published_at and fall back to created_at, then updated_at.
func postTimes(post ghost.Post) (published, updated time.Time, err error) {
	published, ok, err := firstTime(post.PublishedAt, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !ok {
		return time.Time{}, time.Time{}, ErrNoTimestamp
	}

	updated, ok, err = firstTime(post.UpdatedAt)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !ok {
		updated = published
	}
	return published, updated, nil
}

// firstTime parses the first non-empty value.
func firstTime(values ...*string) (time.Time, bool, error) {
	for _, value := range values {
		if value == nil || *value == "" {
			continue
		}
		parsed, err := parseTime(*value)
		if err != nil {
			return time.Time{}, false, err
		}
		return parsed.UTC(), true, nil
	}
	return time.Time{}, false, nil
}

// parseTime accepts RFC 3339 and the zone-less SQL layout of old exports (read as UTC).
func parseTime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed, nil
	}
	if sqlTime, sqlErr := time.Parse(time.DateTime, value); sqlErr == nil {
		return sqlTime, nil
	}
	return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", value, err)
}
