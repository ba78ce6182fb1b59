// Package ghost decodes Ghost blog export files into typed records.
package ghost

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// VisibilityInternal marks a tag that must never appear in rendered output.
const VisibilityInternal = "internal"

// TypePage is the post type newer Ghost versions use for standalone pages.
const TypePage = "page"

// ErrNoDataset is returned when an export file has no db[0].data or data object.
var ErrNoDataset = errors.New("export contains no dataset")

// Tag is a Ghost tag record.
type Tag struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Visibility string `json:"visibility"`
}

// Internal reports whether the tag is hidden from output.
func (t Tag) Internal() bool {
	return t.Visibility == VisibilityInternal
}

// PostTag associates a post with a tag.
type PostTag struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	TagID     string `json:"tag_id"`
	SortOrder int    `json:"sort_order"`
}

// Post is a Ghost post or page. Fields Ghost may write as null are pointers.
type Post struct {
	ID            string  `json:"id"`
	UUID          string  `json:"uuid"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	HTML          *string `json:"html"`
	FeatureImage  *string `json:"feature_image"`
	Featured      Flag    `json:"featured"`
	Page          Flag    `json:"page"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	CustomExcerpt *string `json:"custom_excerpt"`
	CreatedAt     *string `json:"created_at"`
	UpdatedAt     *string `json:"updated_at"`
	PublishedAt   *string `json:"published_at"`
}

// IsPage reports whether the post is a standalone page.
// Older exports set page to true/1, newer ones set type to "page".
func (p Post) IsPage() bool {
	return bool(p.Page) || p.Type == TypePage
}

// Flag is a boolean that also accepts the 0/1 integers older exports use.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "":
		*f = false
		return nil
	case "true":
		*f = true
		return nil
	case "false":
		*f = false
		return nil
	}

	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid flag value %s", data)
	}
	*f = n != 0
	return nil
}

// Data holds the three collections the converter uses.
type Data struct {
	Posts     []Post    `json:"posts"`
	Tags      []Tag     `json:"tags"`
	PostsTags []PostTag `json:"posts_tags"`
}

// Meta describes the exporting Ghost instance.
type Meta struct {
	ExportedOn int64  `json:"exported_on"`
	Version    string `json:"version"`
}

// Dataset is one entry of the export's db array.
type Dataset struct {
	Meta Meta `json:"meta"`
	Data Data `json:"data"`
}

// Export is a decoded Ghost export file.
type Export struct {
	DB   []Dataset `json:"db"`
	Data *Data     `json:"data,omitempty"`
}

// Dataset returns the first dataset of the export.
// Exports written without the db envelope fall back to the top-level data object.
func (e *Export) Dataset() (*Data, error) {
	if len(e.DB) > 0 {
		return &e.DB[0].Data, nil
	}
	if e.Data != nil {
		return e.Data, nil
	}
	return nil, ErrNoDataset
}

// Parse decodes export bytes and returns the dataset.
func Parse(raw []byte) (*Data, error) {
	var export Export
	if err := json.Unmarshal(raw, &export); err != nil {
		return nil, fmt.Errorf("decoding export: %w", err)
	}
	return export.Dataset()
}

// Load reads and decodes the export file at path.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export %s: %w", path, err)
	}
	data, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
