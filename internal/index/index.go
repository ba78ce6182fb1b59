// Package index rebuilds the post/tag relation from flat export records.
package index

import "github.com/gorewood/driftwood/internal/ghost"

// Index maps tag ids to tags and post ids to their tag ids.
// It is built once and read-only afterwards.
type Index struct {
	tags     map[string]ghost.Tag
	postTags map[string][]string
}

// Build indexes tags by id and groups associations by post id.
// Tag ids keep the order in which associations appear.
func Build(assocs []ghost.PostTag, tags []ghost.Tag) *Index {
	ix := &Index{
		tags:     make(map[string]ghost.Tag, len(tags)),
		postTags: make(map[string][]string),
	}

	for _, tag := range tags {
		ix.tags[tag.ID] = tag
	}
	for _, assoc := range assocs {
		ix.postTags[assoc.PostID] = append(ix.postTags[assoc.PostID], assoc.TagID)
	}

	return ix
}

// Tag returns the tag with the given id.
func (ix *Index) Tag(id string) (ghost.Tag, bool) {
	tag, ok := ix.tags[id]
	return tag, ok
}

// TagIDs returns the tag ids associated with a post, in association order.
func (ix *Index) TagIDs(postID string) []string {
	return ix.postTags[postID]
}

// TagCount returns the number of indexed tags.
func (ix *Index) TagCount() int {
	return len(ix.tags)
}

// PostCount returns the number of posts with at least one association.
func (ix *Index) PostCount() int {
	return len(ix.postTags)
}
