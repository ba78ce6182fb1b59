package mcp

import (
	"errors"
	"fmt"

	"github.com/gorewood/driftwood/internal/assemble"
	"github.com/gorewood/driftwood/internal/ghost"
	"github.com/gorewood/driftwood/internal/index"
	"github.com/gorewood/driftwood/internal/markup"
)

// session is a loaded export ready for assembly.
type session struct {
	data      *ghost.Data
	index     *index.Index
	assembler *assemble.Assembler
}

// loadSession reads the export at path and builds its assembler.
func loadSession(path string, opts Options) (*session, error) {
	if path == "" {
		return nil, errors.New("export_path is required")
	}
	data, err := ghost.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading export: %w", err)
	}
	ix := index.Build(data.PostsTags, data.Tags)
	return &session{
		data:      data,
		index:     ix,
		assembler: assemble.New(ix, opts.Rules, markup.New()),
	}, nil
}

// findPost returns the post whose slug or id equals key.
func (s *session) findPost(key string) (ghost.Post, bool) {
	for _, post := range s.data.Posts {
		if post.Slug == key || post.ID == key {
			return post, true
		}
	}
	return ghost.Post{}, false
}

// postKind returns "page" or "post".
func postKind(post ghost.Post) string {
	if post.IsPage() {
		return ghost.TypePage
	}
	return "post"
}
